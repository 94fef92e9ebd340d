package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromJSON_DecodesVariants tests JSON decoding into the right kinds
func TestFromJSON_DecodesVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{name: "Null", input: `null`, want: Null()},
		{name: "Bool", input: `true`, want: Bool(true)},
		{name: "IntegerNumber", input: `42`, want: Int(42)},
		{name: "NegativeInteger", input: `-7`, want: Int(-7)},
		{name: "FractionalNumber", input: `3.25`, want: Float(3.25)},
		{name: "ExponentNumber", input: `1e300`, want: Float(1e300)},
		{name: "String", input: `"hello"`, want: String("hello")},
		{name: "Array", input: `[1, "two", false]`, want: Array(Int(1), String("two"), Bool(false))},
		{
			name:  "NestedObject",
			input: `{"db": {"host": "localhost", "port": 5432}}`,
			want: Object(map[string]Value{
				"db": Object(map[string]Value{
					"host": String("localhost"),
					"port": Int(5432),
				}),
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromJSON([]byte(tt.input))
			require.NoError(t, err)
			assert.True(t, Equal(tt.want, got), "decoded %s, want %s", got, tt.want)
		})
	}
}

// TestFromJSON_RejectsMalformedInput tests decode error cases
func TestFromJSON_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty", input: ``},
		{name: "Truncated", input: `{"a":`},
		{name: "TrailingData", input: `{} {}`},
		{name: "BareWord", input: `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJSON([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

// TestMarshalJSON_SortsObjectKeys tests deterministic serialization
func TestMarshalJSON_SortsObjectKeys(t *testing.T) {
	v := Object(map[string]Value{
		"zeta":  Int(1),
		"alpha": String("x"),
		"mid":   Array(Bool(true), Null()),
	})

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":"x","mid":[true,null],"zeta":1}`, string(out))
}

// TestJSON_RoundTrip tests that decode-then-encode is stable
func TestJSON_RoundTrip(t *testing.T) {
	input := `{"a":[1,2.5,"x"],"b":{"c":null,"d":false}}`

	v, err := FromJSON([]byte(input))
	require.NoError(t, err)

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}
