package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataconf/strata/internal/core/value"
)

func obj(fields map[string]value.Value) value.Value { return value.Object(fields) }

func ints(ns ...int64) value.Value {
	elems := make([]value.Value, len(ns))
	for i, n := range ns {
		elems[i] = value.Int(n)
	}
	return value.Array(elems...)
}

func mustMerge(t *testing.T, target, source value.Value, strategy Strategy) value.Value {
	t.Helper()
	got, err := Merge(target, source, Options{Strategy: strategy})
	require.NoError(t, err)
	return got
}

// TestMerge_TypeMismatch_SourceWins tests that differing variants resolve
// to a clone of the source, never an error
func TestMerge_TypeMismatch_SourceWins(t *testing.T) {
	tests := []struct {
		name   string
		target value.Value
		source value.Value
	}{
		{name: "IntOverString", target: value.String("x"), source: value.Int(5)},
		{name: "StringOverObject", target: value.EmptyObject(), source: value.String("flat")},
		{name: "ObjectOverArray", target: ints(1, 2), source: obj(map[string]value.Value{"a": value.Int(1)})},
		{name: "NullOverBool", target: value.Bool(true), source: value.Null()},
		{name: "FloatOverInt", target: value.Int(1), source: value.Float(1.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, strategy := range []Strategy{StrategyReplace, StrategyConcat, StrategySmart} {
				got := mustMerge(t, tt.target, tt.source, strategy)
				assert.True(t, value.Equal(tt.source, got), "strategy %s: want clone of source", strategy)
			}
		})
	}
}

// TestMerge_MatchingPrimitives_SourceWins tests leaf resolution
func TestMerge_MatchingPrimitives_SourceWins(t *testing.T) {
	got := mustMerge(t, value.Int(1), value.Int(2), StrategyReplace)
	assert.True(t, value.Equal(value.Int(2), got))

	got = mustMerge(t, value.String("old"), value.String("new"), StrategySmart)
	assert.True(t, value.Equal(value.String("new"), got))
}

// TestMerge_Objects_MergeKeywise tests recursive object merging
func TestMerge_Objects_MergeKeywise(t *testing.T) {
	target := obj(map[string]value.Value{
		"host": value.String("localhost"),
		"tls":  value.Bool(false),
		"pool": obj(map[string]value.Value{"min": value.Int(1), "max": value.Int(10)}),
	})
	source := obj(map[string]value.Value{
		"tls":  value.Bool(true),
		"pool": obj(map[string]value.Value{"max": value.Int(50)}),
		"name": value.String("primary"),
	})

	got := mustMerge(t, target, source, StrategyReplace)

	want := obj(map[string]value.Value{
		"host": value.String("localhost"),
		"tls":  value.Bool(true),
		"pool": obj(map[string]value.Value{"min": value.Int(1), "max": value.Int(50)}),
		"name": value.String("primary"),
	})
	assert.True(t, value.Equal(want, got), "got %s", got)
}

// TestMerge_InputsRemainUnmodified tests the no-aliasing invariant
func TestMerge_InputsRemainUnmodified(t *testing.T) {
	target := obj(map[string]value.Value{"a": ints(1, 2)})
	source := obj(map[string]value.Value{"a": ints(3), "b": value.Int(9)})
	targetBefore := value.Clone(target)
	sourceBefore := value.Clone(source)

	_ = mustMerge(t, target, source, StrategyConcat)

	assert.True(t, value.Equal(targetBefore, target), "target must not change")
	assert.True(t, value.Equal(sourceBefore, source), "source must not change")
}

// TestMerge_ArrayReplace tests the Replace strategy
func TestMerge_ArrayReplace(t *testing.T) {
	got := mustMerge(t, ints(1, 2), ints(3, 4), StrategyReplace)
	assert.True(t, value.Equal(ints(3, 4), got))
}

// TestMerge_ArrayConcat_DeduplicatesPrimitives tests Concat with the
// primitive duplicate check
func TestMerge_ArrayConcat_DeduplicatesPrimitives(t *testing.T) {
	got := mustMerge(t, ints(1, 2), ints(2, 3, 4), StrategyConcat)
	assert.True(t, value.Equal(ints(1, 2, 3, 4), got), "got %s", got)
}

// TestMerge_ArrayConcat_NeverDeduplicatesContainers tests that object and
// array elements are always appended even when structurally equal
func TestMerge_ArrayConcat_NeverDeduplicatesContainers(t *testing.T) {
	elem := obj(map[string]value.Value{"a": value.Int(1)})
	target := value.Array(value.Clone(elem))
	source := value.Array(value.Clone(elem))

	got := mustMerge(t, target, source, StrategyConcat)
	assert.Equal(t, 2, got.Len(), "equal object elements are not duplicates")

	inner := ints(1)
	got = mustMerge(t, value.Array(value.Clone(inner)), value.Array(value.Clone(inner)), StrategyConcat)
	assert.Equal(t, 2, got.Len(), "equal array elements are not duplicates")
}

// TestMerge_ArrayConcat_DedupAgainstAccumulatingResult tests that a source
// element equal to an earlier source element is also skipped
func TestMerge_ArrayConcat_DedupAgainstAccumulatingResult(t *testing.T) {
	got := mustMerge(t, ints(1), ints(2, 2, 3), StrategyConcat)
	assert.True(t, value.Equal(ints(1, 2, 3), got), "got %s", got)
}

// TestMerge_Smart_KeyedObjectMerge tests in-place keyed merging with
// appended non-matches
func TestMerge_Smart_KeyedObjectMerge(t *testing.T) {
	target := value.Array(
		obj(map[string]value.Value{"id": value.String("1"), "value": value.Int(100)}),
	)
	source := value.Array(
		obj(map[string]value.Value{"id": value.String("1"), "value": value.Int(200)}),
		obj(map[string]value.Value{"id": value.String("2"), "value": value.Int(300)}),
	)

	got := mustMerge(t, target, source, StrategySmart)

	want := value.Array(
		obj(map[string]value.Value{"id": value.String("1"), "value": value.Int(200)}),
		obj(map[string]value.Value{"id": value.String("2"), "value": value.Int(300)}),
	)
	assert.True(t, value.Equal(want, got), "got %s", got)
}

// TestMerge_Smart_PreservesTargetOrdering tests that matched elements stay
// in their target positions
func TestMerge_Smart_PreservesTargetOrdering(t *testing.T) {
	target := value.Array(
		obj(map[string]value.Value{"id": value.String("a"), "v": value.Int(1)}),
		obj(map[string]value.Value{"id": value.String("b"), "v": value.Int(2)}),
		obj(map[string]value.Value{"id": value.String("c"), "v": value.Int(3)}),
	)
	source := value.Array(
		obj(map[string]value.Value{"id": value.String("c"), "v": value.Int(30)}),
		obj(map[string]value.Value{"id": value.String("a"), "v": value.Int(10)}),
	)

	got := mustMerge(t, target, source, StrategySmart)

	require.Equal(t, 3, got.Len())
	first, _ := got.Elem(0).Field("id")
	assert.Equal(t, "a", first.AsString())
	v0, _ := got.Elem(0).Field("v")
	assert.True(t, value.Equal(value.Int(10), v0))
	v2, _ := got.Elem(2).Field("v")
	assert.True(t, value.Equal(value.Int(30), v2))
}

// TestMerge_Smart_MergeKeyPriorityOrder tests the fixed candidate scan
func TestMerge_Smart_MergeKeyPriorityOrder(t *testing.T) {
	// "id" is absent; "name" is the first present string-valued candidate.
	target := value.Array(
		obj(map[string]value.Value{"name": value.String("web"), "port": value.Int(80)}),
	)
	source := value.Array(
		obj(map[string]value.Value{"name": value.String("web"), "port": value.Int(8080)}),
	)

	got := mustMerge(t, target, source, StrategySmart)

	require.Equal(t, 1, got.Len(), "elements should merge on the name key")
	port, _ := got.Elem(0).Field("port")
	assert.True(t, value.Equal(value.Int(8080), port))
}

// TestMerge_Smart_NonStringKeyValue_FallsBackToConcat tests that a
// candidate with a non-string value is skipped
func TestMerge_Smart_NonStringKeyValue_FallsBackToConcat(t *testing.T) {
	target := value.Array(
		obj(map[string]value.Value{"id": value.Int(1), "v": value.Int(100)}),
	)
	source := value.Array(
		obj(map[string]value.Value{"id": value.Int(1), "v": value.Int(200)}),
	)

	got := mustMerge(t, target, source, StrategySmart)
	assert.Equal(t, 2, got.Len(), "no string merge key, so concat applies")
}

// TestMerge_Smart_FallsBackToConcat tests the fallback conditions
func TestMerge_Smart_FallsBackToConcat(t *testing.T) {
	tests := []struct {
		name   string
		target value.Value
		source value.Value
		want   value.Value
	}{
		{
			name:   "PlainIntegersBehaveLikeConcat",
			target: ints(1, 2),
			source: ints(2, 3, 4),
			want:   ints(1, 2, 3, 4),
		},
		{
			name:   "EmptyTarget",
			target: value.Array(),
			source: value.Array(obj(map[string]value.Value{"id": value.String("1")})),
			want:   value.Array(obj(map[string]value.Value{"id": value.String("1")})),
		},
		{
			name: "MixedElementKinds",
			target: value.Array(
				obj(map[string]value.Value{"id": value.String("1")}),
				value.Int(5),
			),
			source: value.Array(obj(map[string]value.Value{"id": value.String("1")})),
			want: value.Array(
				obj(map[string]value.Value{"id": value.String("1")}),
				value.Int(5),
				obj(map[string]value.Value{"id": value.String("1")}),
			),
		},
		{
			name:   "NoCandidateKey",
			target: value.Array(obj(map[string]value.Value{"label": value.String("x")})),
			source: value.Array(obj(map[string]value.Value{"label": value.String("x")})),
			want: value.Array(
				obj(map[string]value.Value{"label": value.String("x")}),
				obj(map[string]value.Value{"label": value.String("x")}),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustMerge(t, tt.target, tt.source, StrategySmart)
			assert.True(t, value.Equal(tt.want, got), "got %s", got)
		})
	}
}

// TestMerge_Smart_RecursesIntoNestedObjectArrays tests that nested object
// arrays keep merging with the Smart strategy
func TestMerge_Smart_RecursesIntoNestedObjectArrays(t *testing.T) {
	target := value.Array(
		obj(map[string]value.Value{
			"id": value.String("svc"),
			"endpoints": value.Array(
				obj(map[string]value.Value{"name": value.String("http"), "port": value.Int(80)}),
			),
		}),
	)
	source := value.Array(
		obj(map[string]value.Value{
			"id": value.String("svc"),
			"endpoints": value.Array(
				obj(map[string]value.Value{"name": value.String("http"), "port": value.Int(8080)}),
			),
		}),
	)

	got := mustMerge(t, target, source, StrategySmart)

	require.Equal(t, 1, got.Len())
	endpoints, ok := got.Elem(0).Field("endpoints")
	require.True(t, ok)
	require.Equal(t, 1, endpoints.Len(), "nested endpoint arrays should merge on the name key")
	port, _ := endpoints.Elem(0).Field("port")
	assert.True(t, value.Equal(value.Int(8080), port))
}

// TestMerge_Idempotence tests merge(v, v) == v for representative trees.
// Concat is exercised only on trees whose arrays hold primitives, since
// container elements are never treated as duplicates.
func TestMerge_Idempotence(t *testing.T) {
	primitiveTrees := []value.Value{
		value.Null(),
		value.Int(42),
		value.String("x"),
		ints(1, 2, 3),
		obj(map[string]value.Value{
			"a": value.Int(1),
			"b": obj(map[string]value.Value{"c": ints(1, 2)}),
		}),
	}
	keyedTree := obj(map[string]value.Value{
		"d": value.Array(obj(map[string]value.Value{"id": value.String("1")})),
	})

	for _, v := range primitiveTrees {
		for _, strategy := range []Strategy{StrategyReplace, StrategyConcat, StrategySmart} {
			got := mustMerge(t, v, v, strategy)
			assert.True(t, value.Equal(v, got), "merge(v, v, %s) should equal v for %s", strategy, v)
		}
	}
	for _, strategy := range []Strategy{StrategyReplace, StrategySmart} {
		got := mustMerge(t, keyedTree, keyedTree, strategy)
		assert.True(t, value.Equal(keyedTree, got), "merge(v, v, %s) should equal v for %s", strategy, keyedTree)
	}
}

// TestMerge_InvalidStrategy_Fails tests the reserved strategy error
func TestMerge_InvalidStrategy_Fails(t *testing.T) {
	_, err := Merge(value.Int(1), value.Int(2), Options{Strategy: Strategy(99)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStrategy)
}

// TestMerge_ExcessiveRecursion_FailsWithCircularReference tests the
// per-call depth bound
func TestMerge_ExcessiveRecursion_FailsWithCircularReference(t *testing.T) {
	deep := value.Int(0)
	for i := 0; i < maxDepth+10; i++ {
		deep = obj(map[string]value.Value{"next": deep})
	}

	_, err := Merge(deep, deep, Options{Strategy: StrategyReplace})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircularReference)
}

// TestParseStrategy tests flag parsing
func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{input: "replace", want: StrategyReplace},
		{input: "concat", want: StrategyConcat},
		{input: "smart", want: StrategySmart},
		{input: "REPLACE", wantErr: true},
		{input: "", wantErr: true},
		{input: "deep", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}
