package value

import (
	"sort"
	"strconv"
)

// Kind identifies the variant stored in a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a closed sum type over the variants a configuration tree can
// hold: null, bool, int64, float64, string, array, and object. A Value is
// immutable after construction; the zero Value has KindInvalid and is used
// to signal "no value" (e.g. unset defaults).
//
// Every constructor and every operation that returns a Value produces
// storage that does not alias the caller's inputs, so inputs stay valid and
// unmodified no matter what is later done with the result.
type Value struct {
	kind     Kind
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	arr      []Value
	obj      map[string]Value
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Int returns a 64-bit integer Value.
func Int(i int64) Value { return Value{kind: KindInt, intVal: i} }

// Float returns a 64-bit floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, floatVal: f} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, strVal: s} }

// Array returns an array Value holding the given elements. The elements are
// copied into fresh storage.
func Array(elems ...Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{kind: KindArray, arr: arr}
}

// Object returns an object Value holding the given fields. The map is
// copied into fresh storage so later mutation of the argument cannot reach
// the returned Value.
func Object(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// EmptyObject returns an object Value with no fields.
func EmptyObject() Value {
	return Value{kind: KindObject, obj: map[string]Value{}}
}

// Kind reports which variant the Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the Value holds any variant at all. The zero
// Value is not valid.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsBool returns the boolean payload. Valid only for KindBool.
func (v Value) AsBool() bool { return v.boolVal }

// AsInt returns the integer payload. Valid only for KindInt.
func (v Value) AsInt() int64 { return v.intVal }

// AsFloat returns the float payload. Valid only for KindFloat.
func (v Value) AsFloat() float64 { return v.floatVal }

// AsString returns the string payload. Valid only for KindString.
func (v Value) AsString() string { return v.strVal }

// Len returns the number of elements (arrays) or fields (objects), and 0
// for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Elem returns the i-th element of an array Value.
func (v Value) Elem(i int) Value { return v.arr[i] }

// Field looks up a field of an object Value.
func (v Value) Field(key string) (Value, bool) {
	f, ok := v.obj[key]
	return f, ok
}

// Fields returns the field names of an object Value in sorted order. Field
// order carries no meaning; sorting keeps iteration deterministic.
func (v Value) Fields() []string {
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of v. Every array and object node in the
// result is fresh storage; the copy shares nothing with v.
func Clone(v Value) Value {
	switch v.kind {
	case KindArray:
		arr := make([]Value, len(v.arr))
		for i, e := range v.arr {
			arr[i] = Clone(e)
		}
		return Value{kind: KindArray, arr: arr}
	case KindObject:
		obj := make(map[string]Value, len(v.obj))
		for k, f := range v.obj {
			obj[k] = Clone(f)
		}
		return Value{kind: KindObject, obj: obj}
	default:
		return v
	}
}

// Equal reports structural equality. Values of different kinds are never
// equal; arrays compare element-wise in order, objects compare key-wise.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInvalid, KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindInt:
		return a.intVal == b.intVal
	case KindFloat:
		return a.floatVal == b.floatVal
	case KindString:
		return a.strVal == b.strVal
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsPrimitive reports whether the Value is a leaf variant (everything but
// array and object).
func (v Value) IsPrimitive() bool {
	return v.kind != KindArray && v.kind != KindObject
}

// Interface converts the Value into the generic representation used by
// encoding/json: nil, bool, int64, float64, string, []any, map[string]any.
// The returned containers are fresh storage.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.boolVal
	case KindInt:
		return v.intVal
	case KindFloat:
		return v.floatVal
	case KindString:
		return v.strVal
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, f := range v.obj {
			out[k] = f.Interface()
		}
		return out
	default:
		return nil
	}
}

// String renders a compact debug representation. Not stable output; use
// MarshalJSON for serialization.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindInt:
		return strconv.FormatInt(v.intVal, 10)
	case KindFloat:
		return strconv.FormatFloat(v.floatVal, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.strVal)
	case KindArray:
		return "array(" + strconv.Itoa(len(v.arr)) + ")"
	case KindObject:
		return "object(" + strconv.Itoa(len(v.obj)) + ")"
	case KindNull:
		return "null"
	default:
		return "<invalid>"
	}
}
