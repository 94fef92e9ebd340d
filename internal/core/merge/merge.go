package merge

import (
	"errors"
	"fmt"

	"github.com/strataconf/strata/internal/core/value"
)

// Strategy selects how two arrays at the same path are combined.
type Strategy int

const (
	// StrategyReplace discards the target array and keeps a copy of the
	// source array.
	StrategyReplace Strategy = iota
	// StrategyConcat appends source elements after the target elements,
	// skipping primitive source elements already present in the result.
	StrategyConcat
	// StrategySmart matches object elements across both arrays by a shared
	// merge key and merges matches in place; anything the key machinery
	// cannot handle falls back to StrategyConcat.
	StrategySmart
)

// String returns the flag-friendly name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyReplace:
		return "replace"
	case StrategyConcat:
		return "concat"
	case StrategySmart:
		return "smart"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy converts a flag value into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "replace":
		return StrategyReplace, nil
	case "concat":
		return StrategyConcat, nil
	case "smart":
		return StrategySmart, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
	}
}

var (
	// ErrCircularReference is returned when merge recursion exceeds the
	// per-call depth bound. Value trees are acyclic by construction, so the
	// bound can only be hit by pathologically deep input.
	ErrCircularReference = errors.New("circular reference detected during merge")

	// ErrInvalidStrategy is returned for an unrecognized strategy value.
	ErrInvalidStrategy = errors.New("invalid merge strategy")
)

// Options configures a single merge invocation.
type Options struct {
	Strategy Strategy
}

// maxDepth bounds merge recursion within one top-level Merge call.
const maxDepth = 1000

// mergeKeyCandidates are scanned in order against the first target element
// when selecting the Smart merge key.
var mergeKeyCandidates = []string{"id", "name", "key", "path", "type"}

// Merge combines source into target and returns a fresh Value that aliases
// neither input.
//
// When the two values hold different variants the source wins outright: the
// result is a clone of source, never an error. Matching objects merge
// key-wise (recursively), matching arrays merge per opts.Strategy, and
// matching primitives resolve to the source value.
func Merge(target, source value.Value, opts Options) (value.Value, error) {
	switch opts.Strategy {
	case StrategyReplace, StrategyConcat, StrategySmart:
	default:
		return value.Value{}, fmt.Errorf("%w: %d", ErrInvalidStrategy, int(opts.Strategy))
	}

	m := &merger{opts: opts}
	return m.merge(target, source, 0)
}

type merger struct {
	opts Options
}

func (m *merger) merge(target, source value.Value, depth int) (value.Value, error) {
	if depth > maxDepth {
		return value.Value{}, fmt.Errorf("%w: merge recursion exceeded %d levels", ErrCircularReference, maxDepth)
	}

	if target.Kind() != source.Kind() {
		return value.Clone(source), nil
	}

	switch target.Kind() {
	case value.KindObject:
		return m.mergeObjects(target, source, depth)
	case value.KindArray:
		return m.mergeArrays(target, source, depth)
	default:
		return value.Clone(source), nil
	}
}

func (m *merger) mergeObjects(target, source value.Value, depth int) (value.Value, error) {
	result := make(map[string]value.Value, target.Len()+source.Len())

	for _, k := range target.Fields() {
		f, _ := target.Field(k)
		result[k] = value.Clone(f)
	}

	for _, k := range source.Fields() {
		sv, _ := source.Field(k)
		if tv, ok := result[k]; ok {
			merged, err := m.merge(tv, sv, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			result[k] = merged
		} else {
			result[k] = value.Clone(sv)
		}
	}

	return value.Object(result), nil
}

func (m *merger) mergeArrays(target, source value.Value, depth int) (value.Value, error) {
	switch m.opts.Strategy {
	case StrategyReplace:
		return value.Clone(source), nil
	case StrategySmart:
		return m.smartMerge(target, source, depth)
	default:
		return m.concat(target, source), nil
	}
}

// concat keeps target elements first and appends source elements that are
// not already present. Only primitives participate in the duplicate check;
// array and object elements are always appended.
func (m *merger) concat(target, source value.Value) value.Value {
	result := make([]value.Value, 0, target.Len()+source.Len())
	for i := 0; i < target.Len(); i++ {
		result = append(result, value.Clone(target.Elem(i)))
	}

	for i := 0; i < source.Len(); i++ {
		elem := source.Elem(i)
		if elem.IsPrimitive() && containsEqual(result, elem) {
			continue
		}
		result = append(result, value.Clone(elem))
	}

	return value.Array(result...)
}

// smartMerge merges two arrays of objects by a shared merge key. The key is
// chosen once, from the first target element, and governs the whole
// array-merge. Arrays that are empty, mixed-kind, or keyless fall back to
// concat.
func (m *merger) smartMerge(target, source value.Value, depth int) (value.Value, error) {
	if target.Len() == 0 || source.Len() == 0 || !allObjects(target) || !allObjects(source) {
		return m.concat(target, source), nil
	}

	mergeKey, ok := findMergeKey(target.Elem(0))
	if !ok {
		return m.concat(target, source), nil
	}

	result := make([]value.Value, 0, target.Len()+source.Len())
	index := make(map[string]int, target.Len())
	for i := 0; i < target.Len(); i++ {
		elem := value.Clone(target.Elem(i))
		if kv, ok := elem.Field(mergeKey); ok && kv.Kind() == value.KindString {
			index[kv.AsString()] = len(result)
		}
		result = append(result, elem)
	}

	for i := 0; i < source.Len(); i++ {
		elem := source.Elem(i)
		if kv, ok := elem.Field(mergeKey); ok && kv.Kind() == value.KindString {
			if pos, hit := index[kv.AsString()]; hit {
				merged, err := m.merge(result[pos], elem, depth+1)
				if err != nil {
					return value.Value{}, err
				}
				result[pos] = merged
				continue
			}
		}
		result = append(result, value.Clone(elem))
	}

	return value.Array(result...), nil
}

func findMergeKey(first value.Value) (string, bool) {
	for _, candidate := range mergeKeyCandidates {
		if kv, ok := first.Field(candidate); ok && kv.Kind() == value.KindString {
			return candidate, true
		}
	}
	return "", false
}

func allObjects(arr value.Value) bool {
	for i := 0; i < arr.Len(); i++ {
		if arr.Elem(i).Kind() != value.KindObject {
			return false
		}
	}
	return true
}

func containsEqual(elems []value.Value, v value.Value) bool {
	for _, e := range elems {
		if value.Equal(e, v) {
			return true
		}
	}
	return false
}
