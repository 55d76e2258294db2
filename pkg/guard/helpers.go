package guard

import "reflect"

// Helpers is the fixed bundle of structural predicates passed by value to
// every parser invocation. It is stateless, so the zero value is ready to
// use and a single bundle is shared across all guards.
type Helpers struct{}

// helpers is the shared bundle handed to parsers by Guard and TupleGuard.
var helpers Helpers

// HasProperty reports whether key is present in container and, when guards
// are supplied, whether every guard accepts the value stored under key.
// Containers may be string-keyed maps or structs (directly or behind a
// pointer); anything else has no properties and yields false.
func (Helpers) HasProperty(container any, key string, guards ...Guard) bool {
	value, ok := property(container, key)
	if !ok {
		return false
	}
	for _, g := range guards {
		if !g.Test(value) {
			return false
		}
	}
	return true
}

// HasOptionalProperty reports whether key is absent from container or, when
// present, satisfies every supplied guard. It encodes "optional field"
// semantics: a missing or absent-valued property always passes.
func (Helpers) HasOptionalProperty(container any, key string, guards ...Guard) bool {
	value, ok := property(container, key)
	if !ok || value == Absent {
		return true
	}
	for _, g := range guards {
		if !g.Test(value) {
			return false
		}
	}
	return true
}

// TupleHas reports whether index is a valid slot of tuple and g accepts the
// value at that slot. An out-of-range index or a non-sequential tuple yields
// false rather than an error.
func (Helpers) TupleHas(tuple any, index int, g Guard) bool {
	if index < 0 {
		return false
	}
	if t, ok := tuple.([]any); ok {
		if index >= len(t) {
			return false
		}
		return g.Test(t[index])
	}
	rv := reflect.ValueOf(tuple)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if index >= rv.Len() {
			return false
		}
		return g.Test(rv.Index(index).Interface())
	default:
		return false
	}
}

// Includes reports whether value is one of the elements of the fixed set.
// Comparison is total: elements with uncomparable dynamic types are matched
// structurally instead of panicking.
func (Helpers) Includes(set []any, value any) bool {
	for _, elem := range set {
		if equal(elem, value) {
			return true
		}
	}
	return false
}

func property(container any, key string) (any, bool) {
	if m, ok := container.(map[string]any); ok {
		v, ok := m[key]
		return v, ok
	}
	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		f := rv.FieldByName(key)
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	default:
		return nil, false
	}
}

func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	// Comparability is a per-value question: an interface-typed array or
	// struct field can smuggle an uncomparable value past a type-level
	// check and panic on ==.
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
