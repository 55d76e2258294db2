package guard

import "reflect"

// Absent marks a value that was never present at all, as opposed to an
// explicit null. Extractors produce it for missing properties and the
// Optional and Undefined guards accept it. It is distinct from nil so the
// two cases stay distinguishable in an untyped value space.
var Absent = absent{}

type absent struct{}

func (absent) String() string { return "<absent>" }

// The guards below are built purely through New and Or. They serve both as
// production primitives and as the worked example of the composition
// algebra: each derived guard is just a left-biased union of smaller ones.
var (
	// Null matches exactly the no-value sentinel, an untyped nil.
	Null = New("null", func(value any, _ Helpers) (any, bool) {
		if value == nil {
			return nil, true
		}
		return nil, false
	})

	// Undefined matches exactly the Absent sentinel.
	Undefined = New("undefined", func(value any, _ Helpers) (any, bool) {
		if value == Absent {
			return Absent, true
		}
		return nil, false
	})

	// Nil matches a value that is either null or absent.
	Nil = Null.Or(Undefined)

	// Empty matches a value classified as empty: null, absent, the empty
	// string, a sequence of length zero, or a keyed collection with no
	// entries. NotEmpty guards reject exactly this set before delegating.
	Empty = Nil.Or(emptyString).Or(emptySequence).Or(emptyKeyed)
)

var emptyString = New("empty string", func(value any, _ Helpers) (any, bool) {
	if s, ok := value.(string); ok && s == "" {
		return s, true
	}
	return nil, false
})

var emptySequence = New("empty sequence", func(value any, _ Helpers) (any, bool) {
	if t, ok := value.([]any); ok {
		if len(t) == 0 {
			return t, true
		}
		return nil, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return value, true
		}
	}
	return nil, false
})

var emptyKeyed = New("empty keyed collection", func(value any, _ Helpers) (any, bool) {
	if m, ok := value.(map[string]any); ok {
		if len(m) == 0 {
			return m, true
		}
		return nil, false
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Map && rv.Len() == 0 {
		return value, true
	}
	return nil, false
})
