package guard

import (
	"fmt"
	"reflect"
)

// TupleParser is the validation-function contract for length-parameterized
// guards. It follows the same two-case result convention as Parser, with the
// expected length supplied at call time.
type TupleParser func(value any, length int, h Helpers) (any, bool)

// TupleGuard is the length-parameterized counterpart of Guard. The expected
// length is a runtime argument the uniform Guard shape cannot encode, so
// tuple guards form a separate family with a congruent surface: every entry
// point takes the length alongside the value.
type TupleGuard struct {
	name  string
	parse TupleParser
}

// NewTuple lifts a tuple parser into a TupleGuard. A nil parser yields a
// guard that rejects every value.
func NewTuple(name string, parse TupleParser) TupleGuard {
	if parse == nil {
		parse = func(any, int, Helpers) (any, bool) { return nil, false }
	}
	return TupleGuard{name: name, parse: parse}
}

// Name returns the guard's name as used in default mismatch messages.
func (t TupleGuard) Name() string { return t.name }

// Test reports whether value matches the guard's shape at the given length.
func (t TupleGuard) Test(value any, length int) bool {
	_, ok := t.parse(value, length, helpers)
	return ok
}

// Parse runs the underlying parser once and returns its two-case result.
func (t TupleGuard) Parse(value any, length int) (any, bool) {
	return t.parse(value, length, helpers)
}

// Strict returns nil when Test would return true; otherwise it returns a
// *TypeMismatchError carrying msg if given, else a default naming the guard
// and the expected length.
func (t TupleGuard) Strict(value any, length int, msg ...string) error {
	if t.Test(value, length) {
		return nil
	}
	return newTypeMismatch(fmt.Sprintf("%s of length %d", t.name, length), value, msg)
}

// Assert is the fail-fast twin of Strict: it panics with the
// *TypeMismatchError instead of returning it.
func (t TupleGuard) Assert(value any, length int, msg ...string) {
	if err := t.Strict(value, length, msg...); err != nil {
		panic(err)
	}
}

// Optional returns a sibling guard that accepts absent values (nil and
// Absent) unconditionally, regardless of the requested length, and delegates
// everything else to the base parser. As with Guard.Optional, a decoded JSON
// null always passes.
func (t TupleGuard) Optional() TupleGuard {
	base := t.parse
	return TupleGuard{
		name: t.name + " (optional)",
		parse: func(value any, length int, h Helpers) (any, bool) {
			if value == nil || value == Absent {
				return value, true
			}
			return base(value, length, h)
		},
	}
}

// Or binds the expected length and unions the result with another guard,
// yielding a plain Guard. The tuple shape is checked first; on failure the
// other guard's raw parser runs with the same helper bundle.
func (t TupleGuard) Or(length int, other Guard) Guard {
	left, right := t.parse, other.parse
	return Guard{
		name: fmt.Sprintf("%s of length %d or %s", t.name, length, other.name),
		parse: func(value any, h Helpers) (any, bool) {
			if out, ok := left(value, length, h); ok {
				return out, true
			}
			return right(value, h)
		},
	}
}

// Tuple matches a sequential indexable collection of exactly the expected
// length. A length of zero denotes the empty tuple. Negative lengths match
// nothing.
var Tuple = NewTuple("tuple", func(value any, length int, _ Helpers) (any, bool) {
	if length < 0 {
		return nil, false
	}
	if t, ok := value.([]any); ok {
		if len(t) != length {
			return nil, false
		}
		return t, true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() != length {
			return nil, false
		}
		return value, true
	default:
		return nil, false
	}
})
