// Package guard provides composable runtime predicates ("guards") for values
// of unknown provenance, such as decoded JSON or other external input. A
// guard wraps a single validation function and exposes both a non-throwing
// boolean check and a fail-fast strict variant, so callers never duplicate
// validation logic between branching and assertion sites.
//
// # Architecture
//
// The package has four building blocks:
//   - Parser      – the validation-function contract: a pure function from an
//     untyped value to a two-case (value, ok) result
//   - Guard       – an immutable capability object lifted from a Parser by New,
//     with Test, Parse, Strict, Assert, Or, NotEmpty and Optional
//   - TupleGuard  – a parallel family for guards parameterized by an expected
//     length, which the uniform Guard shape cannot encode
//   - Helpers     – a stateless bundle of structural predicates (property
//     presence, optional property presence, tuple slot, fixed-set membership)
//     handed to every parser invocation
//
// Guards are constructed once, carry no per-call state, and are safe for
// concurrent use. Composition with Or is left-biased and associative, and it
// short-circuits on the underlying parsers so the matching operand's parsed
// value is preserved without double evaluation.
//
// # Usage
//
//	isID := guard.New("id", func(v any, h guard.Helpers) (any, bool) {
//		m, ok := v.(map[string]any)
//		if !ok || !h.HasProperty(m, "id") {
//			return nil, false
//		}
//		return m, true
//	})
//
//	if isID.Test(input) {
//		m := input.(map[string]any) // contract: safe after a true Test
//		_ = m
//	}
//	if err := isID.Strict(input); err != nil {
//		// *TypeMismatchError, errors.Is(err, guard.ErrTypeMismatch)
//	}
//
// The derived Null, Undefined, Nil and Empty guards at the bottom of the
// package are built purely through New and Or and double as the worked
// example of the composition algebra.
//
// # Error Handling
//
// The package has exactly one error kind. Test, Parse, Or, NotEmpty and
// Optional never fail; Strict returns a *TypeMismatchError and Assert panics
// with one. Both carry either a caller-supplied message or a default naming
// the guard that rejected the value.
//
// # Performance Considerations
//
// Every operation is a single synchronous pass over its argument. Common
// container shapes (map[string]any, []any) take an allocation-free fast path;
// other maps, slices, arrays and structs fall back to reflection.
package guard
