// Package is ships ready-made guards for primitive and JSON-shaped values,
// built entirely on the guard package's factory and helper bundle. Each
// exported variable is an immutable guard.Guard, so the full capability
// surface (Test, Parse, Strict, Assert, Or, NotEmpty, Optional) is available
// on every one of them.
//
//	if is.String.Or(is.Number).Test(v) {
//		// v is a string, a machine number, or a digit-only string
//	}
//	if err := is.UUID.Strict(id); err != nil {
//		return err
//	}
//
// Number accepts digit-only strings in addition to machine numeric kinds but
// never coerces: on success the parser returns the original string untouched.
// Callers that need a parsed number must convert explicitly.
package is
