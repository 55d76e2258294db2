package guard

// Parser is the validation-function contract every guard wraps. It inspects
// an untyped value, using the helper bundle for structural checks, and
// reports the outcome as a two-case result: on success ok is true and the
// first return carries the validated value, on failure ok is false. The
// comma-ok pair keeps legitimate falsy successes (nil, "", 0) distinct from
// failure. Parsers must be pure, deterministic and must never panic.
type Parser func(value any, h Helpers) (any, bool)

// Guard is an immutable capability object wrapping exactly one Parser. It is
// constructed with New, carries no per-call state and is safe for concurrent
// use. After a true Test the caller may assert the input to the guard's
// target type; that post-condition is the narrowing contract.
type Guard struct {
	name  string
	parse Parser
}

// New lifts a parser into a Guard. The name identifies the guard in default
// type-mismatch messages. A nil parser yields a guard that rejects every
// value.
func New(name string, parse Parser) Guard {
	if parse == nil {
		parse = func(any, Helpers) (any, bool) { return nil, false }
	}
	return Guard{name: name, parse: parse}
}

// Name returns the guard's name as used in default mismatch messages.
func (g Guard) Name() string { return g.name }

// Test reports whether value matches the guard's target shape. It is total
// and never panics.
func (g Guard) Test(value any) bool {
	_, ok := g.parse(value, helpers)
	return ok
}

// Parse runs the underlying parser once and returns its two-case result,
// giving callers the validated value for explicit narrowing without a second
// evaluation.
func (g Guard) Parse(value any) (any, bool) {
	return g.parse(value, helpers)
}

// Strict returns nil when Test would return true; otherwise it returns a
// *TypeMismatchError carrying msg if given, else a default naming the guard.
// Strict never reports failure through its boolean channel: the error return
// is the only failure signal.
func (g Guard) Strict(value any, msg ...string) error {
	if g.Test(value) {
		return nil
	}
	return newTypeMismatch(g.name, value, msg)
}

// Assert is the fail-fast twin of Strict: identical check, but it panics
// with the *TypeMismatchError instead of returning it. Use it where a
// mismatch is a programming error rather than a branch.
func (g Guard) Assert(value any, msg ...string) {
	if err := g.Strict(value, msg...); err != nil {
		panic(err)
	}
}

// Or builds the union of two guards. The left operand's parser runs first
// and its result wins when it succeeds; only then is the right operand's
// parser consulted. Operating on the raw parsers avoids evaluating either
// operand twice and preserves whichever parsed value actually matched. Or is
// associative, so a.Or(b).Or(c) accepts exactly what a.Or(b.Or(c)) does.
func (g Guard) Or(other Guard) Guard {
	left, right := g.parse, other.parse
	return Guard{
		name: g.name + " or " + other.name,
		parse: func(value any, h Helpers) (any, bool) {
			if out, ok := left(value, h); ok {
				return out, true
			}
			return right(value, h)
		},
	}
}

// NotEmpty returns a sibling guard that rejects every empty-classified value
// (see Empty) before delegating to the base parser. Emptiness wins even when
// the base guard alone would accept the value.
func (g Guard) NotEmpty() Guard {
	base := g.parse
	return Guard{
		name: g.name + " (not empty)",
		parse: func(value any, h Helpers) (any, bool) {
			if Empty.Test(value) {
				return nil, false
			}
			return base(value, h)
		},
	}
}

// Optional returns a sibling guard that accepts absent values (nil and
// Absent) unconditionally and delegates everything else to the base parser.
// Because nil stands for an explicit null in the untyped value space, a
// decoded JSON null always passes an optional guard.
func (g Guard) Optional() Guard {
	base := g.parse
	return Guard{
		name: g.name + " (optional)",
		parse: func(value any, h Helpers) (any, bool) {
			if value == nil || value == Absent {
				return value, true
			}
			return base(value, h)
		},
	}
}
