package is

import "github.com/dmitrymomot/guardkit/pkg/guard"

// String matches any string value, including the empty string.
var String = guard.New("string", func(v any, _ guard.Helpers) (any, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	return nil, false
})

// NonEmptyString matches a string with at least one character.
var NonEmptyString = String.NotEmpty()

// NumericString matches a non-empty string made of ASCII digits only. It
// validates the shape and returns the string as-is, without parsing it into
// a number.
var NumericString = guard.New("numeric string", func(v any, _ guard.Helpers) (any, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, false
		}
	}
	return s, true
})
