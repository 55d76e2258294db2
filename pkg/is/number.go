package is

import (
	"encoding/json"

	"github.com/dmitrymomot/guardkit/pkg/guard"
)

// Int matches any machine integer kind, signed or unsigned.
var Int = guard.New("int", func(v any, _ guard.Helpers) (any, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return v, true
	default:
		return nil, false
	}
})

// Float matches float32 and float64 values.
var Float = guard.New("float", func(v any, _ guard.Helpers) (any, bool) {
	switch v.(type) {
	case float32, float64:
		return v, true
	default:
		return nil, false
	}
})

// JSONNumber matches the encoding/json string-backed number representation
// produced by decoders running with UseNumber.
var JSONNumber = guard.New("json number", func(v any, _ guard.Helpers) (any, bool) {
	if n, ok := v.(json.Number); ok {
		return n, true
	}
	return nil, false
})

// Number matches any machine numeric kind, a json.Number, or a digit-only
// string. Numeric strings are validated only, never coerced: a matching
// string comes back from Parse unchanged.
var Number = Int.Or(Float).Or(JSONNumber).Or(NumericString)
