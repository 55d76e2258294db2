package is

import (
	"encoding/json"
	"reflect"

	"github.com/dmitrymomot/guardkit/pkg/guard"
)

// Object matches a string-keyed map, the shape decoded JSON objects take.
var Object = guard.New("object", func(v any, _ guard.Helpers) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return v, true
	}
	return nil, false
})

// Array matches any slice or array value.
var Array = guard.New("array", func(v any, _ guard.Helpers) (any, bool) {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return v, true
	default:
		return nil, false
	}
})

// JSON matches a decoded JSON value: null, a boolean, a number, a string, an
// array of JSON values, or an object of JSON values. The walk is bounded by
// the size of the input.
var JSON = guard.New("json value", func(v any, _ guard.Helpers) (any, bool) {
	if jsonValue(v) {
		return v, true
	}
	return nil, false
})

func jsonValue(v any) bool {
	switch x := v.(type) {
	case nil, bool, string, json.Number,
		float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case []any:
		for _, elem := range x {
			if !jsonValue(elem) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, elem := range x {
			if !jsonValue(elem) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
