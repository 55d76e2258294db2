package is

import (
	"reflect"

	"github.com/dmitrymomot/guardkit/pkg/guard"
)

// Bool matches boolean values.
var Bool = guard.New("bool", func(v any, _ guard.Helpers) (any, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	return nil, false
})

// Func matches any callable value.
var Func = guard.New("func", func(v any, _ guard.Helpers) (any, bool) {
	if v == nil {
		return nil, false
	}
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return v, true
	}
	return nil, false
})
