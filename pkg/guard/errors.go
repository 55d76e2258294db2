package guard

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is the single error kind reported by Strict and Assert.
// Use errors.Is to detect it regardless of the wrapping TypeMismatchError.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError reports a value rejected by a guard's strict or assert
// entry point.
type TypeMismatchError struct {
	// Guard is the name of the guard that rejected the value.
	Guard string
	// Value is the rejected value.
	Value any
	// Message is the caller-supplied message, empty when the default applies.
	Message string
}

func (e *TypeMismatchError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("type mismatch: value of type %T does not satisfy %q", e.Value, e.Guard)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

func newTypeMismatch(name string, value any, msg []string) *TypeMismatchError {
	err := &TypeMismatchError{Guard: name, Value: value}
	if len(msg) > 0 {
		err.Message = msg[0]
	}
	return err
}
