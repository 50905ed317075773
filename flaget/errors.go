package flaget

import (
	"errors"
	"fmt"
)

// ErrorType represents error categories for operations layered on top of
// parsing. Parsing itself never fails.
type ErrorType string

const (
	ErrorTypeDecode        ErrorType = "decode"
	ErrorTypeInvalidTarget ErrorType = "invalid_target"
)

// ErrNilTarget is returned by Decode when given a nil destination.
var ErrNilTarget = errors.New("decode target is nil")

// DecodeError reports a failure to decode a Result into a struct.
type DecodeError struct {
	Type ErrorType
	// Target is the Go type of the destination, e.g. "*main.Options".
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("flaget: %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("flaget: %s into %s: %v", e.Type, e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError with the given type and cause
func NewDecodeError(errType ErrorType, target string, err error) *DecodeError {
	return &DecodeError{Type: errType, Target: target, Err: err}
}
