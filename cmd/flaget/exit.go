package main

import (
	"errors"
	"reflect"

	"github.com/dzonerzy/go-flaget/internal/tokenize"
)

// UsageError marks a mistake in how flaget itself was invoked.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

const (
	exitSuccess = 0
	exitGeneral = 1
	exitMisuse  = 2
)

// exitCodes maps errors to process exit codes.
type exitCodes struct {
	byType map[reflect.Type]int
}

func newExitCodes() *exitCodes {
	e := &exitCodes{byType: make(map[reflect.Type]int)}
	e.define(&UsageError{}, exitMisuse)
	e.define(&tokenize.SplitError{}, exitMisuse)
	return e
}

// define maps the dynamic type of err to code.
func (e *exitCodes) define(err error, code int) *exitCodes {
	if err == nil {
		return e
	}
	e.byType[reflect.TypeOf(err)] = code
	return e
}

// resolve converts an error to an exit code: the code defined for the first
// matching error type in the chain, otherwise exitGeneral.
func (e *exitCodes) resolve(err error) int {
	if err == nil {
		return exitSuccess
	}

	for t, code := range e.byType {
		if errors.As(err, reflect.New(t).Interface()) {
			return code
		}
	}
	return exitGeneral
}
