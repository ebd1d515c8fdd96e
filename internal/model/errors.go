package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a parameter set cannot produce
	// a well-formed fiscal year.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrLengthMismatch is returned when the assembled year does not have
	// exactly DaysInYear entries.
	ErrLengthMismatch = errors.New("length mismatch")
)

// ConfigError names the offending parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// LengthError reports the assembled length against the expected one.
type LengthError struct {
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("length mismatch: assembled %d days, want %d", e.Got, e.Want)
}

func (e *LengthError) Unwrap() error {
	return ErrLengthMismatch
}

func invalid(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
