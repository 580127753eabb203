// Package errorcodes defines key wrap errors using a structured type.
// ErrorCode holds the two-character code and human-readable description.
package errorcodes

import (
	"errors"

	"github.com/andrei-cloud/go_keywrap/pkg/keywrap"
)

// Predefined error instances.
var (
	Err00 = ErrorCode{"00", "No error"}
	Err01 = ErrorCode{"01", "Verification failure: integrity check value mismatch"}
	Err02 = ErrorCode{"02", "Key inappropriate length for algorithm"}
	Err15 = ErrorCode{
		"15",
		"Invalid input data (invalid format, invalid characters, or not enough data provided)",
	}
	Err41 = ErrorCode{"41", "Internal hardware/software error"}
	Err80 = ErrorCode{"80", "Data length error"}
	ErrBB = ErrorCode{"BB", "Invalid wrapping key"}
)

// ErrorCode represents a key wrap error with its code and description.
type ErrorCode struct {
	Code        string // two-character error code
	Description string // human-readable description
}

// Error implements the Go error interface: "<Code>: <Description>".
func (e ErrorCode) Error() string {
	return e.Code + ": " + e.Description
}

// CodeOnly returns only the error code (e.g., "01").
func (e ErrorCode) CodeOnly() string {
	return e.Code
}

// FromError maps an error returned by the engine or the CLI to its code.
// A nil error maps to Err00; anything unrecognized maps to Err41.
func FromError(err error) ErrorCode {
	var code ErrorCode
	switch {
	case err == nil:
		return Err00
	case errors.As(err, &code):
		return code
	case errors.Is(err, keywrap.ErrIntegrityCheckFailed):
		return Err01
	case errors.Is(err, keywrap.ErrInvalidKeyLength):
		return Err02
	case errors.Is(err, keywrap.ErrInvalidKEKLength):
		return ErrBB
	case errors.Is(err, keywrap.ErrInvalidWrappedKeyLength):
		return Err80
	default:
		return Err41
	}
}
