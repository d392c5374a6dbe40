package orderbook

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParam represents an invalid parameter error
	ErrInvalidParam = errors.New("invalid parameter")

	// ErrMalformedAppData is returned when app data fields do not match any known shape
	ErrMalformedAppData = errors.New("malformed app data")

	// ErrHashMismatch is returned when the full app data does not hash to the expected value
	ErrHashMismatch = errors.New("app data hash mismatch")
)

// InvalidParamError represents an invalid parameter error with context
type InvalidParamError struct {
	Message string
}

func (e *InvalidParamError) Error() string {
	return e.Message
}

func (e *InvalidParamError) Is(target error) bool {
	return target == ErrInvalidParam
}

// MalformedAppDataError represents a structural app data error with context
type MalformedAppDataError struct {
	Message string
	Err     error
}

func (e *MalformedAppDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed app data: %s: %v", e.Message, e.Err)
	}
	return "malformed app data: " + e.Message
}

func (e *MalformedAppDataError) Unwrap() error {
	return e.Err
}

func (e *MalformedAppDataError) Is(target error) bool {
	return target == ErrMalformedAppData
}

// HashMismatchError carries both sides of a failed app data hash comparison
type HashMismatchError struct {
	Expected string
	Actual   string
	// Err is set when Expected is not a valid hash
	Err error
}

func (e *HashMismatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("app data hash mismatch: expected %s, got %s: %v", e.Expected, e.Actual, e.Err)
	}
	return fmt.Sprintf("app data hash mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func (e *HashMismatchError) Unwrap() error {
	return e.Err
}

func (e *HashMismatchError) Is(target error) bool {
	return target == ErrHashMismatch
}

func malformed(format string, args ...interface{}) error {
	return &MalformedAppDataError{Message: fmt.Sprintf(format, args...)}
}
