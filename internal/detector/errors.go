// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"errors"
	"fmt"
)

// ScanErrorType defines the type of scan error
type ScanErrorType int

const (
	// ErrorInput indicates missing, conflicting or unreadable input
	ErrorInput ScanErrorType = iota

	// ErrorOutput indicates an invalid or unwritable output destination
	ErrorOutput

	// ErrorValidation indicates a fault raised while validating a candidate
	ErrorValidation

	// ErrorRow indicates a row could not be scanned
	ErrorRow

	// ErrorConfig indicates an invalid configuration
	ErrorConfig
)

// String returns the string representation of the error type
func (t ScanErrorType) String() string {
	switch t {
	case ErrorInput:
		return "input"
	case ErrorOutput:
		return "output"
	case ErrorValidation:
		return "validation"
	case ErrorRow:
		return "row"
	case ErrorConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ScanError represents an error that occurred while reading, scanning or
// writing results.
type ScanError struct {
	Type    ScanErrorType
	Message string

	// Path is the input or output file involved, if any
	Path string

	// Row is the 0-based row index for row-level faults, -1 otherwise
	Row int

	Cause error
}

// Error implements the error interface
func (e *ScanError) Error() string {
	msg := e.Type.String() + ": " + e.Message
	if e.Path != "" {
		msg += fmt.Sprintf(" (path: %s)", e.Path)
	}
	if e.Row >= 0 {
		msg += fmt.Sprintf(" (row: %d)", e.Row)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error unwrapping
func (e *ScanError) Unwrap() error {
	return e.Cause
}

// NewScanError creates a new ScanError that is not tied to a row
func NewScanError(t ScanErrorType, message, path string, cause error) *ScanError {
	return &ScanError{Type: t, Message: message, Path: path, Row: -1, Cause: cause}
}

// NewInputError creates an input error
func NewInputError(message, path string, cause error) *ScanError {
	return NewScanError(ErrorInput, message, path, cause)
}

// NewOutputError creates an output error
func NewOutputError(message, path string, cause error) *ScanError {
	return NewScanError(ErrorOutput, message, path, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message, path string, cause error) *ScanError {
	return NewScanError(ErrorConfig, message, path, cause)
}

// NewRowError creates an error for a row that could not be scanned
func NewRowError(row int, message string, cause error) *ScanError {
	return &ScanError{Type: ErrorRow, Message: message, Row: row, Cause: cause}
}

// ErrorTypeOf returns the type of the first ScanError in err's chain.
func ErrorTypeOf(err error) (ScanErrorType, bool) {
	var se *ScanError
	if errors.As(err, &se) {
		return se.Type, true
	}
	return 0, false
}

// IsInputError reports whether err is an input error
func IsInputError(err error) bool {
	t, ok := ErrorTypeOf(err)
	return ok && t == ErrorInput
}

// IsOutputError reports whether err is an output error
func IsOutputError(err error) bool {
	t, ok := ErrorTypeOf(err)
	return ok && t == ErrorOutput
}
