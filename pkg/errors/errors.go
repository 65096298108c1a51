// Package errors provides structured error types for thirdparty.
//
// Every fatal condition of a generator run carries a machine-readable [Code]
// so the CLI and tests can tell a failed resolver invocation apart from a
// malformed resolver document without matching on message text.
//
// # Error Codes
//
//   - RESOLVER_INVOCATION_FAILED: the dependency resolver exited non-zero or could not start
//   - MISSING_RESOLVE_GRAPH: the resolver output has no resolve section
//   - INVALID_*: malformed input (resolver JSON, config file, CLI arguments)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingResolveGraph, "cargo metadata did not include a resolve graph")
//	if errors.Is(err, errors.ErrCodeMissingResolveGraph) {
//	    // ...
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidMetadata, jsonErr, "decode cargo metadata")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Resolver errors
	ErrCodeResolverInvocationFailed Code = "RESOLVER_INVOCATION_FAILED"
	ErrCodeMissingResolveGraph      Code = "MISSING_RESOLVE_GRAPH"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidMetadata Code = "INVALID_METADATA"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// Only the outermost *Error in the chain is consulted.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// An *Error in the chain wins; otherwise any error with a Code method (such as
// [ResolverError]) supplies it. Returns empty string if neither is found.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var coded interface{ Code() Code }
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return ""
}

// UserMessage returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ResolverError describes a resolver process that exited unsuccessfully.
// It is used as the Cause of an ErrCodeResolverInvocationFailed error.
type ResolverError struct {
	Command  string // Command line that was run
	ExitCode int    // Process exit code, -1 if the process never started
	Stderr   string // Captured standard error
}

// Error implements the error interface.
func (e *ResolverError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s could not be started", e.Command)
	}
	if e.Stderr == "" {
		return fmt.Sprintf("%s failed (exit %d)", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s failed (exit %d).\n\nSTDERR:\n%s", e.Command, e.ExitCode, e.Stderr)
}

// Code returns the error code for this error type.
func (e *ResolverError) Code() Code {
	return ErrCodeResolverInvocationFailed
}
