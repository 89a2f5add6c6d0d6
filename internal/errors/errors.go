// Package errors provides sentinel errors for the movekit CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidTarget indicates the target directory exists and is not empty.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrFetch indicates a remote template could not be retrieved.
	ErrFetch = errors.New("fetch error")

	// ErrProfileInit indicates the account profile initializer failed or
	// recorded no address.
	ErrProfileInit = errors.New("profile init error")

	// ErrCancelled indicates the user declined an interactive confirmation.
	ErrCancelled = errors.New("cancelled")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending path (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewInvalidTargetError creates an invalid-target error with details.
func NewInvalidTargetError(message, location, hint string) error {
	return &DetailError{
		Type:     "invalid target",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrInvalidTarget,
	}
}

// NewFetchError creates a fetch error with details.
func NewFetchError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "template fetch failed",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrFetch,
	}
}

// NewProfileInitError creates a profile-init error with details.
func NewProfileInitError(message, location, hint string) error {
	return &DetailError{
		Type:     "profile initialization failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrProfileInit,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
