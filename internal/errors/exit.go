package errors

import "errors"

// Exit codes reported by the movekit binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidTarget indicates the target directory was rejected.
	ExitInvalidTarget = 2

	// ExitFetchError indicates a remote template could not be retrieved.
	ExitFetchError = 3

	// ExitProfileInitError indicates account profile creation failed.
	ExitProfileInitError = 4

	// ExitCancelled indicates the user declined to proceed.
	ExitCancelled = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed indicates the command layer already printed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrInvalidTarget):
		return ExitInvalidTarget
	case errors.Is(err, ErrFetch):
		return ExitFetchError
	case errors.Is(err, ErrProfileInit):
		return ExitProfileInitError
	case errors.Is(err, ErrCancelled):
		return ExitCancelled
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitInvalidTarget:
		return "Invalid Target"
	case ExitFetchError:
		return "Fetch Error"
	case ExitProfileInitError:
		return "Profile Init Error"
	case ExitCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
