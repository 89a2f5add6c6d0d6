package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailError_Format(t *testing.T) {
	err := &DetailError{
		Type:     "invalid target",
		Message:  "directory is not empty",
		Location: "/tmp/demo",
		Hint:     "Choose an empty or non-existent directory.",
		Cause:    ErrInvalidTarget,
	}

	msg := err.Error()
	assert.Contains(t, msg, "Error: invalid target")
	assert.Contains(t, msg, "Location: /tmp/demo")
	assert.Contains(t, msg, "directory is not empty")
	assert.Contains(t, msg, "Hint: Choose an empty or non-existent directory.")
}

func TestDetailError_Unwrap(t *testing.T) {
	err := NewInvalidTargetError("directory is not empty", "/tmp/demo", "")
	assert.ErrorIs(t, err, ErrInvalidTarget)

	err = NewFetchError("clone failed", map[string]string{"url": "https://example.com/t.git"}, "")
	assert.ErrorIs(t, err, ErrFetch)

	err = NewProfileInitError("no address recorded", "/tmp/demo", "")
	assert.ErrorIs(t, err, ErrProfileInit)
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "nil", err: nil, wantCode: ExitSuccess},
		{name: "invalid target", err: NewInvalidTargetError("non-empty", "/x", ""), wantCode: ExitInvalidTarget},
		{name: "fetch", err: Wrap(ErrFetch, "clone"), wantCode: ExitFetchError},
		{name: "profile init", err: Wrap(ErrProfileInit, "init"), wantCode: ExitProfileInitError},
		{name: "cancelled", err: ErrCancelled, wantCode: ExitCancelled},
		{name: "wrapped cancelled", err: fmt.Errorf("prompt: %w", ErrCancelled), wantCode: ExitCancelled},
		{name: "plain", err: errors.New("boom"), wantCode: ExitGeneralError},
		{name: "exit error wins", err: NewExitError(errors.New("boom"), ExitFetchError), wantCode: ExitFetchError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Invalid Target", ExitCodeName(ExitInvalidTarget))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
