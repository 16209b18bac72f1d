package runner

import (
	"context"
	"fmt"
	"time"
)

// TimeoutError represents a command timeout failure.
type TimeoutError struct {
	Timeout time.Duration // The timeout duration that was exceeded
	Command string        // The command that timed out
	Err     error         // Underlying error (context.DeadlineExceeded)
}

// Error returns a human-readable error message with timeout details.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command timed out after %v: %s", e.Timeout, e.Command)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a new TimeoutError with the given details.
func NewTimeoutError(timeout time.Duration, command string) *TimeoutError {
	return &TimeoutError{
		Timeout: timeout,
		Command: command,
		Err:     context.DeadlineExceeded,
	}
}

// NotFoundError indicates the command's binary is not in PATH.
type NotFoundError struct {
	Command string // The binary that could not be found
	Err     error
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command not found: %s", e.Command)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ExitError indicates the command ran but returned a non-zero exit code.
// Stderr is preserved verbatim for diagnosis.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
}

// Error returns a human-readable error message including captured stderr.
func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command failed with exit code %d: %s\nstderr: %s", e.Code, e.Command, e.Stderr)
	}
	return fmt.Sprintf("command failed with exit code %d: %s", e.Code, e.Command)
}
