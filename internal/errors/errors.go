// Package errors provides structured error handling for the bootstrap CLI.
// It includes categorized errors with actionable remediation guidance and
// the exit code each failure kind maps to.
package errors

import "fmt"

// Category represents the type of error that occurred.
type Category int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument Category = iota
	// FileMissing errors occur when a user-supplied file path does not exist.
	FileMissing
	// Setup errors occur when first-run scaffolding cannot complete.
	Setup
	// Timeout errors occur when an external command exceeds its deadline.
	Timeout
	// CommandMissing errors occur when an external tool is not in PATH.
	CommandMissing
	// Installer errors carry a non-zero exit from the underlying install tool.
	Installer
	// Runtime errors cover everything else that fails during execution.
	Runtime
)

// Exit codes per error category. The subprocess-related codes follow the
// shell conventions the original tooling used (124 timeout, 127 not found).
const (
	ExitFailure         = 1
	ExitFileMissing     = 2
	ExitInvalidArgument = 3
	ExitSetup           = 4
	ExitTimeout         = 124
	ExitCommandMissing  = 127
)

// String returns a human-readable name for the error category.
func (c Category) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case FileMissing:
		return "File Not Found"
	case Setup:
		return "Setup Error"
	case Timeout:
		return "Timeout"
	case CommandMissing:
		return "Command Not Found"
	case Installer:
		return "Installer Failure"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// exitCode returns the default exit code for a category.
func (c Category) exitCode() int {
	switch c {
	case Argument:
		return ExitInvalidArgument
	case FileMissing:
		return ExitFileMissing
	case Setup:
		return ExitSetup
	case Timeout:
		return ExitTimeout
	case CommandMissing:
		return ExitCommandMissing
	default:
		return ExitFailure
	}
}

// CLIError is a structured error with category, remediation guidance, and
// the process exit code the failure maps to.
type CLIError struct {
	// Category is the type of error (Argument, FileMissing, etc.)
	Category Category
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Code is the process exit code for this failure.
	Code int
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// New creates a CLIError for the given category with its default exit code.
func New(category Category, message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    category,
		Message:     message,
		Remediation: remediation,
		Code:        category.exitCode(),
	}
}

// NewArgumentError creates a new argument error with the given message and remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return New(Argument, message, remediation...)
}

// NewFileNotFoundError creates an error for a missing user-supplied file.
func NewFileNotFoundError(path string, remediation ...string) *CLIError {
	return New(FileMissing, fmt.Sprintf("file not found: %s", path), remediation...)
}

// NewSetupError creates a new setup error.
func NewSetupError(message string, remediation ...string) *CLIError {
	return New(Setup, message, remediation...)
}

// NewTimeoutError creates an error for a timed-out command.
func NewTimeoutError(message string, remediation ...string) *CLIError {
	return New(Timeout, message, remediation...)
}

// NewCommandMissingError creates an error for a tool missing from PATH.
func NewCommandMissingError(command string, remediation ...string) *CLIError {
	return New(CommandMissing, fmt.Sprintf("command not found: %s", command), remediation...)
}

// NewInstallerError creates an error for a non-zero installer exit.
// The installer's own exit code is passed through as the process exit code
// so callers can diagnose the underlying tool's failure directly.
func NewInstallerError(message string, installerCode int, remediation ...string) *CLIError {
	e := New(Installer, message, remediation...)
	if installerCode > 0 {
		e.Code = installerCode
	}
	return e
}

// NewRuntimeError creates a new runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return New(Runtime, message, remediation...)
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category Category, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	e := New(category, err.Error(), remediation...)
	e.Err = err
	return e
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category Category, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	e := New(category, fmt.Sprintf("%s: %v", message, err), remediation...)
	e.Err = err
	return e
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}
