package cli

import apperrors "github.com/aj-igherighe/bootstrap/internal/errors"

// Exit codes for the bootstrap CLI. Failure kinds map to distinct codes so
// wrapper scripts can branch on them; subprocess-style codes (124, 127, 130)
// follow shell conventions.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a generic runtime failure
	ExitFailure = apperrors.ExitFailure

	// ExitFileMissing indicates a user-supplied file does not exist
	ExitFileMissing = apperrors.ExitFileMissing

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = apperrors.ExitInvalidArgument

	// ExitSetup indicates first-run setup or required dependencies are missing
	ExitSetup = apperrors.ExitSetup

	// ExitTimeout indicates an external command timed out
	ExitTimeout = apperrors.ExitTimeout

	// ExitCommandMissing indicates an external tool is not in PATH
	ExitCommandMissing = apperrors.ExitCommandMissing

	// ExitInterrupted indicates the run was cancelled with SIGINT
	ExitInterrupted = 130
)
