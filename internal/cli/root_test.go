package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/aj-igherighe/bootstrap/internal/errors"
)

func TestRootCommand_SubcommandsRegistered(t *testing.T) {
	t.Parallel()

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range []string{
		"init", "install-reqs", "demo", "doctor", "source", "logging", "sample-data",
	} {
		assert.True(t, registered[name], "subcommand %q not registered", name)
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	t.Parallel()

	flags := rootCmd.PersistentFlags()
	require.NotNil(t, flags.Lookup("verbose"))
	require.NotNil(t, flags.Lookup("dir"))
	require.NotNil(t, flags.Lookup("config"))

	assert.Equal(t, "v", flags.Lookup("verbose").Shorthand)
	assert.Equal(t, "C", flags.Lookup("dir").Shorthand)
}

func TestRootCommand_SilencesCobraOutput(t *testing.T) {
	t.Parallel()

	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":              {err: nil, want: ExitSuccess},
		"argument":         {err: apperrors.NewArgumentError("bad flag"), want: ExitInvalidArguments},
		"file missing":     {err: apperrors.NewFileNotFoundError("reqs.txt"), want: ExitFileMissing},
		"setup":            {err: apperrors.NewSetupError("scaffolding failed"), want: ExitSetup},
		"timeout":          {err: apperrors.NewTimeoutError("deadline exceeded"), want: ExitTimeout},
		"command missing":  {err: apperrors.NewCommandMissingError("uv"), want: ExitCommandMissing},
		"installer code":   {err: apperrors.NewInstallerError("uv failed", 9), want: 9},
		"unknown command":  {err: fmt.Errorf("unknown command %q for %q", "frobnicate", "bootstrap"), want: ExitInvalidArguments},
		"plain error":      {err: errors.New("something broke"), want: ExitFailure},
		"wrapped cli error": {
			err:  fmt.Errorf("while running: %w", apperrors.NewTimeoutError("deadline exceeded")),
			want: ExitTimeout,
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, exitCodeFor(tc.err))
		})
	}
}

func TestAsCLIError(t *testing.T) {
	t.Parallel()

	t.Run("passes cli errors through", func(t *testing.T) {
		t.Parallel()
		orig := apperrors.NewSetupError("scaffolding failed")
		assert.Same(t, orig, asCLIError(orig))
	})

	t.Run("unknown command becomes argument error", func(t *testing.T) {
		t.Parallel()
		got := asCLIError(errors.New(`unknown command "frobnicate" for "bootstrap"`))
		assert.Equal(t, apperrors.Argument, got.Category)
	})

	t.Run("other errors become runtime errors", func(t *testing.T) {
		t.Parallel()
		got := asCLIError(errors.New("something broke"))
		assert.Equal(t, apperrors.Runtime, got.Category)
		assert.Equal(t, ExitFailure, got.Code)
	})
}

func TestFlagErrorFunc(t *testing.T) {
	t.Parallel()

	err := rootCmd.FlagErrorFunc()(rootCmd, errors.New("unknown flag: --nope"))

	cliErr := apperrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, apperrors.Argument, cliErr.Category)
	assert.Equal(t, ExitInvalidArguments, cliErr.Code)
}
