package installer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/aj-igherighe/bootstrap/internal/errors"
	"github.com/aj-igherighe/bootstrap/internal/testutil"
)

// TestHelperProcess lets this test binary stand in for the install tool.
func TestHelperProcess(t *testing.T) {
	testutil.TestHelperProcess(t)
}

// helperInstaller returns an Installer whose command template re-invokes the
// test binary as a helper process with the given behavior.
func helperInstaller(t *testing.T, config testutil.HelperProcessConfig) *Installer {
	t.Helper()

	command, env := testutil.HelperCommand(t, "TestHelperProcess", config)
	for k, v := range env {
		t.Setenv(k, v)
	}

	return &Installer{
		Tool:            "uv",
		CommandTemplate: command + " {{FILE}}",
		Out:             &bytes.Buffer{},
	}
}

// writeRequirements creates a requirements file in a temp dir and returns its path.
func writeRequirements(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements-dev.txt")
	require.NoError(t, os.WriteFile(path, []byte("ruff\npytest\n"), 0o644))
	return path
}

func TestInstaller_MissingFile(t *testing.T) {
	t.Parallel()

	inst := &Installer{Tool: "uv", Out: &bytes.Buffer{}}
	err := inst.InstallRequirements(context.Background(), Request{
		File:    filepath.Join(t.TempDir(), "missing.txt"),
		Timeout: time.Second,
	})

	require.Error(t, err)
	cliErr := apperrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, apperrors.FileMissing, cliErr.Category)
	assert.Equal(t, apperrors.ExitFileMissing, cliErr.Code)
}

func TestInstaller_Success(t *testing.T) {
	inst := helperInstaller(t, testutil.HelperProcessConfig{})
	out := &bytes.Buffer{}
	inst.Out = out

	err := inst.InstallRequirements(context.Background(), Request{
		File:    writeRequirements(t),
		Timeout: 5 * time.Second,
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Requirements installed successfully!")
}

func TestInstaller_ToolFailure_PassesThroughExitCode(t *testing.T) {
	inst := helperInstaller(t, testutil.HelperProcessConfig{
		ExitCode: 9,
		Stderr:   "no solution found",
	})

	err := inst.InstallRequirements(context.Background(), Request{
		File:    writeRequirements(t),
		Timeout: 5 * time.Second,
	})

	require.Error(t, err)
	cliErr := apperrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, apperrors.Installer, cliErr.Category)
	assert.Equal(t, 9, cliErr.Code)
	// The tool's stderr is passed through verbatim for diagnosis.
	assert.Contains(t, cliErr.Message, "no solution found")
}

func TestInstaller_Timeout(t *testing.T) {
	inst := helperInstaller(t, testutil.HelperProcessConfig{SleepMS: 5000})

	err := inst.InstallRequirements(context.Background(), Request{
		File:    writeRequirements(t),
		Timeout: 100 * time.Millisecond,
	})

	require.Error(t, err)
	cliErr := apperrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, apperrors.Timeout, cliErr.Category)
	assert.Equal(t, apperrors.ExitTimeout, cliErr.Code)
}

func TestInstaller_ToolNotInPath(t *testing.T) {
	t.Parallel()

	inst := &Installer{Tool: "definitely-not-a-real-installer-xyz", Out: &bytes.Buffer{}}
	err := inst.InstallRequirements(context.Background(), Request{
		File:    writeRequirements(t),
		Timeout: time.Second,
	})

	require.Error(t, err)
	cliErr := apperrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, apperrors.CommandMissing, cliErr.Category)
	assert.Equal(t, apperrors.ExitCommandMissing, cliErr.Code)
}

func TestInstaller_CommandGeneration(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		installer *Installer
		file      string
		want      string
	}{
		"default tool command": {
			installer: &Installer{Tool: "uv"},
			file:      "requirements-dev.txt",
			want:      "uv add -r 'requirements-dev.txt'",
		},
		"template override": {
			installer: &Installer{Tool: "uv", CommandTemplate: "pip install -r {{FILE}}"},
			file:      "reqs.txt",
			want:      "pip install -r 'reqs.txt'",
		},
		"file with single quote": {
			installer: &Installer{Tool: "uv"},
			file:      "it's.txt",
			want:      `uv add -r 'it'\''s.txt'`,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.installer.command(tt.file))
		})
	}
}

func TestInstaller_Defaults(t *testing.T) {
	t.Parallel()

	// Empty request fields fall back to the conventional defaults before
	// the file check runs, so the reported missing file is the default one.
	inst := &Installer{Tool: "uv", Dir: t.TempDir(), Out: &bytes.Buffer{}}
	err := inst.InstallRequirements(context.Background(), Request{})

	require.Error(t, err)
	cliErr := apperrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Contains(t, cliErr.Message, DefaultRequirementsFile)
}
