package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aj-igherighe/bootstrap/internal/testutil"
)

// TestHelperProcess lets this test binary stand in for external commands.
func TestHelperProcess(t *testing.T) {
	testutil.TestHelperProcess(t)
}

func TestRunner_Run_Success(t *testing.T) {
	command, env := testutil.HelperCommand(t, "TestHelperProcess", testutil.HelperProcessConfig{
		Stdout: "hello from helper",
	})

	r := &Runner{Env: env}
	result, err := r.Run(context.Background(), command)

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "hello from helper", result.Stdout)
	assert.Greater(t, result.Duration, time.Duration(0))
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	command, env := testutil.HelperCommand(t, "TestHelperProcess", testutil.HelperProcessConfig{
		ExitCode: 7,
		Stderr:   "resolver failed",
	})

	r := &Runner{Env: env}
	result, err := r.Run(context.Background(), command)

	require.Error(t, err)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 7, exitErr.Code)
	assert.Equal(t, "resolver failed", exitErr.Stderr)
	require.NotNil(t, result)
	assert.Equal(t, 7, result.ExitCode)
}

func TestRunner_Run_Timeout(t *testing.T) {
	command, env := testutil.HelperCommand(t, "TestHelperProcess", testutil.HelperProcessConfig{
		SleepMS: 5000,
	})

	r := &Runner{Timeout: 100 * time.Millisecond, Env: env}
	start := time.Now()
	_, err := r.Run(context.Background(), command)

	require.Error(t, err)
	var timeoutErr *TimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	assert.Equal(t, 100*time.Millisecond, timeoutErr.Timeout)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	// The process must be killed, not waited out.
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestRunner_Run_CommandNotFound(t *testing.T) {
	t.Parallel()

	r := &Runner{}
	_, err := r.Run(context.Background(), "definitely-not-a-real-command-xyz --flag")

	require.Error(t, err)
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "definitely-not-a-real-command-xyz", notFound.Command)
}

func TestRunner_Run_InvalidCommandLine(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		command string
	}{
		"empty":            {command: ""},
		"whitespace only":  {command: "   "},
		"unclosed quoting": {command: `echo "unterminated`},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := &Runner{}
			_, err := r.Run(context.Background(), tt.command)
			assert.Error(t, err)
		})
	}
}

func TestRunner_Run_QuotedArguments(t *testing.T) {
	// shlex must keep quoted arguments intact. The helper ignores its
	// arguments, so success here just proves parsing didn't break the
	// command line.
	command, env := testutil.HelperCommand(t, "TestHelperProcess", testutil.HelperProcessConfig{})
	command += " 'path with spaces.txt'"

	r := &Runner{Env: env}
	_, err := r.Run(context.Background(), command)
	require.NoError(t, err)
}

func TestRunner_Run_Cancelled(t *testing.T) {
	command, env := testutil.HelperCommand(t, "TestHelperProcess", testutil.HelperProcessConfig{
		SleepMS: 5000,
	})

	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{Env: env}

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := r.Run(ctx, command)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
