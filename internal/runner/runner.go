// Package runner executes external commands with a bounded timeout.
// Commands are given as a single shell-like string and split with shlex,
// so quoted arguments survive intact. Nothing is retried; the caller
// decides how to surface failures.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/shlex"
)

// Result captures the outcome of a completed command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Runner executes commands in a working directory with an optional timeout.
// The zero value runs commands in the current directory with no timeout,
// capturing output.
type Runner struct {
	// Timeout bounds each Run call. Zero means no timeout.
	Timeout time.Duration

	// Dir is the working directory for commands. Empty means inherit.
	Dir string

	// Stdout and Stderr, when set, receive streamed output in addition to
	// the capture in Result. When nil, output is only captured.
	Stdout io.Writer
	Stderr io.Writer

	// Env holds extra environment variables appended to os.Environ().
	Env map[string]string

	// Logger receives debug-level execution details. Nil uses slog.Default.
	Logger *slog.Logger
}

// Run executes the given command line and waits for it to finish.
//
// Returns *NotFoundError when the binary is not in PATH, *TimeoutError when
// the timeout elapses (the process is killed), and *ExitError for a non-zero
// exit. The Result is non-nil whenever the process actually ran.
func (r *Runner) Run(ctx context.Context, command string) (*Result, error) {
	args, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parsing command %q: %w", command, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	if _, err := exec.LookPath(args[0]); err != nil {
		return nil, &NotFoundError{Command: args[0], Err: err}
	}

	ctx, cancel := r.applyTimeout(ctx)
	defer cancel()

	cmd := exec.Command(args[0], args[1:]...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	cmd.Env = os.Environ()
	for k, v := range r.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if r.Stdout != nil {
		cmd.Stdout = io.MultiWriter(&stdoutBuf, r.Stdout)
	}
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderrBuf, r.Stderr)
	}

	r.logger().Debug("executing command", "command", command, "dir", r.Dir, "timeout", r.Timeout)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting command %q: %w", command, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	start := time.Now()
	var runErr error
	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, NewTimeoutError(r.Timeout, command)
		}
		return nil, fmt.Errorf("executing command %q: %w", command, ctx.Err())
	case runErr = <-done:
	}
	duration := time.Since(start)

	result := &Result{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: duration,
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("executing command %q: %w", command, runErr)
		}
		result.ExitCode = exitErr.ExitCode()
		return result, &ExitError{
			Command: command,
			Code:    result.ExitCode,
			Stderr:  strings.TrimSpace(result.Stderr),
		}
	}

	r.logger().Debug("command completed", "command", command, "duration", duration)
	return result, nil
}

// applyTimeout returns a context with the runner's timeout applied, if any.
func (r *Runner) applyTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.Timeout > 0 {
		return context.WithTimeout(ctx, r.Timeout)
	}
	return ctx, func() {}
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
