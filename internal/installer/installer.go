// Package installer invokes the external package-installation tool against a
// requirements file, bounded by a timeout. It is a thin wrapper over runner
// that translates subprocess failures into the CLI's structured errors.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	apperrors "github.com/aj-igherighe/bootstrap/internal/errors"
	"github.com/aj-igherighe/bootstrap/internal/output"
	"github.com/aj-igherighe/bootstrap/internal/runner"
)

// Conventional defaults, overridable by flags and config.
const (
	DefaultRequirementsFile = "requirements-dev.txt"
	DefaultTimeout          = 300 * time.Second
)

// filePlaceholder in a command template is replaced with the quoted
// requirements file path.
const filePlaceholder = "{{FILE}}"

// Request describes a single installation: the requirements file to install
// and how long the installer may run. Derived from flags and config,
// consumed once.
type Request struct {
	File    string
	Timeout time.Duration
}

// Installer runs the configured installation tool.
type Installer struct {
	// Tool is the installation binary, e.g. "uv". The generated command is
	// "<tool> add -r <file>".
	Tool string

	// CommandTemplate, when set, replaces the generated command entirely.
	// It must contain the {{FILE}} placeholder.
	CommandTemplate string

	// Dir is the working directory for the install.
	Dir string

	// Out receives user-facing status lines. Defaults to os.Stdout.
	Out io.Writer

	// ShowProgress enables a spinner while the installer runs (TTY only).
	ShowProgress bool

	Logger *slog.Logger
}

// InstallRequirements installs the packages listed in req.File.
//
// Fails with a FileMissing error before any subprocess starts when the file
// does not exist, a Timeout error when the tool exceeds req.Timeout, a
// CommandMissing error when the tool is not in PATH, and an Installer error
// (carrying the tool's own exit code and stderr verbatim) on any non-zero exit.
func (i *Installer) InstallRequirements(ctx context.Context, req Request) error {
	if req.File == "" {
		req.File = DefaultRequirementsFile
	}
	if req.Timeout <= 0 {
		req.Timeout = DefaultTimeout
	}

	if _, err := os.Stat(i.resolve(req.File)); err != nil {
		return apperrors.NewFileNotFoundError(req.File,
			"check the path passed via --file",
			fmt.Sprintf("or create %s in the project root", req.File))
	}

	command := i.command(req.File)
	i.logger().Info("installing requirements", "file", req.File, "command", command, "timeout", req.Timeout)

	run := &runner.Runner{
		Timeout: req.Timeout,
		Dir:     i.Dir,
		Logger:  i.Logger,
	}

	stop := i.startSpinner(req.File)
	_, err := run.Run(ctx, command)
	stop()

	if err != nil {
		return i.translate(err, req)
	}

	output.PrintSuccess(i.out(), "Requirements installed successfully!")
	return nil
}

// command builds the install command line for the given file.
func (i *Installer) command(file string) string {
	quoted := quoteArg(file)
	if i.CommandTemplate != "" {
		return strings.ReplaceAll(i.CommandTemplate, filePlaceholder, quoted)
	}
	return fmt.Sprintf("%s add -r %s", i.Tool, quoted)
}

// translate maps runner failures onto the CLI's structured errors.
func (i *Installer) translate(err error, req Request) error {
	var notFound *runner.NotFoundError
	if errors.As(err, &notFound) {
		return apperrors.NewCommandMissingError(notFound.Command,
			fmt.Sprintf("ensure %q is installed and in your PATH", notFound.Command),
			"or set 'installer' in .bootstrap/config.yml to a different tool")
	}

	var timeout *runner.TimeoutError
	if errors.As(err, &timeout) {
		return apperrors.NewTimeoutError(
			fmt.Sprintf("installation timed out after %v: %s", timeout.Timeout, timeout.Command),
			"re-run with a larger --timeout value",
			"or raise 'timeout' in .bootstrap/config.yml")
	}

	var exit *runner.ExitError
	if errors.As(err, &exit) {
		return apperrors.NewInstallerError(exit.Error(), exit.Code)
	}

	return apperrors.Wrap(err, apperrors.Runtime)
}

// startSpinner starts the progress spinner when enabled and on a TTY.
// The returned func stops it; it is a no-op otherwise.
func (i *Installer) startSpinner(file string) func() {
	if !i.ShowProgress || !output.IsTTY() {
		return func() {}
	}
	syms := output.SelectSymbols()
	s := spinner.New(spinner.CharSets[syms.SpinnerSet], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" Installing packages from %s...", file)
	s.Start()
	return s.Stop
}

// resolve joins a relative path onto the working directory.
func (i *Installer) resolve(file string) string {
	if i.Dir == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(i.Dir, file)
}

func (i *Installer) out() io.Writer {
	if i.Out != nil {
		return i.Out
	}
	return os.Stdout
}

func (i *Installer) logger() *slog.Logger {
	if i.Logger != nil {
		return i.Logger
	}
	return slog.Default()
}

// quoteArg wraps a path in single quotes for safe shlex parsing, escaping
// embedded single quotes.
func quoteArg(s string) string {
	if s == "" {
		return "''"
	}
	escaped := strings.ReplaceAll(s, "'", `'\''`)
	return "'" + escaped + "'"
}
