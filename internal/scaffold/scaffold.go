// Package scaffold performs first-run project setup: initializing the
// package manager and task runner, and creating the default project files
// from embedded templates. Every step is idempotent, so running init twice
// produces the same file set as running it once.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/aj-igherighe/bootstrap/internal/errors"
	"github.com/aj-igherighe/bootstrap/internal/output"
	"github.com/aj-igherighe/bootstrap/internal/runner"
)

// Marker files that indicate a tool has already been initialized.
// Their presence makes the corresponding init step a no-op.
const (
	uvMarker   = "pyproject.toml"
	taskMarker = "Taskfile.yml"
)

// Action describes what happened to a scaffolded file.
type Action string

const (
	ActionCreated     Action = "created"
	ActionExists      Action = "exists"
	ActionOverwritten Action = "overwritten"
)

// FileResult records the outcome for one scaffolded file.
type FileResult struct {
	Path   string
	Action Action
}

// Initializer performs first-run setup in a working directory.
type Initializer struct {
	// Installer is the package-manager binary initialized via "<installer> init".
	Installer string

	// TaskRunner is the task-automation binary initialized via "<task_runner> --init".
	TaskRunner string

	// Dir is the project directory. Empty means the current directory.
	Dir string

	// Timeout bounds each tool invocation.
	Timeout time.Duration

	// SkipInstaller and SkipTaskRunner skip the respective tool step.
	SkipInstaller  bool
	SkipTaskRunner bool

	// Force overwrites scaffolded files that already exist.
	Force bool

	// ConfigTemplate is the content written to .bootstrap/config.yml.
	ConfigTemplate string

	// Out receives user-facing status lines. Defaults to os.Stdout.
	Out io.Writer

	Logger *slog.Logger
}

// Run executes all setup steps. Tool steps run first, then file scaffolding.
// Missing template resources surface as Setup errors.
func (in *Initializer) Run(ctx context.Context) ([]FileResult, error) {
	if err := in.initTool(ctx, in.SkipInstaller, in.Installer, "init", uvMarker); err != nil {
		return nil, err
	}
	if err := in.initTool(ctx, in.SkipTaskRunner, in.TaskRunner, "--init", taskMarker); err != nil {
		return nil, err
	}

	results, err := in.scaffoldFiles()
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		switch r.Action {
		case ActionExists:
			output.PrintSuccess(in.out(), fmt.Sprintf("%s: up to date", r.Path))
		default:
			output.PrintSuccess(in.out(), fmt.Sprintf("%s: %s", r.Path, r.Action))
		}
	}
	output.PrintSuccess(in.out(), "Project initialized successfully!")
	return results, nil
}

// initTool runs "<tool> <arg>" unless skipped or the marker file already exists.
func (in *Initializer) initTool(ctx context.Context, skip bool, tool, arg, marker string) error {
	if skip || tool == "" {
		return nil
	}
	if _, err := os.Stat(in.resolve(marker)); err == nil {
		in.logger().Debug("tool already initialized", "tool", tool, "marker", marker)
		output.PrintSuccess(in.out(), fmt.Sprintf("%s: already initialized", tool))
		return nil
	}

	fmt.Fprintf(in.out(), "• Initializing %s...\n", tool)
	run := &runner.Runner{Timeout: in.Timeout, Dir: in.Dir, Logger: in.Logger}
	if _, err := run.Run(ctx, tool+" "+arg); err != nil {
		return in.translate(err, tool)
	}
	return nil
}

// scaffoldFiles ensures the template files and project config exist.
func (in *Initializer) scaffoldFiles() ([]FileResult, error) {
	var results []FileResult

	names, err := GetTemplateNames()
	if err != nil {
		return nil, apperrors.WrapWithMessage(err, apperrors.Setup, "reading embedded templates")
	}
	for _, name := range names {
		data, err := GetTemplate(name)
		if err != nil {
			return nil, apperrors.WrapWithMessage(err, apperrors.Setup,
				fmt.Sprintf("template %s missing from binary", name))
		}
		res, err := in.ensureFile(name, data)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	if in.ConfigTemplate != "" {
		configPath := filepath.Join(".bootstrap", "config.yml")
		res, err := in.ensureFile(configPath, []byte(in.ConfigTemplate))
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

// ensureFile writes data to path unless it already exists (and Force is off).
func (in *Initializer) ensureFile(path string, data []byte) (FileResult, error) {
	full := in.resolve(path)

	_, statErr := os.Stat(full)
	exists := statErr == nil
	if exists && !in.Force {
		return FileResult{Path: path, Action: ActionExists}, nil
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return FileResult{}, apperrors.WrapWithMessage(err, apperrors.Setup,
			fmt.Sprintf("creating directory for %s", path))
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return FileResult{}, apperrors.WrapWithMessage(err, apperrors.Setup,
			fmt.Sprintf("writing %s", path))
	}

	action := ActionCreated
	if exists {
		action = ActionOverwritten
	}
	return FileResult{Path: path, Action: action}, nil
}

// translate maps runner failures onto structured setup errors.
func (in *Initializer) translate(err error, tool string) error {
	var notFound *runner.NotFoundError
	if errors.As(err, &notFound) {
		return apperrors.NewCommandMissingError(tool,
			fmt.Sprintf("ensure %q is installed and in your PATH", tool),
			fmt.Sprintf("or re-run with --skip-%s", skipFlagFor(tool)))
	}

	var timeout *runner.TimeoutError
	if errors.As(err, &timeout) {
		return apperrors.NewTimeoutError(timeout.Error(),
			"raise 'init_timeout' in .bootstrap/config.yml")
	}

	return apperrors.WrapWithMessage(err, apperrors.Setup,
		fmt.Sprintf("initializing %s", tool))
}

// skipFlagFor maps a tool binary to its init skip flag suffix.
func skipFlagFor(tool string) string {
	if tool == "task" {
		return "task"
	}
	return "uv"
}

func (in *Initializer) resolve(path string) string {
	if in.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(in.Dir, path)
}

func (in *Initializer) out() io.Writer {
	if in.Out != nil {
		return in.Out
	}
	return os.Stdout
}

func (in *Initializer) logger() *slog.Logger {
	if in.Logger != nil {
		return in.Logger
	}
	return slog.Default()
}
