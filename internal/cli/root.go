// Package cli implements the cobra command tree for the bootstrap tool.
// Each subcommand lives in its own file and registers itself on rootCmd in
// an init function. Execute() maps structured errors to process exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aj-igherighe/bootstrap/internal/config"
	apperrors "github.com/aj-igherighe/bootstrap/internal/errors"
	"github.com/aj-igherighe/bootstrap/internal/logging"
	"github.com/aj-igherighe/bootstrap/internal/version"
)

// Global flag variables bound to persistent flags on the root command.
var (
	verbosity  int
	workDir    string
	configPath string
)

// cfg and logger are populated by the root PersistentPreRunE before any
// subcommand runs.
var (
	cfg    *config.Configuration
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Bootstrap the development environment",
	Long: `Bootstrap applies the setup steps found useful for new projects:
initializing the package manager and task runner, and installing the
typical development packages from a requirements file.`,
	Example: `  # Initialize a new project (uv + task + default files)
  bootstrap init

  # Install development requirements with a 10 minute timeout
  bootstrap install-reqs --timeout 600

  # Verify the environment
  bootstrap doctor`,

	// Errors are formatted by Execute; cobra should not print them itself.
	SilenceUsage:  true,
	SilenceErrors: true,

	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate),

	PersistentPreRunE: setupRun,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "C", ".",
		"Working directory for bootstrap operations")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Project config file (default .bootstrap/config.yml)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperrors.NewArgumentError(err.Error(),
			fmt.Sprintf("run '%s --help' for usage", cmd.CommandPath()))
	})
}

// setupRun configures logging, switches to the working directory, and loads
// configuration before any subcommand runs.
func setupRun(cmd *cobra.Command, args []string) error {
	logger = logging.Setup(verbosity)

	if workDir != "" && workDir != "." {
		info, err := os.Stat(workDir)
		if err != nil || !info.IsDir() {
			return apperrors.NewArgumentError(
				fmt.Sprintf("working directory does not exist: %s", workDir),
				"pass an existing directory via -C/--dir")
		}
		if err := os.Chdir(workDir); err != nil {
			return apperrors.WrapWithMessage(err, apperrors.Runtime, "changing working directory")
		}
	}

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Runtime,
			"fix the reported value in .bootstrap/config.yml")
	}

	logger.Debug("bootstrap starting",
		"version", version.Version, "dir", workDir, "verbosity", verbosity)
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "\nOperation cancelled.")
		return ExitInterrupted
	}

	apperrors.PrintError(asCLIError(err))
	return exitCodeFor(err)
}

// asCLIError normalizes any error into a CLIError for display. Cobra's own
// unrecognized-subcommand errors become argument errors.
func asCLIError(err error) *apperrors.CLIError {
	var cliErr *apperrors.CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	if strings.HasPrefix(err.Error(), "unknown command") {
		return apperrors.NewArgumentError(err.Error(),
			"run 'bootstrap --help' for the list of commands")
	}
	return apperrors.NewRuntimeError(err.Error())
}

// exitCodeFor maps an error to the process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return asCLIError(err).Code
}

// workingDir returns the absolute path of the effective working directory.
func workingDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return workDir
}
