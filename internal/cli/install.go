package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/aj-igherighe/bootstrap/internal/errors"
	"github.com/aj-igherighe/bootstrap/internal/installer"
)

var installReqsCmd = &cobra.Command{
	Use:   "install-reqs",
	Short: "Install development requirements",
	Long: `Install development requirements using the configured installer.

Reads a requirements file and installs all listed packages. The invocation
is bounded by a timeout; on expiry the installer process is terminated.

Examples:
  bootstrap install-reqs
  bootstrap install-reqs --file requirements.txt --timeout 600`,
	RunE: runInstallReqs,
}

func init() {
	rootCmd.AddCommand(installReqsCmd)
	installReqsCmd.Flags().StringP("file", "f", "", "Requirements file to install (default from config)")
	installReqsCmd.Flags().IntP("timeout", "t", 0, "Timeout in seconds (default from config)")
}

func runInstallReqs(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	timeout, _ := cmd.Flags().GetInt("timeout")

	if cmd.Flags().Changed("timeout") && timeout < 1 {
		return apperrors.NewArgumentError(
			fmt.Sprintf("timeout must be at least 1 second, got %d", timeout),
			"pass --timeout with a value between 1 and 3600")
	}
	if timeout == 0 {
		timeout = cfg.Timeout
	}
	if file == "" {
		file = cfg.RequirementsFile
	}

	inst := &installer.Installer{
		Tool:            cfg.Installer,
		CommandTemplate: cfg.InstallCommand,
		Out:             cmd.OutOrStdout(),
		ShowProgress:    cfg.ShowProgress,
		Logger:          logger,
	}

	return inst.InstallRequirements(cmd.Context(), installer.Request{
		File:    file,
		Timeout: time.Duration(timeout) * time.Second,
	})
}
