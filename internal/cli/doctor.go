package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/aj-igherighe/bootstrap/internal/errors"
	"github.com/aj-igherighe/bootstrap/internal/health"
	"github.com/aj-igherighe/bootstrap/internal/output"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for required tools and files",
	Long: `Check that the external tools bootstrap depends on are installed and
that the project has the expected files.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	checker := &health.Checker{
		Installer:        cfg.Installer,
		TaskRunner:       cfg.TaskRunner,
		RequirementsFile: cfg.RequirementsFile,
	}
	report := checker.Run()

	out := cmd.OutOrStdout()
	for _, check := range report.Checks {
		line := fmt.Sprintf("%s: %s", check.Name, check.Message)
		if check.Passed {
			output.PrintSuccess(out, line)
		} else {
			output.PrintFailure(out, line)
		}
	}

	if !report.Passed {
		return apperrors.NewSetupError("environment checks failed",
			"install the missing tools listed above",
			"run 'bootstrap init' to create missing project files")
	}

	output.PrintSuccess(out, "All checks passed")
	return nil
}
