package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/aj-igherighe/bootstrap/internal/config"
	"github.com/aj-igherighe/bootstrap/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new project",
	Long: `Initialize a new project with the configured tools.

This command:
  1. Initializes the package manager (uv init)
  2. Initializes the task runner (task --init)
  3. Creates requirements-dev.txt and .bootstrap/config.yml from templates

Every step is idempotent: tools that are already initialized and files that
already exist are left alone (use --force to overwrite scaffolded files).

Examples:
  bootstrap init
  bootstrap init --skip-task     # uv only
  bootstrap init --force         # re-create scaffolded files`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("skip-uv", false, "Skip package manager initialization")
	initCmd.Flags().Bool("skip-task", false, "Skip task runner initialization")
	initCmd.Flags().BoolP("force", "f", false, "Overwrite scaffolded files that already exist")
}

func runInit(cmd *cobra.Command, args []string) error {
	skipUV, _ := cmd.Flags().GetBool("skip-uv")
	skipTask, _ := cmd.Flags().GetBool("skip-task")
	force, _ := cmd.Flags().GetBool("force")

	setup := &scaffold.Initializer{
		Installer:      cfg.Installer,
		TaskRunner:     cfg.TaskRunner,
		Timeout:        time.Duration(cfg.InitTimeout) * time.Second,
		SkipInstaller:  skipUV,
		SkipTaskRunner: skipTask,
		Force:          force,
		ConfigTemplate: config.GetDefaultConfigTemplate(),
		Out:            cmd.OutOrStdout(),
		Logger:         logger,
	}

	_, err := setup.Run(cmd.Context())
	return err
}
