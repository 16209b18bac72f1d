package cli

import (
	"github.com/spf13/cobra"

	"github.com/aj-igherighe/bootstrap/internal/demo"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a demo of bootstrap functionality",
	Long: `Run a demo of bootstrap functionality.

Prints fixed illustrative output; no side effects beyond output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		demo.Run(cmd.OutOrStdout(), workingDir(), logger)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
