package cli

import (
	"github.com/spf13/cobra"
)

var loggingCmd = &cobra.Command{
	Use:   "logging",
	Short: "Emit a message at every log level",
	Long: `Emit one message per log level to verify what the current verbosity
setting shows. Useful for checking -v/-vv behavior.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("SHOW DEBUG - debug information")
		logger.Info("SHOW INFO - general information")
		logger.Warn("SHOW WARNING - warning message")
		logger.Error("SHOW ERROR - error occurred")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loggingCmd)
}
