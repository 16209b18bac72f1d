package cli

import (
	"github.com/spf13/cobra"

	"github.com/aj-igherighe/bootstrap/internal/sources"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage project sources",
}

var sourceLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all configured sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		sources.NewRegistry(cmd.OutOrStdout(), logger).List()
		return nil
	},
}

var sourceInstallCmd = &cobra.Command{
	Use:   "install NAME",
	Short: "Install a specific source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources.NewRegistry(cmd.OutOrStdout(), logger).Install(args[0])
		return nil
	},
}

var sourceUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update all sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		sources.NewRegistry(cmd.OutOrStdout(), logger).Update()
		return nil
	},
}

func init() {
	sourceCmd.AddCommand(sourceLsCmd)
	sourceCmd.AddCommand(sourceInstallCmd)
	sourceCmd.AddCommand(sourceUpdateCmd)
	rootCmd.AddCommand(sourceCmd)
}
