package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/aj-igherighe/bootstrap/internal/errors"
	"github.com/aj-igherighe/bootstrap/internal/sampledata"
)

var sampleDataCmd = &cobra.Command{
	Use:   "sample-data",
	Short: "Generate a CSV of mixed safe and formula-like cells",
	Long: `Generate a CSV file mixing ordinary values with formula-like cells
(=SUM(...), @SHELL(...), ...) for exercising CSV-injection handling in
downstream tooling.

Examples:
  bootstrap sample-data
  bootstrap sample-data --rows 50 --out small.csv
  bootstrap sample-data --seed 42      # reproducible output`,
	RunE: runSampleData,
}

func init() {
	rootCmd.AddCommand(sampleDataCmd)
	sampleDataCmd.Flags().Int("rows", 0, "Rows to generate (default from config)")
	sampleDataCmd.Flags().Int("cols", 0, "Columns to generate (default from config)")
	sampleDataCmd.Flags().String("out", sampledata.DefaultFile, "Output file name")
	sampleDataCmd.Flags().String("dir", "", "Output directory (default from config)")
	sampleDataCmd.Flags().Int64("seed", 0, "Random seed (0 = time-based)")
}

func runSampleData(cmd *cobra.Command, args []string) error {
	rows, _ := cmd.Flags().GetInt("rows")
	cols, _ := cmd.Flags().GetInt("cols")
	out, _ := cmd.Flags().GetString("out")
	dir, _ := cmd.Flags().GetString("dir")
	seed, _ := cmd.Flags().GetInt64("seed")

	if cmd.Flags().Changed("rows") && rows < 1 {
		return apperrors.NewArgumentError("rows must be at least 1")
	}
	if cmd.Flags().Changed("cols") && cols < 1 {
		return apperrors.NewArgumentError("cols must be at least 1")
	}
	if rows == 0 {
		rows = cfg.SampleData.Rows
	}
	if cols == 0 {
		cols = cfg.SampleData.Cols
	}
	if dir == "" {
		dir = cfg.SampleData.Dir
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	path := filepath.Join(dir, out)
	gen := sampledata.New(rows, cols, seed)
	if err := gen.WriteFile(path); err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "generating sample data")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d rows to %s\n", rows, path)
	return nil
}
