package cmd

import (
	"context"
	"errors"

	"github.com/huangsam/heatpump/core"
	"github.com/huangsam/heatpump/internal/contract"
	"github.com/huangsam/heatpump/internal/outwriter"
	"github.com/spf13/cobra"
)

// mergeCmd writes the merged and filtered rows without a summary.
var mergeCmd = &cobra.Command{
	Use:   "merge [file-a] [file-b]",
	Short: "Merge exports into one deduplicated, sorted timeline.",
	Long: `Merge one or two controller CSV exports and write the rows of a date window.

Unlike summary, merge does not require the measured columns to be present and
adds no summary row. Columns found in only one file are kept and left empty for
the rows of the other.

Examples:
  # Combine two exports into a single CSV
  heatpump merge old.csv new.csv --output csv --output-file combined.csv

  # Inspect one day of a merged timeline
  heatpump merge old.csv new.csv --start 2024-01-03 --end 2024-01-03`,
	Args:    cobra.MaximumNArgs(2),
	PreRunE: inputSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeMerge(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot merge exports", err)
		}
	},
}

// executeMerge runs the pipeline and prints the filtered rows.
// Missing measured columns do not matter here.
func executeMerge(ctx context.Context, cfg *contract.Config) error {
	result, err := runFiles(ctx, cfg)
	var serr *core.SchemaError
	if err != nil && !errors.As(err, &serr) {
		return err
	}
	return outwriter.PrintSeries(result.Filtered, cfg)
}
