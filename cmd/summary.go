package cmd

import (
	"context"
	"errors"

	"github.com/huangsam/heatpump/core"
	"github.com/huangsam/heatpump/internal/contract"
	"github.com/huangsam/heatpump/internal/outwriter"
	"github.com/huangsam/heatpump/schema"
	"github.com/spf13/cobra"
)

// summaryCmd merges, filters and aggregates one or two exports.
var summaryCmd = &cobra.Command{
	Use:   "summary [file-a] [file-b]",
	Short: "Summarize energy, COP and efficiency over a date window.",
	Long: `Merge one or two controller CSV exports and summarize a date window.

Rows are merged into one timeline. When both files hold a row for the same
timestamp, the row of the first file wins. The window is inclusive and clamped
to the dates present in the data.

The summary reports:
- Sums of energy, runtime hours, starts and defrost cycles
- Average COP, ignoring zero readings from idle periods
- Average outdoor and water temperature
- Efficiency as generated energy over consumed energy

Examples:
  # Summarize a single export
  heatpump summary january.csv

  # Merge two overlapping exports and look at one week
  heatpump summary old.csv new.csv --start 2024-01-08 --end 2024-01-14

  # Export the augmented table with its summary row
  heatpump summary old.csv new.csv --output csv --output-file summary.csv`,
	Args:    cobra.MaximumNArgs(2),
	PreRunE: inputSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeSummary(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot summarize exports", err)
		}
	},
}

// executeSummary runs the pipeline over the configured files and prints the result.
func executeSummary(ctx context.Context, cfg *contract.Config) error {
	result, err := runFiles(ctx, cfg)
	if err != nil {
		var serr *core.SchemaError
		if errors.As(err, &serr) && cfg.Output == schema.TextOut && cfg.OutputFile == "" {
			// Show what was loaded before reporting the missing columns
			if perr := outwriter.PrintSeries(result.Filtered, cfg); perr != nil {
				contract.LogWarn("Cannot print filtered rows", perr)
			}
		}
		return err
	}
	return outwriter.PrintResult(result, cfg)
}

// runFiles opens the configured files and runs the pipeline over them.
func runFiles(ctx context.Context, cfg *contract.Config) (*core.Result, error) {
	sources, closeAll := core.FileSources(cfg.FileA, cfg.FileB)
	defer closeAll()

	result, err := core.Run(ctx, core.Request{Sources: sources, Start: cfg.Start, End: cfg.End})
	if result != nil {
		for _, perr := range result.ParseErrors {
			contract.LogWarn("Skipped unreadable file", perr)
		}
	}
	return result, err
}
