package cmd

import (
	"github.com/huangsam/heatpump/internal/contract"
	"github.com/huangsam/heatpump/internal/outwriter"
	"github.com/spf13/cobra"
)

// columnsCmd displays the required columns and their aggregation roles.
var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Display the required CSV columns and how each is aggregated.",
	Long: `Show every column an export must carry for summary to work.

Each column has a role:
- additive: summed over the window
- intensive-ratio: averaged over readings above zero
- intensive-plain: averaged over all present readings

Other columns are passed through untouched. No files are read.

Examples:
  # List the columns
  heatpump columns

  # Get the list as JSON
  heatpump columns --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.PrintColumns(cfg); err != nil {
			contract.LogFatal("Cannot display columns", err)
		}
	},
}
