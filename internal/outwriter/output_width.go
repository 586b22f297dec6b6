package outwriter

import (
	"os"

	"github.com/huangsam/heatpump/internal/contract"
	"github.com/huangsam/heatpump/schema"
	"golang.org/x/term"
)

const (
	defaultTermWidth = 80 // Conservative default for narrow terminals and CI
	dateColumnWidth  = 22 // Timestamp or summary label with borders/padding
	minColumnWidth   = 10 // Narrowest numeric column with borders/padding
	columnPadding    = 3
)

// GetTermWidth returns the width available for table output: the configured
// override, else the detected terminal width, else a conservative default.
func GetTermWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return defaultTermWidth
	}
	return detectedWidth
}

// visibleColumns returns the leading columns that fit in the given width and
// how many were left out. The date column and one other always show.
func visibleColumns(columns []string, width int) ([]string, int) {
	used := 0
	var shown []string
	for _, col := range columns {
		w := max(len(col)+columnPadding, minColumnWidth)
		if col == schema.DateColumn {
			w = dateColumnWidth
		}
		if len(shown) >= 2 && used+w > width {
			break
		}
		used += w
		shown = append(shown, col)
	}
	return shown, len(columns) - len(shown)
}
