// Package fixture renders synthetic controller exports used by the package tests.
package fixture

import (
	"strconv"
	"strings"

	"github.com/huangsam/heatpump/schema"
	"github.com/samber/lo"
)

// Export is a synthetic controller export with one row per date.
// Every required column holds the row's base value unless Scale or Cells say otherwise.
type Export struct {
	Dates []string
	Bases []float64
	Drop  string             // required column left out of the header
	Scale map[string]float64 // per-column multiplier of the base
	Cells map[string]string  // raw text for a column on every row
}

// Columns returns the header of the export.
func (e Export) Columns() []string {
	kept := lo.Filter(schema.RequiredColumns(), func(col string, _ int) bool { return col != e.Drop })
	return append([]string{schema.DateColumn}, kept...)
}

// CSV renders the export with its header row.
func (e Export) CSV() string {
	cols := e.Columns()
	var b strings.Builder
	b.WriteString(strings.Join(cols, ",") + "\n")
	for i, d := range e.Dates {
		record := []string{d}
		for _, col := range cols[1:] {
			record = append(record, e.cell(col, e.Bases[i]))
		}
		b.WriteString(strings.Join(record, ",") + "\n")
	}
	return b.String()
}

func (e Export) cell(col string, base float64) string {
	if raw, ok := e.Cells[col]; ok {
		return raw
	}
	if k, ok := e.Scale[col]; ok {
		base *= k
	}
	return strconv.FormatFloat(base, 'f', -1, 64)
}
