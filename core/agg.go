package core

import (
	"github.com/huangsam/heatpump/schema"
	"github.com/samber/lo"
)

// MissingColumns returns the required columns absent from the series, in registry order.
func MissingColumns(s schema.Series) []string {
	return lo.Filter(schema.RequiredColumns(), func(col string, _ int) bool {
		return !s.HasColumn(col)
	})
}

// Aggregate validates the required columns and computes the summary of a series.
// Additive columns are summed, ratio columns averaged over strictly positive samples
// and plain intensive columns averaged over present samples. All figures are rounded
// to two decimals. A *SchemaError is returned, with nothing computed, when any
// required column is missing.
func Aggregate(s schema.Series) (schema.AugmentedSeries, schema.Summary, error) {
	if missing := MissingColumns(s); len(missing) > 0 {
		return schema.AugmentedSeries{}, schema.Summary{}, &SchemaError{Missing: missing}
	}

	summary := schema.Summary{
		Sums:     make(map[string]float64),
		Averages: make(map[string]schema.Mean),
	}
	for _, col := range schema.ColumnsWithRole(schema.AdditiveRole) {
		summary.Sums[col] = schema.Round2(sumColumn(s.Rows, col))
	}
	for _, col := range schema.ColumnsWithRole(schema.IntensiveRatioRole) {
		summary.Averages[col] = meanColumn(s.Rows, col, func(v float64) bool { return v > 0 })
	}
	for _, col := range schema.ColumnsWithRole(schema.IntensivePlainRole) {
		summary.Averages[col] = meanColumn(s.Rows, col, func(float64) bool { return true })
	}
	summary.Efficiency = Efficiency(summary.Sums[schema.EnergyGeneratedTotal], summary.Sums[schema.EnergyConsumedTotal])

	augmented := schema.AugmentedSeries{
		Series:     s.WithRows(s.Rows),
		SummaryRow: buildSummaryRow(s.Columns, summary),
	}
	return augmented, summary, nil
}

// Efficiency is generated / consumed * 100, rounded to two decimals.
// A consumed total of exactly zero yields zero.
func Efficiency(generated, consumed float64) float64 {
	if consumed == 0 {
		return 0
	}
	return schema.Round2(generated / consumed * 100)
}

// sumColumn adds up the numeric cells of a column.
func sumColumn(rows []schema.Row, col string) float64 {
	return lo.SumBy(rows, func(r schema.Row) float64 {
		if c := r.Get(col); c.IsNumber() {
			return c.Num
		}
		return 0
	})
}

// meanColumn averages the numeric cells of a column accepted by keep.
// The mean is invalid when no cell qualifies.
func meanColumn(rows []schema.Row, col string, keep func(float64) bool) schema.Mean {
	var total float64
	var n int
	for _, r := range rows {
		c := r.Get(col)
		if !c.IsNumber() || !keep(c.Num) {
			continue
		}
		total += c.Num
		n++
	}
	if n == 0 {
		return schema.Mean{}
	}
	return schema.Mean{Value: schema.Round2(total / float64(n)), Valid: true}
}

// buildSummaryRow lays out sums and averages under their columns.
// Identifier and ignored columns stay empty.
func buildSummaryRow(columns []string, summary schema.Summary) schema.Row {
	row := schema.Row{
		Date:   schema.InvalidTimestamp,
		Label:  schema.SummaryLabel,
		Values: make(map[string]schema.Cell, len(columns)),
	}
	for _, col := range columns {
		switch role := schema.RoleOf(col); {
		case role == schema.AdditiveRole:
			row.Values[col] = schema.Number(summary.Sums[col])
		case role.IsIntensive():
			if m := summary.Averages[col]; m.Valid {
				row.Values[col] = schema.Number(m.Value)
			} else {
				row.Values[col] = schema.Missing()
			}
		case role == schema.IdentifierRole:
			continue
		default:
			row.Values[col] = schema.Missing()
		}
	}
	return row
}
