package schema

import (
	"math"
	"strconv"
)

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return Round(v, 2)
}

// FormatDate renders the date field of a row: the label for the summary row,
// the timestamp for valid dates and an empty string otherwise.
// Dates with a non-zero offset keep it so distinct instants stay distinct.
func FormatDate(r Row) string {
	if r.Label != "" {
		return r.Label
	}
	if !r.Date.Valid {
		return ""
	}
	if _, offset := r.Date.Time.Zone(); offset != 0 {
		return r.Date.Time.Format(DateTimeOffsetFormat)
	}
	return r.Date.Time.Format(DateTimeFormat)
}

// FormatCell renders a cell with the given float precision. Missing cells are empty.
func FormatCell(c Cell, precision int) string {
	switch c.Kind {
	case NumberCell:
		return strconv.FormatFloat(Round(c.Num, precision), 'f', precision, 64)
	case TextCell:
		return c.Str
	default:
		return ""
	}
}

// FormatRow renders a row in column order.
func FormatRow(r Row, columns []string, precision int) []string {
	record := make([]string, len(columns))
	for i, col := range columns {
		if col == DateColumn {
			record[i] = FormatDate(r)
			continue
		}
		record[i] = FormatCell(r.Get(col), precision)
	}
	return record
}
