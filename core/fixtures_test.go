package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/heatpump/schema"
)

// fixtureColumns is the header used by CSV fixtures: date, every measured column and a free-text column.
func fixtureColumns() []string {
	cols := append([]string{schema.DateColumn}, schema.RequiredColumns()...)
	return append(cols, "note")
}

// fixtureRecord returns a CSV record where every measured column holds base,
// with per-column overrides applied.
func fixtureRecord(date string, base float64, overrides map[string]string) []string {
	cols := fixtureColumns()
	record := make([]string, len(cols))
	for i, col := range cols {
		switch col {
		case schema.DateColumn:
			record[i] = date
		case "note":
			record[i] = "ok"
		default:
			record[i] = strconv.FormatFloat(base, 'f', -1, 64)
		}
		if v, ok := overrides[col]; ok {
			record[i] = v
		}
	}
	return record
}

// fixtureCSV renders a header and records as CSV text.
func fixtureCSV(records ...[]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(fixtureColumns(), ","))
	b.WriteString("\n")
	for _, r := range records {
		b.WriteString(strings.Join(r, ","))
		b.WriteString("\n")
	}
	return b.String()
}

// day returns midnight UTC of the given date.
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seriesOf builds a series over the given columns with one row per entry.
// A zero time produces an invalid date.
func seriesOf(columns []string, dates []time.Time, values []map[string]float64) schema.Series {
	rows := make([]schema.Row, len(dates))
	for i, d := range dates {
		row := schema.Row{Date: schema.InvalidTimestamp, Values: map[string]schema.Cell{}}
		if !d.IsZero() {
			row.Date = schema.NewTimestamp(d)
		}
		if i < len(values) {
			for k, v := range values[i] {
				row.Values[k] = schema.Number(v)
			}
		}
		rows[i] = row
	}
	return schema.Series{Columns: columns, Rows: rows}
}

// fullSeries builds a series carrying every required column, each row holding base for all of them.
func fullSeries(dates []time.Time, bases []float64) schema.Series {
	values := make([]map[string]float64, len(bases))
	for i, b := range bases {
		values[i] = make(map[string]float64)
		for _, col := range schema.RequiredColumns() {
			values[i][col] = b
		}
	}
	return seriesOf(append([]string{schema.DateColumn}, schema.RequiredColumns()...), dates, values)
}

// dates returns the dates of a series' rows; invalid ones are zero.
func datesOf(s schema.Series) []time.Time {
	out := make([]time.Time, len(s.Rows))
	for i, r := range s.Rows {
		if r.Date.Valid {
			out[i] = r.Date.Time
		}
	}
	return out
}
