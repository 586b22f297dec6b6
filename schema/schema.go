// Package schema has the data model shared by the heatpump engine and its presentations.
package schema

import (
	"math"
	"time"
)

// Timestamp is the parsed value of the date column.
// Valid is false when the cell could not be parsed; such rows sort last and never match a date window.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// InvalidTimestamp is the sentinel for unparseable date cells.
var InvalidTimestamp = Timestamp{}

// NewTimestamp wraps a parsed time as a valid Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Valid: true}
}

// Before reports whether ts sorts strictly before other.
// Invalid timestamps are greater than every valid one and equal to each other.
func (ts Timestamp) Before(other Timestamp) bool {
	switch {
	case !ts.Valid:
		return false
	case !other.Valid:
		return true
	default:
		return ts.Time.Before(other.Time)
	}
}

// CellKind describes what a Cell holds.
type CellKind int

// All cell kinds supported.
const (
	MissingCell CellKind = iota // empty or NA
	NumberCell
	TextCell
)

// Cell is a single non-date value of a Row.
type Cell struct {
	Kind CellKind
	Num  float64
	Str  string
}

// Number returns a numeric cell. NaN and ±Inf are stored as missing cells.
func Number(v float64) Cell {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Cell{Kind: MissingCell}
	}
	return Cell{Kind: NumberCell, Num: v}
}

// Text returns a text cell. The empty string is stored as a missing cell.
func Text(s string) Cell {
	if s == "" {
		return Cell{Kind: MissingCell}
	}
	return Cell{Kind: TextCell, Str: s}
}

// Missing returns an empty cell.
func Missing() Cell {
	return Cell{Kind: MissingCell}
}

// IsNumber reports whether the cell holds a usable number.
func (c Cell) IsNumber() bool {
	return c.Kind == NumberCell
}

// Row is one observation of the controller export.
// Label is only set on the synthetic summary row, which carries no date.
type Row struct {
	Date   Timestamp
	Label  string
	Values map[string]Cell
}

// Get returns the cell for a column, or a missing cell when the row has none.
func (r Row) Get(column string) Cell {
	if c, ok := r.Values[column]; ok {
		return c
	}
	return Missing()
}

// Series is an ordered set of rows sharing one column set.
// Columns includes DateColumn and fixes the output column order.
type Series struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of rows.
func (s Series) Len() int {
	return len(s.Rows)
}

// Empty reports whether the series has no rows.
func (s Series) Empty() bool {
	return len(s.Rows) == 0
}

// HasColumn reports whether the column is part of the series.
func (s Series) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// WithRows returns a series with the same columns and the given rows.
func (s Series) WithRows(rows []Row) Series {
	cols := make([]string, len(s.Columns))
	copy(cols, s.Columns)
	return Series{Columns: cols, Rows: rows}
}
