package core

import (
	"cloud.google.com/go/civil"
	"github.com/huangsam/heatpump/schema"
	"github.com/samber/lo"
)

// Bounds returns the first and last calendar day covered by valid dates in the series.
func Bounds(s schema.Series) (first civil.Date, last civil.Date, ok bool) {
	for _, row := range s.Rows {
		if !row.Date.Valid {
			continue
		}
		d := civil.DateOf(row.Date.Time)
		if !ok || d.Before(first) {
			first = d
		}
		if !ok || d.After(last) {
			last = d
		}
		ok = true
	}
	return first, last, ok
}

// ClampRange narrows [start, end] to the series bounds.
// It returns false when the series has no valid dates or the clamped window is inverted.
func ClampRange(s schema.Series, start, end civil.Date) (civil.Date, civil.Date, bool) {
	first, last, ok := Bounds(s)
	if !ok {
		return start, end, false
	}
	if start.Before(first) {
		start = first
	}
	if end.After(last) {
		end = last
	}
	return start, end, !start.After(end)
}

// FilterRange keeps the rows whose calendar day lies within the inclusive window,
// after clamping the window to the series bounds. Order is preserved.
// An inverted window or one matching no rows yields an empty series, never an error.
func FilterRange(s schema.Series, start, end civil.Date) schema.Series {
	start, end, ok := ClampRange(s, start, end)
	if !ok {
		return s.WithRows(nil)
	}
	rows := lo.Filter(s.Rows, func(row schema.Row, _ int) bool {
		if !row.Date.Valid {
			return false
		}
		d := civil.DateOf(row.Date.Time)
		return !d.Before(start) && !d.After(end)
	})
	return s.WithRows(rows)
}
