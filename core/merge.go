package core

import (
	"slices"
	"time"

	"github.com/huangsam/heatpump/schema"
	"github.com/samber/lo"
)

// Merge combines parsed series into one chronological series.
// Rows are taken in source order and the first row seen for a date wins, so
// merge(A, B) keeps A's row wherever both carry the same timestamp.
// Rows with an invalid date never collide and sort last.
// It returns false when there is nothing to merge.
func Merge(inputs ...schema.Series) (schema.Series, bool) {
	if len(inputs) == 0 {
		return schema.Series{}, false
	}

	columns := unionColumns(inputs)
	all := lo.Flatten(lo.Map(inputs, func(s schema.Series, _ int) []schema.Row { return s.Rows }))

	seen := make(map[time.Time]struct{}, len(all))
	merged := make([]schema.Row, 0, len(all))
	for _, row := range all {
		if row.Date.Valid {
			key := row.Date.Time.UTC()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		merged = append(merged, row)
	}

	SortRows(merged)
	return schema.Series{Columns: columns, Rows: merged}, true
}

// SortRows stably orders rows ascending by date, invalid dates last.
func SortRows(rows []schema.Row) {
	slices.SortStableFunc(rows, func(a, b schema.Row) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case b.Date.Before(a.Date):
			return 1
		default:
			return 0
		}
	})
}

// unionColumns keeps the first series' column order and appends unseen columns of later ones.
func unionColumns(inputs []schema.Series) []string {
	all := lo.Flatten(lo.Map(inputs, func(s schema.Series, _ int) []string { return s.Columns }))
	return lo.Uniq(all)
}
