package core

import (
	"slices"
	"testing"
	"time"

	"github.com/huangsam/heatpump/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_NoInputs(t *testing.T) {
	s, ok := Merge()
	assert.False(t, ok)
	assert.True(t, s.Empty())
}

func TestMerge_SingleInputIsSorted(t *testing.T) {
	a := fullSeries(
		[]time.Time{day(2024, 1, 3), day(2024, 1, 1), day(2024, 1, 2)},
		[]float64{3, 1, 2},
	)

	merged, ok := Merge(a)
	require.True(t, ok)
	assert.Equal(t, []time.Time{day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 3)}, datesOf(merged))
	assert.Equal(t, 1.0, merged.Rows[0].Get(schema.CopWater).Num)

	// The input keeps its original order.
	assert.Equal(t, day(2024, 1, 3), a.Rows[0].Date.Time)
}

func TestMerge_Idempotent(t *testing.T) {
	a := fullSeries(
		[]time.Time{day(2024, 1, 2), day(2024, 1, 1), day(2024, 1, 3)},
		[]float64{2, 1, 3},
	)

	single, _ := Merge(a)
	self, ok := Merge(a, a)
	require.True(t, ok)
	assert.Equal(t, single, self)

	// With unique dates a single input only gets sorted.
	sorted := a.WithRows(slices.Clone(a.Rows))
	SortRows(sorted.Rows)
	assert.Equal(t, sorted, single)
}

func TestMerge_FirstSourceWins(t *testing.T) {
	a := fullSeries([]time.Time{day(2024, 1, 1), day(2024, 1, 2)}, []float64{1, 10})
	b := fullSeries([]time.Time{day(2024, 1, 2), day(2024, 1, 3)}, []float64{20, 3})

	ab, _ := Merge(a, b)
	ba, _ := Merge(b, a)

	require.Equal(t, 3, ab.Len())
	require.Equal(t, 3, ba.Len())
	assert.Equal(t, 10.0, ab.Rows[1].Get(schema.EnergyConsumedTotal).Num, "A's row must win in merge(A, B)")
	assert.Equal(t, 20.0, ba.Rows[1].Get(schema.EnergyConsumedTotal).Num, "B's row must win in merge(B, A)")
	assert.NotEqual(t, ab, ba, "merge is intentionally asymmetric")
}

func TestMerge_FirstSourceWinsRegardlessOfPosition(t *testing.T) {
	// A's duplicate date is its last row, B's is its first.
	a := fullSeries([]time.Time{day(2024, 1, 1), day(2024, 1, 5)}, []float64{1, 50})
	b := fullSeries([]time.Time{day(2024, 1, 5), day(2024, 1, 2)}, []float64{99, 2})

	merged, _ := Merge(a, b)
	assert.Equal(t, []time.Time{day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 5)}, datesOf(merged))
	assert.Equal(t, 50.0, merged.Rows[2].Get(schema.CopTotal).Num)
}

func TestMerge_SortInvariantAndInvalidDatesLast(t *testing.T) {
	a := fullSeries([]time.Time{{}, day(2024, 1, 4), day(2024, 1, 2)}, []float64{-1, 4, 2})
	b := fullSeries([]time.Time{day(2024, 1, 3), {}, day(2024, 1, 1)}, []float64{3, -2, 1})

	merged, _ := Merge(a, b)
	require.Equal(t, 6, merged.Len(), "invalid dates never collide with each other")

	for i := 1; i < merged.Len(); i++ {
		assert.False(t, merged.Rows[i].Date.Before(merged.Rows[i-1].Date), "row %d out of order", i)
	}
	assert.False(t, merged.Rows[4].Date.Valid)
	assert.False(t, merged.Rows[5].Date.Valid)
	// Stable: A's invalid row precedes B's.
	assert.Equal(t, -1.0, merged.Rows[4].Get(schema.CopTotal).Num)
	assert.Equal(t, -2.0, merged.Rows[5].Get(schema.CopTotal).Num)
}

func TestMerge_DedupsWithinASource(t *testing.T) {
	a := fullSeries([]time.Time{day(2024, 1, 1), day(2024, 1, 1)}, []float64{1, 2})

	merged, _ := Merge(a)
	require.Equal(t, 1, merged.Len())
	assert.Equal(t, 1.0, merged.Rows[0].Get(schema.CopTotal).Num)
}

func TestMerge_ColumnUnion(t *testing.T) {
	a := seriesOf([]string{schema.DateColumn, "x"}, []time.Time{day(2024, 1, 1)}, []map[string]float64{{"x": 1}})
	b := seriesOf([]string{schema.DateColumn, "y", "x"}, []time.Time{day(2024, 1, 2)}, []map[string]float64{{"y": 2, "x": 3}})

	merged, _ := Merge(a, b)
	assert.Equal(t, []string{schema.DateColumn, "x", "y"}, merged.Columns)
	assert.Equal(t, schema.MissingCell, merged.Rows[0].Get("y").Kind)
}
