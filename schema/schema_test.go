package schema

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampBefore(t *testing.T) {
	early := NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	late := NewTimestamp(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.False(t, early.Before(early))

	// Invalid timestamps sort after every valid one.
	assert.True(t, late.Before(InvalidTimestamp))
	assert.False(t, InvalidTimestamp.Before(early))
	assert.False(t, InvalidTimestamp.Before(InvalidTimestamp))
}

func TestCellConstructors(t *testing.T) {
	assert.Equal(t, MissingCell, Number(math.NaN()).Kind)
	assert.Equal(t, MissingCell, Number(math.Inf(1)).Kind)
	assert.Equal(t, MissingCell, Number(math.Inf(-1)).Kind)
	assert.True(t, Number(0).IsNumber())
	assert.Equal(t, MissingCell, Text("").Kind)
	assert.Equal(t, TextCell, Text("x").Kind)
	assert.Equal(t, MissingCell, Row{}.Get("absent").Kind)
}

func TestRoleOf(t *testing.T) {
	assert.Equal(t, IdentifierRole, RoleOf(DateColumn))
	assert.Equal(t, AdditiveRole, RoleOf(EnergyConsumedTotal))
	assert.Equal(t, IntensiveRatioRole, RoleOf(CopWater))
	assert.Equal(t, IntensivePlainRole, RoleOf(OutdoorTemp))
	assert.Equal(t, IgnoredRole, RoleOf("firmware_version"))
}

func TestRequiredColumns(t *testing.T) {
	required := RequiredColumns()
	assert.Len(t, required, 19)
	assert.Len(t, ColumnsWithRole(AdditiveRole), 14)
	assert.Len(t, ColumnsWithRole(IntensiveRatioRole), 3)
	assert.Len(t, ColumnsWithRole(IntensivePlainRole), 2)
	assert.NotContains(t, required, DateColumn)
}

func TestMeanMarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Mean{
		"a": {Value: 3.5, Valid: true},
		"b": {},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 3.5, "b": null}`, string(data))

	var decoded map[string]Mean
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Mean{Value: 3.5, Valid: true}, decoded["a"])
	assert.Equal(t, Mean{}, decoded["b"])
}

func TestAugmentedSeriesAllRows(t *testing.T) {
	a := AugmentedSeries{
		Series:     Series{Columns: []string{DateColumn}, Rows: []Row{{}, {}}},
		SummaryRow: Row{Label: SummaryLabel},
	}
	rows := a.AllRows()
	require.Len(t, rows, 3)
	assert.Equal(t, SummaryLabel, rows[2].Label)
	assert.Len(t, a.Rows, 2, "data rows are left untouched")
}
