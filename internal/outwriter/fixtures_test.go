package outwriter

import (
	"context"
	"strings"
	"testing"

	"github.com/huangsam/heatpump/core"
	"github.com/huangsam/heatpump/internal/contract"
	"github.com/huangsam/heatpump/internal/fixture"
	"github.com/huangsam/heatpump/schema"
	"github.com/stretchr/testify/require"
)

// fixtureCSV renders one CSV row per date. Every measured column holds base
// except the generated energy columns, which hold 3.5 * base.
func fixtureCSV(dates []string, bases []float64) string {
	return fixture.Export{
		Dates: dates,
		Bases: bases,
		Scale: map[string]float64{schema.EnergyGeneratedTotal: 3.5, schema.EnergyGeneratedHeating: 3.5},
	}.CSV()
}

// runFixture runs the pipeline over a single CSV text.
func runFixture(t *testing.T, csvText string, start, end string) *core.Result {
	t.Helper()
	req := core.Request{Sources: []core.Source{{Name: "a.csv", Reader: strings.NewReader(csvText)}}}
	var err error
	req.Start, err = contract.ParseDate(start)
	require.NoError(t, err)
	req.End, err = contract.ParseDate(end)
	require.NoError(t, err)
	result, err := core.Run(context.Background(), req)
	require.NoError(t, err)
	return result
}

func threeDays(t *testing.T) *core.Result {
	return runFixture(t, fixtureCSV(
		[]string{"2024-01-01 00:00:00", "2024-01-02 00:00:00", "2024-01-03 00:00:00"},
		[]float64{1.2, 2.4, 3.4},
	), "", "")
}

func testConfig(output schema.OutputMode) *contract.Config {
	return &contract.Config{Output: output, Precision: contract.DefaultPrecision, Width: 400}
}
