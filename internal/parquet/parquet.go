// Package parquet provides data structures and functions for exporting heat-pump
// series to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"

	"github.com/huangsam/heatpump/schema"
	"github.com/parquet-go/parquet-go"
)

// SeriesRecord is one exported row of an augmented series.
// Measured columns are optional so missing cells survive the export as nulls.
// Columns outside the registry are not carried.
type SeriesRecord struct {
	// Date is the row timestamp formatted as schema.DateTimeFormat (null when invalid)
	Date *string `parquet:"date,optional,snappy"`

	// Summary marks the trailing summary row
	Summary bool `parquet:"summary,snappy"`

	EnergyConsumedHeating  *float64 `parquet:"energy_consumed_heating,optional,snappy"`
	EnergyConsumedWater    *float64 `parquet:"energy_consumed_water,optional,snappy"`
	EnergyConsumedCooling  *float64 `parquet:"energy_consumed_cooling,optional,snappy"`
	EnergyConsumedTotal    *float64 `parquet:"energy_consumed_total,optional,snappy"`
	EnergyGeneratedHeating *float64 `parquet:"energy_generated_heating,optional,snappy"`
	EnergyGeneratedWater   *float64 `parquet:"energy_generated_water,optional,snappy"`
	EnergyGeneratedCooling *float64 `parquet:"energy_generated_cooling,optional,snappy"`
	EnergyGeneratedTotal   *float64 `parquet:"energy_generated_total,optional,snappy"`
	CompressorHours        *float64 `parquet:"compressor_hours,optional,snappy"`
	CompressorHoursHeating *float64 `parquet:"compressor_hours_heating,optional,snappy"`
	CompressorHoursWater   *float64 `parquet:"compressor_hours_water,optional,snappy"`
	HeaterHours            *float64 `parquet:"heater_hours,optional,snappy"`
	CompressorStarts       *float64 `parquet:"compressor_starts,optional,snappy"`
	DefrostCycles          *float64 `parquet:"defrost_cycles,optional,snappy"`
	CopHeating             *float64 `parquet:"cop_heating,optional,snappy"`
	CopWater               *float64 `parquet:"cop_water,optional,snappy"`
	CopTotal               *float64 `parquet:"cop_total,optional,snappy"`
	OutdoorTemp            *float64 `parquet:"outdoor_temp,optional,snappy"`
	WaterTemp              *float64 `parquet:"water_temp,optional,snappy"`
}

// measures maps registry column names to the record fields that hold them.
func (r *SeriesRecord) measures() map[string]**float64 {
	return map[string]**float64{
		schema.EnergyConsumedHeating:  &r.EnergyConsumedHeating,
		schema.EnergyConsumedWater:    &r.EnergyConsumedWater,
		schema.EnergyConsumedCooling:  &r.EnergyConsumedCooling,
		schema.EnergyConsumedTotal:    &r.EnergyConsumedTotal,
		schema.EnergyGeneratedHeating: &r.EnergyGeneratedHeating,
		schema.EnergyGeneratedWater:   &r.EnergyGeneratedWater,
		schema.EnergyGeneratedCooling: &r.EnergyGeneratedCooling,
		schema.EnergyGeneratedTotal:   &r.EnergyGeneratedTotal,
		schema.CompressorHours:        &r.CompressorHours,
		schema.CompressorHoursHeating: &r.CompressorHoursHeating,
		schema.CompressorHoursWater:   &r.CompressorHoursWater,
		schema.HeaterHours:            &r.HeaterHours,
		schema.CompressorStarts:       &r.CompressorStarts,
		schema.DefrostCycles:          &r.DefrostCycles,
		schema.CopHeating:             &r.CopHeating,
		schema.CopWater:               &r.CopWater,
		schema.CopTotal:               &r.CopTotal,
		schema.OutdoorTemp:            &r.OutdoorTemp,
		schema.WaterTemp:              &r.WaterTemp,
	}
}

// Value returns the measured value stored for a registry column.
func (r *SeriesRecord) Value(column string) (float64, bool) {
	field, ok := r.measures()[column]
	if !ok || *field == nil {
		return 0, false
	}
	return **field, true
}

// NewSeriesRecord converts one row. Only numeric cells are carried.
func NewSeriesRecord(row schema.Row) SeriesRecord {
	var rec SeriesRecord
	if date := schema.FormatDate(row); date != "" {
		rec.Date = &date
	}
	rec.Summary = row.Label != ""
	for column, field := range rec.measures() {
		c := row.Get(column)
		if !c.IsNumber() {
			continue
		}
		v := c.Num
		*field = &v
	}
	return rec
}

// ConvertRows converts rows to Parquet records in order.
func ConvertRows(rows []schema.Row) []SeriesRecord {
	result := make([]SeriesRecord, len(rows))
	for i, row := range rows {
		result[i] = NewSeriesRecord(row)
	}
	return result
}

// WriteSeries writes the records to w as a single Parquet file.
func WriteSeries(w io.Writer, data []SeriesRecord) error {
	// The schema is derived from the SeriesRecord struct tags
	writer := parquet.NewGenericWriter[SeriesRecord](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
