// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/heatpump/core"
	"github.com/huangsam/heatpump/internal/contract"
	"github.com/huangsam/heatpump/internal/parquet"
	"github.com/huangsam/heatpump/schema"
)

// PrintResult writes a pipeline result to stdout or the configured output file.
func PrintResult(result *core.Result, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteResult(w, result, cfg)
	}, fmt.Sprintf("Wrote %s summary", cfg.Output))
}

// PrintSeries writes a plain series (no summary row) to stdout or the configured output file.
func PrintSeries(s schema.Series, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteSeries(w, s, cfg)
	}, fmt.Sprintf("Wrote %s series", cfg.Output))
}

// WriteResult outputs a pipeline result, dispatching based on the output format configured.
// Aggregated results carry their summary row; otherwise the filtered rows are written as is.
func WriteResult(w io.Writer, result *core.Result, cfg *contract.Config) error {
	columns, rows := resultRows(result)
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, NewResultDocument(result, cfg.Precision)); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRowsCSV(w, columns, rows, cfg.Precision); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteSeries(w, parquet.ConvertRows(rows)); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.XLSXOut:
		if err := writeXLSX(w, columns, rows, cfg.Precision); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeResultTable(w, result, cfg)
	}
	return nil
}

// WriteSeries outputs a series without aggregation, dispatching based on the output format configured.
func WriteSeries(w io.Writer, s schema.Series, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, NewSeriesDocument(s, cfg.Precision)); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := WriteSeriesCSV(w, s, cfg.Precision); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteSeries(w, parquet.ConvertRows(s.Rows)); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.XLSXOut:
		if err := writeXLSX(w, s.Columns, s.Rows, cfg.Precision); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
	default:
		return writeSeriesTable(w, s, cfg)
	}
	return nil
}

// resultRows picks the rows a result presents: the augmented rows when the
// window was aggregated and the filtered rows otherwise.
func resultRows(result *core.Result) ([]string, []schema.Row) {
	if result.Aggregated {
		return result.Augmented.Columns, result.Augmented.AllRows()
	}
	return result.Filtered.Columns, result.Filtered.Rows
}
