package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/huangsam/heatpump/schema"
)

// WriteAugmentedCSV encodes an augmented series: the header, one line per data
// row and the summary row last. Missing cells are written empty and numbers use
// the given precision, so the output parses back with core.ParseRecords.
func WriteAugmentedCSV(w io.Writer, a schema.AugmentedSeries, precision int) error {
	return writeRowsCSV(w, a.Columns, a.AllRows(), precision)
}

// WriteSeriesCSV encodes a series without a summary row.
func WriteSeriesCSV(w io.Writer, s schema.Series, precision int) error {
	return writeRowsCSV(w, s.Columns, s.Rows, precision)
}

func writeRowsCSV(w io.Writer, columns []string, rows []schema.Row, precision int) error {
	return writeCSVWithHeader(w, columns, func(csvWriter *csv.Writer) error {
		for _, r := range rows {
			if err := csvWriter.Write(schema.FormatRow(r, columns, precision)); err != nil {
				return err
			}
		}
		return nil
	})
}
