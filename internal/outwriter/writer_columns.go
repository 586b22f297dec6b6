package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/heatpump/internal/contract"
	"github.com/huangsam/heatpump/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintColumns writes the column registry using the configured output format.
func PrintColumns(cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteColumns(w, cfg)
	}, "Wrote columns")
}

// WriteColumns outputs the column registry. Parquet and XLSX fall back to CSV.
func WriteColumns(w io.Writer, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, schema.KnownColumns)
	case schema.CSVOut, schema.ParquetOut, schema.XLSXOut:
		return writeCSVWithHeader(w, []string{"name", "role", "description"}, func(csvWriter *csv.Writer) error {
			for _, def := range schema.KnownColumns {
				if err := csvWriter.Write([]string{def.Name, string(def.Role), def.Description}); err != nil {
					return err
				}
			}
			return nil
		})
	default:
		table := tablewriter.NewWriter(w)
		defer func() { _ = table.Close() }()
		table.Header([]string{"Column", "Role", "Description"})
		var data [][]string
		for _, def := range schema.KnownColumns {
			data = append(data, []string{def.Name, string(def.Role), def.Description})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%d required columns; other columns are passed through\n", len(schema.KnownColumns))
		return err
	}
}
