package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/heatpump/core"
	"github.com/huangsam/heatpump/internal/contract"
	"github.com/huangsam/heatpump/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeResultTable writes the window rows and summary as a human-readable table.
func writeResultTable(w io.Writer, result *core.Result, cfg *contract.Config) error {
	if result.Empty {
		_, err := fmt.Fprintf(w, "No data between %s and %s\n", result.Start, result.End)
		return err
	}
	columns, rows := resultRows(result)
	if err := writeRowsTable(w, columns, rows, cfg); err != nil {
		return err
	}
	if len(result.Sources) > 0 {
		if _, err := fmt.Fprintf(w, "Sources: %s\n", strings.Join(result.Sources, ", ")); err != nil {
			return err
		}
	}
	for _, perr := range result.ParseErrors {
		if _, err := fmt.Fprintf(w, "Skipped: %v\n", perr); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Window: %s to %s (%d rows)\n", result.Start, result.End, result.Filtered.Len()); err != nil {
		return err
	}
	if !result.Aggregated {
		return nil
	}
	return writeSummaryFooter(w, result.Summary, cfg)
}

// writeSeriesTable writes a plain series as a table.
func writeSeriesTable(w io.Writer, s schema.Series, cfg *contract.Config) error {
	if s.Empty() {
		_, err := fmt.Fprintln(w, "No rows")
		return err
	}
	if err := writeRowsTable(w, s.Columns, s.Rows, cfg); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d rows\n", s.Len())
	return err
}

// writeRowsTable renders the rows with as many columns as the terminal allows.
func writeRowsTable(w io.Writer, columns []string, rows []schema.Row, cfg *contract.Config) error {
	shown, hidden := visibleColumns(columns, GetTermWidth(cfg))

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header(shown)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, schema.FormatRow(r, shown, cfg.Precision))
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if hidden > 0 {
		if _, err := fmt.Fprintf(w, "%d more columns hidden; use --width or --output csv to see all\n", hidden); err != nil {
			return err
		}
	}
	return nil
}

// writeSummaryFooter prints the efficiency line and the averages table.
func writeSummaryFooter(w io.Writer, summary schema.Summary, cfg *contract.Config) error {
	fmtFloat, pctFmt := createFormatters(cfg.Precision)

	label := contract.GetPlainLabel(summary.Efficiency)
	if cfg.UseColors {
		label = contract.GetColorLabel(summary.Efficiency)
	}
	if _, err := fmt.Fprintf(w, "Efficiency: "+pctFmt+" (%s)\n", cfg.Precision, summary.Efficiency, label); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Header([]string{"Column", "Role", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, def := range schema.KnownColumns {
		value := "n/a"
		if def.Role == schema.AdditiveRole {
			value = fmtFloat(summary.Sums[def.Name])
		} else if m := summary.Averages[def.Name]; m.Valid {
			value = fmtFloat(m.Value)
		}
		data = append(data, []string{def.Name, string(def.Role), value})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
