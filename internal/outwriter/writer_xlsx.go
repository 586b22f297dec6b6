package outwriter

import (
	"io"

	"github.com/huangsam/heatpump/schema"
	"github.com/xuri/excelize/v2"
)

// xlsxSheet is the name of the single worksheet of an XLSX export.
const xlsxSheet = "Series"

// writeXLSX writes the rows as a one-sheet workbook. Numbers stay numeric
// cells so spreadsheet formulas work on them; missing cells are left blank.
func writeXLSX(w io.Writer, columns []string, rows []schema.Row, precision int) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := setSheetRow(f, 1, header); err != nil {
		return err
	}

	for i, r := range rows {
		values := make([]any, len(columns))
		for j, col := range columns {
			values[j] = xlsxValue(r, col, precision)
		}
		if err := setSheetRow(f, i+2, values); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func setSheetRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(xlsxSheet, cell, &values)
}

func xlsxValue(r schema.Row, col string, precision int) any {
	if col == schema.DateColumn {
		return schema.FormatDate(r)
	}
	c := r.Get(col)
	switch c.Kind {
	case schema.NumberCell:
		return schema.Round(c.Num, precision)
	case schema.TextCell:
		return c.Str
	default:
		return nil
	}
}
