package core

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/huangsam/heatpump/schema"
)

// timestampLayouts are tried in order when coercing the date column.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
}

// naValues are the cell contents read as missing.
var naValues = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	errEmptyInput       = errors.New("input is empty")
	errDuplicateColumns = errors.New("duplicate column names")
)

// ParseTimestamp coerces a date cell. Unparseable values yield the invalid sentinel.
func ParseTimestamp(raw string) schema.Timestamp {
	s := strings.TrimSpace(raw)
	if s == "" {
		return schema.InvalidTimestamp
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return schema.NewTimestamp(t)
		}
	}
	return schema.InvalidTimestamp
}

// ParseRecords reads a CSV export with a header row into a Series.
// Measured columns are coerced to floats and the date column to timestamps.
// Columns outside the registry keep their text. A header without records is a
// valid empty series. Any decoding failure is reported as a *ParseError and no
// partial series is returned.
func ParseRecords(name string, r io.Reader) (schema.Series, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return schema.Series{}, &ParseError{Source: name, Err: err}
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return schema.Series{}, &ParseError{Source: name, Err: errEmptyInput}
	}

	header, hasRecords, err := peekHeader(data)
	if err != nil {
		return schema.Series{}, &ParseError{Source: name, Err: err}
	}
	if dups := duplicateNames(header); len(dups) > 0 {
		return schema.Series{}, &ParseError{Source: name, Err: fmt.Errorf("%w: %s", errDuplicateColumns, strings.Join(dups, ", "))}
	}
	if !hasRecords {
		return schema.Series{Columns: header}, nil
	}

	types := map[string]series.Type{schema.DateColumn: series.String}
	for _, col := range schema.RequiredColumns() {
		types[col] = series.Float
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(types),
		dataframe.NaNValues(naValues),
	)
	if df.Err != nil {
		return schema.Series{}, &ParseError{Source: name, Err: df.Err}
	}

	s, err := seriesFromFrame(df)
	if err != nil {
		return schema.Series{}, &ParseError{Source: name, Err: err}
	}
	return s, nil
}

// peekHeader reads the header row and reports whether any record follows it.
// Record shape is left for the dataframe loader to validate.
func peekHeader(data []byte) ([]string, bool, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, false, fmt.Errorf("read header: %w", err)
	}
	if _, err := r.Read(); errors.Is(err, io.EOF) {
		return header, false, nil
	}
	return header, true, nil
}

// duplicateNames returns header names that occur more than once, in first-seen order.
func duplicateNames(header []string) []string {
	seen := make(map[string]int, len(header))
	var dups []string
	for _, name := range header {
		seen[name]++
		if seen[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}

// seriesFromFrame converts a loaded dataframe into rows keyed by column name.
func seriesFromFrame(df dataframe.DataFrame) (schema.Series, error) {
	names := df.Names()
	nrow := df.Nrow()

	rows := make([]schema.Row, nrow)
	for i := range rows {
		rows[i] = schema.Row{Date: schema.InvalidTimestamp, Values: make(map[string]schema.Cell, len(names))}
	}

	for _, name := range names {
		col := df.Col(name)
		if col.Err != nil {
			return schema.Series{}, fmt.Errorf("column %s: %w", name, col.Err)
		}
		numeric := col.Type() == series.Float || col.Type() == series.Int
		for i := range nrow {
			el := col.Elem(i)
			switch {
			case name == schema.DateColumn:
				if !el.IsNA() {
					rows[i].Date = ParseTimestamp(el.String())
				}
			case el.IsNA():
				rows[i].Values[name] = schema.Missing()
			case numeric:
				rows[i].Values[name] = schema.Number(el.Float())
			default:
				rows[i].Values[name] = schema.Text(el.String())
			}
		}
	}

	return schema.Series{Columns: names, Rows: rows}, nil
}
