package outwriter

import (
	"errors"

	"github.com/huangsam/heatpump/core"
	"github.com/huangsam/heatpump/schema"
	"github.com/samber/lo"
)

// NewResultDocument builds the JSON document of a pipeline result.
// The summary is only present when the window was aggregated.
func NewResultDocument(result *core.Result, precision int) schema.ResultDocument {
	columns, rows := resultRows(result)
	doc := schema.ResultDocument{
		Sources: lo.Ternary(result.Sources == nil, []string{}, result.Sources),
		ParseErrors: lo.Map(result.ParseErrors, func(e *core.ParseError, _ int) string {
			return e.Error()
		}),
		Empty:   result.Empty,
		Columns: lo.Ternary(columns == nil, []string{}, columns),
		Rows:    rowDocuments(rows, columns, precision),
	}
	if !result.Start.IsZero() {
		doc.Start = result.Start.String()
	}
	if !result.End.IsZero() {
		doc.End = result.End.String()
	}
	if result.Aggregated {
		summary := result.Summary
		doc.Summary = &summary
	}
	return doc
}

// NewErrorDocument builds the JSON document of a failed run. A schema error
// lists the missing columns while the filtered rows are still included.
func NewErrorDocument(result *core.Result, err error, precision int) schema.ResultDocument {
	var doc schema.ResultDocument
	if result != nil {
		doc = NewResultDocument(result, precision)
	} else {
		doc = schema.ResultDocument{Sources: []string{}, Columns: []string{}, Rows: []schema.RowDocument{}}
	}
	var serr *core.SchemaError
	if errors.As(err, &serr) {
		doc.Missing = serr.Missing
	}
	return doc
}

// NewSeriesDocument builds the JSON document of a plain series.
func NewSeriesDocument(s schema.Series, precision int) schema.ResultDocument {
	return schema.ResultDocument{
		Sources: []string{},
		Empty:   s.Empty(),
		Columns: lo.Ternary(s.Columns == nil, []string{}, s.Columns),
		Rows:    rowDocuments(s.Rows, s.Columns, precision),
	}
}

func rowDocuments(rows []schema.Row, columns []string, precision int) []schema.RowDocument {
	docs := make([]schema.RowDocument, len(rows))
	for i, r := range rows {
		docs[i] = schema.NewRowDocument(r, columns, precision)
	}
	return docs
}
