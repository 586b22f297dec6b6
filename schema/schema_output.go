package schema

// RowDocument is the JSON rendering of a single row.
type RowDocument struct {
	Date    string         `json:"date"`
	Summary bool           `json:"summary,omitempty"`
	Values  map[string]any `json:"values"`
}

// ResultDocument is the JSON rendering of one pipeline run.
type ResultDocument struct {
	Sources     []string      `json:"sources"`
	ParseErrors []string      `json:"parse_errors,omitempty"`
	Start       string        `json:"start,omitempty"`
	End         string        `json:"end,omitempty"`
	Empty       bool          `json:"empty"`
	Missing     []string      `json:"missing_columns,omitempty"`
	Columns     []string      `json:"columns"`
	Rows        []RowDocument `json:"rows"`
	Summary     *Summary      `json:"summary,omitempty"`
}

// NewRowDocument converts a row for JSON output. Missing cells become null.
func NewRowDocument(r Row, columns []string, precision int) RowDocument {
	doc := RowDocument{
		Date:    FormatDate(r),
		Summary: r.Label != "",
		Values:  make(map[string]any, len(columns)),
	}
	for _, col := range columns {
		if col == DateColumn {
			continue
		}
		c := r.Get(col)
		switch c.Kind {
		case NumberCell:
			doc.Values[col] = Round(c.Num, precision)
		case TextCell:
			doc.Values[col] = c.Str
		default:
			doc.Values[col] = nil
		}
	}
	return doc
}
