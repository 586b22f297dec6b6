package schema

import "encoding/json"

// Mean is an average that may have no samples.
// Valid is false when no sample qualified.
type Mean struct {
	Value float64
	Valid bool
}

// MarshalJSON encodes a mean without samples as null.
func (m Mean) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON reads null as a mean without samples.
func (m *Mean) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Mean{}
		return nil
	}
	if err := json.Unmarshal(data, &m.Value); err != nil {
		return err
	}
	m.Valid = true
	return nil
}

// Summary holds the aggregate figures of a filtered series.
type Summary struct {
	Sums       map[string]float64 `json:"sums"`
	Averages   map[string]Mean    `json:"averages"`
	Efficiency float64            `json:"efficiency"` // generated / consumed * 100
}

// AugmentedSeries is a series with its summary row appended.
type AugmentedSeries struct {
	Series
	SummaryRow Row
}

// AllRows returns data rows followed by the summary row.
func (a AugmentedSeries) AllRows() []Row {
	rows := make([]Row, 0, len(a.Rows)+1)
	rows = append(rows, a.Rows...)
	return append(rows, a.SummaryRow)
}
