package core

import (
	"errors"
	"strings"
	"testing"
)

// FuzzParseTimestamp checks that date coercion never panics and that failures
// yield the bare invalid sentinel.
func FuzzParseTimestamp(f *testing.F) {
	for _, seed := range []string{"2024-01-03 06:00:00", "2024-01-03", "03.01.2024 06:00", "2024-01-03T06:00:00+01:00", "", "not a date"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		ts := ParseTimestamp(raw)
		if !ts.Valid && !ts.Time.IsZero() {
			t.Errorf("invalid timestamp %q carries a time: %v", raw, ts.Time)
		}
	})
}

// FuzzParseRecords checks that arbitrary input yields either a series whose
// rows cover every column or a *ParseError, never a panic.
func FuzzParseRecords(f *testing.F) {
	f.Add(fixtureCSV(fixtureRecord("2024-01-01", 1, nil)))
	f.Add("date,a\n2024-01-01,1\n2024-01-02\n")
	f.Add("date,\"a\n")
	f.Add("")

	f.Fuzz(func(t *testing.T, text string) {
		s, err := ParseRecords("fuzz.csv", strings.NewReader(text))
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}
		for i, row := range s.Rows {
			if row.Label != "" {
				t.Errorf("row %d has a label", i)
			}
		}
	})
}
