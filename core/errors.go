package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoData is returned when no source produced a parsed series.
var ErrNoData = errors.New("no input data: provide at least one readable CSV file")

// ErrTooManySources is returned when a run is given more than two sources.
var ErrTooManySources = errors.New("at most two sources can be merged")

// ParseError reports a source that could not be decoded as CSV.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError lists the required columns a series lacks.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}
