// Package core has the merge, filter and aggregation engine for heat-pump exports.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/civil"
	"github.com/huangsam/heatpump/schema"
	"github.com/sirupsen/logrus"
)

// Source is one raw CSV input. A nil Reader marks an absent source.
type Source struct {
	Name   string
	Reader io.Reader
}

// Request is the input of one pipeline run.
// Nil Start or End default to the merged series bounds.
type Request struct {
	Sources []Source
	Start   *civil.Date
	End     *civil.Date
}

// Result is everything one pipeline run produced.
// Filtered stays populated when aggregation fails so the data can still be shown.
type Result struct {
	Sources     []string
	ParseErrors []*ParseError
	Merged      schema.Series
	Filtered    schema.Series
	Start       civil.Date
	End         civil.Date
	Empty       bool // no rows in the window; not an error
	Aggregated  bool
	Augmented   schema.AugmentedSeries
	Summary     schema.Summary
}

// Run parses, merges, filters and aggregates the request sources.
// A source that fails to parse is recorded on the result while the other still
// contributes. ErrNoData is returned when nothing parsed, and a *SchemaError when
// required columns are missing; in the latter case the result is returned too.
func Run(ctx context.Context, req Request) (*Result, error) {
	logger := loggerFrom(ctx)
	if len(req.Sources) > 2 {
		return nil, ErrTooManySources
	}

	result := &Result{}
	var parsed []schema.Series
	for _, src := range req.Sources {
		if src.Reader == nil {
			continue
		}
		s, err := ParseRecords(src.Name, src.Reader)
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				perr = &ParseError{Source: src.Name, Err: err}
			}
			logger.WithField("source", src.Name).WithError(perr.Err).Warn("Skipping unreadable source")
			result.ParseErrors = append(result.ParseErrors, perr)
			continue
		}
		logger.WithFields(logrus.Fields{"source": src.Name, "rows": s.Len()}).Debug("Parsed source")
		result.Sources = append(result.Sources, src.Name)
		parsed = append(parsed, s)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged, ok := Merge(parsed...)
	if !ok {
		return result, ErrNoData
	}
	result.Merged = merged
	logger.WithField("rows", merged.Len()).Debug("Merged sources")

	first, last, hasDates := Bounds(merged)
	start, end := first, last
	if req.Start != nil {
		start = *req.Start
	}
	if req.End != nil {
		end = *req.End
	}
	if hasDates {
		start, end, _ = ClampRange(merged, start, end)
	}
	result.Start, result.End = start, end

	result.Filtered = FilterRange(merged, start, end)
	if result.Filtered.Empty() {
		result.Empty = true
		logger.WithFields(logrus.Fields{"start": start.String(), "end": end.String()}).Info("No data in the selected window")
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	augmented, summary, err := Aggregate(result.Filtered)
	if err != nil {
		return result, fmt.Errorf("aggregation failed: %w", err)
	}
	result.Augmented = augmented
	result.Summary = summary
	result.Aggregated = true
	logger.WithFields(logrus.Fields{"rows": result.Filtered.Len(), "efficiency": summary.Efficiency}).Debug("Aggregated window")
	return result, nil
}
