package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/huangsam/heatpump/core"
	"github.com/huangsam/heatpump/internal/contract"
	"github.com/huangsam/heatpump/internal/outwriter"
	"github.com/huangsam/heatpump/schema"
)

// errorResponse is the JSON body of a rejected request.
type errorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing_columns,omitempty"`
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// Columns handles GET /api/columns.
func (h *Handler) Columns(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, schema.KnownColumns)
}

// Summary handles POST /api/summary. It accepts multipart uploads file_a and
// file_b, optional start and end days, and format=json (default) or csv.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.WithField("request_id", middleware.GetReqID(r.Context()))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.fail(w, r, http.StatusBadRequest, fmt.Errorf("invalid upload: %w", err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	format := strings.ToLower(r.FormValue("format"))
	if format == "" {
		format = string(schema.JSONOut)
	}
	if format != string(schema.JSONOut) && format != string(schema.CSVOut) {
		h.fail(w, r, http.StatusBadRequest, fmt.Errorf("invalid format '%s'. must be one of: json, csv", format))
		return
	}

	cfg := h.baseCfg.Clone()
	if err := contract.RevalidateWindow(cfg, r.FormValue("start"), r.FormValue("end")); err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}

	var sources []core.Source
	for _, field := range []string{"file_a", "file_b"} {
		src, closer, err := formSource(r, field)
		if err != nil {
			h.fail(w, r, http.StatusBadRequest, err)
			return
		}
		if closer != nil {
			defer func() { _ = closer.Close() }()
			sources = append(sources, src)
		}
	}
	if len(sources) == 0 {
		h.fail(w, r, http.StatusBadRequest, core.ErrNoData)
		return
	}

	ctx := core.WithLogger(r.Context(), logger)
	result, err := core.Run(ctx, core.Request{Sources: sources, Start: cfg.Start, End: cfg.End})
	if err != nil {
		var serr *core.SchemaError
		switch {
		case errors.As(err, &serr):
			logger.WithField("missing", serr.Missing).Warn("Rejected upload with missing columns")
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, struct {
				errorResponse
				Result schema.ResultDocument `json:"result"`
			}{
				errorResponse: errorResponse{Error: err.Error(), Missing: serr.Missing},
				Result:        outwriter.NewErrorDocument(result, err, cfg.Precision),
			})
		case errors.Is(err, core.ErrNoData):
			msgs := make([]string, 0, len(result.ParseErrors))
			for _, perr := range result.ParseErrors {
				msgs = append(msgs, perr.Error())
			}
			h.fail(w, r, http.StatusBadRequest, fmt.Errorf("%w (%s)", err, strings.Join(msgs, "; ")))
		default:
			logger.WithError(err).Error("Pipeline failed")
			h.fail(w, r, http.StatusInternalServerError, err)
		}
		return
	}

	if format == string(schema.CSVOut) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="heatpump-summary.csv"`)
		var werr error
		if result.Aggregated {
			werr = outwriter.WriteAugmentedCSV(w, result.Augmented, cfg.Precision)
		} else {
			werr = outwriter.WriteSeriesCSV(w, result.Filtered, cfg.Precision)
		}
		if werr != nil {
			logger.WithError(werr).Error("Failed to write CSV response")
		}
		return
	}
	render.JSON(w, r, outwriter.NewResultDocument(result, cfg.Precision))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: err.Error()})
}

// formSource returns the uploaded file of a form field. An absent field yields
// a nil closer and no error.
func formSource(r *http.Request, field string) (core.Source, io.Closer, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return core.Source{}, nil, nil
	}
	if err != nil {
		return core.Source{}, nil, fmt.Errorf("invalid %s upload: %w", field, err)
	}
	return core.Source{Name: sourceName(header, field), Reader: file}, file, nil
}

func sourceName(header *multipart.FileHeader, field string) string {
	if header != nil && header.Filename != "" {
		return header.Filename
	}
	return field
}
