package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	gerr "github.com/jekabolt/grbpwr-pnl/internal/errors"
)

type ctxKey string

const jobKey ctxKey = "job"

type errorResponse struct {
	Error string `json:"error"`
}

// runSummary is one entry of a report listing.
type runSummary struct {
	UUID              string  `json:"uuid"`
	Job               string  `json:"job"`
	Mode              string  `json:"mode"`
	Period            string  `json:"period"`
	PreviousPeriod    string  `json:"previous_period"`
	GeneratedAt       string  `json:"generated_at"`
	StoreCount        int     `json:"store_count"`
	TotalNetSales     float64 `json:"total_net_sales"`
	TotalDirectProfit float64 `json:"total_direct_profit"`
	ValueParseErrors  int     `json:"value_parse_errors"`
	UnmappedRows      int     `json:"unmapped_rows"`
	Checksum          string  `json:"checksum"`
}

func (s *Server) jobCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		job := chi.URLParam(r, "job")
		if len(s.jobs) > 0 {
			if _, ok := s.jobs[job]; !ok {
				writeError(w, r, http.StatusNotFound, gerr.ErrUnknownJob)
				return
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), jobKey, job)))
	})
}

func jobFrom(r *http.Request) string {
	job, _ := r.Context().Value(jobKey).(string)
	return job
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health(r.Context()); err != nil {
			writeError(w, r, http.StatusServiceUnavailable, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listReports(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, r, http.StatusBadRequest, errors.New("limit must be a non-negative integer"))
			return
		}
		limit = n
	}
	runs, err := s.reports.ListReports(r.Context(), jobFrom(r), limit)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	out := make([]runSummary, 0, len(runs))
	for _, run := range runs {
		out = append(out, summarize(run))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getLatestReport(w http.ResponseWriter, r *http.Request) {
	run, err := s.reports.GetLatestReport(r.Context(), jobFrom(r))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeDocument(w, r, run)
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	period, err := entity.ParsePeriod(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	run, err := s.reports.GetReport(r.Context(), jobFrom(r), period)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeDocument(w, r, run)
}

// writeDocument serves the archived bytes unchanged, honouring If-None-Match.
func writeDocument(w http.ResponseWriter, r *http.Request, run *entity.ReportRun) {
	etag := `"` + run.Checksum + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(run.Document)
}

func summarize(run entity.ReportRun) runSummary {
	return runSummary{
		UUID:              run.UUID,
		Job:               run.Job,
		Mode:              run.Mode,
		Period:            periodString(run.Period),
		PreviousPeriod:    periodString(run.PreviousPeriod),
		GeneratedAt:       run.GeneratedAt.UTC().Format(time.RFC3339),
		StoreCount:        run.StoreCount,
		TotalNetSales:     run.TotalNetSales.InexactFloat64(),
		TotalDirectProfit: run.TotalDirectProfit.InexactFloat64(),
		ValueParseErrors:  run.ValueParseErrors,
		UnmappedRows:      run.UnmappedRows,
		Checksum:          run.Checksum,
	}
}

func periodString(n int) string {
	p, err := entity.PeriodFromInt(n)
	if err != nil {
		return strconv.Itoa(n)
	}
	return p.String()
}

func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, gerr.ErrReportNotFound) {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	slog.Default().ErrorContext(r.Context(), "can't read report archive",
		slog.String("path", r.URL.Path),
		slog.String("err", err.Error()),
	)
	writeError(w, r, http.StatusInternalServerError, errors.New(http.StatusText(http.StatusInternalServerError)))
}

func writeError(w http.ResponseWriter, _ *http.Request, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
