package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-pnl/internal/dependency/mocks"
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	gerr "github.com/jekabolt/grbpwr-pnl/internal/errors"
	"github.com/jekabolt/grbpwr-pnl/internal/ratelimit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *mocks.Reports) {
	rs := mocks.NewReports(t)
	s := New(&Config{AllowedOrigins: []string{"https://dash.example.com"}}, rs, []string{"hk", "mc"})
	return s, rs
}

func archived(doc string) *entity.ReportRun {
	return &entity.ReportRun{
		ID:                1,
		UUID:              "b6c1e7f2-1111-4000-8000-000000000000",
		Job:               "hk",
		Mode:              "month",
		Period:            202512,
		PreviousPeriod:    202412,
		GeneratedAt:       time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		StoreCount:        3,
		TotalNetSales:     decimal.NewFromInt(5000),
		TotalDirectProfit: decimal.NewFromInt(200),
		Checksum:          "abc123",
		Document:          []byte(doc),
	}
}

func do(s *Server, method, target string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	s.WithHealthCheck(func(_ context.Context) error { return errors.New("db down") })
	rec = do(s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetLatestReport(t *testing.T) {
	s, rs := newTestServer(t)
	rs.EXPECT().GetLatestReport(mock.Anything, "hk").Return(archived(`{"summary":{}}`), nil)

	rec := do(s, http.MethodGet, "/api/reports/hk/latest", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"summary":{}}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `"abc123"`, rec.Header().Get("ETag"))
}

func TestGetReport_NotModified(t *testing.T) {
	s, rs := newTestServer(t)
	rs.EXPECT().GetReport(mock.Anything, "hk", entity.MustPeriod("202512")).Return(archived(`{}`), nil)

	rec := do(s, http.MethodGet, "/api/reports/hk/2512", map[string]string{"If-None-Match": `"abc123"`})
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetReport_Errors(t *testing.T) {
	s, rs := newTestServer(t)
	rs.EXPECT().GetReport(mock.Anything, "mc", entity.MustPeriod("202401")).
		Return(nil, fmt.Errorf("report mc 202401: %w", gerr.ErrReportNotFound))
	rs.EXPECT().GetReport(mock.Anything, "mc", entity.MustPeriod("202402")).
		Return(nil, errors.New("connection refused"))

	assert.Equal(t, http.StatusBadRequest, do(s, http.MethodGet, "/api/reports/hk/202513", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/api/reports/jp/202512", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/api/reports/mc/202401", nil).Code)

	rec := do(s, http.MethodGet, "/api/reports/mc/202402", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestListReports(t *testing.T) {
	s, rs := newTestServer(t)
	rs.EXPECT().ListReports(mock.Anything, "hk", 5).Return([]entity.ReportRun{*archived("")}, nil)

	rec := do(s, http.MethodGet, "/api/reports/hk?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []runSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "202512", got[0].Period)
	assert.Equal(t, "202412", got[0].PreviousPeriod)
	assert.Equal(t, 5000.0, got[0].TotalNetSales)
	assert.Equal(t, "2026-01-15T09:00:00Z", got[0].GeneratedAt)

	assert.Equal(t, http.StatusBadRequest, do(s, http.MethodGet, "/api/reports/hk?limit=x", nil).Code)
}

func TestCORS(t *testing.T) {
	s, rs := newTestServer(t)
	rs.EXPECT().GetLatestReport(mock.Anything, "hk").Return(archived(`{}`), nil)

	rec := do(s, http.MethodGet, "/api/reports/hk/latest", map[string]string{"Origin": "https://dash.example.com"})
	assert.Equal(t, "https://dash.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	rs := mocks.NewReports(t)
	rs.EXPECT().GetLatestReport(mock.Anything, "hk").Return(archived(`{}`), nil).Once()
	s := New(&Config{RateLimit: ratelimit.Config{Requests: 1, Window: time.Minute}}, rs, []string{"hk"})
	defer s.Stop(context.Background())

	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/api/reports/hk/latest", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(s, http.MethodGet, "/api/reports/hk/latest", nil).Code)
}
