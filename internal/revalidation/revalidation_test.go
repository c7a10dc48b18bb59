package revalidation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevalidate(t *testing.T) {
	var got Payload
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "s3cret", r.URL.Query().Get("secret"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer ok.Close()

	v := New(&Config{Endpoints: []string{ok.URL + "/api/revalidate"}, RevalidateSecret: "s3cret"})
	err := v.Revalidate(context.Background(), "hk", entity.MustPeriod("202512"), "https://cdn.example.com/reports/hk/202512.json")
	require.NoError(t, err)
	assert.Equal(t, Payload{Job: "hk", Period: "202512", URL: "https://cdn.example.com/reports/hk/202512.json"}, got)
}

func TestRevalidate_RetriesAndJoinsErrors(t *testing.T) {
	var calls int32
	flaky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer flaky.Close()
	denied := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad secret", http.StatusUnauthorized)
	}))
	defer denied.Close()

	v := New(&Config{Endpoints: []string{flaky.URL, denied.URL}, Retries: 2, HTTPTimeout: time.Second})
	err := v.Revalidate(context.Background(), "hk", entity.MustPeriod("202512"), "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestConfig_Enabled(t *testing.T) {
	var c *Config
	assert.False(t, c.Enabled())
	assert.False(t, (&Config{}).Enabled())
	assert.True(t, (&Config{Endpoints: []string{"https://dash.example.com/api/revalidate"}}).Enabled())
}
