package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BlumBot_Go/internal/metrics"
)

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := serve(t, NewRouter(nil), PathHealthz)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", rec.Body.String())
}

func TestReadyz(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		checker := ReadinessFunc(func(context.Context) error { return nil })
		rec := serve(t, NewRouter(checker), PathReadyz)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("no accounts running", func(t *testing.T) {
		checker := ReadinessFunc(func(context.Context) error { return errors.New("no accounts running") })
		rec := serve(t, NewRouter(checker), PathReadyz)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, rec.Body.String(), "no accounts running")
	})
}

func TestMetricsEndpoint(t *testing.T) {
	metrics.AccountsRunning.Set(0)

	rec := serve(t, NewRouter(nil), PathMetrics)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), metrics.MetricNameAccountsRunning)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := serve(t, NewRouter(nil), PathHealthz)

	expected := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, want := range expected {
		assert.Equal(t, want, rec.Header().Get(header), header)
	}
}

func TestUnknownPath(t *testing.T) {
	rec := serve(t, NewRouter(nil), "/api/v1/anything")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartStop(t *testing.T) {
	srv := NewServer("127.0.0.1:0", nil)

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	require.NoError(t, srv.Stop(context.Background()))
	assert.NoError(t, <-done)
}
