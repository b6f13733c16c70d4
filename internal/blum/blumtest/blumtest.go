// Package blumtest runs an in-process fake of the remote API for tests.
package blumtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/osse101/BlumBot_Go/internal/blum"
)

// TestContext bundles the fake server, its mux and a client pointed at it
type TestContext struct {
	Server *httptest.Server
	Mux    *http.ServeMux
	Client *blum.Client

	mu    sync.Mutex
	calls map[string]int
}

// SetupTestContext starts a fake API server. Both are closed on test cleanup.
func SetupTestContext(t testing.TB) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	tc := &TestContext{
		Server: server,
		Mux:    mux,
		calls:  make(map[string]int),
	}
	tc.Client = tc.NewClient()

	t.Cleanup(func() {
		tc.Client.Close()
		server.Close()
	})

	return tc
}

// NewClient returns another client routed to the fake server
func (tc *TestContext) NewClient() *blum.Client {
	return blum.NewClient(blum.Options{BaseURLs: blum.SingleHost(tc.Server.URL)})
}

// Handle registers h under a method+path pattern and counts its calls
func (tc *TestContext) Handle(pattern string, h http.HandlerFunc) {
	tc.Mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		tc.mu.Lock()
		tc.calls[pattern]++
		tc.mu.Unlock()
		h(w, r)
	})
}

// Calls returns how many requests hit pattern
func (tc *TestContext) Calls(pattern string) int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.calls[pattern]
}

// JSON writes v with the given status
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Text writes a plain-text body with the given status
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Respond returns a handler that always answers with v as JSON
func Respond(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		JSON(w, status, v)
	}
}

// RespondText returns a handler that always answers with body
func RespondText(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		Text(w, status, body)
	}
}

// Sequence answers successive calls with the given handlers; the last one repeats
func Sequence(handlers ...http.HandlerFunc) http.HandlerFunc {
	var (
		mu sync.Mutex
		i  int
	)
	return func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		h := handlers[i]
		if i < len(handlers)-1 {
			i++
		}
		mu.Unlock()
		h(w, r)
	}
}
