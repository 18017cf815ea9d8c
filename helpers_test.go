package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ontrackhealth/ontrack-client/persist"
)

// newTestClient spins an httptest backend and a Client pointed at it.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	hs := httptest.NewServer(handler)
	t.Cleanup(hs.Close)
	return New(hs.URL)
}

// seedSession returns a manager carrying a committed identity without
// touching the network.
func seedSession(t *testing.T, c *Client, sess Session) *SessionManager {
	t.Helper()
	m := NewSessionManager(c, persist.NewMemStore(), "", "")
	m.setSession(sess)
	return m
}

// decodeBody reads a request's JSON object body.
func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	return body
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

// rows wraps query results in the backend's envelope.
func rows(items ...any) map[string]any {
	return map[string]any{"results": items}
}

// countingHandler counts requests per path before delegating.
type countingHandler struct {
	mu    sync.Mutex
	calls map[string]int
	next  http.Handler
}

func newCountingHandler(next http.Handler) *countingHandler {
	return &countingHandler{calls: make(map[string]int), next: next}
}

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.calls[r.URL.Path]++
	h.mu.Unlock()
	if h.next != nil {
		h.next.ServeHTTP(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func (h *countingHandler) total() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, c := range h.calls {
		n += c
	}
	return n
}
