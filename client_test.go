package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_EmptyBaseURLPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty base URL")
		}
	}()
	New("")
}

func TestNew_InvalidOptionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on invalid option")
		}
	}()
	New("http://localhost:0", WithHTTPTimeout(-time.Second))
}

func TestClient_RequestsCarryRequestID(t *testing.T) {
	var seen atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/UserAccount/logout", func(w http.ResponseWriter, r *http.Request) {
		seen.Store(r.Header.Get("X-Request-Id"))
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})
	c := newTestClient(t, mux)

	if err := c.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	id, _ := seen.Load().(string)
	if id == "" {
		t.Fatalf("expected X-Request-Id header on every request")
	}
}

func TestClient_ErrorNormalization(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/UserAccount/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"error": "invalid credentials"})
	})
	c := newTestClient(t, mux)

	_, err := c.Login(context.Background(), LoginRequest{Username: "x", Password: "y"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "invalid credentials" {
		t.Fatalf("expected bare backend message, got %q", err.Error())
	}
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RemoteError, got %T", err)
	}
	if re.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status carried out of band, got %d", re.StatusCode)
	}
}

func TestClient_MissingResultsReadsEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/UserAccount/_getUserByToken", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})
	c := newTestClient(t, mux)

	rows, err := c.GetUserByToken(context.Background(), "tok")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("missing results field must read as empty, got %v", rows)
	}
}

func TestClient_ResolveShareLink(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/UserAccount/_resolveShareLink", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		if body["token"] != "share-1" {
			t.Errorf("unexpected payload %v", body)
		}
		if _, present := body["session"]; present {
			t.Errorf("share resolution must not carry a session")
		}
		writeJSON(t, w, http.StatusOK, rows(map[string]any{"owner": "uid-mia"}))
	})
	c := newTestClient(t, mux)

	owner, err := c.ResolveShareLink(context.Background(), "share-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if owner != "uid-mia" {
		t.Fatalf("expected owner id, got %q", owner)
	}
}

func TestWithRetry_RecoversFromTransientFailure(t *testing.T) {
	var calls atomic.Int32
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(t, w, http.StatusServiceUnavailable, map[string]any{"error": "warming up"})
			return
		}
		body := decodeBody(t, r)
		if body["session"] != "tok" {
			t.Errorf("retried request lost its body: %v", body)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{})
	}))
	t.Cleanup(hs.Close)
	c := New(hs.URL, WithRetry(5*time.Second))

	if err := c.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls.Load())
	}
}

func TestWithRetry_ExhaustedBudgetSurfacesFinalError(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusServiceUnavailable, map[string]any{"error": "still down"})
	}))
	t.Cleanup(hs.Close)
	c := New(hs.URL, WithRetry(50*time.Millisecond))

	err := c.Logout(context.Background(), "tok")
	if err == nil {
		t.Fatalf("expected error after budget exhaustion")
	}
	if err.Error() != "still down" {
		t.Fatalf("expected the backend's final message, got %q", err.Error())
	}
}

func TestWithRetry_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusBadRequest, map[string]any{"error": "malformed"})
	}))
	t.Cleanup(hs.Close)
	c := New(hs.URL, WithRetry(time.Second))

	if err := c.Logout(context.Background(), "tok"); err == nil {
		t.Fatalf("expected error")
	}
	if calls.Load() != 1 {
		t.Fatalf("4xx must not be retried, got %d attempts", calls.Load())
	}
}
