package client

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestCheckInStore_SubmitThenRead(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/CheckIn/submit", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		if body["session"] != "tok" || body["owner"] != "uid" {
			t.Errorf("unexpected submit payload %v", body)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"checkin": "ci-1"})
	})
	c := newTestClient(t, mux)
	store := NewCheckInStore(c, seedSession(t, c, Session{Token: "tok", UserID: "uid", Username: "mia"}))

	id, err := store.Submit(context.Background(), CheckInFields{Mood: "good", PainLevel: 2, CompletedAll: true})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if id != "ci-1" {
		t.Fatalf("expected server id, got %q", id)
	}
	today := store.Today()
	if today == nil || today.ID != "ci-1" || today.Mood != "good" || today.PainLevel != 2 || !today.CompletedAll {
		t.Fatalf("expected optimistic today cache, got %+v", today)
	}
	if today.Date != todayISO() {
		t.Fatalf("expected date %q, got %q", todayISO(), today.Date)
	}
}

func TestCheckInStore_SubmitRequiresAuth(t *testing.T) {
	counting := newCountingHandler(nil)
	c := newTestClient(t, counting)
	store := NewCheckInStore(c, seedSession(t, c, Session{}))

	if _, err := store.Submit(context.Background(), CheckInFields{Mood: "ok"}); !errors.Is(err, ErrNotSignedIn) {
		t.Fatalf("expected ErrNotSignedIn, got %v", err)
	}
	if counting.total() != 0 {
		t.Fatalf("expected no gateway calls, saw %d", counting.total())
	}
}

func TestCheckInStore_AmendMergesIntoCache(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/CheckIn/submit", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"checkin": "ci-1"})
	})
	mux.HandleFunc("/CheckIn/amend", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		if body["checkin"] != "ci-1" {
			t.Errorf("amend targets %v, want ci-1", body["checkin"])
		}
		if _, present := body["mood"]; present {
			t.Errorf("unset fields must be omitted, got %v", body)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})
	c := newTestClient(t, mux)
	store := NewCheckInStore(c, seedSession(t, c, Session{Token: "tok", UserID: "uid"}))
	if _, err := store.Submit(context.Background(), CheckInFields{Mood: "good", PainLevel: 5}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	pain := 3
	if err := store.Amend(context.Background(), CheckInUpdate{PainLevel: &pain}); err != nil {
		t.Fatalf("amend: %v", err)
	}
	today := store.Today()
	if today.PainLevel != 3 {
		t.Fatalf("expected merged pain level 3, got %d", today.PainLevel)
	}
	if today.Mood != "good" {
		t.Fatalf("untouched field changed: %+v", today)
	}
}

func TestCheckInStore_AmendWithoutTodayIsNoop(t *testing.T) {
	counting := newCountingHandler(nil)
	c := newTestClient(t, counting)
	store := NewCheckInStore(c, seedSession(t, c, Session{Token: "tok", UserID: "uid"}))

	mood := "great"
	if err := store.Amend(context.Background(), CheckInUpdate{Mood: &mood}); err != nil {
		t.Fatalf("amend without today must be a silent no-op, got %v", err)
	}
	if counting.total() != 0 {
		t.Fatalf("expected no gateway calls, saw %d", counting.total())
	}
}

func TestCheckInStore_LoadTodayUnauthenticatedClears(t *testing.T) {
	counting := newCountingHandler(nil)
	c := newTestClient(t, counting)
	store := NewCheckInStore(c, seedSession(t, c, Session{}))

	store.LoadToday(context.Background())
	if store.Today() != nil {
		t.Fatalf("expected empty cache")
	}
	if store.LastError() != "" {
		t.Fatalf("not signed in must not be an error, got %q", store.LastError())
	}
	if counting.total() != 0 {
		t.Fatalf("expected no gateway calls, saw %d", counting.total())
	}
}

func TestCheckInStore_LoadTodayCachesRow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/CheckIn/_getCheckInByOwnerAndDate", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		if body["date"] != todayISO() {
			t.Errorf("expected today's date, got %v", body["date"])
		}
		writeJSON(t, w, http.StatusOK, rows(map[string]any{
			"_id": "ci-9", "owner": "uid", "date": todayISO(), "mood": "tired", "painLevel": 4,
		}))
	})
	c := newTestClient(t, mux)
	store := NewCheckInStore(c, seedSession(t, c, Session{Token: "tok", UserID: "uid"}))

	store.LoadToday(context.Background())
	today := store.Today()
	if today == nil || today.ID != "ci-9" || today.Mood != "tired" || today.PainLevel != 4 {
		t.Fatalf("unexpected cache %+v", today)
	}
}

func TestCheckInStore_LoadTodayEmptyResultMeansNone(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/CheckIn/_getCheckInByOwnerAndDate", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"results": []any{}})
	})
	c := newTestClient(t, mux)
	store := NewCheckInStore(c, seedSession(t, c, Session{Token: "tok", UserID: "uid"}))

	store.LoadToday(context.Background())
	if store.Today() != nil {
		t.Fatalf("expected nil today")
	}
	if store.LastError() != "" {
		t.Fatalf("no record is not an error, got %q", store.LastError())
	}
}

func TestCheckInStore_LoadHistoryFailureRecorded(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/CheckIn/_getCheckInsByOwner", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]any{"error": "db unavailable"})
	})
	c := newTestClient(t, mux)
	store := NewCheckInStore(c, seedSession(t, c, Session{Token: "tok", UserID: "uid"}))

	store.LoadHistory(context.Background())
	if got := store.LastError(); got != "db unavailable" {
		t.Fatalf("expected normalized message, got %q", got)
	}
	if len(store.History()) != 0 {
		t.Fatalf("failed load must not populate history")
	}
}

func TestCheckInStore_HasCheckIn(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/CheckIn/_hasCheckIn", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, rows(map[string]any{"hasCheckIn": true}))
	})
	c := newTestClient(t, mux)
	store := NewCheckInStore(c, seedSession(t, c, Session{Token: "tok", UserID: "uid"}))

	ok, err := store.HasCheckIn(context.Background(), "2026-08-01")
	if err != nil || !ok {
		t.Fatalf("expected true, got %v %v", ok, err)
	}
}
