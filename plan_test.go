package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlans is a stateful RehabPlan backend double keeping one active
// plan per owner.
type fakePlans struct {
	mu      sync.Mutex
	nextID  int
	active  map[string]*RehabPlan // owner -> active plan
	creates int
}

func newFakePlans() *fakePlans {
	return &fakePlans{active: make(map[string]*RehabPlan)}
}

func (f *fakePlans) createCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creates
}

func (f *fakePlans) byID(id string) *RehabPlan {
	for _, p := range f.active {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (f *fakePlans) handler(t *testing.T, owner string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/RehabPlan/_getActivePlanByOwner", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		p := f.active[owner]
		f.mu.Unlock()
		if p == nil {
			writeJSON(t, w, http.StatusOK, rows())
			return
		}
		writeJSON(t, w, http.StatusOK, rows(p))
	})
	mux.HandleFunc("/RehabPlan/createPlan", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.creates++
		f.nextID++
		p := &RehabPlan{ID: "plan-" + strconv.Itoa(f.nextID), Owner: owner}
		f.active[owner] = p
		id := p.ID
		f.mu.Unlock()
		writeJSON(t, w, http.StatusOK, map[string]any{"plan": id})
	})
	mux.HandleFunc("/RehabPlan/addPlanItem", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		f.mu.Lock()
		p := f.byID(body["plan"].(string))
		if p != nil {
			ex, _ := body["exercise"].(string)
			sets, _ := body["sets"].(float64)
			p.Items = append(p.Items, PlanItem{Exercise: ex, Sets: int(sets)})
		}
		f.mu.Unlock()
		if p == nil {
			writeJSON(t, w, http.StatusNotFound, map[string]any{"error": "no such plan"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})
	mux.HandleFunc("/RehabPlan/removePlanItem", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		f.mu.Lock()
		if p := f.byID(body["plan"].(string)); p != nil {
			kept := p.Items[:0]
			for _, it := range p.Items {
				if it.Exercise != body["exercise"] {
					kept = append(kept, it)
				}
			}
			p.Items = kept
		}
		f.mu.Unlock()
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})
	mux.HandleFunc("/RehabPlan/archivePlan", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		f.mu.Lock()
		if p := f.active[owner]; p != nil && p.ID == body["plan"] {
			delete(f.active, owner)
		}
		f.mu.Unlock()
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})
	return mux
}

func TestPlanStore_GetOrCreateIsIdempotent(t *testing.T) {
	backend := newFakePlans()
	c := newTestClient(t, backend.handler(t, "uid"))
	store := NewPlanStore(c, seedSession(t, c, Session{Token: "tok", UserID: "uid"}))

	require.NoError(t, store.LoadActivePlan(context.Background()))
	first := store.PlanID()
	require.NotEmpty(t, first)

	require.NoError(t, store.LoadActivePlan(context.Background()))
	assert.Equal(t, first, store.PlanID(), "reload must find the existing plan, not create another")
	assert.Equal(t, 1, backend.createCount())
}

func TestPlanStore_AddItemReloadsPlan(t *testing.T) {
	backend := newFakePlans()
	c := newTestClient(t, backend.handler(t, "uid"))
	store := NewPlanStore(c, seedSession(t, c, Session{Token: "tok", UserID: "uid"}))

	require.NoError(t, store.AddItem(context.Background(), PlanItem{Exercise: "ex-1", Sets: 3}))
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "ex-1", items[0].Exercise)
	assert.Equal(t, 3, items[0].Sets)
	assert.Equal(t, 1, backend.createCount(), "first mutation lazily creates the plan")
}

func TestPlanStore_RemoveItemByExercise(t *testing.T) {
	backend := newFakePlans()
	c := newTestClient(t, backend.handler(t, "uid"))
	store := NewPlanStore(c, seedSession(t, c, Session{Token: "tok", UserID: "uid"}))
	require.NoError(t, store.AddItem(context.Background(), PlanItem{Exercise: "ex-1"}))
	require.NoError(t, store.AddItem(context.Background(), PlanItem{Exercise: "ex-2"}))

	require.NoError(t, store.RemoveItemByExercise(context.Background(), "ex-1"))
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "ex-2", items[0].Exercise)
}

func TestPlanStore_RemoveWithoutPlanIsNoop(t *testing.T) {
	counting := newCountingHandler(nil)
	c := newTestClient(t, counting)
	store := NewPlanStore(c, seedSession(t, c, Session{Token: "tok", UserID: "uid"}))

	require.NoError(t, store.RemoveItemByExercise(context.Background(), "ex-1"))
	assert.Zero(t, counting.total())
}

func TestPlanStore_ArchiveThenReloadCreatesFreshPlan(t *testing.T) {
	backend := newFakePlans()
	c := newTestClient(t, backend.handler(t, "uid"))
	store := NewPlanStore(c, seedSession(t, c, Session{Token: "tok", UserID: "uid"}))
	require.NoError(t, store.AddItem(context.Background(), PlanItem{Exercise: "ex-1"}))
	old := store.PlanID()

	require.NoError(t, store.Archive(context.Background()))
	assert.Empty(t, store.PlanID())
	assert.Empty(t, store.Items())

	require.NoError(t, store.LoadActivePlan(context.Background()))
	assert.NotEmpty(t, store.PlanID())
	assert.NotEqual(t, old, store.PlanID())
	assert.Equal(t, 2, backend.createCount())
}

func TestPlanStore_EnsureInitializedRequiresAuth(t *testing.T) {
	c := newTestClient(t, newCountingHandler(nil))
	store := NewPlanStore(c, seedSession(t, c, Session{}))
	require.ErrorIs(t, store.EnsureInitialized(context.Background()), ErrNotSignedIn)
}

func TestPlanStore_LoadUnauthenticatedResets(t *testing.T) {
	counting := newCountingHandler(nil)
	c := newTestClient(t, counting)
	store := NewPlanStore(c, seedSession(t, c, Session{}))

	require.NoError(t, store.LoadActivePlan(context.Background()))
	assert.Empty(t, store.PlanID())
	assert.Zero(t, counting.total())
}
