package client

import "context"

// PlanStore caches the owner's active rehab plan. The backend keeps at
// most one active plan per owner; the store lazily creates one when
// none exists. The plan id is immutable for the store's lifetime once
// loaded.
type PlanStore struct {
	storeState

	client  *Client
	session *SessionManager

	planID string
	items  []PlanItem
}

// NewPlanStore wires a store to the gateway and the session.
func NewPlanStore(c *Client, session *SessionManager) *PlanStore {
	return &PlanStore{client: c, session: session}
}

// PlanID returns the cached active plan id, empty when none is loaded.
func (s *PlanStore) PlanID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.planID
}

// Items returns a copy of the cached plan items.
func (s *PlanStore) Items() []PlanItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PlanItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *PlanStore) reset() {
	s.mu.Lock()
	s.planID = ""
	s.items = nil
	s.mu.Unlock()
}

// LoadActivePlan fetches the owner's active plan, creating one when
// none exists (get-or-create). Unauthenticated it resets to the empty
// state without error.
func (s *PlanStore) LoadActivePlan(ctx context.Context) error {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		s.reset()
		return nil
	}
	s.begin()
	defer s.end()

	rows, err := s.client.GetActivePlanByOwner(ctx, sess.Token)
	if err != nil {
		s.fail(err)
		return err
	}
	if len(rows) > 0 {
		active := rows[0]
		s.mu.Lock()
		s.planID = active.ID
		s.items = active.Items
		s.mu.Unlock()
		return nil
	}

	resp, err := s.client.CreatePlan(ctx, CreatePlanRequest{Session: sess.Token, Owner: sess.UserID})
	if err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.planID = resp.Plan
	s.items = nil
	s.mu.Unlock()
	return nil
}

// EnsureInitialized guarantees a plan id is populated, loading the
// active plan at most once per call when absent. Without an identity
// it fails with an authorization error.
func (s *PlanStore) EnsureInitialized(ctx context.Context) error {
	if !s.session.IsAuthenticated() {
		return ErrNotSignedIn
	}
	if s.PlanID() != "" {
		return nil
	}
	return s.LoadActivePlan(ctx)
}

// AddItem appends one item to the active plan, then reloads the whole
// plan to pick up server-computed ordering and derived fields.
func (s *PlanStore) AddItem(ctx context.Context, item PlanItem) error {
	if err := s.EnsureInitialized(ctx); err != nil {
		return err
	}
	sess := s.session.Current()
	s.begin()
	err := s.client.AddPlanItem(ctx, PlanItemRequest{Session: sess.Token, Plan: s.PlanID(), PlanItem: item})
	if err != nil {
		s.fail(err)
		s.end()
		return err
	}
	s.end()
	return s.LoadActivePlan(ctx)
}

// RemoveItemByExercise removes the item referencing an exercise, then
// reloads the whole plan. With no plan loaded it is a no-op.
func (s *PlanStore) RemoveItemByExercise(ctx context.Context, exerciseID string) error {
	planID := s.PlanID()
	if planID == "" {
		return nil
	}
	sess := s.session.Current()
	s.begin()
	err := s.client.RemovePlanItem(ctx, RemovePlanItemRequest{Session: sess.Token, Plan: planID, Exercise: exerciseID})
	if err != nil {
		s.fail(err)
		s.end()
		return err
	}
	s.end()
	return s.LoadActivePlan(ctx)
}

// Archive retires the active plan and resets the local state. The next
// LoadActivePlan lazily creates a fresh plan.
func (s *PlanStore) Archive(ctx context.Context) error {
	if err := s.EnsureInitialized(ctx); err != nil {
		return err
	}
	sess := s.session.Current()
	s.begin()
	defer s.end()
	if err := s.client.ArchivePlan(ctx, ArchivePlanRequest{Session: sess.Token, Plan: s.PlanID()}); err != nil {
		s.fail(err)
		return err
	}
	s.reset()
	return nil
}
