package client

import (
	"context"
	"time"
)

// todayISO returns the current calendar day in the client's local zone.
func todayISO() string { return time.Now().Format("2006-01-02") }

// CheckInStore caches today's check-in and the owner's history.
type CheckInStore struct {
	storeState

	client  *Client
	session *SessionManager

	today   *CheckIn
	history []CheckIn
}

// NewCheckInStore wires a store to the gateway and the session.
func NewCheckInStore(c *Client, session *SessionManager) *CheckInStore {
	return &CheckInStore{client: c, session: session}
}

// Today returns a copy of the cached check-in for today, nil when none
// is known.
func (s *CheckInStore) Today() *CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.today == nil {
		return nil
	}
	cp := *s.today
	return &cp
}

// History returns a copy of the cached history, newest first.
func (s *CheckInStore) History() []CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CheckIn, len(s.history))
	copy(out, s.history)
	return out
}

// LoadToday fetches the check-in for the current identity and calendar
// date. Unauthenticated it clears the cache; not signed in is a normal
// state, not a fault.
func (s *CheckInStore) LoadToday(ctx context.Context) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		s.mu.Lock()
		s.today = nil
		s.mu.Unlock()
		return
	}
	s.begin()
	defer s.end()
	rows, err := s.client.GetCheckInByOwnerAndDate(ctx, CheckInByDateRequest{Session: sess.Token, Date: todayISO()})
	if err != nil {
		s.fail(err)
		return
	}
	s.mu.Lock()
	if len(rows) > 0 {
		row := rows[0] // at most one per (owner, date) is meaningful
		s.today = &row
	} else {
		s.today = nil
	}
	s.mu.Unlock()
}

// Submit records today's check-in and optimistically caches the
// submitted payload under the server-assigned id, trusting that the
// server accepted it verbatim. Returns the new check-in id.
func (s *CheckInStore) Submit(ctx context.Context, fields CheckInFields) (string, error) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return "", ErrNotSignedIn
	}
	req := SubmitCheckInRequest{Session: sess.Token, Owner: sess.UserID, Date: todayISO(), CheckInFields: fields}
	s.begin()
	defer s.end()
	resp, err := s.client.SubmitCheckIn(ctx, req)
	if err != nil {
		s.fail(err)
		return "", err
	}
	s.mu.Lock()
	s.today = &CheckIn{ID: resp.CheckIn, Owner: sess.UserID, Date: req.Date, CheckInFields: fields}
	s.mu.Unlock()
	return resp.CheckIn, nil
}

// Amend applies a partial update to today's check-in, merging it into
// the cache once the server accepts it. With no record for today it is
// a no-op and issues no network call.
func (s *CheckInStore) Amend(ctx context.Context, update CheckInUpdate) error {
	cur := s.Today()
	if cur == nil || cur.ID == "" {
		return nil
	}
	sess := s.session.Current()
	s.begin()
	defer s.end()
	err := s.client.AmendCheckIn(ctx, AmendCheckInRequest{Session: sess.Token, CheckIn: cur.ID, CheckInUpdate: update})
	if err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	if s.today != nil && s.today.ID == cur.ID {
		update.Apply(&s.today.CheckInFields)
	}
	s.mu.Unlock()
	return nil
}

// LoadHistory replaces the cached history wholesale. Unauthenticated
// it empties the cache without error.
func (s *CheckInStore) LoadHistory(ctx context.Context) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		s.mu.Lock()
		s.history = nil
		s.mu.Unlock()
		return
	}
	s.begin()
	defer s.end()
	rows, err := s.client.GetCheckInsByOwner(ctx, sess.Token)
	if err != nil {
		s.fail(err)
		return
	}
	s.mu.Lock()
	s.history = rows
	s.mu.Unlock()
}

// HasCheckIn probes whether the owner checked in on the given day
// without touching the cache. Unauthenticated it reports false.
func (s *CheckInStore) HasCheckIn(ctx context.Context, date string) (bool, error) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return false, nil
	}
	rows, err := s.client.HasCheckIn(ctx, CheckInByDateRequest{Session: sess.Token, Date: date})
	if err != nil {
		return false, err
	}
	return len(rows) > 0 && rows[0].HasCheckIn, nil
}

// CheckInByID fetches one check-in by id without touching the cache.
// Returns nil when the backend knows no such record.
func (s *CheckInStore) CheckInByID(ctx context.Context, id string) (*CheckIn, error) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return nil, ErrNotSignedIn
	}
	rows, err := s.client.GetCheckInByID(ctx, CheckInByIDRequest{Session: sess.Token, CheckIn: id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]
	return &row, nil
}
