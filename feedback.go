package client

import (
	"context"
	"time"
)

// ReminderStatus is the store's view of today's reminder delivery.
type ReminderStatus string

const (
	ReminderUnknown ReminderStatus = ""
	ReminderSent    ReminderStatus = "sent"
	ReminderNotSent ReminderStatus = "not-sent"
)

// defaultShareTTL is one week, matching the backend's default link
// lifetime.
const defaultShareTTL = 7 * 24 * 60 * 60

// FeedbackStore caches the adherence summary, the reminder log and the
// owner's share links.
type FeedbackStore struct {
	storeState

	client  *Client
	session *SessionManager

	summary        *FeedbackSummary
	reminders      []ReminderMessage
	shareLinks     []ShareLink
	reminderStatus ReminderStatus
}

// NewFeedbackStore wires a store to the gateway and the session.
func NewFeedbackStore(c *Client, session *SessionManager) *FeedbackStore {
	return &FeedbackStore{client: c, session: session}
}

// Summary returns a copy of the cached adherence summary, nil when
// none is known.
func (s *FeedbackStore) Summary() *FeedbackSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.summary == nil {
		return nil
	}
	cp := *s.summary
	return &cp
}

// Reminders returns a copy of the cached reminder log, newest first.
func (s *FeedbackStore) Reminders() []ReminderMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ReminderMessage, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// ShareLinks returns a copy of the cached share links, most recent
// first. Callers relying on RevokeShareLink's empty-token form must
// treat that order as significant.
func (s *FeedbackStore) ShareLinks() []ShareLink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ShareLink, len(s.shareLinks))
	copy(out, s.shareLinks)
	return out
}

// ReminderStatusToday reports the last probed delivery status.
func (s *FeedbackStore) ReminderStatusToday() ReminderStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reminderStatus
}

// RefreshSummary re-fetches the owner's adherence summary.
// Unauthenticated it clears the cache without error.
func (s *FeedbackStore) RefreshSummary(ctx context.Context) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		s.mu.Lock()
		s.summary = nil
		s.mu.Unlock()
		return
	}
	s.begin()
	defer s.end()
	rows, err := s.client.GetSummaryMetrics(ctx, sess.Token)
	if err != nil {
		s.fail(err)
		return
	}
	s.mu.Lock()
	if len(rows) > 0 {
		row := rows[0] // one logical row per owner
		s.summary = &row
	} else {
		s.summary = nil
	}
	s.mu.Unlock()
}

// LoadMessages replaces the cached reminder log wholesale.
// Unauthenticated it empties the cache without error.
func (s *FeedbackStore) LoadMessages(ctx context.Context) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		s.mu.Lock()
		s.reminders = nil
		s.mu.Unlock()
		return
	}
	s.begin()
	defer s.end()
	rows, err := s.client.ListMessages(ctx, sess.Token)
	if err != nil {
		s.fail(err)
		return
	}
	s.mu.Lock()
	s.reminders = rows
	s.mu.Unlock()
}

// Recompute asks the backend to rebuild the owner's figures and
// overwrites the cached summary from the response without a re-fetch.
func (s *FeedbackStore) Recompute(ctx context.Context) error {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return ErrNotSignedIn
	}
	if !sess.IsAdmin {
		return ErrAdminRequired
	}
	s.begin()
	defer s.end()
	resp, err := s.client.Recompute(ctx, RecomputeRequest{Session: sess.Token, Owner: sess.UserID})
	if err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.summary = &FeedbackSummary{Owner: sess.UserID, StreakCount: resp.NewStreakCount, Completion7d: resp.NewCompletion7d}
	s.mu.Unlock()
	return nil
}

// RecordReminder appends a message server-side and optimistically
// prepends a locally synthesized record: server-assigned id,
// client-stamped timestamp. The timestamp may drift from the server's
// clock until the next full reload.
func (s *FeedbackStore) RecordReminder(ctx context.Context, content string) error {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return ErrNotSignedIn
	}
	if !sess.IsAdmin {
		return ErrAdminRequired
	}
	s.begin()
	defer s.end()
	resp, err := s.client.RecordMessage(ctx, RecordMessageRequest{Session: sess.Token, Owner: sess.UserID, Content: content})
	if err != nil {
		s.fail(err)
		return err
	}
	msg := ReminderMessage{ID: resp.MessageID, Owner: sess.UserID, Timestamp: time.Now().UTC(), Content: content}
	s.mu.Lock()
	s.reminders = append([]ReminderMessage{msg}, s.reminders...)
	s.mu.Unlock()
	return nil
}

// TriggerReminder sends the owner's reminder, marks it sent, then
// reloads the message list for consistency.
func (s *FeedbackStore) TriggerReminder(ctx context.Context) error {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return ErrNotSignedIn
	}
	s.begin()
	err := s.client.SendReminder(ctx, SendReminderRequest{Session: sess.Token, Owner: sess.UserID})
	if err != nil {
		s.fail(err)
		s.end()
		return err
	}
	s.mu.Lock()
	s.reminderStatus = ReminderSent
	s.mu.Unlock()
	s.end()
	s.LoadMessages(ctx)
	return nil
}

// CheckReminderStatus probes whether a reminder went out on the given
// day. Best-effort: a failure is recorded but never returned.
func (s *FeedbackStore) CheckReminderStatus(ctx context.Context, date string) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return
	}
	rows, err := s.client.HasSentReminderToday(ctx, ReminderStatusRequest{Session: sess.Token, Date: date})
	if err != nil {
		s.fail(err)
		return
	}
	status := ReminderNotSent
	if len(rows) > 0 && rows[0].Sent {
		status = ReminderSent
	}
	s.mu.Lock()
	s.reminderStatus = status
	s.mu.Unlock()
}

// LoadShareLinks replaces the cached share links wholesale.
// Unauthenticated it empties the cache without error.
func (s *FeedbackStore) LoadShareLinks(ctx context.Context) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		s.mu.Lock()
		s.shareLinks = nil
		s.mu.Unlock()
		return
	}
	s.begin()
	defer s.end()
	rows, err := s.client.ListShareLinks(ctx, sess.Token)
	if err != nil {
		s.fail(err)
		return
	}
	s.mu.Lock()
	s.shareLinks = rows
	s.mu.Unlock()
}

// CreateShareLink mints a share token with the given lifetime
// (defaulted to a week when ttlSeconds <= 0), reloads the link list
// and returns the token.
func (s *FeedbackStore) CreateShareLink(ctx context.Context, ttlSeconds int) (string, error) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return "", ErrNotSignedIn
	}
	if ttlSeconds <= 0 {
		ttlSeconds = defaultShareTTL
	}
	s.begin()
	resp, err := s.client.CreateShareLink(ctx, CreateShareLinkRequest{Session: sess.Token, TTLSeconds: ttlSeconds})
	if err != nil {
		s.fail(err)
		s.end()
		return "", err
	}
	s.end()
	s.LoadShareLinks(ctx)
	return resp.Token, nil
}

// RevokeShareLink revokes one share token. With an empty token it
// targets the most recently created cached link; with nothing to
// revoke it is a no-op.
func (s *FeedbackStore) RevokeShareLink(ctx context.Context, token string) error {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return nil
	}
	if token == "" {
		s.mu.RLock()
		if len(s.shareLinks) > 0 {
			token = s.shareLinks[0].Token
		}
		s.mu.RUnlock()
	}
	if token == "" {
		return nil
	}
	s.begin()
	if err := s.client.RevokeShareLink(ctx, RevokeShareLinkRequest{Session: sess.Token, Token: token}); err != nil {
		s.fail(err)
		s.end()
		return err
	}
	s.end()
	s.LoadShareLinks(ctx)
	return nil
}

// RecordCompletionStatus records today's completion. When the response
// carries updated figures they overwrite the cached summary field-wise,
// falling back to the previous cached value for anything missing; an
// empty response triggers a full refresh instead. Best-effort: a
// failure is recorded but never returned.
func (s *FeedbackStore) RecordCompletionStatus(ctx context.Context, completedAll bool) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return
	}
	resp, err := s.client.RecordCompletion(ctx, RecordCompletionRequest{Session: sess.Token, Date: todayISO(), CompletedAll: completedAll})
	if err != nil {
		s.fail(err)
		return
	}
	if resp.StreakCount == nil && resp.Completion7d == nil {
		s.RefreshSummary(ctx)
		return
	}
	s.mu.Lock()
	next := FeedbackSummary{Owner: sess.UserID}
	if s.summary != nil {
		next = *s.summary
	}
	if resp.StreakCount != nil {
		next.StreakCount = *resp.StreakCount
	}
	if resp.Completion7d != nil {
		next.Completion7d = *resp.Completion7d
	}
	s.summary = &next
	s.mu.Unlock()
}
