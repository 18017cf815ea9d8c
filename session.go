package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ontrackhealth/ontrack-client/persist"
)

// sessionKey is the single well-known persistence key for the session
// record.
const sessionKey = "ontrack.session"

// persistedSession is the minimal record that survives restarts. The
// user id and admin flag are re-resolved against the backend on
// restore, never trusted from disk.
type persistedSession struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// SessionManager owns the authentication identity. It is the only
// component that mutates the Session; every domain store reads it.
type SessionManager struct {
	storeState

	client *Client
	store  persist.Store

	bootstrapUser string
	bootstrapPass string

	current Session
}

// NewSessionManager wires a manager to the gateway and the persistence
// port. bootstrapUser/bootstrapPass are the default credentials for
// the unattended bootstrap; pass empty strings to disable it.
func NewSessionManager(c *Client, store persist.Store, bootstrapUser, bootstrapPass string) *SessionManager {
	return &SessionManager{
		client:        c,
		store:         store,
		bootstrapUser: bootstrapUser,
		bootstrapPass: bootstrapPass,
	}
}

// Current returns a copy of the session identity.
func (m *SessionManager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// IsAuthenticated reports whether a signed-in identity is present.
func (m *SessionManager) IsAuthenticated() bool { return m.Current().IsAuthenticated() }

// Restore loads the persisted session record and verifies it against
// the backend. With no valid record it falls back to the unattended
// bootstrap. Failures clear the session and are recorded in
// LastError; they are never fatal to the caller.
func (m *SessionManager) Restore(ctx context.Context) {
	m.begin()
	defer m.end()

	if stored := m.loadPersisted(); stored != nil && stored.Token != "" {
		rows, err := m.client.IsSignedIn(ctx, stored.Token)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("failed to verify persisted session")
			m.clearSession()
		case len(rows) > 0 && rows[0].SignedIn:
			err := m.ResolveToken(ctx, stored.Token, stored.Username)
			if err == nil {
				return
			}
			log.Warn().Err(err).Msg("failed to restore persisted session")
			m.clearSession()
		default:
			m.clearSession()
		}
	}

	if m.IsAuthenticated() {
		return
	}
	if m.bootstrapUser == "" || m.bootstrapPass == "" {
		return
	}
	if err := m.bootstrap(ctx); err != nil {
		log.Warn().Err(err).Msg("unattended bootstrap failed")
		m.clearSession()
		m.fail(err)
	}
}

// bootstrap signs in with the configured default credentials, creating
// the account first when it does not exist yet. Both server operations
// are idempotent, so a half-completed earlier run is recovered rather
// than repeated.
func (m *SessionManager) bootstrap(ctx context.Context) error {
	creds := LoginRequest{Username: m.bootstrapUser, Password: m.bootstrapPass}
	if resp, err := m.client.Login(ctx, creds); err == nil {
		return m.ResolveToken(ctx, resp.Token, m.bootstrapUser)
	}
	if err := m.client.Register(ctx, RegisterRequest{Username: m.bootstrapUser, Password: m.bootstrapPass, IsAdmin: true}); err != nil {
		return err
	}
	resp, err := m.client.Login(ctx, creds)
	if err != nil {
		return err
	}
	return m.ResolveToken(ctx, resp.Token, m.bootstrapUser)
}

// ResolveToken fetches the owning user id and admin flag for a token
// believed valid and commits the session. A token the backend cannot
// resolve is an authorization failure.
func (m *SessionManager) ResolveToken(ctx context.Context, token, fallbackUsername string) error {
	rows, err := m.client.GetUserByToken(ctx, token)
	if err != nil {
		return err
	}
	if len(rows) == 0 || rows[0].User == "" {
		return fmt.Errorf("%w: token does not resolve to a user", ErrNotSignedIn)
	}
	userID := rows[0].User

	adminRows, err := m.client.IsAdmin(ctx, token)
	if err != nil {
		return err
	}
	isAdmin := len(adminRows) > 0 && adminRows[0].IsAdmin

	username := fallbackUsername
	if username == "" {
		username = m.Current().Username
	}
	m.setSession(Session{Token: token, UserID: userID, Username: username, IsAdmin: isAdmin})
	return nil
}

// Login signs in with explicit credentials and resolves the identity.
func (m *SessionManager) Login(ctx context.Context, username, password string) error {
	m.begin()
	defer m.end()

	resp, err := m.client.Login(ctx, LoginRequest{Username: username, Password: password})
	if err != nil {
		m.fail(err)
		return err
	}
	if err := m.ResolveToken(ctx, resp.Token, username); err != nil {
		m.fail(err)
		return err
	}
	return nil
}

// Register creates an account and signs it in. A created account with
// no session is possible when login fails afterwards; both server
// operations are idempotent so retrying is safe.
func (m *SessionManager) Register(ctx context.Context, username, password string, isAdmin bool) error {
	m.begin()
	if err := m.client.Register(ctx, RegisterRequest{Username: username, Password: password, IsAdmin: isAdmin}); err != nil {
		m.fail(err)
		m.end()
		return err
	}
	m.end()
	return m.Login(ctx, username, password)
}

// Logout invalidates the token server-side on a best-effort basis and
// unconditionally clears the local session. It never reports failure.
func (m *SessionManager) Logout(ctx context.Context) {
	token := m.Current().Token
	if token == "" {
		m.clearSession()
		return
	}
	m.begin()
	if err := m.client.Logout(ctx, token); err != nil {
		log.Warn().Err(err).Msg("server-side logout failed")
	}
	m.end()
	m.clearSession()
}

// SetReminderTime stores the signed-in owner's preferred daily
// reminder time (HH:MM).
func (m *SessionManager) SetReminderTime(ctx context.Context, hhmm string) error {
	sess := m.Current()
	if !sess.IsAuthenticated() {
		return ErrNotSignedIn
	}
	if err := m.client.SetReminderTime(ctx, SetReminderTimeRequest{Session: sess.Token, Time: hhmm}); err != nil {
		m.fail(err)
		return err
	}
	return nil
}

// setSession commits an identity and persists the minimal record.
// Persistence failures keep the in-memory session valid for the rest
// of the process; they only cost the next restart.
func (m *SessionManager) setSession(s Session) {
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	raw, err := json.Marshal(persistedSession{Token: s.Token, Username: s.Username})
	if err == nil {
		err = m.store.Save(sessionKey, raw)
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to persist session")
	}
}

// clearSession drops the identity and the persisted record.
func (m *SessionManager) clearSession() {
	m.mu.Lock()
	m.current = Session{}
	m.mu.Unlock()

	if err := m.store.Delete(sessionKey); err != nil {
		log.Warn().Err(err).Msg("failed to delete persisted session")
	}
}

// loadPersisted reads the stored record; any decode failure is treated
// as absence.
func (m *SessionManager) loadPersisted() *persistedSession {
	raw, err := m.store.Load(sessionKey)
	if err != nil {
		if !errors.Is(err, persist.ErrNotFound) {
			log.Warn().Err(err).Msg("failed to read persisted session")
		}
		return nil
	}
	var rec persistedSession
	if err := json.Unmarshal(raw, &rec); err != nil {
		log.Warn().Err(err).Msg("failed to parse persisted session")
		return nil
	}
	return &rec
}
