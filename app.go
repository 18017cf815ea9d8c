package client

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ontrackhealth/ontrack-client/persist"
)

// App bundles the gateway, the session manager and the four domain
// stores with their wiring made explicit. Cross-store dependencies run
// only through the shared SessionManager; the stores never talk to
// each other.
type App struct {
	Client    *Client
	Session   *SessionManager
	CheckIns  *CheckInStore
	Exercises *ExerciseStore
	Feedback  *FeedbackStore
	Plan      *PlanStore
}

// NewApp assembles an App from a Config. The session record lands in
// cfg.StateDir; when no usable directory exists the App degrades to an
// in-memory record, costing only persistence across restarts.
func NewApp(cfg Config, opts ...Option) *App {
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	if cfg.RetryWindow > 0 {
		opts = append(opts, WithRetry(cfg.RetryWindow))
	}
	c := New(cfg.BaseURL, opts...)

	var store persist.Store
	dir := cfg.StateDir
	if dir == "" {
		d, err := persist.DefaultDir()
		if err != nil {
			log.Warn().Err(err).Msg("no user config directory, session will not survive restarts")
		}
		dir = d
	}
	if dir != "" {
		fs, err := persist.NewFileStore(dir)
		if err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("state directory unusable, session will not survive restarts")
		} else {
			store = fs
		}
	}
	if store == nil {
		store = persist.NewMemStore()
	}

	session := NewSessionManager(c, store, cfg.AdminUsername, cfg.AdminPassword)
	return &App{
		Client:    c,
		Session:   session,
		CheckIns:  NewCheckInStore(c, session),
		Exercises: NewExerciseStore(c, session),
		Feedback:  NewFeedbackStore(c, session),
		Plan:      NewPlanStore(c, session),
	}
}

// NewFromEnv assembles an App from ONTRACK_-prefixed environment
// variables.
func NewFromEnv(opts ...Option) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewApp(cfg, opts...), nil
}

// Start restores or bootstraps the session. Safe to call at every
// process start; failures leave an unauthenticated session and are
// reported through Session.LastError.
func (a *App) Start(ctx context.Context) {
	a.Session.Restore(ctx)
}
