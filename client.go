// Package client is the OnTrack SDK: the state-synchronization layer a
// UI binds to. The Client is the single chokepoint to the backend's
// JSON action endpoints; the session manager and the four domain
// stores keep cached views consistent with it.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ontrackhealth/ontrack-client/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client serializes every backend call into an HTTP POST of
// <base>/<ActionGroup>/<actionName> with a JSON body and normalizes
// any failure into a single message string.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for the given backend base URL. Additional
// options can be provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap the transport so every request carries a request id.
	c.wrapTransportWithRequestID()

	return c
}

// wrapTransportWithRequestID wraps the HTTP client's transport to stamp
// each outgoing request with a fresh X-Request-Id.
func (c *Client) wrapTransportWithRequestID() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &requestIDTransport{base: baseTransport}
}

// requestIDTransport wraps an http.RoundTripper to tag requests for
// backend-side correlation.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-Id", uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// UserAccount actions - delegated to internal/api
// --------------------------------------------------------------------

// Register creates an account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return api.Register(ctx, c.http, c.baseURL, req)
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	return api.Login(ctx, c.http, c.baseURL, req)
}

// Logout invalidates a session token server-side.
func (c *Client) Logout(ctx context.Context, session string) error {
	return api.Logout(ctx, c.http, c.baseURL, session)
}

// GetUserByToken resolves the user id owning a session token.
func (c *Client) GetUserByToken(ctx context.Context, session string) ([]UserRow, error) {
	return api.GetUserByToken(ctx, c.http, c.baseURL, session)
}

// IsAdmin reports whether the session's user is an administrator.
func (c *Client) IsAdmin(ctx context.Context, session string) ([]AdminRow, error) {
	return api.IsAdmin(ctx, c.http, c.baseURL, session)
}

// IsSignedIn reports whether the backend still honors a session token.
func (c *Client) IsSignedIn(ctx context.Context, session string) ([]SignedInRow, error) {
	return api.IsSignedIn(ctx, c.http, c.baseURL, session)
}

// SetReminderTime stores the owner's preferred daily reminder time.
func (c *Client) SetReminderTime(ctx context.Context, req SetReminderTimeRequest) error {
	return api.SetReminderTime(ctx, c.http, c.baseURL, req)
}

// CreateShareLink mints a revocable, expiring share token.
func (c *Client) CreateShareLink(ctx context.Context, req CreateShareLinkRequest) (*CreateShareLinkResponse, error) {
	return api.CreateShareLink(ctx, c.http, c.baseURL, req)
}

// RevokeShareLink revokes one share token.
func (c *Client) RevokeShareLink(ctx context.Context, req RevokeShareLinkRequest) error {
	return api.RevokeShareLink(ctx, c.http, c.baseURL, req)
}

// ListShareLinks returns the owner's share links, most recent first.
func (c *Client) ListShareLinks(ctx context.Context, session string) ([]ShareLink, error) {
	return api.ListShareLinks(ctx, c.http, c.baseURL, session)
}

// --------------------------------------------------------------------
// CheckIn actions - delegated to internal/api
// --------------------------------------------------------------------

// SubmitCheckIn records a check-in for one calendar day.
func (c *Client) SubmitCheckIn(ctx context.Context, req SubmitCheckInRequest) (*SubmitCheckInResponse, error) {
	return api.SubmitCheckIn(ctx, c.http, c.baseURL, req)
}

// AmendCheckIn applies a partial update to an existing check-in.
func (c *Client) AmendCheckIn(ctx context.Context, req AmendCheckInRequest) error {
	return api.AmendCheckIn(ctx, c.http, c.baseURL, req)
}

// GetCheckInByOwnerAndDate returns the owner's check-in for a day.
func (c *Client) GetCheckInByOwnerAndDate(ctx context.Context, req CheckInByDateRequest) ([]CheckIn, error) {
	return api.GetCheckInByOwnerAndDate(ctx, c.http, c.baseURL, req)
}

// GetCheckInsByOwner returns the owner's history, newest first.
func (c *Client) GetCheckInsByOwner(ctx context.Context, session string) ([]CheckIn, error) {
	return api.GetCheckInsByOwner(ctx, c.http, c.baseURL, session)
}

// GetCheckInByID returns a single check-in by id.
func (c *Client) GetCheckInByID(ctx context.Context, req CheckInByIDRequest) ([]CheckIn, error) {
	return api.GetCheckInByID(ctx, c.http, c.baseURL, req)
}

// HasCheckIn probes whether the owner checked in on a calendar day.
func (c *Client) HasCheckIn(ctx context.Context, req CheckInByDateRequest) ([]HasCheckInRow, error) {
	return api.HasCheckIn(ctx, c.http, c.baseURL, req)
}

// --------------------------------------------------------------------
// ExerciseLibrary actions - delegated to internal/api
// --------------------------------------------------------------------

// ListExercises returns the exercise library.
func (c *Client) ListExercises(ctx context.Context, req ListExercisesRequest) ([]Exercise, error) {
	return api.ListExercises(ctx, c.http, c.baseURL, req)
}

// GetExerciseByID returns a single library entry.
func (c *Client) GetExerciseByID(ctx context.Context, req ExerciseRequest) ([]Exercise, error) {
	return api.GetExerciseByID(ctx, c.http, c.baseURL, req)
}

// AddExercise publishes a new exercise.
func (c *Client) AddExercise(ctx context.Context, req AddExerciseRequest) (*ExerciseMutationResponse, error) {
	return api.AddExercise(ctx, c.http, c.baseURL, req)
}

// AddExerciseDraft creates an unlisted draft exercise.
func (c *Client) AddExerciseDraft(ctx context.Context, req AddExerciseDraftRequest) (*ExerciseMutationResponse, error) {
	return api.AddExerciseDraft(ctx, c.http, c.baseURL, req)
}

// UpdateExercise overwrites an exercise's details.
func (c *Client) UpdateExercise(ctx context.Context, req UpdateExerciseRequest) error {
	return api.UpdateExercise(ctx, c.http, c.baseURL, req)
}

// DeprecateExercise retires an exercise from the active library.
func (c *Client) DeprecateExercise(ctx context.Context, req ExerciseRequest) error {
	return api.DeprecateExercise(ctx, c.http, c.baseURL, req)
}

// ProposeDetails asks the backend for a revision proposal.
func (c *Client) ProposeDetails(ctx context.Context, req ExerciseRequest) (*ProposalMutationResponse, error) {
	return api.ProposeDetails(ctx, c.http, c.baseURL, req)
}

// ApplyDetails applies a pending proposal to its exercise.
func (c *Client) ApplyDetails(ctx context.Context, req ProposalRequest) error {
	return api.ApplyDetails(ctx, c.http, c.baseURL, req)
}

// DiscardDetails discards a pending proposal.
func (c *Client) DiscardDetails(ctx context.Context, req ProposalRequest) error {
	return api.DiscardDetails(ctx, c.http, c.baseURL, req)
}

// ListProposals returns proposals, optionally filtered by status.
func (c *Client) ListProposals(ctx context.Context, req ListProposalsRequest) ([]Proposal, error) {
	return api.ListProposals(ctx, c.http, c.baseURL, req)
}

// GetProposalsForExercise returns one exercise's proposals.
func (c *Client) GetProposalsForExercise(ctx context.Context, req ExerciseRequest) ([]Proposal, error) {
	return api.GetProposalsForExercise(ctx, c.http, c.baseURL, req)
}

// --------------------------------------------------------------------
// Feedback actions - delegated to internal/api
// --------------------------------------------------------------------

// Recompute rebuilds an owner's adherence figures server-side.
func (c *Client) Recompute(ctx context.Context, req RecomputeRequest) (*RecomputeResponse, error) {
	return api.Recompute(ctx, c.http, c.baseURL, req)
}

// RecordMessage appends one reminder message to an owner's log.
func (c *Client) RecordMessage(ctx context.Context, req RecordMessageRequest) (*RecordMessageResponse, error) {
	return api.RecordMessage(ctx, c.http, c.baseURL, req)
}

// SendReminder triggers the owner's reminder delivery.
func (c *Client) SendReminder(ctx context.Context, req SendReminderRequest) error {
	return api.SendReminder(ctx, c.http, c.baseURL, req)
}

// RecordCompletion records today's completion status.
func (c *Client) RecordCompletion(ctx context.Context, req RecordCompletionRequest) (*RecordCompletionResponse, error) {
	return api.RecordCompletion(ctx, c.http, c.baseURL, req)
}

// GetSummaryMetrics returns the owner's adherence summary row.
func (c *Client) GetSummaryMetrics(ctx context.Context, session string) ([]FeedbackSummary, error) {
	return api.GetSummaryMetrics(ctx, c.http, c.baseURL, session)
}

// HasSentReminderToday probes whether a reminder already went out.
func (c *Client) HasSentReminderToday(ctx context.Context, req ReminderStatusRequest) ([]ReminderSentRow, error) {
	return api.HasSentReminderToday(ctx, c.http, c.baseURL, req)
}

// ListMessages returns the owner's reminder log, newest first.
func (c *Client) ListMessages(ctx context.Context, session string) ([]ReminderMessage, error) {
	return api.ListMessages(ctx, c.http, c.baseURL, session)
}

// --------------------------------------------------------------------
// RehabPlan actions - delegated to internal/api
// --------------------------------------------------------------------

// CreatePlan creates a fresh active plan for the owner.
func (c *Client) CreatePlan(ctx context.Context, req CreatePlanRequest) (*CreatePlanResponse, error) {
	return api.CreatePlan(ctx, c.http, c.baseURL, req)
}

// AddPlanItem appends one item to a plan.
func (c *Client) AddPlanItem(ctx context.Context, req PlanItemRequest) error {
	return api.AddPlanItem(ctx, c.http, c.baseURL, req)
}

// RemovePlanItem removes a plan item by exercise id.
func (c *Client) RemovePlanItem(ctx context.Context, req RemovePlanItemRequest) error {
	return api.RemovePlanItem(ctx, c.http, c.baseURL, req)
}

// ArchivePlan retires a plan as the owner's active one.
func (c *Client) ArchivePlan(ctx context.Context, req ArchivePlanRequest) error {
	return api.ArchivePlan(ctx, c.http, c.baseURL, req)
}

// GetActivePlanByOwner returns the owner's active plan, if any.
func (c *Client) GetActivePlanByOwner(ctx context.Context, session string) ([]RehabPlan, error) {
	return api.GetActivePlanByOwner(ctx, c.http, c.baseURL, session)
}

// --------------------------------------------------------------------
// Shared progress views - share-token keyed, no session required
// --------------------------------------------------------------------

// ResolveShareLink resolves a share token to the owner it exposes.
// Returns the empty string when the token is unknown or expired.
func (c *Client) ResolveShareLink(ctx context.Context, token string) (string, error) {
	rows, err := api.ResolveShareLink(ctx, c.http, c.baseURL, token)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].Owner, nil
}

// SharedCheckIns reads an owner's check-in history through a share
// token.
func (c *Client) SharedCheckIns(ctx context.Context, shareToken string) ([]CheckIn, error) {
	return api.GetSharedCheckIns(ctx, c.http, c.baseURL, shareToken)
}

// SharedSummary reads an owner's adherence summary through a share
// token. Returns nil when the backend has no row for the owner.
func (c *Client) SharedSummary(ctx context.Context, shareToken string) (*FeedbackSummary, error) {
	rows, err := api.GetSharedSummaryMetrics(ctx, c.http, c.baseURL, shareToken)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]
	return &row, nil
}
