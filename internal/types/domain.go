package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Session is the client's cached authentication identity. Only the
// session manager mutates it; every store reads it.
type Session struct {
	Token    string
	UserID   string
	Username string
	IsAdmin  bool
}

// IsAuthenticated is derived, never stored: a session is signed in
// exactly when both the token and the resolved user id are present.
func (s Session) IsAuthenticated() bool { return s.Token != "" && s.UserID != "" }

// CheckInFields are the answer fields of a daily check-in, shared by
// the cached record and the submit payload.
type CheckInFields struct {
	Mood         string `json:"mood,omitempty"`
	PainLevel    int    `json:"painLevel,omitempty"`
	Notes        string `json:"notes,omitempty"`
	CompletedAll bool   `json:"completedAll,omitempty"`
}

// CheckIn is one daily check-in row. At most one per (owner, date) is
// meaningful as "today's" record.
type CheckIn struct {
	ID    string `json:"_id,omitempty"`
	Owner string `json:"owner"`
	Date  string `json:"date"` // calendar day, YYYY-MM-DD
	CheckInFields
}

// Exercise is one entry of the exercise library, unique by id.
type Exercise struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	BodyRegion  string `json:"bodyRegion,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	Deprecated  bool   `json:"deprecated"`
}

// Proposal statuses as the backend reports them.
const (
	ProposalPending   = "pending"
	ProposalApplied   = "applied"
	ProposalDiscarded = "discarded"
)

// Proposal is a suggested revision of one exercise's details. Many may
// exist per exercise; the backend keeps at most one meaningfully
// active.
type Proposal struct {
	ID          string `json:"_id"`
	Exercise    string `json:"exercise"`
	Status      string `json:"status"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// FeedbackSummary is the adherence snapshot for one owner, overwritten
// wholesale on each recompute.
type FeedbackSummary struct {
	Owner        string  `json:"owner,omitempty"`
	StreakCount  int     `json:"streakCount"`
	Completion7d float64 `json:"completion7d"`
}

// ReminderMessage is one append-only reminder log entry.
type ReminderMessage struct {
	ID        string    `json:"_id"`
	Owner     string    `json:"owner"`
	Timestamp time.Time `json:"timestamp"`
	Content   string    `json:"content"`
}

// ShareLink grants revocable read-only access to an owner's progress.
type ShareLink struct {
	Token  string    `json:"token"`
	Owner  string    `json:"owner,omitempty"`
	Expiry time.Time `json:"expiry"`
}

// PlanItem is one exercise assignment within a rehab plan.
type PlanItem struct {
	Exercise string `json:"exercise"`
	Sets     int    `json:"sets,omitempty"`
	Reps     int    `json:"reps,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// RehabPlan is an owner's personalized plan. The backend keeps at most
// one active (non-archived) plan per owner.
type RehabPlan struct {
	ID    string     `json:"_id"`
	Owner string     `json:"owner"`
	Items []PlanItem `json:"items"`
}
