package types

// ------------------------------
// Request Types
// ------------------------------
//
// Every authenticated payload is keyed by the session token; the
// backend resolves identity server-side. Owner ids ride along only
// where an action explicitly targets an owner.

// RegisterRequest holds parameters for a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
}

// LoginRequest holds credentials for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionRequest is the payload of every session-keyed query.
type SessionRequest struct {
	Session string `json:"session"`
}

// ShareTokenRequest is the payload of share-token-keyed reads.
type ShareTokenRequest struct {
	ShareToken string `json:"shareToken"`
}

// SetReminderTimeRequest sets the owner's preferred reminder time.
type SetReminderTimeRequest struct {
	Session string `json:"session"`
	Time    string `json:"time"` // HH:MM, owner-local
}

// CreateShareLinkRequest holds parameters for a new share link.
type CreateShareLinkRequest struct {
	Session    string `json:"session"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// RevokeShareLinkRequest revokes one share link by token.
type RevokeShareLinkRequest struct {
	Session string `json:"session"`
	Token   string `json:"token"`
}

// ResolveShareLinkRequest resolves a share token to its owner. It is
// the one unauthenticated query: the token itself is the credential.
type ResolveShareLinkRequest struct {
	Token string `json:"token"`
}

// SubmitCheckInRequest submits today's check-in.
type SubmitCheckInRequest struct {
	Session string `json:"session"`
	Owner   string `json:"owner"`
	Date    string `json:"date"`
	CheckInFields
}

// CheckInUpdate is a partial amendment of an existing check-in; nil
// fields are left untouched.
type CheckInUpdate struct {
	Mood         *string `json:"mood,omitempty"`
	PainLevel    *int    `json:"painLevel,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CompletedAll *bool   `json:"completedAll,omitempty"`
}

// Apply merges the non-nil fields of the update into f.
func (u CheckInUpdate) Apply(f *CheckInFields) {
	if u.Mood != nil {
		f.Mood = *u.Mood
	}
	if u.PainLevel != nil {
		f.PainLevel = *u.PainLevel
	}
	if u.Notes != nil {
		f.Notes = *u.Notes
	}
	if u.CompletedAll != nil {
		f.CompletedAll = *u.CompletedAll
	}
}

// AmendCheckInRequest amends the check-in identified by CheckIn.
type AmendCheckInRequest struct {
	Session string `json:"session"`
	CheckIn string `json:"checkin"`
	CheckInUpdate
}

// CheckInByDateRequest queries one owner's check-in for a calendar day.
type CheckInByDateRequest struct {
	Session string `json:"session"`
	Date    string `json:"date"`
}

// CheckInByIDRequest queries a single check-in by id.
type CheckInByIDRequest struct {
	Session string `json:"session"`
	CheckIn string `json:"checkin"`
}

// ListExercisesRequest lists the exercise library.
type ListExercisesRequest struct {
	Session           string `json:"session"`
	IncludeDeprecated bool   `json:"includeDeprecated,omitempty"`
}

// ExerciseRequest addresses a single exercise.
type ExerciseRequest struct {
	Session  string `json:"session"`
	Exercise string `json:"exercise"`
}

// ExerciseDetails are the editable fields of an exercise.
type ExerciseDetails struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	BodyRegion  string `json:"bodyRegion,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
}

// AddExerciseRequest creates a published exercise.
type AddExerciseRequest struct {
	Session string `json:"session"`
	ExerciseDetails
}

// AddExerciseDraftRequest creates an unlisted draft by title only.
type AddExerciseDraftRequest struct {
	Session string `json:"session"`
	Title   string `json:"title"`
}

// UpdateExerciseRequest overwrites an exercise's details.
type UpdateExerciseRequest struct {
	Session  string `json:"session"`
	Exercise string `json:"exercise"`
	ExerciseDetails
}

// ListProposalsRequest lists proposals, optionally filtered by status.
type ListProposalsRequest struct {
	Session string `json:"session"`
	Status  string `json:"status,omitempty"`
}

// ProposalRequest addresses a single proposal.
type ProposalRequest struct {
	Session  string `json:"session"`
	Proposal string `json:"proposal"`
}

// RecomputeRequest asks the backend to recompute adherence figures.
type RecomputeRequest struct {
	Session string `json:"session"`
	Owner   string `json:"owner"`
}

// RecordMessageRequest appends a reminder message for an owner.
type RecordMessageRequest struct {
	Session string `json:"session"`
	Owner   string `json:"owner"`
	Content string `json:"content"`
}

// SendReminderRequest triggers the owner's reminder.
type SendReminderRequest struct {
	Session string `json:"session"`
	Owner   string `json:"owner"`
}

// ReminderStatusRequest probes whether a reminder went out on a day.
type ReminderStatusRequest struct {
	Session string `json:"session"`
	Date    string `json:"date"`
}

// RecordCompletionRequest records today's completion status.
type RecordCompletionRequest struct {
	Session      string `json:"session"`
	Date         string `json:"date"`
	CompletedAll bool   `json:"completedAll"`
}

// CreatePlanRequest creates a fresh active plan for an owner.
type CreatePlanRequest struct {
	Session string `json:"session"`
	Owner   string `json:"owner"`
}

// PlanItemRequest adds one item to a plan.
type PlanItemRequest struct {
	Session string `json:"session"`
	Plan    string `json:"plan"`
	PlanItem
}

// RemovePlanItemRequest removes a plan item by exercise id.
type RemovePlanItemRequest struct {
	Session  string `json:"session"`
	Plan     string `json:"plan"`
	Exercise string `json:"exercise"`
}

// ArchivePlanRequest archives a plan, retiring it as the active one.
type ArchivePlanRequest struct {
	Session string `json:"session"`
	Plan    string `json:"plan"`
}
