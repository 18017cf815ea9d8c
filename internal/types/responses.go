package types

// ------------------------------
// Response Types
// ------------------------------
//
// Command actions return small action-specific objects. Query actions
// (underscore-prefixed) return a {"results": [...]} envelope; a missing
// results field always reads as an empty slice.

// LoginResponse carries the session token minted by login.
type LoginResponse struct {
	Token string `json:"token"`
}

// SubmitCheckInResponse carries the id of the accepted check-in.
type SubmitCheckInResponse struct {
	CheckIn string `json:"checkin"`
}

// ExerciseMutationResponse carries the id of the affected exercise.
type ExerciseMutationResponse struct {
	Exercise string `json:"exercise"`
}

// ProposalMutationResponse carries the id of the created proposal.
type ProposalMutationResponse struct {
	Proposal string `json:"proposal"`
}

// RecomputeResponse carries the freshly computed adherence figures.
type RecomputeResponse struct {
	NewStreakCount  int     `json:"newStreakCount"`
	NewCompletion7d float64 `json:"newCompletion7d"`
}

// RecordMessageResponse carries the server-assigned message id.
type RecordMessageResponse struct {
	MessageID string `json:"messageId"`
}

// RecordCompletionResponse optionally carries updated adherence
// figures; nil fields mean the backend did not include them.
type RecordCompletionResponse struct {
	StreakCount  *int     `json:"streakCount,omitempty"`
	Completion7d *float64 `json:"completion7d,omitempty"`
}

// CreateShareLinkResponse carries the minted share token.
type CreateShareLinkResponse struct {
	Token string `json:"token"`
}

// CreatePlanResponse carries the id of the new plan.
type CreatePlanResponse struct {
	Plan string `json:"plan"`
}

// ------------------------------
// Query row shapes
// ------------------------------

// UserRow is one _getUserByToken result.
type UserRow struct {
	User string `json:"user"`
}

// AdminRow is one _isAdmin result.
type AdminRow struct {
	IsAdmin bool `json:"isAdmin"`
}

// SignedInRow is one _isSignedIn result.
type SignedInRow struct {
	SignedIn bool `json:"signedIn"`
}

// HasCheckInRow is one _hasCheckIn result.
type HasCheckInRow struct {
	HasCheckIn bool `json:"hasCheckIn"`
}

// ReminderSentRow is one _hasSentReminderToday result.
type ReminderSentRow struct {
	Sent bool `json:"sent"`
}

// ShareOwnerRow is one _resolveShareLink result.
type ShareOwnerRow struct {
	Owner string `json:"owner"`
}
