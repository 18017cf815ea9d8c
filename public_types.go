package client

import "github.com/ontrackhealth/ontrack-client/internal/types"

// Public type aliases so SDK consumers can import only the client package.

// Requests
type (
	RegisterRequest         = types.RegisterRequest
	LoginRequest            = types.LoginRequest
	SetReminderTimeRequest  = types.SetReminderTimeRequest
	CreateShareLinkRequest  = types.CreateShareLinkRequest
	RevokeShareLinkRequest  = types.RevokeShareLinkRequest
	SubmitCheckInRequest    = types.SubmitCheckInRequest
	AmendCheckInRequest     = types.AmendCheckInRequest
	CheckInByDateRequest    = types.CheckInByDateRequest
	CheckInByIDRequest      = types.CheckInByIDRequest
	CheckInUpdate           = types.CheckInUpdate
	ListExercisesRequest    = types.ListExercisesRequest
	ExerciseRequest         = types.ExerciseRequest
	ExerciseDetails         = types.ExerciseDetails
	AddExerciseRequest      = types.AddExerciseRequest
	AddExerciseDraftRequest = types.AddExerciseDraftRequest
	UpdateExerciseRequest   = types.UpdateExerciseRequest
	ListProposalsRequest    = types.ListProposalsRequest
	ProposalRequest         = types.ProposalRequest
	RecomputeRequest        = types.RecomputeRequest
	RecordMessageRequest    = types.RecordMessageRequest
	SendReminderRequest     = types.SendReminderRequest
	ReminderStatusRequest   = types.ReminderStatusRequest
	RecordCompletionRequest = types.RecordCompletionRequest
	CreatePlanRequest       = types.CreatePlanRequest
	PlanItemRequest         = types.PlanItemRequest
	RemovePlanItemRequest   = types.RemovePlanItemRequest
	ArchivePlanRequest      = types.ArchivePlanRequest
)

// Domain entities
type (
	Session         = types.Session
	CheckIn         = types.CheckIn
	CheckInFields   = types.CheckInFields
	Exercise        = types.Exercise
	Proposal        = types.Proposal
	FeedbackSummary = types.FeedbackSummary
	ReminderMessage = types.ReminderMessage
	ShareLink       = types.ShareLink
	PlanItem        = types.PlanItem
	RehabPlan       = types.RehabPlan
)

// Responses
type (
	LoginResponse            = types.LoginResponse
	SubmitCheckInResponse    = types.SubmitCheckInResponse
	ExerciseMutationResponse = types.ExerciseMutationResponse
	ProposalMutationResponse = types.ProposalMutationResponse
	RecomputeResponse        = types.RecomputeResponse
	RecordMessageResponse    = types.RecordMessageResponse
	RecordCompletionResponse = types.RecordCompletionResponse
	CreateShareLinkResponse  = types.CreateShareLinkResponse
	CreatePlanResponse       = types.CreatePlanResponse
)

// Query rows
type (
	UserRow         = types.UserRow
	AdminRow        = types.AdminRow
	SignedInRow     = types.SignedInRow
	HasCheckInRow   = types.HasCheckInRow
	ReminderSentRow = types.ReminderSentRow
)

// Proposal statuses re-exported for callers filtering ListProposals.
const (
	ProposalPending   = types.ProposalPending
	ProposalApplied   = types.ProposalApplied
	ProposalDiscarded = types.ProposalDiscarded
)
