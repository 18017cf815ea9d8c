package api

import (
	"context"
	"net/http"

	"github.com/ontrackhealth/ontrack-client/internal/types"
)

const groupExerciseLibrary = "ExerciseLibrary"

// ListExercises returns the library, optionally including deprecated
// entries.
func ListExercises(ctx context.Context, httpClient *http.Client, baseURL string, req types.ListExercisesRequest) ([]types.Exercise, error) {
	return query[types.Exercise](ctx, httpClient, baseURL, groupExerciseLibrary, "_listExercises", req)
}

// GetExerciseByID returns a single library entry.
func GetExerciseByID(ctx context.Context, httpClient *http.Client, baseURL string, req types.ExerciseRequest) ([]types.Exercise, error) {
	return query[types.Exercise](ctx, httpClient, baseURL, groupExerciseLibrary, "_getExerciseById", req)
}

// AddExercise publishes a new exercise.
func AddExercise(ctx context.Context, httpClient *http.Client, baseURL string, req types.AddExerciseRequest) (*types.ExerciseMutationResponse, error) {
	var out types.ExerciseMutationResponse
	if err := do(ctx, httpClient, baseURL, groupExerciseLibrary, "addExercise", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddExerciseDraft creates an unlisted draft exercise.
func AddExerciseDraft(ctx context.Context, httpClient *http.Client, baseURL string, req types.AddExerciseDraftRequest) (*types.ExerciseMutationResponse, error) {
	var out types.ExerciseMutationResponse
	if err := do(ctx, httpClient, baseURL, groupExerciseLibrary, "addExerciseDraft", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateExercise overwrites an exercise's details.
func UpdateExercise(ctx context.Context, httpClient *http.Client, baseURL string, req types.UpdateExerciseRequest) error {
	return do(ctx, httpClient, baseURL, groupExerciseLibrary, "updateExercise", req, nil)
}

// DeprecateExercise retires an exercise from the active library.
func DeprecateExercise(ctx context.Context, httpClient *http.Client, baseURL string, req types.ExerciseRequest) error {
	return do(ctx, httpClient, baseURL, groupExerciseLibrary, "deprecateExercise", req, nil)
}

// ProposeDetails asks the backend to draft a revision proposal for one
// exercise.
func ProposeDetails(ctx context.Context, httpClient *http.Client, baseURL string, req types.ExerciseRequest) (*types.ProposalMutationResponse, error) {
	var out types.ProposalMutationResponse
	if err := do(ctx, httpClient, baseURL, groupExerciseLibrary, "proposeDetails", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplyDetails applies a pending proposal to its exercise.
func ApplyDetails(ctx context.Context, httpClient *http.Client, baseURL string, req types.ProposalRequest) error {
	return do(ctx, httpClient, baseURL, groupExerciseLibrary, "applyDetails", req, nil)
}

// DiscardDetails discards a pending proposal.
func DiscardDetails(ctx context.Context, httpClient *http.Client, baseURL string, req types.ProposalRequest) error {
	return do(ctx, httpClient, baseURL, groupExerciseLibrary, "discardDetails", req, nil)
}

// ListProposals returns proposals across the library, optionally
// filtered by status.
func ListProposals(ctx context.Context, httpClient *http.Client, baseURL string, req types.ListProposalsRequest) ([]types.Proposal, error) {
	return query[types.Proposal](ctx, httpClient, baseURL, groupExerciseLibrary, "_listProposals", req)
}

// GetProposalsForExercise returns the proposals referencing one
// exercise.
func GetProposalsForExercise(ctx context.Context, httpClient *http.Client, baseURL string, req types.ExerciseRequest) ([]types.Proposal, error) {
	return query[types.Proposal](ctx, httpClient, baseURL, groupExerciseLibrary, "_getProposalsForExercise", req)
}
