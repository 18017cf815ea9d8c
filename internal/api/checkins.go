package api

import (
	"context"
	"net/http"

	"github.com/ontrackhealth/ontrack-client/internal/types"
)

const groupCheckIn = "CheckIn"

// SubmitCheckIn records a check-in for one calendar day.
func SubmitCheckIn(ctx context.Context, httpClient *http.Client, baseURL string, req types.SubmitCheckInRequest) (*types.SubmitCheckInResponse, error) {
	var out types.SubmitCheckInResponse
	if err := do(ctx, httpClient, baseURL, groupCheckIn, "submit", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AmendCheckIn applies a partial update to an existing check-in.
func AmendCheckIn(ctx context.Context, httpClient *http.Client, baseURL string, req types.AmendCheckInRequest) error {
	return do(ctx, httpClient, baseURL, groupCheckIn, "amend", req, nil)
}

// GetCheckInByOwnerAndDate returns the session owner's check-in for a
// calendar day, if any.
func GetCheckInByOwnerAndDate(ctx context.Context, httpClient *http.Client, baseURL string, req types.CheckInByDateRequest) ([]types.CheckIn, error) {
	return query[types.CheckIn](ctx, httpClient, baseURL, groupCheckIn, "_getCheckInByOwnerAndDate", req)
}

// GetCheckInsByOwner returns the session owner's check-in history,
// newest first.
func GetCheckInsByOwner(ctx context.Context, httpClient *http.Client, baseURL, session string) ([]types.CheckIn, error) {
	return query[types.CheckIn](ctx, httpClient, baseURL, groupCheckIn, "_getCheckInsByOwner", types.SessionRequest{Session: session})
}

// GetSharedCheckIns reads an owner's check-in history through a share
// token instead of a session.
func GetSharedCheckIns(ctx context.Context, httpClient *http.Client, baseURL, shareToken string) ([]types.CheckIn, error) {
	return query[types.CheckIn](ctx, httpClient, baseURL, groupCheckIn, "_getCheckInsByOwner", types.ShareTokenRequest{ShareToken: shareToken})
}

// GetCheckInByID returns a single check-in by id.
func GetCheckInByID(ctx context.Context, httpClient *http.Client, baseURL string, req types.CheckInByIDRequest) ([]types.CheckIn, error) {
	return query[types.CheckIn](ctx, httpClient, baseURL, groupCheckIn, "_getCheckInById", req)
}

// HasCheckIn probes whether the owner checked in on a calendar day.
func HasCheckIn(ctx context.Context, httpClient *http.Client, baseURL string, req types.CheckInByDateRequest) ([]types.HasCheckInRow, error) {
	return query[types.HasCheckInRow](ctx, httpClient, baseURL, groupCheckIn, "_hasCheckIn", req)
}
