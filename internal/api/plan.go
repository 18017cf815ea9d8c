package api

import (
	"context"
	"net/http"

	"github.com/ontrackhealth/ontrack-client/internal/types"
)

const groupRehabPlan = "RehabPlan"

// CreatePlan creates a fresh active plan for the owner.
func CreatePlan(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreatePlanRequest) (*types.CreatePlanResponse, error) {
	var out types.CreatePlanResponse
	if err := do(ctx, httpClient, baseURL, groupRehabPlan, "createPlan", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddPlanItem appends one item to a plan.
func AddPlanItem(ctx context.Context, httpClient *http.Client, baseURL string, req types.PlanItemRequest) error {
	return do(ctx, httpClient, baseURL, groupRehabPlan, "addPlanItem", req, nil)
}

// RemovePlanItem removes a plan item by exercise id.
func RemovePlanItem(ctx context.Context, httpClient *http.Client, baseURL string, req types.RemovePlanItemRequest) error {
	return do(ctx, httpClient, baseURL, groupRehabPlan, "removePlanItem", req, nil)
}

// ArchivePlan retires a plan as the owner's active one.
func ArchivePlan(ctx context.Context, httpClient *http.Client, baseURL string, req types.ArchivePlanRequest) error {
	return do(ctx, httpClient, baseURL, groupRehabPlan, "archivePlan", req, nil)
}

// GetActivePlanByOwner returns the owner's active plan, if one exists.
func GetActivePlanByOwner(ctx context.Context, httpClient *http.Client, baseURL, session string) ([]types.RehabPlan, error) {
	return query[types.RehabPlan](ctx, httpClient, baseURL, groupRehabPlan, "_getActivePlanByOwner", types.SessionRequest{Session: session})
}
