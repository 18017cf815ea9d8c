package api

import (
	"context"
	"net/http"

	"github.com/ontrackhealth/ontrack-client/internal/types"
)

const groupFeedback = "Feedback"

// Recompute asks the backend to rebuild an owner's adherence figures.
func Recompute(ctx context.Context, httpClient *http.Client, baseURL string, req types.RecomputeRequest) (*types.RecomputeResponse, error) {
	var out types.RecomputeResponse
	if err := do(ctx, httpClient, baseURL, groupFeedback, "recompute", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordMessage appends one reminder message to an owner's log.
func RecordMessage(ctx context.Context, httpClient *http.Client, baseURL string, req types.RecordMessageRequest) (*types.RecordMessageResponse, error) {
	var out types.RecordMessageResponse
	if err := do(ctx, httpClient, baseURL, groupFeedback, "recordMessage", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendReminder triggers the owner's reminder delivery.
func SendReminder(ctx context.Context, httpClient *http.Client, baseURL string, req types.SendReminderRequest) error {
	return do(ctx, httpClient, baseURL, groupFeedback, "sendReminder", req, nil)
}

// RecordCompletion records today's completion status. The response may
// or may not carry updated figures.
func RecordCompletion(ctx context.Context, httpClient *http.Client, baseURL string, req types.RecordCompletionRequest) (*types.RecordCompletionResponse, error) {
	var out types.RecordCompletionResponse
	if err := do(ctx, httpClient, baseURL, groupFeedback, "recordCompletion", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSummaryMetrics returns the owner's adherence summary row.
func GetSummaryMetrics(ctx context.Context, httpClient *http.Client, baseURL, session string) ([]types.FeedbackSummary, error) {
	return query[types.FeedbackSummary](ctx, httpClient, baseURL, groupFeedback, "_getSummaryMetrics", types.SessionRequest{Session: session})
}

// GetSharedSummaryMetrics reads an owner's summary through a share
// token instead of a session.
func GetSharedSummaryMetrics(ctx context.Context, httpClient *http.Client, baseURL, shareToken string) ([]types.FeedbackSummary, error) {
	return query[types.FeedbackSummary](ctx, httpClient, baseURL, groupFeedback, "_getSummaryMetrics", types.ShareTokenRequest{ShareToken: shareToken})
}

// HasSentReminderToday probes whether a reminder already went out.
func HasSentReminderToday(ctx context.Context, httpClient *http.Client, baseURL string, req types.ReminderStatusRequest) ([]types.ReminderSentRow, error) {
	return query[types.ReminderSentRow](ctx, httpClient, baseURL, groupFeedback, "_hasSentReminderToday", req)
}

// ListMessages returns the owner's reminder log, newest first.
func ListMessages(ctx context.Context, httpClient *http.Client, baseURL, session string) ([]types.ReminderMessage, error) {
	return query[types.ReminderMessage](ctx, httpClient, baseURL, groupFeedback, "_listMessages", types.SessionRequest{Session: session})
}
