// Package api talks to the OnTrack backend. Every action is an HTTP
// POST of a JSON object to <base>/<ActionGroup>/<actionName>; any
// failure is normalized into a single message string before it leaves
// this package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/ontrackhealth/ontrack-client/internal/errors"
)

// do posts one action and, when out is non-nil, decodes the 2xx
// response body into it.
func do(ctx context.Context, httpClient *http.Client, baseURL, group, action string, payload, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/%s/%s", baseURL, group, action)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		failuresTotal.WithLabelValues(group, action).Inc()
		return apperrors.NewNetworkError(group+"/"+action, err)
	}
	defer func() { _ = resp.Body.Close() }()
	actionsTotal.WithLabelValues(group, action).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		failuresTotal.WithLabelValues(group, action).Inc()
		return apperrors.NewRemoteError(resp.StatusCode, errorMessage(resp.Body))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s/%s: decode response: %w", group, action, err)
	}
	return nil
}

// query posts an underscore-prefixed read action and unwraps its
// {"results": [...]} envelope. A missing results field reads as empty.
func query[T any](ctx context.Context, httpClient *http.Client, baseURL, group, action string, payload any) ([]T, error) {
	var env struct {
		Results []T `json:"results"`
	}
	if err := do(ctx, httpClient, baseURL, group, action, payload, &env); err != nil {
		return nil, err
	}
	return env.Results, nil
}

// errorMessage extracts the backend's error text from a failure body.
// The backend reports {"error": "..."}; anything else falls back to
// the raw body so the caller still sees something actionable.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return string(bytes.TrimSpace(raw))
}
