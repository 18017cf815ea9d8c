package client

import (
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	apperrors "github.com/ontrackhealth/ontrack-client/internal/errors"
)

// retryTransport retries transient failures with exponential backoff.
// Opt-in via WithRetry; the stores above never see intermediate
// attempts, only the final outcome.
type retryTransport struct {
	base       http.RoundTripper
	maxElapsed time.Duration
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	exp := backoff.NewExponentialBackOff()
	exp.MaxElapsedTime = t.maxElapsed
	exp.Reset()

	for {
		// Action bodies are buffered by the gateway layer, so GetBody is
		// always available to rewind between attempts.
		if req.Body != nil && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			req.Body = body
		}

		resp, err := t.base.RoundTrip(req)
		if err == nil && !apperrors.RecoverableStatus(resp.StatusCode) {
			return resp, nil
		}

		wait := exp.NextBackOff()
		if wait == backoff.Stop {
			// Out of budget: hand the final outcome up unmodified so the
			// gateway normalizes the real backend message.
			return resp, err
		}
		if resp != nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		select {
		case <-time.After(wait):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}
}
