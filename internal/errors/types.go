// Package errors carries the error values shared between the gateway
// layer and the transport wrappers.
package errors

import "fmt"

// RemoteError is any failure reported by the backend or the transport
// underneath it, normalized to a single human-readable message. The
// status code is retained for transport-level retry classification
// only; callers branch on the message, not on a code.
type RemoteError struct {
	StatusCode int    // 0 for network-level failures
	Message    string // what the caller displays
	Underlying error  // original error, if any
}

// Error implements the error interface. Only the message is exposed;
// the backend collapses structured error codes into text before it
// reaches us.
func (e *RemoteError) Error() string { return e.Message }

// Unwrap returns the underlying error for error chain compatibility.
func (e *RemoteError) Unwrap() error { return e.Underlying }

// NewRemoteError builds a RemoteError from an HTTP status and the
// message extracted from the response body. An empty message falls
// back to a status line.
func NewRemoteError(statusCode int, message string) *RemoteError {
	if message == "" {
		message = fmt.Sprintf("request failed: status %d", statusCode)
	}
	return &RemoteError{StatusCode: statusCode, Message: message}
}

// NewNetworkError wraps a transport failure that never produced an
// HTTP response.
func NewNetworkError(operation string, err error) *RemoteError {
	return &RemoteError{
		Message:    fmt.Sprintf("%s: %v", operation, err),
		Underlying: err,
	}
}
