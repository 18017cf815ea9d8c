package client

import (
	"errors"

	apperrors "github.com/ontrackhealth/ontrack-client/internal/errors"
)

// Authorization failures are raised locally by guards before any
// network call ever happens. They share the message-carrying shape of
// remote failures but never originate from the transport.
var (
	// ErrNotSignedIn is returned when an operation needs an
	// authenticated session and none is present.
	ErrNotSignedIn = errors.New("sign in required")

	// ErrAdminRequired is returned when an admin-gated operation runs
	// without administrator privileges.
	ErrAdminRequired = errors.New("administrator privileges required")
)

// IsAuthorization reports whether err was raised by a local guard
// rather than by the backend or the transport.
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrNotSignedIn) || errors.Is(err, ErrAdminRequired)
}

// RemoteError is the normalized backend/transport failure carried by
// every non-authorization error the SDK returns.
type RemoteError = apperrors.RemoteError
