package api

import (
	"context"
	"net/http"

	"github.com/ontrackhealth/ontrack-client/internal/types"
)

const groupUserAccount = "UserAccount"

// Register creates an account. The backend returns no useful body.
func Register(ctx context.Context, httpClient *http.Client, baseURL string, req types.RegisterRequest) error {
	return do(ctx, httpClient, baseURL, groupUserAccount, "register", req, nil)
}

// Login exchanges credentials for a session token.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, req types.LoginRequest) (*types.LoginResponse, error) {
	var out types.LoginResponse
	if err := do(ctx, httpClient, baseURL, groupUserAccount, "login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates a session token server-side.
func Logout(ctx context.Context, httpClient *http.Client, baseURL, session string) error {
	return do(ctx, httpClient, baseURL, groupUserAccount, "logout", types.SessionRequest{Session: session}, nil)
}

// GetUserByToken resolves the user id owning a session token.
func GetUserByToken(ctx context.Context, httpClient *http.Client, baseURL, session string) ([]types.UserRow, error) {
	return query[types.UserRow](ctx, httpClient, baseURL, groupUserAccount, "_getUserByToken", types.SessionRequest{Session: session})
}

// IsAdmin reports whether the session's user is an administrator.
func IsAdmin(ctx context.Context, httpClient *http.Client, baseURL, session string) ([]types.AdminRow, error) {
	return query[types.AdminRow](ctx, httpClient, baseURL, groupUserAccount, "_isAdmin", types.SessionRequest{Session: session})
}

// IsSignedIn reports whether the backend still honors a session token.
func IsSignedIn(ctx context.Context, httpClient *http.Client, baseURL, session string) ([]types.SignedInRow, error) {
	return query[types.SignedInRow](ctx, httpClient, baseURL, groupUserAccount, "_isSignedIn", types.SessionRequest{Session: session})
}

// SetReminderTime stores the owner's preferred daily reminder time.
func SetReminderTime(ctx context.Context, httpClient *http.Client, baseURL string, req types.SetReminderTimeRequest) error {
	return do(ctx, httpClient, baseURL, groupUserAccount, "setReminderTime", req, nil)
}

// CreateShareLink mints a revocable, expiring share token.
func CreateShareLink(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateShareLinkRequest) (*types.CreateShareLinkResponse, error) {
	var out types.CreateShareLinkResponse
	if err := do(ctx, httpClient, baseURL, groupUserAccount, "createShareLink", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeShareLink revokes one share token.
func RevokeShareLink(ctx context.Context, httpClient *http.Client, baseURL string, req types.RevokeShareLinkRequest) error {
	return do(ctx, httpClient, baseURL, groupUserAccount, "revokeShareLink", req, nil)
}

// ListShareLinks returns the owner's share links, most recent first.
func ListShareLinks(ctx context.Context, httpClient *http.Client, baseURL, session string) ([]types.ShareLink, error) {
	return query[types.ShareLink](ctx, httpClient, baseURL, groupUserAccount, "_listShareLinks", types.SessionRequest{Session: session})
}

// ResolveShareLink resolves a share token to the owner it exposes.
func ResolveShareLink(ctx context.Context, httpClient *http.Client, baseURL, token string) ([]types.ShareOwnerRow, error) {
	return query[types.ShareOwnerRow](ctx, httpClient, baseURL, groupUserAccount, "_resolveShareLink", types.ResolveShareLinkRequest{Token: token})
}
