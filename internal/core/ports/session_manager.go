package ports

import "context"

// SessionManager owns the session lifecycle. Handlers only ever hold the
// opaque session id (delivered via cookie); they never construct or mutate
// a session record themselves.
type SessionManager interface {
	// Start creates a session bound to userID and returns its identifier.
	Start(ctx context.Context, userID string) (string, error)

	// Touch resolves an id to the bound user id and slides the expiry
	// forward. Missing or expired sessions fail with
	// domain.ErrNotAuthenticated.
	Touch(ctx context.Context, sessionID string) (string, error)

	// Destroy removes the session; destroying an unknown id is not an error.
	Destroy(ctx context.Context, sessionID string) error
}
