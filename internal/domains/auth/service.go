package auth

import "context"

// Service is the access gate: one shared secret, one boolean of admin-ness
// expressed as live sessions. Sessions are process-local and deliberately
// disappear on restart.
type Service interface {
	// Attempt compares the candidate against the secret. Success opens an
	// owner session and returns its token; failure returns
	// ErrInvalidPassword with no state change.
	Attempt(ctx context.Context, candidate string) (string, error)

	// ChangeSecret replaces the persisted secret. Requires non-empty.
	// The current session stays valid.
	ChangeSecret(ctx context.Context, newSecret string) error

	// Logout ends the session carried by the token. Unknown tokens are a
	// no-op.
	Logout(ctx context.Context, token string) error

	// VerifySession checks a token: valid signature, not expired, session
	// still active (not logged out, not lost to a restart).
	VerifySession(token string) error
}
