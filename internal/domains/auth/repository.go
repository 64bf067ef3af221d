package auth

import "context"

// SecretRepository persists the shared owner secret. Stored in plain form -
// a single-owner page gated by one shared word, not an account system; a
// documented security caveat, not a feature.
type SecretRepository interface {
	// Secret returns the current secret, or the bootstrap default when
	// none was persisted yet.
	Secret(ctx context.Context) (string, error)

	// SetSecret replaces and persists the secret.
	SetSecret(ctx context.Context, secret string) error
}
