package service

import (
	"context"
	"testing"
	"time"

	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/internal/domains/auth/repository"
	"portfolio-backend/internal/infrastructure/blob"
	"portfolio-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bootstrapSecret = "usmle"

func newTestGate(store *blob.MemoryStore) auth.Service {
	secrets := repository.NewBlobRepository(store, bootstrapSecret)
	tokens := jwt.NewManager("test-jwt-secret", time.Hour)
	return NewGateService(secrets, tokens)
}

func TestAttempt(t *testing.T) {
	ctx := context.Background()

	t.Run("bootstrap secret opens a session", func(t *testing.T) {
		gate := newTestGate(blob.NewMemoryStore())

		token, err := gate.Attempt(ctx, bootstrapSecret)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.NoError(t, gate.VerifySession(token))
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		gate := newTestGate(blob.NewMemoryStore())

		_, err := gate.Attempt(ctx, "guess")
		assert.ErrorIs(t, err, auth.ErrInvalidPassword)
	})

	t.Run("empty candidate is rejected", func(t *testing.T) {
		gate := newTestGate(blob.NewMemoryStore())

		_, err := gate.Attempt(ctx, "")
		assert.ErrorIs(t, err, auth.ErrInvalidPassword)
	})
}

func TestChangeSecret(t *testing.T) {
	ctx := context.Background()

	t.Run("new secret replaces the old one", func(t *testing.T) {
		store := blob.NewMemoryStore()
		gate := newTestGate(store)

		require.NoError(t, gate.ChangeSecret(ctx, "new-pass"))

		_, err := gate.Attempt(ctx, bootstrapSecret)
		assert.ErrorIs(t, err, auth.ErrInvalidPassword)

		_, err = gate.Attempt(ctx, "new-pass")
		assert.NoError(t, err)

		// persisted: a fresh gate over the same store sees the change
		_, err = newTestGate(store).Attempt(ctx, "new-pass")
		assert.NoError(t, err)
	})

	t.Run("empty secret is rejected", func(t *testing.T) {
		gate := newTestGate(blob.NewMemoryStore())
		assert.ErrorIs(t, gate.ChangeSecret(ctx, ""), auth.ErrEmptySecret)
	})

	t.Run("current session survives the change", func(t *testing.T) {
		gate := newTestGate(blob.NewMemoryStore())

		token, err := gate.Attempt(ctx, bootstrapSecret)
		require.NoError(t, err)

		require.NoError(t, gate.ChangeSecret(ctx, "new-pass"))
		assert.NoError(t, gate.VerifySession(token))
	})

	t.Run("failed persist surfaces as secret-not-saved", func(t *testing.T) {
		store := blob.NewMemoryStore()
		store.FailPuts = assert.AnError
		gate := newTestGate(store)

		err := gate.ChangeSecret(ctx, "new-pass")
		require.Error(t, err)

		_, _, code := auth.GetErrorResponse(err)
		assert.Equal(t, auth.ErrSecretNotSaved.Code, code)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(blob.NewMemoryStore())

	token, err := gate.Attempt(ctx, bootstrapSecret)
	require.NoError(t, err)
	require.NoError(t, gate.VerifySession(token))

	require.NoError(t, gate.Logout(ctx, token))
	assert.Error(t, gate.VerifySession(token))

	// logging out twice is a no-op
	assert.NoError(t, gate.Logout(ctx, token))
}

func TestVerifySession(t *testing.T) {
	ctx := context.Background()
	store := blob.NewMemoryStore()
	gate := newTestGate(store)

	t.Run("garbage token", func(t *testing.T) {
		assert.ErrorIs(t, gate.VerifySession("not-a-token"), auth.ErrInvalidSession)
	})

	t.Run("token from a previous process is dead", func(t *testing.T) {
		token, err := gate.Attempt(ctx, bootstrapSecret)
		require.NoError(t, err)

		// a new gate has an empty session table, like after a restart
		restarted := newTestGate(store)
		assert.ErrorIs(t, restarted.VerifySession(token), auth.ErrInvalidSession)
	})
}
