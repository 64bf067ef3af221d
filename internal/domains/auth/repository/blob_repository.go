package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/internal/infrastructure/blob"
)

// SecretKey is the fixed blob key for the owner secret. Matches the
// frontend's old localStorage key so an imported blob works as-is.
const SecretKey = "portfolio_pass"

type blobRepository struct {
	store     blob.Store
	bootstrap string
}

// NewBlobRepository creates the blob-backed secret repository. bootstrap is
// served until a secret is persisted for the first time.
func NewBlobRepository(store blob.Store, bootstrap string) auth.SecretRepository {
	return &blobRepository{store: store, bootstrap: bootstrap}
}

func (r *blobRepository) Secret(ctx context.Context) (string, error) {
	data, err := r.store.Get(ctx, SecretKey)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return r.bootstrap, nil
		}
		return "", fmt.Errorf("failed to load secret blob: %w", err)
	}
	return string(data), nil
}

func (r *blobRepository) SetSecret(ctx context.Context, secret string) error {
	if err := r.store.Put(ctx, SecretKey, []byte(secret)); err != nil {
		return fmt.Errorf("failed to persist secret: %w", err)
	}
	return nil
}
