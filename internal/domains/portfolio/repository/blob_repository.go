package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/internal/domains/portfolio/model"
	"portfolio-backend/internal/infrastructure/blob"
	"portfolio-backend/pkg/logger"
)

// DocumentKey is the fixed blob key the whole document lives under.
// Matches the frontend's old localStorage key so an imported blob works
// as-is.
const DocumentKey = "portfolio_data"

// blobRepository persists the document as one JSON blob.
type blobRepository struct {
	store blob.Store
}

// NewBlobRepository creates the blob-backed document repository.
func NewBlobRepository(store blob.Store) portfolio.Repository {
	return &blobRepository{store: store}
}

// Load returns the persisted document. A missing blob means first run; a
// corrupt blob is logged and treated the same way - both fall back to the
// bundled seed so startup never hard-fails on storage contents.
func (r *blobRepository) Load(ctx context.Context) (*model.PortfolioDocument, error) {
	data, err := r.store.Get(ctx, DocumentKey)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return model.SeedDocument(), nil
		}
		return nil, fmt.Errorf("failed to load portfolio blob: %w", err)
	}

	var doc model.PortfolioDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("corrupt portfolio blob, falling back to seed", err)
		return model.SeedDocument(), nil
	}
	return &doc, nil
}

// Save overwrites the stored blob with the full document.
func (r *blobRepository) Save(ctx context.Context, doc *model.PortfolioDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize portfolio document: %w", err)
	}
	if err := r.store.Put(ctx, DocumentKey, data); err != nil {
		return fmt.Errorf("failed to persist portfolio document: %w", err)
	}
	return nil
}
