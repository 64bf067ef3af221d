package portfolio

import (
	"context"

	"portfolio-backend/internal/domains/portfolio/model"
)

// Repository defines persistence for the portfolio document. The document
// is a single aggregate: reads and writes are always whole-document.
type Repository interface {
	// Load returns the persisted document, or the bundled seed when no
	// blob exists yet or the stored blob does not parse.
	Load(ctx context.Context) (*model.PortfolioDocument, error)

	// Save serializes and persists the full document, replacing any
	// previous value. No partial writes, no diffing.
	Save(ctx context.Context, doc *model.PortfolioDocument) error
}
