package portfolio

import (
	"context"

	"portfolio-backend/internal/domains/portfolio/model"
)

// Service defines all business logic operations for the portfolio domain.
// Every mutation returns the new document, persisted before return; the
// previous document value is never mutated in place.
type Service interface {
	// Document returns the current document.
	Document(ctx context.Context) (*model.PortfolioDocument, error)

	// SectionView returns the display shape of one section.
	SectionView(ctx context.Context, name model.SectionName) (*model.SectionView, error)

	// Upsert replaces the item matching by id in place (preserving
	// position), or appends when no match exists.
	Upsert(ctx context.Context, section model.SectionName, item model.Item) (*model.PortfolioDocument, error)

	// Remove filters the collection to exclude the id. No-op when absent.
	Remove(ctx context.Context, section model.SectionName, id string) (*model.PortfolioDocument, error)

	// SetProfile replaces the profile record wholesale.
	SetProfile(ctx context.Context, profile model.Profile) (*model.PortfolioDocument, error)

	// SetSkillsSummary replaces the skills summary wholesale.
	SetSkillsSummary(ctx context.Context, summary string) (*model.PortfolioDocument, error)
}
