package service

import (
	"context"
	"sync"

	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/internal/domains/portfolio/model"
)

// portfolioService owns the in-memory document and writes it back on every
// mutation. The document is loaded lazily on first access and kept for the
// process lifetime; a failed persist keeps the previous document so the
// caller sees "changes not saved" without a half-applied state.
type portfolioService struct {
	repo portfolio.Repository

	mu  sync.RWMutex
	doc *model.PortfolioDocument
}

// NewPortfolioService creates the portfolio service.
func NewPortfolioService(repo portfolio.Repository) portfolio.Service {
	return &portfolioService{repo: repo}
}

func (s *portfolioService) Document(ctx context.Context) (*model.PortfolioDocument, error) {
	doc, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Clone(), nil
}

func (s *portfolioService) SectionView(ctx context.Context, name model.SectionName) (*model.SectionView, error) {
	doc, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return doc.BuildSectionView(name)
}

// Upsert: replace-by-id preserving position, else append.
// Upserting an identical item twice leaves exactly one entry at the
// position of first insertion.
func (s *portfolioService) Upsert(ctx context.Context, section model.SectionName, item model.Item) (*model.PortfolioDocument, error) {
	return s.mutate(ctx, func(doc *model.PortfolioDocument) (*model.PortfolioDocument, error) {
		items, err := doc.Items(section)
		if err != nil {
			return nil, err
		}

		replaced := false
		for i, existing := range items {
			if existing.ItemID() == item.ItemID() {
				items[i] = item
				replaced = true
				break
			}
		}
		if !replaced {
			items = append(items, item)
		}
		return doc.WithItems(section, items)
	})
}

// Remove filters out the id. Absent id is a no-op, not an error; the
// document is still re-persisted, which is harmless (same bytes).
func (s *portfolioService) Remove(ctx context.Context, section model.SectionName, id string) (*model.PortfolioDocument, error) {
	return s.mutate(ctx, func(doc *model.PortfolioDocument) (*model.PortfolioDocument, error) {
		items, err := doc.Items(section)
		if err != nil {
			return nil, err
		}

		kept := make([]model.Item, 0, len(items))
		for _, existing := range items {
			if existing.ItemID() != id {
				kept = append(kept, existing)
			}
		}
		return doc.WithItems(section, kept)
	})
}

func (s *portfolioService) SetProfile(ctx context.Context, profile model.Profile) (*model.PortfolioDocument, error) {
	return s.mutate(ctx, func(doc *model.PortfolioDocument) (*model.PortfolioDocument, error) {
		next := doc.Clone()
		next.Profile = profile
		return next, nil
	})
}

func (s *portfolioService) SetSkillsSummary(ctx context.Context, summary string) (*model.PortfolioDocument, error) {
	return s.mutate(ctx, func(doc *model.PortfolioDocument) (*model.PortfolioDocument, error) {
		next := doc.Clone()
		next.SkillsSummary = summary
		return next, nil
	})
}

// mutate applies fn to a copy of the current document, persists the result,
// and swaps it in. The lock covers the whole read-modify-write; there is
// exactly one writer per invariant but HTTP gives us concurrent callers.
func (s *portfolioService) mutate(ctx context.Context, fn func(*model.PortfolioDocument) (*model.PortfolioDocument, error)) (*model.PortfolioDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}

	next, err := fn(s.doc.Clone())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, model.NewDocumentNotSaved(err)
	}

	s.doc = next
	return next.Clone(), nil
}

func (s *portfolioService) current(ctx context.Context) (*model.PortfolioDocument, error) {
	s.mu.RLock()
	if s.doc != nil {
		doc := s.doc
		s.mu.RUnlock()
		return doc, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}
	return s.doc, nil
}

func (s *portfolioService) ensureLoadedLocked(ctx context.Context) error {
	if s.doc != nil {
		return nil
	}
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}
