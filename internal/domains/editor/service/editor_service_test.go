package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"portfolio-backend/internal/domains/editor"
	"portfolio-backend/internal/domains/portfolio"
	portfoliorepo "portfolio-backend/internal/domains/portfolio/repository"
	portfoliosvc "portfolio-backend/internal/domains/portfolio/service"
	"portfolio-backend/internal/infrastructure/blob"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRefiner lets each test decide what the collaborator returns.
type stubRefiner struct {
	fn func(ctx context.Context, text, contextLabel string) (string, error)
}

func (s *stubRefiner) Refine(ctx context.Context, text, contextLabel string) (string, error) {
	if s.fn == nil {
		return "refined: " + text, nil
	}
	return s.fn(ctx, text, contextLabel)
}

func newTestEditor(store *blob.MemoryStore, refiner editor.Refiner) (editor.Service, portfolio.Service) {
	portfolios := portfoliosvc.NewPortfolioService(portfoliorepo.NewBlobRepository(store))
	if refiner == nil {
		refiner = &stubRefiner{}
	}
	return NewEditorService(portfolios, refiner), portfolios
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("profile loads current values", func(t *testing.T) {
		svc, _ := newTestEditor(blob.NewMemoryStore(), nil)

		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetProfile})
		require.NoError(t, err)

		assert.NotEmpty(t, view.ID)
		assert.False(t, view.IsNew)
		assert.Equal(t, "Dr. Imene Ahmed Omar, MD", view.Fields["name"])
	})

	t.Run("existing item loads its fields", func(t *testing.T) {
		svc, _ := newTestEditor(blob.NewMemoryStore(), nil)

		view, err := svc.Open(ctx, editor.Target{
			Kind:    editor.TargetSection,
			Section: "skills",
			ItemID:  "s1",
		})
		require.NoError(t, err)
		assert.Equal(t, "Internal Medicine", view.Fields["name"])
		assert.Equal(t, "Clinical", view.Fields["category"])
	})

	t.Run("empty item id means add mode", func(t *testing.T) {
		svc, _ := newTestEditor(blob.NewMemoryStore(), nil)

		view, err := svc.Open(ctx, editor.Target{
			Kind:    editor.TargetSection,
			Section: "projects",
		})
		require.NoError(t, err)
		assert.True(t, view.IsNew)
		assert.Equal(t, "", view.Fields["title"])
		assert.Equal(t, []string{}, view.Fields["technologies"])
	})

	t.Run("missing item", func(t *testing.T) {
		svc, _ := newTestEditor(blob.NewMemoryStore(), nil)

		_, err := svc.Open(ctx, editor.Target{
			Kind:    editor.TargetSection,
			Section: "skills",
			ItemID:  "no-such-id",
		})
		assert.Error(t, err)
	})

	t.Run("bad target kind", func(t *testing.T) {
		svc, _ := newTestEditor(blob.NewMemoryStore(), nil)

		_, err := svc.Open(ctx, editor.Target{Kind: "footer"})
		assert.ErrorIs(t, err, editor.ErrInvalidTarget)
	})
}

func TestSetField(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestEditor(blob.NewMemoryStore(), nil)

	view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetSection, Section: "projects", ItemID: "p1"})
	require.NoError(t, err)

	t.Run("plain field", func(t *testing.T) {
		updated, err := svc.SetField(ctx, view.ID, "title", "Telehealth Platform v2")
		require.NoError(t, err)
		assert.Equal(t, "Telehealth Platform v2", updated.Fields["title"])
	})

	t.Run("technologies input is comma-parsed", func(t *testing.T) {
		updated, err := svc.SetField(ctx, view.ID, "technologies", "Go,  Gin ,,Redis")
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "Gin", "Redis"}, updated.Fields["technologies"])
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := svc.SetField(ctx, view.ID, "salary", "1")
		require.Error(t, err)
		_, _, code := editor.GetErrorResponse(err)
		assert.Equal(t, editor.ErrUnknownField.Code, code)
	})

	t.Run("closed session", func(t *testing.T) {
		_, err := svc.SetField(ctx, "gone", "title", "x")
		assert.ErrorIs(t, err, editor.ErrSessionNotFound)
	})
}

func TestAttachImage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestEditor(blob.NewMemoryStore(), nil)

	view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetSection, Section: "certifications", ItemID: "c1"})
	require.NoError(t, err)

	t.Run("upload becomes an inline data URL", func(t *testing.T) {
		png := []byte("\x89PNG\r\n\x1a\nfakepixels")

		updated, err := svc.AttachImage(ctx, view.ID, "imageUrl", png)
		require.NoError(t, err)

		url, ok := updated.Fields["imageUrl"].(string)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
	})

	t.Run("non-image field is rejected", func(t *testing.T) {
		_, err := svc.AttachImage(ctx, view.ID, "title", []byte("bytes"))
		assert.ErrorIs(t, err, editor.ErrNotAnImageField)
	})
}

func TestRefine(t *testing.T) {
	ctx := context.Background()

	t.Run("result replaces the field text", func(t *testing.T) {
		svc, _ := newTestEditor(blob.NewMemoryStore(), nil)
		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetSkillsSummary})
		require.NoError(t, err)

		result, err := svc.Refine(ctx, view.ID, "summary", "skills summary")
		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.True(t, strings.HasPrefix(result.Text, "refined: "))

		after, err := svc.Session(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, result.Text, after.Fields["summary"])
	})

	t.Run("collaborator failure keeps the original text", func(t *testing.T) {
		refiner := &stubRefiner{fn: func(context.Context, string, string) (string, error) {
			return "", assert.AnError
		}}
		svc, _ := newTestEditor(blob.NewMemoryStore(), refiner)

		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetProfile})
		require.NoError(t, err)
		original := view.Fields["summary"].(string)

		result, err := svc.Refine(ctx, view.ID, "summary", "")
		require.NoError(t, err)
		assert.False(t, result.Applied)
		assert.Equal(t, original, result.Text)

		after, err := svc.Session(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, original, after.Fields["summary"])
	})

	t.Run("field edited while in flight wins over the result", func(t *testing.T) {
		var svc editor.Service
		var sessionID string

		refiner := &stubRefiner{fn: func(ctx context.Context, text, _ string) (string, error) {
			// the owner keeps typing while the call is pending
			_, err := svc.SetField(ctx, sessionID, "summary", "typed meanwhile")
			require.NoError(t, err)
			return "stale rewrite", nil
		}}
		svc, _ = newTestEditor(blob.NewMemoryStore(), refiner)

		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetSkillsSummary})
		require.NoError(t, err)
		sessionID = view.ID

		result, err := svc.Refine(ctx, sessionID, "summary", "")
		require.NoError(t, err)
		assert.False(t, result.Applied)

		after, err := svc.Session(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "typed meanwhile", after.Fields["summary"])

		// the field is not left busy
		_, err = svc.Refine(ctx, sessionID, "summary", "")
		assert.NoError(t, err)
	})

	t.Run("second refine on a busy field conflicts", func(t *testing.T) {
		var svc editor.Service
		var sessionID string

		refiner := &stubRefiner{fn: func(ctx context.Context, text, _ string) (string, error) {
			if text == "outer" {
				_, err := svc.Refine(ctx, sessionID, "summary", "")
				assert.ErrorIs(t, err, editor.ErrFieldBusy)
			}
			return text, nil
		}}
		svc, _ = newTestEditor(blob.NewMemoryStore(), refiner)

		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetSkillsSummary})
		require.NoError(t, err)
		sessionID = view.ID

		_, err = svc.SetField(ctx, sessionID, "summary", "outer")
		require.NoError(t, err)
		_, err = svc.Refine(ctx, sessionID, "summary", "")
		require.NoError(t, err)
	})

	t.Run("non-text field is not refinable", func(t *testing.T) {
		svc, _ := newTestEditor(blob.NewMemoryStore(), nil)
		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetSection, Section: "projects", ItemID: "p1"})
		require.NoError(t, err)

		_, err = svc.Refine(ctx, view.ID, "technologies", "")
		assert.ErrorIs(t, err, editor.ErrNotRefinable)
	})
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("new section item is appended", func(t *testing.T) {
		svc, portfolios := newTestEditor(blob.NewMemoryStore(), nil)

		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetSection, Section: "experience"})
		require.NoError(t, err)
		_, err = svc.SetField(ctx, view.ID, "title", "Attending Physician")
		require.NoError(t, err)

		doc, err := svc.Save(ctx, view.ID)
		require.NoError(t, err)
		require.Len(t, doc.Experience, 3)
		assert.Equal(t, "Attending Physician", doc.Experience[2].Title)

		// session is closed
		_, err = svc.Session(ctx, view.ID)
		assert.ErrorIs(t, err, editor.ErrSessionNotFound)

		persisted, err := portfolios.Document(ctx)
		require.NoError(t, err)
		assert.Len(t, persisted.Experience, 3)
	})

	t.Run("profile save replaces wholesale", func(t *testing.T) {
		svc, _ := newTestEditor(blob.NewMemoryStore(), nil)

		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetProfile})
		require.NoError(t, err)
		_, err = svc.SetField(ctx, view.ID, "name", "Dr. Renamed")
		require.NoError(t, err)

		doc, err := svc.Save(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dr. Renamed", doc.Profile.Name)
	})

	t.Run("save races field edits without corrupting the session", func(t *testing.T) {
		store := blob.NewMemoryStore()
		svc, _ := newTestEditor(store, nil)

		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetSkillsSummary})
		require.NoError(t, err)

		// failed persists keep the session open, so both loops hit the
		// same live session for their whole run
		store.FailPuts = assert.AnError

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_, err := svc.SetField(ctx, view.ID, "summary", fmt.Sprintf("draft %d", i))
				assert.NoError(t, err)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_, err := svc.Save(ctx, view.ID)
				assert.Error(t, err)
			}
		}()
		wg.Wait()

		store.FailPuts = nil
		doc, err := svc.Save(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "draft 199", doc.SkillsSummary)
	})

	t.Run("failed persist keeps the session open", func(t *testing.T) {
		store := blob.NewMemoryStore()
		svc, _ := newTestEditor(store, nil)

		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetSkillsSummary})
		require.NoError(t, err)
		_, err = svc.SetField(ctx, view.ID, "summary", "edited")
		require.NoError(t, err)

		store.FailPuts = assert.AnError
		_, err = svc.Save(ctx, view.ID)
		require.Error(t, err)

		// edits are still there for a retry
		after, err := svc.Session(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "edited", after.Fields["summary"])

		store.FailPuts = nil
		doc, err := svc.Save(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "edited", doc.SkillsSummary)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("existing item is removed and the session closed", func(t *testing.T) {
		svc, _ := newTestEditor(blob.NewMemoryStore(), nil)

		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetSection, Section: "skills", ItemID: "s1"})
		require.NoError(t, err)

		doc, err := svc.Delete(ctx, view.ID)
		require.NoError(t, err)
		assert.Len(t, doc.Skills, 5)

		_, err = svc.Session(ctx, view.ID)
		assert.ErrorIs(t, err, editor.ErrSessionNotFound)
	})

	t.Run("unsaved new item cannot be deleted", func(t *testing.T) {
		svc, _ := newTestEditor(blob.NewMemoryStore(), nil)

		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetSection, Section: "skills"})
		require.NoError(t, err)

		_, err = svc.Delete(ctx, view.ID)
		assert.ErrorIs(t, err, editor.ErrDeleteNotAllowed)
	})

	t.Run("profile cannot be deleted", func(t *testing.T) {
		svc, _ := newTestEditor(blob.NewMemoryStore(), nil)

		view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetProfile})
		require.NoError(t, err)

		_, err = svc.Delete(ctx, view.ID)
		assert.ErrorIs(t, err, editor.ErrDeleteNotAllowed)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	svc, portfolios := newTestEditor(blob.NewMemoryStore(), nil)

	view, err := svc.Open(ctx, editor.Target{Kind: editor.TargetProfile})
	require.NoError(t, err)
	_, err = svc.SetField(ctx, view.ID, "name", "Never Saved")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, view.ID))

	_, err = svc.Session(ctx, view.ID)
	assert.ErrorIs(t, err, editor.ErrSessionNotFound)

	doc, err := portfolios.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Imene Ahmed Omar, MD", doc.Profile.Name)

	assert.ErrorIs(t, svc.Cancel(ctx, view.ID), editor.ErrSessionNotFound)
}
