package editor

import (
	"context"

	"portfolio-backend/internal/domains/portfolio/model"
)

// ========================================
// EDIT WORKFLOW
// ========================================
// One edit session mirrors the frontend's edit modal:
//
//	closed -> open (load current values) -> editing
//	       -> save | delete | cancel (all terminal)
//
// The session holds a working copy of the target's fields; nothing touches
// the document until Save/Delete.

// TargetKind selects what an edit session operates on.
type TargetKind string

const (
	TargetProfile       TargetKind = "profile"
	TargetSkillsSummary TargetKind = "skills_summary"
	TargetSection       TargetKind = "section"
)

// Target identifies the record an edit session works on. For section
// targets an empty ItemID means add mode: the session starts from a fresh
// schema-default item with a newly generated id.
type Target struct {
	Kind    TargetKind        `json:"kind" binding:"required"`
	Section model.SectionName `json:"section,omitempty"`
	ItemID  string            `json:"item_id,omitempty"`
}

// SessionView is the editing state exposed over HTTP.
type SessionView struct {
	ID     string         `json:"id"`
	Target Target         `json:"target"`
	IsNew  bool           `json:"is_new"`
	Fields map[string]any `json:"fields"`
	Busy   []string       `json:"busy,omitempty"`
}

// RefineResult reports one refine round trip. Applied is false when the
// collaborator failed (text fell back to the original) or when the field
// moved on while the call was in flight (stale result discarded).
type RefineResult struct {
	Field   string `json:"field"`
	Text    string `json:"text"`
	Applied bool   `json:"applied"`
}

// Refiner is the external text-refinement collaborator.
type Refiner interface {
	Refine(ctx context.Context, text, contextLabel string) (string, error)
}

// Service defines the edit workflow operations.
type Service interface {
	// Open starts a session for the target, loading a copy of its current
	// values (or schema defaults with a fresh id in add mode).
	Open(ctx context.Context, target Target) (*SessionView, error)

	// Session returns the current editing state.
	Session(ctx context.Context, id string) (*SessionView, error)

	// SetField assigns a field from its raw string input. The
	// technologies field goes through the comma parser.
	SetField(ctx context.Context, sessionID, field, value string) (*SessionView, error)

	// AttachImage converts uploaded bytes into an inline data URL and
	// assigns it to an image field. No size or type validation.
	AttachImage(ctx context.Context, sessionID, field string, data []byte) (*SessionView, error)

	// Refine asks the collaborator to rewrite one field's text. The field
	// is busy while the call is pending; other fields stay editable.
	// Collaborator failure silently keeps the original text.
	Refine(ctx context.Context, sessionID, field, contextLabel string) (*RefineResult, error)

	// Save commits the working copy (wholesale replace for profile and
	// skills summary, upsert otherwise) and closes the session. Nothing
	// validates field contents. A failed persist keeps the session open.
	Save(ctx context.Context, sessionID string) (*model.PortfolioDocument, error)

	// Delete removes the target item and closes the session. Only allowed
	// when the target is an existing collection item.
	Delete(ctx context.Context, sessionID string) (*model.PortfolioDocument, error)

	// Cancel discards the working copy and closes the session.
	Cancel(ctx context.Context, sessionID string) error
}
