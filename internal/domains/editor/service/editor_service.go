package service

import (
	"context"
	"encoding/base64"
	"net/http"
	"sync"

	"portfolio-backend/internal/domains/editor"
	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/internal/domains/portfolio/model"
	"portfolio-backend/pkg/logger"

	"github.com/google/uuid"
)

// session is the mutable working copy behind one open edit modal.
type session struct {
	id     string
	target editor.Target
	isNew  bool
	itemID string
	fields map[string]any
	// rev bumps whenever a field is assigned; a refine result is applied
	// only if the field's rev still matches the one captured at launch.
	rev  map[string]int
	busy map[string]bool
}

// editorService keeps open sessions in memory. The single mutex covers the
// session table and every session's state; it is never held across the
// refinement network call or a persist - those run on snapshots taken
// under the lock.
type editorService struct {
	portfolios portfolio.Service
	refiner    editor.Refiner

	mu       sync.Mutex
	sessions map[string]*session
}

// NewEditorService creates the edit workflow service.
func NewEditorService(portfolios portfolio.Service, refiner editor.Refiner) editor.Service {
	return &editorService{
		portfolios: portfolios,
		refiner:    refiner,
		sessions:   make(map[string]*session),
	}
}

func (s *editorService) Open(ctx context.Context, target editor.Target) (*editor.SessionView, error) {
	doc, err := s.portfolios.Document(ctx)
	if err != nil {
		return nil, err
	}

	sess := &session{
		id:     uuid.NewString(),
		target: target,
		rev:    make(map[string]int),
		busy:   make(map[string]bool),
	}

	switch target.Kind {
	case editor.TargetProfile:
		sess.fields = map[string]any{
			"name":     doc.Profile.Name,
			"title":    doc.Profile.Title,
			"summary":  doc.Profile.Summary,
			"email":    doc.Profile.Email,
			"linkedin": doc.Profile.LinkedIn,
			"website":  doc.Profile.Website,
			"phone":    doc.Profile.Phone,
		}

	case editor.TargetSkillsSummary:
		sess.fields = map[string]any{"summary": doc.SkillsSummary}

	case editor.TargetSection:
		schema, err := model.SchemaFor(target.Section)
		if err != nil {
			return nil, err
		}
		if target.ItemID == "" {
			// add mode: fresh id, schema defaults
			sess.isNew = true
			sess.itemID = uuid.NewString()
			sess.fields = schema.EncodeItem(schema.NewItem(sess.itemID))
		} else {
			item, err := findItem(doc, target.Section, target.ItemID)
			if err != nil {
				return nil, err
			}
			sess.itemID = target.ItemID
			sess.fields = schema.EncodeItem(item)
		}

	default:
		return nil, editor.ErrInvalidTarget
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	return sess.view(), nil
}

func (s *editorService) Session(_ context.Context, id string) (*editor.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, editor.ErrSessionNotFound
	}
	return sess.view(), nil
}

func (s *editorService) SetField(_ context.Context, sessionID, field, value string) (*editor.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, editor.ErrSessionNotFound
	}
	if !sess.hasField(field) {
		return nil, editor.NewUnknownField(field)
	}

	if sess.fieldKind(field) == model.FieldTechList {
		sess.fields[field] = model.ParseTechnologies(value)
	} else {
		sess.fields[field] = value
	}
	sess.rev[field]++

	return sess.view(), nil
}

// AttachImage stores the upload as a self-contained data URL. The bytes are
// taken as given: no size cap, no format check, no compression.
func (s *editorService) AttachImage(_ context.Context, sessionID, field string, data []byte) (*editor.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, editor.ErrSessionNotFound
	}
	if !sess.hasField(field) {
		return nil, editor.NewUnknownField(field)
	}
	if sess.fieldKind(field) != model.FieldImage {
		return nil, editor.ErrNotAnImageField
	}

	mime := http.DetectContentType(data)
	sess.fields[field] = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	sess.rev[field]++

	return sess.view(), nil
}

// Refine runs the collaborator against one field. The mutex is dropped for
// the duration of the call so other fields and sessions stay responsive;
// the (session, field, rev) triple captured up front decides whether the
// response may still be applied when it lands.
func (s *editorService) Refine(ctx context.Context, sessionID, field, contextLabel string) (*editor.RefineResult, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, editor.ErrSessionNotFound
	}
	if !sess.hasField(field) {
		s.mu.Unlock()
		return nil, editor.NewUnknownField(field)
	}
	text, isText := sess.fields[field].(string)
	if !isText {
		s.mu.Unlock()
		return nil, editor.ErrNotRefinable
	}
	if sess.busy[field] {
		s.mu.Unlock()
		return nil, editor.ErrFieldBusy
	}
	sess.busy[field] = true
	launchRev := sess.rev[field]
	s.mu.Unlock()

	if contextLabel == "" {
		contextLabel = field
	}
	refined, err := s.refiner.Refine(ctx, text, contextLabel)
	if err != nil {
		// degrade to a no-op: the owner keeps the original text
		logger.Warn("text refinement failed", err)
		refined = text
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := &editor.RefineResult{Field: field, Text: refined}

	sess, ok = s.sessions[sessionID]
	if ok {
		sess.busy[field] = false
	}
	if !ok || sess.rev[field] != launchRev {
		// session closed or field edited while in flight: discard
		return result, nil
	}

	if err == nil {
		sess.fields[field] = refined
		sess.rev[field]++
		result.Applied = true
	}
	return result, nil
}

func (s *editorService) Save(ctx context.Context, sessionID string) (*model.PortfolioDocument, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, editor.ErrSessionNotFound
	}
	// snapshot under the lock: a refine completion or another request can
	// write the live field map while the persist runs
	target := sess.target
	itemID := sess.itemID
	fields := copyFields(sess.fields)
	s.mu.Unlock()

	var (
		doc *model.PortfolioDocument
		err error
	)
	switch target.Kind {
	case editor.TargetProfile:
		doc, err = s.portfolios.SetProfile(ctx, model.Profile{
			Name:     fieldStr(fields, "name"),
			Title:    fieldStr(fields, "title"),
			Summary:  fieldStr(fields, "summary"),
			Email:    fieldStr(fields, "email"),
			LinkedIn: fieldStr(fields, "linkedin"),
			Website:  fieldStr(fields, "website"),
			Phone:    fieldStr(fields, "phone"),
		})
	case editor.TargetSkillsSummary:
		doc, err = s.portfolios.SetSkillsSummary(ctx, fieldStr(fields, "summary"))
	case editor.TargetSection:
		schema, schemaErr := model.SchemaFor(target.Section)
		if schemaErr != nil {
			return nil, schemaErr
		}
		doc, err = s.portfolios.Upsert(ctx, target.Section, schema.DecodeItem(itemID, fields))
	default:
		return nil, editor.ErrInvalidTarget
	}

	if err != nil {
		// persist failed: keep the session so the edits are not lost
		return nil, err
	}

	s.close(sessionID)
	return doc, nil
}

func (s *editorService) Delete(ctx context.Context, sessionID string) (*model.PortfolioDocument, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, editor.ErrSessionNotFound
	}
	target := sess.target
	isNew := sess.isNew
	itemID := sess.itemID
	s.mu.Unlock()

	// not profile, not the summary, not an unsaved new item
	if target.Kind != editor.TargetSection || isNew {
		return nil, editor.ErrDeleteNotAllowed
	}

	doc, err := s.portfolios.Remove(ctx, target.Section, itemID)
	if err != nil {
		return nil, err
	}

	s.close(sessionID)
	return doc, nil
}

func (s *editorService) Cancel(_ context.Context, sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return editor.ErrSessionNotFound
	}

	s.close(sessionID)
	return nil
}

func (s *editorService) close(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// ========================================
// SESSION HELPERS
// ========================================

func (sess *session) hasField(field string) bool {
	_, ok := sess.fields[field]
	return ok
}

// fieldKind resolves how raw input is interpreted for this target. Profile
// and summary fields are all plain text.
func (sess *session) fieldKind(field string) model.FieldKind {
	if sess.target.Kind != editor.TargetSection {
		return model.FieldText
	}
	schema, err := model.SchemaFor(sess.target.Section)
	if err != nil {
		return model.FieldText
	}
	return schema.FieldKindOf(field)
}

func (sess *session) view() *editor.SessionView {
	fields := copyFields(sess.fields)

	var busy []string
	for field, b := range sess.busy {
		if b {
			busy = append(busy, field)
		}
	}

	return &editor.SessionView{
		ID:     sess.id,
		Target: sess.target,
		IsNew:  sess.isNew,
		Fields: fields,
		Busy:   busy,
	}
}

func findItem(doc *model.PortfolioDocument, section model.SectionName, id string) (model.Item, error) {
	items, err := doc.Items(section)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ItemID() == id {
			return item, nil
		}
	}
	return nil, model.NewItemNotFound(string(section), id)
}

// copyFields copies the working map; string lists are the only mutable
// values inside.
func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if list, ok := v.([]string); ok {
			out[k] = append([]string(nil), list...)
			continue
		}
		out[k] = v
	}
	return out
}

func fieldStr(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}
