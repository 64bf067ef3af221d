package model

// ========================================
// PORTFOLIO DOCUMENT MODEL
// ========================================
// The whole portfolio is one aggregate that is loaded once, mutated
// copy-on-write, and written back to the blob store as a single JSON value.
// JSON field names match the frontend's localStorage format, so a blob
// exported from the browser loads unchanged.

// Profile is the singleton header/contact block. It is never deleted, only
// replaced wholesale.
type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	Phone    string `json:"phone,omitempty"`
}

// Skill - category is only used for display grouping, not a separate entity
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type Experience struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Duration     string `json:"duration"`
	Description  string `json:"description"`
}

// Certification - ImageUrl is an opaque string: either a remote URL or an
// inline data URL produced by the editor's image attach.
type Certification struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Issuer   string `json:"issuer"`
	Year     string `json:"year"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
}

type Research struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Field string `json:"field"`
	Year  string `json:"year"`
	Link  string `json:"link,omitempty"`
}

// PortfolioDocument is the sole persisted aggregate. Insertion order of each
// collection is the display order; there is no explicit sort.
type PortfolioDocument struct {
	Profile        Profile         `json:"profile"`
	SkillsSummary  string          `json:"skillsSummary"`
	Skills         []Skill         `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Certifications []Certification `json:"certifications"`
	Courses        []Course        `json:"courses"`
	Projects       []Project       `json:"projects"`
	Research       []Research      `json:"research"`
}

// ========================================
// ITEM INTERFACE
// ========================================
// Item lets the store and the editor treat the six collections uniformly.
// IDs are unique within a collection; cross-collection collisions are
// harmless.

type Item interface {
	ItemID() string
}

func (s Skill) ItemID() string         { return s.ID }
func (e Experience) ItemID() string    { return e.ID }
func (c Certification) ItemID() string { return c.ID }
func (c Course) ItemID() string        { return c.ID }
func (p Project) ItemID() string       { return p.ID }
func (r Research) ItemID() string      { return r.ID }

// Items returns the named collection as a generic slice.
// Returns ErrUnknownSection for a name outside the six sections.
func (d *PortfolioDocument) Items(section SectionName) ([]Item, error) {
	switch section {
	case SectionSkills:
		return toItems(d.Skills), nil
	case SectionExperience:
		return toItems(d.Experience), nil
	case SectionCertifications:
		return toItems(d.Certifications), nil
	case SectionCourses:
		return toItems(d.Courses), nil
	case SectionProjects:
		return toItems(d.Projects), nil
	case SectionResearch:
		return toItems(d.Research), nil
	default:
		return nil, NewUnknownSection(string(section))
	}
}

// WithItems returns a copy of the document with the named collection
// replaced. The receiver is never mutated (copy-on-write at the collection
// level). Items of the wrong concrete type for the section are an error.
func (d *PortfolioDocument) WithItems(section SectionName, items []Item) (*PortfolioDocument, error) {
	next := d.Clone()
	switch section {
	case SectionSkills:
		typed, err := fromItems[Skill](section, items)
		if err != nil {
			return nil, err
		}
		next.Skills = typed
	case SectionExperience:
		typed, err := fromItems[Experience](section, items)
		if err != nil {
			return nil, err
		}
		next.Experience = typed
	case SectionCertifications:
		typed, err := fromItems[Certification](section, items)
		if err != nil {
			return nil, err
		}
		next.Certifications = typed
	case SectionCourses:
		typed, err := fromItems[Course](section, items)
		if err != nil {
			return nil, err
		}
		next.Courses = typed
	case SectionProjects:
		typed, err := fromItems[Project](section, items)
		if err != nil {
			return nil, err
		}
		next.Projects = typed
	case SectionResearch:
		typed, err := fromItems[Research](section, items)
		if err != nil {
			return nil, err
		}
		next.Research = typed
	default:
		return nil, NewUnknownSection(string(section))
	}
	return next, nil
}

// Clone returns a deep copy. Slices are reallocated so callers can mutate
// the copy without touching the original; Technologies is the only nested
// slice.
func (d *PortfolioDocument) Clone() *PortfolioDocument {
	next := *d
	next.Skills = append([]Skill(nil), d.Skills...)
	next.Experience = append([]Experience(nil), d.Experience...)
	next.Certifications = append([]Certification(nil), d.Certifications...)
	next.Courses = append([]Course(nil), d.Courses...)
	next.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		next.Projects[i] = p
	}
	next.Research = append([]Research(nil), d.Research...)
	return &next
}

func toItems[T Item](typed []T) []Item {
	items := make([]Item, len(typed))
	for i, v := range typed {
		items[i] = v
	}
	return items
}

func fromItems[T Item](section SectionName, items []Item) ([]T, error) {
	typed := make([]T, len(items))
	for i, item := range items {
		v, ok := item.(T)
		if !ok {
			return nil, NewItemTypeMismatch(string(section))
		}
		typed[i] = v
	}
	return typed, nil
}
