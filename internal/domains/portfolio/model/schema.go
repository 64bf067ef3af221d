package model

import "strings"

// ========================================
// SECTION SCHEMA REGISTRY
// ========================================
// Fixed, total mapping from section name to its field schema. Consulted by
// the "new item" constructor, the edit workflow, and the views - there is no
// dynamic schema discovery. Adding a section means adding exactly one entry
// here plus its struct in model.go.

// SectionName identifies one of the six portfolio collections.
type SectionName string

const (
	SectionSkills         SectionName = "skills"
	SectionExperience     SectionName = "experience"
	SectionCertifications SectionName = "certifications"
	SectionCourses        SectionName = "courses"
	SectionProjects       SectionName = "projects"
	SectionResearch       SectionName = "research"
)

// FieldKind decides how the edit workflow treats a field's raw input.
type FieldKind string

const (
	// FieldText - single line free text
	FieldText FieldKind = "text"
	// FieldLongText - prose, eligible for AI refinement
	FieldLongText FieldKind = "longtext"
	// FieldImage - opaque image string (remote URL or inline data URL)
	FieldImage FieldKind = "image"
	// FieldTechList - comma-separated input stored as a string list
	FieldTechList FieldKind = "techlist"
	// FieldLink - free text, rendered as a hyperlink
	FieldLink FieldKind = "link"
)

// Field describes one editable field of a section's items.
type Field struct {
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Kind  FieldKind `json:"kind"`
}

// SectionSchema is the descriptor for one collection: display title,
// ordered field list and the typed item codec.
type SectionSchema struct {
	Name   SectionName
	Title  string
	Fields []Field

	// newItem constructs an empty item with the given fresh id.
	newItem func(id string) Item
	// decode builds the typed item from the editor's field map. Missing
	// keys decode to empty values - empty fields are accepted.
	decode func(id string, fields map[string]any) Item
	// encode flattens the typed item into the editor's field map.
	encode func(item Item) map[string]any
}

var sectionSchemas = map[SectionName]SectionSchema{
	SectionSkills: {
		Name:  SectionSkills,
		Title: "Professional Skills & Expertise",
		Fields: []Field{
			{Name: "name", Label: "Skill Name", Kind: FieldText},
			{Name: "category", Label: "Category", Kind: FieldText},
		},
		newItem: func(id string) Item { return Skill{ID: id} },
		decode: func(id string, f map[string]any) Item {
			return Skill{ID: id, Name: str(f, "name"), Category: str(f, "category")}
		},
		encode: func(item Item) map[string]any {
			s := item.(Skill)
			return map[string]any{"name": s.Name, "category": s.Category}
		},
	},
	SectionExperience: {
		Name:  SectionExperience,
		Title: "Professional Experience",
		Fields: []Field{
			{Name: "title", Label: "Job Title", Kind: FieldText},
			{Name: "organization", Label: "Organization", Kind: FieldText},
			{Name: "duration", Label: "Duration", Kind: FieldText},
			{Name: "description", Label: "Description", Kind: FieldLongText},
		},
		newItem: func(id string) Item { return Experience{ID: id} },
		decode: func(id string, f map[string]any) Item {
			return Experience{
				ID:           id,
				Title:        str(f, "title"),
				Organization: str(f, "organization"),
				Duration:     str(f, "duration"),
				Description:  str(f, "description"),
			}
		},
		encode: func(item Item) map[string]any {
			e := item.(Experience)
			return map[string]any{
				"title":        e.Title,
				"organization": e.Organization,
				"duration":     e.Duration,
				"description":  e.Description,
			}
		},
	},
	SectionCertifications: {
		Name:  SectionCertifications,
		Title: "Certifications",
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText},
			{Name: "issuer", Label: "Issuer", Kind: FieldText},
			{Name: "year", Label: "Year", Kind: FieldText},
			{Name: "imageUrl", Label: "Image", Kind: FieldImage},
		},
		newItem: func(id string) Item { return Certification{ID: id} },
		decode: func(id string, f map[string]any) Item {
			return Certification{
				ID:       id,
				Title:    str(f, "title"),
				Issuer:   str(f, "issuer"),
				Year:     str(f, "year"),
				ImageURL: str(f, "imageUrl"),
			}
		},
		encode: func(item Item) map[string]any {
			c := item.(Certification)
			return map[string]any{
				"title":    c.Title,
				"issuer":   c.Issuer,
				"year":     c.Year,
				"imageUrl": c.ImageURL,
			}
		},
	},
	SectionCourses: {
		Name:  SectionCourses,
		Title: "Completed Courses & Trainings",
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText},
			{Name: "institution", Label: "Institution", Kind: FieldText},
			{Name: "year", Label: "Year", Kind: FieldText},
			{Name: "imageUrl", Label: "Image", Kind: FieldImage},
		},
		newItem: func(id string) Item { return Course{ID: id} },
		decode: func(id string, f map[string]any) Item {
			return Course{
				ID:          id,
				Title:       str(f, "title"),
				Institution: str(f, "institution"),
				Year:        str(f, "year"),
				ImageURL:    str(f, "imageUrl"),
			}
		},
		encode: func(item Item) map[string]any {
			c := item.(Course)
			return map[string]any{
				"title":       c.Title,
				"institution": c.Institution,
				"year":        c.Year,
				"imageUrl":    c.ImageURL,
			}
		},
	},
	SectionProjects: {
		Name:  SectionProjects,
		Title: "Key Projects",
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText},
			{Name: "description", Label: "Description", Kind: FieldLongText},
			{Name: "technologies", Label: "Technologies (comma separated)", Kind: FieldTechList},
			{Name: "link", Label: "Link", Kind: FieldLink},
		},
		newItem: func(id string) Item { return Project{ID: id, Technologies: []string{}} },
		decode: func(id string, f map[string]any) Item {
			return Project{
				ID:           id,
				Title:        str(f, "title"),
				Description:  str(f, "description"),
				Technologies: strList(f, "technologies"),
				Link:         str(f, "link"),
			}
		},
		encode: func(item Item) map[string]any {
			p := item.(Project)
			return map[string]any{
				"title":        p.Title,
				"description":  p.Description,
				"technologies": append([]string(nil), p.Technologies...),
				"link":         p.Link,
			}
		},
	},
	SectionResearch: {
		Name:  SectionResearch,
		Title: "Research & Publications",
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText},
			{Name: "field", Label: "Field of Study", Kind: FieldText},
			{Name: "year", Label: "Year", Kind: FieldText},
			{Name: "link", Label: "Link", Kind: FieldLink},
		},
		newItem: func(id string) Item { return Research{ID: id} },
		decode: func(id string, f map[string]any) Item {
			return Research{
				ID:    id,
				Title: str(f, "title"),
				Field: str(f, "field"),
				Year:  str(f, "year"),
				Link:  str(f, "link"),
			}
		},
		encode: func(item Item) map[string]any {
			r := item.(Research)
			return map[string]any{
				"title": r.Title,
				"field": r.Field,
				"year":  r.Year,
				"link":  r.Link,
			}
		},
	},
}

// SectionOrder is the display order of sections on the rendered page.
var SectionOrder = []SectionName{
	SectionSkills,
	SectionExperience,
	SectionCertifications,
	SectionProjects,
	SectionCourses,
	SectionResearch,
}

// SchemaFor returns the schema descriptor for a section name.
func SchemaFor(name SectionName) (SectionSchema, error) {
	schema, ok := sectionSchemas[name]
	if !ok {
		return SectionSchema{}, NewUnknownSection(string(name))
	}
	return schema, nil
}

// NewItem constructs an add-mode item: fresh id, every schema field at its
// empty/default value.
func (s SectionSchema) NewItem(id string) Item {
	return s.newItem(id)
}

// DecodeItem builds the typed item for this section from an editor field
// map. No validation: empty strings are accepted as-is.
func (s SectionSchema) DecodeItem(id string, fields map[string]any) Item {
	return s.decode(id, fields)
}

// EncodeItem flattens a typed item into an editor field map.
func (s SectionSchema) EncodeItem(item Item) map[string]any {
	return s.encode(item)
}

// HasField reports whether the schema carries a field with the given name.
func (s SectionSchema) HasField(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// FieldKindOf returns the kind of the named field, defaulting to plain text
// for names outside the schema (profile/summary fields share the editor).
func (s SectionSchema) FieldKindOf(name string) FieldKind {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Kind
		}
	}
	return FieldText
}

// ParseTechnologies splits a raw comma-separated input into the stored
// technology list: segments trimmed, empty segments dropped.
func ParseTechnologies(raw string) []string {
	parts := strings.Split(raw, ",")
	techs := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			techs = append(techs, t)
		}
	}
	return techs
}

func str(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func strList(fields map[string]any, key string) []string {
	switch v := fields[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case string:
		return ParseTechnologies(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
