package model

// ========================================
// SECTION VIEWS
// ========================================
// Pure presentation shaping of a section's items. Skills are grouped by
// category; every other section passes its items through in insertion
// order. Empty collections carry a literal placeholder instead of an empty
// region.

// EmptySectionPlaceholder is rendered when a collection has no items.
const EmptySectionPlaceholder = "No entries yet."

// DefaultSkillCategory buckets skills with a missing/empty category.
const DefaultSkillCategory = "Other"

// SkillGroup is one category bucket in first-seen order.
type SkillGroup struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// SectionView is what the renderer consumes for one titled block.
type SectionView struct {
	Name        SectionName  `json:"name"`
	Title       string       `json:"title"`
	Fields      []Field      `json:"fields"`
	Description string       `json:"description,omitempty"`
	Items       []Item       `json:"items,omitempty"`
	Groups      []SkillGroup `json:"groups,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// GroupSkills buckets skills by category, preserving first-seen category
// order and within-category insertion order.
func GroupSkills(skills []Skill) []SkillGroup {
	var order []string
	buckets := make(map[string][]Skill)
	for _, s := range skills {
		cat := s.Category
		if cat == "" {
			cat = DefaultSkillCategory
		}
		if _, seen := buckets[cat]; !seen {
			order = append(order, cat)
		}
		buckets[cat] = append(buckets[cat], s)
	}
	groups := make([]SkillGroup, len(order))
	for i, cat := range order {
		groups[i] = SkillGroup{Category: cat, Skills: buckets[cat]}
	}
	return groups
}

// BuildSectionView shapes one section of the document for display.
func (d *PortfolioDocument) BuildSectionView(name SectionName) (*SectionView, error) {
	schema, err := SchemaFor(name)
	if err != nil {
		return nil, err
	}

	view := &SectionView{
		Name:   name,
		Title:  schema.Title,
		Fields: schema.Fields,
	}

	items, err := d.Items(name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		view.Placeholder = EmptySectionPlaceholder
		return view, nil
	}

	if name == SectionSkills {
		// skill cards are grouped, not listed flat
		view.Description = d.SkillsSummary
		view.Groups = GroupSkills(d.Skills)
		return view, nil
	}

	view.Items = items
	return view, nil
}
