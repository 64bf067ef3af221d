package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTechnologies(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "trims and drops empty segments",
			raw:  "React,  Tailwind ,,Node.js",
			want: []string{"React", "Tailwind", "Node.js"},
		},
		{
			name: "single entry",
			raw:  "Go",
			want: []string{"Go"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "only separators",
			raw:  " , ,, ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTechnologies(tt.raw))
		})
	}
}

func TestSchemaFor(t *testing.T) {
	t.Run("every section has a schema", func(t *testing.T) {
		for _, name := range SectionOrder {
			schema, err := SchemaFor(name)
			require.NoError(t, err)
			assert.Equal(t, name, schema.Name)
			assert.NotEmpty(t, schema.Title)
			assert.NotEmpty(t, schema.Fields)
		}
	})

	t.Run("unknown section is rejected", func(t *testing.T) {
		_, err := SchemaFor("awards")
		require.Error(t, err)

		status, _, code := GetErrorResponse(err)
		assert.Equal(t, 404, status)
		assert.Equal(t, "SECTION_NOT_FOUND", code)
	})
}

func TestSchemaNewItem(t *testing.T) {
	t.Run("project starts with empty tech list", func(t *testing.T) {
		schema, err := SchemaFor(SectionProjects)
		require.NoError(t, err)

		item := schema.NewItem("p-new")
		project, ok := item.(Project)
		require.True(t, ok)

		assert.Equal(t, "p-new", project.ID)
		assert.Empty(t, project.Title)
		assert.Equal(t, []string{}, project.Technologies)
	})

	t.Run("new item carries the given id for every section", func(t *testing.T) {
		for _, name := range SectionOrder {
			schema, err := SchemaFor(name)
			require.NoError(t, err)
			assert.Equal(t, "fresh", schema.NewItem("fresh").ItemID())
		}
	})
}

func TestSchemaCodec(t *testing.T) {
	schema, err := SchemaFor(SectionExperience)
	require.NoError(t, err)

	t.Run("decode builds the typed item", func(t *testing.T) {
		item := schema.DecodeItem("e1", map[string]any{
			"title":        "Resident Physician",
			"organization": "City Hospital",
			"duration":     "2020 - 2023",
			"description":  "Inpatient care.",
		})

		exp, ok := item.(Experience)
		require.True(t, ok)
		assert.Equal(t, "e1", exp.ID)
		assert.Equal(t, "Resident Physician", exp.Title)
		assert.Equal(t, "City Hospital", exp.Organization)
	})

	t.Run("missing keys decode to empty values", func(t *testing.T) {
		item := schema.DecodeItem("e2", map[string]any{"title": "Intern"})
		exp := item.(Experience)
		assert.Equal(t, "Intern", exp.Title)
		assert.Empty(t, exp.Description)
	})

	t.Run("encode then decode preserves the item", func(t *testing.T) {
		original := Experience{
			ID:           "e3",
			Title:        "Attending",
			Organization: "Clinic",
			Duration:     "2023 - Present",
			Description:  "Outpatient care.",
		}
		decoded := schema.DecodeItem(original.ID, schema.EncodeItem(original))
		assert.Equal(t, original, decoded)
	})
}

func TestSchemaFieldLookup(t *testing.T) {
	schema, err := SchemaFor(SectionProjects)
	require.NoError(t, err)

	assert.True(t, schema.HasField("technologies"))
	assert.False(t, schema.HasField("imageUrl"))

	assert.Equal(t, FieldTechList, schema.FieldKindOf("technologies"))
	assert.Equal(t, FieldLongText, schema.FieldKindOf("description"))
	// names outside the schema default to plain text
	assert.Equal(t, FieldText, schema.FieldKindOf("nope"))
}
