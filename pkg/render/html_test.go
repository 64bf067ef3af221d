package render

import (
	"testing"

	"portfolio-backend/internal/domains/portfolio/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	renderer := NewHTMLRenderer()

	t.Run("seed document renders every section", func(t *testing.T) {
		html, err := renderer.Render(model.SeedDocument())
		require.NoError(t, err)

		assert.Contains(t, html, "Dr. Imene Ahmed Omar, MD")
		assert.Contains(t, html, "Professional Skills &amp; Expertise")
		assert.Contains(t, html, "Professional Experience")
		assert.Contains(t, html, "Key Projects")
		assert.Contains(t, html, "Research &amp; Publications")
		assert.NotContains(t, html, model.EmptySectionPlaceholder)
	})

	t.Run("empty section shows the placeholder", func(t *testing.T) {
		doc := model.SeedDocument()
		doc.Research = nil

		html, err := renderer.Render(doc)
		require.NoError(t, err)
		assert.Contains(t, html, model.EmptySectionPlaceholder)
	})

	t.Run("inline image data URLs survive", func(t *testing.T) {
		doc := model.SeedDocument()
		doc.Certifications[0].ImageURL = "data:image/png;base64,aGVsbG8="

		html, err := renderer.Render(doc)
		require.NoError(t, err)
		assert.Contains(t, html, `src="data:image/png;base64,aGVsbG8="`)
		assert.NotContains(t, html, "ZgotmplZ")
	})

	t.Run("field values are escaped", func(t *testing.T) {
		doc := model.SeedDocument()
		doc.Profile.Name = `<script>alert("x")</script>`

		html, err := renderer.Render(doc)
		require.NoError(t, err)
		assert.NotContains(t, html, `<script>alert`)
	})
}
