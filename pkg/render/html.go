package render

import (
	"bytes"
	"fmt"
	"html/template"

	"portfolio-backend/internal/domains/portfolio/model"
)

// HTMLRenderer turns the portfolio document into the printable page used by
// the export endpoints. The layout follows the on-screen
// order: header, skills (grouped), then the remaining sections.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() *HTMLRenderer {
	// the item sub-template dispatches on the concrete item type; a nil
	// return skips the block
	funcs := template.FuncMap{
		"asExperience": func(i model.Item) *model.Experience {
			if v, ok := i.(model.Experience); ok {
				return &v
			}
			return nil
		},
		"asCertification": func(i model.Item) *model.Certification {
			if v, ok := i.(model.Certification); ok {
				return &v
			}
			return nil
		},
		"asCourse": func(i model.Item) *model.Course {
			if v, ok := i.(model.Course); ok {
				return &v
			}
			return nil
		},
		"asProject": func(i model.Item) *model.Project {
			if v, ok := i.(model.Project); ok {
				return &v
			}
			return nil
		},
		"asResearch": func(i model.Item) *model.Research {
			if v, ok := i.(model.Research); ok {
				return &v
			}
			return nil
		},
		// image values are owner-provided data/remote URLs; without this
		// the template engine rewrites data: URLs to #ZgotmplZ
		"imgsrc": func(s string) template.URL {
			return template.URL(s)
		},
	}
	return &HTMLRenderer{tmpl: template.Must(template.New("portfolio").Funcs(funcs).Parse(portfolioTemplate))}
}

type pageData struct {
	Profile  model.Profile
	Sections []*model.SectionView
}

// Render produces the standalone HTML document.
func (r *HTMLRenderer) Render(doc *model.PortfolioDocument) (string, error) {
	data := pageData{Profile: doc.Profile}
	for _, name := range model.SectionOrder {
		view, err := doc.BuildSectionView(name)
		if err != nil {
			return "", fmt.Errorf("failed to build section %q: %w", name, err)
		}
		data.Sections = append(data.Sections, view)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render portfolio page: %w", err)
	}
	return buf.String(), nil
}

const portfolioTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Profile.Name}}</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; color: #1e293b; max-width: 52rem; margin: 0 auto; padding: 2.5rem; }
  header { border-bottom: 2px solid #e2e8f0; padding-bottom: 1.25rem; margin-bottom: 2rem; }
  h1 { margin: 0; font-size: 1.9rem; }
  .role { color: #475569; font-size: 1.1rem; margin: .25rem 0 .75rem; }
  .contact { font-size: .85rem; color: #64748b; }
  section { margin-bottom: 2rem; page-break-inside: avoid; }
  h2 { font-size: 1rem; text-transform: uppercase; letter-spacing: .15em; border-bottom: 1px solid #e2e8f0; padding-bottom: .35rem; }
  h3 { margin: .75rem 0 .1rem; font-size: 1rem; }
  .meta { color: #64748b; font-size: .85rem; }
  .placeholder { color: #94a3b8; font-style: italic; }
  .category { font-weight: bold; margin-top: .6rem; }
  ul.skills { margin: .2rem 0; padding-left: 1.2rem; }
  .techs { font-size: .85rem; color: #475569; }
  img.badge { max-height: 56px; vertical-align: middle; margin-right: .5rem; }
  @media print { body { padding: 0; } }
</style>
</head>
<body>
<header>
  <h1>{{.Profile.Name}}</h1>
  <div class="role">{{.Profile.Title}}</div>
  <p>{{.Profile.Summary}}</p>
  <div class="contact">
    {{.Profile.Email}} &middot; {{.Profile.LinkedIn}} &middot; {{.Profile.Website}}{{if .Profile.Phone}} &middot; {{.Profile.Phone}}{{end}}
  </div>
</header>
{{range .Sections}}
<section>
  <h2>{{.Title}}</h2>
  {{if .Placeholder}}<p class="placeholder">{{.Placeholder}}</p>{{end}}
  {{if .Description}}<p>{{.Description}}</p>{{end}}
  {{range .Groups}}
    <div class="category">{{.Category}}</div>
    <ul class="skills">{{range .Skills}}<li>{{.Name}}</li>{{end}}</ul>
  {{end}}
  {{range .Items}}{{template "item" .}}{{end}}
</section>
{{end}}
</body>
</html>
{{define "item"}}{{with asExperience .}}
  <h3>{{.Title}}</h3>
  <div class="meta">{{.Organization}} &middot; {{.Duration}}</div>
  <p>{{.Description}}</p>
{{end}}{{with asCertification .}}
  <h3>{{if .ImageURL}}<img class="badge" src="{{imgsrc .ImageURL}}" alt="">{{end}}{{.Title}}</h3>
  <div class="meta">{{.Issuer}} &middot; {{.Year}}</div>
{{end}}{{with asCourse .}}
  <h3>{{if .ImageURL}}<img class="badge" src="{{imgsrc .ImageURL}}" alt="">{{end}}{{.Title}}</h3>
  <div class="meta">{{.Institution}} &middot; {{.Year}}</div>
{{end}}{{with asProject .}}
  <h3>{{.Title}}</h3>
  <p>{{.Description}}</p>
  <div class="techs">{{range $i, $t := .Technologies}}{{if $i}}, {{end}}{{$t}}{{end}}</div>
  {{if .Link}}<div class="meta">{{.Link}}</div>{{end}}
{{end}}{{with asResearch .}}
  <h3>{{.Title}}</h3>
  <div class="meta">{{.Field}} &middot; {{.Year}}{{if .Link}} &middot; {{.Link}}{{end}}</div>
{{end}}{{end}}`
