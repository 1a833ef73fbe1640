// Package views renders the dashboard pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"gest35bi/models"
)

//go:embed templates
var templateFS embed.FS

//go:embed public
var publicFS embed.FS

const (
	PageIndex     = "index"
	PageCreate    = "dashboard/cadastro_indicador"
	PageDashboard = "dashboard/acompanhar"
)

var pages = []string{PageIndex, PageCreate, PageDashboard}

var funcs = template.FuncMap{
	"months":     func() []string { return models.Months },
	"monthLabel": models.MonthLabel,
	"monthValue": func(indicator models.Indicator, month string) string {
		v, _ := indicator.MonthlyValues.Get(month)
		return v
	},
}

type Renderer struct {
	templates map[string]*template.Template
}

// New parses every page together with the shared layout.
func New() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &Renderer{templates: templates}, nil
}

// Render executes page into w. Output is buffered so a failing template
// never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

// Public returns the static assets rooted at the public directory.
func Public() fs.FS {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
