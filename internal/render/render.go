// Package render produces the server-side HTML of a computed view.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/heartmarshall/miluk-lexicon/internal/lexicon"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the page templates. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("page").
		Funcs(template.FuncMap{"text": Text}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page writes the full HTML page of v.
func (r *Renderer) Page(w io.Writer, v *lexicon.View) error {
	if err := r.tmpl.ExecuteTemplate(w, "page.html", NewPage(v)); err != nil {
		return fmt.Errorf("render: page: %w", err)
	}
	return nil
}

// Card writes a single card fragment.
func (r *Renderer) Card(w io.Writer, row lexicon.Row, milukLead bool) error {
	if err := r.tmpl.ExecuteTemplate(w, "card", NewCard(row, milukLead)); err != nil {
		return fmt.Errorf("render: card: %w", err)
	}
	return nil
}
