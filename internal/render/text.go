package render

import (
	"html/template"
	"strings"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

// Text escapes s for HTML after display normalization and turns newlines
// into <br>. Every dataset string reaches the page through it.
func Text(s string) template.HTML {
	if s == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(domain.NormalizeForDisplay(s))
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// Paragraphs splits notes on blank lines and drops empty paragraphs.
func Paragraphs(notes string) []string {
	var out []string
	for _, p := range strings.Split(notes, "\n\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
