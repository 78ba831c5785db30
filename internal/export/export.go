// Package export writes a computed view to a downloadable file.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
	"github.com/heartmarshall/miluk-lexicon/internal/lexicon"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

func (f Format) String() string { return string(f) }

func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatXLSX:
		return true
	}
	return false
}

// Extension returns the file extension of the format, without the dot.
func (f Format) Extension() string { return string(f) }

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/json"
}

// ParseFormat converts user input into a Format. An empty string yields JSON.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatJSON, nil
	}
	f := Format(s)
	if !f.IsValid() {
		return "", domain.NewValidationError("format", "must be one of: json, xlsx")
	}
	return f, nil
}

// Record is one exported row. Text fields carry display-normalized values.
type Record struct {
	ID             string   `json:"id"`
	Letter         string   `json:"letter"`
	Headword       string   `json:"headword"`
	Form           string   `json:"form,omitempty"`
	Variants       []string `json:"pronunciation_variants,omitempty"`
	Americanist    string   `json:"americanist,omitempty"`
	IPA            string   `json:"ipa,omitempty"`
	Jacobs         string   `json:"jacobs,omitempty"`
	AmericanistIPA string   `json:"americanist_ipa,omitempty"`
	HowToSay       string   `json:"instant_phonetic,omitempty"`
	Notes          string   `json:"linguistics_notes,omitempty"`
	Audio          []string `json:"audio,omitempty"`
	SecondaryOnly  bool     `json:"secondary_only"`
}

// Records flattens the visible rows of v in display order.
func Records(v *lexicon.View) []Record {
	out := make([]Record, 0, len(v.Rows))
	for _, row := range v.Rows {
		out = append(out, RecordOf(row))
	}
	return out
}

// RecordOf flattens a single row.
func RecordOf(row lexicon.Row) Record {
	e := row.Entry
	rec := Record{
		ID:            row.ID,
		Letter:        row.Letter,
		Headword:      display(e.Headword),
		Form:          display(row.Form),
		HowToSay:      display(e.InstantPhonetic()),
		Notes:         display(e.LinguisticsNotes),
		Audio:         e.AudioSources,
		SecondaryOnly: domain.IsSecondaryOnly(e),
	}
	for _, pv := range e.PronunciationVariants {
		rec.Variants = append(rec.Variants, display(pv))
	}
	if p := e.Primary(); p != nil {
		rec.Americanist = display(p.Americanist)
		rec.IPA = display(p.IPA)
	}
	if s := e.Secondary(); s != nil {
		rec.Jacobs = display(s.Jacobs)
		rec.AmericanistIPA = display(s.AmericanistIPA)
	}
	return rec
}

// Write encodes v in the given format.
func Write(w io.Writer, f Format, v *lexicon.View) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, v)
	case FormatXLSX:
		return WriteXLSX(w, v)
	default:
		return fmt.Errorf("export: unknown format %q", f)
	}
}

func display(s string) string {
	return domain.NormalizeForDisplay(s)
}
