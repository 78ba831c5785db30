package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/heartmarshall/miluk-lexicon/internal/lexicon"
)

// Document is the JSON export envelope.
type Document struct {
	Mode    string   `json:"mode"`
	Filter  string   `json:"filter"`
	Query   string   `json:"query,omitempty"`
	Visible int      `json:"visible"`
	Total   int      `json:"total"`
	Entries []Record `json:"entries"`
}

// WriteJSON writes v as an indented Document.
func WriteJSON(w io.Writer, v *lexicon.View) error {
	doc := Document{
		Mode:    v.State.Mode.String(),
		Filter:  v.State.Filter.String(),
		Query:   v.State.Query,
		Visible: len(v.Rows),
		Total:   v.Total,
		Entries: Records(v),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}
