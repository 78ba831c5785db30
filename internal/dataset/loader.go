// Package dataset loads the static wordlist the browser serves. The file is
// read once at process start; nothing here runs per request.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

// FileSource reads the dataset from a JSON file on disk.
type FileSource struct {
	Path string
}

// Load implements the dataset source used by app.Run.
func (s FileSource) Load(_ context.Context) ([]domain.LexicalEntry, error) {
	return LoadFile(s.Path)
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) ([]domain.LexicalEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return entries, nil
}

// Decode parses a JSON array of entries, brings every string to NFC and
// checks that each entry has a headword.
func Decode(r io.Reader) ([]domain.LexicalEntry, error) {
	var entries []domain.LexicalEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	Normalize(entries)

	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Validate reports every entry whose headword is blank.
func Validate(entries []domain.LexicalEntry) error {
	var errs []domain.FieldError
	for i := range entries {
		if strings.TrimSpace(entries[i].Headword) == "" {
			errs = append(errs, domain.FieldError{
				Field:   "entries[" + strconv.Itoa(i) + "].headword",
				Message: "required",
			})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Normalize rewrites every text field of entries to Unicode NFC in place.
// Sources mix precomposed and decomposed accents; sorting and search compare
// code points, so both must agree on one form.
func Normalize(entries []domain.LexicalEntry) {
	for i := range entries {
		e := &entries[i]
		e.Headword = norm.NFC.String(e.Headword)
		e.LinguisticsNotes = norm.NFC.String(e.LinguisticsNotes)
		nfcAll(e.PronunciationVariants)

		if t := e.Transcriptions; t != nil {
			t.InstantPhonetic = norm.NFC.String(t.InstantPhonetic)
			if p := t.Primary; p != nil {
				p.Americanist = norm.NFC.String(p.Americanist)
				p.IPA = norm.NFC.String(p.IPA)
			}
			if s := t.Secondary; s != nil {
				s.Jacobs = norm.NFC.String(s.Jacobs)
				s.AmericanistIPA = norm.NFC.String(s.AmericanistIPA)
			}
		}
	}
}

func nfcAll(ss []string) {
	for i, s := range ss {
		ss[i] = norm.NFC.String(s)
	}
}
