package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// GlottalStop is U+0294. It is ignored when sorting.
	GlottalStop = 'ʔ'
	// unreleasedMark is U+031A COMBINING LEFT ANGLE ABOVE.
	unreleasedMark = '\u031A'
)

// NormalizeForDisplay collapses the unreleased glottal stop (U+0294 followed
// by U+031A) into a plain U+0294. Every other rune is kept as is.
//
// A run of marks after the stop is collapsed as a whole, so applying the
// function twice gives the same result as applying it once.
func NormalizeForDisplay(s string) string {
	if !strings.ContainsRune(s, unreleasedMark) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	afterStop := false
	for _, r := range s {
		if r == unreleasedMark && afterStop {
			continue
		}
		afterStop = r == GlottalStop
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeForSort prepares a display string for collation:
//   - strips leading whitespace and zero-width characters
//   - removes every glottal stop
//   - maps æ/Æ to e/E
//
// The result is a sort key only and must never be rendered.
func NormalizeForSort(s string) string {
	s = strings.TrimLeftFunc(s, isInvisibleLead)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case GlottalStop:
			continue
		case 'æ':
			r = 'e'
		case 'Æ':
			r = 'E'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FirstSortLetter returns the upper-cased first rune of the sort key of s,
// or "" when the key is empty.
func FirstSortLetter(s string) string {
	key := NormalizeForSort(s)
	if key == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(key)
	return string(unicode.ToUpper(r))
}

// NormalizeQuery trims and lower-cases a search query. No diacritic folding
// is applied: search stays exact while sorting is normalized.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func isInvisibleLead(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\u200D', '\u2060', '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}
