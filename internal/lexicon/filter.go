package lexicon

import (
	"strings"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

// Row is one visible entry together with everything derived for it
// during a single render pass.
type Row struct {
	// Index is the entry's position in the dataset.
	Index int
	Entry *domain.LexicalEntry
	// Form is the canonical Miluk form, possibly empty.
	Form    string
	SortKey string
	// Letter is the divider the row is grouped under ("#" for Other).
	Letter string
	ID     string
}

// FilterEntries applies the availability filter and the search query.
// Dataset order is preserved. query must already be trimmed and
// lower-cased; an empty query matches everything.
func FilterEntries(entries []domain.LexicalEntry, filter domain.Filter, query string) []Row {
	rows := make([]Row, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if !filter.Match(e) {
			continue
		}
		row := Row{Index: i, Entry: e, Form: domain.CanonicalForm(e)}
		if query != "" && !matchesQuery(&row, query) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// matchesQuery is case-insensitive but diacritic-sensitive: "ala" does not
// find "alá" even though both sort the same.
func matchesQuery(r *Row, query string) bool {
	if strings.Contains(strings.ToLower(r.Entry.Headword), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Form), query) {
		return true
	}
	variants := strings.ToLower(strings.Join(r.Entry.PronunciationVariants, " "))
	return strings.Contains(variants, query)
}
