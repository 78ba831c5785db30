package lexicon

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

// OtherLetter is the divider for Miluk forms that do not start with a
// basic Latin letter.
const OtherLetter = "#"

// Collator orders rows for one mode. It wraps a collate.Collator, which is
// not safe for concurrent use, so a Collator must not be shared between
// goroutines.
type Collator struct {
	mode domain.Mode
	coll *collate.Collator
}

// NewCollator returns a Collator using English collation rules.
func NewCollator(mode domain.Mode) *Collator {
	return &Collator{
		mode: mode,
		coll: collate.New(language.English),
	}
}

// Compare compares two sort keys.
func (c *Collator) Compare(a, b string) int {
	return c.coll.CompareString(a, b)
}

// Sort fills SortKey and Letter of every row and sorts rows in place.
// The sort is stable: rows with equal keys keep their filtered order.
func (c *Collator) Sort(rows []Row) {
	for i := range rows {
		src := c.mode.SortSource(rows[i].Entry)
		rows[i].SortKey = domain.NormalizeForSort(src)
		rows[i].Letter = GroupLetter(c.mode, src)
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		return c.coll.CompareString(a.SortKey, b.SortKey)
	})
}

// GroupLetter returns the divider letter for a sort source string.
// In Miluk mode anything that is not A-Z falls into OtherLetter.
func GroupLetter(mode domain.Mode, source string) string {
	letter := domain.FirstSortLetter(source)
	if mode.GroupsOther() && !isBasicLatin(letter) {
		return OtherLetter
	}
	return letter
}

func isBasicLatin(letter string) bool {
	return len(letter) == 1 && letter[0] >= 'A' && letter[0] <= 'Z'
}
