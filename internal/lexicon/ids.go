package lexicon

import (
	"strconv"
	"strings"
	"unicode"
)

// fallbackSlug is used for headwords with no ASCII letters or digits.
const fallbackSlug = "entry"

// Slug derives the base identifier of a headword: lower-cased, trimmed,
// whitespace runs replaced by a single hyphen, and everything outside
// [a-z0-9-] dropped.
func Slug(headword string) string {
	s := strings.TrimSpace(strings.ToLower(headword))

	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return fallbackSlug
	}
	return b.String()
}

// AssignIDs maps base slugs, in visible order, to pairwise distinct ids.
// The first occurrence of a slug keeps it; later ones get "-1", "-2", ...
// A suffixed id that would collide with an id already handed out skips to
// the next free number.
//
// The result depends only on the input: no state survives between calls.
func AssignIDs(slugs []string) []string {
	ids := make([]string, len(slugs))
	next := make(map[string]int, len(slugs))
	used := make(map[string]struct{}, len(slugs))

	for i, base := range slugs {
		n := next[base]
		id := suffixed(base, n)
		for {
			if _, taken := used[id]; !taken {
				break
			}
			n++
			id = suffixed(base, n)
		}
		next[base] = n + 1
		used[id] = struct{}{}
		ids[i] = id
	}
	return ids
}

func suffixed(base string, n int) string {
	if n == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}

// assignRowIDs fills Row.ID for rows in their current order.
func assignRowIDs(rows []Row) {
	slugs := make([]string, len(rows))
	for i := range rows {
		slugs[i] = Slug(rows[i].Entry.Headword)
	}
	for i, id := range AssignIDs(slugs) {
		rows[i].ID = id
	}
}
