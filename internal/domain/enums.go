package domain

import "strings"

// Mode selects which language leads the list: the sort source, the
// letter grouping and the card layout all follow it.
type Mode string

const (
	ModeEnglish Mode = "english"
	ModeMiluk   Mode = "miluk"
)

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	switch m {
	case ModeEnglish, ModeMiluk:
		return true
	}
	return false
}

// SortSource returns the display string the mode sorts and groups by.
// Unknown modes fall back to the English headword.
func (m Mode) SortSource(e *LexicalEntry) string {
	switch m {
	case ModeMiluk:
		return CanonicalForm(e)
	default:
		return e.Headword
	}
}

// GroupsOther reports whether non-Latin initials are regrouped under "#".
func (m Mode) GroupsOther() bool {
	return m == ModeMiluk
}

// ParseMode converts user input into a Mode. An empty string yields def.
func ParseMode(s string, def Mode) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def, nil
	}
	m := Mode(s)
	if !m.IsValid() {
		return "", NewValidationError("mode", "must be one of: english, miluk")
	}
	return m, nil
}

// Filter restricts the list by which speakers recorded an entry.
type Filter string

const (
	FilterAll           Filter = "all"
	FilterWithSecondary Filter = "with-secondary"
	FilterPrimaryOnly   Filter = "primary-only"
)

// Older filter names still accepted from bookmarked URLs.
var filterAliases = map[string]Filter{
	"with-amp": FilterWithSecondary,
	"lhm-only": FilterPrimaryOnly,
}

func (f Filter) String() string { return string(f) }

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterWithSecondary, FilterPrimaryOnly:
		return true
	}
	return false
}

// Match reports whether e passes the availability filter.
func (f Filter) Match(e *LexicalEntry) bool {
	switch f {
	case FilterWithSecondary:
		return HasSecondary(e)
	case FilterPrimaryOnly:
		return HasPrimary(e) && !HasSecondary(e)
	default:
		return true
	}
}

// ParseFilter converts user input into a Filter. An empty string yields def.
func ParseFilter(s string, def Filter) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def, nil
	}
	if f, ok := filterAliases[s]; ok {
		return f, nil
	}
	f := Filter(s)
	if !f.IsValid() {
		return "", NewValidationError("filter", "must be one of: all, with-secondary, primary-only")
	}
	return f, nil
}
