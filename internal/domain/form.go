package domain

import (
	"regexp"
	"strings"
)

// bracketRe matches the first non-empty [...] group of an Americanist field.
var bracketRe = regexp.MustCompile(`\[([^\]]+)\]`)

// CanonicalForm derives the Miluk form shown next to the headword and used
// as the sort source in Miluk mode.
//
// Precedence is fixed:
//  1. primary speaker Americanist: first bracketed form, else the text
//     before the first comma;
//  2. secondary speaker Jacobs: first line, cut at the first "(";
//  3. "".
func CanonicalForm(e *LexicalEntry) string {
	if p := e.Primary(); p != nil && p.Americanist != "" {
		if m := bracketRe.FindStringSubmatch(p.Americanist); m != nil {
			return m[1]
		}
		head, _, _ := strings.Cut(p.Americanist, ",")
		return strings.TrimSpace(head)
	}

	if s := e.Secondary(); s != nil && s.Jacobs != "" {
		line, _, _ := strings.Cut(s.Jacobs, "\n")
		head, _, _ := strings.Cut(line, "(")
		return strings.TrimSpace(head)
	}

	return ""
}

// HasPrimary reports whether the primary speaker slot is present.
func HasPrimary(e *LexicalEntry) bool {
	return e.Primary() != nil
}

// HasSecondary reports whether the secondary speaker slot is present.
func HasSecondary(e *LexicalEntry) bool {
	return e.Secondary() != nil
}

// IsSecondaryOnly reports whether the entry is known only from the
// secondary speaker's texts.
func IsSecondaryOnly(e *LexicalEntry) bool {
	return !HasPrimary(e) && HasSecondary(e)
}
