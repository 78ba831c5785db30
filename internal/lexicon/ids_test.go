package lexicon

import (
	"regexp"
	"testing"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "Fire", want: "fire"},
		{input: "  Fire  ", want: "fire"},
		{input: "to be", want: "to-be"},
		{input: "to \t  be", want: "to-be"},
		{input: "Fire (n.)", want: "fire-n"},
		{input: "well-known", want: "well-known"},
		{input: "Café 2", want: "caf-2"},
		{input: "ʔalá", want: "al"},
		{input: "ʔ", want: "entry"},
		{input: "", want: "entry"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAssignIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		slugs []string
		want  []string
	}{
		{name: "empty", slugs: nil, want: []string{}},
		{name: "unique", slugs: []string{"fire", "water"}, want: []string{"fire", "water"}},
		{name: "duplicates", slugs: []string{"fire", "fire", "water"}, want: []string{"fire", "fire-1", "water"}},
		{name: "three", slugs: []string{"a", "b", "a", "a"}, want: []string{"a", "b", "a-1", "a-2"}},
		{name: "unique base after suffix", slugs: []string{"fire", "fire", "fire-1"}, want: []string{"fire", "fire-1", "fire-1-1"}},
		{name: "suffix after unique base", slugs: []string{"fire-1", "fire", "fire"}, want: []string{"fire-1", "fire", "fire-2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := AssignIDs(tt.slugs)
			if len(got) != len(tt.want) {
				t.Fatalf("AssignIDs(%v) = %v, want %v", tt.slugs, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("AssignIDs(%v) = %v, want %v", tt.slugs, got, tt.want)
				}
			}
		})
	}
}

func TestAssignIDs_DistinctAndURLSafe(t *testing.T) {
	t.Parallel()

	urlSafe := regexp.MustCompile(`^[a-z0-9-]+$`)
	headwords := []string{
		"Fire", "fire", "FIRE", "fire 1", "fire-1", "Fire-1", "ʔ", "", "ʔʔ", "to be", "to  be", "to-be",
	}

	slugs := make([]string, len(headwords))
	for i, h := range headwords {
		slugs[i] = Slug(h)
	}
	ids := AssignIDs(slugs)

	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %q in %v", id, ids)
		}
		seen[id] = true
		if !urlSafe.MatchString(id) {
			t.Errorf("id %q is not URL safe", id)
		}
	}
}

func TestAssignIDs_NoStateBetweenCalls(t *testing.T) {
	t.Parallel()

	slugs := []string{"fire", "fire"}
	first := AssignIDs(slugs)
	second := AssignIDs(slugs)
	if first[0] != second[0] || first[1] != second[1] {
		t.Fatalf("ids changed between calls: %v vs %v", first, second)
	}
	if second[1] != "fire-1" {
		t.Fatalf("second call numbered from a stale counter: %v", second)
	}
}
