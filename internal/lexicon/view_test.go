package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

func TestComputeView_DuplicateHeadwords(t *testing.T) {
	t.Parallel()

	entries := []domain.LexicalEntry{word("Fire"), word("Fire"), word("Water")}
	v := ComputeView(entries, domain.DefaultRenderState())

	assert.Equal(t, []string{"Fire", "Fire", "Water"}, headwords(v.Rows))
	assert.Equal(t, []string{"fire", "fire-1", "water"}, rowIDs(v.Rows))
	assert.Equal(t, map[int]string{0: "fire", 1: "fire-1", 2: "water"}, v.IDs)
	assert.Equal(t, []string{"F", "W"}, v.Letters)
	assert.Equal(t, 3, v.Total)
	assert.False(t, v.Empty())
}

func TestComputeView_Search(t *testing.T) {
	t.Parallel()

	entries := []domain.LexicalEntry{word("Water"), word("Fire")}
	v := ComputeView(entries, domain.NewRenderState(domain.ModeEnglish, domain.FilterAll, "wat"))

	assert.Equal(t, []string{"Water"}, headwords(v.Rows))
	assert.Equal(t, map[int]string{0: "water"}, v.IDs)
	assert.Equal(t, 2, v.Total)
}

func TestComputeView_MilukOtherBucket(t *testing.T) {
	t.Parallel()

	// ɂ (U+0242) is a letter, not the sort-insignificant ʔ (U+0294).
	entries := []domain.LexicalEntry{lolly("a", "[ɂalá]"), lolly("b", "[Boo]")}
	v := ComputeView(entries, domain.DefaultRenderState().WithMode(domain.ModeMiluk))

	require.Len(t, v.Groups, 2)
	letters := map[string]string{}
	for _, r := range v.Rows {
		letters[r.Form] = r.Letter
	}
	assert.Equal(t, "#", letters["ɂalá"])
	assert.Equal(t, "B", letters["Boo"])
	assert.Equal(t, []string{"B"}, v.Letters)

	var labels []string
	for _, g := range v.Groups {
		labels = append(labels, g.Label)
	}
	assert.ElementsMatch(t, []string{"Other", "B"}, labels)
}

func TestComputeView_GroupsFollowSortedRuns(t *testing.T) {
	t.Parallel()

	entries := []domain.LexicalEntry{word("bee"), word("apple"), word("axe"), word("cat"), word("bat")}
	v := ComputeView(entries, domain.DefaultRenderState())

	require.Len(t, v.Groups, 3)
	assert.Equal(t, "A", v.Groups[0].Letter)
	assert.Equal(t, []string{"apple", "axe"}, headwords(v.Groups[0].Rows))
	assert.Equal(t, []string{"bat", "bee"}, headwords(v.Groups[1].Rows))
	assert.Equal(t, "C", v.Groups[2].Label)
}

func TestComputeView_FilterProperties(t *testing.T) {
	t.Parallel()

	entries := []domain.LexicalEntry{
		word("none"), lolly("lolly", "[a]"), annie("annie", "b"), both("both", "[c]", "d"), lolly("lolly", "[e]"),
	}

	primaryOnly := ComputeView(entries, domain.DefaultRenderState().WithFilter(domain.FilterPrimaryOnly))
	for _, r := range primaryOnly.Rows {
		assert.True(t, domain.HasPrimary(r.Entry))
		assert.False(t, domain.HasSecondary(r.Entry))
	}
	assert.Equal(t, []string{"lolly", "lolly-1"}, rowIDs(primaryOnly.Rows))

	withSecondary := ComputeView(entries, domain.DefaultRenderState().WithFilter(domain.FilterWithSecondary))
	for _, r := range withSecondary.Rows {
		assert.True(t, domain.HasSecondary(r.Entry))
	}
	assert.Len(t, withSecondary.Rows, 2)
}

func TestComputeView_IDsFollowVisibleSet(t *testing.T) {
	t.Parallel()

	entries := []domain.LexicalEntry{lolly("Fire", "[zz]"), annie("Fire", "aa")}

	all := ComputeView(entries, domain.DefaultRenderState().WithMode(domain.ModeMiluk))
	assert.Equal(t, map[int]string{1: "fire", 0: "fire-1"}, all.IDs, "numbering follows the sorted order")

	narrowed := ComputeView(entries, domain.DefaultRenderState().WithFilter(domain.FilterPrimaryOnly))
	assert.Equal(t, map[int]string{0: "fire"}, narrowed.IDs)
}

func TestComputeView_Deterministic(t *testing.T) {
	t.Parallel()

	entries := []domain.LexicalEntry{
		word("Fire"), lolly("Fire", "[ʔa]"), annie("water", "mi (x)"), word("Æther"), both("stone", "[Boo]", "z"),
	}
	states := []domain.RenderState{
		domain.DefaultRenderState(),
		domain.NewRenderState(domain.ModeMiluk, domain.FilterAll, ""),
		domain.NewRenderState(domain.ModeMiluk, domain.FilterWithSecondary, "o"),
		domain.NewRenderState(domain.ModeEnglish, domain.FilterPrimaryOnly, "FI"),
	}
	for _, st := range states {
		first := ComputeView(entries, st)
		second := ComputeView(entries, st)
		assert.Equal(t, first, second, "state %+v", st)
	}
}

func TestComputeView_DoesNotMutateEntries(t *testing.T) {
	t.Parallel()

	entries := []domain.LexicalEntry{word("b"), lolly("a", "[x]"), word("c")}
	before := make([]domain.LexicalEntry, len(entries))
	copy(before, entries)

	ComputeView(entries, domain.DefaultRenderState().WithMode(domain.ModeMiluk))

	assert.Equal(t, before, entries)
}

func TestComputeView_Empty(t *testing.T) {
	t.Parallel()

	v := ComputeView([]domain.LexicalEntry{word("Fire")}, domain.DefaultRenderState().WithQuery("zzz"))

	assert.True(t, v.Empty())
	assert.Empty(t, v.IDs)
	assert.Empty(t, v.Letters)
	assert.Empty(t, v.Groups)
	assert.Equal(t, 1, v.Total)
}

func TestView_Lookup(t *testing.T) {
	t.Parallel()

	v := ComputeView([]domain.LexicalEntry{word("Fire"), word("Fire")}, domain.DefaultRenderState())

	r, ok := v.Lookup("fire-1")
	require.True(t, ok)
	assert.Equal(t, 1, r.Index)

	_, ok = v.Lookup("water")
	assert.False(t, ok)
}
