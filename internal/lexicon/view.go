package lexicon

import "github.com/heartmarshall/miluk-lexicon/internal/domain"

// Group is a run of consecutive rows sharing a divider letter.
type Group struct {
	Letter string
	// Label is what the divider shows: the letter, or "Other" for "#".
	Label string
	Rows  []Row
}

// View is the output of one render pass.
type View struct {
	State domain.RenderState
	// Rows is the visible sequence in display order.
	Rows []Row
	// IDs maps dataset index to the row's identifier.
	IDs map[int]string
	// Letters lists the active A-Z letters in order.
	Letters []string
	Groups  []Group
	// Total is the size of the whole dataset.
	Total int
}

// Empty reports whether nothing matched the filter and query.
func (v *View) Empty() bool {
	return len(v.Rows) == 0
}

// Lookup returns the row with the given id.
func (v *View) Lookup(id string) (Row, bool) {
	for _, r := range v.Rows {
		if r.ID == id {
			return r, true
		}
	}
	return Row{}, false
}

// ComputeView runs the whole pipeline for one render pass. entries is
// read, never modified.
func ComputeView(entries []domain.LexicalEntry, state domain.RenderState) View {
	rows := FilterEntries(entries, state.Filter, state.Query)
	NewCollator(state.Mode).Sort(rows)
	assignRowIDs(rows)

	ids := make(map[int]string, len(rows))
	for _, r := range rows {
		ids[r.Index] = r.ID
	}

	return View{
		State:   state,
		Rows:    rows,
		IDs:     ids,
		Letters: ActiveLetters(rows),
		Groups:  groupRows(rows),
		Total:   len(entries),
	}
}

func groupRows(rows []Row) []Group {
	var groups []Group
	for i, r := range rows {
		if i == 0 || r.Letter != rows[i-1].Letter {
			groups = append(groups, Group{Letter: r.Letter, Label: groupLabel(r.Letter)})
		}
		g := &groups[len(groups)-1]
		g.Rows = append(g.Rows, r)
	}
	return groups
}

func groupLabel(letter string) string {
	if letter == OtherLetter {
		return "Other"
	}
	return letter
}
