package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
	"github.com/heartmarshall/miluk-lexicon/internal/lexicon"
)

// Link is a mode tab or filter button. Href reproduces the current state
// with one field changed.
type Link struct {
	Label  string
	Href   string
	Active bool
}

// AlphaButton is one letter of the alphabet bar.
type AlphaButton struct {
	Letter string
	Anchor string
	Active bool
}

// Section is a letter divider followed by its cards.
type Section struct {
	Letter string
	Anchor string
	Label  string
	Cards  []Card
}

// Table is the pronunciation table of a card. A nil speaker has no columns.
type Table struct {
	Primary   *domain.PrimarySpeaker
	Secondary *domain.SecondarySpeaker
}

// Card is the view model of one entry.
type Card struct {
	ID       string
	Headword string
	Form     string
	// MilukLead puts the Miluk form in the heading and the English below it.
	MilukLead     bool
	SecondaryOnly bool
	Audio         []Audio
	Table         *Table
	HowToSay      string
	Notes         []string
}

// Page is everything the page template needs.
type Page struct {
	State    domain.RenderState
	Counter  string
	Modes    []Link
	Filters  []Link
	Alphabet []AlphaButton
	Sections []Section
	Empty    bool
	// Downloads export the current view.
	Downloads []Link
}

var (
	modeLinks = []struct {
		mode  domain.Mode
		label string
	}{
		{domain.ModeEnglish, "English"},
		{domain.ModeMiluk, "Miluk"},
	}
	filterLinks = []struct {
		filter domain.Filter
		label  string
	}{
		{domain.FilterAll, "All entries"},
		{domain.FilterWithSecondary, "With Annie Miner Peterson"},
		{domain.FilterPrimaryOnly, "Lolly Metcalf only"},
	}
	downloadLinks = []struct {
		format string
		label  string
	}{
		{"xlsx", "Download spreadsheet"},
		{"json", "Download JSON"},
	}
)

// NewPage builds the page model of a computed view.
func NewPage(v *lexicon.View) Page {
	p := Page{
		State:   v.State,
		Counter: Counter(len(v.Rows), v.Total),
		Empty:   v.Empty(),
	}

	for _, m := range modeLinks {
		p.Modes = append(p.Modes, Link{
			Label:  m.label,
			Href:   StateURL("/", v.State.WithMode(m.mode)),
			Active: v.State.Mode == m.mode,
		})
	}
	for _, f := range filterLinks {
		p.Filters = append(p.Filters, Link{
			Label:  f.label,
			Href:   StateURL("/", v.State.WithFilter(f.filter)),
			Active: v.State.Filter == f.filter,
		})
	}

	for _, d := range downloadLinks {
		p.Downloads = append(p.Downloads, Link{
			Label: d.label,
			Href:  StateURL("/api/export", v.State) + "&format=" + d.format,
		})
	}

	active := make(map[string]bool, len(v.Letters))
	for _, l := range v.Letters {
		active[l] = true
	}
	for _, r := range lexicon.Alphabet {
		l := string(r)
		p.Alphabet = append(p.Alphabet, AlphaButton{Letter: l, Anchor: LetterAnchor(l), Active: active[l]})
	}

	milukLead := v.State.Mode == domain.ModeMiluk
	for _, g := range v.Groups {
		sec := Section{Letter: g.Letter, Anchor: LetterAnchor(g.Letter), Label: g.Label}
		for _, row := range g.Rows {
			sec.Cards = append(sec.Cards, NewCard(row, milukLead))
		}
		p.Sections = append(p.Sections, sec)
	}

	return p
}

// NewCard builds the card model of one row.
func NewCard(row lexicon.Row, milukLead bool) Card {
	e := row.Entry
	c := Card{
		ID:            row.ID,
		Headword:      e.Headword,
		Form:          row.Form,
		MilukLead:     milukLead,
		SecondaryOnly: domain.IsSecondaryOnly(e),
		Audio:         AudioEmbeds(e.AudioSources),
		HowToSay:      e.InstantPhonetic(),
		Notes:         Paragraphs(e.LinguisticsNotes),
	}
	if domain.HasPrimary(e) || domain.HasSecondary(e) {
		c.Table = &Table{Primary: e.Primary(), Secondary: e.Secondary()}
	}
	return c
}

// Counter is the "Showing N of M entries" line.
func Counter(visible, total int) string {
	return fmt.Sprintf("Showing %d of %d entries", visible, total)
}

// LetterAnchor is the fragment id of a letter divider.
func LetterAnchor(letter string) string {
	if letter == lexicon.OtherLetter {
		return "letter-other"
	}
	return "letter-" + strings.ToLower(letter)
}

// StateURL encodes a render state as a link to path. Defaults are written
// out so links stay stable if server defaults change.
func StateURL(path string, s domain.RenderState) string {
	q := url.Values{}
	q.Set("mode", s.Mode.String())
	q.Set("filter", s.Filter.String())
	if s.Query != "" {
		q.Set("q", s.Query)
	}
	return path + "?" + q.Encode()
}
