package domain

// RenderState is the full input of one render pass besides the dataset.
// Every user interaction produces a new value; nothing is mutated in place.
type RenderState struct {
	Mode   Mode
	Filter Filter
	// Query is already trimmed and lower-cased. Empty means no search.
	Query string
}

// NewRenderState builds a RenderState, normalizing the raw query.
func NewRenderState(mode Mode, filter Filter, rawQuery string) RenderState {
	return RenderState{
		Mode:   mode,
		Filter: filter,
		Query:  NormalizeQuery(rawQuery),
	}
}

// DefaultRenderState is the state of a fresh session.
func DefaultRenderState() RenderState {
	return RenderState{Mode: ModeEnglish, Filter: FilterAll}
}

// WithMode returns a copy of s with the mode replaced.
func (s RenderState) WithMode(m Mode) RenderState {
	s.Mode = m
	return s
}

// WithFilter returns a copy of s with the filter replaced.
func (s RenderState) WithFilter(f Filter) RenderState {
	s.Filter = f
	return s
}

// WithQuery returns a copy of s with a new raw query.
func (s RenderState) WithQuery(raw string) RenderState {
	s.Query = NormalizeQuery(raw)
	return s
}
