// Package browse is the read side of the lexicon: it owns the loaded
// dataset and turns request parameters into computed views.
package browse

import (
	"log/slog"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

const defaultMaxQueryLength = 200

// Options configures a Service.
type Options struct {
	// Defaults fill in mode and filter when a request omits them.
	Defaults       domain.RenderState
	MaxQueryLength int
}

// Service computes views over a dataset that never changes after start.
// It is safe for concurrent use.
type Service struct {
	entries  []domain.LexicalEntry
	defaults domain.RenderState
	maxQuery int
	log      *slog.Logger
}

// NewService creates a new browse service over entries. The slice is owned
// by the service from here on and must not be modified by the caller.
func NewService(log *slog.Logger, entries []domain.LexicalEntry, opts Options) *Service {
	defaults := opts.Defaults
	if !defaults.Mode.IsValid() {
		defaults.Mode = domain.ModeEnglish
	}
	if !defaults.Filter.IsValid() {
		defaults.Filter = domain.FilterAll
	}
	defaults.Query = ""

	maxQuery := opts.MaxQueryLength
	if maxQuery <= 0 {
		maxQuery = defaultMaxQueryLength
	}

	return &Service{
		entries:  entries,
		defaults: defaults,
		maxQuery: maxQuery,
		log:      log.With("service", "browse"),
	}
}

// Count returns the number of entries in the dataset.
func (s *Service) Count() int {
	return len(s.entries)
}

// Defaults returns the state a fresh session starts with.
func (s *Service) Defaults() domain.RenderState {
	return s.defaults
}
