package browse

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
	"github.com/heartmarshall/miluk-lexicon/internal/lexicon"
)

// View computes the visible list for the given parameters.
func (s *Service) View(ctx context.Context, in ViewInput) (*lexicon.View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state, err := s.State(in)
	if err != nil {
		return nil, err
	}

	v := lexicon.ComputeView(s.entries, state)

	s.log.DebugContext(ctx, "view computed",
		slog.String("mode", state.Mode.String()),
		slog.String("filter", state.Filter.String()),
		slog.String("query", state.Query),
		slog.Int("visible", len(v.Rows)),
		slog.Int("total", v.Total),
	)

	return &v, nil
}

// Entry resolves a deep link: the row with the given id inside the view the
// parameters describe. Ids are only stable within one view, so an id that
// is not visible under the parameters is reported as not found.
func (s *Service) Entry(ctx context.Context, in ViewInput, id string) (lexicon.Row, error) {
	if id == "" {
		return lexicon.Row{}, domain.NewValidationError("id", "required")
	}

	v, err := s.View(ctx, in)
	if err != nil {
		return lexicon.Row{}, err
	}

	row, ok := v.Lookup(id)
	if !ok {
		return lexicon.Row{}, fmt.Errorf("entry %q: %w", id, domain.ErrNotFound)
	}
	return row, nil
}
