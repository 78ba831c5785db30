package browse

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

// ViewInput holds raw request parameters. Empty Mode or Filter means the
// service default.
type ViewInput struct {
	Mode   string
	Filter string
	Query  string
}

// State validates the input and builds the RenderState it describes.
// All field errors are collected into one ValidationError.
func (s *Service) State(in ViewInput) (domain.RenderState, error) {
	var errs []domain.FieldError

	mode, err := domain.ParseMode(in.Mode, s.defaults.Mode)
	errs = appendFieldErrors(errs, err)

	filter, err := domain.ParseFilter(in.Filter, s.defaults.Filter)
	errs = appendFieldErrors(errs, err)

	q := domain.NormalizeQuery(in.Query)
	if n := utf8.RuneCountInString(q); n > s.maxQuery {
		errs = append(errs, domain.FieldError{
			Field:   "q",
			Message: fmt.Sprintf("max %d characters", s.maxQuery),
		})
	}

	if len(errs) > 0 {
		return domain.RenderState{}, domain.NewValidationErrors(errs)
	}
	return domain.RenderState{Mode: mode, Filter: filter, Query: q}, nil
}

func appendFieldErrors(dst []domain.FieldError, err error) []domain.FieldError {
	if err == nil {
		return dst
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return append(dst, ve.Errors...)
	}
	return append(dst, domain.FieldError{Field: "input", Message: err.Error()})
}
