package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
	"github.com/heartmarshall/miluk-lexicon/internal/export"
	"github.com/heartmarshall/miluk-lexicon/internal/lexicon"
	"github.com/heartmarshall/miluk-lexicon/internal/render"
	"github.com/heartmarshall/miluk-lexicon/internal/service/browse"
)

type browseService interface {
	State(in browse.ViewInput) (domain.RenderState, error)
	View(ctx context.Context, in browse.ViewInput) (*lexicon.View, error)
	Entry(ctx context.Context, in browse.ViewInput, id string) (lexicon.Row, error)
}

type pageRenderer interface {
	Page(w io.Writer, v *lexicon.View) error
	Card(w io.Writer, row lexicon.Row, milukLead bool) error
}

// LexiconHandler serves the wordlist page and its JSON API.
type LexiconHandler struct {
	svc      browseService
	renderer pageRenderer
	log      *slog.Logger
}

// NewLexiconHandler creates a LexiconHandler.
func NewLexiconHandler(svc browseService, renderer pageRenderer, logger *slog.Logger) *LexiconHandler {
	return &LexiconHandler{
		svc:      svc,
		renderer: renderer,
		log:      logger.With("handler", "lexicon"),
	}
}

type viewResponse struct {
	Mode    string          `json:"mode"`
	Filter  string          `json:"filter"`
	Query   string          `json:"query,omitempty"`
	Counter string          `json:"counter"`
	Visible int             `json:"visible"`
	Total   int             `json:"total"`
	Empty   bool            `json:"empty"`
	Letters []string        `json:"letters"`
	Groups  []groupResponse `json:"groups"`
}

type groupResponse struct {
	Letter  string          `json:"letter"`
	Label   string          `json:"label"`
	Anchor  string          `json:"anchor"`
	Entries []export.Record `json:"entries"`
}

type entryResponse struct {
	Entry export.Record `json:"entry"`
	Card  string        `json:"card_html"`
}

// Page renders the HTML wordlist.
// GET /?mode=&filter=&q=
func (h *LexiconHandler) Page(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.View(r.Context(), viewInput(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, v); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}

// View returns the computed view as JSON.
// GET /api/view?mode=&filter=&q=
func (h *LexiconHandler) View(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.View(r.Context(), viewInput(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewResponse(v))
}

// Entry resolves a deep link inside the view the query parameters describe.
// GET /api/entries/{id}?mode=&filter=&q=
func (h *LexiconHandler) Entry(w http.ResponseWriter, r *http.Request) {
	in := viewInput(r)
	state, err := h.svc.State(in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	row, err := h.svc.Entry(r.Context(), in, chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var card bytes.Buffer
	if err := h.renderer.Card(&card, row, state.Mode == domain.ModeMiluk); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, entryResponse{
		Entry: export.RecordOf(row),
		Card:  card.String(),
	})
}

// Export downloads the current view as a file.
// GET /api/export?format=json|xlsx&mode=&filter=&q=
func (h *LexiconHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.svc.View(r.Context(), viewInput(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, v); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="miluk-wordlist-%s.%s"`, v.State.Mode, format.Extension()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}

func viewInput(r *http.Request) browse.ViewInput {
	q := r.URL.Query()
	return browse.ViewInput{
		Mode:   q.Get("mode"),
		Filter: q.Get("filter"),
		Query:  q.Get("q"),
	}
}

func toViewResponse(v *lexicon.View) viewResponse {
	resp := viewResponse{
		Mode:    v.State.Mode.String(),
		Filter:  v.State.Filter.String(),
		Query:   v.State.Query,
		Counter: render.Counter(len(v.Rows), v.Total),
		Visible: len(v.Rows),
		Total:   v.Total,
		Empty:   v.Empty(),
		Letters: v.Letters,
		Groups:  make([]groupResponse, 0, len(v.Groups)),
	}
	if resp.Letters == nil {
		resp.Letters = []string{}
	}

	records := export.Records(v)
	offset := 0
	for _, g := range v.Groups {
		resp.Groups = append(resp.Groups, groupResponse{
			Letter:  g.Letter,
			Label:   g.Label,
			Anchor:  render.LetterAnchor(g.Letter),
			Entries: records[offset : offset+len(g.Rows)],
		})
		offset += len(g.Rows)
	}
	return resp
}
