package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Lexicon *LexiconHandler
	Schema  *SchemaHandler
	Health  *HealthHandler
}

// RouterOptions holds the middleware applied around the routes. Nil
// entries are skipped.
type RouterOptions struct {
	// Middleware wraps every route, outermost first.
	Middleware []func(http.Handler) http.Handler
	// ExportLimit wraps the export download only.
	ExportLimit func(http.Handler) http.Handler
}

// NewRouter mounts the page, the JSON API and the health probes.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	for _, mw := range opts.Middleware {
		if mw != nil {
			r.Use(mw)
		}
	}
	r.Use(chimw.CleanPath)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Group(func(r chi.Router) {
		r.Use(chimw.Compress(5, "text/html", "application/json", "application/schema+json"))
		r.Get("/", h.Lexicon.Page)
		r.Get("/api/view", h.Lexicon.View)
		r.Get("/api/entries/{id}", h.Lexicon.Entry)
		if h.Schema != nil {
			r.Get("/api/schema", h.Schema.Schema)
		}
	})

	r.Group(func(r chi.Router) {
		if opts.ExportLimit != nil {
			r.Use(opts.ExportLimit)
		}
		r.Get("/api/export", h.Lexicon.Export)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
