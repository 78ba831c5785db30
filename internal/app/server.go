package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/miluk-lexicon/internal/config"
	"github.com/heartmarshall/miluk-lexicon/internal/dataset"
	"github.com/heartmarshall/miluk-lexicon/internal/render"
	"github.com/heartmarshall/miluk-lexicon/internal/service/browse"
	"github.com/heartmarshall/miluk-lexicon/internal/transport/middleware"
	"github.com/heartmarshall/miluk-lexicon/internal/transport/rest"
)

// HandlerDeps is everything NewHandler wires together.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   config.Config
	Browse   *browse.Service
	Renderer *render.Renderer
	Limiter  *middleware.RateLimiter
	// Dataset supplies the optional database for health checks.
	Dataset *Dataset
}

// NewHandler builds the full HTTP handler: routes plus middleware.
func NewHandler(d HandlerDeps) http.Handler {
	var health *rest.HealthHandler
	if d.Dataset != nil && d.Dataset.Pool != nil {
		health = rest.NewHealthHandler(d.Browse, d.Dataset.Pool, BuildVersion())
	} else {
		health = rest.NewHealthHandler(d.Browse, nil, BuildVersion())
	}

	var exportLimit func(http.Handler) http.Handler
	if d.Limiter != nil {
		exportLimit = d.Limiter.Limit(d.Config.Server.ExportRateLimit)
	}

	return rest.NewRouter(rest.Handlers{
		Lexicon: rest.NewLexiconHandler(d.Browse, d.Renderer, d.Logger),
		Schema:  rest.NewSchemaHandler(dataset.Schema()),
		Health:  health,
	}, rest.RouterOptions{
		Middleware: []func(http.Handler) http.Handler{
			middleware.Recovery(d.Logger),
			middleware.RequestID(),
			middleware.Logger(d.Logger),
			middleware.CORS(d.Config.CORS),
		},
		ExportLimit: exportLimit,
	})
}

// NewServer creates the http.Server with the configured timeouts.
func NewServer(cfg config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Serve runs srv on ln until ctx is done, then shuts it down gracefully
// within cfg.ShutdownTimeout. A server failure also triggers the shutdown.
func Serve(ctx context.Context, logger *slog.Logger, cfg config.ServerConfig, srv *http.Server, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
