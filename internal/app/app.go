package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/heartmarshall/miluk-lexicon/internal/config"
	"github.com/heartmarshall/miluk-lexicon/internal/render"
	"github.com/heartmarshall/miluk-lexicon/internal/service/browse"
	"github.com/heartmarshall/miluk-lexicon/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, loads the dataset once, and serves HTTP until ctx is done.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadPath(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("dataset_source", cfg.Dataset.Source),
	)

	ds, err := LoadDataset(ctx, *cfg, logger)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer ds.Close()

	svc := browse.NewService(logger, ds.Entries, browse.Options{
		Defaults:       cfg.View.DefaultState(),
		MaxQueryLength: cfg.View.MaxQueryLength,
	})

	renderer, err := render.New()
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := NewHandler(HandlerDeps{
		Logger:   logger,
		Config:   *cfg,
		Browse:   svc,
		Renderer: renderer,
		Limiter:  limiter,
		Dataset:  ds,
	})

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}

	if err := Serve(ctx, logger, cfg.Server, NewServer(cfg.Server, handler), ln); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
