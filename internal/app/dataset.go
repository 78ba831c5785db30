package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/miluk-lexicon/internal/adapter/postgres"
	"github.com/heartmarshall/miluk-lexicon/internal/adapter/postgres/entry"
	"github.com/heartmarshall/miluk-lexicon/internal/config"
	"github.com/heartmarshall/miluk-lexicon/internal/dataset"
	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

// Dataset is the wordlist loaded at start together with the resources that
// produced it.
type Dataset struct {
	Entries []domain.LexicalEntry
	// Pool is set only for the postgres source and stays open for health checks.
	Pool *pgxpool.Pool
}

// Close releases the database pool, if any.
func (d *Dataset) Close() {
	if d.Pool != nil {
		d.Pool.Close()
	}
}

// LoadDataset reads the wordlist from the configured source. The result is
// never modified afterwards.
func LoadDataset(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Dataset, error) {
	switch cfg.Dataset.Source {
	case config.SourceFile:
		entries, err := dataset.FileSource{Path: cfg.Dataset.Path}.Load(ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("dataset loaded",
			slog.String("source", config.SourceFile),
			slog.String("path", cfg.Dataset.Path),
			slog.Int("entries", len(entries)),
		)
		return &Dataset{Entries: entries}, nil

	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}

		repo := entry.New(pool, postgres.NewTxManager(pool))
		entries, err := repo.LoadAll(ctx)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("load dataset: %w", err)
		}
		dataset.Normalize(entries)
		if err := dataset.Validate(entries); err != nil {
			pool.Close()
			return nil, fmt.Errorf("load dataset: %w", err)
		}

		if len(entries) == 0 {
			logger.Warn("dataset is empty; run the seeder to import a wordlist")
		}
		logger.Info("dataset loaded",
			slog.String("source", config.SourcePostgres),
			slog.Int("entries", len(entries)),
		)
		return &Dataset{Entries: entries, Pool: pool}, nil

	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
}
