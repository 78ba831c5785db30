// Package seeder loads a wordlist file into the Postgres dataset source.
package seeder

import (
	"context"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

// EntryStore is the repository contract consumed by the pipeline.
// Implemented by entry.Repo.
type EntryStore interface {
	// ReplaceAll swaps the stored dataset for entries in one transaction.
	ReplaceAll(ctx context.Context, entries []domain.LexicalEntry) (int, error)
	Count(ctx context.Context) (int, error)
}

// Migrator brings the schema up to date and reports how many migrations ran.
type Migrator interface {
	Migrate(ctx context.Context) (int, error)
}

// MigratorFunc adapts a function to Migrator.
type MigratorFunc func(ctx context.Context) (int, error)

// Migrate calls f(ctx).
func (f MigratorFunc) Migrate(ctx context.Context) (int, error) { return f(ctx) }
