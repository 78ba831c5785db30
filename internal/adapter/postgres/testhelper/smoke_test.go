package testhelper

import (
	"context"
	"testing"

	"github.com/heartmarshall/miluk-lexicon/internal/adapter/postgres"
	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)
	ResetEntries(t, pool)

	SeedEntries(t, pool, []domain.LexicalEntry{{Headword: "fire"}, {Headword: "water"}})

	var headword string
	err := pool.QueryRow(
		context.Background(),
		`SELECT headword FROM lexical_entries WHERE position = $1`,
		1,
	).Scan(&headword)
	if err != nil {
		t.Fatalf("expected entry in DB, got error: %v", err)
	}

	if headword != "water" {
		t.Fatalf("expected headword %q, got %q", "water", headword)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	pool := SetupTestDB(t)

	applied, err := postgres.MigratePool(context.Background(), pool)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if applied != 0 {
		t.Fatalf("expected no pending migrations, got %d applied", applied)
	}
}
