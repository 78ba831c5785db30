package testhelper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

// ResetEntries empties lexical_entries. Tests sharing the container call it
// before seeding so row positions start at zero.
func ResetEntries(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `TRUNCATE lexical_entries`); err != nil {
		t.Fatalf("testhelper: truncate lexical_entries: %v", err)
	}
}

// SeedEntries inserts entries with positions 0..n-1.
func SeedEntries(t *testing.T, pool *pgxpool.Pool, entries []domain.LexicalEntry) {
	t.Helper()
	ctx := context.Background()

	for i, e := range entries {
		var tr []byte
		if e.Transcriptions != nil {
			var err error
			tr, err = json.Marshal(e.Transcriptions)
			if err != nil {
				t.Fatalf("testhelper: marshal transcriptions: %v", err)
			}
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO lexical_entries (position, headword, pronunciation_variants, linguistics_notes, transcriptions, audio_sources)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			i, e.Headword, nonNil(e.PronunciationVariants), e.LinguisticsNotes, tr, nonNil(e.AudioSources),
		)
		if err != nil {
			t.Fatalf("testhelper: seed entry %q: %v", e.Headword, err)
		}
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
