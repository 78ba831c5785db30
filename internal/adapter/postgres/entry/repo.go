// Package entry stores the wordlist in PostgreSQL. The table is written as a
// whole by the seeder and read as a whole at server start.
package entry

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/miluk-lexicon/internal/adapter/postgres"
	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

const table = "lexical_entries"

var columns = []string{
	"headword",
	"pronunciation_variants",
	"linguistics_notes",
	"transcriptions",
	"audio_sources",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides dataset persistence backed by PostgreSQL.
type Repo struct {
	q   postgres.Querier
	txm *postgres.TxManager
}

// New creates a new entry repository.
func New(q postgres.Querier, txm *postgres.TxManager) *Repo {
	return &Repo{q: q, txm: txm}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// LoadAll returns every entry in dataset order.
func (r *Repo) LoadAll(ctx context.Context) ([]domain.LexicalEntry, error) {
	query, args, err := psql.Select(columns...).From(table).OrderBy("position ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.q).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, "all")
	}
	defer rows.Close()

	var entries []domain.LexicalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, postgres.MapError(err, table, strconv.Itoa(len(entries)))
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, table, "all")
	}

	return entries, nil
}

// Count returns the number of stored entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.q).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, table, "count")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// ReplaceAll swaps the stored dataset for entries in a single transaction.
// Entry i is stored at position i. Returns the number of inserted rows.
func (r *Repo) ReplaceAll(ctx context.Context, entries []domain.LexicalEntry) (int, error) {
	var inserted int
	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		q := postgres.QuerierFromCtx(txCtx, r.q)

		query, args, err := psql.Delete(table).ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}
		if _, err := q.Exec(txCtx, query, args...); err != nil {
			return postgres.MapError(err, table, "all")
		}

		if len(entries) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for i := range entries {
			query, args, err := insertQuery(i, &entries[i])
			if err != nil {
				return err
			}
			batch.Queue(query, args...)
		}

		inserted, err = sendBatchExec(txCtx, q, batch)
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func insertQuery(pos int, e *domain.LexicalEntry) (string, []any, error) {
	var tr any
	if e.Transcriptions != nil {
		raw, err := json.Marshal(e.Transcriptions)
		if err != nil {
			return "", nil, fmt.Errorf("marshal transcriptions of %q: %w", e.Headword, err)
		}
		tr = raw
	}

	query, args, err := psql.Insert(table).
		Columns(append([]string{"position"}, columns...)...).
		Values(pos, e.Headword, nonNil(e.PronunciationVariants), e.LinguisticsNotes, tr, nonNil(e.AudioSources)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build insert: %w", err)
	}
	return query, args, nil
}

func sendBatchExec(ctx context.Context, q postgres.Querier, batch *pgx.Batch) (int, error) {
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, table, strconv.Itoa(i))
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ---------------------------------------------------------------------------
// Converters
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (domain.LexicalEntry, error) {
	var (
		e  domain.LexicalEntry
		tr []byte
	)
	if err := row.Scan(&e.Headword, &e.PronunciationVariants, &e.LinguisticsNotes, &tr, &e.AudioSources); err != nil {
		return domain.LexicalEntry{}, err
	}

	if len(tr) > 0 && string(tr) != "null" {
		e.Transcriptions = &domain.Transcriptions{}
		if err := json.Unmarshal(tr, e.Transcriptions); err != nil {
			return domain.LexicalEntry{}, fmt.Errorf("decode transcriptions of %q: %w", e.Headword, err)
		}
	}

	// Empty arrays come back as non-nil slices; JSON-loaded entries use nil.
	if len(e.PronunciationVariants) == 0 {
		e.PronunciationVariants = nil
	}
	if len(e.AudioSources) == 0 {
		e.AudioSources = nil
	}
	return e, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
