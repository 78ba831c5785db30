package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/miluk-lexicon/internal/dataset"
	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

// Phase names in canonical execution order.
const (
	PhaseMigrate  = "migrate"
	PhaseWordlist = "wordlist"
	PhaseVerify   = "verify"
)

var allPhases = []string{PhaseMigrate, PhaseWordlist, PhaseVerify}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Applied  int
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates schema migration and the wordlist import.
type Pipeline struct {
	log      *slog.Logger
	store    EntryStore
	migrator Migrator
	cfg      Config
	results  map[string]PhaseResult

	// expected is the entry count the wordlist phase wrote, -1 if it did not run.
	expected int
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, store EntryStore, migrator Migrator, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log.With("component", "seeder"),
		store:    store,
		migrator: migrator,
		cfg:      cfg,
		results:  make(map[string]PhaseResult),
		expected: -1,
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded an error.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. Unknown phase names are rejected up front.
// A failed phase stops the phases after it.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseMigrate:
			result = p.runMigrate(ctx)
		case PhaseWordlist:
			result = p.runWordlist(ctx)
		case PhaseVerify:
			result = p.runVerify(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("phase %s: %w", phase, result.Err)
		}

		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("applied", result.Applied),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	want := make(map[string]bool, len(phases))
	for _, ph := range phases {
		known := false
		for _, a := range allPhases {
			if ph == a {
				known = true
				break
			}
		}
		if !known {
			return nil, domain.NewValidationError("phase", fmt.Sprintf("unknown phase %q", ph))
		}
		want[ph] = true
	}

	var out []string
	for _, ph := range allPhases {
		if want[ph] {
			out = append(out, ph)
		}
	}
	return out, nil
}

func (p *Pipeline) runMigrate(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: 1}
	}
	applied, err := p.migrator.Migrate(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("migrate: %w", err)}
	}
	return PhaseResult{Applied: applied}
}

// runWordlist parses, normalizes and validates the wordlist, then replaces
// the stored dataset with it.
func (p *Pipeline) runWordlist(ctx context.Context) PhaseResult {
	if p.cfg.WordlistPath == "" {
		return PhaseResult{Err: fmt.Errorf("wordlist path not configured")}
	}

	entries, err := dataset.LoadFile(p.cfg.WordlistPath)
	if err != nil {
		return PhaseResult{Err: err}
	}
	p.log.Info("wordlist parsed",
		slog.String("path", p.cfg.WordlistPath),
		slog.Int("entries", len(entries)),
	)

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(entries)}
	}

	inserted, err := p.store.ReplaceAll(ctx, entries)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("replace entries: %w", err)}
	}
	p.expected = inserted
	return PhaseResult{Inserted: inserted}
}

// runVerify checks that the stored row count matches what was written.
func (p *Pipeline) runVerify(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: 1}
	}

	n, err := p.store.Count(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("count entries: %w", err)}
	}
	if n == 0 {
		return PhaseResult{Err: fmt.Errorf("dataset is empty")}
	}
	if p.expected >= 0 && n != p.expected {
		return PhaseResult{Err: fmt.Errorf("stored %d entries, wrote %d", n, p.expected)}
	}
	return PhaseResult{}
}
