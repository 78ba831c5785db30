// Command seeder imports a wordlist JSON file into Postgres so the server can
// run with dataset.source=postgres. It applies pending migrations, replaces
// the stored wordlist in one transaction and verifies the row count.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        parse and validate the wordlist without touching the DB
//	--seeder-config  path to seeder YAML config file
//	--wordlist       wordlist path, overrides the config
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/miluk-lexicon/internal/adapter/postgres"
	"github.com/heartmarshall/miluk-lexicon/internal/adapter/postgres/entry"
	"github.com/heartmarshall/miluk-lexicon/internal/app"
	"github.com/heartmarshall/miluk-lexicon/internal/app/seeder"
	"github.com/heartmarshall/miluk-lexicon/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run: migrate,wordlist,verify (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the wordlist without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	wordlistFlag := flag.String("wordlist", "", "path to the wordlist JSON file")
	flag.Parse()

	// Load app config (for DB connection and logging).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *wordlistFlag != "" {
		seederCfg.WordlistPath = *wordlistFlag
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if seederCfg.DryRun {
		pipeline := seeder.NewPipeline(logger, nil, nil, *seederCfg)
		if err := pipeline.Run(ctx, phases); err != nil {
			logger.Error("dry run failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("dry run completed")
		return
	}

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := entry.New(pool, postgres.NewTxManager(pool))
	migrator := seeder.MigratorFunc(func(ctx context.Context) (int, error) {
		return postgres.MigratePool(ctx, pool)
	})

	pipeline := seeder.NewPipeline(logger, repo, migrator, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
