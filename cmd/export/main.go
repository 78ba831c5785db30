// Command export writes one view of the wordlist to a file, the same view the
// server would show for the given mode, filter and query.
//
// Flags:
//
//	--mode    english|miluk (default: view.default_mode)
//	--filter  all|with-secondary|primary-only (default: view.default_filter)
//	--q       search query
//	--format  json|xlsx (default: json)
//	--out     output path; "-" writes to stdout (default: -)
//	--config  path to config.yaml (default: CONFIG_PATH)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/miluk-lexicon/internal/app"
	"github.com/heartmarshall/miluk-lexicon/internal/config"
	"github.com/heartmarshall/miluk-lexicon/internal/export"
	"github.com/heartmarshall/miluk-lexicon/internal/service/browse"
)

func main() {
	modeFlag := flag.String("mode", "", "sort mode: english or miluk")
	filterFlag := flag.String("filter", "", "availability filter: all, with-secondary, primary-only")
	queryFlag := flag.String("q", "", "search query")
	formatFlag := flag.String("format", "json", "output format: json or xlsx")
	outFlag := flag.String("out", "-", `output file, "-" for stdout`)
	configFlag := flag.String("config", os.Getenv("CONFIG_PATH"), "path to config.yaml")
	flag.Parse()

	cfg, err := config.LoadPath(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := run(logger, *cfg, browse.ViewInput{Mode: *modeFlag, Filter: *filterFlag, Query: *queryFlag}, *formatFlag, *outFlag); err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg config.Config, in browse.ViewInput, rawFormat, out string) error {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ds, err := app.LoadDataset(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer ds.Close()

	svc := browse.NewService(logger, ds.Entries, browse.Options{
		Defaults:       cfg.View.DefaultState(),
		MaxQueryLength: cfg.View.MaxQueryLength,
	})

	v, err := svc.View(ctx, in)
	if err != nil {
		return err
	}

	w := os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	if err := export.Write(bw, format, v); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	logger.Info("export completed",
		slog.String("format", format.String()),
		slog.String("out", out),
		slog.Int("visible", len(v.Rows)),
		slog.Int("total", v.Total),
	)
	return nil
}
