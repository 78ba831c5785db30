package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ExportRateLimit < 0 {
		return fmt.Errorf("server.export_rate_limit must be >= 0 (got %d)", c.Server.ExportRateLimit)
	}

	if err := c.validateDataset(); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	if err := c.View.validate(); err != nil {
		return fmt.Errorf("view: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (c *Config) validateDataset() error {
	switch c.Dataset.Source {
	case SourceFile:
		if strings.TrimSpace(c.Dataset.Path) == "" {
			return fmt.Errorf("path is required for source %q", SourceFile)
		}
	case SourcePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for source %q", SourcePostgres)
		}
	default:
		return fmt.Errorf("source must be %q or %q (got %q)", SourceFile, SourcePostgres, c.Dataset.Source)
	}
	return nil
}

func (v *ViewConfig) validate() error {
	if !domain.Mode(v.DefaultMode).IsValid() {
		return fmt.Errorf("default_mode: unknown mode %q", v.DefaultMode)
	}
	if !domain.Filter(v.DefaultFilter).IsValid() {
		return fmt.Errorf("default_filter: unknown filter %q", v.DefaultFilter)
	}
	if v.MaxQueryLength <= 0 {
		return fmt.Errorf("max_query_length must be > 0 (got %d)", v.MaxQueryLength)
	}
	return nil
}

// DefaultState returns the RenderState a new session starts with.
func (v ViewConfig) DefaultState() domain.RenderState {
	return domain.RenderState{
		Mode:   domain.Mode(v.DefaultMode),
		Filter: domain.Filter(v.DefaultFilter),
	}
}
