package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"charm.land/glamour/v2"
	"github.com/mark3labs/tradingstudio/internal/catalog"
	"github.com/mark3labs/tradingstudio/internal/config"
	"github.com/mark3labs/tradingstudio/internal/logger"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/mark3labs/tradingstudio/internal/tui/theme"
)

// loadConfig loads the configuration and applies it to the logger and theme.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logger: %w", err)
	}
	if cfg.Theme != "" {
		if err := theme.SetCurrent(cfg.Theme); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// openCatalog starts the session catalog seeded from the configured fixture.
// The caller must Close the returned store.
func openCatalog(ctx context.Context, cfg *config.Config) (*catalog.Store, error) {
	fixture, err := catalog.LoadFixture(cfg.Fixture)
	if err != nil {
		return nil, err
	}
	store, err := catalog.Open(ctx, fixture)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return store, nil
}

// printStrategy renders a stored strategy as markdown.
func printStrategy(w io.Writer, s strategy.Stored) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(s.Markdown())
	if err != nil {
		return fmt.Errorf("rendering strategy: %w", err)
	}
	_, err = fmt.Fprintln(w, strings.TrimRight(out, "\n"))
	return err
}
