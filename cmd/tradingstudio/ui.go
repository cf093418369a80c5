package main

import (
	"fmt"

	"github.com/mark3labs/tradingstudio/internal/hooks"
	"github.com/mark3labs/tradingstudio/internal/logger"
	"github.com/mark3labs/tradingstudio/internal/tui"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the dashboard and strategy wizard",
	Long: `Open the full-screen terminal UI.

The dashboard lists the strategies in the session catalog. Press n (or 2)
to create a strategy with the four-step wizard; it is added to the
dashboard when the last step validates.

Configuration is loaded from multiple sources with the following precedence:
  Environment variables > Project config > Global config > Defaults

Project config: ./tradingstudio.yml
Global config: ~/.config/tradingstudio/tradingstudio.yml`,
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := openCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Closing catalog: %v", err)
		}
	}()

	hooksCfg, err := hooks.LoadConfig(cfg.HooksDir)
	if err != nil {
		return fmt.Errorf("failed to load hooks: %w", err)
	}

	return tui.Run(ctx, tui.Options{
		Catalog:       store,
		CreatedStatus: cfg.CreatedStatus(),
		Hooks:         hooksCfg,
		HooksDir:      cfg.HooksDir,
		StateDir:      cfg.StateDir,
	})
}
