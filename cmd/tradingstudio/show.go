package main

import (
	"context"
	"strconv"

	"github.com/mark3labs/tradingstudio/internal/catalog"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id|slug>",
	Short: "Print one strategy from the catalog",
	Long: `Print a strategy from the configured fixture (or the built-in examples).
The strategy is looked up by numeric ID, or by slug as shown in 'tradingstudio list'.`,
	Example: `  tradingstudio show 2
  tradingstudio show rsi-reversal-strategy`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fixture, err := catalog.LoadFixture(cfg.Fixture)
	if err != nil {
		return err
	}

	s, err := lookupStrategy(cmd.Context(), fixture, args[0])
	if err != nil {
		return err
	}
	return printStrategy(cmd.OutOrStdout(), s)
}

// lookupStrategy resolves key as an ID when it is numeric, otherwise as a slug.
func lookupStrategy(ctx context.Context, src catalog.Source, key string) (strategy.Stored, error) {
	if id, err := strconv.Atoi(key); err == nil {
		return catalog.Find(ctx, src, id)
	}
	return catalog.FindBySlug(ctx, src, key)
}
