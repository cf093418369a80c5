package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/tradingstudio/internal/hooks"
	"github.com/mark3labs/tradingstudio/internal/logger"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/mark3labs/tradingstudio/internal/tui/wizard"
	"github.com/spf13/cobra"
)

var createFlags struct {
	headless bool
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a strategy with the step wizard",
	Long: `Create a strategy with the four-step wizard (Scan, Buy, Sell, Simulation)
and print it when the last step validates.

With --headless the wizard is driven from flags instead of the terminal UI.
If a step is missing required fields, its errors are printed and the command
fails without creating anything.`,
	Example: `  tradingstudio create
  tradingstudio create --headless --exchange NSE --instrument I1 \
    --indicator rsi --indicator macd --entry-type market --price-level 100 \
    --exit-type takeProfit --profit-target 110 --name "RSI Swing" --capital 10000`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().BoolVar(&createFlags.headless, "headless", false, "Fill the wizard from flags instead of the UI")
	addFieldFlags(createCmd)
	createCmd.Long += "\n\nRequired flags, by step:\n" + strings.TrimRight(requiredFlagsHelp(), "\n")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var d strategy.Draft
	if createFlags.headless {
		values, err := fieldValues(cmd)
		if err != nil {
			return err
		}
		d, err = fillHeadless(values)
		if err != nil {
			var incomplete *IncompleteError
			if errors.As(err, &incomplete) {
				for _, line := range incomplete.Lines() {
					fmt.Fprintln(cmd.ErrOrStderr(), "  ✗ "+line)
				}
			}
			return err
		}
	} else {
		result, err := wizard.Run()
		if errors.Is(err, wizard.ErrCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, nothing was created.")
			return nil
		}
		if err != nil {
			return err
		}
		d = *result
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

	stored, err := store.Record(ctx, d, cfg.CreatedStatus())
	if err != nil {
		return fmt.Errorf("failed to record strategy: %w", err)
	}

	hooksCfg, err := hooks.LoadConfig(cfg.HooksDir)
	if err != nil {
		return fmt.Errorf("failed to load hooks: %w", err)
	}
	if out, err := hooks.RunOnCreate(ctx, hooksCfg, cfg.HooksDir, stored); err != nil {
		logger.Warn("on_create hook aborted: %v", err)
	} else if out != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), out)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Strategy created successfully!")
	return printStrategy(cmd.OutOrStdout(), stored)
}
