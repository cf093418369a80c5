package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/tradingstudio/internal/logger"
	"github.com/mark3labs/tradingstudio/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "▀█▀ █▀█ ▄▀█ █▀▄ █ █▄ █ █▀▀"
	logoText2 = " █  █▀▄ █▀█ █▄▀ █ █ ▀█ █▄█"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tradingstudio",
	Short: "Build trading strategies in a step-by-step terminal wizard",
	RunE:  runUI,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

TradingStudio lists your trading strategies on a dashboard and walks you
through creating new ones: scan criteria, buy rules, sell rules and
simulation settings, one validated step at a time.

Strategies live in an embedded NATS JetStream store for the length of the
session, seeded from a YAML fixture (or built-in examples).`

	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(configCmd)
}
