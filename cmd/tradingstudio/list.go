package main

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mark3labs/tradingstudio/internal/catalog"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/mark3labs/tradingstudio/internal/tui/theme"
	"github.com/spf13/cobra"
)

var listFlags struct {
	status string
	export string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the strategy catalog",
	Long: `Print the strategies from the configured fixture (or the built-in
examples) as a table, newest first.

With --export the listed strategies are also written to a YAML file in the
fixture format, ready to be edited and set as the 'fixture' config key.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFlags.status, "status", "s", "", "Only show strategies with this status (Draft, Submitted, Active)")
	listCmd.Flags().StringVarP(&listFlags.export, "export", "e", "", "Also write the listed strategies to this fixture file")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	status, err := parseStatus(listFlags.status)
	if err != nil {
		return err
	}

	fixture, err := catalog.LoadFixture(cfg.Fixture)
	if err != nil {
		return err
	}
	items, err := fixture.List(cmd.Context())
	if err != nil {
		return err
	}
	if status != "" {
		items = catalog.FilterStatus(items, status)
	}

	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No strategies found.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(items))

	if listFlags.export != "" {
		if err := catalog.WriteFixture(listFlags.export, items); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d strategies to %s\n", len(items), listFlags.export)
	}
	return nil
}

// parseStatus accepts a status name in any case. Empty means no filter.
func parseStatus(s string) (strategy.Status, error) {
	if s == "" {
		return "", nil
	}
	status := strategy.StatusFromString(s)
	if !strings.EqualFold(status.String(), s) {
		return "", fmt.Errorf("invalid status %q (must be Draft, Submitted, or Active)", s)
	}
	return status, nil
}

// renderTable lays the strategies out as a bordered table.
func renderTable(items []strategy.Stored) string {
	th := theme.Current()
	header := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Primary)).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgBase)).Padding(0, 1)

	rows := make([][]string, 0, len(items))
	for _, s := range items {
		rows = append(rows, []string{strconv.Itoa(s.ID), s.Name, s.Slug, s.Status.String(), s.CreatedAt, s.Description})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(th.BorderMuted))).
		Headers("ID", "NAME", "SLUG", "STATUS", "CREATED", "DESCRIPTION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return t.Render()
}
