package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/tradingstudio/internal/config"
	"github.com/spf13/cobra"
)

var configFlags struct {
	global bool
	force  bool
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the tradingstudio configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a tradingstudio configuration file",
	Long: `Create a tradingstudio configuration file with sensible defaults.

By default, creates ./tradingstudio.yml in the current directory.
Use --global to create ~/.config/tradingstudio/tradingstudio.yml instead.`,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configFlags.global, "global", "g", false, "Create the global config instead of a project-local one")
	configInitCmd.Flags().BoolVarP(&configFlags.force, "force", "f", false, "Overwrite existing config file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	targetPath := config.ProjectPath()
	if configFlags.global {
		targetPath = config.GlobalPath()
	}

	if !configFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	var err error
	if configFlags.global {
		err = config.WriteGlobal(config.Default())
	} else {
		err = config.WriteProject(config.Default())
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to: %s\n\n", targetPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'tradingstudio' to get started.")
	return nil
}

// fileExists checks if a file exists (helper for config init).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
