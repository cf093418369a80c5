// Package state remembers UI preferences between runs. Strategies themselves
// are never stored here.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/tradingstudio/internal/logger"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the UI state file inside the state directory.
const FileName = "ui-state.yml"

// UIState holds persistent UI preferences that carry across sessions.
type UIState struct {
	Dashboard DashboardState `yaml:"dashboard"`
}

// DashboardState holds dashboard layout preferences.
type DashboardState struct {
	DetailOpen bool `yaml:"detail_open"`
}

// DefaultUIState returns the state used on first run.
func DefaultUIState() *UIState {
	return &UIState{}
}

// Load reads the UI state from dir. Returns defaults if the file doesn't
// exist or cannot be parsed.
func Load(dir string) *UIState {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read UI state file: %v", err)
		}
		return DefaultUIState()
	}

	var st UIState
	if err := yaml.Unmarshal(data, &st); err != nil {
		logger.Warn("Failed to parse UI state: %v", err)
		return DefaultUIState()
	}
	return &st
}

// Save writes the UI state to dir, creating it if needed.
func Save(dir string, st *UIState) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshaling UI state: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing UI state file: %w", err)
	}

	logger.Debug("UI state saved to %s", path)
	return nil
}
