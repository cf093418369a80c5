package catalog

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/mark3labs/tradingstudio/internal/logger"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"gopkg.in/yaml.v3"
)

// Fixture is a fixed, read-only list of strategies.
type Fixture struct {
	items []strategy.Stored
}

// NewFixture creates a fixture from the given strategies. Each entry is
// normalized (slug derived, status defaulted) and IDs must be unique.
func NewFixture(items []strategy.Stored) (*Fixture, error) {
	seen := make(map[int]bool, len(items))
	out := make([]strategy.Stored, 0, len(items))
	for i, s := range items {
		if s.ID == 0 {
			s.ID = i + 1
		}
		if err := s.Normalize(); err != nil {
			return nil, err
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate strategy id %d", s.ID)
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return &Fixture{items: out}, nil
}

// List returns a copy of the fixture's strategies.
func (f *Fixture) List(ctx context.Context) ([]strategy.Stored, error) {
	return slices.Clone(f.items), nil
}

// DemoStrategies returns the example strategies shown when no fixture file
// is configured.
func DemoStrategies() []strategy.Stored {
	return []strategy.Stored{
		{
			ID:          1,
			Name:        "Moving Average Crossover",
			Status:      strategy.StatusActive,
			CreatedAt:   "2025-03-15",
			Description: "Strategy based on 50 and 200 EMA crossover",
		},
		{
			ID:          2,
			Name:        "RSI Reversal Strategy",
			Status:      strategy.StatusSubmitted,
			CreatedAt:   "2025-03-10",
			Description: "Buy when RSI crosses above 30, sell when crosses below 70",
		},
		{
			ID:          3,
			Name:        "Bollinger Band Bounce",
			Status:      strategy.StatusDraft,
			CreatedAt:   "2025-03-05",
			Description: "Enter when price touches lower band with confirmation",
		},
		{
			ID:          4,
			Name:        "Fibonacci Retracement",
			Status:      strategy.StatusActive,
			CreatedAt:   "2025-03-01",
			Description: "Target key Fibonacci levels for entries and exits",
		},
	}
}

// Demo returns a fixture holding DemoStrategies.
func Demo() *Fixture {
	f, err := NewFixture(DemoStrategies())
	if err != nil {
		// The demo data is static; a failure here is a programming error.
		panic(err)
	}
	return f
}

// fixtureFile is the on-disk shape of a fixture.
type fixtureFile struct {
	Strategies []strategy.Stored `yaml:"strategies"`
}

// LoadFixture reads a YAML fixture file. An empty path yields the demo fixture.
func LoadFixture(path string) (*Fixture, error) {
	if path == "" {
		return Demo(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}

	f, err := NewFixture(file.Strategies)
	if err != nil {
		return nil, fmt.Errorf("invalid fixture %s: %w", path, err)
	}

	logger.Debug("Loaded %d strategies from fixture %s", len(f.items), path)
	return f, nil
}

// WriteFixture writes strategies to path in the format LoadFixture reads.
func WriteFixture(path string, items []strategy.Stored) error {
	data, err := yaml.Marshal(fixtureFile{Strategies: items})
	if err != nil {
		return fmt.Errorf("marshaling fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	return nil
}
