package main

import (
	"testing"

	"github.com/mark3labs/tradingstudio/internal/catalog"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    strategy.Status
		wantErr bool
	}{
		{"", "", false},
		{"active", strategy.StatusActive, false},
		{"Submitted", strategy.StatusSubmitted, false},
		{"DRAFT", strategy.StatusDraft, false},
		{"archived", "", true},
	}
	for _, tt := range tests {
		got, err := parseStatus(tt.input)
		if tt.wantErr {
			require.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	out := renderTable(catalog.DemoStrategies())
	for _, want := range []string{"NAME", "SLUG", "STATUS", "Moving Average Crossover", "moving-average-crossover", "RSI Reversal Strategy", "2025-03-15", "Submitted"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderLogo(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, renderLogo())
}
