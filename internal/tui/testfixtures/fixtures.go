package testfixtures

import (
	"time"

	"github.com/mark3labs/tradingstudio/internal/strategy"
)

// FixedTime is the clock used by mocks so dates in rendered output are stable.
var FixedTime = time.Date(2025, 3, 20, 9, 30, 0, 0, time.UTC)

// FixedDate is FixedTime in strategy.DateLayout.
const FixedDate = "2025-03-20"

// SampleStrategies returns one strategy in each status, newest first.
func SampleStrategies() []strategy.Stored {
	return []strategy.Stored{
		{
			ID:          3,
			Name:        "Breakout Scanner",
			Slug:        "breakout-scanner",
			Status:      strategy.StatusDraft,
			CreatedAt:   "2025-03-12",
			Description: "Scan stocks for range breakouts on rising volume",
		},
		{
			ID:          2,
			Name:        "Mean Reversion",
			Slug:        "mean-reversion",
			Status:      strategy.StatusSubmitted,
			CreatedAt:   "2025-03-08",
			Description: "Fade moves beyond two standard deviations",
		},
		{
			ID:          1,
			Name:        "Trend Follower",
			Slug:        "trend-follower",
			Status:      strategy.StatusActive,
			CreatedAt:   "2025-03-01",
			Description: "Ride the 50 EMA with a trailing stop",
		},
	}
}

// ManyStrategies returns n strategies with descending IDs, for scrolling tests.
func ManyStrategies(n int) []strategy.Stored {
	items := make([]strategy.Stored, 0, n)
	for i := n; i >= 1; i-- {
		s := strategy.Stored{
			ID:        i,
			Name:      "Strategy " + string(rune('A'+(i-1)%26)),
			Status:    strategy.StatusDraft,
			CreatedAt: FixedTime.AddDate(0, 0, -i).Format(strategy.DateLayout),
		}
		_ = s.Normalize()
		items = append(items, s)
	}
	return items
}

// CompletedDraft returns a draft that passes validation on every step.
func CompletedDraft(name string) strategy.Draft {
	return strategy.Draft{
		Scan: strategy.Scan{Exchange: "stocks", Instrument: "I1", Indicators: []string{"rsi"}},
		Buy:  strategy.Buy{EntryType: "market", PriceLevel: "100"},
		Sell: strategy.Sell{ExitType: "takeProfit", ProfitTarget: "110"},
		Simulation: strategy.Simulation{
			Name:           name,
			InitialCapital: "10000",
		},
	}
}
