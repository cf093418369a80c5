package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, seed Source) *Store {
	t.Helper()

	store, err := Open(context.Background(), seed)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	store.now = func() time.Time { return time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC) }
	return store
}

func completedDraft(name string) strategy.Draft {
	return strategy.Draft{
		Scan:       strategy.Scan{Exchange: "crypto", Instrument: "I3"},
		Buy:        strategy.Buy{EntryType: "limit", PriceLevel: "42000"},
		Sell:       strategy.Sell{ExitType: "trailingStop", ProfitTarget: "45000"},
		Simulation: strategy.Simulation{Name: name, InitialCapital: "5000"},
	}
}

func TestStore_SeedsFromFixture(t *testing.T) {
	store := openTestStore(t, Demo())

	items, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Moving Average Crossover", items[0].Name, "newest fixture entry first")
	assert.Equal(t, "Fibonacci Retracement", items[3].Name)
}

func TestStore_EmptySeed(t *testing.T) {
	store := openTestStore(t, nil)

	items, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_Record(t *testing.T) {
	store := openTestStore(t, Demo())
	ctx := context.Background()

	stored, err := store.Record(ctx, completedDraft("Breakout Hunter"), strategy.StatusDraft)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.ID)
	assert.Equal(t, "breakout-hunter", stored.Slug)
	assert.Equal(t, "2025-03-20", stored.CreatedAt)
	assert.Equal(t, strategy.StatusDraft, stored.Status)
	assert.Contains(t, stored.Description, "Limit Order entry at 42000")

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, stored, items[0], "created strategy is newest")

	second, err := store.Record(ctx, completedDraft("Second"), strategy.StatusSubmitted)
	require.NoError(t, err)
	assert.Equal(t, 6, second.ID)

	found, err := FindBySlug(ctx, store, "second")
	require.NoError(t, err)
	assert.Equal(t, strategy.StatusSubmitted, found.Status)
}

func TestStore_RecordRejectsIncompleteDraft(t *testing.T) {
	store := openTestStore(t, Demo())

	_, err := store.Record(context.Background(), strategy.Draft{}, strategy.StatusDraft)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1 (Scan) is missing exchange, instrument")

	unnamed := completedDraft("")
	_, err = store.Record(context.Background(), unnamed, strategy.StatusDraft)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 4 (Simulation) is missing name")

	items, _ := store.List(context.Background())
	assert.Len(t, items, 4)
}

func TestStore_RecordBlankNameUsesPlaceholder(t *testing.T) {
	store := openTestStore(t, Demo())
	ctx := context.Background()

	// Whitespace passes the wizard's required check, so it must record too.
	d := completedDraft("   ")
	require.Empty(t, d.Validate(strategy.StepCount-1))

	stored, err := store.Record(ctx, d, strategy.StatusDraft)
	require.NoError(t, err)
	assert.Equal(t, strategy.UntitledName, stored.Name)
	assert.Equal(t, "untitled-strategy", stored.Slug)

	found, err := FindBySlug(ctx, store, "untitled-strategy")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, found.ID)
}

func TestStore_Copy(t *testing.T) {
	store := openTestStore(t, Demo())
	ctx := context.Background()

	dup, err := store.Copy(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, dup.ID)
	assert.Equal(t, "RSI Reversal Strategy (copy)", dup.Name)
	assert.Equal(t, "rsi-reversal-strategy-copy", dup.Slug)
	assert.Equal(t, strategy.StatusDraft, dup.Status)
	assert.Equal(t, "Buy when RSI crosses above 30, sell when crosses below 70", dup.Description)

	_, err = store.Copy(ctx, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_StateIsScopedToStore(t *testing.T) {
	ctx := context.Background()

	first := openTestStore(t, Demo())
	_, err := first.Record(ctx, completedDraft("Ephemeral"), strategy.StatusDraft)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := openTestStore(t, Demo())
	items, err := second.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 4, "nothing recorded by a previous session survives")
}

func TestState_ApplyIgnoresOtherTypes(t *testing.T) {
	t.Parallel()

	var st State
	st.Apply(Event{Type: "other", Action: ActionCreate, Data: strategy.Stored{ID: 1}})
	st.Apply(Event{Type: "strategy", Action: "unknown", Data: strategy.Stored{ID: 2}})
	st.Apply(Event{Type: "strategy", Action: ActionSeed, Data: strategy.Stored{ID: 3}})

	require.Len(t, st.Strategies, 1)
	assert.Equal(t, 3, st.Strategies[0].ID)
}
