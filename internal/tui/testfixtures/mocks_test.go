package testfixtures

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mark3labs/tradingstudio/internal/catalog"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/stretchr/testify/require"
)

func TestMockCatalog_List(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cat := NewMockCatalog(SampleStrategies()...)

	items, err := cat.List(ctx)
	require.NoError(t, err)
	require.Equal(t, SampleStrategies(), items)
	require.Equal(t, 1, cat.ListCalls())

	items[0].Name = "changed"
	again, err := cat.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Breakout Scanner", again[0].Name, "List returns a copy")
}

func TestMockCatalog_ListError(t *testing.T) {
	t.Parallel()

	cat := NewMockCatalog()
	cat.ListErr = errors.New("list failed")

	items, err := cat.List(context.Background())
	require.EqualError(t, err, "list failed")
	require.Nil(t, items)
}

func TestMockCatalog_Record(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cat := NewMockCatalog(SampleStrategies()...)

	stored, err := cat.Record(ctx, CompletedDraft("Gap Fill"), strategy.StatusSubmitted)
	require.NoError(t, err)
	require.Equal(t, 4, stored.ID)
	require.Equal(t, "gap-fill", stored.Slug)
	require.Equal(t, strategy.StatusSubmitted, stored.Status)
	require.Equal(t, FixedDate, stored.CreatedAt)
	require.Len(t, cat.Recorded(), 1)

	items, err := cat.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)
	require.Equal(t, stored, items[0])
}

func TestMockCatalog_RecordError(t *testing.T) {
	t.Parallel()

	cat := NewMockCatalog()
	cat.RecordErr = errors.New("disk full")

	_, err := cat.Record(context.Background(), CompletedDraft("Gap Fill"), strategy.StatusDraft)
	require.EqualError(t, err, "disk full")
	require.Len(t, cat.Recorded(), 1, "failed calls are still recorded")
	require.Empty(t, cat.Items)
}

func TestMockCatalog_Copy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cat := NewMockCatalog(SampleStrategies()...)

	dup, err := cat.Copy(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 4, dup.ID)
	require.Equal(t, "Trend Follower (copy)", dup.Name)
	require.Equal(t, "trend-follower-copy", dup.Slug)
	require.Equal(t, strategy.StatusDraft, dup.Status)
	require.Equal(t, []int{1}, cat.Copied())

	_, err = cat.Copy(ctx, 42)
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestMockCatalog_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cat := NewMockCatalog()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = cat.Record(ctx, CompletedDraft("Parallel"), strategy.StatusDraft)
			_, _ = cat.List(ctx)
		}()
	}
	wg.Wait()

	require.Len(t, cat.Recorded(), 10)
	require.Equal(t, 10, cat.ListCalls())
	items, err := cat.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 10)
}

func TestCompletedDraftValidates(t *testing.T) {
	t.Parallel()

	d := CompletedDraft("Gap Fill")
	for step, section := range strategy.Sections {
		require.Empty(t, d.Validate(step), section.Title())
	}
}

func TestManyStrategies(t *testing.T) {
	t.Parallel()

	items := ManyStrategies(5)
	require.Len(t, items, 5)
	require.Equal(t, 5, items[0].ID)
	require.Equal(t, "strategy-a", items[4].Slug)
}
