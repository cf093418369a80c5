// Package catalog provides the strategies listed on the dashboard.
//
// The dashboard reads through the Source interface so the list can be a fixed
// fixture in tests and a session-scoped event store in the application.
package catalog

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strconv"

	"github.com/mark3labs/tradingstudio/internal/strategy"
)

// ErrNotFound is returned when a strategy lookup fails.
var ErrNotFound = errors.New("strategy not found")

// NotFoundError wraps ErrNotFound with the key that was looked up.
type NotFoundError struct {
	Key string
}

func (e NotFoundError) Error() string {
	return "strategy not found: " + e.Key
}

// Unwrap lets errors.Is match ErrNotFound.
func (e NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Source lists stored strategies.
type Source interface {
	List(ctx context.Context) ([]strategy.Stored, error)
}

// Recorder adds strategies to a catalog.
type Recorder interface {
	// Record stores a strategy built from a completed draft.
	Record(ctx context.Context, d strategy.Draft, status strategy.Status) (strategy.Stored, error)
	// Copy stores a duplicate of an existing strategy as a new draft.
	Copy(ctx context.Context, id int) (strategy.Stored, error)
}

// Catalog is a Source that can also record new strategies.
type Catalog interface {
	Source
	Recorder
}

// Find returns the strategy with the given ID.
func Find(ctx context.Context, src Source, id int) (strategy.Stored, error) {
	items, err := src.List(ctx)
	if err != nil {
		return strategy.Stored{}, err
	}
	for _, s := range items {
		if s.ID == id {
			return s, nil
		}
	}
	return strategy.Stored{}, NotFoundError{Key: strconv.Itoa(id)}
}

// FindBySlug returns the first strategy whose slug matches.
func FindBySlug(ctx context.Context, src Source, slug string) (strategy.Stored, error) {
	items, err := src.List(ctx)
	if err != nil {
		return strategy.Stored{}, err
	}
	for _, s := range items {
		if s.Slug == slug {
			return s, nil
		}
	}
	return strategy.Stored{}, NotFoundError{Key: slug}
}

// FilterStatus returns the strategies with the given status, or all of them
// when status is empty.
func FilterStatus(items []strategy.Stored, status strategy.Status) []strategy.Stored {
	if status == "" {
		return items
	}
	var out []strategy.Stored
	for _, s := range items {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out
}

// sortNewestFirst orders by creation date descending, then by ID descending.
func sortNewestFirst(items []strategy.Stored) {
	slices.SortStableFunc(items, func(a, b strategy.Stored) int {
		if c := cmp.Compare(b.CreatedAt, a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

// nextID returns one more than the highest ID in items.
func nextID(items []strategy.Stored) int {
	maxID := 0
	for _, s := range items {
		maxID = max(maxID, s.ID)
	}
	return maxID + 1
}
