// Package testfixtures provides mock implementations and test utilities for TUI testing.
//
// MockCatalog stands in for catalog.Catalog so components can be driven
// without starting the embedded NATS server. It is thread-safe and records
// every call for assertions.
//
// Example usage:
//
//	func TestMyComponent(t *testing.T) {
//	    cat := testfixtures.NewMockCatalog(testfixtures.SampleStrategies()...)
//	    cat.RecordErr = errors.New("disk full")
//
//	    // Use the mock in your test...
//	    require.Equal(t, 1, cat.ListCalls())
//	}
package testfixtures

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/gosimple/slug"
	"github.com/mark3labs/tradingstudio/internal/catalog"
	"github.com/mark3labs/tradingstudio/internal/strategy"
)

// MockCatalog is an in-memory catalog.Catalog.
type MockCatalog struct {
	mu sync.Mutex

	// Items returned from List, newest first.
	Items []strategy.Stored

	// Errors to return from the corresponding calls.
	ListErr   error
	RecordErr error
	CopyErr   error

	recorded  []strategy.Draft
	copied    []int
	listCalls int
}

var _ catalog.Catalog = (*MockCatalog)(nil)

// NewMockCatalog creates a MockCatalog holding items.
func NewMockCatalog(items ...strategy.Stored) *MockCatalog {
	return &MockCatalog{Items: slices.Clone(items)}
}

// List returns the configured items or ListErr.
func (m *MockCatalog) List(ctx context.Context) ([]strategy.Stored, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Items), nil
}

// Record stores d at the top of Items, dated FixedTime.
func (m *MockCatalog) Record(ctx context.Context, d strategy.Draft, status strategy.Status) (strategy.Stored, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.recorded = append(m.recorded, d)
	if m.RecordErr != nil {
		return strategy.Stored{}, m.RecordErr
	}
	stored := strategy.FromDraft(m.nextID(), d, status, FixedTime)
	m.Items = append([]strategy.Stored{stored}, m.Items...)
	return stored, nil
}

// Copy duplicates strategy id as a new draft.
func (m *MockCatalog) Copy(ctx context.Context, id int) (strategy.Stored, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.copied = append(m.copied, id)
	if m.CopyErr != nil {
		return strategy.Stored{}, m.CopyErr
	}
	idx := slices.IndexFunc(m.Items, func(s strategy.Stored) bool { return s.ID == id })
	if idx < 0 {
		return strategy.Stored{}, catalog.NotFoundError{Key: strconv.Itoa(id)}
	}
	dup := m.Items[idx]
	dup.ID = m.nextID()
	dup.Name += " (copy)"
	dup.Slug = slug.Make(dup.Name)
	dup.Status = strategy.StatusDraft
	dup.CreatedAt = FixedTime.Format(strategy.DateLayout)
	m.Items = append([]strategy.Stored{dup}, m.Items...)
	return dup, nil
}

func (m *MockCatalog) nextID() int {
	id := 0
	for _, s := range m.Items {
		id = max(id, s.ID)
	}
	return id + 1
}

// Recorded returns the drafts passed to Record.
func (m *MockCatalog) Recorded() []strategy.Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.recorded)
}

// Copied returns the IDs passed to Copy.
func (m *MockCatalog) Copied() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.copied)
}

// ListCalls returns how many times List was called.
func (m *MockCatalog) ListCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}
