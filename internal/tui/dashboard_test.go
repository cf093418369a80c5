package tui

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/mark3labs/tradingstudio/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyUp    = tea.KeyPressMsg{Code: tea.KeyUp}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestDashboard(items []strategy.Stored) *Dashboard {
	d := NewDashboard(DefaultKeyMap())
	d.SetSize(testfixtures.TestTermWidth, testfixtures.TestTermHeight-3)
	if items != nil {
		d.SetStrategies(items)
	}
	return d
}

func drawDashboard(d *Dashboard) string {
	return testfixtures.Render(func(scr uv.Screen, area uv.Rectangle) {
		d.Draw(scr, area)
	})
}

func TestDashboard_LoadingState(t *testing.T) {
	t.Parallel()

	d := newTestDashboard(nil)
	out := drawDashboard(d)
	assert.Contains(t, out, DashboardTitle)
	assert.Contains(t, out, "Loading strategies...")
}

func TestDashboard_ErrorState(t *testing.T) {
	t.Parallel()

	d := newTestDashboard(nil)
	d.SetError(errors.New("stream unavailable"))
	assert.Contains(t, drawDashboard(d), "✗ Failed to load strategies: stream unavailable")

	d.SetStrategies(testfixtures.SampleStrategies())
	assert.NotContains(t, drawDashboard(d), "Failed to load")
}

func TestDashboard_EmptyState(t *testing.T) {
	t.Parallel()

	d := newTestDashboard([]strategy.Stored{})
	assert.Contains(t, drawDashboard(d), "No strategies yet. Press n to create one.")

	_, ok := d.Selected()
	assert.False(t, ok)
}

func TestDashboard_RendersCards(t *testing.T) {
	t.Parallel()

	d := newTestDashboard(testfixtures.SampleStrategies())
	out := drawDashboard(d)

	for _, s := range testfixtures.SampleStrategies() {
		assert.Contains(t, out, s.Name)
		assert.Contains(t, out, "Created: "+s.CreatedAt)
		assert.Contains(t, out, s.Description)
	}
	assert.Contains(t, out, "Draft")
	assert.Contains(t, out, "Submitted")
	assert.Contains(t, out, "Active")
}

func TestDashboard_CursorNavigation(t *testing.T) {
	t.Parallel()

	d := newTestDashboard(testfixtures.SampleStrategies())

	s, ok := d.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, s.ID)

	d.Update(keyUp)
	s, _ = d.Selected()
	assert.Equal(t, 3, s.ID, "up at the top stays put")

	d.Update(keyDown)
	d.Update(keyRune('j'))
	s, _ = d.Selected()
	assert.Equal(t, 1, s.ID)

	d.Update(keyDown)
	s, _ = d.Selected()
	assert.Equal(t, 1, s.ID, "down at the bottom stays put")

	d.Update(keyRune('k'))
	s, _ = d.Selected()
	assert.Equal(t, 2, s.ID)
}

func TestDashboard_Select(t *testing.T) {
	t.Parallel()

	d := newTestDashboard(testfixtures.SampleStrategies())
	d.Select(1)
	s, _ := d.Selected()
	assert.Equal(t, 1, s.ID)

	d.Select(99)
	s, _ = d.Selected()
	assert.Equal(t, 1, s.ID, "unknown IDs leave the cursor alone")
}

func TestDashboard_CursorStaysInRangeWhenListShrinks(t *testing.T) {
	t.Parallel()

	d := newTestDashboard(testfixtures.SampleStrategies())
	d.Select(1)
	d.SetStrategies(testfixtures.SampleStrategies()[:1])

	s, ok := d.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, s.ID)
}

func TestDashboard_DetailPane(t *testing.T) {
	t.Parallel()

	d := newTestDashboard(testfixtures.SampleStrategies())
	d.Update(keyEnter)
	require.True(t, d.DetailOpen())

	out := drawDashboard(d)
	assert.Contains(t, out, "Details")
	assert.Contains(t, out, "Status:")
	assert.Contains(t, d.hints(), "close")

	d.Update(keyEsc)
	assert.False(t, d.DetailOpen())
	assert.NotContains(t, drawDashboard(d), "Details")

	d.Update(keyEnter)
	d.Update(keyEnter)
	assert.False(t, d.DetailOpen(), "enter toggles the pane")
}

func TestDashboard_DetailNeedsSelection(t *testing.T) {
	t.Parallel()

	d := newTestDashboard([]strategy.Stored{})
	d.Update(keyEnter)
	assert.False(t, d.DetailOpen())
}

func TestDashboard_ScrollsLongLists(t *testing.T) {
	t.Parallel()

	d := NewDashboard(DefaultKeyMap())
	d.SetSize(80, 2+cardHeight*3)
	d.SetStrategies(testfixtures.ManyStrategies(10))

	out := testfixtures.RenderSize(80, 2+cardHeight*3+1, func(scr uv.Screen, area uv.Rectangle) {
		d.Draw(scr, area)
	})
	assert.Contains(t, out, "1–3 of 10")

	for range 5 {
		d.Update(keyDown)
	}
	assert.Equal(t, 3, d.offset)
	assert.Contains(t, d.renderList(80), "4–6 of 10")
}

func TestDashboard_SpinnerStopsAfterLoad(t *testing.T) {
	t.Parallel()

	d := newTestDashboard(nil)
	require.NotNil(t, d.SetLoading())

	d.SetStrategies(testfixtures.SampleStrategies())
	assert.Nil(t, d.Update(d.spinner.Tick()))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
