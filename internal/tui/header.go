package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/mark3labs/tradingstudio/internal/tui/theme"
)

// Brand is the application name shown in the header.
const Brand = "TradingStudio"

// View identifies a top-level screen.
type View int

const (
	ViewDashboard View = iota
	ViewCreate
)

// Title returns the tab label of the view.
func (v View) Title() string {
	switch v {
	case ViewCreate:
		return "Create"
	default:
		return "Dashboard"
	}
}

var views = []View{ViewDashboard, ViewCreate}

// Header renders the top bar with the brand and the navigation tabs.
type Header struct {
	width  int
	active View
	count  int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{}
}

// Draw renders the header to the screen at the given area.
// Returns nil cursor since header is non-interactive.
func (h *Header) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if area.Dy() < 1 {
		return nil
	}
	DrawStyled(scr, area, theme.Current().S().HeaderBar, h.render(area.Dx()))
	return nil
}

// render combines the brand and tabs on the left with the strategy count on the right.
func (h *Header) render(totalWidth int) string {
	s := theme.Current().S()

	tabs := make([]string, 0, len(views))
	for i, v := range views {
		label := string(rune('1'+i)) + " " + v.Title()
		if v == h.active {
			tabs = append(tabs, s.TabActive.Render(label))
		} else {
			tabs = append(tabs, s.TabInactive.Render(label))
		}
	}
	left := s.HeaderTitle.Render(Brand) + "  " + strings.Join(tabs, " ")

	right := s.Muted.Render(pluralize(h.count, "strategy", "strategies"))

	padding := max(1, totalWidth-lipgloss.Width(left)-lipgloss.Width(right)-2)
	return left + strings.Repeat(" ", padding) + right
}

// SetSize updates the header width.
func (h *Header) SetSize(width, height int) {
	h.width = width
}

// SetActive marks the active tab.
func (h *Header) SetActive(v View) {
	h.active = v
}

// SetStrategies updates the strategy count.
func (h *Header) SetStrategies(items []strategy.Stored) {
	h.count = len(items)
}

// Update handles messages. Header is static, so this is a no-op.
func (h *Header) Update(msg tea.Msg) tea.Cmd {
	return nil
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// Compile-time interface checks
var _ FullComponent = (*Header)(nil)
