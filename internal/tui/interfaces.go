package tui

import (
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/tradingstudio/internal/strategy"
)

// Drawable components render to a screen rectangle
type Drawable interface {
	Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor
}

// Updateable components handle messages
type Updateable interface {
	Update(tea.Msg) tea.Cmd
}

// Component combines Drawable and Updateable
type Component interface {
	Drawable
	Updateable
}

// Sizable components track their dimensions
type Sizable interface {
	SetSize(width, height int)
}

// Stateful components receive the catalog's strategies
type Stateful interface {
	SetStrategies(items []strategy.Stored)
}

// FullComponent combines Drawable, Updateable, Sizable, and Stateful
type FullComponent interface {
	Component
	Sizable
	Stateful
}
