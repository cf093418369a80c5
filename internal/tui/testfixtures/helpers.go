package testfixtures

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Ascii profile keeps rendered output free of escape sequences so
	// assertions can match on plain text.
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Render draws into a canvas of the canonical test size and returns the
// rendered screen as plain text.
func Render(drawFn func(scr uv.Screen, area uv.Rectangle)) string {
	return RenderSize(TestTermWidth, TestTermHeight, drawFn)
}

// RenderSize draws into a canvas of the given size.
func RenderSize(width, height int, drawFn func(scr uv.Screen, area uv.Rectangle)) string {
	canvas := uv.NewScreenBuffer(width, height)
	drawFn(canvas, canvas.Bounds())
	return Plain(canvas.Render())
}

// Plain strips escape sequences from rendered output.
func Plain(rendered string) string {
	return ansi.Strip(rendered)
}

// Lines splits rendered output into lines with trailing spaces removed.
func Lines(rendered string) []string {
	lines := strings.Split(rendered, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
