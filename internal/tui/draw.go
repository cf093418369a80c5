package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/tradingstudio/internal/tui/theme"
)

// DrawText renders plain text at a position
func DrawText(scr uv.Screen, area uv.Rectangle, text string) {
	uv.NewStyledString(text).Draw(scr, area)
}

// DrawStyled renders lipgloss-styled content at a position
func DrawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, text string) {
	content := style.Width(area.Dx()).Height(area.Dy()).Render(text)
	uv.NewStyledString(content).Draw(scr, area)
}

// DrawPanel renders a panel with a title header and returns the inner content area.
// The header shows "Title ────────" with a trailing rule line.
// Focus is indicated by the header color.
func DrawPanel(scr uv.Screen, area uv.Rectangle, title string, focused bool) uv.Rectangle {
	headerHeight := 0

	if title != "" {
		headerHeight = 2
		th := theme.Current()
		titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgSubtle)).Bold(true)
		ruleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.BorderMuted))
		if focused {
			titleStyle = titleStyle.Foreground(lipgloss.Color(th.Tertiary))
			ruleStyle = ruleStyle.Foreground(lipgloss.Color(th.BorderFocused))
		}

		styledTitle := titleStyle.Render(title)
		ruleWidth := max(0, area.Dx()-lipgloss.Width(styledTitle)-1)
		headerText := styledTitle + " " + ruleStyle.Render(strings.Repeat("─", ruleWidth))

		titleArea := uv.Rectangle{
			Min: uv.Position{X: area.Min.X, Y: area.Min.Y},
			Max: uv.Position{X: area.Max.X, Y: area.Min.Y + 1},
		}
		uv.NewStyledString(headerText).Draw(scr, titleArea)
	}

	innerHeight := max(0, area.Dy()-headerHeight)
	return uv.Rectangle{
		Min: uv.Position{X: area.Min.X, Y: area.Min.Y + headerHeight},
		Max: uv.Position{X: area.Max.X, Y: area.Min.Y + headerHeight + innerHeight},
	}
}

// DrawVerticalDivider renders a vertical dividing line
func DrawVerticalDivider(scr uv.Screen, area uv.Rectangle, style lipgloss.Style) {
	for i := 0; i < area.Dy(); i++ {
		lineArea := uv.Rectangle{
			Min: uv.Position{X: area.Min.X, Y: area.Min.Y + i},
			Max: uv.Position{X: area.Min.X + 1, Y: area.Min.Y + i + 1},
		}
		uv.NewStyledString(style.Render("│")).Draw(scr, lineArea)
	}
}

// renderHintBar renders "key desc • key desc" pairs.
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}
	s := theme.Current().S()
	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSep.Render("•") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}
