package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/tradingstudio/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// Button represents a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling.
type ButtonBar struct {
	buttons []Button
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Render renders the buttons centered in the bar's width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()
	var rendered []string
	for _, btn := range b.buttons {
		var style lipgloss.Style
		switch btn.State {
		case ButtonDisabled:
			style = s.ButtonDisabled
		case ButtonFocused:
			style = s.ButtonFocused
		default:
			style = s.ButtonNormal
		}
		rendered = append(rendered, style.MarginLeft(1).MarginRight(1).Render(btn.Label))
	}

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}

// Button labels
const (
	LabelBack   = "← Back"
	LabelNext   = "Next →"
	LabelCreate = "Create Strategy ✓"
)

// CreateBackNextButtons creates the Back/Next pair for a wizard step.
// focused is the index of the focused button, or -1 when focus is on the form.
func CreateBackNextButtons(backEnabled bool, nextLabel string, focused int) []Button {
	buttons := []Button{
		{Label: LabelBack, State: ButtonNormal},
		{Label: nextLabel, State: ButtonNormal},
	}
	if !backEnabled {
		buttons[0].State = ButtonDisabled
	}
	if focused >= 0 && focused < len(buttons) && buttons[focused].State != ButtonDisabled {
		buttons[focused].State = ButtonFocused
	}
	return buttons
}
