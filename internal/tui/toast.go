package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/tradingstudio/internal/tui/theme"
)

// toastDuration is how long a toast stays on screen.
const toastDuration = 3 * time.Second

// ToastDismissMsg is sent when the toast should be dismissed.
type ToastDismissMsg struct{}

// ShowToastMsg is sent to show a toast notification.
type ShowToastMsg struct {
	Text  string
	Error bool
}

// Toast is a minimal toast notification component.
// Shows a message in the bottom-right corner that auto-dismisses after 3 seconds.
type Toast struct {
	message   string
	isError   bool
	visible   bool
	dismissAt time.Time
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays a success toast with the given message.
func (t *Toast) Show(msg string) tea.Cmd {
	return t.show(msg, false)
}

// ShowError displays an error toast with the given message.
func (t *Toast) ShowError(msg string) tea.Cmd {
	return t.show(msg, true)
}

func (t *Toast) show(msg string, isError bool) tea.Cmd {
	t.message = msg
	t.isError = isError
	t.visible = true
	t.dismissAt = time.Now().Add(toastDuration)
	return t.dismissCmd()
}

// dismissCmd returns a command that will dismiss the toast after the remaining time.
func (t *Toast) dismissCmd() tea.Cmd {
	remaining := time.Until(t.dismissAt)
	if remaining <= 0 {
		remaining = 1 * time.Millisecond
	}
	return tea.Tick(remaining, func(time.Time) tea.Msg {
		return ToastDismissMsg{}
	})
}

// Update handles messages for the toast component.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ShowToastMsg:
		return t.show(msg.Text, msg.Error)
	case ToastDismissMsg:
		t.visible = false
		t.message = ""
		return nil
	}
	return nil
}

// View renders the toast right-aligned in the given width.
// Returns empty string if toast is not visible.
func (t *Toast) View(width int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	th := theme.Current()
	style := theme.Current().S().Toast
	icon := "✓ "
	if t.isError {
		style = style.BorderForeground(lipgloss.Color(th.Error))
		icon = "✗ "
	}

	content := style.Render(icon + t.message)
	if lipgloss.Width(content) > width-2 {
		content = style.Width(max(10, width-2)).Render(icon + t.message)
	}

	lines := strings.Split(content, "\n")
	pad := max(0, width-lipgloss.Width(content)-1)
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(lines, "\n")
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// GetMessage returns the current toast message (empty if not visible).
func (t *Toast) GetMessage() string {
	if !t.visible {
		return ""
	}
	return t.message
}

// IsError reports whether the visible toast is an error.
func (t *Toast) IsError() bool {
	return t.visible && t.isError
}
