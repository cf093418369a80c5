package wizard

import (
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/tradingstudio/internal/logger"
	"github.com/mark3labs/tradingstudio/internal/strategy"
)

// FilterEditedMsg carries the custom filter expression back from $EDITOR.
type FilterEditedMsg struct {
	Content string
	Err     error
}

// openFilterEditor launches the user's $EDITOR on the current custom filter.
func (m *WizardModel) openFilterEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "tradingstudio_filter_*.txt")
	if err != nil {
		logger.Warn("Cannot create filter temp file: %v", err)
		return nil
	}

	current := m.ctrl.Draft().Scan.CustomFilter
	if _, err := tmpfile.WriteString(current); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()
	m.editorTmp = tmpfile.Name()

	cmd, err := editor.Command("tradingstudio", tmpfile.Name())
	if err != nil {
		logger.Warn("Cannot start editor: %v", err)
		m.cleanupEditor()
		return nil
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return FilterEditedMsg{Err: err}
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return FilterEditedMsg{Err: err}
		}
		return FilterEditedMsg{Content: string(content)}
	})
}

func (m *WizardModel) handleFilterEdited(msg FilterEditedMsg) tea.Cmd {
	m.cleanupEditor()
	if msg.Err != nil {
		logger.Warn("Filter editor failed: %v", msg.Err)
		return nil
	}
	// Editors append a trailing newline; the expression is a single line.
	value := strings.Join(strings.Fields(msg.Content), " ")
	m.forms[0].SetText(strategy.FieldCustomFilter, value)
	return nil
}

func (m *WizardModel) cleanupEditor() {
	if m.editorTmp != "" {
		_ = os.Remove(m.editorTmp)
		m.editorTmp = ""
	}
}
