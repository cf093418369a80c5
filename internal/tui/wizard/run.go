package wizard

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/tradingstudio/internal/strategy"
)

// ErrCancelled is returned by Run when the user leaves without finishing.
var ErrCancelled = errors.New("wizard cancelled by user")

// standaloneModel hosts a WizardModel as a full-screen program.
type standaloneModel struct {
	wizard    *WizardModel
	result    *strategy.Draft
	cancelled bool
	width     int
	height    int
}

// Run is the entry point for `tradingstudio create`.
// It runs the wizard as its own program and returns the finished draft.
func Run() (*strategy.Draft, error) {
	m := &standaloneModel{wizard: New()}

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wm, ok := finalModel.(*standaloneModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if wm.cancelled || wm.result == nil {
		return nil, ErrCancelled
	}
	return wm.result, nil
}

func (m *standaloneModel) Init() tea.Cmd {
	return m.wizard.Init()
}

func (m *standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.wizard.SetSize(msg.Width, msg.Height)
		return m, nil
	case CreatedMsg:
		d := msg.Draft
		m.result = &d
		return m, tea.Quit
	case CancelledMsg:
		m.cancelled = true
		return m, tea.Quit
	}
	return m, m.wizard.Update(msg)
}

func (m *standaloneModel) View() tea.View {
	var view tea.View
	view.AltScreen = true

	content := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.wizard.View())

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}
