// Package wizard renders the strategy creation wizard on top of draft.Controller.
package wizard

import (
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/tradingstudio/internal/draft"
	"github.com/mark3labs/tradingstudio/internal/logger"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/mark3labs/tradingstudio/internal/tui/theme"
)

// Title is shown above the wizard.
const Title = "Create Trading Strategy"

// CreatedMsg is sent once, when Advance succeeds on the last step.
type CreatedMsg struct {
	Draft strategy.Draft
}

// CancelledMsg is sent when the user leaves the wizard from the first step.
type CancelledMsg struct{}

type focusArea int

const (
	focusForm focusArea = iota
	focusButtons
)

const (
	buttonBack = 0
	buttonNext = 1
)

// WizardModel is the Bubbletea component for the four-step wizard.
// Every field edit goes through Controller.SetField, Next through Advance
// and Back through Retreat.
type WizardModel struct {
	ctrl   *draft.Controller
	forms  []*StepForm
	area   focusArea
	button int
	width  int
	height int

	created *strategy.Draft
	emitted bool

	editorTmp string
}

// New creates a wizard on a fresh draft.
func New() *WizardModel {
	return NewWithDraft(strategy.Draft{})
}

// NewWithDraft creates a wizard prefilled from d.
func NewWithDraft(d strategy.Draft) *WizardModel {
	m := &WizardModel{width: 80, height: 30}
	m.ctrl = draft.New(
		draft.WithDraft(d),
		draft.WithOnCreated(func(done strategy.Draft) {
			m.created = &done
		}),
	)

	m.forms = make([]*StepForm, 0, len(strategy.Sections))
	for _, section := range strategy.Sections {
		m.forms = append(m.forms, NewStepForm(section, d, m.setField))
	}
	return m
}

func (m *WizardModel) setField(section strategy.Section, field strategy.Field, value any) {
	if err := m.ctrl.SetField(section, field, value); err != nil {
		logger.Error("Wizard rejected edit of %s: %v", field, err)
	}
}

// Controller exposes the underlying state machine.
func (m *WizardModel) Controller() *draft.Controller {
	return m.ctrl
}

// Init focuses the first field.
func (m *WizardModel) Init() tea.Cmd {
	return m.currentForm().Focus()
}

func (m *WizardModel) currentForm() *StepForm {
	return m.forms[m.ctrl.Step()]
}

// SetSize updates the dimensions available to the wizard.
func (m *WizardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	for _, f := range m.forms {
		f.SetWidth(m.contentWidth())
	}
}

func (m *WizardModel) contentWidth() int {
	return max(40, min(m.width-8, 90))
}

// Update handles messages for the wizard.
func (m *WizardModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case TabExitForwardMsg:
		m.focusButtons(buttonNext)
		return nil

	case TabExitBackwardMsg:
		if m.ctrl.Step() > 0 {
			m.focusButtons(buttonBack)
		} else {
			m.focusButtons(buttonNext)
		}
		return nil

	case FilterEditedMsg:
		return m.handleFilterEdited(msg)
	}

	if m.area == focusForm {
		return m.currentForm().Update(msg)
	}
	return nil
}

func (m *WizardModel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if m.ctrl.Step() == 0 {
			return func() tea.Msg { return CancelledMsg{} }
		}
		return m.back()
	case "ctrl+e":
		if m.ctrl.Section() == strategy.SectionScanner {
			return m.openFilterEditor()
		}
		return nil
	case "ctrl+n":
		return m.next()
	}

	if m.area == focusButtons {
		switch msg.String() {
		case "enter", "space":
			if m.button == buttonBack {
				return m.back()
			}
			return m.next()
		case "left", "right", "h", "l":
			if m.button == buttonNext && m.ctrl.Step() > 0 {
				m.button = buttonBack
			} else {
				m.button = buttonNext
			}
		case "tab", "down":
			m.area = focusForm
			return m.currentForm().Focus()
		case "shift+tab", "up":
			m.area = focusForm
			return m.currentForm().FocusLast()
		}
		return nil
	}

	if msg.String() == "enter" {
		return m.next()
	}
	return m.currentForm().Update(msg)
}

func (m *WizardModel) focusButtons(button int) {
	m.currentForm().Blur()
	m.area = focusButtons
	m.button = button
}

// next advances the controller. On failure focus jumps to the first
// field with an error.
func (m *WizardModel) next() tea.Cmd {
	form := m.currentForm()
	if !m.ctrl.Advance() {
		m.area = focusForm
		errs := m.ctrl.Errors()
		for _, spec := range strategy.Fields(form.Section()) {
			if _, ok := errs[spec.Field]; ok {
				return form.FocusOn(spec.Field)
			}
		}
		return form.Focus()
	}

	if m.ctrl.Completed() {
		if m.emitted || m.created == nil {
			return nil
		}
		m.emitted = true
		done := *m.created
		return func() tea.Msg { return CreatedMsg{Draft: done} }
	}

	form.Blur()
	m.area = focusForm
	return m.currentForm().Focus()
}

func (m *WizardModel) back() tea.Cmd {
	if m.ctrl.Step() == 0 {
		return nil
	}
	m.currentForm().Blur()
	m.ctrl.Retreat()
	m.area = focusForm
	return m.currentForm().Focus()
}

// View renders the wizard.
func (m *WizardModel) View() string {
	s := theme.Current().S()
	width := m.contentWidth()
	step := m.ctrl.Step()

	var sections []string
	sections = append(sections, s.StepTitle.Render(Title))
	sections = append(sections, m.renderProgress(width))
	sections = append(sections, m.renderStepLabels())
	sections = append(sections, "")

	card := s.CardTitle.Render(fmt.Sprintf("Step %d: %s", step+1, m.ctrl.StepName())) +
		"\n\n" + m.currentForm().View(m.ctrl.Errors())
	sections = append(sections, s.Card.Width(width).Render(card))
	sections = append(sections, "")

	nextLabel := LabelNext
	if m.ctrl.IsLast() {
		nextLabel = LabelCreate
	}
	focused := -1
	if m.area == focusButtons {
		focused = m.button
	}
	bar := NewButtonBar(CreateBackNextButtons(step > 0, nextLabel, focused))
	bar.SetWidth(width)
	sections = append(sections, bar.Render())
	sections = append(sections, m.renderHints())

	return strings.Join(sections, "\n")
}

// renderProgress draws a bar filled to (step+1)/4.
func (m *WizardModel) renderProgress(width int) string {
	s := theme.Current().S()
	pct := m.ctrl.Progress()
	label := fmt.Sprintf(" %3.0f%%", pct)
	barWidth := max(10, width-lipgloss.Width(label))
	filled := int(math.Round(pct / 100 * float64(barWidth)))

	return s.ProgressFull.Render(strings.Repeat("█", filled)) +
		s.ProgressEmpty.Render(strings.Repeat("░", barWidth-filled)) +
		s.Muted.Render(label)
}

// renderStepLabels highlights every step up to the current one.
func (m *WizardModel) renderStepLabels() string {
	s := theme.Current().S()
	step := m.ctrl.Step()
	labels := make([]string, 0, len(strategy.Sections))
	for i, section := range strategy.Sections {
		switch {
		case i < step:
			labels = append(labels, s.StepDone.Render("✓ "+section.Title()))
		case i == step:
			labels = append(labels, s.StepCurrent.Render("● "+section.Title()))
		default:
			labels = append(labels, s.StepPending.Render("○ "+section.Title()))
		}
	}
	return strings.Join(labels, s.StepPending.Render("  ─  "))
}

func (m *WizardModel) renderHints() string {
	pairs := []string{
		"tab/↑↓", "navigate",
		"←→", "choose",
		"space", "toggle",
		"enter", "next",
	}
	if m.ctrl.Section() == strategy.SectionScanner {
		pairs = append(pairs, "ctrl+e", "edit filter", "esc", "cancel")
	} else {
		pairs = append(pairs, "esc", "back")
	}
	return renderHintBar(pairs...)
}
