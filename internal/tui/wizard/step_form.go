package wizard

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/mark3labs/tradingstudio/internal/tui/theme"
)

// ChangeFunc receives every edit made in a step form.
type ChangeFunc func(section strategy.Section, field strategy.Field, value any)

// StepForm renders and edits the fields of one wizard section.
type StepForm struct {
	section  strategy.Section
	widgets  []fieldWidget
	focus    int
	focused  bool
	width    int
	onChange ChangeFunc
}

// NewStepForm creates the form for section, initialised from d.
func NewStepForm(section strategy.Section, d strategy.Draft, onChange ChangeFunc) *StepForm {
	specs := strategy.Fields(section)
	widgets := make([]fieldWidget, 0, len(specs))
	for _, spec := range specs {
		widgets = append(widgets, newFieldWidget(spec, d))
	}
	if onChange == nil {
		onChange = func(strategy.Section, strategy.Field, any) {}
	}
	return &StepForm{
		section:  section,
		widgets:  widgets,
		width:    60,
		onChange: onChange,
	}
}

// Section returns the section this form edits.
func (f *StepForm) Section() strategy.Section {
	return f.section
}

// FocusedField returns the field that has focus.
func (f *StepForm) FocusedField() strategy.Field {
	return f.widgets[f.focus].Spec().Field
}

// Focus gives focus to the first field.
func (f *StepForm) Focus() tea.Cmd {
	return f.FocusField(0)
}

// FocusLast gives focus to the last field.
func (f *StepForm) FocusLast() tea.Cmd {
	return f.FocusField(len(f.widgets) - 1)
}

// FocusField gives focus to the field at index i.
func (f *StepForm) FocusField(i int) tea.Cmd {
	f.widgets[f.focus].Blur()
	f.focus = max(0, min(i, len(f.widgets)-1))
	f.focused = true
	return f.widgets[f.focus].Focus()
}

// FocusOn gives focus to the named field if it is in this form.
func (f *StepForm) FocusOn(field strategy.Field) tea.Cmd {
	for i, w := range f.widgets {
		if w.Spec().Field == field {
			return f.FocusField(i)
		}
	}
	return nil
}

// Blur removes focus from all fields.
func (f *StepForm) Blur() {
	f.focused = false
	for _, w := range f.widgets {
		w.Blur()
	}
}

// SetWidth updates the width available to the form.
func (f *StepForm) SetWidth(width int) {
	f.width = width
	for _, w := range f.widgets {
		w.SetWidth(width - 4)
	}
}

// SetText replaces the content of a text field and reports the edit.
func (f *StepForm) SetText(field strategy.Field, value string) {
	for _, w := range f.widgets {
		if tf, ok := w.(*textField); ok && tf.spec.Field == field {
			tf.SetText(value)
			f.onChange(f.section, field, value)
			return
		}
	}
}

// Update handles a message for the focused field.
func (f *StepForm) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		// Non-key messages (cursor blink) go to the focused input.
		if tf, ok := f.widgets[f.focus].(*textField); ok {
			var cmd tea.Cmd
			tf.input, cmd = tf.input.Update(msg)
			return cmd
		}
		return nil
	}

	switch keyMsg.String() {
	case "tab", "down":
		if f.focus == len(f.widgets)-1 {
			return func() tea.Msg { return TabExitForwardMsg{} }
		}
		return f.FocusField(f.focus + 1)
	case "shift+tab", "up":
		if f.focus == 0 {
			return func() tea.Msg { return TabExitBackwardMsg{} }
		}
		return f.FocusField(f.focus - 1)
	}

	w := f.widgets[f.focus]
	changed, cmd := w.HandleKey(keyMsg)
	if changed {
		f.onChange(f.section, w.Spec().Field, w.Value())
	}
	return cmd
}

// View renders the form with an error line under each field in errs.
func (f *StepForm) View(errs strategy.ValidationErrors) string {
	s := theme.Current().S()
	var b strings.Builder

	for i, w := range f.widgets {
		spec := w.Spec()
		focused := f.focused && i == f.focus

		if spec.Kind != strategy.KindBool {
			label := s.FieldLabel.Render(spec.Label)
			if focused {
				label = s.FieldFocused.Render(spec.Label)
			}
			if strategy.IsRequired(spec.Field) {
				label += s.FieldRequired.Render(" *")
			}
			b.WriteString(label)
			b.WriteString("\n")
		}

		b.WriteString(w.View(focused))
		b.WriteString("\n")

		if msg, ok := errs[spec.Field]; ok {
			b.WriteString(s.FieldError.Render("✗ " + msg))
			b.WriteString("\n")
		}
		if i < len(f.widgets)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// TabExitForwardMsg is sent when Tab is pressed on the last field.
// Parent should move focus to buttons.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent when Shift+Tab is pressed on the first field.
// Parent should move focus to buttons (from end).
type TabExitBackwardMsg struct{}
