package wizard

import (
	"slices"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/mark3labs/tradingstudio/internal/tui/theme"
)

// fieldWidget edits one draft field.
type fieldWidget interface {
	Spec() strategy.FieldSpec
	// Value returns the widget's value in the field's declared kind.
	Value() any
	// HandleKey processes a key and reports whether the value changed.
	HandleKey(msg tea.KeyPressMsg) (changed bool, cmd tea.Cmd)
	Focus() tea.Cmd
	Blur()
	SetWidth(width int)
	View(focused bool) string
}

// newFieldWidget builds the widget for spec, initialised from d.
func newFieldWidget(spec strategy.FieldSpec, d strategy.Draft) fieldWidget {
	switch {
	case spec.Kind == strategy.KindBool:
		return &toggleField{spec: spec, on: d.Flag(spec.Field)}
	case spec.Kind == strategy.KindList:
		v, _ := d.Value(spec.Field)
		selected, _ := v.([]string)
		return &listField{spec: spec, selected: slices.Clone(selected)}
	case spec.IsSelect():
		return &selectField{spec: spec, idx: strategy.OptionIndex(spec.Options, d.Text(spec.Field))}
	default:
		return newTextField(spec, d.Text(spec.Field))
	}
}

// selectField cycles through a fixed option set with ←/→.
type selectField struct {
	spec strategy.FieldSpec
	idx  int // -1 when nothing is selected
}

func (f *selectField) Spec() strategy.FieldSpec { return f.spec }

func (f *selectField) Value() any {
	if f.idx < 0 {
		return ""
	}
	return f.spec.Options[f.idx].Value
}

func (f *selectField) HandleKey(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	n := len(f.spec.Options)
	switch msg.String() {
	case "right", "l":
		f.idx = (f.idx + 1) % n
		return true, nil
	case "left", "h":
		if f.idx <= 0 {
			f.idx = n - 1
		} else {
			f.idx--
		}
		return true, nil
	}
	return false, nil
}

func (f *selectField) Focus() tea.Cmd { return nil }
func (f *selectField) Blur()          {}
func (f *selectField) SetWidth(int)   {}

func (f *selectField) View(focused bool) string {
	s := theme.Current().S()
	text := s.Muted.Render(f.spec.Placeholder)
	if f.idx >= 0 {
		text = s.FieldValue.Render(f.spec.Options[f.idx].Label)
	}
	if focused {
		return s.FieldFocused.Render("‹ ") + text + s.FieldFocused.Render(" ›")
	}
	return "  " + text
}

// toggleField is a checkbox flipped with space.
type toggleField struct {
	spec strategy.FieldSpec
	on   bool
}

func (f *toggleField) Spec() strategy.FieldSpec { return f.spec }
func (f *toggleField) Value() any               { return f.on }

func (f *toggleField) HandleKey(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "space", "x":
		f.on = !f.on
		return true, nil
	}
	return false, nil
}

func (f *toggleField) Focus() tea.Cmd { return nil }
func (f *toggleField) Blur()          {}
func (f *toggleField) SetWidth(int)   {}

func (f *toggleField) View(focused bool) string {
	s := theme.Current().S()
	box := "[ ]"
	if f.on {
		box = "[✓]"
	}
	label := f.spec.Label
	if focused {
		return s.FieldFocused.Render(box + " " + label)
	}
	return s.FieldValue.Render(box) + " " + s.FieldLabel.Render(label)
}

// listField is a multi-select; ←/→ move the cursor and space toggles the
// option under it. Selections keep the order they were made in.
type listField struct {
	spec     strategy.FieldSpec
	cursor   int
	selected []string
}

func (f *listField) Spec() strategy.FieldSpec { return f.spec }
func (f *listField) Value() any               { return slices.Clone(f.selected) }

func (f *listField) HandleKey(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	n := len(f.spec.Options)
	switch msg.String() {
	case "right", "l":
		f.cursor = (f.cursor + 1) % n
	case "left", "h":
		f.cursor = (f.cursor - 1 + n) % n
	case "space", "x":
		value := f.spec.Options[f.cursor].Value
		if i := slices.Index(f.selected, value); i >= 0 {
			f.selected = slices.Delete(f.selected, i, i+1)
		} else {
			f.selected = append(f.selected, value)
		}
		return true, nil
	}
	return false, nil
}

func (f *listField) Focus() tea.Cmd { return nil }
func (f *listField) Blur()          {}
func (f *listField) SetWidth(int)   {}

func (f *listField) View(focused bool) string {
	s := theme.Current().S()
	parts := make([]string, 0, len(f.spec.Options))
	for i, opt := range f.spec.Options {
		box := "[ ]"
		if slices.Contains(f.selected, opt.Value) {
			box = "[✓]"
		}
		item := box + " " + opt.Label
		switch {
		case focused && i == f.cursor:
			item = s.FieldFocused.Render(item)
		case slices.Contains(f.selected, opt.Value):
			item = s.FieldValue.Render(item)
		default:
			item = s.Muted.Render(item)
		}
		parts = append(parts, item)
	}
	return "  " + strings.Join(parts, "  ")
}

// textField wraps a bubbles textinput.
type textField struct {
	spec  strategy.FieldSpec
	input textinput.Model
}

func newTextField(spec strategy.FieldSpec, value string) *textField {
	t := theme.Current()
	input := textinput.New()
	input.Placeholder = spec.Placeholder
	input.Prompt = ""
	input.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Tertiary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	input.SetWidth(50)
	input.SetValue(value)
	return &textField{spec: spec, input: input}
}

func (f *textField) Spec() strategy.FieldSpec { return f.spec }
func (f *textField) Value() any               { return f.input.Value() }

func (f *textField) HandleKey(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f.input.Value() != before, cmd
}

// SetText replaces the input's content, e.g. after editing it externally.
func (f *textField) SetText(value string) {
	f.input.SetValue(value)
	f.input.CursorEnd()
}

func (f *textField) Focus() tea.Cmd { return f.input.Focus() }
func (f *textField) Blur()          { f.input.Blur() }

func (f *textField) SetWidth(width int) {
	f.input.SetWidth(max(width, 10))
}

func (f *textField) View(focused bool) string {
	prefix := "  "
	if focused {
		prefix = theme.Current().S().FieldFocused.Render("› ")
	}
	return prefix + f.input.View()
}
