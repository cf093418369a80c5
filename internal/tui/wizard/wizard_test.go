package wizard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyRight    = tea.KeyPressMsg{Code: tea.KeyRight}
	keyLeft     = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyDown     = tea.KeyPressMsg{Code: tea.KeyDown}
	keyUp       = tea.KeyPressMsg{Code: tea.KeyUp}
	keySpace    = tea.KeyPressMsg{Code: tea.KeySpace}
	keyTab      = tea.KeyPressMsg{Code: tea.KeyTab}
	keyShiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	keyEnter    = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc      = tea.KeyPressMsg{Code: tea.KeyEscape}
)

func press(m *WizardModel, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = m.Update(k)
	}
	return cmd
}

func typeText(m *WizardModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// deliver runs cmd and feeds the resulting message back into the wizard.
func deliver(t *testing.T, m *WizardModel, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	m.Update(msg)
	return msg
}

func newWizard() *WizardModel {
	m := New()
	m.SetSize(100, 40)
	m.Init()
	return m
}

// fillScan selects the first exchange and instrument and advances.
func fillScan(t *testing.T, m *WizardModel) {
	t.Helper()
	press(m, keyRight, keyDown, keyRight, keyEnter)
	require.Equal(t, 1, m.Controller().Step())
}

func TestWizard_SelectCyclesOptions(t *testing.T) {
	t.Parallel()

	m := newWizard()
	press(m, keyRight)
	assert.Equal(t, "forex", m.Controller().Draft().Scan.Exchange)

	press(m, keyRight)
	assert.Equal(t, "stocks", m.Controller().Draft().Scan.Exchange)

	press(m, keyLeft, keyLeft)
	assert.Equal(t, "crypto", m.Controller().Draft().Scan.Exchange, "left wraps around")
	assert.Empty(t, m.Controller().Draft().Scan.Instrument)
}

func TestWizard_EmptyStepShowsErrors(t *testing.T) {
	t.Parallel()

	m := newWizard()
	press(m, keyEnter)

	assert.Equal(t, 0, m.Controller().Step())
	assert.Equal(t, strategy.ValidationErrors{
		strategy.FieldExchange:   "Exchange is required",
		strategy.FieldInstrument: "Instrument is required",
	}, m.Controller().Errors())

	view := m.View()
	assert.Contains(t, view, "✗ Exchange is required")
	assert.Contains(t, view, "✗ Instrument is required")
}

func TestWizard_EditClearsFieldError(t *testing.T) {
	t.Parallel()

	m := newWizard()
	press(m, keyEnter, keyRight)

	errs := m.Controller().Errors()
	assert.NotContains(t, errs, strategy.FieldExchange)
	assert.Contains(t, errs, strategy.FieldInstrument)
	assert.NotContains(t, m.View(), "Exchange is required")
}

func TestWizard_FocusJumpsToFirstError(t *testing.T) {
	t.Parallel()

	m := newWizard()
	press(m, keyRight, keyEnter)
	assert.Equal(t, strategy.FieldInstrument, m.currentForm().FocusedField())
}

func TestWizard_IndicatorsToggleInSelectionOrder(t *testing.T) {
	t.Parallel()

	m := newWizard()
	press(m, keyDown, keyDown)
	require.Equal(t, strategy.FieldIndicators, m.currentForm().FocusedField())

	press(m, keySpace)
	assert.Equal(t, []string{"sma"}, m.Controller().Draft().Scan.Indicators)

	press(m, keyRight, keyRight, keySpace)
	assert.Equal(t, []string{"sma", "rsi"}, m.Controller().Draft().Scan.Indicators)

	press(m, keyLeft, keyLeft, keySpace)
	assert.Equal(t, []string{"rsi"}, m.Controller().Draft().Scan.Indicators)
}

func TestWizard_TextInputUpdatesDraft(t *testing.T) {
	t.Parallel()

	m := newWizard()
	press(m, keyDown, keyDown, keyDown)
	require.Equal(t, strategy.FieldCustomFilter, m.currentForm().FocusedField())

	typeText(m, "Volume > 1M")
	assert.Equal(t, "Volume > 1M", m.Controller().Draft().Scan.CustomFilter)
}

func TestWizard_ToggleFlipsWithSpace(t *testing.T) {
	t.Parallel()

	m := newWizard()
	fillScan(t, m)

	press(m, keyDown, keyDown, keyDown)
	require.Equal(t, strategy.FieldLimitOrder, m.currentForm().FocusedField())

	press(m, keySpace)
	assert.True(t, m.Controller().Draft().Buy.LimitOrder)
	press(m, keySpace)
	assert.False(t, m.Controller().Draft().Buy.LimitOrder)
}

func TestWizard_EscNavigation(t *testing.T) {
	t.Parallel()

	m := newWizard()
	cmd := press(m, keyEsc)
	require.NotNil(t, cmd)
	_, ok := cmd().(CancelledMsg)
	assert.True(t, ok, "esc on the first step cancels")

	fillScan(t, m)
	press(m, keyEnter)
	require.Contains(t, m.Controller().Errors(), strategy.FieldEntryType)

	cmd = press(m, keyEsc)
	assert.Equal(t, 0, m.Controller().Step())
	if cmd != nil {
		_, cancelled := cmd().(CancelledMsg)
		assert.False(t, cancelled, "esc on a later step goes back")
	}
	assert.Contains(t, m.Controller().Errors(), strategy.FieldEntryType, "retreat keeps errors")
	assert.Equal(t, "forex", m.Controller().Draft().Scan.Exchange, "retreat keeps the draft")
}

func TestWizard_TabMovesToButtons(t *testing.T) {
	t.Parallel()

	m := newWizard()
	cmd := press(m, keyTab, keyTab, keyTab, keyTab)
	msg := deliver(t, m, cmd)
	assert.IsType(t, TabExitForwardMsg{}, msg)
	assert.Equal(t, focusButtons, m.area)
	assert.Equal(t, buttonNext, m.button)

	// Back is disabled on the first step.
	press(m, keyLeft)
	assert.Equal(t, buttonNext, m.button)

	press(m, keyEnter)
	assert.Equal(t, focusForm, m.area, "failed Next returns focus to the form")
	assert.Len(t, m.Controller().Errors(), 2)
}

func TestWizard_ShiftTabFromFirstFieldFocusesButtons(t *testing.T) {
	t.Parallel()

	m := newWizard()
	fillScan(t, m)

	msg := deliver(t, m, press(m, keyShiftTab))
	assert.IsType(t, TabExitBackwardMsg{}, msg)
	assert.Equal(t, buttonBack, m.button)

	press(m, keyEnter)
	assert.Equal(t, 0, m.Controller().Step(), "Back button retreats")

	press(m, keyUp)
	assert.Equal(t, focusForm, m.area)
}

func TestWizard_FullFlowEmitsCreatedOnce(t *testing.T) {
	t.Parallel()

	m := newWizard()
	fillScan(t, m)

	// Buy: entry type + price level
	press(m, keyRight, keyDown)
	typeText(m, "100")
	press(m, keyEnter)
	require.Equal(t, 2, m.Controller().Step())

	// Sell: exit type + profit target
	press(m, keyRight, keyDown)
	typeText(m, "110")
	press(m, keyEnter)
	require.Equal(t, 3, m.Controller().Step())
	assert.Contains(t, m.View(), LabelCreate)

	// Simulation: name + capital
	typeText(m, "Alpha")
	press(m, keyDown)
	typeText(m, "1000")

	cmd := press(m, keyEnter)
	require.NotNil(t, cmd)
	created, ok := cmd().(CreatedMsg)
	require.True(t, ok)

	assert.True(t, m.Controller().Completed())
	assert.Equal(t, "Alpha", created.Draft.Simulation.Name)
	assert.Equal(t, "1000", created.Draft.Simulation.InitialCapital)
	assert.Equal(t, "100", created.Draft.Buy.PriceLevel)
	assert.Equal(t, "takeProfit", created.Draft.Sell.ExitType)

	assert.Nil(t, press(m, keyEnter), "completion is reported once")
}

func TestWizard_FilterEditedFromEditor(t *testing.T) {
	t.Parallel()

	m := newWizard()
	m.Update(FilterEditedMsg{Content: "Volume > 1M\nAND Price > 200MA\n"})
	assert.Equal(t, "Volume > 1M AND Price > 200MA", m.Controller().Draft().Scan.CustomFilter)
	assert.Contains(t, m.View(), "Volume > 1M AND Price > 200MA")

	m.Update(FilterEditedMsg{Err: assert.AnError})
	assert.Equal(t, "Volume > 1M AND Price > 200MA", m.Controller().Draft().Scan.CustomFilter)
}

func TestWizard_View(t *testing.T) {
	t.Parallel()

	m := newWizard()
	view := m.View()

	assert.Contains(t, view, Title)
	assert.Contains(t, view, "Step 1: Scan")
	assert.Contains(t, view, "25%")
	assert.Contains(t, view, "● Scan")
	assert.Contains(t, view, "○ Simulation")
	assert.Contains(t, view, "Select exchange")
	assert.Contains(t, view, LabelBack)
	assert.Contains(t, view, LabelNext)
	assert.Contains(t, view, "ctrl+e")

	fillScan(t, m)
	view = m.View()
	assert.Contains(t, view, "✓ Scan")
	assert.Contains(t, view, "● Buy")
	assert.Contains(t, view, "50%")
	assert.NotContains(t, view, "ctrl+e")
}

func TestNewWithDraft_Prefills(t *testing.T) {
	t.Parallel()

	m := NewWithDraft(strategy.Draft{
		Scan: strategy.Scan{Exchange: "crypto", Instrument: "I2", Indicators: []string{"macd"}},
	})
	m.SetSize(100, 40)

	view := m.View()
	assert.Contains(t, view, "Cryptocurrency")
	assert.Contains(t, view, "Instrument 2")
	assert.Contains(t, view, "[✓] MACD")

	press(m, keyEnter)
	assert.Equal(t, 1, m.Controller().Step())
}

func TestCreateBackNextButtons(t *testing.T) {
	t.Parallel()

	buttons := CreateBackNextButtons(false, LabelNext, 0)
	assert.Equal(t, ButtonDisabled, buttons[0].State, "disabled button never takes focus")
	assert.Equal(t, ButtonNormal, buttons[1].State)

	buttons = CreateBackNextButtons(true, LabelCreate, 1)
	assert.Equal(t, ButtonNormal, buttons[0].State)
	assert.Equal(t, ButtonFocused, buttons[1].State)
	assert.Equal(t, LabelCreate, buttons[1].Label)

	bar := NewButtonBar(buttons)
	bar.SetWidth(60)
	out := bar.Render()
	assert.Contains(t, out, LabelBack)
	assert.Contains(t, out, LabelCreate)
	assert.Empty(t, NewButtonBar(nil).Render())
}

func TestRenderHintBar(t *testing.T) {
	t.Parallel()

	assert.Empty(t, renderHintBar())
	assert.Empty(t, renderHintBar("enter"))

	out := renderHintBar("enter", "next", "esc", "back")
	assert.True(t, strings.Contains(out, "enter") && strings.Contains(out, "back"))
	assert.Contains(t, out, "•")
}
