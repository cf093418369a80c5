// Package tui implements the TradingStudio terminal UI: a header with view
// tabs, the strategy dashboard and the creation wizard.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/tradingstudio/internal/catalog"
	"github.com/mark3labs/tradingstudio/internal/hooks"
	"github.com/mark3labs/tradingstudio/internal/logger"
	"github.com/mark3labs/tradingstudio/internal/state"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/mark3labs/tradingstudio/internal/tui/theme"
	"github.com/mark3labs/tradingstudio/internal/tui/wizard"
)

// CreatedToast is shown after a strategy is created.
const CreatedToast = "Strategy created successfully!"

// StrategiesLoadedMsg carries the result of listing the catalog.
type StrategiesLoadedMsg struct {
	Items    []strategy.Stored
	SelectID int // strategy to put the cursor on, 0 to keep it
	Err      error
}

// StrategyRecordedMsg is sent after a completed draft is stored.
type StrategyRecordedMsg struct {
	Stored strategy.Stored
	Err    error
}

// StrategyCopiedMsg is sent after a strategy is duplicated.
type StrategyCopiedMsg struct {
	Stored strategy.Stored
	Err    error
}

// HookFinishedMsg is sent when the on_create hook returns.
type HookFinishedMsg struct {
	Output string
	Err    error
}

// Options wires the app to its collaborators.
type Options struct {
	Catalog       catalog.Catalog
	CreatedStatus strategy.Status // status given to strategies created in the wizard
	Hooks         *hooks.Config   // nil when no hooks file exists
	HooksDir      string          // working directory for hook commands
	StateDir      string          // where UI preferences are kept; empty disables them
}

// App is the main Bubbletea model that manages the TUI application.
type App struct {
	ctx  context.Context
	opts Options
	keys KeyMap

	header    *Header
	dashboard *Dashboard
	wizard    *wizard.WizardModel // nil unless the create view is active
	toast     *Toast

	view     View
	width    int
	height   int
	quitting bool
}

// NewApp creates the application model.
func NewApp(ctx context.Context, opts Options) *App {
	if opts.CreatedStatus == "" {
		opts.CreatedStatus = strategy.StatusDraft
	}
	keys := DefaultKeyMap()
	a := &App{
		ctx:       ctx,
		opts:      opts,
		keys:      keys,
		header:    NewHeader(),
		dashboard: NewDashboard(keys),
		toast:     NewToast(),
		view:      ViewDashboard,
	}
	if opts.StateDir != "" {
		a.dashboard.SetDetailOpen(state.Load(opts.StateDir).Dashboard.DetailOpen)
	}
	return a
}

// Run starts the full-screen program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewApp(ctx, opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

// Init loads the catalog.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.dashboard.SetLoading(), a.loadStrategies(0))
}

// Update handles messages for the application.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSizes()
		return a, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, a.quit()
		}
		if a.view == ViewCreate && a.wizard != nil {
			return a, a.wizard.Update(msg)
		}
		return a, a.handleDashboardKey(msg)

	case StrategiesLoadedMsg:
		if msg.Err != nil {
			logger.Error("Failed to load strategies: %v", msg.Err)
			a.dashboard.SetError(msg.Err)
			return a, nil
		}
		a.dashboard.SetStrategies(msg.Items)
		a.header.SetStrategies(msg.Items)
		if msg.SelectID != 0 {
			a.dashboard.Select(msg.SelectID)
		}
		return a, nil

	case wizard.CreatedMsg:
		return a, a.onCreated(msg.Draft)

	case wizard.CancelledMsg:
		logger.Debug("Wizard cancelled, draft discarded")
		a.showDashboard()
		return a, nil

	case StrategyRecordedMsg:
		a.showDashboard()
		if msg.Err != nil {
			logger.Error("Failed to record strategy: %v", msg.Err)
			return a, a.toast.ShowError("Failed to save strategy: " + msg.Err.Error())
		}
		return a, tea.Batch(
			a.toast.Show(CreatedToast),
			a.loadStrategies(msg.Stored.ID),
			a.runOnCreateHook(msg.Stored),
		)

	case StrategyCopiedMsg:
		if msg.Err != nil {
			logger.Error("Failed to copy strategy: %v", msg.Err)
			return a, a.toast.ShowError("Failed to copy strategy: " + msg.Err.Error())
		}
		return a, tea.Batch(
			a.toast.Show(fmt.Sprintf("Copied to %q", msg.Stored.Name)),
			a.loadStrategies(msg.Stored.ID),
		)

	case HookFinishedMsg:
		return a, a.handleHookFinished(msg)

	case ToastDismissMsg, ShowToastMsg:
		return a, a.toast.Update(msg)

	case spinner.TickMsg:
		return a, a.dashboard.Update(msg)
	}

	if a.view == ViewCreate && a.wizard != nil {
		return a, a.wizard.Update(msg)
	}
	return a, a.dashboard.Update(msg)
}

func (a *App) handleDashboardKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Dashboard):
		return nil
	case key.Matches(msg, a.keys.Create, a.keys.New, a.keys.NextView):
		return a.startWizard()
	case key.Matches(msg, a.keys.Reload):
		return tea.Batch(a.dashboard.SetLoading(), a.loadStrategies(0))
	case key.Matches(msg, a.keys.Copy):
		if s, ok := a.dashboard.Selected(); ok {
			return a.copyStrategy(s.ID)
		}
		return nil
	}
	return a.dashboard.Update(msg)
}

// quit saves UI preferences and stops the program.
func (a *App) quit() tea.Cmd {
	a.quitting = true
	if a.opts.StateDir != "" {
		st := &state.UIState{Dashboard: state.DashboardState{DetailOpen: a.dashboard.DetailOpen()}}
		if err := state.Save(a.opts.StateDir, st); err != nil {
			logger.Warn("Failed to save UI state: %v", err)
		}
	}
	return tea.Quit
}

// startWizard opens the create view on a fresh draft.
func (a *App) startWizard() tea.Cmd {
	a.wizard = wizard.New()
	a.view = ViewCreate
	a.header.SetActive(ViewCreate)
	a.propagateSizes()
	logger.Debug("Wizard started")
	return a.wizard.Init()
}

// showDashboard returns to the dashboard, discarding any wizard state.
func (a *App) showDashboard() {
	a.wizard = nil
	a.view = ViewDashboard
	a.header.SetActive(ViewDashboard)
}

// onCreated stores a completed draft in the catalog.
func (a *App) onCreated(d strategy.Draft) tea.Cmd {
	cat, ctx, status := a.opts.Catalog, a.ctx, a.opts.CreatedStatus
	return func() tea.Msg {
		stored, err := cat.Record(ctx, d, status)
		return StrategyRecordedMsg{Stored: stored, Err: err}
	}
}

func (a *App) loadStrategies(selectID int) tea.Cmd {
	cat, ctx := a.opts.Catalog, a.ctx
	return func() tea.Msg {
		items, err := cat.List(ctx)
		return StrategiesLoadedMsg{Items: items, SelectID: selectID, Err: err}
	}
}

func (a *App) copyStrategy(id int) tea.Cmd {
	cat, ctx := a.opts.Catalog, a.ctx
	return func() tea.Msg {
		stored, err := cat.Copy(ctx, id)
		return StrategyCopiedMsg{Stored: stored, Err: err}
	}
}

func (a *App) runOnCreateHook(s strategy.Stored) tea.Cmd {
	if a.opts.Hooks.OnCreate() == nil {
		return nil
	}
	cfg, dir, ctx := a.opts.Hooks, a.opts.HooksDir, a.ctx
	return func() tea.Msg {
		out, err := hooks.RunOnCreate(ctx, cfg, dir, s)
		return HookFinishedMsg{Output: out, Err: err}
	}
}

// handleHookFinished surfaces hook failures in a toast. Hooks never block
// completion, so a failure only informs.
func (a *App) handleHookFinished(msg HookFinishedMsg) tea.Cmd {
	if msg.Err != nil {
		logger.Warn("on_create hook aborted: %v", msg.Err)
		return a.toast.ShowError("on_create hook aborted")
	}
	if strings.HasPrefix(msg.Output, "[Hook") {
		first, _, _ := strings.Cut(msg.Output, "\n")
		return a.toast.ShowError("on_create " + strings.Trim(first, "[]"))
	}
	logger.Debug("on_create hook output: %s", msg.Output)
	return nil
}

// propagateSizes pushes the current dimensions to every component.
func (a *App) propagateSizes() {
	main := a.mainArea(uv.Rect(0, 0, a.width, a.height))
	a.header.SetSize(a.width, 1)
	a.dashboard.SetSize(main.Dx(), main.Dy())
	if a.wizard != nil {
		a.wizard.SetSize(main.Dx(), main.Dy())
	}
}

// mainArea is the region between the header and the hint bar.
func (a *App) mainArea(area uv.Rectangle) uv.Rectangle {
	return uv.Rectangle{
		Min: uv.Position{X: area.Min.X + 1, Y: area.Min.Y + 2},
		Max: uv.Position{X: max(area.Min.X+1, area.Max.X-1), Y: max(area.Min.Y+2, area.Max.Y-1)},
	}
}

// View renders the current view. In Bubbletea v2, this returns tea.View
// with display options like AltScreen and MouseMode.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if a.quitting {
		view.AltScreen = false
		view.MouseMode = 0
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	view.Cursor = a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = theme.HexToColor(theme.Current().BgBase)
	return view
}

// Draw renders all components to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if area.Dy() < 3 {
		return nil
	}

	headerArea := uv.Rectangle{
		Min: area.Min,
		Max: uv.Position{X: area.Max.X, Y: area.Min.Y + 1},
	}
	a.header.Draw(scr, headerArea)

	main := a.mainArea(area)
	hints := ""
	if a.view == ViewCreate && a.wizard != nil {
		content := lipgloss.PlaceHorizontal(main.Dx(), lipgloss.Center, a.wizard.View())
		DrawText(scr, main, content)
		hints = renderHintBar("ctrl+c", "quit")
	} else {
		a.dashboard.Draw(scr, main)
		hints = a.dashboard.hints()
	}

	hintArea := uv.Rectangle{
		Min: uv.Position{X: area.Min.X + 1, Y: area.Max.Y - 1},
		Max: area.Max,
	}
	DrawText(scr, hintArea, hints)

	if toast := a.toast.View(area.Dx()); toast != "" {
		h := lipgloss.Height(toast)
		toastArea := uv.Rectangle{
			Min: uv.Position{X: area.Min.X, Y: max(area.Min.Y, area.Max.Y-1-h)},
			Max: uv.Position{X: area.Max.X, Y: area.Max.Y - 1},
		}
		DrawText(scr, toastArea, toast)
	}
	return nil
}

// ActiveView returns the view currently shown.
func (a *App) ActiveView() View {
	return a.view
}

// Wizard returns the active wizard, or nil on the dashboard.
func (a *App) Wizard() *wizard.WizardModel {
	return a.wizard
}
