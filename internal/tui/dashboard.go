package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/mark3labs/tradingstudio/internal/tui/theme"
)

// DashboardTitle is the heading of the strategy list.
const DashboardTitle = "Strategy Dashboard"

// cardHeight is the rendered height of one strategy card including its border.
const cardHeight = 5

// Compile-time interface checks
var _ FullComponent = (*Dashboard)(nil)

// Dashboard lists stored strategies as cards with an optional detail pane.
type Dashboard struct {
	keys    KeyMap
	items   []strategy.Stored
	cursor  int
	offset  int
	width   int
	height  int
	loading bool
	err     error
	spinner spinner.Model

	detailOpen bool
	detail     viewport.Model
}

// NewDashboard creates a new Dashboard component.
func NewDashboard(keys KeyMap) *Dashboard {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current().Primary))

	vp := viewport.New(
		viewport.WithWidth(40),
		viewport.WithHeight(10),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Dashboard{
		keys:    keys,
		spinner: s,
		detail:  vp,
		loading: true,
	}
}

// SetStrategies replaces the listed strategies, keeping the cursor in range.
func (d *Dashboard) SetStrategies(items []strategy.Stored) {
	d.items = items
	d.loading = false
	d.err = nil
	d.cursor = max(0, min(d.cursor, len(items)-1))
	d.clampOffset()
	if d.detailOpen {
		d.refreshDetail()
	}
}

// SetLoading shows the spinner until strategies arrive.
func (d *Dashboard) SetLoading() tea.Cmd {
	d.loading = true
	return d.spinner.Tick
}

// SetError shows a load failure in place of the list.
func (d *Dashboard) SetError(err error) {
	d.loading = false
	d.err = err
}

// Selected returns the strategy under the cursor.
func (d *Dashboard) Selected() (strategy.Stored, bool) {
	if d.cursor < 0 || d.cursor >= len(d.items) {
		return strategy.Stored{}, false
	}
	return d.items[d.cursor], true
}

// Select moves the cursor to the strategy with the given ID.
func (d *Dashboard) Select(id int) {
	for i, s := range d.items {
		if s.ID == id {
			d.cursor = i
			d.clampOffset()
			if d.detailOpen {
				d.refreshDetail()
			}
			return
		}
	}
}

// DetailOpen reports whether the detail pane is showing.
func (d *Dashboard) DetailOpen() bool {
	return d.detailOpen
}

// SetDetailOpen shows or hides the detail pane.
func (d *Dashboard) SetDetailOpen(open bool) {
	d.detailOpen = open
	d.SetSize(d.width, d.height)
}

// SetSize updates the dashboard dimensions.
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.detail.SetWidth(d.detailWidth())
	d.detail.SetHeight(max(3, height-2))
	d.clampOffset()
	if d.detailOpen {
		d.refreshDetail()
	}
}

func (d *Dashboard) listWidth() int {
	if !d.detailOpen {
		return d.width
	}
	return d.width / 2
}

func (d *Dashboard) detailWidth() int {
	return max(20, d.width-d.width/2-2)
}

// visibleCards is how many cards fit below the panel title.
func (d *Dashboard) visibleCards() int {
	return max(1, (d.height-2)/cardHeight)
}

func (d *Dashboard) clampOffset() {
	visible := d.visibleCards()
	if d.cursor < d.offset {
		d.offset = d.cursor
	}
	if d.cursor >= d.offset+visible {
		d.offset = d.cursor - visible + 1
	}
	d.offset = max(0, min(d.offset, max(0, len(d.items)-visible)))
}

// Update handles navigation and the detail pane.
func (d *Dashboard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !d.loading {
			return nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return cmd

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, d.keys.Up):
			if d.cursor > 0 {
				d.cursor--
				d.clampOffset()
				d.refreshDetailIfOpen()
			}
			return nil
		case key.Matches(msg, d.keys.Down):
			if d.cursor < len(d.items)-1 {
				d.cursor++
				d.clampOffset()
				d.refreshDetailIfOpen()
			}
			return nil
		case key.Matches(msg, d.keys.Open):
			if _, ok := d.Selected(); ok {
				d.detailOpen = !d.detailOpen
				d.SetSize(d.width, d.height)
			}
			return nil
		case key.Matches(msg, d.keys.Close):
			if d.detailOpen {
				d.detailOpen = false
				d.SetSize(d.width, d.height)
			}
			return nil
		}
	}

	if d.detailOpen {
		var cmd tea.Cmd
		d.detail, cmd = d.detail.Update(msg)
		return cmd
	}
	return nil
}

func (d *Dashboard) refreshDetailIfOpen() {
	if d.detailOpen {
		d.refreshDetail()
	}
}

// refreshDetail renders the selected strategy as markdown into the viewport.
func (d *Dashboard) refreshDetail() {
	s, ok := d.Selected()
	if !ok {
		d.detail.SetContent("")
		return
	}
	d.detail.SetContent(renderMarkdown(s.Markdown(), d.detailWidth()))
	d.detail.GotoTop()
}

// Draw renders the dashboard to a screen buffer.
func (d *Dashboard) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	listArea := area
	if d.detailOpen {
		split := area.Min.X + area.Dx()/2
		listArea.Max.X = split

		divider := uv.Rectangle{
			Min: uv.Position{X: split, Y: area.Min.Y},
			Max: uv.Position{X: split + 1, Y: area.Max.Y},
		}
		DrawVerticalDivider(scr, divider, lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current().BorderMuted)))

		detailArea := uv.Rectangle{
			Min: uv.Position{X: split + 2, Y: area.Min.Y},
			Max: area.Max,
		}
		inner := DrawPanel(scr, detailArea, "Details", true)
		uv.NewStyledString(d.detail.View()).Draw(scr, inner)
	}

	inner := DrawPanel(scr, listArea, DashboardTitle, !d.detailOpen)
	uv.NewStyledString(d.renderList(inner.Dx())).Draw(scr, inner)
	return nil
}

// renderList renders the visible cards, or the loading/error/empty state.
func (d *Dashboard) renderList(width int) string {
	s := theme.Current().S()

	switch {
	case d.loading:
		return d.spinner.View() + " " + s.Muted.Render("Loading strategies...")
	case d.err != nil:
		return s.Error.Render("✗ Failed to load strategies: " + d.err.Error())
	case len(d.items) == 0:
		return s.EmptyState.Render("No strategies yet. Press n to create one.")
	}

	end := min(len(d.items), d.offset+d.visibleCards())
	cards := make([]string, 0, end-d.offset)
	for i := d.offset; i < end; i++ {
		cards = append(cards, renderCard(d.items[i], i == d.cursor, width))
	}

	list := strings.Join(cards, "\n")
	if d.offset > 0 || end < len(d.items) {
		list += "\n" + s.Muted.Render(fmt.Sprintf("%d–%d of %d", d.offset+1, end, len(d.items)))
	}
	return list
}

// renderCard renders one strategy: name and badge, created date, description.
func renderCard(item strategy.Stored, selected bool, width int) string {
	s := theme.Current().S()
	style := s.Card
	if selected {
		style = s.CardSelected
	}
	inner := max(10, width-4)

	title := s.CardTitle.Render(item.Name)
	badge := statusBadge(item.Status)
	gap := max(1, inner-lipgloss.Width(title)-lipgloss.Width(badge))
	top := title + strings.Repeat(" ", gap) + badge

	meta := s.CardMeta.Render("Created: " + item.CreatedAt)
	desc := item.Description
	if lipgloss.Width(desc) > inner {
		desc = truncate(desc, inner)
	}

	return style.Width(width).Render(top + "\n" + meta + "\n" + s.Base.Render(desc))
}

// statusBadge renders the status pill shown on each card.
func statusBadge(status strategy.Status) string {
	s := theme.Current().S()
	switch status {
	case strategy.StatusActive:
		return s.BadgeActive.Render(status.String())
	case strategy.StatusSubmitted:
		return s.BadgeSubmit.Render(status.String())
	default:
		return s.BadgeDraft.Render(status.String())
	}
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:max(0, width-1)]) + "…"
}

// hints returns the dashboard's hint bar.
func (d *Dashboard) hints() string {
	if d.detailOpen {
		return renderHintBar(hintPairs(d.keys.Up, d.keys.Down, d.keys.Close, d.keys.Copy, d.keys.New, d.keys.Quit)...)
	}
	return renderHintBar(hintPairs(d.keys.Up, d.keys.Down, d.keys.Open, d.keys.New, d.keys.Copy, d.keys.Reload, d.keys.Quit)...)
}
