package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style

	// Header
	HeaderBar   lipgloss.Style
	HeaderTitle lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Dashboard
	PanelTitle   lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardMeta     lipgloss.Style
	BadgeDraft   lipgloss.Style
	BadgeSubmit  lipgloss.Style
	BadgeActive  lipgloss.Style
	EmptyState   lipgloss.Style
	DetailBorder lipgloss.Style

	// Wizard
	StepTitle     lipgloss.Style
	StepDone      lipgloss.Style
	StepCurrent   lipgloss.Style
	StepPending   lipgloss.Style
	FieldLabel    lipgloss.Style
	FieldFocused  lipgloss.Style
	FieldValue    lipgloss.Style
	FieldRequired lipgloss.Style
	FieldError    lipgloss.Style
	ProgressFull  lipgloss.Style
	ProgressEmpty lipgloss.Style

	// Buttons
	ButtonNormal   lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style

	// Hint bar
	HintKey  lipgloss.Style
	HintDesc lipgloss.Style
	HintSep  lipgloss.Style

	Toast lipgloss.Style
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(c(t.BgBase))

	return &Styles{
		Base:      lipgloss.NewStyle().Foreground(c(t.FgBase)),
		Muted:     lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		Highlight: lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),

		HeaderBar: lipgloss.NewStyle().
			Background(c(t.BgMantle)).
			Foreground(c(t.FgBright)).
			Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true),
		TabActive: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Primary)).
			Bold(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(c(t.FgMuted)).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(c(t.Tertiary)).
			Bold(true).
			MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.BorderDefault)).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.BorderFocused)).
			Padding(0, 1),
		CardTitle:    lipgloss.NewStyle().Foreground(c(t.FgBright)).Bold(true),
		CardMeta:     lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		BadgeActive:  badge.Background(c(t.Primary)),
		BadgeDraft:   badge.Foreground(c(t.FgBase)).Background(c(t.BgSurface1)),
		BadgeSubmit:  lipgloss.NewStyle().Padding(0, 1).Foreground(c(t.Secondary)).Bold(true),
		EmptyState:   lipgloss.NewStyle().Foreground(c(t.FgMuted)).Italic(true),
		DetailBorder: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(c(t.BorderMuted)).PaddingLeft(1),

		StepTitle:     lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),
		StepDone:      lipgloss.NewStyle().Foreground(c(t.Success)),
		StepCurrent:   lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),
		StepPending:   lipgloss.NewStyle().Foreground(c(t.BgOverlay)),
		FieldLabel:    lipgloss.NewStyle().Foreground(c(t.FgSubtle)),
		FieldFocused:  lipgloss.NewStyle().Foreground(c(t.Tertiary)).Bold(true),
		FieldValue:    lipgloss.NewStyle().Foreground(c(t.FgBase)),
		FieldRequired: lipgloss.NewStyle().Foreground(c(t.Error)),
		FieldError:    lipgloss.NewStyle().Foreground(c(t.Error)),
		ProgressFull:  lipgloss.NewStyle().Foreground(c(t.Primary)),
		ProgressEmpty: lipgloss.NewStyle().Foreground(c(t.BgSurface1)),

		ButtonNormal: lipgloss.NewStyle().
			Foreground(c(t.FgBase)).
			Background(c(t.BgSurface0)).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Primary)).
			Bold(true).
			Padding(0, 2),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(c(t.BgOverlay)).
			Background(c(t.BgMantle)).
			Padding(0, 2),

		Success: lipgloss.NewStyle().Foreground(c(t.Success)),
		Error:   lipgloss.NewStyle().Foreground(c(t.Error)),

		HintKey:  lipgloss.NewStyle().Foreground(c(t.FgSubtle)),
		HintDesc: lipgloss.NewStyle().Foreground(c(t.BgOverlay)),
		HintSep:  lipgloss.NewStyle().Foreground(c(t.BgSurface1)),

		Toast: lipgloss.NewStyle().
			Foreground(c(t.FgBright)).
			Background(c(t.BgSurface0)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.Success)).
			Padding(0, 1),
	}
}
