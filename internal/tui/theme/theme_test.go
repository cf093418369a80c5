package theme

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

func init() {
	lipgloss.Writer.Profile = colorprofile.Ascii
}

func TestCatppuccinMocha_ColorPalette(t *testing.T) {
	t.Parallel()

	th := Current()
	if th.Name != "catppuccin-mocha" {
		t.Fatalf("expected catppuccin-mocha theme, got %s", th.Name)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Primary (Mauve)", th.Primary, "#cba6f7"},
		{"Tertiary (Lavender)", th.Tertiary, "#b4befe"},
		{"BgBase", th.BgBase, "#1e1e2e"},
		{"BgMantle", th.BgMantle, "#181825"},
		{"BgSurface0", th.BgSurface0, "#313244"},
		{"BgOverlay", th.BgOverlay, "#6c7086"},
		{"FgMuted (Subtext0)", th.FgMuted, "#a6adc8"},
		{"FgBase (Text)", th.FgBase, "#cdd6f4"},
		{"Error (Red)", th.Error, "#f38ba8"},
		{"BorderFocused (Mauve)", th.BorderFocused, "#cba6f7"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.expected)
		}
	}
}

func TestStylesInitialized(t *testing.T) {
	t.Parallel()

	s := Current().S()
	if s != Current().S() {
		t.Error("S() should return the same styles on repeated calls")
	}

	for name, style := range map[string]lipgloss.Style{
		"Card":          s.Card,
		"BadgeActive":   s.BadgeActive,
		"FieldError":    s.FieldError,
		"ButtonFocused": s.ButtonFocused,
		"Toast":         s.Toast,
	} {
		if style.Render("test") == "" {
			t.Errorf("%s: rendered empty string", name)
		}
	}
}

func TestSetCurrent(t *testing.T) {
	if err := SetCurrent("catppuccin-mocha"); err != nil {
		t.Fatalf("SetCurrent() error = %v", err)
	}
	if err := SetCurrent("solarized"); err == nil {
		t.Error("SetCurrent() should reject unknown themes")
	}
	if Current().Name != "catppuccin-mocha" {
		t.Errorf("Current() = %s after failed SetCurrent", Current().Name)
	}
	if names := Names(); len(names) != 1 || names[0] != "catppuccin-mocha" {
		t.Errorf("Names() = %v", names)
	}
}

func TestInterpolateColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		pos  float64
		want string
	}{
		{"#000000", "#ffffff", 0, "#000000"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"#000000", "#fefefe", 0.5, "#7f7f7f"},
		{"#cba6f7", "#cba6f7", 0.3, "#cba6f7"},
		{"#010203", "#010203", 0.7, "#010203"},
		{"#000000", "#ffffff", 0.5, "#808080"},
	}
	for _, tt := range tests {
		if got := InterpolateColor(tt.a, tt.b, tt.pos); got != tt.want {
			t.Errorf("InterpolateColor(%s, %s, %v) = %s, want %s", tt.a, tt.b, tt.pos, got, tt.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	r, g, b := ParseHexColor("#cba6f7")
	if r != 0xcb || g != 0xa6 || b != 0xf7 {
		t.Errorf("ParseHexColor = %d,%d,%d", r, g, b)
	}
	r, g, b = ParseHexColor("bad")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("ParseHexColor(bad) = %d,%d,%d, want zeros", r, g, b)
	}
}

func TestApplyGradient(t *testing.T) {
	t.Parallel()

	if ApplyGradient("", "#000000", "#ffffff") != "" {
		t.Error("empty text should render empty")
	}
	out := ApplyGradient("Trade", "#cba6f7", "#89b4fa")
	if !strings.Contains(out, "T") || !strings.Contains(out, "e") {
		t.Errorf("gradient output lost characters: %q", out)
	}
}
