package strategy

import (
	"fmt"
	"strings"
)

// Summary is a one-line description of the draft's rules, used as the
// description of the record created from it.
func (d Draft) Summary() string {
	var parts []string

	if d.Scan.Exchange != "" || d.Scan.Instrument != "" {
		scan := strings.TrimSpace(OptionLabel(Exchanges, d.Scan.Exchange) + " " + OptionLabel(Instruments, d.Scan.Instrument))
		if len(d.Scan.Indicators) > 0 {
			scan += " with " + strings.Join(indicatorLabels(d.Scan.Indicators), ", ")
		}
		parts = append(parts, scan)
	}

	if d.Buy.EntryType != "" {
		entry := OptionLabel(EntryTypes, d.Buy.EntryType) + " entry"
		if d.Buy.PriceLevel != "" {
			entry += " at " + d.Buy.PriceLevel
		}
		if d.Buy.StopLoss != "" {
			entry += ", stop " + d.Buy.StopLoss
		}
		parts = append(parts, entry)
	}

	if d.Sell.ExitType != "" {
		exit := OptionLabel(ExitTypes, d.Sell.ExitType) + " exit"
		if d.Sell.ProfitTarget != "" {
			exit += " at " + d.Sell.ProfitTarget
		}
		parts = append(parts, exit)
	}

	return strings.Join(parts, "; ")
}

// Markdown renders every section of the draft as a markdown document.
func (d Draft) Markdown() string {
	var b strings.Builder

	name := d.Simulation.Name
	if name == "" {
		name = "Untitled strategy"
	}
	fmt.Fprintf(&b, "# %s\n\n", name)

	for _, section := range Sections {
		fmt.Fprintf(&b, "## %s\n\n", section.Title())
		for _, spec := range Fields(section) {
			fmt.Fprintf(&b, "- **%s:** %s\n", strings.TrimSuffix(spec.Label, " (Optional)"), d.display(spec))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// display formats a field value for humans.
func (d *Draft) display(spec FieldSpec) string {
	switch spec.Kind {
	case KindBool:
		if d.Flag(spec.Field) {
			return "yes"
		}
		return "no"
	case KindList:
		if len(d.Scan.Indicators) == 0 {
			return "none"
		}
		return strings.Join(indicatorLabels(d.Scan.Indicators), ", ")
	}

	v := d.Text(spec.Field)
	if v == "" {
		return "-"
	}
	if spec.IsSelect() {
		return OptionLabel(spec.Options, v)
	}
	return v
}

func indicatorLabels(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, OptionLabel(Indicators, v))
	}
	return out
}
