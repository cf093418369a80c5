// Package strategy contains the trading strategy records edited by the
// creation wizard and listed on the dashboard.
package strategy

import (
	"fmt"
	"slices"
)

// Section identifies one of the four parts of a draft.
type Section string

const (
	SectionScanner    Section = "scanner"
	SectionBuy        Section = "buy"
	SectionSell       Section = "sell"
	SectionSimulation Section = "simulation"
)

// Sections lists the draft sections in wizard order. The index of a section
// is its step number.
var Sections = []Section{SectionScanner, SectionBuy, SectionSell, SectionSimulation}

// StepCount is the number of wizard steps.
const StepCount = 4

// Title returns the step label shown in the wizard.
func (s Section) Title() string {
	switch s {
	case SectionScanner:
		return "Scan"
	case SectionBuy:
		return "Buy"
	case SectionSell:
		return "Sell"
	case SectionSimulation:
		return "Simulation"
	default:
		return string(s)
	}
}

// SectionForStep returns the section shown at the given step.
func SectionForStep(step int) (Section, bool) {
	if step < 0 || step >= len(Sections) {
		return "", false
	}
	return Sections[step], true
}

// Scan holds the instrument selection criteria.
type Scan struct {
	Exchange     string   `json:"exchange" yaml:"exchange"`
	Instrument   string   `json:"instrument" yaml:"instrument"`
	Indicators   []string `json:"indicators" yaml:"indicators"`
	CustomFilter string   `json:"customFilter" yaml:"custom_filter"`
}

// Buy holds the entry rules.
type Buy struct {
	EntryType  string `json:"entryType" yaml:"entry_type"`
	PriceLevel string `json:"priceLevel" yaml:"price_level"`
	StopLoss   string `json:"stopLoss" yaml:"stop_loss"`
	LimitOrder bool   `json:"limitOrder" yaml:"limit_order"`
}

// Sell holds the exit rules.
type Sell struct {
	ExitType      string `json:"exitType" yaml:"exit_type"`
	ProfitTarget  string `json:"profitTarget" yaml:"profit_target"`
	TrailingStop  bool   `json:"trailingStop" yaml:"trailing_stop"`
	TimeBasedExit string `json:"timeBasedExit" yaml:"time_based_exit"`
}

// Simulation holds the naming and capital settings.
type Simulation struct {
	Name           string `json:"name" yaml:"name"`
	InitialCapital string `json:"initialCapital" yaml:"initial_capital"`
	PositionSize   string `json:"positionSize" yaml:"position_size"`
	Backtest       bool   `json:"backtest" yaml:"backtest"`
}

// Draft is the in-progress strategy built across the wizard steps.
// The zero value is the fresh draft: all text empty, all flags false.
type Draft struct {
	Scan       Scan       `json:"scanner" yaml:"scanner"`
	Buy        Buy        `json:"buy" yaml:"buy"`
	Sell       Sell       `json:"sell" yaml:"sell"`
	Simulation Simulation `json:"simulation" yaml:"simulation"`
}

// Clone returns a deep copy of the draft.
func (d Draft) Clone() Draft {
	d.Scan.Indicators = slices.Clone(d.Scan.Indicators)
	return d
}

// Value returns the current value of a field: a string, a bool, or a
// []string (copied) depending on the field's kind.
func (d *Draft) Value(f Field) (any, error) {
	switch f {
	case FieldExchange:
		return d.Scan.Exchange, nil
	case FieldInstrument:
		return d.Scan.Instrument, nil
	case FieldIndicators:
		return slices.Clone(d.Scan.Indicators), nil
	case FieldCustomFilter:
		return d.Scan.CustomFilter, nil
	case FieldEntryType:
		return d.Buy.EntryType, nil
	case FieldPriceLevel:
		return d.Buy.PriceLevel, nil
	case FieldStopLoss:
		return d.Buy.StopLoss, nil
	case FieldLimitOrder:
		return d.Buy.LimitOrder, nil
	case FieldExitType:
		return d.Sell.ExitType, nil
	case FieldProfitTarget:
		return d.Sell.ProfitTarget, nil
	case FieldTrailingStop:
		return d.Sell.TrailingStop, nil
	case FieldTimeBasedExit:
		return d.Sell.TimeBasedExit, nil
	case FieldName:
		return d.Simulation.Name, nil
	case FieldInitialCapital:
		return d.Simulation.InitialCapital, nil
	case FieldPositionSize:
		return d.Simulation.PositionSize, nil
	case FieldBacktest:
		return d.Simulation.Backtest, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
}

// Text returns a text field's value, or "" for non-text fields.
func (d *Draft) Text(f Field) string {
	v, _ := d.Value(f)
	s, _ := v.(string)
	return s
}

// Flag returns a boolean field's value, or false for non-bool fields.
func (d *Draft) Flag(f Field) bool {
	v, _ := d.Value(f)
	b, _ := v.(bool)
	return b
}

// IsEmpty reports whether a field holds its zero value. Only the empty
// string counts as empty text.
func (d *Draft) IsEmpty(f Field) bool {
	v, err := d.Value(f)
	if err != nil {
		return true
	}
	switch v := v.(type) {
	case string:
		return v == ""
	case bool:
		return !v
	case []string:
		return len(v) == 0
	}
	return true
}

// Set replaces one field in place. The value's dynamic type must match the
// field's kind; a nil []string is accepted for list fields.
func (d *Draft) Set(f Field, value any) error {
	spec, ok := Lookup(f)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, f)
	}

	switch spec.Kind {
	case KindText:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s wants text, got %T", ErrFieldKind, f, value)
		}
		d.setText(f, s)
	case KindBool:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s wants bool, got %T", ErrFieldKind, f, value)
		}
		d.setFlag(f, b)
	case KindList:
		l, ok := value.([]string)
		if !ok {
			return fmt.Errorf("%w: %s wants list, got %T", ErrFieldKind, f, value)
		}
		d.Scan.Indicators = slices.Clone(l)
	}
	return nil
}

func (d *Draft) setText(f Field, s string) {
	switch f {
	case FieldExchange:
		d.Scan.Exchange = s
	case FieldInstrument:
		d.Scan.Instrument = s
	case FieldCustomFilter:
		d.Scan.CustomFilter = s
	case FieldEntryType:
		d.Buy.EntryType = s
	case FieldPriceLevel:
		d.Buy.PriceLevel = s
	case FieldStopLoss:
		d.Buy.StopLoss = s
	case FieldExitType:
		d.Sell.ExitType = s
	case FieldProfitTarget:
		d.Sell.ProfitTarget = s
	case FieldTimeBasedExit:
		d.Sell.TimeBasedExit = s
	case FieldName:
		d.Simulation.Name = s
	case FieldInitialCapital:
		d.Simulation.InitialCapital = s
	case FieldPositionSize:
		d.Simulation.PositionSize = s
	}
}

func (d *Draft) setFlag(f Field, b bool) {
	switch f {
	case FieldLimitOrder:
		d.Buy.LimitOrder = b
	case FieldTrailingStop:
		d.Sell.TrailingStop = b
	case FieldBacktest:
		d.Simulation.Backtest = b
	}
}
