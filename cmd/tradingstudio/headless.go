package main

import (
	"fmt"
	"strings"

	"github.com/mark3labs/tradingstudio/internal/draft"
	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/spf13/cobra"
)

// fieldFlags maps each draft field to its `create` flag.
var fieldFlags = map[strategy.Field]string{
	strategy.FieldExchange:       "exchange",
	strategy.FieldInstrument:     "instrument",
	strategy.FieldIndicators:     "indicator",
	strategy.FieldCustomFilter:   "filter",
	strategy.FieldEntryType:      "entry-type",
	strategy.FieldPriceLevel:     "price-level",
	strategy.FieldStopLoss:       "stop-loss",
	strategy.FieldLimitOrder:     "limit-order",
	strategy.FieldExitType:       "exit-type",
	strategy.FieldProfitTarget:   "profit-target",
	strategy.FieldTrailingStop:   "trailing-stop",
	strategy.FieldTimeBasedExit:  "time-exit",
	strategy.FieldName:           "name",
	strategy.FieldInitialCapital: "capital",
	strategy.FieldPositionSize:   "position-size",
	strategy.FieldBacktest:       "backtest",
}

// IncompleteError reports the step that failed validation in headless mode.
type IncompleteError struct {
	Step   int
	Name   string
	Errors strategy.ValidationErrors
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("step %d (%s) is incomplete: %d required field(s) missing", e.Step+1, e.Name, len(e.Errors))
}

// Lines returns one "field: message" line per error, sorted by field.
func (e *IncompleteError) Lines() []string {
	lines := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors.Fields() {
		lines = append(lines, fmt.Sprintf("%s: %s", f, e.Errors[f]))
	}
	return lines
}

// requiredFlagsHelp lists, per step, the flags headless mode cannot do without.
func requiredFlagsHelp() string {
	var b strings.Builder
	for step := range strategy.StepCount {
		section, _ := strategy.SectionForStep(step)
		required := strategy.RequiredFields(step)
		flags := make([]string, 0, len(required))
		for _, f := range required {
			flags = append(flags, "--"+fieldFlags[f])
		}
		fmt.Fprintf(&b, "  %d. %-11s %s\n", step+1, section.Title(), strings.Join(flags, ", "))
	}
	return b.String()
}

// addFieldFlags registers one flag per draft field on cmd.
func addFieldFlags(cmd *cobra.Command) {
	for _, spec := range strategy.AllFields() {
		name := fieldFlags[spec.Field]
		usage := spec.Label
		if spec.IsSelect() || spec.Kind == strategy.KindList {
			usage += " (" + strings.Join(optionValues(spec.Options), ", ") + ")"
		}
		switch spec.Kind {
		case strategy.KindBool:
			cmd.Flags().Bool(name, false, usage)
		case strategy.KindList:
			cmd.Flags().StringSlice(name, nil, usage+"; repeatable")
		default:
			cmd.Flags().String(name, "", usage)
		}
	}
}

// fieldValues collects the field flags that were set on the command line.
// Select and list values may be given as option values or labels.
func fieldValues(cmd *cobra.Command) (map[strategy.Field]any, error) {
	values := map[strategy.Field]any{}
	flags := cmd.Flags()

	for _, spec := range strategy.AllFields() {
		name := fieldFlags[spec.Field]
		if !flags.Changed(name) {
			continue
		}

		switch spec.Kind {
		case strategy.KindBool:
			v, err := flags.GetBool(name)
			if err != nil {
				return nil, err
			}
			values[spec.Field] = v

		case strategy.KindList:
			raw, err := flags.GetStringSlice(name)
			if err != nil {
				return nil, err
			}
			list := make([]string, 0, len(raw))
			for _, r := range raw {
				v, err := resolveOption(spec, name, r)
				if err != nil {
					return nil, err
				}
				list = append(list, v)
			}
			values[spec.Field] = list

		default:
			v, err := flags.GetString(name)
			if err != nil {
				return nil, err
			}
			if spec.IsSelect() {
				if v, err = resolveOption(spec, name, v); err != nil {
					return nil, err
				}
			}
			values[spec.Field] = v
		}
	}
	return values, nil
}

// resolveOption maps an option value or label to the option value.
// Empty input stays empty so validation can report it.
func resolveOption(spec strategy.FieldSpec, flag, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" || strategy.OptionIndex(spec.Options, input) >= 0 {
		return input, nil
	}
	for _, o := range spec.Options {
		if strings.EqualFold(o.Value, input) || strings.EqualFold(o.Label, input) {
			return o.Value, nil
		}
	}
	return "", fmt.Errorf("invalid --%s %q (choose from %s)", flag, input, strings.Join(optionValues(spec.Options), ", "))
}

func optionValues(opts []strategy.Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}

// fillHeadless drives a controller through every step using values, the way
// the wizard does: set the step's fields, then advance. It stops at the first
// step that does not validate.
func fillHeadless(values map[strategy.Field]any) (strategy.Draft, error) {
	var created *strategy.Draft
	ctrl := draft.New(draft.WithOnCreated(func(d strategy.Draft) {
		created = &d
	}))

	for !ctrl.Completed() {
		section := ctrl.Section()
		for _, spec := range strategy.Fields(section) {
			v, ok := values[spec.Field]
			if !ok {
				continue
			}
			if err := ctrl.SetField(section, spec.Field, v); err != nil {
				return strategy.Draft{}, fmt.Errorf("setting --%s: %w", fieldFlags[spec.Field], err)
			}
		}

		step := ctrl.Step()
		if !ctrl.Advance() {
			return strategy.Draft{}, &IncompleteError{Step: step, Name: ctrl.StepName(), Errors: ctrl.Errors()}
		}
	}
	return *created, nil
}
