// Package draft implements the step wizard that builds a strategy draft.
//
// A Controller owns the draft, the current step and the validation errors of
// the last step that was checked. It is synchronous and not safe for
// concurrent use; exactly one caller (the UI or the headless driver) drives it.
package draft

import (
	"fmt"

	"github.com/mark3labs/tradingstudio/internal/logger"
	"github.com/mark3labs/tradingstudio/internal/strategy"
)

// LastStep is the index of the final (Simulation) step.
const LastStep = strategy.StepCount - 1

// Controller is the step wizard state machine: Scan → Buy → Sell → Simulation.
type Controller struct {
	draft     strategy.Draft
	step      int
	errors    strategy.ValidationErrors
	completed bool

	onCreated func(strategy.Draft)
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnCreated sets the callback fired once when Advance succeeds on the
// last step. It receives a copy of the finished draft.
func WithOnCreated(fn func(strategy.Draft)) Option {
	return func(c *Controller) {
		c.onCreated = fn
	}
}

// WithDraft starts the wizard from a prefilled draft instead of an empty one.
func WithDraft(d strategy.Draft) Option {
	return func(c *Controller) {
		c.draft = d.Clone()
	}
}

// New creates a controller on step 0 with a fresh draft and no errors.
func New(opts ...Option) *Controller {
	c := &Controller{
		errors:    strategy.ValidationErrors{},
		onCreated: func(strategy.Draft) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.onCreated == nil {
		c.onCreated = func(strategy.Draft) {}
	}
	return c
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() strategy.Draft {
	return c.draft.Clone()
}

// Step returns the current step index in [0, LastStep].
func (c *Controller) Step() int {
	return c.step
}

// Section returns the section edited on the current step.
func (c *Controller) Section() strategy.Section {
	section, _ := strategy.SectionForStep(c.step)
	return section
}

// StepName returns the label of the current step.
func (c *Controller) StepName() string {
	return c.Section().Title()
}

// IsLast reports whether the current step is the final one.
func (c *Controller) IsLast() bool {
	return c.step == LastStep
}

// Progress returns how far through the wizard the current step is, in percent.
func (c *Controller) Progress() float64 {
	return float64(c.step+1) / float64(strategy.StepCount) * 100
}

// Errors returns a copy of the current validation errors.
func (c *Controller) Errors() strategy.ValidationErrors {
	return c.errors.Clone()
}

// Error returns the message for one field, or "".
func (c *Controller) Error(f strategy.Field) string {
	return c.errors[f]
}

// Completed reports whether Advance has succeeded on the last step.
func (c *Controller) Completed() bool {
	return c.completed
}

// SetField replaces one field of one section and clears that field's error,
// leaving every other field and error untouched. It returns an error, and
// changes nothing, if the field is unknown, belongs to another section, or
// value has the wrong type for the field.
func (c *Controller) SetField(section strategy.Section, field strategy.Field, value any) error {
	spec, ok := strategy.Lookup(field)
	if !ok {
		return fmt.Errorf("%w: %s", strategy.ErrUnknownField, field)
	}
	if spec.Section != section {
		return fmt.Errorf("%w: %s is in %s, not %s", strategy.ErrFieldSection, field, spec.Section, section)
	}
	if err := c.draft.Set(field, value); err != nil {
		return err
	}

	if _, exists := c.errors[field]; exists {
		delete(c.errors, field)
	}
	return nil
}

// ValidateStep recomputes the errors from scratch for the given step,
// replacing any previous errors, and reports whether there are none.
func (c *Controller) ValidateStep(step int) bool {
	c.errors = c.draft.Validate(step)
	if len(c.errors) > 0 {
		logger.Debug("Step %d validation failed: %v", step, c.errors.Fields())
		return false
	}
	return true
}

// Advance validates the current step. On failure it returns false and the
// step is unchanged. On success it moves to the next step, or on the last
// step marks the wizard completed and fires the created callback. The
// callback fires at most once; the draft is not reset.
func (c *Controller) Advance() bool {
	if !c.ValidateStep(c.step) {
		return false
	}

	if c.step < LastStep {
		c.step++
		logger.Debug("Wizard advanced to step %d (%s)", c.step, c.StepName())
		return true
	}

	if !c.completed {
		c.completed = true
		logger.Info("Strategy %q created", c.draft.Simulation.Name)
		c.onCreated(c.draft.Clone())
	}
	return true
}

// Retreat moves back one step without validating. Errors are left as they are.
func (c *Controller) Retreat() {
	if c.step > 0 {
		c.step--
		logger.Debug("Wizard retreated to step %d (%s)", c.step, c.StepName())
	}
}

// Reset discards the draft and returns to step 0. It is never called by the
// controller itself.
func (c *Controller) Reset() {
	c.draft = strategy.Draft{}
	c.step = 0
	c.errors = strategy.ValidationErrors{}
	c.completed = false
}
