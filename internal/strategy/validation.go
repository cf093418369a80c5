package strategy

import (
	"errors"
	"maps"
	"slices"
)

// Errors returned by Draft.Set for calls that do not match the field table.
// These indicate a programming mistake, not user input that failed validation.
var (
	ErrUnknownField = errors.New("unknown field")
	ErrFieldSection = errors.New("field does not belong to section")
	ErrFieldKind    = errors.New("value does not match field kind")
)

// ValidationErrors maps a field to the message shown under it.
type ValidationErrors map[Field]string

// Clone returns an independent copy. A nil receiver yields an empty map.
func (e ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(e))
	maps.Copy(out, e)
	return out
}

// Fields returns the fields with errors, sorted by name.
func (e ValidationErrors) Fields() []Field {
	return slices.Sorted(maps.Keys(e))
}

// requiredFields lists, per step, the fields that must be non-empty and the
// message reported when they are not.
var requiredFields = [StepCount][]struct {
	field   Field
	message string
}{
	{
		{FieldExchange, "Exchange is required"},
		{FieldInstrument, "Instrument is required"},
	},
	{
		{FieldEntryType, "Entry type is required"},
		{FieldPriceLevel, "Price level is required"},
	},
	{
		{FieldExitType, "Exit type is required"},
		{FieldProfitTarget, "Profit target is required"},
	},
	{
		{FieldInitialCapital, "Initial capital is required"},
		{FieldName, "Strategy name is required"},
	},
}

// RequiredFields returns the fields that block advancing past step.
func RequiredFields(step int) []Field {
	if step < 0 || step >= StepCount {
		return nil
	}
	out := make([]Field, 0, len(requiredFields[step]))
	for _, r := range requiredFields[step] {
		out = append(out, r.field)
	}
	return out
}

// IsRequired reports whether f is required by any step.
func IsRequired(f Field) bool {
	for _, step := range requiredFields {
		for _, r := range step {
			if r.field == f {
				return true
			}
		}
	}
	return false
}

// Validate computes the errors for one step from scratch. Steps outside
// [0, StepCount) have no required fields.
func (d *Draft) Validate(step int) ValidationErrors {
	errs := ValidationErrors{}
	if step < 0 || step >= StepCount {
		return errs
	}
	for _, r := range requiredFields[step] {
		if d.IsEmpty(r.field) {
			errs[r.field] = r.message
		}
	}
	return errs
}

// FirstIncomplete returns the first step with missing required fields and
// its errors, or -1 and nil when every step validates.
func (d *Draft) FirstIncomplete() (int, ValidationErrors) {
	for step := range StepCount {
		if errs := d.Validate(step); len(errs) > 0 {
			return step, errs
		}
	}
	return -1, nil
}
