package strategy

// Field names a single input of the draft. Field names are unique across
// sections and double as the keys of ValidationErrors.
type Field string

const (
	FieldExchange     Field = "exchange"
	FieldInstrument   Field = "instrument"
	FieldIndicators   Field = "indicators"
	FieldCustomFilter Field = "customFilter"

	FieldEntryType  Field = "entryType"
	FieldPriceLevel Field = "priceLevel"
	FieldStopLoss   Field = "stopLoss"
	FieldLimitOrder Field = "limitOrder"

	FieldExitType      Field = "exitType"
	FieldProfitTarget  Field = "profitTarget"
	FieldTrailingStop  Field = "trailingStop"
	FieldTimeBasedExit Field = "timeBasedExit"

	FieldName           Field = "name"
	FieldInitialCapital Field = "initialCapital"
	FieldPositionSize   Field = "positionSize"
	FieldBacktest       Field = "backtest"
)

// Kind is the declared value type of a field.
type Kind int

const (
	KindText Kind = iota // string; selects are text restricted to Options
	KindBool             // toggle
	KindList             // ordered []string of option values
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// FieldSpec describes how a field is stored and presented.
type FieldSpec struct {
	Field       Field
	Section     Section
	Kind        Kind
	Label       string
	Placeholder string
	Options     []Option // non-nil for selects and lists
}

// IsSelect reports whether the field is text chosen from a fixed option set.
func (s FieldSpec) IsSelect() bool {
	return s.Kind == KindText && len(s.Options) > 0
}

// fieldSpecs is ordered as the fields appear in each step's form.
var fieldSpecs = []FieldSpec{
	{Field: FieldExchange, Section: SectionScanner, Kind: KindText, Label: "Exchange", Placeholder: "Select exchange", Options: Exchanges},
	{Field: FieldInstrument, Section: SectionScanner, Kind: KindText, Label: "Instrument", Placeholder: "Select instrument", Options: Instruments},
	{Field: FieldIndicators, Section: SectionScanner, Kind: KindList, Label: "Indicators", Options: Indicators},
	{Field: FieldCustomFilter, Section: SectionScanner, Kind: KindText, Label: "Custom Filter (Optional)", Placeholder: "E.g., Volume > 1M AND Price > 200MA"},

	{Field: FieldEntryType, Section: SectionBuy, Kind: KindText, Label: "Entry Type", Placeholder: "Select entry type", Options: EntryTypes},
	{Field: FieldPriceLevel, Section: SectionBuy, Kind: KindText, Label: "Price Level", Placeholder: "Enter price level"},
	{Field: FieldStopLoss, Section: SectionBuy, Kind: KindText, Label: "Stop Loss", Placeholder: "Enter stop loss level"},
	{Field: FieldLimitOrder, Section: SectionBuy, Kind: KindBool, Label: "Use limit order for entries"},

	{Field: FieldExitType, Section: SectionSell, Kind: KindText, Label: "Exit Type", Placeholder: "Select exit type", Options: ExitTypes},
	{Field: FieldProfitTarget, Section: SectionSell, Kind: KindText, Label: "Profit Target", Placeholder: "Enter profit target"},
	{Field: FieldTrailingStop, Section: SectionSell, Kind: KindBool, Label: "Use trailing stop"},
	{Field: FieldTimeBasedExit, Section: SectionSell, Kind: KindText, Label: "Time-Based Exit (Optional)", Placeholder: "E.g., Exit after 5 days"},

	{Field: FieldName, Section: SectionSimulation, Kind: KindText, Label: "Strategy Name", Placeholder: "Enter strategy name"},
	{Field: FieldInitialCapital, Section: SectionSimulation, Kind: KindText, Label: "Initial Capital", Placeholder: "Enter initial capital"},
	{Field: FieldPositionSize, Section: SectionSimulation, Kind: KindText, Label: "Position Size (%)", Placeholder: "Enter position size percentage"},
	{Field: FieldBacktest, Section: SectionSimulation, Kind: KindBool, Label: "Run backtest after creation"},
}

// Lookup returns the spec of a field.
func Lookup(f Field) (FieldSpec, bool) {
	for _, s := range fieldSpecs {
		if s.Field == f {
			return s, true
		}
	}
	return FieldSpec{}, false
}

// Fields returns the specs of a section's fields in form order.
func Fields(section Section) []FieldSpec {
	var out []FieldSpec
	for _, s := range fieldSpecs {
		if s.Section == section {
			out = append(out, s)
		}
	}
	return out
}

// AllFields returns every field spec in wizard order.
func AllFields() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}
