package strategy

// Option is one choice of a select or list field.
type Option struct {
	Value string
	Label string
}

// Option catalogues offered by the wizard. Values are stored in the draft,
// labels are displayed.
var (
	Exchanges = []Option{
		{Value: "forex", Label: "NSE"},
		{Value: "stocks", Label: "BSE"},
		{Value: "crypto", Label: "Cryptocurrency"},
	}

	Instruments = []Option{
		{Value: "I1", Label: "Instrument 1"},
		{Value: "I2", Label: "Instrument 2"},
		{Value: "I3", Label: "Instrument 3"},
	}

	EntryTypes = []Option{
		{Value: "market", Label: "Market Order"},
		{Value: "limit", Label: "Limit Order"},
		{Value: "stop", Label: "Stop Order"},
	}

	ExitTypes = []Option{
		{Value: "takeProfit", Label: "Take Profit"},
		{Value: "trailingStop", Label: "Trailing Stop"},
		{Value: "indicatorBased", Label: "Indicator Based"},
	}

	Indicators = []Option{
		{Value: "sma", Label: "SMA"},
		{Value: "ema", Label: "EMA"},
		{Value: "rsi", Label: "RSI"},
		{Value: "macd", Label: "MACD"},
		{Value: "bollinger", Label: "Bollinger Bands"},
		{Value: "vwap", Label: "VWAP"},
	}
)

// OptionIndex returns the position of value in opts, or -1.
func OptionIndex(opts []Option, value string) int {
	for i, o := range opts {
		if o.Value == value {
			return i
		}
	}
	return -1
}

// OptionLabel returns the display label for value, falling back to the raw
// value when it is not one of opts.
func OptionLabel(opts []Option, value string) string {
	if i := OptionIndex(opts, value); i >= 0 {
		return opts[i].Label
	}
	return value
}
