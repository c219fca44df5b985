package enum

import "encoding/json"

// Currency represents the invoice currency
type Currency string

const (
	CurrencyINR     Currency = "INR"
	CurrencyUSD     Currency = "USD"
	CurrencyUnknown Currency = ""
)

// ParseCurrency maps a wire value to a known currency. Unrecognized values
// degrade to CurrencyUnknown instead of failing, so a bad code never blocks
// a render.
func ParseCurrency(s string) Currency {
	switch Currency(s) {
	case CurrencyINR:
		return CurrencyINR
	case CurrencyUSD:
		return CurrencyUSD
	}
	return CurrencyUnknown
}

// IsKnown reports whether the currency is one of the supported codes.
func (c Currency) IsKnown() bool {
	return c == CurrencyINR || c == CurrencyUSD
}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *Currency) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = ParseCurrency(str)
	return nil
}
