package enum

import "encoding/json"

// InvoiceType gates whether GST is applied to the invoice
type InvoiceType string

const (
	InvoiceTypeTax          InvoiceType = "Tax Invoice"
	InvoiceTypeBillOfSupply InvoiceType = "Bill of Supply"
	InvoiceTypeUnknown      InvoiceType = ""
)

// ParseInvoiceType maps a wire value to a known invoice type. Unknown values
// degrade to InvoiceTypeUnknown, which renders without a tax row.
func ParseInvoiceType(s string) InvoiceType {
	switch InvoiceType(s) {
	case InvoiceTypeTax:
		return InvoiceTypeTax
	case InvoiceTypeBillOfSupply:
		return InvoiceTypeBillOfSupply
	}
	return InvoiceTypeUnknown
}

// AppliesTax reports whether GST should be computed and rendered.
func (t InvoiceType) AppliesTax() bool {
	return t == InvoiceTypeTax
}

func (t InvoiceType) String() string {
	return string(t)
}

func (t InvoiceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *InvoiceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = ParseInvoiceType(str)
	return nil
}
