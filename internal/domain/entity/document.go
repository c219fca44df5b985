package entity

import "github.com/bitsphere-automation/LD-InvGen/internal/domain/enum"

// CompanyBlock holds the issuing company header rendered at the top of the
// document. Which block is used is selected by the project code.
type CompanyBlock struct {
	Name         string   `json:"name"`
	AddressLines []string `json:"address_lines,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
}

// DocumentItem is one pre-formatted row of the item table.
type DocumentItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

// InvoiceDocument is the fully-derived snapshot consumed by the layout
// engine: state plus computed totals plus formatted strings. It is NOT
// stored anywhere - it is composed from an InvoiceState at render time, so
// preview and export always format through the same path.
type InvoiceDocument struct {
	Title         string           `json:"title"`
	Company       CompanyBlock     `json:"company"`
	ProjectCode   enum.ProjectCode `json:"project_code"`
	Logo          []byte           `json:"-"`
	LogoFormat    string           `json:"-"`
	InvoiceNumber string           `json:"invoice_number"`
	NumberDisplay string           `json:"number_display"`
	DateDisplay   string           `json:"date_display"`
	ProjectName   string           `json:"project_name"`
	CurrencyCode  string           `json:"currency_code"`
	ClientLines   []string         `json:"client_lines,omitempty"`
	Items         []DocumentItem   `json:"items"`
	Subtotal      string           `json:"subtotal"`
	ShowTax       bool             `json:"show_tax"`
	TaxLabel      string           `json:"tax_label,omitempty"`
	TaxAmount     string           `json:"tax_amount,omitempty"`
	Total         string           `json:"total"`
	PaymentMade   string           `json:"payment_made"`
	BalanceDue    string           `json:"balance_due"`
	TermsIntro    string           `json:"terms_intro,omitempty"`
	TermsLines    []string         `json:"terms_lines,omitempty"`
	PreparedBy    string           `json:"prepared_by,omitempty"`
	VerifiedBy    string           `json:"verified_by,omitempty"`
}

// FileName is the exported document's file name.
func (d *InvoiceDocument) FileName() string {
	return d.InvoiceNumber + ".pdf"
}

// Lines returns the client block as display lines, one per non-empty field
// group, in the bill-to order of the editor. Empty fields produce no line.
func (c Client) Lines() []string {
	var lines []string
	if c.Name != "" {
		lines = append(lines, c.Name)
	}
	if c.Address != "" {
		lines = append(lines, c.Address)
	}
	if l := joinPair(c.City, c.State, ", "); l != "" {
		lines = append(lines, l)
	}
	if l := joinPair(c.Country, c.Zip, " "); l != "" {
		lines = append(lines, l)
	}
	return lines
}

func joinPair(a, b, sep string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + sep + b
}
