package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/bitsphere-automation/LD-InvGen/internal/domain/enum"
)

// Client holds the bill-to details. Every field is optional; empty fields are
// skipped in layout, never rendered as blank rows.
type Client struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

// Project identifies the work being billed. The code selects the company
// header and logo; the type only participates in invoice numbering.
type Project struct {
	Name string           `json:"name"`
	Code enum.ProjectCode `json:"project_code"`
	Type enum.ProjectType `json:"project_type"`
}

// LineItem is one billable row. Amount is always derived as
// quantity x unit price and never stored.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Amount returns quantity x unit price with non-finite and negative inputs
// independently coerced to zero.
func (li LineItem) Amount() float64 {
	return sanitizeNonNegative(li.Quantity) * sanitizeNonNegative(li.UnitPrice)
}

// InvoiceState is the full editable state of one invoice session. It is
// replaced wholesale on every patch; derived fields (InvoiceNumber, totals)
// are recomputed from it and never cached independently.
type InvoiceState struct {
	ID            uuid.UUID        `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	Date          time.Time        `json:"date"`
	SerialNumber  int              `json:"serial_number"`
	Currency      enum.Currency    `json:"currency"`
	InvoiceType   enum.InvoiceType `json:"invoice_type"`
	GSTPercent    float64          `json:"gst_percent"`
	PaymentMade   float64          `json:"payment_made"`
	PreparedBy    string           `json:"prepared_by"`
	VerifiedBy    string           `json:"verified_by"`
	Client        Client           `json:"client"`
	Project       Project          `json:"project"`
	Items         []LineItem       `json:"items"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewInvoiceState creates a session's starting state: serial 1, today's date,
// no items, and the form defaults of the original editor.
func NewInvoiceState(now time.Time) *InvoiceState {
	s := &InvoiceState{
		ID:           uuid.New(),
		Date:         now,
		SerialNumber: 1,
		Currency:     enum.CurrencyINR,
		InvoiceType:  enum.InvoiceTypeTax,
		GSTPercent:   18,
		Project: Project{
			Code: enum.ProjectCodeLD,
			Type: enum.ProjectTypeOvP,
		},
		Items:     []LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.RefreshInvoiceNumber()
	return s
}

// Clone returns a deep copy. Sessions are handed out as independent values
// so no caller aliases the stored state.
func (s *InvoiceState) Clone() *InvoiceState {
	dup := *s
	dup.Items = make([]LineItem, len(s.Items))
	copy(dup.Items, s.Items)
	return &dup
}

// RefreshInvoiceNumber regenerates the derived invoice number from the
// current project code, project type, year and serial. The stored value is
// replaced only when it actually changed; it reports whether it did.
func (s *InvoiceState) RefreshInvoiceNumber() bool {
	next := GenerateInvoiceNumber(s.Project.Code, s.Project.Type, s.Date.Year(), s.SerialNumber)
	if next == s.InvoiceNumber {
		return false
	}
	s.InvoiceNumber = next
	return true
}
