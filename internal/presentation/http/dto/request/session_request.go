package request

// ClientRequest is a partial bill-to update; absent fields are left as-is.
type ClientRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	Zip     *string `json:"zip"`
}

// ProjectRequest is a partial project update; absent fields are left as-is.
type ProjectRequest struct {
	Name *string `json:"name"`
	Code *string `json:"project_code"`
	Type *string `json:"project_type"`
}

// ItemRequest is one line item as edited in the browser.
type ItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// UpdateSessionRequest is the PATCH body for a session. Every field is
// optional; absent fields are left untouched and items, when present,
// replace the whole list.
type UpdateSessionRequest struct {
	Date         *string         `json:"date"` // YYYY-MM-DD
	SerialNumber *int            `json:"serial_number"`
	Currency     *string         `json:"currency"`
	InvoiceType  *string         `json:"invoice_type"`
	GSTPercent   *float64        `json:"gst_percent"`
	PaymentMade  *float64        `json:"payment_made"`
	PreparedBy   *string         `json:"prepared_by"`
	VerifiedBy   *string         `json:"verified_by"`
	Client       *ClientRequest  `json:"client"`
	Project      *ProjectRequest `json:"project"`
	Items        *[]ItemRequest  `json:"items"`
}

// AddItemRequest is the POST body for appending one line item.
type AddItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}
