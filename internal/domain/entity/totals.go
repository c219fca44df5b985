package entity

import (
	"math"

	"github.com/bitsphere-automation/LD-InvGen/internal/domain/enum"
)

// Totals is the derived money block of an invoice. PaymentMade is the
// sanitized payment the balance was computed from, carried along so callers
// render the exact figure that entered the subtraction.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	TaxAmount   float64 `json:"tax_amount"`
	Total       float64 `json:"total"`
	PaymentMade float64 `json:"payment_made"`
	BalanceDue  float64 `json:"balance_due"`
}

// ComputeTotals derives subtotal, tax, total and balance due. Pure and cheap
// enough to run on every patch.
//
// Each item's quantity and price are zero-guarded independently, so one
// malformed item cannot corrupt the sum. GST applies only to Tax Invoices and
// the percentage is clamped to [0,100]. Balance due may be negative: an
// overpayment legitimately shows as credit.
func ComputeTotals(items []LineItem, gstPercent float64, invoiceType enum.InvoiceType, paymentMade float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount()
	}

	var tax float64
	if invoiceType.AppliesTax() {
		tax = subtotal * clampPercent(gstPercent) / 100
	}

	total := subtotal + tax
	payment := sanitizeNonNegative(paymentMade)
	return Totals{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		Total:       total,
		PaymentMade: payment,
		BalanceDue:  total - payment,
	}
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// sanitizeNonNegative coerces NaN, infinities and negative values to zero.
// Negative monetary inputs are treated as zero when summing rather than
// silently producing negative amounts.
func sanitizeNonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
