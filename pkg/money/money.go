// Package money formats monetary amounts for invoice rendering.
//
// Amounts are always rendered with exactly two decimal digits using Go's
// round-half-to-even float formatting, so the JSON preview and the exported
// PDF show identical strings for the same value.
package money

import (
	"math"
	"strconv"

	"github.com/bitsphere-automation/LD-InvGen/internal/domain/enum"
)

var symbols = map[enum.Currency]string{
	// "Rs." instead of the rupee sign: the PDF canvas only carries cp1252
	// core fonts, and preview must match the document exactly.
	enum.CurrencyINR: "Rs.",
	enum.CurrencyUSD: "$",
}

// SymbolFor returns the display symbol for a currency. Unknown currencies
// return an empty string rather than an error, so a bad code never aborts
// a render.
func SymbolFor(c enum.Currency) string {
	return symbols[c]
}

// Sanitize coerces NaN and infinite values to zero. Shared by the totals
// calculator so one malformed number cannot poison a whole document.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatAmount renders a value with exactly two decimal digits.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(Sanitize(v), 'f', 2, 64)
}

// FormatWithSymbol renders a value prefixed with the currency symbol,
// e.g. "Rs.1250.00".
func FormatWithSymbol(c enum.Currency, v float64) string {
	return SymbolFor(c) + FormatAmount(v)
}
