package money

import (
	"math"
	"testing"

	"github.com/bitsphere-automation/LD-InvGen/internal/domain/enum"
)

func TestSymbolFor(t *testing.T) {
	tests := []struct {
		name     string
		currency enum.Currency
		want     string
	}{
		{"INR", enum.CurrencyINR, "Rs."},
		{"USD", enum.CurrencyUSD, "$"},
		{"Unknown code fails closed", enum.Currency("EUR"), ""},
		{"Empty code fails closed", enum.CurrencyUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SymbolFor(tt.currency); got != tt.want {
				t.Errorf("SymbolFor(%q) = %q, want %q", tt.currency, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"Whole number", 100, "100.00"},
		{"Two decimals kept", 99.99, "99.99"},
		{"Extra precision rounded", 1.005, "1.00"}, // 1.005 is stored below 1.005 in binary
		{"Half to even rounds up", 2.675000000000001, "2.68"},
		{"Zero", 0, "0.00"},
		{"Negative balance", -12.5, "-12.50"},
		{"NaN coerced to zero", math.NaN(), "0.00"},
		{"Positive infinity coerced", math.Inf(1), "0.00"},
		{"Negative infinity coerced", math.Inf(-1), "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.value); got != tt.want {
				t.Errorf("FormatAmount(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatWithSymbol(t *testing.T) {
	if got := FormatWithSymbol(enum.CurrencyINR, 1250); got != "Rs.1250.00" {
		t.Errorf("FormatWithSymbol = %q, want %q", got, "Rs.1250.00")
	}
	// Unknown currency renders a bare amount, never crashes.
	if got := FormatWithSymbol(enum.Currency("XYZ"), 5); got != "5.00" {
		t.Errorf("FormatWithSymbol unknown = %q, want %q", got, "5.00")
	}
}
