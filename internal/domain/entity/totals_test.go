package entity

import (
	"math"
	"testing"

	"github.com/bitsphere-automation/LD-InvGen/internal/domain/enum"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeTotals(t *testing.T) {
	items := []LineItem{
		{Description: "SEO audit", Quantity: 2, UnitPrice: 500},
		{Description: "Content", Quantity: 10, UnitPrice: 45.5},
	}

	tests := []struct {
		name        string
		items       []LineItem
		gstPercent  float64
		invoiceType enum.InvoiceType
		paymentMade float64
		want        Totals
	}{
		{
			name:        "Tax invoice with GST",
			items:       items,
			gstPercent:  18,
			invoiceType: enum.InvoiceTypeTax,
			paymentMade: 0,
			want:        Totals{Subtotal: 1455, TaxAmount: 261.9, Total: 1716.9, BalanceDue: 1716.9},
		},
		{
			name:        "Bill of supply ignores GST percent",
			items:       items,
			gstPercent:  18,
			invoiceType: enum.InvoiceTypeBillOfSupply,
			paymentMade: 0,
			want:        Totals{Subtotal: 1455, TaxAmount: 0, Total: 1455, BalanceDue: 1455},
		},
		{
			name:        "Unknown invoice type omits tax",
			items:       items,
			gstPercent:  18,
			invoiceType: enum.InvoiceTypeUnknown,
			paymentMade: 0,
			want:        Totals{Subtotal: 1455, TaxAmount: 0, Total: 1455, BalanceDue: 1455},
		},
		{
			name:        "GST above 100 clamps to 100",
			items:       []LineItem{{Quantity: 1, UnitPrice: 100}},
			gstPercent:  250,
			invoiceType: enum.InvoiceTypeTax,
			want:        Totals{Subtotal: 100, TaxAmount: 100, Total: 200, BalanceDue: 200},
		},
		{
			name:        "Negative GST clamps to zero",
			items:       []LineItem{{Quantity: 1, UnitPrice: 100}},
			gstPercent:  -5,
			invoiceType: enum.InvoiceTypeTax,
			want:        Totals{Subtotal: 100, TaxAmount: 0, Total: 100, BalanceDue: 100},
		},
		{
			name:        "Overpayment yields negative balance",
			items:       []LineItem{{Quantity: 1, UnitPrice: 100}},
			invoiceType: enum.InvoiceTypeBillOfSupply,
			paymentMade: 150,
			want:        Totals{Subtotal: 100, TaxAmount: 0, Total: 100, PaymentMade: 150, BalanceDue: -50},
		},
		{
			name: "Malformed item zeroed independently",
			items: []LineItem{
				{Quantity: math.NaN(), UnitPrice: 100},
				{Quantity: 2, UnitPrice: 50},
			},
			invoiceType: enum.InvoiceTypeBillOfSupply,
			want:        Totals{Subtotal: 100, TaxAmount: 0, Total: 100, BalanceDue: 100},
		},
		{
			name: "Negative quantity treated as zero",
			items: []LineItem{
				{Quantity: -3, UnitPrice: 100},
				{Quantity: 1, UnitPrice: 40},
			},
			invoiceType: enum.InvoiceTypeBillOfSupply,
			want:        Totals{Subtotal: 40, TaxAmount: 0, Total: 40, BalanceDue: 40},
		},
		{
			name:        "Negative payment treated as zero",
			items:       []LineItem{{Quantity: 1, UnitPrice: 100}},
			invoiceType: enum.InvoiceTypeBillOfSupply,
			paymentMade: -20,
			want:        Totals{Subtotal: 100, TaxAmount: 0, Total: 100, BalanceDue: 100},
		},
		{
			name:        "Empty item list",
			items:       nil,
			gstPercent:  18,
			invoiceType: enum.InvoiceTypeTax,
			want:        Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items, tt.gstPercent, tt.invoiceType, tt.paymentMade)
			if !almostEqual(got.Subtotal, tt.want.Subtotal) ||
				!almostEqual(got.TaxAmount, tt.want.TaxAmount) ||
				!almostEqual(got.Total, tt.want.Total) ||
				!almostEqual(got.PaymentMade, tt.want.PaymentMade) ||
				!almostEqual(got.BalanceDue, tt.want.BalanceDue) {
				t.Errorf("ComputeTotals = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLineItemAmount(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want float64
	}{
		{"Plain multiplication", LineItem{Quantity: 3, UnitPrice: 12.5}, 37.5},
		{"NaN price zeroed", LineItem{Quantity: 3, UnitPrice: math.NaN()}, 0},
		{"Infinite quantity zeroed", LineItem{Quantity: math.Inf(1), UnitPrice: 10}, 0},
		{"Negative price zeroed", LineItem{Quantity: 2, UnitPrice: -4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Amount(); !almostEqual(got, tt.want) {
				t.Errorf("Amount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClientLines(t *testing.T) {
	tests := []struct {
		name   string
		client Client
		want   []string
	}{
		{
			name: "All fields present",
			client: Client{
				Name: "Acme Pvt Ltd", Address: "12 MG Road",
				City: "Kolkata", State: "WB", Country: "India", Zip: "700001",
			},
			want: []string{"Acme Pvt Ltd", "12 MG Road", "Kolkata, WB", "India 700001"},
		},
		{
			name:   "Empty address omitted, no blank line",
			client: Client{Name: "Acme", City: "Pune", State: "MH"},
			want:   []string{"Acme", "Pune, MH"},
		},
		{
			name:   "City without state drops separator",
			client: Client{City: "Chennai"},
			want:   []string{"Chennai"},
		},
		{
			name:   "Zip without country",
			client: Client{Zip: "560001"},
			want:   []string{"560001"},
		},
		{
			name:   "Fully empty client emits nothing",
			client: Client{},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.client.Lines()
			if len(got) != len(tt.want) {
				t.Fatalf("Lines() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Lines()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
