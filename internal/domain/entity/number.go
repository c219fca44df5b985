package entity

import (
	"fmt"
	"strings"

	"github.com/bitsphere-automation/LD-InvGen/internal/domain/enum"
)

// GenerateInvoiceNumber derives the canonical invoice identifier:
// Invoice-{projectCode}-{projectType}-{year}-{serial}.
func GenerateInvoiceNumber(code enum.ProjectCode, ptype enum.ProjectType, year, serial int) string {
	return fmt.Sprintf("Invoice-%s-%s-%d-%d", code, ptype, year, serial)
}

// FormatInvoiceNumber re-renders a canonical invoice number for display as
// {projectType}/{year}-{serial}. The project code is not repeated here; it
// already selects the company header printed above the number. Anything that
// is not the exact five-token hyphenated shape (malformed or legacy numbers)
// is returned unchanged.
func FormatInvoiceNumber(number string) string {
	parts := strings.Split(number, "-")
	if len(parts) != 5 {
		return number
	}
	return fmt.Sprintf("%s/%s-%s", parts[2], parts[3], parts[4])
}
