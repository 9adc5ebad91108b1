package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"patio-system/internal/domain"
)

const divider = "--------------------------------"

func currency(d decimal.Decimal) string { return "$" + d.StringFixed(2) }

// RenderTicket formats an order the way the patio kitchen printer expects
// it: header, per-item lines with option details, totals and the signed
// payroll-deduction agreement line.
func RenderTicket(order domain.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", divider)
	fmt.Fprintf(&b, "      PATIO KITCHEN TICKET\n")
	fmt.Fprintf(&b, "%s\n", divider)
	fmt.Fprintf(&b, "Time:  %s\n", order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
	fmt.Fprintf(&b, "Staff: %s\n", order.EmployeeEmail)
	fmt.Fprintf(&b, "%s\n", divider)
	fmt.Fprintf(&b, "ITEMS:\n")

	for _, item := range order.Items {
		fmt.Fprintf(&b, "%d x %s @ %s\n", item.Quantity, item.MenuItem.Name, currency(item.MenuItem.BasePrice))
		for _, opt := range item.SelectedOptions {
			line := fmt.Sprintf("   - %s: %s", opt.OptionName, opt.Value.String())
			if opt.ExtraCost.IsPositive() {
				line += fmt.Sprintf(" (+%s)", currency(opt.ExtraCost))
			}
			fmt.Fprintf(&b, "%s\n", line)
		}
	}

	discount := "None"
	if order.DiscountApplied {
		discount = "50% OFF (Happy Hour)"
	}
	fmt.Fprintf(&b, "%s\n", divider)
	fmt.Fprintf(&b, "Subtotal: %s\n", currency(order.Subtotal))
	fmt.Fprintf(&b, "Discount: %s\n", discount)
	fmt.Fprintf(&b, "TOTAL:    %s\n", currency(order.FinalTotal))
	fmt.Fprintf(&b, "%s\n", divider)
	fmt.Fprintf(&b, "AGREEMENT SIGNED: YES\n")
	fmt.Fprintf(&b, "%s\n", divider)

	return b.String()
}
