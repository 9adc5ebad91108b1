package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"patio-system/internal/domain"
)

var half = decimal.NewFromFloat(0.5)

// Totals is the priced summary of a whole order. The discount is
// all-or-nothing on the order, decided once and frozen at submission.
type Totals struct {
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	FinalTotal decimal.Decimal
}

// ValidateSelections checks that every required option of item has a
// non-empty answer. Violation returns a ValidationError naming the option;
// the caller must surface it and not proceed.
func ValidateSelections(item domain.MenuItem, answers map[string]domain.StringList) error {
	for _, opt := range item.Options {
		if !opt.Required {
			continue
		}
		if answered(answers[opt.ID]) {
			continue
		}
		return &domain.ValidationError{Option: opt.Name, Reason: "a selection is required"}
	}
	return nil
}

func answered(vals domain.StringList) bool {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// BuildSelections validates answers against the item's options and resolves
// their extra costs, then appends the chosen add-ons and an optional
// zero-cost dietary note. Free-text answers never add cost; unanswered
// optional options add nothing.
func BuildSelections(item domain.MenuItem, answers map[string]domain.StringList, addons []domain.GlobalAddon, dietaryNotes string) ([]domain.OptionSelection, error) {
	if err := ValidateSelections(item, answers); err != nil {
		return nil, err
	}

	var out []domain.OptionSelection
	for _, opt := range item.Options {
		vals := answers[opt.ID]
		if !answered(vals) {
			continue
		}
		extra := decimal.Zero
		if opt.Type == domain.OptionSelect {
			for _, v := range vals {
				ch, ok := findChoice(opt.Choices, v)
				if !ok {
					return nil, &domain.ValidationError{
						Option: opt.Name,
						Reason: fmt.Sprintf("%q is not one of the offered choices", v),
					}
				}
				extra = extra.Add(ch.PriceModifier)
			}
		}
		out = append(out, domain.OptionSelection{
			OptionName: opt.Name,
			Value:      vals,
			ExtraCost:  extra,
		})
	}

	for _, a := range addons {
		out = append(out, domain.OptionSelection{
			OptionName: "Extra",
			Value:      domain.StringList{a.Name},
			ExtraCost:  a.Price,
		})
	}

	if note := strings.TrimSpace(dietaryNotes); note != "" {
		out = append(out, domain.OptionSelection{
			OptionName: "Dietary/Subs",
			Value:      domain.StringList{note},
			ExtraCost:  decimal.Zero,
		})
	}
	return out, nil
}

func findChoice(choices []domain.Choice, label string) (domain.Choice, bool) {
	for _, c := range choices {
		if c.Label == label {
			return c, true
		}
	}
	return domain.Choice{}, false
}

// UnitPrice is the item's base price plus the resolved extra cost of every
// selection. Selection order never changes the result.
func UnitPrice(item domain.MenuItem, selections []domain.OptionSelection) decimal.Decimal {
	total := item.BasePrice
	for _, s := range selections {
		total = total.Add(s.ExtraCost)
	}
	return total
}

// LineTotal multiplies a unit price by quantity. The selection UI clamps
// quantity to >= 1 already, but a bad quantity is still rejected here.
func LineTotal(unit decimal.Decimal, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, &domain.ValidationError{Reason: fmt.Sprintf("quantity must be at least 1, got %d", quantity)}
	}
	return unit.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// OrderTotals sums the line totals and applies the blanket 50% happy-hour
// discount when active. Exact decimal arithmetic keeps
// FinalTotal == Subtotal/2 with no drift.
func OrderTotals(lineTotals []decimal.Decimal, happyHour bool) Totals {
	subtotal := decimal.Zero
	for _, lt := range lineTotals {
		subtotal = subtotal.Add(lt)
	}
	discount := decimal.Zero
	if happyHour {
		discount = subtotal.Mul(half)
	}
	return Totals{
		Subtotal:   subtotal,
		Discount:   discount,
		FinalTotal: subtotal.Sub(discount),
	}
}
