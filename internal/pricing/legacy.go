package pricing

import (
	"regexp"

	"github.com/shopspring/decimal"

	"patio-system/internal/domain"
)

// Legacy catalog data encodes a choice's price inside its display label,
// e.g. "Upgrade to Poutine (+$2.00)". This adapter lives at the data-import
// boundary only; core pricing works on structured Choice values.

var priceModPattern = regexp.MustCompile(`\(\+\$(\d+(?:\.\d{2})?)\)`)

// ResolvePriceModifier extracts the embedded price annotation from a legacy
// choice label. Absent or malformed annotations resolve to zero.
func ResolvePriceModifier(label string) decimal.Decimal {
	m := priceModPattern.FindStringSubmatch(label)
	if m == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseLegacyChoice converts a legacy choice string into a structured
// Choice. The label is kept verbatim, annotation included, so tickets and
// re-exports of legacy data are byte-identical.
func ParseLegacyChoice(label string) domain.Choice {
	return domain.Choice{Label: label, PriceModifier: ResolvePriceModifier(label)}
}

func ParseLegacyChoices(labels []string) []domain.Choice {
	out := make([]domain.Choice, 0, len(labels))
	for _, l := range labels {
		out = append(out, ParseLegacyChoice(l))
	}
	return out
}
