package invoice

import (
	"math"
	"strconv"
	"strings"
)

// Totals holds every derived amount of the document. It is always
// recomputed from the items and rates, never stored independently.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	TaxAmount      float64
	GrandTotal     float64
}

// ComputeTotals applies the discount and then the tax, in that fixed
// order: tax is charged on the post-discount amount, not on the raw
// subtotal. A hidden row contributes zero regardless of its stored rate.
// Negative rates are not clamped and propagate arithmetically.
func ComputeTotals(subtotal float64, discountRate, taxRate string, showDiscount, showTax bool) Totals {
	t := Totals{Subtotal: subtotal}
	if showDiscount {
		t.DiscountAmount = subtotal * rateNumber(discountRate) / 100
	}
	afterDiscount := subtotal - t.DiscountAmount
	if showTax {
		t.TaxAmount = afterDiscount * rateNumber(taxRate) / 100
	}
	t.GrandTotal = afterDiscount + t.TaxAmount
	return t
}

// rateNumber parses a percentage as entered. Unlike item quantities,
// negative rates pass through unclamped.
func rateNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
