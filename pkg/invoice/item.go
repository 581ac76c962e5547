package invoice

import (
	"math"
	"strconv"
	"strings"
)

// LineItem represents one billable row on the invoice. Quantity and
// UnitPrice hold the raw entered text so a half-typed or invalid value
// survives a reload and can be re-edited; parsing happens only when an
// amount is computed.
type LineItem struct {
	Description string `json:"desc"`
	Quantity    string `json:"qty"`
	UnitPrice   string `json:"price"`
}

// Amount is the item's extended amount: quantity times unit price.
// Blank or non-numeric entries count as zero and negative entries are
// floored at zero, so the result is never NaN and never an error.
func (li LineItem) Amount() float64 {
	return itemNumber(li.Quantity) * itemNumber(li.UnitPrice)
}

func itemNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
