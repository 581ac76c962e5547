// Package money renders numeric amounts as locale-specific display strings.
// The set of supported currencies is a static table; switching currency only
// changes how a number is shown, never the number itself.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency identifies a supported display currency.
type Currency string

const (
	USD Currency = "USD"
	IDR Currency = "IDR"
)

// convention fixes how one currency is displayed: locale grouping, symbol
// and fraction digit bounds.
type convention struct {
	tag         language.Tag
	symbol      string
	minFraction int
	maxFraction int
}

var conventions = map[Currency]convention{
	USD: {language.AmericanEnglish, "$", 2, 2},
	IDR: {language.Indonesian, "Rp ", 0, 2},
}

// ParseCurrency maps a stored code to a supported currency.
func ParseCurrency(code string) (Currency, bool) {
	c := Currency(code)
	_, ok := conventions[c]
	return c, ok
}

// Currencies lists the supported codes.
func Currencies() []Currency {
	return []Currency{USD, IDR}
}

// Format renders amount in the display convention of c. Zero, negative and
// fractional values all format cleanly; an unknown currency falls back to
// the USD convention.
func Format(amount float64, c Currency) string {
	conv, ok := conventions[c]
	if !ok {
		conv = conventions[USD]
	}

	p := message.NewPrinter(conv.tag)
	digits := p.Sprintf("%v", number.Decimal(math.Abs(amount),
		number.MinFractionDigits(conv.minFraction),
		number.MaxFractionDigits(conv.maxFraction)))

	if amount < 0 {
		return "-" + conv.symbol + digits
	}
	return conv.symbol + digits
}
