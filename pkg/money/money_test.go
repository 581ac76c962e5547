package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency Currency
		want     string
	}{
		{"usd grouping and two decimals", 1234.56, USD, "$1,234.56"},
		{"usd pads fraction", 7, USD, "$7.00"},
		{"usd zero", 0, USD, "$0.00"},
		{"usd negative", -99.5, USD, "-$99.50"},
		{"idr grouping no fraction", 1234567, IDR, "Rp 1.234.567"},
		{"idr keeps entered fraction", 0.5, IDR, "Rp 0,5"},
		{"idr zero", 0, IDR, "Rp 0"},
		{"idr negative", -2500, IDR, "-Rp 2.500"},
		{"unknown currency falls back to usd", 10, Currency("XXX"), "$10.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount, tt.currency))
		})
	}
}

func TestParseCurrency(t *testing.T) {
	c, ok := ParseCurrency("IDR")
	assert.True(t, ok)
	assert.Equal(t, IDR, c)

	_, ok = ParseCurrency("EUR")
	assert.False(t, ok)
}
