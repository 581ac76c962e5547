package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoizy/invoizy/pkg/invoice"
	"github.com/invoizy/invoizy/pkg/logo"
	"github.com/invoizy/invoizy/pkg/money"
)

var testNow = time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)

func TestPDFRendersDocument(t *testing.T) {
	d := invoice.DefaultDocument(testNow)
	d.Ledger = invoice.NewLedger(
		invoice.LineItem{Description: "Design work", Quantity: "10", UnitPrice: "150"},
		invoice.LineItem{Description: "Hosting", Quantity: "1", UnitPrice: "25.50"},
	)
	d.DiscountRate = "10"
	d.TaxRate = "10"
	d.Currency = money.IDR
	d.Recalculate()

	out, err := PDF(d)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPDFRendersLogo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	uri, err := logo.DataURI(buf.Bytes())
	require.NoError(t, err)

	d := invoice.DefaultDocument(testNow)
	d.Logo = invoice.Logo{Data: uri, Size: 140, OffsetX: 30, OffsetY: 10}
	d.Recalculate()

	out, err := PDF(d)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPDFSkipsUndecodableLogo(t *testing.T) {
	d := invoice.DefaultDocument(testNow)
	d.Logo = invoice.Logo{Data: "data:image/png;base64,!!!", Size: 140}

	out, err := PDF(d)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPDFOmitsHiddenRows(t *testing.T) {
	d := invoice.DefaultDocument(testNow)
	d.ShowDiscount = false
	d.ShowTax = false
	d.Recalculate()

	out, err := PDF(d)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
