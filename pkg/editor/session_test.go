package editor

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoizy/invoizy/pkg/invoice"
	"github.com/invoizy/invoizy/pkg/logger"
	"github.com/invoizy/invoizy/pkg/money"
	"github.com/invoizy/invoizy/pkg/store"
)

var testNow = time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)

func testClock() func() time.Time {
	return func() time.Time { return testNow }
}

func newTestSession(t *testing.T) (*Session, *store.FileStore) {
	t.Helper()
	st := store.NewFileStore(t.TempDir(), "invoiceMaker_data_v4", logger.NewNop())
	s := NewSession(st, 10*time.Millisecond, logger.NewNop(), WithClock(testClock()))
	t.Cleanup(s.Close)
	return s, st
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestSessionStartsFromDefaults(t *testing.T) {
	s, _ := newTestSession(t)
	v := s.View()

	assert.Equal(t, "INVOICE", v.Title)
	assert.Equal(t, "2026-01-15", v.IssueDate)
	assert.Equal(t, "2026-02-14", v.DueDate)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "$0.00", v.Totals.GrandTotal)
}

func TestSetFieldRecalculatesAndPersists(t *testing.T) {
	s, st := newTestSession(t)

	id := invoice.Handle(s.View().Items[0].ID)
	require.NoError(t, s.UpdateItem(id, invoice.LineItem{Description: "design", Quantity: "2", UnitPrice: "50"}))
	require.NoError(t, s.SetField("taxRate", "10"))
	require.NoError(t, s.SetField("invoiceTitle", "TAX INVOICE"))

	v := s.View()
	assert.Equal(t, "$100.00", v.Totals.Subtotal)
	assert.Equal(t, "$10.00", v.Totals.TaxAmount)
	assert.Equal(t, "$110.00", v.Totals.GrandTotal)

	s.Flush()
	reloaded := NewSession(st, 10*time.Millisecond, logger.NewNop(), WithClock(testClock()))
	defer reloaded.Close()
	rv := reloaded.View()
	assert.Equal(t, "TAX INVOICE", rv.Title)
	assert.Equal(t, "$110.00", rv.Totals.GrandTotal)
}

func TestSetFieldUnknownName(t *testing.T) {
	s, _ := newTestSession(t)
	assert.ErrorIs(t, s.SetField("nope", "x"), ErrUnknownField)
}

func TestCurrencySwitchChangesOnlyFormatting(t *testing.T) {
	s, _ := newTestSession(t)
	id := invoice.Handle(s.View().Items[0].ID)
	require.NoError(t, s.UpdateItem(id, invoice.LineItem{Quantity: "3", UnitPrice: "1000"}))

	before := s.Document().Totals()
	s.SetCurrency(money.IDR)
	after := s.Document().Totals()

	assert.Equal(t, before, after)
	assert.Equal(t, "Rp 3.000", s.View().Totals.GrandTotal)
}

func TestToggleDiscountZeroesAmountKeepsRate(t *testing.T) {
	s, _ := newTestSession(t)
	id := invoice.Handle(s.View().Items[0].ID)
	require.NoError(t, s.UpdateItem(id, invoice.LineItem{Quantity: "1", UnitPrice: "100"}))
	require.NoError(t, s.SetField("discountRate", "10"))

	assert.Equal(t, "$10.00", s.View().Totals.DiscountAmount)

	s.ShowDiscount(false)
	assert.Equal(t, "$0.00", s.View().Totals.DiscountAmount)
	assert.Equal(t, "10", s.View().DiscountRate)

	s.ShowDiscount(true)
	assert.Equal(t, "$10.00", s.View().Totals.DiscountAmount)
}

func TestRemoveLastItemThenReloadYieldsOneRow(t *testing.T) {
	s, st := newTestSession(t)
	for _, it := range s.View().Items {
		require.NoError(t, s.RemoveItem(invoice.Handle(it.ID)))
	}
	assert.Empty(t, s.View().Items)

	s.Flush()
	reloaded := NewSession(st, 10*time.Millisecond, logger.NewNop(), WithClock(testClock()))
	defer reloaded.Close()

	items := reloaded.View().Items
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].Description)
}

func TestUploadLogo(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.UploadLogo(pngBytes(t)))
	v := s.View()
	require.NotNil(t, v.Logo)
	assert.Equal(t, float64(invoice.DefaultLogoSize), v.Logo.Size)

	s.MoveLogo(120, -30)
	s.ResizeLogo(200)
	v = s.View()
	assert.Equal(t, 120.0, v.Logo.OffsetX)
	assert.Equal(t, -30.0, v.Logo.OffsetY)
	assert.Equal(t, 200.0, v.Logo.Size)

	s.ClearLogo()
	assert.Nil(t, s.View().Logo)
}

func TestUploadLogoIgnoresNonImage(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.UploadLogo([]byte("not an image")))
	assert.Nil(t, s.View().Logo)

	// An existing logo survives a bad upload.
	require.NoError(t, s.UploadLogo(pngBytes(t)))
	require.NoError(t, s.UploadLogo([]byte("still not an image")))
	assert.NotNil(t, s.View().Logo)
}

func TestNewInvoiceRequiresConfirmation(t *testing.T) {
	s, _ := newTestSession(t)
	assert.ErrorIs(t, s.NewInvoice(false), ErrNotConfirmed)
}

func TestNewInvoiceClearsStoreAndResets(t *testing.T) {
	s, st := newTestSession(t)
	require.NoError(t, s.SetField("invoiceTitle", "KEEP ME NOT"))
	s.Flush()
	_, err := os.Stat(st.Path())
	require.NoError(t, err)

	require.NoError(t, s.NewInvoice(true))

	_, err = os.Stat(st.Path())
	assert.True(t, os.IsNotExist(err))
	v := s.View()
	assert.Equal(t, "INVOICE", v.Title)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "draft", v.Status)
}

func TestCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	st := store.NewFileStore(dir, "invoiceMaker_data_v4", logger.NewNop())
	require.NoError(t, os.WriteFile(st.Path(), []byte("][ garbage"), 0o644))

	s := NewSession(st, 10*time.Millisecond, logger.NewNop(), WithClock(testClock()))
	defer s.Close()

	v := s.View()
	assert.Equal(t, "INVOICE", v.Title)
	assert.Equal(t, "2026-01-15", v.IssueDate)
	assert.Equal(t, "2026-02-14", v.DueDate)
	require.Len(t, v.Items, 1)
}
