package store

import (
	"time"

	"github.com/invoizy/invoizy/pkg/invoice"
	"github.com/invoizy/invoizy/pkg/money"
)

// Encode flattens the document into its persisted form. Every field of
// the document is covered; the logo offsets are read from the tracker's
// live values, not recomputed. The slider size and offsets are written
// even without an image, matching how the editor saves its controls.
func Encode(doc *invoice.Document) *Snapshot {
	s := &Snapshot{
		InvoiceTitle:      ptr(doc.Title),
		InvoiceNumber:     ptr(doc.Number),
		FromDetails:       ptr(doc.FromDetails),
		ToDetails:         ptr(doc.ToDetails),
		InvoiceDate:       ptr(doc.IssueDate),
		InvoiceDue:        ptr(doc.DueDate),
		TaxRate:           ptr(doc.TaxRate),
		DiscountRate:      ptr(doc.DiscountRate),
		Notes:             ptr(doc.Notes),
		BankName:          ptr(doc.BankName),
		BankAccountName:   ptr(doc.BankAccountName),
		BankAccountNumber: ptr(doc.BankAccountNumber),
		BankRouting:       ptr(doc.BankRouting),
		FooterThank:       ptr(doc.FooterThank),
		Status:            ptr(string(doc.Status)),
		LogoSize:          ptr(doc.Logo.Size),
		LogoX:             ptr(doc.Logo.OffsetX),
		LogoY:             ptr(doc.Logo.OffsetY),
		Template:          ptr(string(doc.Template)),
		Currency:          ptr(string(doc.Currency)),
		ShowDiscount:      ptr(doc.ShowDiscount),
		ShowTax:           ptr(doc.ShowTax),
	}
	for _, it := range doc.Ledger.Items() {
		s.Items = append(s.Items, SnapshotItem{Desc: it.Description, Qty: it.Quantity, Price: it.UnitPrice})
	}
	if doc.Logo.Present() {
		s.Logo = ptr(doc.Logo.Data)
	}
	return s
}

// Decode reconstructs a document from a snapshot. Absent fields keep the
// default-document value; an absent or empty items list becomes exactly
// one empty row; a partial logo group is treated as no logo at all. A
// nil snapshot yields the default document. Decode never fails.
func Decode(s *Snapshot, now time.Time) *invoice.Document {
	doc := invoice.DefaultDocument(now)
	if s == nil {
		return doc
	}

	setString(&doc.Title, s.InvoiceTitle)
	setString(&doc.Number, s.InvoiceNumber)
	setString(&doc.FromDetails, s.FromDetails)
	setString(&doc.ToDetails, s.ToDetails)
	setString(&doc.IssueDate, s.InvoiceDate)
	setString(&doc.DueDate, s.InvoiceDue)
	setString(&doc.TaxRate, s.TaxRate)
	setString(&doc.DiscountRate, s.DiscountRate)
	setString(&doc.Notes, s.Notes)
	setString(&doc.BankName, s.BankName)
	setString(&doc.BankAccountName, s.BankAccountName)
	setString(&doc.BankAccountNumber, s.BankAccountNumber)
	setString(&doc.BankRouting, s.BankRouting)
	setString(&doc.FooterThank, s.FooterThank)

	if s.Status != nil {
		if st, ok := invoice.ParseStatus(*s.Status); ok {
			doc.Status = st
		}
	}
	if s.Template != nil {
		if tp, ok := invoice.ParseTemplate(*s.Template); ok {
			doc.Template = tp
		}
	}
	if s.Currency != nil {
		if c, ok := money.ParseCurrency(*s.Currency); ok {
			doc.Currency = c
		}
	}
	if s.ShowDiscount != nil {
		doc.ShowDiscount = *s.ShowDiscount
	}
	if s.ShowTax != nil {
		doc.ShowTax = *s.ShowTax
	}

	if len(s.Items) > 0 {
		doc.Ledger = invoice.NewLedger()
		for _, it := range s.Items {
			doc.Ledger.AddItem(invoice.LineItem{Description: it.Desc, Quantity: it.Qty, UnitPrice: it.Price})
		}
	}
	doc.EnsureItem()

	// The logo group is all-or-nothing: any missing member means no logo.
	if s.Logo != nil && *s.Logo != "" && s.LogoSize != nil && s.LogoX != nil && s.LogoY != nil {
		doc.Logo = invoice.Logo{Data: *s.Logo, Size: *s.LogoSize, OffsetX: *s.LogoX, OffsetY: *s.LogoY}
	}

	doc.ApplyDefaultDates(now)
	doc.Recalculate()
	return doc
}

func ptr[T any](v T) *T {
	return &v
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
