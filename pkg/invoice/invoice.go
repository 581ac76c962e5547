// Package invoice holds the authoritative in-memory invoice document:
// the line item ledger, the total calculator and the logo placement
// tracker. Every derived value is recomputed from this state; nothing
// derived is stored.
package invoice

import (
	"time"

	"github.com/invoizy/invoizy/pkg/money"
)

// Template selects a presentation variant. Only the name is stored; the
// rendering itself lives outside the document.
type Template string

const (
	TemplateMinimal Template = "minimal"
	TemplateBold    Template = "bold"
	TemplateCompact Template = "compact"
)

// ParseTemplate maps a stored name to a known template.
func ParseTemplate(name string) (Template, bool) {
	switch Template(name) {
	case TemplateMinimal, TemplateBold, TemplateCompact:
		return Template(name), true
	}
	return "", false
}

// Status is the lifecycle state shown on the invoice.
type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// ParseStatus maps a stored value to a known status.
func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return Status(value), true
	}
	return "", false
}

// DateLayout is how calendar dates are stored and displayed.
const DateLayout = "2006-01-02"

// Document is the full invoice state. There is exactly one authoritative
// instance per editing session; all mutation goes through the owning
// session so every edit is followed by a Recalculate before derived
// values are read or persisted.
type Document struct {
	Title       string
	Number      string
	FromDetails string
	ToDetails   string

	IssueDate string // DateLayout, blank until defaulted
	DueDate   string

	Notes             string
	BankName          string
	BankAccountName   string
	BankAccountNumber string
	BankRouting       string
	FooterThank       string

	// Rates keep the raw entered text, like item fields.
	DiscountRate string
	TaxRate      string
	ShowDiscount bool
	ShowTax      bool

	Currency money.Currency
	Template Template
	Status   Status
	Logo     Logo

	Ledger *Ledger

	totals Totals
}

// DefaultDocument is the built-in document used when no snapshot exists
// and on reset: default field table, one empty line item, draft status,
// minimal template, both toggles on, dated from now.
func DefaultDocument(now time.Time) *Document {
	d := &Document{
		Title:             "INVOICE",
		Number:            "INV-001",
		FromDetails:       "Your Company Name\n123 Street Address\nCity, State ZIP\nemail@example.com",
		ToDetails:         "Client Name\n456 Client Street\nCity, State ZIP\nclient@example.com",
		Notes:             "Payment is due within 30 days. Thank you for your business.",
		BankName:          "Your Bank Name",
		BankAccountName:   "Your Name / Company",
		BankAccountNumber: "1234567890",
		BankRouting:       "ABCDEF",
		FooterThank:       "Thank you for your business.",
		DiscountRate:      "0",
		TaxRate:           "0",
		ShowDiscount:      true,
		ShowTax:           true,
		Currency:          money.USD,
		Template:          TemplateMinimal,
		Status:            StatusDraft,
		Logo:              NewLogo(),
		Ledger:            NewLedger(LineItem{}),
	}
	d.ApplyDefaultDates(now)
	d.Recalculate()
	return d
}

// ApplyDefaultDates fills blank dates: issue date today, due date thirty
// days out. Dates already set are left alone.
func (d *Document) ApplyDefaultDates(now time.Time) {
	if d.IssueDate == "" {
		d.IssueDate = now.Format(DateLayout)
	}
	if d.DueDate == "" {
		d.DueDate = now.AddDate(0, 0, 30).Format(DateLayout)
	}
}

// Recalculate re-derives the subtotal, discount and tax amounts and the
// grand total from the current items and rates. Calling it again without
// an intervening mutation yields identical totals.
func (d *Document) Recalculate() {
	d.totals = ComputeTotals(d.Ledger.Subtotal(), d.DiscountRate, d.TaxRate, d.ShowDiscount, d.ShowTax)
}

// Totals returns the amounts derived by the last Recalculate.
func (d *Document) Totals() Totals {
	return d.totals
}

// Reset replaces the entire document with the default one.
func (d *Document) Reset(now time.Time) {
	*d = *DefaultDocument(now)
}

// EnsureItem restores the one-item floor after load or reset: a document
// never surfaces with an empty item list.
func (d *Document) EnsureItem() {
	if d.Ledger.Len() == 0 {
		d.Ledger.AddItem(LineItem{})
	}
}

// Clone returns an independent deep copy, for readers that must not hold
// the session lock while they work.
func (d *Document) Clone() *Document {
	out := *d
	out.Ledger = d.Ledger.clone()
	return &out
}
