// Package store persists the invoice document as a versioned flat JSON
// snapshot and reconstructs it tolerantly on load.
package store

// Snapshot is the flat persisted record. Every scalar is a pointer so
// the codec can tell an absent key apart from a zero value: absent keys
// keep the default-document value on decode.
type Snapshot struct {
	InvoiceTitle      *string `json:"invoiceTitle,omitempty"`
	InvoiceNumber     *string `json:"invoiceNumber,omitempty"`
	FromDetails       *string `json:"fromDetails,omitempty"`
	ToDetails         *string `json:"toDetails,omitempty"`
	InvoiceDate       *string `json:"invoiceDate,omitempty"`
	InvoiceDue        *string `json:"invoiceDue,omitempty"`
	TaxRate           *string `json:"taxRate,omitempty"`
	DiscountRate      *string `json:"discountRate,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	BankName          *string `json:"bankName,omitempty"`
	BankAccountName   *string `json:"bankAccountName,omitempty"`
	BankAccountNumber *string `json:"bankAccountNumber,omitempty"`
	BankRouting       *string `json:"bankRouting,omitempty"`
	FooterThank       *string `json:"footerThank,omitempty"`
	Status            *string `json:"status,omitempty"`

	Items []SnapshotItem `json:"items"`

	Logo     *string  `json:"logo,omitempty"`
	LogoSize *float64 `json:"logoSize,omitempty"`
	LogoX    *float64 `json:"logoX,omitempty"`
	LogoY    *float64 `json:"logoY,omitempty"`

	Template     *string `json:"template,omitempty"`
	Currency     *string `json:"currency,omitempty"`
	ShowDiscount *bool   `json:"showDiscount,omitempty"`
	ShowTax      *bool   `json:"showTax,omitempty"`
}

// SnapshotItem is one persisted line item, raw text as entered.
type SnapshotItem struct {
	Desc  string `json:"desc"`
	Qty   string `json:"qty"`
	Price string `json:"price"`
}
