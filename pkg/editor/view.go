package editor

import (
	"github.com/invoizy/invoizy/pkg/money"
)

// View is the render-ready projection of the document: raw fields plus
// every derived amount formatted in the selected currency.
type View struct {
	Title       string `json:"title"`
	Number      string `json:"number"`
	FromDetails string `json:"fromDetails"`
	ToDetails   string `json:"toDetails"`
	IssueDate   string `json:"issueDate"`
	DueDate     string `json:"dueDate"`

	Notes             string `json:"notes"`
	BankName          string `json:"bankName"`
	BankAccountName   string `json:"bankAccountName"`
	BankAccountNumber string `json:"bankAccountNumber"`
	BankRouting       string `json:"bankRouting"`
	FooterThank       string `json:"footerThank"`

	DiscountRate string `json:"discountRate"`
	TaxRate      string `json:"taxRate"`
	ShowDiscount bool   `json:"showDiscount"`
	ShowTax      bool   `json:"showTax"`

	Currency string `json:"currency"`
	Template string `json:"template"`
	Status   string `json:"status"`

	Items  []ItemView `json:"items"`
	Totals TotalsView `json:"totals"`
	Logo   *LogoView  `json:"logo,omitempty"`
}

// ItemView is one line item with its formatted extended amount.
type ItemView struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Amount      string `json:"amount"`
}

// TotalsView carries the formatted derived amounts.
type TotalsView struct {
	Subtotal       string `json:"subtotal"`
	DiscountAmount string `json:"discountAmount"`
	TaxAmount      string `json:"taxAmount"`
	GrandTotal     string `json:"grandTotal"`
}

// LogoView is present only when an image has been applied.
type LogoView struct {
	Data    string  `json:"data"`
	Size    float64 `json:"size"`
	Height  float64 `json:"height"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// View snapshots the current document for display.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.doc
	t := d.Totals()
	v := View{
		Title:             d.Title,
		Number:            d.Number,
		FromDetails:       d.FromDetails,
		ToDetails:         d.ToDetails,
		IssueDate:         d.IssueDate,
		DueDate:           d.DueDate,
		Notes:             d.Notes,
		BankName:          d.BankName,
		BankAccountName:   d.BankAccountName,
		BankAccountNumber: d.BankAccountNumber,
		BankRouting:       d.BankRouting,
		FooterThank:       d.FooterThank,
		DiscountRate:      d.DiscountRate,
		TaxRate:           d.TaxRate,
		ShowDiscount:      d.ShowDiscount,
		ShowTax:           d.ShowTax,
		Currency:          string(d.Currency),
		Template:          string(d.Template),
		Status:            string(d.Status),
		Totals: TotalsView{
			Subtotal:       money.Format(t.Subtotal, d.Currency),
			DiscountAmount: money.Format(t.DiscountAmount, d.Currency),
			TaxAmount:      money.Format(t.TaxAmount, d.Currency),
			GrandTotal:     money.Format(t.GrandTotal, d.Currency),
		},
	}
	for _, e := range d.Ledger.Entries() {
		v.Items = append(v.Items, ItemView{
			ID:          string(e.Handle),
			Description: e.Item.Description,
			Quantity:    e.Item.Quantity,
			UnitPrice:   e.Item.UnitPrice,
			Amount:      money.Format(e.Item.Amount(), d.Currency),
		})
	}
	if d.Logo.Present() {
		v.Logo = &LogoView{
			Data:    d.Logo.Data,
			Size:    d.Logo.Size,
			Height:  d.Logo.Height(),
			OffsetX: d.Logo.OffsetX,
			OffsetY: d.Logo.OffsetY,
		}
	}
	return v
}
