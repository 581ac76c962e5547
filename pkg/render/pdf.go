// Package render produces the paper form of the invoice. It is a pure
// boundary: it reads the document and returns PDF bytes, nothing more.
package render

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/invoizy/invoizy/pkg/invoice"
	"github.com/invoizy/invoizy/pkg/logo"
	"github.com/invoizy/invoizy/pkg/money"
)

// pxToMM converts the stored display-pixel logo geometry to page
// millimeters at 96 dpi.
const pxToMM = 25.4 / 96.0

// PDF renders the document to an A4 page.
func PDF(doc *invoice.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	if doc.Logo.Present() {
		drawLogo(pdf, doc.Logo)
	}

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, doc.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 5, doc.Number+"  -  "+string(doc.Status), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	top := pdf.GetY()
	leftY := partyBlock(pdf, 15, top, "From", doc.FromDetails)
	rightY := partyBlock(pdf, 110, top, "Bill To", doc.ToDetails)
	pdf.SetY(maxY(leftY, rightY) + 4)

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(95, 5, "Issued: "+doc.IssueDate, "", 0, "L", false, 0, "")
	pdf.CellFormat(85, 5, "Due: "+doc.DueDate, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	itemTable(pdf, doc)
	totalsBlock(pdf, doc)

	if doc.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(0, 5, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 4.5, doc.Notes, "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 5, "Payment Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 4.5, doc.BankName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4.5, doc.BankAccountName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4.5, "Account: "+doc.BankAccountNumber+"  Routing: "+doc.BankRouting, "", 1, "L", false, 0, "")

	if doc.FooterThank != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "I", 9)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, 5, doc.FooterThank, "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func partyBlock(pdf *gofpdf.Fpdf, x, y float64, label, details string) float64 {
	pdf.SetXY(x, y)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(85, 5, label, "", 2, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(85, 4.5, details, "", "L", false)
	return pdf.GetY()
}

func itemTable(pdf *gofpdf.Fpdf, doc *invoice.Document) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(242, 242, 242)
	pdf.CellFormat(100, 6, "Description", "B", 0, "L", true, 0, "")
	pdf.CellFormat(20, 6, "Qty", "B", 0, "R", true, 0, "")
	pdf.CellFormat(30, 6, "Price", "B", 0, "R", true, 0, "")
	pdf.CellFormat(30, 6, "Amount", "B", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, it := range doc.Ledger.Items() {
		pdf.CellFormat(100, 6, it.Description, "B", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, it.Quantity, "B", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, it.UnitPrice, "B", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, money.Format(it.Amount(), doc.Currency), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
}

func totalsBlock(pdf *gofpdf.Fpdf, doc *invoice.Document) {
	t := doc.Totals()
	totalRow(pdf, "Subtotal", money.Format(t.Subtotal, doc.Currency), false)
	if doc.ShowDiscount {
		totalRow(pdf, "Discount ("+doc.DiscountRate+"%)", "-"+money.Format(t.DiscountAmount, doc.Currency), false)
	}
	if doc.ShowTax {
		totalRow(pdf, "Tax ("+doc.TaxRate+"%)", money.Format(t.TaxAmount, doc.Currency), false)
	}
	totalRow(pdf, "Grand Total", money.Format(t.GrandTotal, doc.Currency), true)
}

func totalRow(pdf *gofpdf.Fpdf, label, value string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Arial", style, 9)
	pdf.CellFormat(140, 6, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, value, "", 1, "R", false, 0, "")
}

// drawLogo places the uploaded image at its stored drag offset and
// slider size, converted to page units. An undecodable blob is skipped;
// a bad logo never blocks printing.
func drawLogo(pdf *gofpdf.Fpdf, lg invoice.Logo) {
	mime, raw, err := logo.Decode(lg.Data)
	if err != nil {
		return
	}
	var imageType string
	switch mime {
	case "image/png":
		imageType = "PNG"
	case "image/jpeg":
		imageType = "JPG"
	case "image/gif":
		imageType = "GIF"
	default:
		return
	}
	opts := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(raw))
	x := 15 + lg.OffsetX*pxToMM
	y := 15 + lg.OffsetY*pxToMM
	pdf.ImageOptions("logo", x, y, lg.Size*pxToMM, lg.Height()*pxToMM, false, opts, 0, "")
}

func maxY(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
