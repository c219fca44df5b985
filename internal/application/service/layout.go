package service

import (
	"github.com/bitsphere-automation/LD-InvGen/internal/domain/entity"
	"github.com/bitsphere-automation/LD-InvGen/internal/domain/enum"
	"github.com/bitsphere-automation/LD-InvGen/pkg/canvas"
)

// Layout geometry in millimetres on an A4 page.
const (
	layoutMargin = 15.0
	bottomMargin = 15.0
	topStartY    = 20.0
	lineHeight   = 7.0
	logoWidth    = 30.0

	fontTitle   = 16.0
	fontCompany = 14.0
	fontBody    = 10.0
	fontSmall   = 9.0
)

// Item table column offsets, measured from the page edges. Tuned to the
// content width, not computed from text measurement.
const (
	qtyOffset    = 80.0 // quantity column, from the right edge
	rateOffset   = 55.0 // rate column, from the right edge
	descReserved = 90.0 // width reserved for the three numeric columns
)

// Logo aspect ratios (width/height) by project code. A static lookup: the
// drawn box is fixed regardless of the actual image dimensions.
var logoAspect = map[enum.ProjectCode]float64{
	enum.ProjectCodeLD:  2.4,
	enum.ProjectCodeLTC: 3.0,
}

const defaultLogoAspect = 2.4

// layoutCursor tracks the write position while laying out a document. It is
// a value threaded through each block function; every block returns the
// advanced cursor.
type layoutCursor struct {
	page int
	y    float64
}

// LayoutEngine walks an InvoiceDocument and emits draw operations through a
// Canvas, breaking pages whenever the next block would not fit. It never
// fails: missing optional fields are skipped, never rendered blank.
type LayoutEngine struct {
	cv       canvas.Canvas
	pageW    float64
	pageH    float64
	contentW float64
}

// NewLayoutEngine creates an engine bound to one canvas. A new engine is
// used per render; it carries no state between documents.
func NewLayoutEngine(cv canvas.Canvas) *LayoutEngine {
	return &LayoutEngine{
		cv:       cv,
		pageW:    cv.PageWidth(),
		pageH:    cv.PageHeight(),
		contentW: cv.PageWidth() - 2*layoutMargin,
	}
}

// Render lays out the whole document in block order: header, invoice meta,
// client block, item table, totals, terms, signatories.
func (e *LayoutEngine) Render(doc *entity.InvoiceDocument) {
	cur := layoutCursor{page: 1, y: topStartY}
	cur = e.layoutHeader(cur, doc)
	cur = e.layoutMeta(cur, doc)
	cur = e.layoutClient(cur, doc)
	cur = e.layoutItems(cur, doc)
	cur = e.layoutTotals(cur, doc)
	cur = e.layoutTerms(cur, doc)
	e.layoutSignatories(cur, doc)
}

// ensureSpace starts a new page when the next `needed` millimetres do not
// fit above the bottom margin.
func (e *LayoutEngine) ensureSpace(cur layoutCursor, needed float64) layoutCursor {
	if cur.y+needed > e.pageH-bottomMargin {
		e.cv.NewPage()
		cur.page++
		cur.y = layoutMargin
	}
	return cur
}

func (e *LayoutEngine) layoutHeader(cur layoutCursor, doc *entity.InvoiceDocument) layoutCursor {
	e.cv.DrawText(doc.Title, e.pageW/2, cur.y, fontTitle, canvas.StyleBold, canvas.AlignCenter)
	cur.y += lineHeight + 3

	if len(doc.Logo) > 0 {
		aspect := logoAspect[doc.ProjectCode]
		if aspect == 0 {
			aspect = defaultLogoAspect
		}
		logoH := logoWidth / aspect
		cur = e.ensureSpace(cur, logoH+lineHeight)
		e.cv.DrawImage(doc.Logo, doc.LogoFormat, layoutMargin, cur.y, logoWidth, logoH)
		cur.y += logoH + 3
	}

	if doc.Company.Name != "" {
		// Center from measured width so any company name lands visually
		// centered.
		w := e.cv.MeasureTextWidth(doc.Company.Name, fontCompany)
		e.cv.DrawText(doc.Company.Name, (e.pageW-w)/2, cur.y, fontCompany, canvas.StyleBold, canvas.AlignLeft)
		cur.y += lineHeight
	}
	for _, line := range doc.Company.AddressLines {
		e.cv.DrawText(line, e.pageW/2, cur.y, fontSmall, canvas.StyleRegular, canvas.AlignCenter)
		cur.y += lineHeight
	}
	if doc.Company.Phone != "" {
		e.cv.DrawText(doc.Company.Phone, e.pageW/2, cur.y, fontSmall, canvas.StyleRegular, canvas.AlignCenter)
		cur.y += lineHeight
	}
	if doc.Company.Email != "" {
		e.cv.DrawText(doc.Company.Email, e.pageW/2, cur.y, fontSmall, canvas.StyleRegular, canvas.AlignCenter)
		cur.y += lineHeight
	}

	e.cv.DrawLine(layoutMargin, cur.y, e.pageW-layoutMargin, cur.y)
	cur.y += lineHeight

	return cur
}

func (e *LayoutEngine) layoutMeta(cur layoutCursor, doc *entity.InvoiceDocument) layoutCursor {
	rows := [][2]string{
		{"Invoice Number:", doc.NumberDisplay},
		{"Date:", doc.DateDisplay},
		{"Project:", doc.ProjectName},
		{"Currency:", doc.CurrencyCode},
	}

	cur = e.ensureSpace(cur, float64(len(rows))*lineHeight)
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		e.cv.DrawText(row[0], layoutMargin, cur.y, fontBody, canvas.StyleBold, canvas.AlignLeft)
		e.cv.DrawText(row[1], layoutMargin+40, cur.y, fontBody, canvas.StyleRegular, canvas.AlignLeft)
		cur.y += lineHeight
	}
	cur.y += 3

	return cur
}

func (e *LayoutEngine) layoutClient(cur layoutCursor, doc *entity.InvoiceDocument) layoutCursor {
	cur = e.ensureSpace(cur, float64(len(doc.ClientLines)+1)*lineHeight)

	e.cv.DrawText("Bill To:", layoutMargin, cur.y, fontBody, canvas.StyleBold, canvas.AlignLeft)
	cur.y += lineHeight

	for _, line := range doc.ClientLines {
		e.cv.DrawText(line, layoutMargin, cur.y, fontBody, canvas.StyleRegular, canvas.AlignLeft)
		cur.y += lineHeight
	}
	cur.y += 3

	return cur
}

func (e *LayoutEngine) layoutItems(cur layoutCursor, doc *entity.InvoiceDocument) layoutCursor {
	cur = e.ensureSpace(cur, 2*lineHeight)

	e.cv.DrawText("Item", layoutMargin, cur.y, fontBody, canvas.StyleBold, canvas.AlignLeft)
	e.cv.DrawText("Quantity", e.pageW-qtyOffset, cur.y, fontBody, canvas.StyleBold, canvas.AlignLeft)
	e.cv.DrawText("Rate", e.pageW-rateOffset, cur.y, fontBody, canvas.StyleBold, canvas.AlignLeft)
	e.cv.DrawText("Amount", e.pageW-layoutMargin, cur.y, fontBody, canvas.StyleBold, canvas.AlignRight)
	e.cv.DrawLine(layoutMargin, cur.y+2, e.pageW-layoutMargin, cur.y+2)
	cur.y += lineHeight

	descWidth := e.contentW - descReserved
	for _, item := range doc.Items {
		descLines := e.cv.WrapText(item.Description, descWidth, fontBody)
		if len(descLines) == 0 {
			descLines = []string{""}
		}

		// A row that fits on one page is kept together; a row taller than
		// a whole page flows line by line across continuation pages.
		needed := float64(len(descLines)) * lineHeight
		if needed <= e.pageH-bottomMargin-layoutMargin {
			cur = e.ensureSpace(cur, needed)
		}

		for i, line := range descLines {
			cur = e.ensureSpace(cur, lineHeight)
			e.cv.DrawText(line, layoutMargin, cur.y, fontBody, canvas.StyleRegular, canvas.AlignLeft)
			if i == 0 {
				e.cv.DrawText(item.Quantity, e.pageW-qtyOffset, cur.y, fontBody, canvas.StyleRegular, canvas.AlignLeft)
				e.cv.DrawText(item.Rate, e.pageW-rateOffset, cur.y, fontBody, canvas.StyleRegular, canvas.AlignLeft)
				e.cv.DrawText(item.Amount, e.pageW-layoutMargin, cur.y, fontBody, canvas.StyleRegular, canvas.AlignRight)
			}
			cur.y += lineHeight
		}
	}

	return cur
}

func (e *LayoutEngine) layoutTotals(cur layoutCursor, doc *entity.InvoiceDocument) layoutCursor {
	type totalRow struct {
		label string
		value string
		bold  bool
	}

	rows := []totalRow{{"Subtotal:", doc.Subtotal, false}}
	if doc.ShowTax {
		rows = append(rows, totalRow{doc.TaxLabel, doc.TaxAmount, false})
	}
	rows = append(rows,
		totalRow{"Total:", doc.Total, true},
		totalRow{"Payments Made:", doc.PaymentMade, false},
		totalRow{"Balance Due:", doc.BalanceDue, true},
	)

	cur = e.ensureSpace(cur, lineHeight)
	e.cv.DrawLine(layoutMargin, cur.y, e.pageW-layoutMargin, cur.y)
	cur.y += lineHeight - 2

	for _, row := range rows {
		cur = e.ensureSpace(cur, lineHeight)
		style := canvas.StyleRegular
		if row.bold {
			style = canvas.StyleBold
		}
		e.cv.DrawText(row.label, e.pageW-qtyOffset, cur.y, fontBody, style, canvas.AlignLeft)
		e.cv.DrawText(row.value, e.pageW-layoutMargin, cur.y, fontBody, style, canvas.AlignRight)
		cur.y += lineHeight
	}
	cur.y += 3

	return cur
}

func (e *LayoutEngine) layoutTerms(cur layoutCursor, doc *entity.InvoiceDocument) layoutCursor {
	if doc.TermsIntro == "" && len(doc.TermsLines) == 0 {
		return cur
	}

	cur = e.ensureSpace(cur, 2*lineHeight)
	e.cv.DrawText("Terms", layoutMargin, cur.y, fontBody, canvas.StyleBold, canvas.AlignLeft)
	cur.y += lineHeight

	if doc.TermsIntro != "" {
		for _, line := range e.cv.WrapText(doc.TermsIntro, e.contentW, fontSmall) {
			cur = e.ensureSpace(cur, lineHeight)
			e.cv.DrawText(line, layoutMargin, cur.y, fontSmall, canvas.StyleRegular, canvas.AlignLeft)
			cur.y += lineHeight
		}
	}
	for _, line := range doc.TermsLines {
		cur = e.ensureSpace(cur, lineHeight)
		e.cv.DrawText(line, layoutMargin, cur.y, fontSmall, canvas.StyleRegular, canvas.AlignLeft)
		cur.y += lineHeight
	}

	return cur
}

// layoutSignatories anchors the prepared-by / verified-by block at a fixed
// offset above the bottom of the final page, breaking once if the terms ran
// past that anchor.
func (e *LayoutEngine) layoutSignatories(cur layoutCursor, doc *entity.InvoiceDocument) {
	if doc.PreparedBy == "" && doc.VerifiedBy == "" {
		return
	}

	anchorY := e.pageH - bottomMargin - 2*lineHeight
	if cur.y > anchorY {
		e.cv.NewPage()
	}

	y := anchorY
	if doc.PreparedBy != "" {
		e.cv.DrawText("Prepared by: "+doc.PreparedBy, e.pageW-layoutMargin, y, fontSmall, canvas.StyleRegular, canvas.AlignRight)
		y += lineHeight
	}
	if doc.VerifiedBy != "" {
		e.cv.DrawText("Verified by: "+doc.VerifiedBy, e.pageW-layoutMargin, y, fontSmall, canvas.StyleRegular, canvas.AlignRight)
	}
}
