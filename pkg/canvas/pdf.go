package canvas

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const pdfFont = "Arial"

// PDFCanvas renders draw operations into an A4 portrait PDF via gofpdf.
// Automatic page breaking is disabled: the layout engine owns the cursor and
// decides every break itself.
type PDFCanvas struct {
	pdf    *gofpdf.Fpdf
	pages  int
	images int
	pageW  float64
	pageH  float64
}

// NewPDF creates a PDF canvas with one blank page ready for drawing.
func NewPDF() *PDFCanvas {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont(pdfFont, StyleRegular, 10)
	pdf.AddPage()
	w, h := pdf.GetPageSize()
	return &PDFCanvas{pdf: pdf, pages: 1, pageW: w, pageH: h}
}

func (c *PDFCanvas) MeasureTextWidth(text string, fontSize float64) float64 {
	c.pdf.SetFont(pdfFont, StyleRegular, fontSize)
	return c.pdf.GetStringWidth(text)
}

func (c *PDFCanvas) WrapText(text string, maxWidth, fontSize float64) []string {
	if text == "" {
		return nil
	}
	c.pdf.SetFont(pdfFont, StyleRegular, fontSize)
	return c.pdf.SplitText(text, maxWidth)
}

func (c *PDFCanvas) DrawText(text string, x, y, fontSize float64, style string, align Align) {
	c.pdf.SetFont(pdfFont, style, fontSize)
	switch align {
	case AlignCenter:
		x -= c.pdf.GetStringWidth(text) / 2
	case AlignRight:
		x -= c.pdf.GetStringWidth(text)
	}
	c.pdf.Text(x, y, text)
}

func (c *PDFCanvas) DrawLine(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *PDFCanvas) DrawImage(img []byte, format string, x, y, w, h float64) {
	if len(img) == 0 {
		return
	}
	c.images++
	name := fmt.Sprintf("img-%d", c.images)
	opts := gofpdf.ImageOptions{ImageType: format}
	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
	if c.pdf.Err() {
		// Undecodable image data: drop the placement, keep the document.
		c.pdf.ClearError()
		return
	}
	c.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func (c *PDFCanvas) NewPage() {
	c.pdf.AddPage()
	c.pages++
}

func (c *PDFCanvas) Page() int {
	return c.pages
}

func (c *PDFCanvas) PageWidth() float64 {
	return c.pageW
}

func (c *PDFCanvas) PageHeight() float64 {
	return c.pageH
}

// Output finalizes the document and returns the PDF bytes.
func (c *PDFCanvas) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("canvas: failed to produce PDF: %w", err)
	}
	return buf.Bytes(), nil
}
