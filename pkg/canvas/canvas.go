// Package canvas abstracts the document surface the layout engine draws on.
// It supplies text measurement, wrapping, placement primitives and on-demand
// pagination. Two implementations exist: a gofpdf-backed canvas that produces
// the exported PDF, and a deterministic recorder that captures draw
// operations for the browser preview and for tests.
package canvas

// Align controls horizontal anchoring of drawn text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// Text styles understood by DrawText.
const (
	StyleRegular = ""
	StyleBold    = "B"
	StyleItalic  = "I"
)

// Canvas is the document surface capability consumed by the layout engine.
// Coordinates are page-relative millimetres with the origin at the top left.
type Canvas interface {
	// MeasureTextWidth returns the rendered width of text at the given
	// font size.
	MeasureTextWidth(text string, fontSize float64) float64

	// WrapText splits text into lines no wider than maxWidth. A non-empty
	// input always yields at least one line.
	WrapText(text string, maxWidth, fontSize float64) []string

	// DrawText places a single line of text anchored at x per align.
	DrawText(text string, x, y, fontSize float64, style string, align Align)

	// DrawLine draws a straight line between two points.
	DrawLine(x1, y1, x2, y2 float64)

	// DrawImage places raster image bytes at the given box. format is the
	// registered image type, e.g. "png" or "jpg".
	DrawImage(img []byte, format string, x, y, w, h float64)

	// NewPage starts a fresh page; subsequent draws land on it.
	NewPage()

	// Page returns the current 1-based page number.
	Page() int

	PageWidth() float64
	PageHeight() float64
}
