package canvas

import "strings"

// A4 portrait in millimetres, matching the PDF canvas.
const (
	a4Width  = 210.0
	a4Height = 297.0
)

// mmPerPt converts font points to millimetres.
const mmPerPt = 25.4 / 72.0

// avgGlyphFactor approximates the average glyph width as a fraction of the
// font size. Close enough to Helvetica metrics for wrap decisions to agree
// with the PDF canvas on realistic invoice text.
const avgGlyphFactor = 0.5

// Op is one recorded draw operation with page-relative coordinates.
type Op struct {
	Kind     string  `json:"kind"` // "text", "line" or "image"
	Text     string  `json:"text,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	X2       float64 `json:"x2,omitempty"`
	Y2       float64 `json:"y2,omitempty"`
	W        float64 `json:"w,omitempty"`
	H        float64 `json:"h,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
	Style    string  `json:"style,omitempty"`
	Align    string  `json:"align,omitempty"`
}

// PageOps groups the operations of one page.
type PageOps struct {
	Page int  `json:"page"`
	Ops  []Op `json:"ops"`
}

// Recorder is a Canvas that captures operations instead of rasterizing them.
// Text metrics use a fixed average glyph width, which keeps preview output
// and tests fully deterministic.
type Recorder struct {
	pages [][]Op
}

// NewRecorder creates a recording canvas with one empty page.
func NewRecorder() *Recorder {
	return &Recorder{pages: make([][]Op, 1)}
}

func (r *Recorder) charWidth(fontSize float64) float64 {
	return fontSize * avgGlyphFactor * mmPerPt
}

func (r *Recorder) MeasureTextWidth(text string, fontSize float64) float64 {
	return float64(len([]rune(text))) * r.charWidth(fontSize)
}

func (r *Recorder) WrapText(text string, maxWidth, fontSize float64) []string {
	if text == "" {
		return nil
	}
	maxChars := int(maxWidth / r.charWidth(fontSize))
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		// Break words longer than a full line by themselves.
		for len([]rune(word)) > maxChars {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:maxChars]))
			word = string(runes[maxChars:])
		}
		switch {
		case line == "":
			line = word
		case len([]rune(line))+1+len([]rune(word)) <= maxChars:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	if lines == nil {
		lines = []string{""}
	}
	return lines
}

func (r *Recorder) record(op Op) {
	last := len(r.pages) - 1
	r.pages[last] = append(r.pages[last], op)
}

func (r *Recorder) DrawText(text string, x, y, fontSize float64, style string, align Align) {
	r.record(Op{
		Kind:     "text",
		Text:     text,
		X:        x,
		Y:        y,
		FontSize: fontSize,
		Style:    style,
		Align:    align.String(),
	})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.record(Op{Kind: "line", X: x1, Y: y1, X2: x2, Y2: y2})
}

func (r *Recorder) DrawImage(img []byte, format string, x, y, w, h float64) {
	r.record(Op{Kind: "image", X: x, Y: y, W: w, H: h})
}

func (r *Recorder) NewPage() {
	r.pages = append(r.pages, nil)
}

func (r *Recorder) Page() int {
	return len(r.pages)
}

func (r *Recorder) PageWidth() float64 {
	return a4Width
}

func (r *Recorder) PageHeight() float64 {
	return a4Height
}

// Pages returns the recorded operations grouped by page, in draw order.
func (r *Recorder) Pages() []PageOps {
	out := make([]PageOps, len(r.pages))
	for i, ops := range r.pages {
		out[i] = PageOps{Page: i + 1, Ops: ops}
	}
	return out
}
