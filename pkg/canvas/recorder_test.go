package canvas

import (
	"strings"
	"testing"
)

func TestRecorderWrapText(t *testing.T) {
	r := NewRecorder()

	t.Run("Short text stays on one line", func(t *testing.T) {
		lines := r.WrapText("hello world", 100, 10)
		if len(lines) != 1 || lines[0] != "hello world" {
			t.Errorf("WrapText = %v, want single line", lines)
		}
	})

	t.Run("Empty text yields no lines", func(t *testing.T) {
		if lines := r.WrapText("", 100, 10); lines != nil {
			t.Errorf("WrapText(\"\") = %v, want nil", lines)
		}
	})

	t.Run("Long text wraps and no line exceeds width", func(t *testing.T) {
		text := strings.Repeat("monthly retainer for search optimization ", 6)
		maxWidth := 60.0
		lines := r.WrapText(text, maxWidth, 10)
		if len(lines) < 2 {
			t.Fatalf("expected wrapping, got %d line(s)", len(lines))
		}
		for _, line := range lines {
			if w := r.MeasureTextWidth(line, 10); w > maxWidth {
				t.Errorf("line %q measures %.2f, exceeds %v", line, w, maxWidth)
			}
		}
	})

	t.Run("Unbroken word is split", func(t *testing.T) {
		word := strings.Repeat("x", 200)
		lines := r.WrapText(word, 40, 10)
		if len(lines) < 2 {
			t.Fatalf("expected long word split, got %d line(s)", len(lines))
		}
		var rejoined strings.Builder
		for _, l := range lines {
			rejoined.WriteString(l)
		}
		if rejoined.String() != word {
			t.Error("split word lost characters")
		}
	})
}

func TestRecorderPages(t *testing.T) {
	r := NewRecorder()
	if r.Page() != 1 {
		t.Fatalf("fresh recorder page = %d, want 1", r.Page())
	}

	r.DrawText("first", 10, 20, 10, StyleRegular, AlignLeft)
	r.NewPage()
	r.DrawLine(0, 0, 10, 10)
	r.DrawImage([]byte{1}, "png", 15, 15, 40, 20)

	pages := r.Pages()
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if len(pages[0].Ops) != 1 || pages[0].Ops[0].Kind != "text" {
		t.Errorf("page 1 ops = %+v", pages[0].Ops)
	}
	if len(pages[1].Ops) != 2 {
		t.Errorf("page 2 has %d ops, want 2", len(pages[1].Ops))
	}
	if pages[1].Page != 2 {
		t.Errorf("page numbering = %d, want 2", pages[1].Page)
	}
}

func TestAlignString(t *testing.T) {
	if AlignLeft.String() != "left" || AlignCenter.String() != "center" || AlignRight.String() != "right" {
		t.Error("unexpected align names")
	}
}
