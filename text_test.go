package vrast

import (
	"math"
	"testing"

	"github.com/gogpu/vrast/glyph"
)

func TestLayoutTextAdvancesPen(t *testing.T) {
	p := LayoutText(glyph.NewBuiltinProvider(), "AB", 0, 0, 10, DefaultTextOptions())
	contours := Flatten(p, DefaultTolerance)
	if len(contours) != 2 {
		t.Fatalf("len(contours) = %d, want 2 (one box per glyph)", len(contours))
	}
	// Second glyph's box should be shifted right of the first by one advance.
	firstMinX := contours[0].Points[0].X
	secondMinX := contours[1].Points[0].X
	if secondMinX <= firstMinX {
		t.Errorf("second glyph not advanced: first minX=%v second minX=%v", firstMinX, secondMinX)
	}
}

func TestLayoutTextSpaceProducesNoGeometry(t *testing.T) {
	p := LayoutText(glyph.NewBuiltinProvider(), "A B", 0, 0, 10, DefaultTextOptions())
	contours := Flatten(p, DefaultTolerance)
	if len(contours) != 2 {
		t.Fatalf("len(contours) = %d, want 2 (space contributes no geometry)", len(contours))
	}
}

func TestLayoutTextNewlineResetsX(t *testing.T) {
	p := LayoutText(glyph.NewBuiltinProvider(), "A\nA", 5, 0, 10, DefaultTextOptions())
	contours := Flatten(p, DefaultTolerance)
	if len(contours) != 2 {
		t.Fatalf("len(contours) = %d, want 2", len(contours))
	}
	x0 := contours[0].Points[0].X
	x1 := contours[1].Points[0].X
	if math.Abs(x0-x1) > 1e-9 {
		t.Errorf("newline did not reset pen x: %v vs %v", x0, x1)
	}
	if contours[1].Points[0].Y <= contours[0].Points[0].Y {
		t.Error("newline should advance pen y")
	}
}

func TestLayoutTextDefaultLineSpacingFallback(t *testing.T) {
	o := TextOptions{}
	p := LayoutText(glyph.NewBuiltinProvider(), "A\nA", 0, 0, 10, o)
	contours := Flatten(p, DefaultTolerance)
	if len(contours) != 2 {
		t.Fatalf("len(contours) = %d, want 2", len(contours))
	}
	dy := contours[1].Points[0].Y - contours[0].Points[0].Y
	if math.Abs(dy-10) > 1e-9 {
		t.Errorf("zero LineSpacing should fall back to 1.0, got dy=%v want 10", dy)
	}
}
