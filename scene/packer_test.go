package scene

import "testing"

func square(x, y, w float32) []Point {
	return []Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + w}, {X: x, Y: y + w}}
}

func TestPackerFillEmitsOneShapePerSubpath(t *testing.T) {
	p := NewPacker()
	p.Fill([][]Point{square(0, 0, 10), square(20, 20, 5)}, Color{R: 1, A: 1}, FillRuleEvenOdd)

	ps := p.Build(100, 100, 64, 2)
	if len(ps.Shapes) != 2 {
		t.Fatalf("len(Shapes) = %d, want 2", len(ps.Shapes))
	}
	if ps.Shapes[0].VCount != 5 || ps.Shapes[1].VCount != 5 {
		t.Errorf("expected closed 4-vertex squares to report VCount=5, got %d and %d",
			ps.Shapes[0].VCount, ps.Shapes[1].VCount)
	}
}

func TestPackerDropsDegenerateSubpaths(t *testing.T) {
	p := NewPacker()
	p.Fill([][]Point{{{X: 0, Y: 0}, {X: 1, Y: 1}}}, Color{A: 1}, FillRuleEvenOdd)
	ps := p.Build(10, 10, 64, 1)
	if len(ps.Shapes) != 0 {
		t.Fatalf("len(Shapes) = %d, want 0 (fewer than 3 vertices)", len(ps.Shapes))
	}
}

func TestPackerClipStackUnderflow(t *testing.T) {
	p := NewPacker()
	if err := p.PopClip(); err != ErrStackUnderflow {
		t.Errorf("PopClip() on empty stack = %v, want ErrStackUnderflow", err)
	}
}

func TestPackerOpacityStackKeepsInitialElement(t *testing.T) {
	p := NewPacker()
	if err := p.PopOpacity(); err != ErrStackUnderflow {
		t.Errorf("PopOpacity() with only the initial element = %v, want ErrStackUnderflow", err)
	}
}

func TestPackerOpacityAccumulatesAsProduct(t *testing.T) {
	p := NewPacker()
	p.PushOpacity(0.5)
	p.PushOpacity(0.5)
	p.Fill([][]Point{square(0, 0, 10)}, Color{A: 1}, FillRuleEvenOdd)
	ps := p.Build(10, 10, 64, 1)
	if got := ps.Shapes[0].Opacity; got != 0.25 {
		t.Errorf("Opacity = %v, want 0.25", got)
	}
}

func TestPackerClipRefsSnapshotBottomUp(t *testing.T) {
	p := NewPacker()
	p.PushClip([][]Point{square(0, 0, 5)}, FillRuleEvenOdd)
	p.PushClip([][]Point{square(1, 1, 3)}, FillRuleEvenOdd)
	p.Fill([][]Point{square(0, 0, 10)}, Color{A: 1}, FillRuleEvenOdd)
	ps := p.Build(10, 10, 64, 1)

	shape := ps.Shapes[0]
	if shape.ClipCount != 2 {
		t.Fatalf("ClipCount = %d, want 2", shape.ClipCount)
	}
	refs := ps.Refs[shape.ClipStart : shape.ClipStart+shape.ClipCount]
	if refs[0] != 0 || refs[1] != 1 {
		t.Errorf("clip refs = %v, want [0 1] (bottom-up stack order)", refs)
	}
}

func TestPackerMaskStartShiftedByClipRefTotal(t *testing.T) {
	p := NewPacker()
	p.PushClip([][]Point{square(0, 0, 5)}, FillRuleEvenOdd)
	p.PushOpacityMask([][]Point{square(0, 0, 5)}, 0.5, FillRuleEvenOdd)
	p.Fill([][]Point{square(0, 0, 10)}, Color{A: 1}, FillRuleEvenOdd)
	ps := p.Build(10, 10, 64, 1)

	shape := ps.Shapes[0]
	if shape.MaskStart != shape.ClipCount {
		t.Errorf("MaskStart = %d, want %d (shifted by total clip-ref count)", shape.MaskStart, shape.ClipCount)
	}
}

func TestRebuildRoundTripsExactly(t *testing.T) {
	p := NewPacker()
	p.PushClip([][]Point{square(0, 0, 5)}, FillRuleEvenOdd)
	p.PushOpacity(0.75)
	p.PushOpacityMask([][]Point{square(2, 2, 4)}, 0.9, FillRuleNonZero)
	p.Fill([][]Point{square(0, 0, 10)}, Color{R: 0.2, G: 0.4, B: 0.6, A: 1}, FillRuleEvenOdd)

	ps := p.Build(128, 64, 32, 4)
	ps.TileOffsetCounts = []uint32{0, 1, 1, 0}
	ps.TileShapeIndices = []uint32{0}

	rebuilt := Rebuild(ps)

	if len(rebuilt.Shapes) != len(ps.Shapes) || rebuilt.Shapes[0] != ps.Shapes[0] {
		t.Errorf("Shapes did not round-trip: got %+v, want %+v", rebuilt.Shapes, ps.Shapes)
	}
	if rebuilt.Uniforms != ps.Uniforms {
		t.Errorf("Uniforms did not round-trip: got %+v, want %+v", rebuilt.Uniforms, ps.Uniforms)
	}
	if len(rebuilt.Vertices) != len(ps.Vertices) {
		t.Errorf("Vertices length did not round-trip: got %d, want %d", len(rebuilt.Vertices), len(ps.Vertices))
	}
}
