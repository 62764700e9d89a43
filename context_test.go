package vrast

import "testing"

func pixelAt(pixels []byte, rowPitch, x, y int) (uint8, uint8, uint8, uint8) {
	o := y*rowPitch + x*4
	return pixels[o], pixels[o+1], pixels[o+2], pixels[o+3]
}

func TestContextSolidRectangle(t *testing.T) {
	ctx := NewContext(128, 128, DefaultConfig(), nil)
	ctx.config.Supersample = 1

	p := NewPath()
	p.Rect(10, 10, 100, 100)
	ctx.FillPath(p, RGBA{R: 1, A: 1})

	pixels, rowPitch, w, h, err := ctx.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if w != 128 || h != 128 {
		t.Fatalf("dims = (%d,%d), want (128,128)", w, h)
	}
	r, g, b, a := pixelAt(pixels, rowPitch, 50, 50)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("pixel (50,50) = (%d,%d,%d,%d), want (255,0,0,255)", r, g, b, a)
	}
	r, g, b, a = pixelAt(pixels, rowPitch, 0, 0)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("pixel (0,0) = (%d,%d,%d,%d), want (0,0,0,0)", r, g, b, a)
	}
}

func TestContextClipRejection(t *testing.T) {
	ctx := NewContext(100, 100, DefaultConfig(), nil)
	ctx.config.Supersample = 1

	clipPath := NewPath()
	clipPath.Rect(0, 0, 50, 50)
	ctx.PushClip(clipPath)

	fillPath := NewPath()
	fillPath.Rect(0, 0, 100, 100)
	ctx.FillPath(fillPath, RGBA{R: 1, A: 1})

	if err := ctx.PopClip(); err != nil {
		t.Fatalf("PopClip() error = %v", err)
	}

	pixels, rowPitch, _, _, err := ctx.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	_, _, _, a := pixelAt(pixels, rowPitch, 75, 25)
	if a != 0 {
		t.Errorf("pixel (75,25) alpha = %d, want 0 (clipped out)", a)
	}
	_, _, _, a = pixelAt(pixels, rowPitch, 25, 25)
	if a == 0 {
		t.Error("pixel (25,25) should remain filled inside the clip")
	}
}

func TestContextPopClipUnderflow(t *testing.T) {
	ctx := NewContext(10, 10, DefaultConfig(), nil)
	if err := ctx.PopClip(); err != ErrStackUnderflow {
		t.Errorf("PopClip() on empty stack = %v, want ErrStackUnderflow", err)
	}
}

func TestContextPopOpacityUnderflow(t *testing.T) {
	ctx := NewContext(10, 10, DefaultConfig(), nil)
	if err := ctx.PopOpacity(); err != ErrStackUnderflow {
		t.Errorf("PopOpacity() with only the initial element = %v, want ErrStackUnderflow", err)
	}
}

func TestContextRenderReentrancyDropsSecondFrame(t *testing.T) {
	ctx := NewContext(10, 10, DefaultConfig(), nil)
	ctx.rendering.Store(true)
	if _, _, _, _, err := ctx.Render(); err != ErrFrameInProgress {
		t.Errorf("Render() while in flight = %v, want ErrFrameInProgress", err)
	}
}

func TestContextStrokeMiterFallback(t *testing.T) {
	ctx := NewContext(200, 200, DefaultConfig(), nil)
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	p.LineTo(100, 1)

	polys := expandStrokeContours(p, ctx.config.Tolerance, Stroke{Width: 20, Cap: LineCapRound, Join: LineJoinMiter, MiterLimit: 2})
	if len(polys) != 5 {
		t.Errorf("len(polys) = %d, want 5 (2 segments + 1 join + 2 caps)", len(polys))
	}
}

func TestContextSVGFillRoundTrips(t *testing.T) {
	ctx := NewContext(100, 100, DefaultConfig(), nil)
	if err := ctx.FillSVG("M0 0 L100 0 L100 100 L0 100 Z", RGBA{R: 1, A: 1}); err != nil {
		t.Fatalf("FillSVG() error = %v", err)
	}
	ctx.config.Supersample = 1
	_, _, _, _, err := ctx.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
}

func TestContextFillTextUsesBuiltinProvider(t *testing.T) {
	ctx := NewContext(100, 100, DefaultConfig(), nil)
	ctx.config.Supersample = 1
	ctx.FillText("A", 10, 50, 20, RGBA{A: 1})

	pixels, rowPitch, _, _, err := ctx.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	found := false
	for y := 0; y < 100 && !found; y++ {
		for x := 0; x < 100; x++ {
			if _, _, _, a := pixelAt(pixels, rowPitch, x, y); a != 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("FillText() produced no visible pixels")
	}
}
