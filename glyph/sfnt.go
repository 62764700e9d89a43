package glyph

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTProvider adapts a parsed TrueType/OpenType font into the Provider
// interface, converting sfnt segments into unit-em polylines.
type SFNTProvider struct {
	font *sfnt.Font

	mu    sync.Mutex
	buf   sfnt.Buffer
	upm   fixed.Int26_6
	cache map[rune]Outline
}

// NewSFNTProvider parses raw OpenType/TrueType font bytes and returns a
// Provider backed by it.
func NewSFNTProvider(data []byte) (*SFNTProvider, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	upm, err := f.UnitsPerEm()
	if err != nil {
		return nil, err
	}
	return &SFNTProvider{
		font:  f,
		upm:   fixed.Int26_6(upm),
		cache: make(map[rune]Outline),
	}, nil
}

// Glyph implements Provider. Outlines are cached per-rune after their
// first lookup since sfnt glyph extraction is comparatively expensive.
func (p *SFNTProvider) Glyph(r rune) (Outline, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if o, ok := p.cache[r]; ok {
		return o, true
	}

	idx, err := p.font.GlyphIndex(&p.buf, r)
	if err != nil || idx == 0 {
		return Outline{}, false
	}

	advanceFixed, err := p.font.GlyphAdvance(&p.buf, idx, fixed.Int26_6(p.upm), font.HintingNone)
	if err != nil {
		return Outline{}, false
	}

	segments, err := p.font.LoadGlyph(&p.buf, idx, fixed.Int26_6(p.upm), nil)
	if err != nil {
		return Outline{}, false
	}

	outline := Outline{
		Advance: fixedToUnit(advanceFixed, p.upm),
	}

	var contour []Point
	var cur Point
	flush := func() {
		if len(contour) > 0 {
			outline.Contours = append(outline.Contours, contour)
		}
		contour = nil
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			cur = pointFromFixed(seg.Args[0], p.upm)
			contour = append(contour, cur)
		case sfnt.SegmentOpLineTo:
			cur = pointFromFixed(seg.Args[0], p.upm)
			contour = append(contour, cur)
		case sfnt.SegmentOpQuadTo:
			ctrl := pointFromFixed(seg.Args[0], p.upm)
			end := pointFromFixed(seg.Args[1], p.upm)
			contour = appendQuadSegment(contour, cur, ctrl, end)
			cur = end
		case sfnt.SegmentOpCubeTo:
			c1 := pointFromFixed(seg.Args[0], p.upm)
			c2 := pointFromFixed(seg.Args[1], p.upm)
			end := pointFromFixed(seg.Args[2], p.upm)
			contour = appendCubicSegment(contour, cur, c1, c2, end)
			cur = end
		}
	}
	flush()

	p.cache[r] = outline
	return outline, true
}

func fixedToUnit(v fixed.Int26_6, upm fixed.Int26_6) float64 {
	return float64(v) / float64(upm)
}

func pointFromFixed(p fixed.Point26_6, upm fixed.Int26_6) Point {
	return Point{
		X: float64(p.X) / float64(upm),
		Y: 1 - float64(p.Y)/float64(upm), // sfnt is y-up, layout space is y-down
	}
}

const sfntFlattenSteps = 8

func appendQuadSegment(contour []Point, p0, cp, p1 Point) []Point {
	for i := 1; i <= sfntFlattenSteps; i++ {
		t := float64(i) / float64(sfntFlattenSteps)
		mt := 1 - t
		x := mt*mt*p0.X + 2*mt*t*cp.X + t*t*p1.X
		y := mt*mt*p0.Y + 2*mt*t*cp.Y + t*t*p1.Y
		contour = append(contour, Point{X: x, Y: y})
	}
	return contour
}

func appendCubicSegment(contour []Point, p0, c1, c2, p1 Point) []Point {
	for i := 1; i <= sfntFlattenSteps; i++ {
		t := float64(i) / float64(sfntFlattenSteps)
		mt := 1 - t
		x := mt*mt*mt*p0.X + 3*mt*mt*t*c1.X + 3*mt*t*t*c2.X + t*t*t*p1.X
		y := mt*mt*mt*p0.Y + 3*mt*mt*t*c1.Y + 3*mt*t*t*c2.Y + t*t*t*p1.Y
		contour = append(contour, Point{X: x, Y: y})
	}
	return contour
}
