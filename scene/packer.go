package scene

// Point is a 2D vertex in canvas space, kept self-contained so this
// package has no dependency on path/flatten/stroke code (which in turn
// depends on this package's output types).
type Point struct {
	X, Y float32
}

// Color is a premultiplied RGBA color in [0,1] floats.
type Color struct {
	R, G, B, A float32
}

const closeEps = 1e-4

// shapeInstance is a packer-internal shape awaiting Build.
type shapeInstance struct {
	verts     []Point
	rule      FillRule
	color     Color
	opacity   float32
	clipRefs  []uint32
	maskRefs  []uint32
}

type clipEntry struct {
	verts []Point
	rule  FillRule
}

type maskEntry struct {
	verts []Point
	rule  FillRule
	alpha float32
}

// Packer accumulates shapes, clips, and masks for one frame and builds
// the packed binary buffers a rasterizer backend consumes.
type Packer struct {
	shapes []shapeInstance
	clips  []clipEntry
	masks  []maskEntry

	clipStack  [][]uint32
	maskStack  [][]uint32
	opacityStack []float32
}

// NewPacker returns an empty packer with the opacity stack initialized to
// its single required element, 1.0.
func NewPacker() *Packer {
	return &Packer{opacityStack: []float32{1.0}}
}

func (p *Packer) activeClipRefs() []uint32 {
	var refs []uint32
	for _, frame := range p.clipStack {
		refs = append(refs, frame...)
	}
	return refs
}

func (p *Packer) activeMaskRefs() []uint32 {
	var refs []uint32
	for _, frame := range p.maskStack {
		refs = append(refs, frame...)
	}
	return refs
}

func (p *Packer) activeOpacity() float32 {
	o := float32(1.0)
	for _, v := range p.opacityStack {
		o *= v
	}
	return clamp01(o)
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func isClosed(poly []Point) bool {
	if len(poly) < 2 {
		return false
	}
	dx := poly[0].X - poly[len(poly)-1].X
	dy := poly[0].Y - poly[len(poly)-1].Y
	return dx*dx+dy*dy <= closeEps*closeEps
}

func closePolygon(poly []Point) []Point {
	if isClosed(poly) {
		return poly
	}
	out := make([]Point, len(poly)+1)
	copy(out, poly)
	out[len(poly)] = poly[0]
	return out
}

// Fill appends one ShapeInstance per subpath with at least 3 vertices in
// contours (closing it if needed), snapshotting the current clip refs, mask refs,
// and accumulated opacity.
func (p *Packer) Fill(contours [][]Point, color Color, rule FillRule) {
	clipRefs := p.activeClipRefs()
	maskRefs := p.activeMaskRefs()
	opacity := p.activeOpacity()

	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		poly := closePolygon(c)
		p.shapes = append(p.shapes, shapeInstance{
			verts:    poly,
			rule:     rule,
			color:    color,
			opacity:  opacity,
			clipRefs: clipRefs,
			maskRefs: maskRefs,
		})
	}
}

// Stroke appends one ShapeInstance, fill rule even-odd, per polygon
// produced by expanding polylines (already run through a stroke
// expander by the caller), snapshotting the current stack state.
func (p *Packer) Stroke(polygons [][]Point, color Color) {
	clipRefs := p.activeClipRefs()
	maskRefs := p.activeMaskRefs()
	opacity := p.activeOpacity()

	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		closed := closePolygon(poly)
		p.shapes = append(p.shapes, shapeInstance{
			verts:    closed,
			rule:     FillRuleEvenOdd,
			color:    color,
			opacity:  opacity,
			clipRefs: clipRefs,
			maskRefs: maskRefs,
		})
	}
}

// PushClip appends every closed subpath in contours to clips[] and pushes
// the resulting ids as one frame on the clip stack.
func (p *Packer) PushClip(contours [][]Point, rule FillRule) {
	var ids []uint32
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		id := uint32(len(p.clips))
		p.clips = append(p.clips, clipEntry{verts: closePolygon(c), rule: rule})
		ids = append(ids, id)
	}
	p.clipStack = append(p.clipStack, ids)
}

// PopClip pops the most recent clip frame, returning ErrStackUnderflow if
// the stack is empty.
func (p *Packer) PopClip() error {
	if len(p.clipStack) == 0 {
		return ErrStackUnderflow
	}
	p.clipStack = p.clipStack[:len(p.clipStack)-1]
	return nil
}

// PushOpacity pushes clamp(a,0,1) onto the opacity stack.
func (p *Packer) PushOpacity(a float32) {
	p.opacityStack = append(p.opacityStack, clamp01(a))
}

// PopOpacity pops the most recent opacity frame. The initial element must
// always remain: popping to fewer than one element is a StackUnderflow.
func (p *Packer) PopOpacity() error {
	if len(p.opacityStack) <= 1 {
		return ErrStackUnderflow
	}
	p.opacityStack = p.opacityStack[:len(p.opacityStack)-1]
	return nil
}

// PushOpacityMask appends every closed subpath in contours to masks[],
// each carrying clamp(alpha,0,1), and pushes the resulting ids as one
// frame on the mask stack.
func (p *Packer) PushOpacityMask(contours [][]Point, alpha float32, rule FillRule) {
	a := clamp01(alpha)
	var ids []uint32
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		id := uint32(len(p.masks))
		p.masks = append(p.masks, maskEntry{verts: closePolygon(c), rule: rule, alpha: a})
		ids = append(ids, id)
	}
	p.maskStack = append(p.maskStack, ids)
}

// PopOpacityMask pops the most recent mask frame, returning
// ErrStackUnderflow if the stack is empty.
func (p *Packer) PopOpacityMask() error {
	if len(p.maskStack) == 0 {
		return ErrStackUnderflow
	}
	p.maskStack = p.maskStack[:len(p.maskStack)-1]
	return nil
}
