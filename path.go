package vrast

import "math"

// PathElement is a single recorded command in a path's command list.
// The set is closed: MoveTo, LineTo, QuadTo, CubicTo, Arc, Ellipse, Close.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve through Control to Point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve through Control1/Control2 to Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Arc draws a circular arc from Theta0 to Theta1 (radians) around Center.
// CCW requests the counter-clockwise sweep; SegHint, if > 0, fixes the
// tessellation segment count, overriding the default angle-based heuristic.
type Arc struct {
	Center   Point
	Radius   float64
	Theta0   float64
	Theta1   float64
	CCW      bool
	SegHint  int
}

func (Arc) isPathElement() {}

// Ellipse draws a full ellipse centered at Center, with radii Rx/Ry and
// rotation Rot (radians). SegCount, if > 0, sets the tessellation segment
// count, otherwise 64 segments are used; either way the count is clamped
// to [8,256].
type Ellipse struct {
	Center   Point
	Rx, Ry   float64
	Rot      float64
	SegCount int
}

func (Ellipse) isPathElement() {}

// Close closes the current subpath by returning to its start point.
type Close struct{}

func (Close) isPathElement() {}

// Path records a mutable command list plus an accumulated affine transform.
// The transform is applied to vertices only at flatten time, never while
// recording — see flatten.go.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
	T        Matrix
}

// NewPath creates a new empty path with an identity accumulated transform.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
		T:        Identity(),
	}
}

// MoveTo records a move-to command.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo records a line-to command.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo records a quadratic Bezier command.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo records a cubic Bezier command.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// ArcTo records a circular arc command. segHint <= 0 uses the default
// angle-based segment heuristic from flatten.go.
func (p *Path) ArcTo(cx, cy, r, theta0, theta1 float64, ccw bool, segHint int) {
	p.elements = append(p.elements, Arc{
		Center:  Pt(cx, cy),
		Radius:  r,
		Theta0:  theta0,
		Theta1:  theta1,
		CCW:     ccw,
		SegHint: segHint,
	})
	p.current = Pt(cx+r*math.Cos(theta1), cy+r*math.Sin(theta1))
}

// EllipseTo records a full-ellipse command. segCount <= 0 uses the default
// segment heuristic from flatten.go.
func (p *Path) EllipseTo(cx, cy, rx, ry, rot float64, segCount int) {
	p.elements = append(p.elements, Ellipse{
		Center:   Pt(cx, cy),
		Rx:       rx,
		Ry:       ry,
		Rot:      rot,
		SegCount: segCount,
	})
	p.current = Pt(cx, cy)
}

// Poly records a polyline: a MoveTo followed by LineTo for every subsequent
// point, optionally closed.
func (p *Path) Poly(points []Point, closePath bool) {
	if len(points) == 0 {
		return
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	if closePath {
		p.Close()
	}
}

// Rect records an axis-aligned rectangle as a closed subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Close records a close command, returning the pen to the subpath's start.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Transform right-multiplies the given translate/scale/rotate composition
// into the path's accumulated transform T. Successive calls compose.
func (p *Path) Transform(tx, ty, sx, sy, rot float64) {
	p.T = p.T.Multiply(TRS(tx, ty, sx, sy, rot))
}

// ApplyMatrix right-multiplies an arbitrary matrix into T.
func (p *Path) ApplyMatrix(m Matrix) {
	p.T = p.T.Multiply(m)
}

// Clear removes all elements and resets the accumulated transform.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.T = Identity()
}

// Elements returns the recorded command list.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the pen's current, untransformed position.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint reports whether any command has been recorded.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Clone creates a deep copy of the path, including its accumulated transform.
func (p *Path) Clone() *Path {
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
		T:        p.T,
	}
	copy(result.elements, p.elements)
	return result
}
