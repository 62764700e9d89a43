package vrast

import "math"

// DefaultTolerance is the default maximum deviation, in device pixels,
// allowed between a flattened polyline and the curve it approximates.
const DefaultTolerance = 0.35

const maxSubdivisionDepth = 10

// Contour is a single flattened, transformed polyline plus whether it is
// closed (the path recorded an explicit Close before the next MoveTo or
// the end of the command list).
type Contour struct {
	Points []Point
	Closed bool
}

// Flatten walks the path's recorded command list, applies the path's
// accumulated transform T to every vertex, tessellates curves/arcs/
// ellipses into line segments within tolerance, and returns one Contour
// per subpath.
func Flatten(p *Path, tolerance float64) []Contour {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var contours []Contour
	var cur []Point
	closed := false
	var start, pen Point // untransformed, in path space
	haveCurrent := false

	flushSubpath := func() {
		if len(cur) > 0 {
			contours = append(contours, Contour{Points: cur, Closed: closed})
		}
		cur = nil
		closed = false
	}

	tp := func(pt Point) Point { return p.T.TransformPoint(pt) }

	appendPoint := func(pt Point) {
		if len(cur) == 0 || cur[len(cur)-1].Distance(tp(pt)) > 0 {
			cur = append(cur, tp(pt))
		}
	}

	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			flushSubpath()
			start, pen = e.Point, e.Point
			haveCurrent = true
			cur = append(cur, tp(e.Point))
		case LineTo:
			if !haveCurrent {
				start, pen, haveCurrent = e.Point, e.Point, true
				cur = append(cur, tp(e.Point))
				continue
			}
			appendPoint(e.Point)
			pen = e.Point
		case QuadTo:
			flattenQuad(QuadBez{P0: pen, P1: e.Control, P2: e.Point}, tp, &cur, 0, tolerance)
			pen = e.Point
		case CubicTo:
			flattenCubic(CubicBez{P0: pen, P1: e.Control1, P2: e.Control2, P3: e.Point}, tp, &cur, 0, tolerance)
			pen = e.Point
		case Arc:
			pts := flattenArc(e)
			for _, pt := range pts {
				appendPoint(pt)
			}
			if len(pts) > 0 {
				pen = pts[len(pts)-1]
			}
		case Ellipse:
			pts := flattenEllipse(e)
			for _, pt := range pts {
				appendPoint(pt)
			}
			if len(pts) > 0 {
				pen = pts[0]
				start = pts[0]
			}
		case Close:
			closed = true
			if haveCurrent {
				appendPoint(start)
				pen = start
			}
		}
	}
	flushSubpath()
	return contours
}

// quadError is the distance from the point on the quadratic curve at t=0.5
// (computed as (p0+2*cp+p1)/4) to the chord midpoint (p0+p1)/2.
func quadError(q QuadBez) float64 {
	curveMid := q.P0.Add(q.P1.Mul(2)).Add(q.P2).Mul(0.25)
	chordMid := q.P0.Add(q.P2).Mul(0.5)
	return curveMid.Distance(chordMid)
}

func flattenQuad(q QuadBez, tp func(Point) Point, out *[]Point, depth int, tolerance float64) {
	if depth >= maxSubdivisionDepth || quadError(q) <= tolerance {
		appendTransformed(out, tp, q.P2)
		return
	}
	a, b := q.Subdivide()
	flattenQuad(a, tp, out, depth+1, tolerance)
	flattenQuad(b, tp, out, depth+1, tolerance)
}

// cubicError uses the 8-way midpoint distance metric: the distance from
// the curve's t=0.5 point (by repeated bisection of the control polygon,
// i.e. the midpoint Subdivide splits at) to the chord midpoint.
// flattenCubic accepts a piece when this distance squared is at most
// tolerance²·4, i.e. the distance is within 2·tolerance.
func cubicError(c CubicBez) float64 {
	a, _ := c.Subdivide()
	chordMid := c.P0.Add(c.P3).Mul(0.5)
	return a.P3.Distance(chordMid)
}

func flattenCubic(c CubicBez, tp func(Point) Point, out *[]Point, depth int, tolerance float64) {
	if e := cubicError(c); depth >= maxSubdivisionDepth || e*e <= tolerance*tolerance*4 {
		appendTransformed(out, tp, c.P3)
		return
	}
	a, b := c.Subdivide()
	flattenCubic(a, tp, out, depth+1, tolerance)
	flattenCubic(b, tp, out, depth+1, tolerance)
}

func appendTransformed(out *[]Point, tp func(Point) Point, pt Point) {
	tpt := tp(pt)
	if len(*out) == 0 || (*out)[len(*out)-1].Distance(tpt) > 0 {
		*out = append(*out, tpt)
	}
}

// arcSegmentCount returns the tessellation segment count for an arc
// sweeping deltaTheta radians, honoring an explicit hint when positive.
func arcSegmentCount(deltaTheta float64, hint int) int {
	if hint > 0 {
		return hint
	}
	n := int(math.Ceil(math.Abs(deltaTheta) / (math.Pi / 10)))
	if n < 8 {
		n = 8
	}
	if n > 128 {
		n = 128
	}
	return n
}

// ellipseSegmentCount returns the tessellation segment count for a full
// ellipse: the hint when positive, otherwise 64. flattenEllipse clamps
// the result to [8,256].
func ellipseSegmentCount(hint int) int {
	if hint > 0 {
		return hint
	}
	return 64
}

func flattenArc(a Arc) []Point {
	delta := a.Theta1 - a.Theta0
	if a.CCW {
		for delta > 0 {
			delta -= 2 * math.Pi
		}
	} else {
		for delta < 0 {
			delta += 2 * math.Pi
		}
	}
	n := arcSegmentCount(delta, a.SegHint)
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := a.Theta0 + delta*float64(i)/float64(n)
		pts = append(pts, Point{
			X: a.Center.X + a.Radius*math.Cos(t),
			Y: a.Center.Y + a.Radius*math.Sin(t),
		})
	}
	return pts
}

func flattenEllipse(e Ellipse) []Point {
	n := ellipseSegmentCount(e.SegCount)
	if n < 8 {
		n = 8
	}
	if n > 256 {
		n = 256
	}
	cosRot, sinRot := math.Cos(e.Rot), math.Sin(e.Rot)
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		x := e.Rx * math.Cos(t)
		y := e.Ry * math.Sin(t)
		pts = append(pts, Point{
			X: e.Center.X + x*cosRot - y*sinRot,
			Y: e.Center.Y + x*sinRot + y*cosRot,
		})
	}
	return pts
}
