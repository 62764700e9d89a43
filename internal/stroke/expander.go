package stroke

import "math"

// LineCap is the shape used to cap the open ends of an unclosed polyline.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a semicircular line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap extending past the endpoint.
	LineCapSquare
)

// LineJoin is the shape used to connect consecutive polyline segments.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp corner, falling back to a bevel
	// when the miter length would exceed the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a circular arc at corners.
	LineJoinRound
	// LineJoinBevel specifies a straight line across the corner.
	LineJoinBevel
)

// Style holds the stroke parameters used to expand a polyline.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// Point is a 2D point, kept self-contained to avoid an import cycle with
// the root package.
type Point struct {
	X, Y float64
}

// Vec2 is a 2D vector, kept self-contained for the same reason as Point.
type Vec2 struct {
	X, Y float64
}

func sub(a, b Point) Vec2          { return Vec2{X: a.X - b.X, Y: a.Y - b.Y} }
func addv(p Point, v Vec2) Point   { return Point{X: p.X + v.X, Y: p.Y + v.Y} }
func scale(v Vec2, s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }
func length(v Vec2) float64        { return math.Hypot(v.X, v.Y) }
func cross(a, b Vec2) float64      { return a.X*b.Y - a.Y*b.X }

func normalize(v Vec2) Vec2 {
	l := length(v)
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// leftNormal returns the 90-degree counter-clockwise rotation of a
// (typically unit) direction vector.
func leftNormal(dir Vec2) Vec2 {
	return Vec2{X: -dir.Y, Y: dir.X}
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

const dedupEps = 1e-5
const joinEps = 1e-9
const maxJoinStep = math.Pi / 12

// Expand expands a flattened polyline into outline polygons. points is a
// single contour's already-flattened vertex list (no curves). closed
// indicates the polyline should be treated as a loop even if its first and
// last points differ; a polyline whose first and last point coincide
// within dedupEps is always treated as closed.
func Expand(points []Point, closed bool, style Style) [][]Point {
	pts := dedup(points)
	if len(pts) < 2 {
		return nil
	}

	if !closed && length(sub(pts[len(pts)-1], pts[0])) < dedupEps {
		closed = true
	}
	if closed && length(sub(pts[len(pts)-1], pts[0])) < dedupEps {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		return nil
	}

	h := style.Width / 2
	n := len(pts)

	segCount := n - 1
	if closed {
		segCount = n
	}
	dirs := make([]Vec2, segCount)
	normals := make([]Vec2, segCount)
	for i := 0; i < segCount; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		dir := normalize(sub(p1, p0))
		dirs[i] = dir
		normals[i] = leftNormal(dir)
	}

	var polys [][]Point

	for i := 0; i < segCount; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		nrm := scale(normals[i], h)
		polys = append(polys, []Point{
			addv(p0, nrm),
			addv(p1, nrm),
			addv(p1, scale(nrm, -1)),
			addv(p0, scale(nrm, -1)),
		})
	}

	jointStart := 1
	jointEnd := segCount
	if closed {
		jointStart = 0
	}
	for i := jointStart; i < jointEnd; i++ {
		prevIdx := (i - 1 + segCount) % segCount
		p := pts[i%n]
		dirPrev, dirNext := dirs[prevIdx], dirs[i%segCount]
		if poly := joinPolygon(p, dirPrev, dirNext, normals[prevIdx], normals[i%segCount], h, style); poly != nil {
			polys = append(polys, poly)
		}
	}

	if !closed {
		switch style.Cap {
		case LineCapSquare:
			polys = append(polys, squareCap(pts[0], scale(dirs[0], -1), normals[0], h))
			polys = append(polys, squareCap(pts[n-1], dirs[segCount-1], normals[segCount-1], h))
		case LineCapRound:
			polys = append(polys, roundCap(pts[0], normals[0], h))
			polys = append(polys, roundCap(pts[n-1], scale(normals[segCount-1], -1), h))
		}
	}

	return polys
}

func dedup(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		if length(sub(p, out[len(out)-1])) >= dedupEps {
			out = append(out, p)
		}
	}
	return out
}

// joinPolygon builds the join geometry at a vertex where a segment with
// direction dirPrev/normal nPrev meets a segment with direction
// dirNext/normal nNext. Returns nil if the directions are parallel.
func joinPolygon(p Point, dirPrev, dirNext, nPrev, nNext Vec2, h float64, style Style) []Point {
	c := cross(dirPrev, dirNext)
	if math.Abs(c) < joinEps {
		return nil
	}
	sgn := sign(c)
	outerPrev := addv(p, scale(nPrev, h*sgn))
	outerNext := addv(p, scale(nNext, h*sgn))

	switch style.Join {
	case LineJoinBevel:
		return []Point{p, outerPrev, outerNext}
	case LineJoinRound:
		return roundJoin(p, outerPrev, outerNext, h, sgn)
	default: // LineJoinMiter
		if tip, ok := miterTip(outerPrev, outerNext, dirPrev, dirNext); ok {
			limit := h * math.Max(1, style.MiterLimit)
			if length(sub(tip, p)) <= limit {
				return []Point{p, outerPrev, tip, outerNext}
			}
		}
		return []Point{p, outerPrev, outerNext}
	}
}

// miterTip intersects the line through outerPrev in direction dirPrev with
// the line through outerNext in direction dirNext.
func miterTip(outerPrev, outerNext Point, dirPrev, dirNext Vec2) (Point, bool) {
	denom := cross(dirPrev, dirNext)
	if math.Abs(denom) < joinEps {
		return Point{}, false
	}
	d := sub(outerNext, outerPrev)
	t := cross(d, dirNext) / denom
	return addv(outerPrev, scale(dirPrev, t)), true
}

func roundJoin(center, outerPrev, outerNext Point, h, sgn float64) []Point {
	a0 := math.Atan2(outerPrev.Y-center.Y, outerPrev.X-center.X)
	a1 := math.Atan2(outerNext.Y-center.Y, outerNext.X-center.X)
	return arcFan(center, h, a0, a1, sgn)
}

// arcFan builds a triangle-fan polygon (center plus points along the arc)
// sweeping from a0 to a1 in the direction implied by sgn, stepping by at
// most maxJoinStep radians.
func arcFan(center Point, radius, a0, a1, sgn float64) []Point {
	delta := a1 - a0
	for sgn > 0 && delta < 0 {
		delta += 2 * math.Pi
	}
	for sgn < 0 && delta > 0 {
		delta -= 2 * math.Pi
	}
	steps := int(math.Ceil(math.Abs(delta) / maxJoinStep))
	if steps < 1 {
		steps = 1
	}
	poly := make([]Point, 0, steps+2)
	poly = append(poly, center)
	for i := 0; i <= steps; i++ {
		t := a0 + delta*float64(i)/float64(steps)
		poly = append(poly, Point{
			X: center.X + radius*math.Cos(t),
			Y: center.Y + radius*math.Sin(t),
		})
	}
	return poly
}

func squareCap(p Point, outward, normal Vec2, h float64) []Point {
	nrm := scale(normal, h)
	ext := scale(outward, h)
	a := addv(p, nrm)
	b := addv(p, scale(nrm, -1))
	return []Point{a, addv(a, ext), addv(b, ext), b}
}

// roundCap builds a half-disk fan at endpoint p: a 180-degree sweep
// starting at the given normal direction and passing through the outward
// direction (normal rotated 90 degrees further in the same sense).
func roundCap(p Point, normal Vec2, h float64) []Point {
	a0 := math.Atan2(normal.Y, normal.X)
	return arcFan(p, h, a0, a0+math.Pi, 1)
}
