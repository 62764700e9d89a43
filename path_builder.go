package vrast

import "math"

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder. This is the `path()` scripting
// surface operation.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// QuadTo draws a quadratic Bezier curve.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.path.QuadraticTo(cx, cy, x, y)
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

// ArcTo draws a circular arc, recorded as a first-class Arc command rather
// than pre-tessellated cubics.
func (b *PathBuilder) ArcTo(cx, cy, r, theta0, theta1 float64, ccw bool) *PathBuilder {
	b.path.ArcTo(cx, cy, r, theta0, theta1, ccw, 0)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Rect adds a rectangle to the path.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.path.Rect(x, y, w, h)
	return b
}

// RoundRect adds a rounded rectangle to the path, using quarter-circle
// arcs at the corners rather than pre-baked cubic approximations.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	r = math.Min(r, math.Min(w, h)/2)

	b.path.MoveTo(x+r, y)
	b.path.LineTo(x+w-r, y)
	b.path.ArcTo(x+w-r, y+r, r, -math.Pi/2, 0, false, 0)
	b.path.LineTo(x+w, y+h-r)
	b.path.ArcTo(x+w-r, y+h-r, r, 0, math.Pi/2, false, 0)
	b.path.LineTo(x+r, y+h)
	b.path.ArcTo(x+r, y+h-r, r, math.Pi/2, math.Pi, false, 0)
	b.path.LineTo(x, y+r)
	b.path.ArcTo(x+r, y+r, r, math.Pi, 3*math.Pi/2, false, 0)
	b.path.Close()
	return b
}

// Circle adds a circle to the path as a native Ellipse command.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	return b.Ellipse(cx, cy, r, r, 0)
}

// Ellipse adds an ellipse to the path as a native Ellipse command.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry, rot float64) *PathBuilder {
	b.path.EllipseTo(cx, cy, rx, ry, rot, 0)
	return b
}

// Polygon adds a regular polygon to the path, starting at the top
// (angle -pi/2) and proceeding clockwise.
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int) *PathBuilder {
	if sides < 3 {
		return b
	}

	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2

	for i := 0; i < sides; i++ {
		angle := startAngle + float64(i)*angleStep
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			b.path.MoveTo(x, y)
		} else {
			b.path.LineTo(x, y)
		}
	}
	b.path.Close()
	return b
}

// Star adds a star polygon built from the points returned by StarPoints.
func (b *PathBuilder) Star(cx, cy, outerRadius, innerRadius float64, points int) *PathBuilder {
	pts := StarPoints(cx, cy, outerRadius, innerRadius, points)
	if len(pts) == 0 {
		return b
	}
	b.Poly(pts, true)
	return b
}

// Poly adds a polyline built from the given points.
func (b *PathBuilder) Poly(points []Point, closePath bool) *PathBuilder {
	b.path.Poly(points, closePath)
	return b
}

// StarPoints implements the `star(cx,cy,rOut,rIn,n)` scripting surface
// operation: it returns 2n alternating outer/inner radius points, starting
// on the outer radius at angle -pi/2 and proceeding clockwise.
func StarPoints(cx, cy, outerRadius, innerRadius float64, n int) []Point {
	if n < 2 {
		return nil
	}

	angleStep := math.Pi / float64(n)
	startAngle := -math.Pi / 2

	pts := make([]Point, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		pts = append(pts, Pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return pts
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}

// Path returns the constructed path (alias for Build).
func (b *PathBuilder) Path() *Path {
	return b.path
}
