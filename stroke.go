package vrast

import "github.com/gogpu/vrast/internal/stroke"

// LineCap is the shape used to cap the open ends of an unclosed stroke.
type LineCap = stroke.LineCap

// LineJoin is the shape used to connect consecutive stroke segments.
type LineJoin = stroke.LineJoin

const (
	LineCapButt   = stroke.LineCapButt
	LineCapRound  = stroke.LineCapRound
	LineCapSquare = stroke.LineCapSquare
)

const (
	LineJoinMiter = stroke.LineJoinMiter
	LineJoinRound = stroke.LineJoinRound
	LineJoinBevel = stroke.LineJoinBevel
)

// Stroke defines the style used to expand a path's centerline into a
// fillable outline.
type Stroke struct {
	// Width is the line width in pixels. Default: 10.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapRound
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinRound
	Join LineJoin

	// MiterLimit is the limit for miter joins before they fall back to
	// bevel joins. Default: 4.0 (matches SVG).
	MiterLimit float64
}

// DefaultStroke returns the configuration-level default stroke style:
// width 10, round caps and joins, miter limit 4.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      10.0,
		Cap:        LineCapRound,
		Join:       LineJoinRound,
		MiterLimit: 4.0,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// Thin returns a thin stroke (0.5 pixels).
func Thin() Stroke {
	return DefaultStroke().WithWidth(0.5)
}

// Thick returns a thick stroke (3 pixels).
func Thick() Stroke {
	return DefaultStroke().WithWidth(3.0)
}

// Bold returns a bold stroke (5 pixels).
func Bold() Stroke {
	return DefaultStroke().WithWidth(5.0)
}

// RoundStroke returns a stroke with round caps and joins.
func RoundStroke() Stroke {
	return DefaultStroke().WithCap(LineCapRound).WithJoin(LineJoinRound)
}

// SquareStroke returns a stroke with square caps.
func SquareStroke() Stroke {
	return DefaultStroke().WithCap(LineCapSquare)
}

// toInternal converts the public Stroke to the internal/stroke style used
// by the expander.
func (s Stroke) toInternal() stroke.Style {
	return stroke.Style{
		Width:      s.Width,
		Cap:        s.Cap,
		Join:       s.Join,
		MiterLimit: s.MiterLimit,
	}
}
