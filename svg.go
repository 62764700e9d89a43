package vrast

import (
	"math"
	"strconv"
)

// ParseSVGPath parses an SVG path `d` attribute string into a Path. It
// supports the full command set (MmLlHhVvCcSsQqTtAaZz), implicit line-to
// after an initial move, and the S/T reflection rule. Elliptical arcs are
// converted to cubic Beziers using the SVG 1.1 endpoint-to-center
// parameterization.
func ParseSVGPath(d string) (*Path, error) {
	p := NewPath()
	s := &svgScanner{d: d}

	var cmd byte
	haveSubpath := false
	var lastCubicCtrl, lastQuadCtrl Point
	var lastWasCubic, lastWasQuad bool

	for {
		s.skipSeparators()
		if s.eof() {
			break
		}
		if isCommandLetter(s.peek()) {
			cmd = s.next()
		} else if cmd == 0 {
			return nil, &ParseError{Pos: s.pos, Msg: "path data must begin with a command"}
		} else if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
		// implicit repeat keeps the same command letter otherwise

		switch cmd {
		case 'M', 'm':
			x, y, err := s.readPair()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			if cmd == 'm' && haveSubpath {
				x += p.CurrentPoint().X
				y += p.CurrentPoint().Y
			}
			p.MoveTo(x, y)
			haveSubpath = true
			lastWasCubic, lastWasQuad = false, false

		case 'L', 'l':
			x, y, err := s.readPair()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			if cmd == 'l' {
				x += p.CurrentPoint().X
				y += p.CurrentPoint().Y
			}
			p.LineTo(x, y)
			lastWasCubic, lastWasQuad = false, false

		case 'H', 'h':
			x, err := s.readNumber()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			if cmd == 'h' {
				x += p.CurrentPoint().X
			}
			p.LineTo(x, p.CurrentPoint().Y)
			lastWasCubic, lastWasQuad = false, false

		case 'V', 'v':
			y, err := s.readNumber()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			if cmd == 'v' {
				y += p.CurrentPoint().Y
			}
			p.LineTo(p.CurrentPoint().X, y)
			lastWasCubic, lastWasQuad = false, false

		case 'C', 'c':
			c1x, c1y, err := s.readPair()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			c2x, c2y, err := s.readPair()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			x, y, err := s.readPair()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			if cmd == 'c' {
				cur := p.CurrentPoint()
				c1x, c1y = c1x+cur.X, c1y+cur.Y
				c2x, c2y = c2x+cur.X, c2y+cur.Y
				x, y = x+cur.X, y+cur.Y
			}
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
			lastCubicCtrl = Pt(c2x, c2y)
			lastWasCubic, lastWasQuad = true, false

		case 'S', 's':
			c2x, c2y, err := s.readPair()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			x, y, err := s.readPair()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			if cmd == 's' {
				cur := p.CurrentPoint()
				c2x, c2y = c2x+cur.X, c2y+cur.Y
				x, y = x+cur.X, y+cur.Y
			}
			cur := p.CurrentPoint()
			c1 := cur
			if lastWasCubic {
				c1 = cur.Mul(2).Sub(lastCubicCtrl)
			}
			p.CubicTo(c1.X, c1.Y, c2x, c2y, x, y)
			lastCubicCtrl = Pt(c2x, c2y)
			lastWasCubic, lastWasQuad = true, false

		case 'Q', 'q':
			cx, cy, err := s.readPair()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			x, y, err := s.readPair()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			if cmd == 'q' {
				cur := p.CurrentPoint()
				cx, cy = cx+cur.X, cy+cur.Y
				x, y = x+cur.X, y+cur.Y
			}
			p.QuadraticTo(cx, cy, x, y)
			lastQuadCtrl = Pt(cx, cy)
			lastWasCubic, lastWasQuad = false, true

		case 'T', 't':
			x, y, err := s.readPair()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			if cmd == 't' {
				cur := p.CurrentPoint()
				x, y = x+cur.X, y+cur.Y
			}
			cur := p.CurrentPoint()
			c := cur
			if lastWasQuad {
				c = cur.Mul(2).Sub(lastQuadCtrl)
			}
			p.QuadraticTo(c.X, c.Y, x, y)
			lastQuadCtrl = c
			lastWasCubic, lastWasQuad = false, true

		case 'A', 'a':
			rx, err := s.readNumber()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			ry, err := s.readNumber()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			rot, err := s.readNumber()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			largeArc, err := s.readFlag()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			sweep, err := s.readFlag()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			x, y, err := s.readPair()
			if err != nil {
				return nil, s.wrap(cmd, err)
			}
			if cmd == 'a' {
				cur := p.CurrentPoint()
				x, y = x+cur.X, y+cur.Y
			}
			appendArcAsCubics(p, p.CurrentPoint(), rx, ry, rot*math.Pi/180, largeArc, sweep, Pt(x, y))
			lastWasCubic, lastWasQuad = false, false

		case 'Z', 'z':
			p.Close()
			lastWasCubic, lastWasQuad = false, false

		default:
			return nil, &ParseError{Pos: s.pos, Command: cmd, Msg: "unknown command"}
		}
	}

	return p, nil
}

func isCommandLetter(b byte) bool {
	switch b {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// appendArcAsCubics implements the SVG 1.1 endpoint-to-center arc
// parameterization, splits the arc into subarcs of at most pi/2 radians,
// and appends each as a cubic Bezier using the k = (4/3)*tan(delta/4)
// tangent-length rule.
func appendArcAsCubics(p *Path, p0 Point, rx, ry, rot float64, largeArc, sweep bool, p1 Point) {
	if rx == 0 || ry == 0 {
		p.LineTo(p1.X, p1.Y)
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)

	cosPhi, sinPhi := math.Cos(rot), math.Sin(rot)
	dx2, dy2 := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1.0
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den != 0 && num/den > 0 {
		co = sign * math.Sqrt(num/den)
	}
	cxp := co * (rx * y1p / ry)
	cyp := co * (-ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(clampUnit(dot / lenProd))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	deltaTheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)

	if !sweep && deltaTheta > 0 {
		deltaTheta -= 2 * math.Pi
	} else if sweep && deltaTheta < 0 {
		deltaTheta += 2 * math.Pi
	}

	numSub := int(math.Ceil(math.Abs(deltaTheta) / (math.Pi / 2)))
	if numSub < 1 {
		numSub = 1
	}
	subDelta := deltaTheta / float64(numSub)

	t := theta1
	for i := 0; i < numSub; i++ {
		t2 := t + subDelta
		appendArcSegmentAsCubic(p, cx, cy, rx, ry, cosPhi, sinPhi, t, t2)
		t = t2
	}
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

func appendArcSegmentAsCubic(p *Path, cx, cy, rx, ry, cosPhi, sinPhi, t1, t2 float64) {
	alpha := (4.0 / 3.0) * math.Tan((t2-t1)/4)

	ellipsePoint := func(t float64) (x, y float64) {
		ex, ey := rx*math.Cos(t), ry*math.Sin(t)
		return cx + ex*cosPhi - ey*sinPhi, cy + ex*sinPhi + ey*cosPhi
	}
	ellipseDeriv := func(t float64) (x, y float64) {
		ex, ey := -rx*math.Sin(t), ry*math.Cos(t)
		return ex*cosPhi - ey*sinPhi, ex*sinPhi + ey*cosPhi
	}

	x1, y1 := ellipsePoint(t1)
	x2, y2 := ellipsePoint(t2)
	d1x, d1y := ellipseDeriv(t1)
	d2x, d2y := ellipseDeriv(t2)

	c1x, c1y := x1+alpha*d1x, y1+alpha*d1y
	c2x, c2y := x2-alpha*d2x, y2-alpha*d2y

	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// svgScanner is a small hand-rolled tokenizer over an SVG path `d` string,
// reading whitespace/comma-separated numeric operands and command letters.
type svgScanner struct {
	d   string
	pos int
}

func (s *svgScanner) eof() bool { return s.pos >= len(s.d) }

func (s *svgScanner) peek() byte {
	return s.d[s.pos]
}

func (s *svgScanner) next() byte {
	b := s.d[s.pos]
	s.pos++
	return b
}

func (s *svgScanner) skipSeparators() {
	for !s.eof() {
		c := s.d[s.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' {
			s.pos++
			continue
		}
		break
	}
}

func (s *svgScanner) readNumber() (float64, error) {
	s.skipSeparators()
	start := s.pos
	if s.eof() {
		return 0, &ParseError{Pos: s.pos, Msg: "expected number, got end of input"}
	}
	if s.d[s.pos] == '+' || s.d[s.pos] == '-' {
		s.pos++
	}
	sawDigit := false
	for !s.eof() && s.d[s.pos] >= '0' && s.d[s.pos] <= '9' {
		s.pos++
		sawDigit = true
	}
	if !s.eof() && s.d[s.pos] == '.' {
		s.pos++
		for !s.eof() && s.d[s.pos] >= '0' && s.d[s.pos] <= '9' {
			s.pos++
			sawDigit = true
		}
	}
	if !sawDigit {
		return 0, &ParseError{Pos: start, Msg: "malformed numeric operand"}
	}
	if !s.eof() && (s.d[s.pos] == 'e' || s.d[s.pos] == 'E') {
		save := s.pos
		s.pos++
		if !s.eof() && (s.d[s.pos] == '+' || s.d[s.pos] == '-') {
			s.pos++
		}
		expDigit := false
		for !s.eof() && s.d[s.pos] >= '0' && s.d[s.pos] <= '9' {
			s.pos++
			expDigit = true
		}
		if !expDigit {
			s.pos = save
		}
	}
	v, err := strconv.ParseFloat(s.d[start:s.pos], 64)
	if err != nil {
		return 0, &ParseError{Pos: start, Msg: "malformed numeric operand"}
	}
	return v, nil
}

func (s *svgScanner) readPair() (x, y float64, err error) {
	x, err = s.readNumber()
	if err != nil {
		return 0, 0, err
	}
	y, err = s.readNumber()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (s *svgScanner) readFlag() (bool, error) {
	s.skipSeparators()
	if s.eof() {
		return false, &ParseError{Pos: s.pos, Msg: "expected flag, got end of input"}
	}
	c := s.d[s.pos]
	if c != '0' && c != '1' {
		return false, &ParseError{Pos: s.pos, Msg: "malformed flag operand, expected 0 or 1"}
	}
	s.pos++
	return c == '1', nil
}

func (s *svgScanner) wrap(cmd byte, err error) error {
	if pe, ok := err.(*ParseError); ok {
		pe.Command = cmd
		return pe
	}
	return err
}
