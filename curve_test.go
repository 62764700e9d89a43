package vrast

import "testing"

func TestQuadBezEvalEndpoints(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(1, 2), P2: Pt(2, 0)}
	if got := q.Eval(0); got != q.P0 {
		t.Errorf("Eval(0) = %v, want P0 %v", got, q.P0)
	}
	if got := q.Eval(1); got != q.P2 {
		t.Errorf("Eval(1) = %v, want P2 %v", got, q.P2)
	}
}

func TestQuadBezSubdivideMatchesEval(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(1, 2), P2: Pt(2, 0)}
	a, b := q.Subdivide()
	mid := q.Eval(0.5)
	if a.P0 != q.P0 || a.P2 != mid {
		t.Errorf("first half = %+v, want start %v end %v", a, q.P0, mid)
	}
	if b.P0 != mid || b.P2 != q.P2 {
		t.Errorf("second half = %+v, want start %v end %v", b, mid, q.P2)
	}
}

func TestCubicBezEvalEndpoints(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(1, 2), P2: Pt(3, 2), P3: Pt(4, 0)}
	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %v, want P0 %v", got, c.P0)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %v, want P3 %v", got, c.P3)
	}
}

func TestCubicBezSubdivideMatchesEval(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(1, 2), P2: Pt(3, 2), P3: Pt(4, 0)}
	a, b := c.Subdivide()
	mid := c.Eval(0.5)
	if a.P0 != c.P0 || a.P3 != mid {
		t.Errorf("first half = %+v, want start %v end %v", a, c.P0, mid)
	}
	if b.P0 != mid || b.P3 != c.P3 {
		t.Errorf("second half = %+v, want start %v end %v", b, mid, c.P3)
	}
	if a.P3.Distance(mid) > 1e-9 {
		t.Errorf("subdivided halves don't meet at the curve's t=0.5 point")
	}
}
