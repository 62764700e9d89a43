package raster

import "github.com/gogpu/vrast/scene"

const evenOddEps = 1e-6
const nonZeroEps = 1e-12

// insidePolygon tests whether (x,y) lies inside the polygon formed by
// verts under rule. Both tests iterate edges (v_i, v_{i-1}) with wrap,
// matching the kernel's required CPU/GPU-identical formulation.
func insidePolygon(verts []scene.Point, x, y float32, rule scene.FillRule) bool {
	switch rule {
	case scene.FillRuleNonZero:
		return insideNonZero(verts, x, y)
	default:
		return insideEvenOdd(verts, x, y)
	}
}

func insideEvenOdd(verts []scene.Point, x, y float32) bool {
	n := len(verts)
	inside := false
	for i := 0; i < n; i++ {
		vi := verts[i]
		vp := verts[(i-1+n)%n]
		if (vi.Y > y) != (vp.Y > y) {
			xIntersect := (vp.X-vi.X)*(y-vi.Y)/(vp.Y-vi.Y+evenOddEps) + vi.X
			if x < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

func isLeft(a, b scene.Point, px, py float32) float32 {
	return (b.X-a.X)*(py-a.Y) - (b.Y-a.Y)*(px-a.X)
}

func insideNonZero(verts []scene.Point, x, y float32) bool {
	n := len(verts)
	w := 0
	for i := 0; i < n; i++ {
		vi := verts[i]
		vp := verts[(i-1+n)%n]
		if vi.Y <= y && vp.Y > y && isLeft(vi, vp, x, y) > nonZeroEps {
			w++
		} else if vi.Y > y && vp.Y <= y && isLeft(vi, vp, x, y) < -nonZeroEps {
			w--
		}
	}
	return w != 0
}
