package raster

import (
	"testing"

	"github.com/gogpu/vrast/scene"
)

func square(x, y, w float32) []scene.Point {
	return []scene.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + w}, {X: x, Y: y + w}}
}

func TestInsideEvenOddSquare(t *testing.T) {
	verts := square(0, 0, 10)
	if !insideEvenOdd(verts, 5, 5) {
		t.Error("center of square should be inside")
	}
	if insideEvenOdd(verts, 20, 20) {
		t.Error("point far outside square should not be inside")
	}
}

func TestInsideEvenOddDonut(t *testing.T) {
	outer := square(0, 0, 100)
	inner := square(25, 25, 50)
	// Both rings are closed so the bridge edges between them coincide.
	verts := append(append(append(append([]scene.Point{}, outer...), outer[0]), inner...), inner[0])
	if insideEvenOdd(verts, 50, 50) {
		t.Error("donut center should be outside under even-odd")
	}
	if !insideEvenOdd(verts, 10, 50) {
		t.Error("donut band should be inside under even-odd")
	}
}

func TestInsideNonZeroSquare(t *testing.T) {
	verts := square(0, 0, 10)
	if !insideNonZero(verts, 5, 5) {
		t.Error("center of square should be inside under non-zero")
	}
	if insideNonZero(verts, 20, 20) {
		t.Error("point far outside square should not be inside under non-zero")
	}
}

func TestInsidePolygonDispatchesByRule(t *testing.T) {
	outer := square(0, 0, 100)
	inner := square(25, 25, 50)
	verts := append(append([]scene.Point{}, outer...), inner...)
	if insidePolygon(verts, 50, 50, scene.FillRuleEvenOdd) {
		t.Error("even-odd donut center should be outside")
	}
}
