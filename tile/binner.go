// Package tile computes the per-tile shape index tables the rasterizer
// kernel uses to skip shapes whose bounding box doesn't intersect a
// given tile: bounding box -> tile range -> counts -> exclusive scan ->
// scatter.
package tile

import (
	"github.com/gogpu/vrast/scene"
)

// aabb is an axis-aligned bounding box over a shape's vertex span.
type aabb struct {
	minX, minY, maxX, maxY float32
}

func computeAABB(verts []scene.Point) (aabb, bool) {
	if len(verts) == 0 {
		return aabb{}, false
	}
	box := aabb{minX: verts[0].X, minY: verts[0].Y, maxX: verts[0].X, maxY: verts[0].Y}
	for _, v := range verts[1:] {
		if v.X < box.minX {
			box.minX = v.X
		}
		if v.Y < box.minY {
			box.minY = v.Y
		}
		if v.X > box.maxX {
			box.maxX = v.X
		}
		if v.Y > box.maxY {
			box.maxY = v.Y
		}
	}
	if box.maxX <= box.minX || box.maxY <= box.minY {
		return box, false
	}
	return box, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Bin runs the tile binner over ps and attaches TileOffsetCounts /
// TileShapeIndices. Scratch buffers are drawn from and returned to an
// Arena to avoid per-frame allocation; pass a fresh &Arena{} if none is
// being reused across frames.
func Bin(ps *scene.PackedScene, a *Arena) {
	tileSize := int(ps.Uniforms.TileSize)
	canvasW := int(ps.Uniforms.CanvasW)
	canvasH := int(ps.Uniforms.CanvasH)

	tilesX := (canvasW + tileSize - 1) / tileSize
	tilesY := (canvasH + tileSize - 1) / tileSize
	if tilesX < 1 {
		tilesX = 1
	}
	if tilesY < 1 {
		tilesY = 1
	}
	tileCount := tilesX * tilesY

	counts := a.counts(tileCount)
	ranges := a.ranges(len(ps.Shapes))

	for i, shape := range ps.Shapes {
		verts := ps.Vertices[shape.VStart : shape.VStart+shape.VCount]
		box, ok := computeAABB(verts)
		if !ok {
			ranges[i] = tileRange{empty: true}
			continue
		}
		minTx := clampInt(int(box.minX)/tileSize, 0, tilesX-1)
		maxTx := clampInt(int(box.maxX)/tileSize, 0, tilesX-1)
		minTy := clampInt(int(box.minY)/tileSize, 0, tilesY-1)
		maxTy := clampInt(int(box.maxY)/tileSize, 0, tilesY-1)
		ranges[i] = tileRange{minTx: minTx, maxTx: maxTx, minTy: minTy, maxTy: maxTy}

		for ty := minTy; ty <= maxTy; ty++ {
			for tx := minTx; tx <= maxTx; tx++ {
				counts[ty*tilesX+tx]++
			}
		}
	}

	offsets := a.offsets(tileCount)
	total := uint32(0)
	for t := 0; t < tileCount; t++ {
		offsets[t] = total
		total += counts[t]
	}

	cursors := a.cursors(tileCount)
	copy(cursors, offsets)

	indices := make([]uint32, total)
	for i, r := range ranges {
		if r.empty {
			continue
		}
		for ty := r.minTy; ty <= r.maxTy; ty++ {
			for tx := r.minTx; tx <= r.maxTx; tx++ {
				t := ty*tilesX + tx
				indices[cursors[t]] = uint32(i)
				cursors[t]++
			}
		}
	}

	tileOffsetCounts := make([]uint32, 2*tileCount)
	for t := 0; t < tileCount; t++ {
		tileOffsetCounts[2*t] = offsets[t]
		tileOffsetCounts[2*t+1] = counts[t]
	}

	ps.Uniforms.TilesX = uint32(tilesX)
	ps.TileOffsetCounts = tileOffsetCounts
	ps.TileShapeIndices = indices
}

type tileRange struct {
	minTx, maxTx, minTy, maxTy int
	empty                      bool
}
