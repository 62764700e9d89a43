// Package raster implements the per-pixel rasterizer kernel: for every
// pixel it walks the shapes binned to that pixel's tile, tests
// polygon/clip membership, accumulates opacity masks, and composites
// premultiplied color samples with the "over" operator under
// supersampling. The same per-pixel function backs every backend so
// pixel output is identical regardless of how the outer loop is
// parallelized.
package raster

import "github.com/gogpu/vrast/scene"

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

type rgba struct{ r, g, b, a float32 }

// over composites src over dst, both premultiplied.
func over(src, dst rgba) rgba {
	inv := 1 - src.a
	return rgba{
		r: src.r + dst.r*inv,
		g: src.g + dst.g*inv,
		b: src.b + dst.b*inv,
		a: src.a + dst.a*inv,
	}
}

// maskAccumulate folds one more mask's coverage into a running mask
// value. Callers must iterate masks in list order to match the GPU
// kernel's traversal.
func maskAccumulate(maskValue, alpha float32) float32 {
	return maskValue + (1-maskValue)*clamp01(alpha)
}

const opacityEps = 1e-5
const unpremulEps = 1e-5

// clipActive reports whether a sample at (x,y) passes every clip
// attached to shape (logical AND across the clip list).
func clipActive(ps *scene.PackedScene, shape scene.ShapeRecord, x, y float32) bool {
	for c := uint32(0); c < shape.ClipCount; c++ {
		clipIdx := ps.Refs[shape.ClipStart+c]
		clip := ps.Clips[clipIdx]
		verts := ps.Vertices[clip.VStart : clip.VStart+clip.VCount]
		if !insidePolygon(verts, x, y, clip.Rule) {
			return false
		}
	}
	return true
}

// shapeMaskValue computes the accumulated opacity-mask factor for shape
// at (x,y): 1.0 if the shape has no attached masks, otherwise the
// additive mix of every mask it is inside.
func shapeMaskValue(ps *scene.PackedScene, shape scene.ShapeRecord, x, y float32) float32 {
	if shape.MaskCount == 0 {
		return 1.0
	}
	maskValue := float32(0.0)
	for m := uint32(0); m < shape.MaskCount; m++ {
		maskIdx := ps.Refs[shape.MaskStart+m]
		mask := ps.Masks[maskIdx]
		verts := ps.Vertices[mask.VStart : mask.VStart+mask.VCount]
		if insidePolygon(verts, x, y, mask.Rule) {
			maskValue = maskAccumulate(maskValue, mask.Alpha)
		}
	}
	return maskValue
}

// samplePixel evaluates the kernel at one subsample point, returning
// the premultiplied color contribution after compositing every shape
// bound to the tile in submission order.
func samplePixel(ps *scene.PackedScene, tileShapes []uint32, sx, sy float32) rgba {
	color := rgba{}
	for _, shapeIdx := range tileShapes {
		shape := ps.Shapes[shapeIdx]
		verts := ps.Vertices[shape.VStart : shape.VStart+shape.VCount]
		if !insidePolygon(verts, sx, sy, shape.Rule) {
			continue
		}
		if !clipActive(ps, shape, sx, sy) {
			continue
		}
		maskValue := shapeMaskValue(ps, shape, sx, sy)
		factor := shape.Opacity * maskValue
		if factor <= opacityEps {
			continue
		}
		src := rgba{
			r: shape.ColorR * factor,
			g: shape.ColorG * factor,
			b: shape.ColorB * factor,
			a: shape.ColorA * factor,
		}
		color = over(src, color)
	}
	return color
}

// tileShapesAt returns the shape-index slice bound to the tile
// containing pixel (x,y).
func tileShapesAt(ps *scene.PackedScene, x, y int) []uint32 {
	tileSize := int(ps.Uniforms.TileSize)
	tilesX := int(ps.Uniforms.TilesX)
	canvasH := int(ps.Uniforms.CanvasH)
	tilesY := (canvasH + tileSize - 1) / tileSize
	if tilesX < 1 {
		tilesX = 1
	}
	if tilesY < 1 {
		tilesY = 1
	}
	tx := clampIntRaster(x/tileSize, 0, tilesX-1)
	ty := clampIntRaster(y/tileSize, 0, tilesY-1)
	t := ty*tilesX + tx
	start := ps.TileOffsetCounts[2*t]
	count := ps.TileOffsetCounts[2*t+1]
	return ps.TileShapeIndices[start : start+count]
}

func clampIntRaster(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RenderPixel computes the final straight-alpha RGBA color (in
// [0,1]^4) for pixel (x,y) under supersample factor ss.
func RenderPixel(ps *scene.PackedScene, x, y int, ss int) (r, g, b, a float32) {
	if ss < 1 {
		ss = 1
	}
	tileShapes := tileShapesAt(ps, x, y)
	accum := rgba{}
	for sy := 0; sy < ss; sy++ {
		for sx := 0; sx < ss; sx++ {
			sampleX := float32(x) + (float32(sx)+0.5)/float32(ss)
			sampleY := float32(y) + (float32(sy)+0.5)/float32(ss)
			c := samplePixel(ps, tileShapes, sampleX, sampleY)
			accum.r += c.r
			accum.g += c.g
			accum.b += c.b
			accum.a += c.a
		}
	}
	n := float32(ss * ss)
	avg := rgba{accum.r / n, accum.g / n, accum.b / n, accum.a / n}

	alpha := clamp01(avg.a)
	if alpha <= unpremulEps {
		return 0, 0, 0, alpha
	}
	return clamp01(avg.r / alpha), clamp01(avg.g / alpha), clamp01(avg.b / alpha), alpha
}
