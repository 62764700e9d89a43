// Package hash computes deterministic FNV-1a content hashes over packed
// scene buffers, for cache keys and change detection across frames.
package hash

import (
	"math"

	"github.com/gogpu/vrast/scene"
)

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

type hasher struct {
	h uint64
}

func newHasher() *hasher { return &hasher{h: fnvOffset} }

func (hs *hasher) u32(v uint32) {
	hs.h ^= uint64(v)
	hs.h *= fnvPrime
}

func (hs *hasher) f32(v float32) {
	hs.u32(math.Float32bits(v))
}

// Scene computes a 64-bit FNV-1a hash over every buffer of a packed
// scene (shapes, clips, masks, vertices, refs, uniforms, tile tables),
// in field declaration order, so two scenes built from identical
// authoring calls hash identically.
func Scene(ps *scene.PackedScene) uint64 {
	hs := newHasher()

	for _, s := range ps.Shapes {
		hs.u32(s.VStart)
		hs.u32(s.VCount)
		hs.u32(uint32(s.Rule))
		hs.f32(s.ColorR)
		hs.f32(s.ColorG)
		hs.f32(s.ColorB)
		hs.f32(s.ColorA)
		hs.u32(s.ClipStart)
		hs.u32(s.ClipCount)
		hs.u32(s.MaskStart)
		hs.u32(s.MaskCount)
		hs.f32(s.Opacity)
	}
	for _, c := range ps.Clips {
		hs.u32(c.VStart)
		hs.u32(c.VCount)
		hs.u32(uint32(c.Rule))
	}
	for _, m := range ps.Masks {
		hs.u32(m.VStart)
		hs.u32(m.VCount)
		hs.u32(uint32(m.Rule))
		hs.f32(m.Alpha)
	}
	for _, v := range ps.Vertices {
		hs.f32(v.X)
		hs.f32(v.Y)
	}
	for _, r := range ps.Refs {
		hs.u32(r)
	}
	hs.u32(ps.Uniforms.CanvasW)
	hs.u32(ps.Uniforms.CanvasH)
	hs.u32(ps.Uniforms.TileSize)
	hs.u32(ps.Uniforms.TilesX)
	hs.u32(ps.Uniforms.Supersample)
	for _, v := range ps.TileOffsetCounts {
		hs.u32(v)
	}
	for _, v := range ps.TileShapeIndices {
		hs.u32(v)
	}

	return hs.h
}
