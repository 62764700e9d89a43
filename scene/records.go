// Package scene maintains the clip/mask/opacity stacks an authoring
// script pushes and pops, and packs the resulting shapes into the
// tightly-packed binary buffers a rasterizer backend consumes.
package scene

import (
	"encoding/binary"
	"math"
)

func putU32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }
func putF32(b []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v))
}
func getU32(b []byte, off int) uint32 { return binary.LittleEndian.Uint32(b[off:]) }
func getF32(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

// FillRule selects how a polygon's interior is determined.
type FillRule uint32

const (
	FillRuleEvenOdd FillRule = 0
	FillRuleNonZero FillRule = 1
)

// ShapeRecord is the fixed 64-byte, 4-byte-aligned shape descriptor laid
// out exactly as the rasterizer kernel expects it:
//
//	vStart, vCount, rule, _pad                u32 x4  (16 B)
//	color                                      f32 x4  (16 B)
//	clipStart, clipCount, maskStart, maskCount u32 x4  (16 B)
//	opacity, _pad x3                           f32 x4  (16 B)
type ShapeRecord struct {
	VStart, VCount uint32
	Rule           FillRule
	_pad0          uint32

	ColorR, ColorG, ColorB, ColorA float32 // premultiplied

	ClipStart, ClipCount uint32
	MaskStart, MaskCount uint32

	Opacity float32
	_pad1   [3]float32
}

// ClipRecord is the fixed 16-byte clip descriptor.
type ClipRecord struct {
	VStart, VCount uint32
	Rule           FillRule
	_pad           uint32
}

// MaskRecord is the fixed 32-byte opacity-mask descriptor.
type MaskRecord struct {
	VStart, VCount uint32
	Rule           FillRule
	_pad0          uint32
	Alpha          float32
	_pad1          [3]float32
}

// Uniforms is the fixed 32-byte per-frame uniform block.
type Uniforms struct {
	CanvasW, CanvasH uint32
	TileSize         uint32
	TilesX           uint32
	Supersample      uint32
	_pad             [3]uint32
}

const (
	ShapeRecordSize = 64
	ClipRecordSize  = 16
	MaskRecordSize  = 32
	UniformsSize    = 32
)

// Bytes encodes a ShapeRecord into exactly ShapeRecordSize little-endian bytes.
func (s ShapeRecord) Bytes() []byte {
	b := make([]byte, ShapeRecordSize)
	putU32(b, 0, s.VStart)
	putU32(b, 4, s.VCount)
	putU32(b, 8, uint32(s.Rule))
	putF32(b, 16, s.ColorR)
	putF32(b, 20, s.ColorG)
	putF32(b, 24, s.ColorB)
	putF32(b, 28, s.ColorA)
	putU32(b, 32, s.ClipStart)
	putU32(b, 36, s.ClipCount)
	putU32(b, 40, s.MaskStart)
	putU32(b, 44, s.MaskCount)
	putF32(b, 48, s.Opacity)
	return b
}

// ParseShapeRecord decodes a ShapeRecord from exactly ShapeRecordSize bytes.
func ParseShapeRecord(b []byte) ShapeRecord {
	return ShapeRecord{
		VStart:    getU32(b, 0),
		VCount:    getU32(b, 4),
		Rule:      FillRule(getU32(b, 8)),
		ColorR:    getF32(b, 16),
		ColorG:    getF32(b, 20),
		ColorB:    getF32(b, 24),
		ColorA:    getF32(b, 28),
		ClipStart: getU32(b, 32),
		ClipCount: getU32(b, 36),
		MaskStart: getU32(b, 40),
		MaskCount: getU32(b, 44),
		Opacity:   getF32(b, 48),
	}
}

// Bytes encodes a ClipRecord into exactly ClipRecordSize little-endian bytes.
func (c ClipRecord) Bytes() []byte {
	b := make([]byte, ClipRecordSize)
	putU32(b, 0, c.VStart)
	putU32(b, 4, c.VCount)
	putU32(b, 8, uint32(c.Rule))
	return b
}

// ParseClipRecord decodes a ClipRecord from exactly ClipRecordSize bytes.
func ParseClipRecord(b []byte) ClipRecord {
	return ClipRecord{VStart: getU32(b, 0), VCount: getU32(b, 4), Rule: FillRule(getU32(b, 8))}
}

// Bytes encodes a MaskRecord into exactly MaskRecordSize little-endian bytes.
func (m MaskRecord) Bytes() []byte {
	b := make([]byte, MaskRecordSize)
	putU32(b, 0, m.VStart)
	putU32(b, 4, m.VCount)
	putU32(b, 8, uint32(m.Rule))
	putF32(b, 16, m.Alpha)
	return b
}

// ParseMaskRecord decodes a MaskRecord from exactly MaskRecordSize bytes.
func ParseMaskRecord(b []byte) MaskRecord {
	return MaskRecord{VStart: getU32(b, 0), VCount: getU32(b, 4), Rule: FillRule(getU32(b, 8)), Alpha: getF32(b, 16)}
}

// Bytes encodes Uniforms into exactly UniformsSize little-endian bytes.
func (u Uniforms) Bytes() []byte {
	b := make([]byte, UniformsSize)
	putU32(b, 0, u.CanvasW)
	putU32(b, 4, u.CanvasH)
	putU32(b, 8, u.TileSize)
	putU32(b, 12, u.TilesX)
	putU32(b, 16, u.Supersample)
	return b
}
