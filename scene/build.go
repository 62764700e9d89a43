package scene

// PackedScene is the immutable, tightly packed binary scene a rasterizer
// backend (CPU or GPU) consumes. It is produced by Packer.Build and then
// augmented with tile tables by the tile binner.
type PackedScene struct {
	Shapes []ShapeRecord
	Clips  []ClipRecord
	Masks  []MaskRecord

	// Vertices is the combined vertex buffer: shape verts, then clip
	// verts, then mask verts, as contiguous (X,Y) float32 pairs.
	Vertices []Point

	// Refs is the combined reference buffer: shape-attached clip ids,
	// then shape-attached mask ids.
	Refs []uint32

	Uniforms Uniforms

	// TileOffsetCounts and TileShapeIndices are populated by the tile
	// binner; they are empty immediately after Build.
	TileOffsetCounts []uint32
	TileShapeIndices []uint32
}

// Build assembles the packer's accumulated shapes, clips, and masks into
// a PackedScene. The returned scene has no tile tables yet — callers run
// the tile binner separately and attach its output.
func (p *Packer) Build(canvasW, canvasH, tileSize, supersample uint32) *PackedScene {
	var shapeVerts, clipVerts, maskVerts []Point

	clipRecords := make([]ClipRecord, len(p.clips))
	for i, c := range p.clips {
		clipRecords[i] = ClipRecord{
			VStart: uint32(len(clipVerts)),
			VCount: uint32(len(c.verts)),
			Rule:   c.rule,
		}
		clipVerts = append(clipVerts, c.verts...)
	}

	maskRecords := make([]MaskRecord, len(p.masks))
	for i, m := range p.masks {
		maskRecords[i] = MaskRecord{
			VStart: uint32(len(maskVerts)),
			VCount: uint32(len(m.verts)),
			Rule:   m.rule,
			Alpha:  m.alpha,
		}
		maskVerts = append(maskVerts, m.verts...)
	}

	var clipRefs, maskRefs []uint32
	shapeRecords := make([]ShapeRecord, len(p.shapes))
	for i, s := range p.shapes {
		clipStart := uint32(len(clipRefs))
		clipRefs = append(clipRefs, s.clipRefs...)
		maskStart := uint32(len(maskRefs))
		maskRefs = append(maskRefs, s.maskRefs...)

		shapeRecords[i] = ShapeRecord{
			VStart:    uint32(len(shapeVerts)),
			VCount:    uint32(len(s.verts)),
			Rule:      s.rule,
			ColorR:    s.color.R,
			ColorG:    s.color.G,
			ColorB:    s.color.B,
			ColorA:    s.color.A,
			ClipStart: clipStart,
			ClipCount: uint32(len(s.clipRefs)),
			MaskStart: maskStart,
			MaskCount: uint32(len(s.maskRefs)),
			Opacity:   s.opacity,
		}
		shapeVerts = append(shapeVerts, s.verts...)
	}

	// Offset clip/mask vStart by the preceding buffer regions now that
	// shapeVerts' final length is known.
	clipVertOffset := uint32(len(shapeVerts))
	for i := range clipRecords {
		clipRecords[i].VStart += clipVertOffset
	}
	maskVertOffset := clipVertOffset + uint32(len(clipVerts))
	for i := range maskRecords {
		maskRecords[i].VStart += maskVertOffset
	}

	// Shift every shape's MaskStart by the total clip-ref count so both
	// spans index into one combined refs buffer: clipRefs ++ maskRefs.
	clipRefTotal := uint32(len(clipRefs))
	for i := range shapeRecords {
		shapeRecords[i].MaskStart += clipRefTotal
	}

	vertices := make([]Point, 0, len(shapeVerts)+len(clipVerts)+len(maskVerts))
	vertices = append(vertices, shapeVerts...)
	vertices = append(vertices, clipVerts...)
	vertices = append(vertices, maskVerts...)

	refs := make([]uint32, 0, len(clipRefs)+len(maskRefs))
	refs = append(refs, clipRefs...)
	refs = append(refs, maskRefs...)

	tilesX := (canvasW + tileSize - 1) / tileSize

	return &PackedScene{
		Shapes:   shapeRecords,
		Clips:    clipRecords,
		Masks:    maskRecords,
		Vertices: vertices,
		Refs:     refs,
		Uniforms: Uniforms{
			CanvasW:     canvasW,
			CanvasH:     canvasH,
			TileSize:    tileSize,
			TilesX:      tilesX,
			Supersample: supersample,
		},
	}
}
