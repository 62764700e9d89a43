package scene

import "encoding/binary"

// Encode serializes a PackedScene into a single flat byte buffer: a
// header of element counts, followed by shapes, clips, masks, vertices,
// refs, tile tables, and the uniforms block, each in their native
// little-endian layout. Encode/Decode round-trip every record, buffer
// element and uniform exactly; nil tile tables come back as empty slices.
func (ps *PackedScene) Encode() []byte {
	header := make([]byte, 8*4)
	binary.LittleEndian.PutUint32(header[0:], uint32(len(ps.Shapes)))
	binary.LittleEndian.PutUint32(header[4:], uint32(len(ps.Clips)))
	binary.LittleEndian.PutUint32(header[8:], uint32(len(ps.Masks)))
	binary.LittleEndian.PutUint32(header[12:], uint32(len(ps.Vertices)))
	binary.LittleEndian.PutUint32(header[16:], uint32(len(ps.Refs)))
	binary.LittleEndian.PutUint32(header[20:], uint32(len(ps.TileOffsetCounts)))
	binary.LittleEndian.PutUint32(header[24:], uint32(len(ps.TileShapeIndices)))

	buf := header
	for _, s := range ps.Shapes {
		buf = append(buf, s.Bytes()...)
	}
	for _, c := range ps.Clips {
		buf = append(buf, c.Bytes()...)
	}
	for _, m := range ps.Masks {
		buf = append(buf, m.Bytes()...)
	}
	for _, v := range ps.Vertices {
		vb := make([]byte, 8)
		putF32(vb, 0, v.X)
		putF32(vb, 4, v.Y)
		buf = append(buf, vb...)
	}
	for _, r := range ps.Refs {
		rb := make([]byte, 4)
		binary.LittleEndian.PutUint32(rb, r)
		buf = append(buf, rb...)
	}
	for _, t := range ps.TileOffsetCounts {
		rb := make([]byte, 4)
		binary.LittleEndian.PutUint32(rb, t)
		buf = append(buf, rb...)
	}
	for _, t := range ps.TileShapeIndices {
		rb := make([]byte, 4)
		binary.LittleEndian.PutUint32(rb, t)
		buf = append(buf, rb...)
	}
	buf = append(buf, ps.Uniforms.Bytes()...)
	return buf
}

// DecodePackedScene parses the byte layout Encode produces.
func DecodePackedScene(buf []byte) *PackedScene {
	shapeN := binary.LittleEndian.Uint32(buf[0:])
	clipN := binary.LittleEndian.Uint32(buf[4:])
	maskN := binary.LittleEndian.Uint32(buf[8:])
	vertN := binary.LittleEndian.Uint32(buf[12:])
	refN := binary.LittleEndian.Uint32(buf[16:])
	tileOCN := binary.LittleEndian.Uint32(buf[20:])
	tileSIN := binary.LittleEndian.Uint32(buf[24:])

	off := 32
	ps := &PackedScene{}

	ps.Shapes = make([]ShapeRecord, shapeN)
	for i := range ps.Shapes {
		ps.Shapes[i] = ParseShapeRecord(buf[off:])
		off += ShapeRecordSize
	}
	ps.Clips = make([]ClipRecord, clipN)
	for i := range ps.Clips {
		ps.Clips[i] = ParseClipRecord(buf[off:])
		off += ClipRecordSize
	}
	ps.Masks = make([]MaskRecord, maskN)
	for i := range ps.Masks {
		ps.Masks[i] = ParseMaskRecord(buf[off:])
		off += MaskRecordSize
	}
	ps.Vertices = make([]Point, vertN)
	for i := range ps.Vertices {
		ps.Vertices[i] = Point{X: getF32(buf, off), Y: getF32(buf, off+4)}
		off += 8
	}
	ps.Refs = make([]uint32, refN)
	for i := range ps.Refs {
		ps.Refs[i] = binary.LittleEndian.Uint32(buf[off:])
		off += 4
	}
	ps.TileOffsetCounts = make([]uint32, tileOCN)
	for i := range ps.TileOffsetCounts {
		ps.TileOffsetCounts[i] = binary.LittleEndian.Uint32(buf[off:])
		off += 4
	}
	ps.TileShapeIndices = make([]uint32, tileSIN)
	for i := range ps.TileShapeIndices {
		ps.TileShapeIndices[i] = binary.LittleEndian.Uint32(buf[off:])
		off += 4
	}
	ps.Uniforms = Uniforms{
		CanvasW:     binary.LittleEndian.Uint32(buf[off:]),
		CanvasH:     binary.LittleEndian.Uint32(buf[off+4:]),
		TileSize:    binary.LittleEndian.Uint32(buf[off+8:]),
		TilesX:      binary.LittleEndian.Uint32(buf[off+12:]),
		Supersample: binary.LittleEndian.Uint32(buf[off+16:]),
	}
	return ps
}

// Rebuild round-trips a PackedScene through Encode/Decode. Callers use it
// to assert rebuild(scene) == scene.
func Rebuild(ps *PackedScene) *PackedScene {
	return DecodePackedScene(ps.Encode())
}
