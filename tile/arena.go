package tile

// Arena holds scratch buffers for the binner's counts/offsets/cursors/
// ranges passes, reused across frames so binning a scene of the same
// approximate size doesn't allocate every frame.
type Arena struct {
	countsBuf  []uint32
	offsetsBuf []uint32
	cursorsBuf []uint32
	rangesBuf  []tileRange
}

func (a *Arena) counts(n int) []uint32 {
	a.countsBuf = resizeU32(a.countsBuf, n)
	return a.countsBuf
}

func (a *Arena) offsets(n int) []uint32 {
	a.offsetsBuf = resizeU32(a.offsetsBuf, n)
	return a.offsetsBuf
}

func (a *Arena) cursors(n int) []uint32 {
	a.cursorsBuf = resizeU32(a.cursorsBuf, n)
	return a.cursorsBuf
}

func (a *Arena) ranges(n int) []tileRange {
	if cap(a.rangesBuf) < n {
		a.rangesBuf = make([]tileRange, n)
	} else {
		a.rangesBuf = a.rangesBuf[:n]
	}
	return a.rangesBuf
}

func resizeU32(buf []uint32, n int) []uint32 {
	if cap(buf) < n {
		buf = make([]uint32, n)
	} else {
		buf = buf[:n]
		for i := range buf {
			buf[i] = 0
		}
	}
	return buf
}
