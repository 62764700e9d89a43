package scene

import "sync"

// packerPool recycles Packer instances (and their backing slices) across
// frames to avoid per-frame allocation at scale, following the same
// sync.Pool arena pattern used elsewhere in this module for scratch
// buffers.
var packerPool = sync.Pool{
	New: func() any { return NewPacker() },
}

// AcquirePacker returns a Packer ready for a new frame, reusing a
// previously released one when available.
func AcquirePacker() *Packer {
	p := packerPool.Get().(*Packer)
	p.reset()
	return p
}

// ReleasePacker returns p to the pool. Callers must not use p again
// after releasing it.
func ReleasePacker(p *Packer) {
	packerPool.Put(p)
}

func (p *Packer) reset() {
	p.shapes = p.shapes[:0]
	p.clips = p.clips[:0]
	p.masks = p.masks[:0]
	p.clipStack = p.clipStack[:0]
	p.maskStack = p.maskStack[:0]
	if cap(p.opacityStack) == 0 {
		p.opacityStack = make([]float32, 1, 8)
	} else {
		p.opacityStack = p.opacityStack[:1]
	}
	p.opacityStack[0] = 1.0
}
