package raster

import (
	"errors"
	"sync/atomic"

	"github.com/gogpu/vrast/internal/parallel"
	"github.com/gogpu/vrast/scene"
)

// ErrFrameInProgress is returned by CPUBackend.Render when a second
// frame is submitted while one is already in flight; per the
// concurrency model the second attempt is dropped, not queued.
var ErrFrameInProgress = errors.New("raster: frame already in progress")

// CPUBackend rasterizes a PackedScene with a work-stealing thread pool,
// one task per output tile, producing pixel output identical to a GPU
// compute-kernel backend. Each task rasterizes into a pooled scratch
// Tile buffer, then copies the result into the frame's pixel buffer, so
// tile-local work never contends over the output slice.
type CPUBackend struct {
	pool      *parallel.WorkerPool
	tiles     *parallel.TilePool
	rendering atomic.Bool
}

// NewCPUBackend starts a worker pool with the given worker count (0 or
// negative uses GOMAXPROCS).
func NewCPUBackend(workers int) *CPUBackend {
	return &CPUBackend{
		pool:  parallel.NewWorkerPool(workers),
		tiles: parallel.NewTilePool(),
	}
}

// Close shuts down the backing worker pool.
func (b *CPUBackend) Close() {
	if b.pool != nil {
		b.pool.Close()
	}
}

// Render rasterizes ps into straight RGBA8 pixels, row-major with
// rowPitch == width*4 (no extra padding; callers that need 256-byte
// readback alignment pad when copying out).
func (b *CPUBackend) Render(ps *scene.PackedScene) (pixels []byte, rowPitch, width, height int, err error) {
	if !b.rendering.CompareAndSwap(false, true) {
		return nil, 0, 0, 0, ErrFrameInProgress
	}
	defer b.rendering.Store(false)

	w := int(ps.Uniforms.CanvasW)
	h := int(ps.Uniforms.CanvasH)
	ss := int(ps.Uniforms.Supersample)
	if ss < 1 {
		ss = 1
	}
	rowPitch = w * 4
	pixels = make([]byte, rowPitch*h)

	grid := parallel.NewTileGrid(w, h)
	defer grid.Close()

	outTiles := make([]*parallel.Tile, 0, grid.TileCount())
	grid.ForEach(func(t *parallel.Tile) { outTiles = append(outTiles, t) })

	tasks := make([]func(), len(outTiles))
	for i, t := range outTiles {
		t := t
		tasks[i] = func() {
			scratch := b.tiles.Get(t.Width, t.Height)
			defer b.tiles.Put(scratch)

			baseX, baseY := t.X*parallel.TileWidth, t.Y*parallel.TileHeight
			for py := 0; py < t.Height; py++ {
				for px := 0; px < t.Width; px++ {
					r, g, bl, a := RenderPixel(ps, baseX+px, baseY+py, ss)
					o := scratch.PixelOffset(px, py)
					scratch.Data[o+0] = toByte(r)
					scratch.Data[o+1] = toByte(g)
					scratch.Data[o+2] = toByte(bl)
					scratch.Data[o+3] = toByte(a)
				}
			}

			for py := 0; py < t.Height; py++ {
				srcOff := py * scratch.Stride()
				dstOff := (baseY+py)*rowPitch + baseX*4
				copy(pixels[dstOff:dstOff+t.Width*4], scratch.Data[srcOff:srcOff+t.Width*4])
			}
		}
	}
	b.pool.ExecuteAll(tasks)

	return pixels, rowPitch, w, h, nil
}

func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
