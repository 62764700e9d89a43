package backend

import (
	"runtime"

	"github.com/gogpu/vrast/raster"
	"github.com/gogpu/vrast/scene"
)

// Backend name constants.
const (
	// BackendCPU is the name of the CPU-based, always-available backend.
	BackendCPU = "cpu"
	// BackendGPU is the name of the GPU compute-kernel backend.
	BackendGPU = "gpu"
)

// CPUBackend rasterizes packed scenes on the CPU with a work-stealing
// thread pool, producing pixel output identical to a GPU backend.
type CPUBackend struct {
	initialized bool
	rasterizer  *raster.CPUBackend
}

// init registers the CPU backend on package import.
func init() {
	Register(BackendCPU, func() RenderBackend {
		return &CPUBackend{}
	})
}

// NewCPUBackend creates a new CPU rendering backend.
func NewCPUBackend() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend identifier.
func (b *CPUBackend) Name() string {
	return BackendCPU
}

// Init initializes the backend's worker pool.
func (b *CPUBackend) Init() error {
	if b.rasterizer == nil {
		b.rasterizer = raster.NewCPUBackend(runtime.GOMAXPROCS(0))
	}
	b.initialized = true
	return nil
}

// Close releases the worker pool.
func (b *CPUBackend) Close() {
	if b.rasterizer != nil {
		b.rasterizer.Close()
		b.rasterizer = nil
	}
	b.initialized = false
}

// Render rasterizes ps using the underlying worker-pool kernel.
func (b *CPUBackend) Render(ps *scene.PackedScene) ([]byte, int, int, int, error) {
	if !b.initialized {
		return nil, 0, 0, 0, ErrNotInitialized
	}
	return b.rasterizer.Render(ps)
}
