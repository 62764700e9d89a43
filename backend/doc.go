// Package backend provides a pluggable rasterizer backend abstraction.
//
// The backend package lets the frame driver choose between a GPU
// compute-kernel backend and a portable CPU fallback without caring
// which one actually rendered a frame. Only the CPU backend is
// available today; a GPU backend can register under the "gpu" name
// and take priority automatically.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The CPU backend is automatically registered on import:
//
//	import _ "github.com/gogpu/vrast/backend"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get("cpu")
//
// # Rendering a packed scene
//
//	b := backend.Default()
//	if err := b.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	pixels, rowPitch, w, h, err := b.Render(packedScene)
//
// # Available Backends
//
// - "cpu": work-stealing thread-pool rasterizer (always available)
// - "gpu": GPU compute-kernel backend (not yet implemented)
package backend
