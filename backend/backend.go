package backend

import (
	"errors"

	"github.com/gogpu/vrast/scene"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// RenderBackend is the capability trait the frame driver selects
// against: render a packed scene and get back pixels, row pitch, and
// dimensions. GPU backends are tried first; on BackendUnavailable the
// driver falls back to the CPU backend.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "cpu", "wgpu").
	Name() string

	// Init initializes the backend.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// Render rasterizes ps and returns straight RGBA8 pixels, the row
	// pitch in bytes, and the image dimensions. A second call while a
	// frame is in flight on the same backend MUST be dropped, not
	// queued.
	Render(ps *scene.PackedScene) (pixels []byte, rowPitch, width, height int, err error)
}
