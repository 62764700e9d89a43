// Package vrast compiles a 2D vector scene (paths, strokes, clips,
// opacity masks, text) into a compact binary representation, then
// rasterizes it with a tile-binned kernel under SSAA antialiasing and
// premultiplied "over" compositing.
//
// # Overview
//
// Authoring happens through Context: paths are built with a Path or
// PathBuilder, filled or stroked with FillPath/StrokePath, clipped and
// masked with the push/pop stack operations, and composed with text
// and SVG path data. Context.Render flattens and packs the accumulated
// scene (scene.Packer), bins shapes into tiles (tile.Bin), and
// rasterizes with a pluggable backend (backend.RenderBackend) to
// straight RGBA8 pixels.
//
// # Quick Start
//
//	import "github.com/gogpu/vrast"
//
//	ctx := vrast.NewContext(512, 512, vrast.DefaultConfig(), nil)
//
//	p := vrast.NewPath()
//	p.Rect(100, 100, 200, 200)
//	ctx.FillPath(p, vrast.RGB(1, 0, 0))
//
//	pixels, rowPitch, w, h, err := ctx.Render()
//
// # Pipeline
//
// Each frame is independent; no authoring state persists across
// frames:
//
//	Path -> Flatten -> (stroke.Expand for strokes) -> scene.Packer.Build
//	     -> tile.Bin -> backend.RenderBackend.Render -> RGBA8 pixels
//
// # Backends
//
// backend.Default selects a GPU compute-kernel backend when one is
// registered, falling back to the portable CPU backend (backend.cpu),
// which rasterizes with a work-stealing thread pool and produces pixel
// output identical to the GPU kernel.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Angles in radians, 0 along +X, increasing toward +Y
package vrast
