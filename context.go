package vrast

import (
	"sync/atomic"

	"github.com/gogpu/vrast/backend"
	"github.com/gogpu/vrast/glyph"
	"github.com/gogpu/vrast/internal/stroke"
	"github.com/gogpu/vrast/scene"
	"github.com/gogpu/vrast/tile"
)

// FillRule selects how a polygon's interior is determined. It is an
// alias for scene.FillRule so callers never need to import scene
// directly for authoring calls.
type FillRule = scene.FillRule

const (
	FillRuleEvenOdd = scene.FillRuleEvenOdd
	FillRuleNonZero = scene.FillRuleNonZero
)

// Config holds the per-frame rasterization parameters a Context builds
// against: flatten tolerance, tile size, and supersampling factor.
type Config struct {
	// Tolerance is the maximum flattening deviation in device pixels.
	Tolerance float64
	// TileSize is the tile binner's tile edge length in pixels, 16-128.
	TileSize uint32
	// Supersample is the per-axis SSAA factor, one of {1,2,4}.
	Supersample uint32
}

// DefaultConfig returns the configuration defaults: 0.35px flatten
// tolerance, 64px tiles, 2x supersampling.
func DefaultConfig() Config {
	return Config{Tolerance: DefaultTolerance, TileSize: 64, Supersample: 2}
}

// Context is the authoring surface for one frame: it exposes the
// scripting operations (path, fillPath, strokePath, pushClip/popClip,
// pushOpacity/popOpacity, pushOpacityMask/popOpacityMask, fillText/
// strokeText, svgPath/fillSvg/strokeSvg, star) and drives them through
// flattening, stroke expansion, scene packing, tile binning, and
// rasterization. No state persists across frames beyond the glyph
// provider's own typeface cache; call Reset (or build a new Context) to
// start the next frame.
type Context struct {
	width, height int
	config        Config

	packer *scene.Packer
	font   glyph.Provider

	be        backend.RenderBackend
	rendering atomic.Bool
}

// NewContext creates an authoring context of the given pixel dimensions
// using cfg for flattening/tiling/supersampling. A nil backend selects
// backend.Default().
func NewContext(width, height int, cfg Config, rb backend.RenderBackend) *Context {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultTolerance
	}
	if cfg.TileSize == 0 {
		cfg.TileSize = 64
	}
	if cfg.Supersample == 0 {
		cfg.Supersample = 2
	}
	if rb == nil {
		rb = backend.Default()
	}
	return &Context{
		width:  width,
		height: height,
		config: cfg,
		packer: scene.NewPacker(),
		font:   glyph.NewBuiltinProvider(),
		be:     rb,
	}
}

// SetFont installs the glyph provider used by FillText/StrokeText.
func (c *Context) SetFont(p glyph.Provider) {
	c.font = p
}

// Reset discards all authoring state accumulated so far, starting a
// fresh scene for the next frame.
func (c *Context) Reset() {
	c.packer = scene.AcquirePacker()
}

// BuildPath is the `path()` scripting surface operation: it returns a
// new, empty path builder.
func (c *Context) BuildPath() *PathBuilder {
	return BuildPath()
}

func contoursToPoints(contours []Contour) [][]Point {
	out := make([][]Point, 0, len(contours))
	for _, ct := range contours {
		if len(ct.Points) < 3 {
			continue
		}
		out = append(out, ct.Points)
	}
	return out
}

func toSceneColor(c RGBA) scene.Color {
	pm := c.Premultiply()
	return scene.Color{R: float32(pm.R), G: float32(pm.G), B: float32(pm.B), A: float32(pm.A)}
}

func toScenePoints(pts []Point) []scene.Point {
	out := make([]scene.Point, len(pts))
	for i, p := range pts {
		out[i] = scene.Point{X: float32(p.X), Y: float32(p.Y)}
	}
	return out
}

func contoursToScenePolys(contours []Contour) [][]scene.Point {
	pts := contoursToPoints(contours)
	out := make([][]scene.Point, len(pts))
	for i, p := range pts {
		out[i] = toScenePoints(p)
	}
	return out
}

func firstRule(rule []FillRule) FillRule {
	if len(rule) > 0 {
		return rule[0]
	}
	return FillRuleEvenOdd
}

func firstStroke(width float64, style []Stroke) Stroke {
	if len(style) > 0 {
		s := style[0]
		s.Width = width
		return s
	}
	return Stroke{Width: width, Cap: LineCapRound, Join: LineJoinRound, MiterLimit: 4.0}
}

// FillPath is the `fillPath(path,color,rule?)` scripting surface
// operation: it flattens path and fills it with color under rule
// (default even-odd).
func (c *Context) FillPath(p *Path, col RGBA, rule ...FillRule) {
	contours := Flatten(p, c.config.Tolerance)
	polys := contoursToScenePolys(contours)
	c.packer.Fill(polys, toSceneColor(col), firstRule(rule))
}

// expandStrokeContours flattens p and expands every contour's
// centerline into outline polygons under style.
func expandStrokeContours(p *Path, tolerance float64, style Stroke) [][]Point {
	contours := Flatten(p, tolerance)
	var polys [][]Point
	internalStyle := style.toInternal()
	for _, ct := range contours {
		pts := make([]stroke.Point, len(ct.Points))
		for i, v := range ct.Points {
			pts[i] = stroke.Point{X: v.X, Y: v.Y}
		}
		for _, poly := range stroke.Expand(pts, ct.Closed, internalStyle) {
			out := make([]Point, len(poly))
			for i, v := range poly {
				out[i] = Point{X: v.X, Y: v.Y}
			}
			polys = append(polys, out)
		}
	}
	return polys
}

// StrokePath is the `strokePath(path,width,color,style?)` scripting
// surface operation: it expands path's centerline into outline polygons
// at width and fills them with color. style defaults to
// {round,round,4.0}.
func (c *Context) StrokePath(p *Path, width float64, col RGBA, style ...Stroke) {
	st := firstStroke(width, style)
	polys := expandStrokeContours(p, c.config.Tolerance, st)
	out := make([][]scene.Point, len(polys))
	for i, poly := range polys {
		out[i] = toScenePoints(poly)
	}
	c.packer.Stroke(out, toSceneColor(col))
}

// PushClip is the `pushClip(path,rule?)` scripting surface operation.
func (c *Context) PushClip(p *Path, rule ...FillRule) {
	contours := Flatten(p, c.config.Tolerance)
	polys := contoursToScenePolys(contours)
	c.packer.PushClip(polys, firstRule(rule))
}

// PopClip is the `popClip()` scripting surface operation.
func (c *Context) PopClip() error {
	return c.packer.PopClip()
}

// PushOpacity is the `pushOpacity(a)` scripting surface operation.
func (c *Context) PushOpacity(a float64) {
	c.packer.PushOpacity(float32(a))
}

// PopOpacity is the `popOpacity()` scripting surface operation.
func (c *Context) PopOpacity() error {
	return c.packer.PopOpacity()
}

// PushOpacityMask is the `pushOpacityMask(path,alpha?,rule?)` scripting
// surface operation. alpha is required here; the packer clamps it to
// [0,1].
func (c *Context) PushOpacityMask(p *Path, alpha float64, rule ...FillRule) {
	contours := Flatten(p, c.config.Tolerance)
	polys := contoursToScenePolys(contours)
	c.packer.PushOpacityMask(polys, float32(alpha), firstRule(rule))
}

// PopOpacityMask is the `popOpacityMask()` scripting surface operation.
func (c *Context) PopOpacityMask() error {
	return c.packer.PopOpacityMask()
}

// FillText is the `fillText(font,text,x,y,size,color,options?)`
// scripting surface operation.
func (c *Context) FillText(s string, x, y, size float64, col RGBA, opts ...TextOptions) {
	o := DefaultTextOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	p := LayoutText(c.font, s, x, y, size, o)
	c.FillPath(p, col)
}

// StrokeText is the `strokeText(font,text,x,y,size,color,options?)`
// scripting surface operation.
func (c *Context) StrokeText(s string, x, y, size, width float64, col RGBA, opts ...TextOptions) {
	o := DefaultTextOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	p := LayoutText(c.font, s, x, y, size, o)
	c.StrokePath(p, width, col)
}

// FillSVG parses d and fills the resulting path. This is the `fillSvg`
// scripting surface operation.
func (c *Context) FillSVG(d string, col RGBA, rule ...FillRule) error {
	p, err := ParseSVGPath(d)
	if err != nil {
		return err
	}
	c.FillPath(p, col, rule...)
	return nil
}

// StrokeSVG parses d and strokes the resulting path. This is the
// `strokeSvg` scripting surface operation.
func (c *Context) StrokeSVG(d string, width float64, col RGBA, style ...Stroke) error {
	p, err := ParseSVGPath(d)
	if err != nil {
		return err
	}
	c.StrokePath(p, width, col, style...)
	return nil
}

// Star is the `star(cx,cy,rOut,rIn,n)` scripting surface operation: it
// returns 2n alternating outer/inner radius points.
func (c *Context) Star(cx, cy, outerRadius, innerRadius float64, n int) []Point {
	return StarPoints(cx, cy, outerRadius, innerRadius, n)
}

// Render packs the accumulated scene, bins it into tiles, and
// rasterizes it with the context's backend, returning straight RGBA8
// pixels. A second call while a frame is already in flight on this
// context is dropped rather than queued.
func (c *Context) Render() (pixels []byte, rowPitch, width, height int, err error) {
	if !c.rendering.CompareAndSwap(false, true) {
		return nil, 0, 0, 0, ErrFrameInProgress
	}
	defer c.rendering.Store(false)

	ps := c.packer.Build(uint32(c.width), uint32(c.height), c.config.TileSize, c.config.Supersample)
	tile.Bin(ps, &tile.Arena{})

	if err := c.be.Init(); err != nil {
		return nil, 0, 0, 0, err
	}
	return c.be.Render(ps)
}
