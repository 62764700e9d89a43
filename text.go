package vrast

import "github.com/gogpu/vrast/glyph"

// TextOptions configures a layoutText call.
type TextOptions struct {
	LetterSpacing  float64
	LineSpacing    float64
	BaselineOffset float64
}

// DefaultTextOptions returns the zero-spacing, single-line-height options.
func DefaultTextOptions() TextOptions {
	return TextOptions{LetterSpacing: 0, LineSpacing: 1.0, BaselineOffset: 0}
}

// LayoutText implements the `layoutText` operation: it walks s codepoint
// by codepoint, advancing a pen starting at (originX, originY+baselineOffset),
// and appends every glyph's contours — translated to the pen position and
// scaled by size — as closed subpaths on a freshly built Path. '\n' resets
// the pen's x to originX and advances y by size*lineSpacing. Glyphs the
// provider doesn't have are substituted with '?'.
func LayoutText(provider glyph.Provider, s string, originX, originY, size float64, opts TextOptions) *Path {
	if opts.LineSpacing == 0 {
		opts.LineSpacing = 1.0
	}

	path := NewPath()
	penX, penY := originX, originY+opts.BaselineOffset

	for _, r := range s {
		if r == '\n' {
			penX = originX
			penY += size * opts.LineSpacing
			continue
		}

		outline, ok := provider.Glyph(r)
		if !ok {
			outline, ok = provider.Glyph('?')
			if !ok {
				penX += size + opts.LetterSpacing
				continue
			}
		}

		for _, contour := range outline.Contours {
			if len(contour) == 0 {
				continue
			}
			path.MoveTo(penX+contour[0].X*size, penY+contour[0].Y*size)
			for _, pt := range contour[1:] {
				path.LineTo(penX+pt.X*size, penY+pt.Y*size)
			}
			path.Close()
		}

		penX += outline.Advance*size + opts.LetterSpacing
	}

	return path
}
