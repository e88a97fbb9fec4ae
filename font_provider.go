package datagrid

// FontProvider supplies the active font. Applications inject one with
// WithFontProvider; without it the grid uses the built-in bitmap font.
type FontProvider interface {
	// ActiveFont returns the font used for rendering, or nil.
	ActiveFont() Font
}

// Font renders and measures text.
type Font interface {
	// TextureID returns the texture holding the glyph atlas.
	TextureID() uint32

	// MeasureText returns the pixel size of text at scale.
	MeasureText(text string, scale float32) Vec2

	// GetGlyphQuads lays out text at (x, y). The returned slice is only
	// valid until the next call.
	GetGlyphQuads(text string, x, y, scale float32) []GlyphQuad

	// LineHeight returns the line height at scale.
	LineHeight(scale float32) float32
}
