package dock

// Font is the text-metrics capability. The dock package does not rasterize
// text itself; applications inject a Font (see package fontatlas) and the
// widgets use it to size buttons and emit label glyphs.
//
// Without a Font, widgets fall back to Style.CharWidth/CharHeight for sizing
// and emit no glyphs.
type Font interface {
	// TextureID returns the GPU texture holding the glyph atlas.
	// Glyph quads are drawn with this texture bound.
	TextureID() uint32

	// MeasureText returns the pixel extent of text in layout units.
	MeasureText(text string) Vec2

	// LineHeight returns the distance between two baselines.
	LineHeight() float32

	// GlyphQuads returns one quad per visible glyph with the text's
	// top-left corner at (x, y). The slice may be reused by the next call.
	GlyphQuads(text string, x, y float32) []GlyphQuad
}

// measureText returns the size of text with f, or the monospace fallback
// from style when f is nil.
func measureText(f Font, style *Style, text string) Vec2 {
	if f != nil {
		size := f.MeasureText(text)
		if lh := f.LineHeight(); size.Y < lh {
			size.Y = lh
		}
		return size
	}
	n := float32(0)
	for range text {
		n++
	}
	return Vec2{X: n * style.CharWidth, Y: style.CharHeight}
}
