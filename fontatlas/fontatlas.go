// Package fontatlas rasterizes an OpenType face into a single-channel glyph
// atlas and implements dock.Font on top of it.
package fontatlas

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/dock"
)

const (
	firstRune = rune(32)
	lastRune  = rune(126)
	fallback  = '?'

	padding    = 2
	minAtlas   = 256
	maxAtlas   = 4096
	defaultPts = 14
)

type glyph struct {
	advance  float32
	bearingX float32 // left bearing
	bearingY float32 // baseline to glyph top
	w, h     int
	u0, v0   float32
	u1, v1   float32
}

// Atlas is a packed glyph atlas for the printable ASCII range.
// Upload Image to the GPU, then report the texture with SetTextureID.
type Atlas struct {
	face       font.Face
	glyphs     map[rune]glyph
	img        *image.Alpha
	ascent     float32
	lineHeight float32
	textureID  uint32

	quads []dock.GlyphQuad
}

var _ dock.Font = (*Atlas)(nil)

// Default builds an atlas from the Go Regular face at 14pt, 72 DPI.
func Default() (*Atlas, error) {
	return New(goregular.TTF, &opentype.FaceOptions{
		Size:    defaultPts,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// New parses ttf and rasterizes it with opts.
func New(ttf []byte, opts *opentype.FaceOptions) (*Atlas, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, opts)
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	a := &Atlas{
		face:       face,
		glyphs:     make(map[rune]glyph, lastRune-firstRune+1),
		ascent:     float32(m.Ascent.Round()),
		lineHeight: float32(m.Height.Round()),
		quads:      make([]dock.GlyphQuad, 0, 64),
	}
	if err := a.pack(); err != nil {
		return nil, err
	}
	return a, nil
}

type measured struct {
	r      rune
	w, h   int
	adv    float32
	bx, by float32
}

// pack measures every rune, shelf-packs the bitmaps into the smallest
// power-of-two square that fits and draws them.
func (a *Atlas) pack() error {
	var ms []measured
	for r := firstRune; r <= lastRune; r++ {
		b, adv, ok := a.face.GlyphBounds(r)
		if !ok {
			continue
		}
		ms = append(ms, measured{
			r:   r,
			w:   (b.Max.X - b.Min.X).Ceil(),
			h:   (b.Max.Y - b.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(b.Min.X.Floor()),
			by:  float32(-b.Min.Y.Floor()),
		})
	}

	size := minAtlas
	var pos map[rune]image.Point
	for {
		var fits bool
		pos, fits = shelfPack(ms, size)
		if fits {
			break
		}
		size *= 2
		if size > maxAtlas {
			return fmt.Errorf("font atlas too large (>%d)", maxAtlas)
		}
	}

	a.img = image.NewAlpha(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: a.img, Src: image.Opaque, Face: a.face}

	for _, g := range ms {
		gl := glyph{advance: g.adv, bearingX: g.bx, bearingY: g.by, w: g.w, h: g.h}
		if p, ok := pos[g.r]; ok {
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			gl.u0 = float32(p.X) / float32(size)
			gl.v0 = float32(p.Y) / float32(size)
			gl.u1 = float32(p.X+g.w) / float32(size)
			gl.v1 = float32(p.Y+g.h) / float32(size)
		}
		a.glyphs[g.r] = gl
	}
	return nil
}

// shelfPack places glyph bitmaps row by row in a size x size square.
func shelfPack(ms []measured, size int) (map[rune]image.Point, bool) {
	pos := make(map[rune]image.Point, len(ms))
	x, y, rowH := padding, padding, 0
	for _, g := range ms {
		if g.w == 0 || g.h == 0 {
			continue
		}
		if x+g.w+padding > size {
			x = padding
			y += rowH + padding
			rowH = 0
		}
		if x+g.w+padding > size || y+g.h+padding > size {
			return nil, false
		}
		pos[g.r] = image.Pt(x, y)
		x += g.w + padding
		rowH = max(rowH, g.h)
	}
	return pos, true
}

// Image returns the atlas bitmap (alpha coverage).
func (a *Atlas) Image() *image.Alpha { return a.img }

// SetTextureID records the GPU texture holding Image.
func (a *Atlas) SetTextureID(id uint32) { a.textureID = id }

// TextureID returns the GPU texture holding the atlas.
func (a *Atlas) TextureID() uint32 { return a.textureID }

// LineHeight returns the face's line height in pixels.
func (a *Atlas) LineHeight() float32 { return a.lineHeight }

// lookup returns the glyph for r, or the fallback glyph.
func (a *Atlas) lookup(r rune) (rune, glyph) {
	if g, ok := a.glyphs[r]; ok {
		return r, g
	}
	return fallback, a.glyphs[fallback]
}

// MeasureText returns the advance width of text and the line height.
func (a *Atlas) MeasureText(text string) dock.Vec2 {
	var w float32
	prev := rune(-1)
	for _, r := range text {
		r, g := a.lookup(r)
		if prev >= 0 {
			w += float32(a.face.Kern(prev, r).Round())
		}
		w += g.advance
		prev = r
	}
	return dock.Vec2{X: w, Y: a.lineHeight}
}

// GlyphQuads lays text out on one line with its top-left corner at (x, y).
// The returned slice is reused by the next call.
func (a *Atlas) GlyphQuads(text string, x, y float32) []dock.GlyphQuad {
	a.quads = a.quads[:0]
	baseline := y + a.ascent
	pen := x
	prev := rune(-1)
	for _, r := range text {
		r, g := a.lookup(r)
		if prev >= 0 {
			pen += float32(a.face.Kern(prev, r).Round())
		}
		if g.w > 0 && g.h > 0 {
			x0 := pen + g.bearingX
			y0 := baseline - g.bearingY
			a.quads = append(a.quads, dock.GlyphQuad{
				X0: x0, Y0: y0,
				X1: x0 + float32(g.w), Y1: y0 + float32(g.h),
				U0: g.u0, V0: g.v0,
				U1: g.u1, V1: g.v1,
			})
		}
		pen += g.advance
		prev = r
	}
	return a.quads
}

// Close releases the font face.
func (a *Atlas) Close() error {
	return a.face.Close()
}
