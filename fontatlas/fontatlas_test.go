package fontatlas

import (
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

func TestDefaultAtlas(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	defer a.Close()

	if a.LineHeight() <= 0 {
		t.Errorf("Expected positive line height, got %v", a.LineHeight())
	}
	b := a.Image().Bounds()
	if b.Dx() < minAtlas || b.Dx() != b.Dy() {
		t.Errorf("Expected square atlas of at least %d, got %v", minAtlas, b)
	}

	covered := false
	for _, px := range a.Image().Pix {
		if px != 0 {
			covered = true
			break
		}
	}
	if !covered {
		t.Error("Expected rasterized glyphs in the atlas")
	}
}

func TestMeasureTextGrowsWithText(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	defer a.Close()

	short := a.MeasureText("Ok")
	long := a.MeasureText("Ok Cancel")
	if long.X <= short.X {
		t.Errorf("Expected %q wider than %q, got %v <= %v", "Ok Cancel", "Ok", long.X, short.X)
	}
	if short.Y != a.LineHeight() {
		t.Errorf("Expected height %v, got %v", a.LineHeight(), short.Y)
	}
	if got := a.MeasureText(""); got.X != 0 {
		t.Errorf("Expected empty text width 0, got %v", got.X)
	}
}

func TestGlyphQuadsSkipSpaces(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	defer a.Close()

	quads := a.GlyphQuads("a b", 10, 20)
	if len(quads) != 2 {
		t.Fatalf("Expected 2 quads (space has no bitmap), got %d", len(quads))
	}
	if quads[0].X0 < 10 || quads[0].Y0 < 20 {
		t.Errorf("Expected first quad at or after origin, got (%v, %v)", quads[0].X0, quads[0].Y0)
	}
	if quads[1].X0 <= quads[0].X0 {
		t.Errorf("Expected second glyph to the right of the first")
	}
	for i, q := range quads {
		if q.U1 <= q.U0 || q.V1 <= q.V0 {
			t.Errorf("quad %d: Expected non-empty UV rect, got %+v", i, q)
		}
	}
}

func TestUnknownRuneFallsBack(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	defer a.Close()

	if got, want := a.MeasureText("☃"), a.MeasureText("?"); got != want {
		t.Errorf("Expected fallback width %v, got %v", want, got)
	}
}

func TestMonospaceFace(t *testing.T) {
	a, err := New(gomono.TTF, &opentype.FaceOptions{Size: 12, DPI: 72})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer a.Close()

	if a.MeasureText("iii").X != a.MeasureText("WWW").X {
		t.Error("Expected equal widths for a monospace face")
	}

	a.SetTextureID(7)
	if a.TextureID() != 7 {
		t.Errorf("Expected texture 7, got %d", a.TextureID())
	}
}

func TestNewRejectsGarbage(t *testing.T) {
	if _, err := New([]byte("not a font"), &opentype.FaceOptions{Size: 12, DPI: 72}); err == nil {
		t.Error("Expected error for invalid font data")
	}
}
