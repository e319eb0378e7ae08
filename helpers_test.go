package dock

import (
	"errors"
	"testing"
)

// fakeNativeWindow records what the engine does to a native window.
type fakeNativeWindow struct {
	pos, size Vec2
	decorated bool
	destroyed bool
	focus     func(bool)
}

func (w *fakeNativeWindow) Pos() Vec2                       { return w.pos }
func (w *fakeNativeWindow) SetPos(pos Vec2)                 { w.pos = pos }
func (w *fakeNativeWindow) Size() Vec2                      { return w.size }
func (w *fakeNativeWindow) SetSize(size Vec2)               { w.size = size }
func (w *fakeNativeWindow) Destroy()                        { w.destroyed = true }
func (w *fakeNativeWindow) SetFocusCallback(fn func(bool)) { w.focus = fn }

// fakeWindowing creates fakeNativeWindows, or fails when fail is set.
type fakeWindowing struct {
	created []*fakeNativeWindow
	fail    bool
}

func (f *fakeWindowing) CreateWindow(pos, size Vec2, decorated bool) (NativeWindow, error) {
	if f.fail {
		return nil, errors.New("no display")
	}
	w := &fakeNativeWindow{pos: pos, size: size, decorated: decorated}
	f.created = append(f.created, w)
	return w, nil
}

// fakeFont is a 6x10 monospace font emitting one quad per rune.
type fakeFont struct {
	quads []GlyphQuad
}

func (f *fakeFont) TextureID() uint32 { return 9 }

func (f *fakeFont) MeasureText(text string) Vec2 {
	return Vec2{X: float32(len([]rune(text))) * 6, Y: 10}
}

func (f *fakeFont) LineHeight() float32 { return 10 }

func (f *fakeFont) GlyphQuads(text string, x, y float32) []GlyphQuad {
	f.quads = f.quads[:0]
	for range text {
		f.quads = append(f.quads, GlyphQuad{X0: x, Y0: y, X1: x + 6, Y1: y + 10, U1: 1, V1: 1})
		x += 6
	}
	return f.quads
}

// input builds an input snapshot.
func input(x, y float32, down bool) InputState {
	var in InputState
	in.SetMousePos(x, y)
	in.SetMouseButton(MouseButtonLeft, down)
	return in
}

// step runs one full frame that opens each named window without widgets.
func step(ctx *Context, x, y float32, down bool, names ...string) {
	ctx.BeginFrame(input(x, y, down))
	for _, name := range names {
		ctx.BeginWindow(name)
		ctx.EndWindow()
	}
	ctx.EndFrame()
}

// addDockspace registers a window and a one-tab dockspace for it without
// placing the dockspace anywhere.
func addDockspace(ctx *Context, name string) *Dockspace {
	w := newWindow(name)
	ctx.windows[w.ID] = w
	ds := ctx.createDockspace()
	ds.AddWindow(w.ID, 0)
	return ds
}

// mustDockspace returns the dockspace of a named window.
func mustDockspace(t *testing.T, ctx *Context, name string) *Dockspace {
	t.Helper()
	w, ok := ctx.Window(name)
	if !ok {
		t.Fatalf("window %q does not exist", name)
	}
	if w.Dockspace() == nil {
		t.Fatalf("window %q is not docked", name)
	}
	return w.Dockspace()
}

// expectRect fails when ds is not at pos with size.
func expectRect(t *testing.T, name string, ds *Dockspace, want Rect) {
	t.Helper()
	if got := ds.Rect(); got != want {
		t.Errorf("%s: Expected rect %+v, got %+v", name, want, got)
	}
}

// expectPanic fails unless fn panics.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: Expected panic", name)
		}
	}()
	fn()
}

// checkTree walks a viewport's tree and fails on a broken invariant:
// a split with fewer than two children, a wrong parent link, or a dockspace
// that is unreachable or empty.
func checkTree(t *testing.T, vp *Viewport) {
	t.Helper()
	reached := make(map[*Dockspace]bool)

	var walk func(tile, parent Tile)
	walk = func(tile, parent Tile) {
		if tile.base().parent != parent {
			t.Errorf("viewport %d: %T has wrong parent link", vp.id, tile)
		}
		switch tile := tile.(type) {
		case *SplitTile:
			if len(tile.Children) < 2 {
				t.Errorf("viewport %d: split with %d children", vp.id, len(tile.Children))
			}
			for _, c := range tile.Children {
				walk(c, tile)
			}
		case *Dockspace:
			reached[tile] = true
			if tile.TabCount() == 0 {
				t.Errorf("viewport %d: empty dockspace %d", vp.id, tile.id)
			}
			if tile.viewport != vp {
				t.Errorf("viewport %d: dockspace %d owned by another viewport", vp.id, tile.id)
			}
		}
	}
	if vp.Root.Child != nil {
		walk(vp.Root.Child, vp.Root)
	}

	for _, ds := range vp.dockspaces {
		if !reached[ds] {
			t.Errorf("viewport %d: dockspace %d not reachable from root", vp.id, ds.id)
		}
	}
	if len(reached) != len(vp.dockspaces) {
		t.Errorf("viewport %d: %d reachable dockspaces, %d owned", vp.id, len(reached), len(vp.dockspaces))
	}
}
