package dock

// Windowing is the native window capability. Backends implement it on top of
// an OS windowing library; without one, viewports are virtual rectangles.
type Windowing interface {
	// CreateWindow opens a native window at a screen position.
	// Undecorated windows have no title bar or border.
	CreateWindow(pos, size Vec2, decorated bool) (NativeWindow, error)
}

// NativeWindow is one OS window backing a viewport.
type NativeWindow interface {
	Pos() Vec2
	SetPos(pos Vec2)
	Size() Vec2
	SetSize(size Vec2)
	Destroy()

	// SetFocusCallback registers fn to run when the window gains or loses
	// focus.
	SetFocusCallback(fn func(focused bool))
}

// Viewport is one native OS window, or the main application window, hosting
// a layout tree of dockspaces. Its DrawList is rebuilt by every EndFrame.
type Viewport struct {
	// Pos is the screen position of the top-left corner.
	Pos  Vec2
	Size Vec2

	Root *RootTile

	// Main marks the primary application window. It is never destroyed.
	Main      bool
	Decorated bool

	id         int
	native     NativeWindow
	dockspaces []*Dockspace
	drawList   *DrawList
}

func newViewport(id int, pos, size Vec2, decorated bool) *Viewport {
	vp := &Viewport{
		Pos:       pos,
		Size:      size,
		Root:      &RootTile{},
		Decorated: decorated,
		id:        id,
		drawList:  AcquireDrawList(),
	}
	vp.Root.Size = size
	return vp
}

// ID returns a number unique among the context's viewports.
func (vp *Viewport) ID() int { return vp.id }

// Native returns the backing OS window, or nil for a virtual viewport.
func (vp *Viewport) Native() NativeWindow { return vp.native }

// DrawList returns the geometry composed by the last EndFrame.
func (vp *Viewport) DrawList() *DrawList { return vp.drawList }

// Dockspaces returns the dockspaces placed in the viewport.
func (vp *Viewport) Dockspaces() []*Dockspace {
	out := make([]*Dockspace, len(vp.dockspaces))
	copy(out, vp.dockspaces)
	return out
}

// ScreenRect returns the viewport in screen space.
func (vp *Viewport) ScreenRect() Rect { return RectFrom(vp.Pos, vp.Size) }

// SetPos moves the viewport and its native window.
func (vp *Viewport) SetPos(pos Vec2) {
	vp.Pos = pos
	if vp.native != nil {
		vp.native.SetPos(pos)
	}
}

// SetSize resizes the viewport and its native window, then re-solves the
// layout.
func (vp *Viewport) SetSize(size Vec2) {
	vp.Size = size
	if vp.native != nil {
		vp.native.SetSize(size)
	}
	vp.resize(size)
}

// resize re-solves the layout for a new size without touching the native
// window.
func (vp *Viewport) resize(size Vec2) {
	vp.Size = size
	vp.Root.Size = size
	RecalculateSublayoutSize(vp.Root)
}

// syncNative pulls position and size from the native window.
func (vp *Viewport) syncNative() {
	if vp.native == nil {
		return
	}
	vp.Pos = vp.native.Pos()
	if size := vp.native.Size(); size != vp.Size {
		vp.resize(size)
	}
}

// attach records ds as placed in vp.
func (vp *Viewport) attach(ds *Dockspace) {
	ds.viewport = vp
	for _, d := range vp.dockspaces {
		if d == ds {
			return
		}
	}
	vp.dockspaces = append(vp.dockspaces, ds)
}

// detach forgets ds.
func (vp *Viewport) detach(ds *Dockspace) {
	for i, d := range vp.dockspaces {
		if d == ds {
			vp.dockspaces = append(vp.dockspaces[:i], vp.dockspaces[i+1:]...)
			break
		}
	}
	ds.viewport = nil
}

// dockspaceAt returns the dockspace containing a screen-space point,
// skipping exclude.
func (vp *Viewport) dockspaceAt(p Vec2, exclude *Dockspace) *Dockspace {
	for _, ds := range vp.dockspaces {
		if ds != exclude && ds.ScreenRect().Contains(p) {
			return ds
		}
	}
	return nil
}
