package dock

// Context owns every viewport, dockspace and window of one GUI instance.
// This is NOT context.Context - it's a dedicated GUI context type, passed
// explicitly to every call. Several contexts can coexist.
//
// A Context is not safe for concurrent use; build the whole frame on one
// goroutine.
type Context struct {
	// Hot is the window under the cursor, Active the one that last took a
	// click, Current the one between BeginWindow and EndWindow. NoWindow
	// means none.
	HotWindow     ID
	ActiveWindow  ID
	CurrentWindow ID

	// Drag is the drag-and-dock state machine's memory.
	Drag DragInfo

	style     Style
	windowing Windowing
	font      Font

	input     InputState
	prevInput InputState

	windows    map[ID]*Window
	viewports  []*Viewport  // z-order, topmost last
	dockspaces []*Dockspace // creation order
	main       *Viewport

	nextViewportID  int
	nextDockspaceID int
	floatingCount   int
}

// NewContext creates a context whose main viewport has the given size.
func NewContext(mainSize Vec2, opts ...Option) *Context {
	cfg := config{style: DefaultStyle()}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx := &Context{
		style:     cfg.style,
		windowing: cfg.windowing,
		font:      cfg.font,
		windows:   make(map[ID]*Window),
	}

	main := newViewport(ctx.allocViewportID(), cfg.mainPos, mainSize, true)
	main.Main = true
	if cfg.main != nil {
		main.native = cfg.main
		main.Pos = cfg.main.Pos()
		ctx.watchFocus(main)
	}
	ctx.main = main
	ctx.viewports = append(ctx.viewports, main)
	return ctx
}

// Style returns the context style.
func (ctx *Context) Style() Style { return ctx.style }

// Font returns the attached text-metrics capability, or nil.
func (ctx *Context) Font() Font { return ctx.font }

// Input returns this frame's input snapshot.
func (ctx *Context) Input() InputState { return ctx.input }

// MainViewport returns the primary application viewport.
func (ctx *Context) MainViewport() *Viewport { return ctx.main }

// Viewports returns all viewports in z-order, topmost last.
func (ctx *Context) Viewports() []*Viewport {
	out := make([]*Viewport, len(ctx.viewports))
	copy(out, ctx.viewports)
	return out
}

// Dockspaces returns all dockspaces in creation order.
func (ctx *Context) Dockspaces() []*Dockspace {
	out := make([]*Dockspace, len(ctx.dockspaces))
	copy(out, ctx.dockspaces)
	return out
}

// Window looks up a window by name.
func (ctx *Context) Window(name string) (*Window, bool) {
	w, ok := ctx.windows[HashString(name)]
	return w, ok
}

// mustWindow returns a window that the caller asserts exists.
func (ctx *Context) mustWindow(id ID) *Window {
	w, ok := ctx.windows[id]
	assertf(ok, "unknown window id %d", id)
	return w
}

// currentWindow returns the open window for widget calls.
func (ctx *Context) currentWindow() *Window {
	assertf(ctx.CurrentWindow != NoWindow, "widget called with no window open")
	return ctx.mustWindow(ctx.CurrentWindow)
}

func (ctx *Context) allocViewportID() int {
	id := ctx.nextViewportID
	ctx.nextViewportID++
	return id
}

// createViewport adds a viewport on top of the z-order and backs it with a
// native window when windowing is available. A native failure leaves the
// viewport virtual.
func (ctx *Context) createViewport(pos, size Vec2, decorated bool) *Viewport {
	vp := newViewport(ctx.allocViewportID(), pos, size, decorated)
	if ctx.windowing != nil {
		nw, err := ctx.windowing.CreateWindow(pos, size, decorated)
		if err != nil {
			dockLogger.Error("create native window", "viewport", vp.id, "err", err)
		} else {
			vp.native = nw
			ctx.watchFocus(vp)
		}
	}
	ctx.viewports = append(ctx.viewports, vp)

	if verbose() {
		dockLogger.Debug("create viewport", "viewport", vp.id, "pos", pos, "size", size, "decorated", decorated)
	}
	return vp
}

// destroyViewport closes a floating viewport. It must be empty.
func (ctx *Context) destroyViewport(vp *Viewport) {
	assertf(!vp.Main, "destroyViewport: main viewport")
	assertf(len(vp.dockspaces) == 0, "destroyViewport: viewport %d still holds %d dockspaces", vp.id, len(vp.dockspaces))

	for i, v := range ctx.viewports {
		if v == vp {
			ctx.viewports = append(ctx.viewports[:i], ctx.viewports[i+1:]...)
			break
		}
	}
	if vp.native != nil {
		vp.native.Destroy()
		vp.native = nil
	}
	ReleaseDrawList(vp.drawList)
	vp.drawList = nil

	if verbose() {
		dockLogger.Debug("destroy viewport", "viewport", vp.id)
	}
}

// watchFocus raises vp to the top of the z-order whenever its native window
// gains focus.
func (ctx *Context) watchFocus(vp *Viewport) {
	vp.native.SetFocusCallback(func(focused bool) {
		if focused {
			ctx.raiseViewport(vp)
		}
	})
}

// raiseViewport moves vp to the end of the z-order.
func (ctx *Context) raiseViewport(vp *Viewport) {
	n := len(ctx.viewports)
	for i, v := range ctx.viewports {
		if v == vp {
			if i == n-1 {
				return
			}
			copy(ctx.viewports[i:], ctx.viewports[i+1:])
			ctx.viewports[n-1] = vp
			return
		}
	}
}

// createDockspace registers an empty, unplaced dockspace. The caller gives
// it a tab and a place in the same call chain.
func (ctx *Context) createDockspace() *Dockspace {
	ds := &Dockspace{
		TabBarHeight: ctx.style.TabBarHeight,
		id:           ctx.nextDockspaceID,
		ctx:          ctx,
	}
	ctx.nextDockspaceID++
	ctx.dockspaces = append(ctx.dockspaces, ds)

	if verbose() {
		dockLogger.Debug("create dockspace", "dockspace", ds.id)
	}
	return ds
}

// destroyDockspace removes ds from its tree and the registry. A floating
// viewport left without dockspaces is destroyed too.
func (ctx *Context) destroyDockspace(ds *Dockspace) {
	vp := ds.viewport
	if ds.parent != nil {
		Unparent(ds)
	} else if vp != nil {
		vp.detach(ds)
	}
	for i, d := range ctx.dockspaces {
		if d == ds {
			ctx.dockspaces = append(ctx.dockspaces[:i], ctx.dockspaces[i+1:]...)
			break
		}
	}
	if ctx.Drag.HotDockspace == ds {
		ctx.Drag.HotDockspace = nil
	}
	if ctx.Drag.AlienDockspace == ds {
		ctx.Drag.AlienDockspace = nil
	}

	if verbose() {
		dockLogger.Debug("destroy dockspace", "dockspace", ds.id)
	}

	if vp != nil && !vp.Main && len(vp.dockspaces) == 0 {
		ctx.destroyViewport(vp)
	}
}

// dockspaceAt returns the topmost dockspace containing a screen-space point,
// skipping exclude.
func (ctx *Context) dockspaceAt(p Vec2, exclude *Dockspace) *Dockspace {
	for i := len(ctx.viewports) - 1; i >= 0; i-- {
		vp := ctx.viewports[i]
		if !vp.ScreenRect().Contains(p) {
			continue
		}
		if ds := vp.dockspaceAt(p, exclude); ds != nil {
			return ds
		}
	}
	return nil
}

// BeginFrame starts a frame: it records input, syncs viewports with their
// native windows, clears per-frame window state and runs the drag-and-dock
// state machine.
func (ctx *Context) BeginFrame(in InputState) {
	assertf(ctx.CurrentWindow == NoWindow, "BeginFrame with window %d still open", ctx.CurrentWindow)

	ctx.prevInput = ctx.input
	ctx.input = in

	for _, vp := range ctx.viewports {
		vp.syncNative()
	}
	for _, w := range ctx.windows {
		w.Enabled = false
		w.resetDraw(&ctx.style)
	}

	ctx.updateDrag()
	if ctx.Drag.state == dragIdle {
		ctx.updateHover()
	}
}

// updateHover sets HotWindow from the topmost dockspace under the cursor:
// its content area maps to the visible tab, its tab bar to the tab slot.
func (ctx *Context) updateHover() {
	cursor := ctx.input.Cursor()
	ctx.HotWindow = NoWindow

	ds := ctx.dockspaceAt(cursor, nil)
	if ds == nil {
		return
	}
	if ds.ScreenContentRect().Contains(cursor) {
		ctx.HotWindow = ds.ActiveWindow
		return
	}
	if i := ds.tabAt(cursor); i >= 0 {
		ctx.HotWindow = ds.windows[i]
	}
}

// BeginWindow opens the named window for widget calls until EndWindow.
// The first call creates the window: it docks into the main viewport if
// that is empty, otherwise it floats in a viewport of its own.
//
// It returns true when the window is the visible tab of its dockspace.
func (ctx *Context) BeginWindow(name string) bool {
	assertf(ctx.CurrentWindow == NoWindow, "BeginWindow(%q) while window %d is open", name, ctx.CurrentWindow)

	id := HashString(name)
	assertf(id != NoWindow, "window name %q hashes to the reserved id", name)
	w, ok := ctx.windows[id]
	if ok {
		assertf(w.Name == name, "window names %q and %q collide", name, w.Name)
	} else {
		w = newWindow(name)
		w.resetDraw(&ctx.style)
		ctx.windows[id] = w
		if verbose() {
			dockLogger.Debug("create window", "name", name, "id", id)
		}
	}
	if w.dockspace == nil {
		ctx.placeWindow(w)
	}

	w.Enabled = true
	ctx.CurrentWindow = id
	return w.Visible()
}

// placeWindow gives an undocked window a dockspace of its own.
func (ctx *Context) placeWindow(w *Window) {
	ds := ctx.createDockspace()
	ds.AddWindow(w.ID, 0)

	if ctx.main.Root.Child == nil {
		ParentToRoot(ds, ctx.main)
		return
	}

	ctx.floatingCount++
	pos := ctx.main.Pos.Add(ctx.style.FloatingOffset.Mul(float32(ctx.floatingCount)))
	vp := ctx.createViewport(pos, ctx.style.DefaultWindowSize, true)
	ParentToRoot(ds, vp)
}

// EndWindow closes the window opened by BeginWindow.
func (ctx *Context) EndWindow() {
	assertf(ctx.CurrentWindow != NoWindow, "EndWindow without BeginWindow")
	ctx.CurrentWindow = NoWindow
}

// floatingViewport returns the current window's viewport when the window's
// dockspace is the only thing in a floating viewport.
func (ctx *Context) floatingViewport(op string) *Viewport {
	w := ctx.currentWindow()
	vp := w.dockspace.viewport
	if vp == nil || vp.Main || len(vp.dockspaces) != 1 {
		if verbose() {
			dockLogger.Debug(op+" ignored: window is docked", "window", w.Name)
		}
		return nil
	}
	return vp
}

// SetWindowSize resizes the current window's floating viewport. Docked
// windows are sized by the layout tree and ignore the call.
func (ctx *Context) SetWindowSize(size Vec2) {
	if vp := ctx.floatingViewport("set window size"); vp != nil {
		vp.SetSize(size)
	}
}

// SetWindowPos moves the current window's floating viewport. Docked windows
// ignore the call.
func (ctx *Context) SetWindowPos(pos Vec2) {
	if vp := ctx.floatingViewport("set window pos"); vp != nil {
		vp.SetPos(pos)
	}
}

// WindowDimensions returns the content size of the current window.
func (ctx *Context) WindowDimensions() Vec2 {
	return ctx.currentWindow().dockspace.ContentSize
}

// IsWindowHot reports whether the current window is under the cursor.
func (ctx *Context) IsWindowHot() bool {
	return ctx.CurrentWindow != NoWindow && ctx.CurrentWindow == ctx.HotWindow
}

// IsWindowActive reports whether the current window took the last click.
func (ctx *Context) IsWindowActive() bool {
	return ctx.CurrentWindow != NoWindow && ctx.CurrentWindow == ctx.ActiveWindow
}
