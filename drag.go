package dock

// dragState is the phase of the drag-and-dock state machine.
type dragState int

const (
	dragIdle     dragState = iota
	dragArmed              // pressed on a tab, cursor has not moved yet
	dragDragging           // tab or viewport follows the cursor
)

func (s dragState) String() string {
	switch s {
	case dragArmed:
		return "armed"
	case dragDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// DragInfo tracks a tab drag. The dragged window is Context.ActiveWindow.
type DragInfo struct {
	// AlienDockspace is the dockspace whose tabs are being reordered, nil
	// when the dragged tab floats in a viewport of its own.
	AlienDockspace *Dockspace

	// HotDockspace is the dockspace a drop would land in.
	HotDockspace *Dockspace

	// OriginalSize is the size of the dragged tab's dockspace at press.
	OriginalSize Vec2

	// TabClickOffset is the cursor position relative to the dragged tab's
	// top-left corner.
	TabClickOffset Vec2

	state dragState
}

// Dragging reports whether a tab is being dragged.
func (d *DragInfo) Dragging() bool { return d.state == dragDragging }

// Reset clears the drag state.
func (d *DragInfo) Reset() {
	*d = DragInfo{}
}

// updateDrag advances the drag state machine by one frame.
func (ctx *Context) updateDrag() {
	cur, prev := ctx.input, ctx.prevInput
	cursor := cur.Cursor()

	switch ctx.Drag.state {
	case dragIdle:
		if pressed(prev, cur, MouseButtonLeft) {
			ctx.press(cursor)
		}

	case dragArmed:
		if !cur.MouseDown(MouseButtonLeft) {
			ctx.Drag.Reset()
			return
		}
		if cursor == prev.Cursor() {
			return
		}
		ctx.beginDrag(cursor, cursor.Sub(prev.Cursor()))

	case dragDragging:
		if !cur.MouseDown(MouseButtonLeft) {
			if ctx.Drag.AlienDockspace == nil {
				ctx.drop(cursor)
			}
			ctx.Drag.Reset()
			return
		}
		ctx.continueDrag(cursor)
	}
}

// press handles a button-down edge while idle. A press on a tab arms a
// drag; a press on content activates the visible window.
func (ctx *Context) press(cursor Vec2) {
	ds := ctx.dockspaceAt(cursor, nil)
	if ds == nil {
		return
	}

	if i := ds.tabAt(cursor); i >= 0 {
		id := ds.windows[i]
		tab := ds.TabRect(i).Offset(ds.screenOffset())
		ctx.Drag.TabClickOffset = cursor.Sub(tab.Pos())
		ctx.Drag.OriginalSize = ds.Size
		ctx.Drag.state = dragArmed
		ctx.ActiveWindow = id
		ds.ActiveWindow = id

		if verbose() {
			dockLogger.Debug("drag armed", "window", id, "dockspace", ds.id, "tab", i)
		}
		return
	}

	if ds.ScreenContentRect().Contains(cursor) {
		ctx.ActiveWindow = ds.ActiveWindow
	}
}

// beginDrag runs on the first frame the cursor moves with the button held.
func (ctx *Context) beginDrag(cursor, delta Vec2) {
	ctx.Drag.state = dragDragging
	w := ctx.mustWindow(ctx.ActiveWindow)
	ds := w.dockspace
	assertf(ds != nil, "drag of undocked window %q", w.Name)
	vp := ds.viewport

	switch {
	case ds.TabCount() == 1 && !vp.Main && len(vp.dockspaces) == 1:
		// Already floating alone: move the viewport itself.
		vp.SetPos(vp.Pos.Add(delta))
		if verbose() {
			dockLogger.Debug("drag viewport", "window", w.Name, "viewport", vp.id)
		}

	case ds.TabCount() == 1:
		pos := ds.ScreenRect().Pos().Add(delta)
		nvp := ctx.createViewport(pos, ds.Size, false)
		Unparent(ds)
		ParentToRoot(ds, nvp)
		if verbose() {
			dockLogger.Debug("drag undock", "window", w.Name, "viewport", nvp.id)
		}

	case ds.ScreenTabBarRect().Contains(cursor):
		ctx.Drag.AlienDockspace = ds
		if verbose() {
			dockLogger.Debug("drag reorder", "window", w.Name, "dockspace", ds.id)
		}

	default:
		ctx.detachTab(ds, cursor)
	}
}

// detachTab pulls the dragged window out of ds into a new undecorated
// viewport placed so the grabbed point stays under the cursor.
func (ctx *Context) detachTab(ds *Dockspace, cursor Vec2) {
	id := ctx.ActiveWindow
	idx := ds.IndexOf(id)
	shift := Vec2{X: float32(idx) * ds.TabWidth()}
	ds.RemoveWindow(id)

	pos := cursor.Sub(ctx.Drag.TabClickOffset).Sub(shift)
	vp := ctx.createViewport(pos, ctx.Drag.OriginalSize, false)
	nds := ctx.createDockspace()
	nds.AddWindow(id, 0)
	ParentToRoot(nds, vp)

	// The tab now starts at the dockspace's left edge.
	ctx.Drag.TabClickOffset = ctx.Drag.TabClickOffset.Add(shift)

	if verbose() {
		dockLogger.Debug("drag detach", "window", id, "from", ds.id, "dockspace", nds.id, "viewport", vp.id)
	}
}

// continueDrag runs every frame of an ongoing drag.
func (ctx *Context) continueDrag(cursor Vec2) {
	if alien := ctx.Drag.AlienDockspace; alien != nil {
		bar := alien.ScreenTabBarRect()
		if bar.Contains(cursor) {
			alien.MoveWindow(ctx.ActiveWindow, int((cursor.X-bar.X)/alien.TabWidth()))
			return
		}
		ctx.detachTab(alien, cursor)
		ctx.Drag.AlienDockspace = nil
		return
	}

	ds := ctx.mustWindow(ctx.ActiveWindow).dockspace
	ds.viewport.SetPos(cursor.Sub(ctx.Drag.TabClickOffset))
	ctx.Drag.HotDockspace = ctx.dockspaceAt(cursor, ds)
}

// drop resolves where a released floating tab ends up.
func (ctx *Context) drop(cursor Vec2) {
	w := ctx.mustWindow(ctx.ActiveWindow)
	ds := w.dockspace
	tmp := ds.viewport

	if ctx.main.ScreenRect().Contains(cursor) && len(ctx.main.dockspaces) == 0 {
		Unparent(ds)
		ctx.destroyViewport(tmp)
		ParentToRoot(ds, ctx.main)
		if verbose() {
			dockLogger.Debug("drop into main", "window", w.Name)
		}
		return
	}

	target := ctx.dockspaceAt(cursor, ds)
	if target == nil {
		if verbose() {
			dockLogger.Debug("drop floating", "window", w.Name, "viewport", tmp.id)
		}
		return
	}

	content := target.ScreenContentRect()
	switch {
	case content.Contains(cursor):
		q := CheckCursorInBorderArea(cursor, content.Pos(), content.Size(), ctx.style.DropAreaWidth)
		switch q {
		case BorderTop, BorderBottom:
			ParentVertical(ds, target, q == BorderTop)
		case BorderRight, BorderLeft:
			ParentHorizontal(ds, target, q == BorderLeft)
		default:
			ctx.mergeInto(ds, target, target.TabCount())
			return
		}
		if !tmp.Main && len(tmp.dockspaces) == 0 {
			ctx.destroyViewport(tmp)
		}
		if verbose() {
			dockLogger.Debug("drop split", "window", w.Name, "target", target.id, "quadrant", q)
		}

	case target.ScreenTabBarRect().Contains(cursor):
		bar := target.ScreenTabBarRect()
		idx := int((cursor.X-bar.X)/target.TabWidth() + 0.5)
		ctx.mergeInto(ds, target, clampi(idx, 0, target.TabCount()))
	}
}

// mergeInto moves every tab of ds into target starting at index. ds, and
// its viewport if left empty, are destroyed by the last removal.
func (ctx *Context) mergeInto(ds, target *Dockspace, index int) {
	moved := ds.Windows()
	for i, id := range moved {
		ds.RemoveWindow(id)
		target.AddWindow(id, index+i)
	}
	target.ActiveWindow = moved[0]

	if verbose() {
		dockLogger.Debug("drop merge", "target", target.id, "index", index, "tabs", len(moved))
	}
}
