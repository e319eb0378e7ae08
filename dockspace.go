package dock

// Dockspace is a tab group occupying one leaf of a viewport's layout tree.
// It holds one or more windows as tabs; exactly one of them, ActiveWindow,
// is visible at a time.
//
// A dockspace that exists always has at least one tab. Removing the last tab
// destroys it in the same call.
type Dockspace struct {
	tileBase

	// ContentSize is Size minus the tab bar.
	ContentSize  Vec2
	TabBarHeight float32

	ActiveWindow ID

	id       int
	windows  []ID
	viewport *Viewport
	ctx      *Context
}

// Viewport returns the viewport the dockspace is placed in.
func (ds *Dockspace) Viewport() *Viewport { return ds.viewport }

// Windows returns the tab ids in tab order.
func (ds *Dockspace) Windows() []ID {
	out := make([]ID, len(ds.windows))
	copy(out, ds.windows)
	return out
}

// TabCount returns the number of tabs.
func (ds *Dockspace) TabCount() int { return len(ds.windows) }

// IndexOf returns the tab index of a window, or -1.
func (ds *Dockspace) IndexOf(id ID) int {
	for i, w := range ds.windows {
		if w == id {
			return i
		}
	}
	return -1
}

// AddWindow inserts a window as a tab at index. An index out of range
// appends. The first tab of an empty dockspace becomes its active tab.
func (ds *Dockspace) AddWindow(id ID, index int) {
	w := ds.ctx.mustWindow(id)
	assertf(w.dockspace == nil, "AddWindow: window %q is already docked", w.Name)

	if index < 0 || index > len(ds.windows) {
		index = len(ds.windows)
	}
	ds.windows = append(ds.windows, 0)
	copy(ds.windows[index+1:], ds.windows[index:])
	ds.windows[index] = id
	w.dockspace = ds

	if ds.ActiveWindow == NoWindow {
		ds.ActiveWindow = id
	}
}

// RemoveWindow removes a tab. If it was the active tab, its left neighbour
// (or the new first tab) becomes active. Removing the last tab destroys the
// dockspace, and with it a floating viewport left empty.
func (ds *Dockspace) RemoveWindow(id ID) {
	i := ds.IndexOf(id)
	assertf(i >= 0, "RemoveWindow: window %d is not a tab of dockspace %d", id, ds.id)

	ds.windows = append(ds.windows[:i], ds.windows[i+1:]...)
	if w, ok := ds.ctx.windows[id]; ok {
		w.dockspace = nil
	}

	if ds.ActiveWindow == id {
		switch {
		case len(ds.windows) == 0:
			ds.ActiveWindow = NoWindow
		case i == 0:
			ds.ActiveWindow = ds.windows[0]
		default:
			ds.ActiveWindow = ds.windows[i-1]
		}
	}

	if len(ds.windows) == 0 {
		ds.ctx.destroyDockspace(ds)
	}
}

// MoveWindow moves an existing tab to index, clamped to the tab range.
func (ds *Dockspace) MoveWindow(id ID, index int) {
	i := ds.IndexOf(id)
	assertf(i >= 0, "MoveWindow: window %d is not a tab of dockspace %d", id, ds.id)

	index = clampi(index, 0, len(ds.windows)-1)
	if index == i {
		return
	}
	ds.windows = append(ds.windows[:i], ds.windows[i+1:]...)
	ds.windows = append(ds.windows, 0)
	copy(ds.windows[index+1:], ds.windows[index:])
	ds.windows[index] = id

	if verbose() {
		dockLogger.Debug("reorder tab", "dockspace", ds.id, "window", id, "from", i, "to", index)
	}
}

// TabWidth returns the width of one tab: the dockspace width shared evenly.
func (ds *Dockspace) TabWidth() float32 {
	if len(ds.windows) == 0 {
		return ds.Size.X
	}
	return ds.Size.X / float32(len(ds.windows))
}

// TabBarRect returns the viewport-local tab bar rectangle.
func (ds *Dockspace) TabBarRect() Rect {
	return Rect{X: ds.Pos.X, Y: ds.Pos.Y, W: ds.Size.X, H: ds.TabBarHeight}
}

// TabRect returns the viewport-local rectangle of tab i.
func (ds *Dockspace) TabRect(i int) Rect {
	w := ds.TabWidth()
	return Rect{X: ds.Pos.X + float32(i)*w, Y: ds.Pos.Y, W: w, H: ds.TabBarHeight}
}

// ContentRect returns the viewport-local content rectangle.
func (ds *Dockspace) ContentRect() Rect {
	return RectFrom(ds.contentOrigin(), ds.ContentSize)
}

// contentOrigin is the viewport-local top-left of the content area.
func (ds *Dockspace) contentOrigin() Vec2 {
	return ds.Pos.Add(Vec2{Y: ds.TabBarHeight})
}

// screenOffset is the viewport's screen position, or zero when detached.
func (ds *Dockspace) screenOffset() Vec2 {
	if ds.viewport == nil {
		return Vec2{}
	}
	return ds.viewport.Pos
}

// ScreenRect returns the whole dockspace in screen space.
func (ds *Dockspace) ScreenRect() Rect {
	return ds.Rect().Offset(ds.screenOffset())
}

// ScreenTabBarRect returns the tab bar in screen space.
func (ds *Dockspace) ScreenTabBarRect() Rect {
	return ds.TabBarRect().Offset(ds.screenOffset())
}

// ScreenContentRect returns the content area in screen space.
func (ds *Dockspace) ScreenContentRect() Rect {
	return ds.ContentRect().Offset(ds.screenOffset())
}

// tabAt returns the index of the tab under a screen-space point, or -1.
func (ds *Dockspace) tabAt(p Vec2) int {
	bar := ds.ScreenTabBarRect()
	if !bar.Contains(p) || len(ds.windows) == 0 {
		return -1
	}
	i := int((p.X - bar.X) / ds.TabWidth())
	return clampi(i, 0, len(ds.windows)-1)
}

// clampi clamps an int value to a range.
func clampi(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
