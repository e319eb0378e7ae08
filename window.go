package dock

// DrawContext is a window's per-frame scratch geometry. Widgets append to
// List at DrawPos in content-local coordinates; EndFrame translates the
// list into the viewport and clears it.
type DrawContext struct {
	DrawPos Vec2
	List    *DrawList
}

// Window is a named panel. It is created by the first BeginWindow call with
// its name and lives for the rest of the session.
type Window struct {
	ID   ID
	Name string

	// Enabled is true only when BeginWindow was called this frame.
	Enabled bool

	Draw    DrawContext
	Widgets StateStore

	dockspace *Dockspace
}

func newWindow(name string) *Window {
	return &Window{
		ID:      HashString(name),
		Name:    name,
		Draw:    DrawContext{List: AcquireDrawList()},
		Widgets: make(StateStore),
	}
}

// Dockspace returns the tab group holding the window.
func (w *Window) Dockspace() *Dockspace { return w.dockspace }

// Visible reports whether the window is the active tab of its dockspace.
func (w *Window) Visible() bool {
	return w.dockspace != nil && w.dockspace.ActiveWindow == w.ID
}

// resetDraw clears the scratch geometry and rewinds the cursor.
func (w *Window) resetDraw(style *Style) {
	w.Draw.List.Clear()
	w.Draw.DrawPos = Vec2{X: style.WindowPadding, Y: style.WindowPadding}
}
