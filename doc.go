/*
Package dock is an immediate-mode GUI runtime that doubles as a small tiling
window manager. Windows (named panels) live as tabs inside dockspaces,
dockspaces are the leaves of a per-viewport layout tree, and viewports map
one-to-one onto native OS windows that appear and disappear as the user drags
tabs around.

Like its parent library it uses a dedicated Context type (not
context.Context) that is passed explicitly to every call.

# Quick Start

	// Setup
	platform, _ := opengl.NewPlatform(mainWindow)
	renderer, _ := opengl.NewRenderer(platform, atlas)
	ui := dock.New(renderer, dock.Vec2{X: 1280, Y: 720},
	    dock.WithWindowing(platform),
	    dock.WithMainWindow(platform.Main()),
	    dock.WithFont(atlas),
	)

	// Frame loop
	for !mainWindow.ShouldClose() {
	    glfw.PollEvents()
	    ctx := ui.Begin(platform.Input())

	    if ctx.BeginWindow("Scene") {
	        if ctx.Button("Reset") {
	            // Button was pressed this frame
	        }
	    }
	    ctx.EndWindow()

	    ui.End()
	}

# Frame Structure

BeginFrame records input and runs the drag-and-dock state machine, which may
rearrange the tree before any window is drawn. Between BeginFrame and
EndFrame the application opens windows with BeginWindow/EndWindow and calls
widgets; they append geometry to the open window's DrawList in
content-local coordinates. EndFrame walks every dockspace and composes tab
bars, backgrounds and the visible window's geometry into one DrawList per
viewport.

# Layout Tree

Each viewport owns a RootTile with at most one child. A SplitTile divides its
extent among its children along an Axis; a Dockspace is a leaf. The solver,
RecalculateSublayoutSize, keeps the ratios of existing children when the
available space changes.

Tree surgery:

	ParentToRoot      place a dockspace in an empty viewport
	ParentVertical    place a dockspace above or below another
	ParentHorizontal  place a dockspace left or right of another
	Unparent          remove a dockspace, collapsing a split left with one child

# Dragging

Pressing a tab arms a drag; the first cursor movement with the button held
starts it:

	single tab, alone in a floating viewport   the viewport moves
	single tab, anywhere else                  the dockspace moves to a new viewport
	several tabs, cursor on the tab bar        tabs reorder in place
	several tabs, cursor elsewhere             the tab detaches into a new viewport

Releasing over another dockspace docks the dragged tab: the outer border of
the content area splits (see CheckCursorInBorderArea), the centre and the tab
bar merge it as a tab. Releasing anywhere else leaves it floating.

# Errors

Calling widgets outside a window, unbalanced BeginWindow/EndWindow and
EndFrame with an open window are programming errors and panic. Native window
failures are logged and leave the affected viewport virtual.

# Logging

The package logs tree mutations at debug level through log/slog. Enable them
with SetVerbose(true).
*/
package dock
