package dock

import (
	"slices"
	"testing"
)

func TestNewWindowsPlacement(t *testing.T) {
	ctx := NewContext(Vec2{X: 800, Y: 600})
	step(ctx, 0, 0, false, "A", "B", "C")

	a := mustDockspace(t, ctx, "A")
	if a.Viewport() != ctx.MainViewport() {
		t.Error("Expected first window docked in main viewport")
	}
	vps := ctx.Viewports()
	if len(vps) != 3 {
		t.Fatalf("Expected 3 viewports, got %d", len(vps))
	}
	b := mustDockspace(t, ctx, "B")
	if b.Viewport() != vps[1] {
		t.Error("Expected B in the second viewport")
	}
	if vps[1].Pos != (Vec2{X: 32, Y: 32}) || vps[2].Pos != (Vec2{X: 64, Y: 64}) {
		t.Errorf("Expected cascaded floating viewports, got %+v and %+v", vps[1].Pos, vps[2].Pos)
	}
	if vps[1].Size != ctx.Style().DefaultWindowSize {
		t.Errorf("Expected default window size, got %+v", vps[1].Size)
	}
	if !vps[1].Decorated {
		t.Error("Expected new window viewport to be decorated")
	}

	// Windows persist and keep their placement.
	step(ctx, 0, 0, false, "A")
	if mustDockspace(t, ctx, "B") != b {
		t.Error("Expected B to keep its dockspace")
	}
	if w, _ := ctx.Window("B"); w.Enabled {
		t.Error("Expected B disabled when not begun this frame")
	}
}

func TestDragFloatingTabOntoTopBorder(t *testing.T) {
	ctx := NewContext(Vec2{X: 800, Y: 600})
	step(ctx, 0, 0, false, "A", "B")

	// B floats at (32,32). Grab its tab and drop on the upper border of A.
	step(ctx, 40, 40, true, "A", "B")
	if ctx.ActiveWindow != HashString("B") {
		t.Fatalf("Expected B active after tab press, got %d", ctx.ActiveWindow)
	}
	step(ctx, 400, 80, true, "A", "B")
	if !ctx.Drag.Dragging() {
		t.Fatal("Expected drag to start on movement")
	}
	if got := mustDockspace(t, ctx, "B").Viewport().Pos; got != (Vec2{X: 392, Y: 72}) {
		t.Errorf("Expected floating viewport moved by the cursor delta, got %+v", got)
	}
	step(ctx, 400, 80, true, "A", "B")
	if ctx.Drag.HotDockspace != mustDockspace(t, ctx, "A") {
		t.Error("Expected A as hot dockspace")
	}
	step(ctx, 400, 80, false, "A", "B")

	if len(ctx.Viewports()) != 1 {
		t.Fatalf("Expected a single viewport, got %d", len(ctx.Viewports()))
	}
	split, ok := ctx.MainViewport().Root.Child.(*SplitTile)
	if !ok || split.Axis != AxisVertical {
		t.Fatalf("Expected vertical split, got %T", ctx.MainViewport().Root.Child)
	}
	a := mustDockspace(t, ctx, "A")
	b := mustDockspace(t, ctx, "B")
	if split.Children[0] != b || split.Children[1] != a {
		t.Error("Expected B above A")
	}
	expectRect(t, "B", b, Rect{X: 0, Y: 0, W: 800, H: 300})
	expectRect(t, "A", a, Rect{X: 0, Y: 300, W: 800, H: 300})
	checkTree(t, ctx.MainViewport())
	if ctx.Drag.Dragging() || ctx.Drag.HotDockspace != nil {
		t.Error("Expected drag state cleared after drop")
	}
}

func TestDropQuadrants(t *testing.T) {
	// Cursor positions inside A's content area (0,24)-(800,600).
	tests := []struct {
		name   string
		cursor Vec2
		axis   Axis
		first  string
	}{
		{"bottom", Vec2{X: 400, Y: 590}, AxisVertical, "A"},
		{"left", Vec2{X: 20, Y: 300}, AxisHorizontal, "B"},
		{"right", Vec2{X: 780, Y: 300}, AxisHorizontal, "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(Vec2{X: 800, Y: 600})
			step(ctx, 0, 0, false, "A", "B")
			step(ctx, 40, 40, true)
			step(ctx, tt.cursor.X, tt.cursor.Y, true)
			step(ctx, tt.cursor.X, tt.cursor.Y, true)
			step(ctx, tt.cursor.X, tt.cursor.Y, false)

			split, ok := ctx.MainViewport().Root.Child.(*SplitTile)
			if !ok || split.Axis != tt.axis {
				t.Fatalf("Expected %v split, got %T", tt.axis, ctx.MainViewport().Root.Child)
			}
			if split.Children[0] != mustDockspace(t, ctx, tt.first) {
				t.Errorf("Expected %s first", tt.first)
			}
			if len(ctx.Viewports()) != 1 {
				t.Errorf("Expected temporary viewport destroyed, got %d viewports", len(ctx.Viewports()))
			}
			checkTree(t, ctx.MainViewport())
		})
	}
}

func TestDropOnCenterMergesAsLastTab(t *testing.T) {
	ctx := NewContext(Vec2{X: 800, Y: 600})
	step(ctx, 0, 0, false, "A", "B")
	step(ctx, 40, 40, true)
	step(ctx, 400, 300, true)
	step(ctx, 400, 300, false)

	a := mustDockspace(t, ctx, "A")
	if mustDockspace(t, ctx, "B") != a {
		t.Fatal("Expected B merged into A's dockspace")
	}
	if !slices.Equal(a.Windows(), ids("A", "B")) {
		t.Errorf("Expected tabs [A B], got %v", a.Windows())
	}
	if a.ActiveWindow != HashString("B") {
		t.Error("Expected the dropped tab active")
	}
	if len(ctx.Viewports()) != 1 || len(ctx.Dockspaces()) != 1 {
		t.Errorf("Expected 1 viewport and 1 dockspace, got %d and %d", len(ctx.Viewports()), len(ctx.Dockspaces()))
	}
}

// mergedPair docks B as the second tab of A in the main viewport.
func mergedPair(t *testing.T) *Context {
	t.Helper()
	ctx := NewContext(Vec2{X: 800, Y: 600})
	step(ctx, 0, 0, false, "A", "B")
	step(ctx, 40, 40, true, "A", "B")
	step(ctx, 700, 10, true, "A", "B")
	step(ctx, 700, 10, false, "A", "B")

	ds := mustDockspace(t, ctx, "A")
	if !slices.Equal(ds.Windows(), ids("A", "B")) {
		t.Fatalf("Expected tabs [A B] after tab bar drop, got %v", ds.Windows())
	}
	return ctx
}

func TestDropOnTabBarInsertsAtIndex(t *testing.T) {
	ctx := mergedPair(t)
	ds := mustDockspace(t, ctx, "A")
	if ds.ActiveWindow != HashString("B") {
		t.Error("Expected B active after merge")
	}

	// A third window dropped near the left edge of the bar goes first.
	step(ctx, 0, 0, false, "A", "B", "C")
	c := mustDockspace(t, ctx, "C")
	bar := c.ScreenTabBarRect()
	step(ctx, bar.X+5, bar.Y+5, true, "A", "B", "C")
	step(ctx, 50, 10, true, "A", "B", "C")
	step(ctx, 50, 10, false, "A", "B", "C")

	if !slices.Equal(ds.Windows(), ids("C", "A", "B")) {
		t.Errorf("Expected tabs [C A B], got %v", ds.Windows())
	}
	if len(ctx.Viewports()) != 1 {
		t.Errorf("Expected a single viewport, got %d", len(ctx.Viewports()))
	}
}

func TestDetachTabToDesktop(t *testing.T) {
	ctx := mergedPair(t)
	origin := mustDockspace(t, ctx, "A")

	step(ctx, 100, 10, true, "A", "B")
	step(ctx, 105, 10, true, "A", "B")
	if ctx.Drag.AlienDockspace != origin {
		t.Fatal("Expected reorder mode while on the own tab bar")
	}
	step(ctx, 1000, 700, true, "A", "B")
	if ctx.Drag.AlienDockspace != nil {
		t.Error("Expected reorder mode cleared on leaving the tab bar")
	}
	step(ctx, 1000, 700, false, "A", "B")

	vps := ctx.Viewports()
	if len(vps) != 2 {
		t.Fatalf("Expected 2 viewports, got %d", len(vps))
	}
	detached := mustDockspace(t, ctx, "A")
	if detached == origin || detached.Viewport() != vps[1] {
		t.Fatal("Expected A in a new viewport")
	}
	if !slices.Equal(detached.Windows(), ids("A")) {
		t.Errorf("Expected new dockspace {A}, got %v", detached.Windows())
	}
	if len(vps[1].Dockspaces()) != 1 {
		t.Errorf("Expected exactly one dockspace in the new viewport, got %d", len(vps[1].Dockspaces()))
	}
	if vps[1].Decorated {
		t.Error("Expected dragged-out viewport undecorated")
	}
	if vps[1].Pos != (Vec2{X: 900, Y: 690}) {
		t.Errorf("Expected new viewport under the grab point, got %+v", vps[1].Pos)
	}
	if vps[1].Size != (Vec2{X: 800, Y: 600}) {
		t.Errorf("Expected original dockspace size, got %+v", vps[1].Size)
	}
	if !slices.Equal(origin.Windows(), ids("B")) || origin.ActiveWindow != HashString("B") {
		t.Errorf("Expected origin {B} with B active, got %v active %d", origin.Windows(), origin.ActiveWindow)
	}
	for _, vp := range vps {
		checkTree(t, vp)
	}
}

func TestDetachSecondTabKeepsGrabOffset(t *testing.T) {
	ctx := mergedPair(t)

	// Grab B (second tab, x 400..800) and pull it straight down.
	step(ctx, 450, 10, true, "A", "B")
	step(ctx, 450, 300, true, "A", "B")

	b := mustDockspace(t, ctx, "B")
	if got := b.Viewport().Pos; got != (Vec2{X: 0, Y: 290}) {
		t.Errorf("Expected viewport at (0,290), got %+v", got)
	}
	if ctx.Drag.TabClickOffset != (Vec2{X: 450, Y: 10}) {
		t.Errorf("Expected offset rebased to the new tab, got %+v", ctx.Drag.TabClickOffset)
	}

	step(ctx, 460, 310, true, "A", "B")
	if got := b.Viewport().Pos; got != (Vec2{X: 10, Y: 300}) {
		t.Errorf("Expected viewport to follow the cursor, got %+v", got)
	}
}

func TestReorderTabsInPlace(t *testing.T) {
	ctx := mergedPair(t)
	ds := mustDockspace(t, ctx, "A")

	step(ctx, 100, 10, true, "A", "B")
	step(ctx, 110, 10, true, "A", "B")
	step(ctx, 600, 10, true, "A", "B")
	if !slices.Equal(ds.Windows(), ids("B", "A")) {
		t.Errorf("Expected [B A] while dragging, got %v", ds.Windows())
	}
	step(ctx, 600, 10, false, "A", "B")

	if !slices.Equal(ds.Windows(), ids("B", "A")) {
		t.Errorf("Expected [B A] after release, got %v", ds.Windows())
	}
	if len(ctx.Viewports()) != 1 || len(ctx.Dockspaces()) != 1 {
		t.Error("Expected reorder to leave the tree alone")
	}
}

func TestDragSoleTabOutOfMainAndBack(t *testing.T) {
	ctx := NewContext(Vec2{X: 800, Y: 600})
	step(ctx, 0, 0, false, "A")
	a := mustDockspace(t, ctx, "A")

	step(ctx, 10, 10, true, "A")
	step(ctx, 20, 30, true, "A")
	if a.Viewport() == ctx.MainViewport() {
		t.Fatal("Expected A moved to its own viewport")
	}
	if a.Viewport().Pos != (Vec2{X: 10, Y: 20}) {
		t.Errorf("Expected viewport at old position plus delta, got %+v", a.Viewport().Pos)
	}
	if a.Viewport().Size != (Vec2{X: 800, Y: 600}) {
		t.Errorf("Expected viewport sized like the dockspace, got %+v", a.Viewport().Size)
	}
	if ctx.MainViewport().Root.Child != nil {
		t.Error("Expected main viewport emptied")
	}

	step(ctx, 20, 30, false, "A")
	if a.Viewport() != ctx.MainViewport() {
		t.Error("Expected drop over the empty main viewport to re-root A")
	}
	if len(ctx.Viewports()) != 1 {
		t.Errorf("Expected temporary viewport destroyed, got %d", len(ctx.Viewports()))
	}
	expectRect(t, "A", a, Rect{W: 800, H: 600})
}

func TestClickWithoutMoveDoesNotDrag(t *testing.T) {
	ctx := mergedPair(t)
	ds := mustDockspace(t, ctx, "A")

	step(ctx, 100, 10, true, "A", "B")
	step(ctx, 100, 10, true, "A", "B")
	step(ctx, 100, 10, false, "A", "B")

	if ds.ActiveWindow != HashString("A") {
		t.Error("Expected tab click to select A")
	}
	if ctx.Drag.Dragging() || len(ctx.Viewports()) != 1 {
		t.Error("Expected no drag from a stationary click")
	}
}

func TestHoverAndContentClick(t *testing.T) {
	ctx := mergedPair(t)

	step(ctx, 600, 10, false, "A", "B")
	if ctx.HotWindow != HashString("B") {
		t.Errorf("Expected B hot over its tab, got %d", ctx.HotWindow)
	}
	step(ctx, 100, 300, false, "A", "B")
	if ctx.HotWindow != HashString("B") {
		t.Errorf("Expected the visible tab hot over content, got %d", ctx.HotWindow)
	}
	step(ctx, 900, 900, false, "A", "B")
	if ctx.HotWindow != NoWindow {
		t.Errorf("Expected no hot window outside, got %d", ctx.HotWindow)
	}

	ctx.ActiveWindow = NoWindow
	step(ctx, 100, 300, true, "A", "B")
	if ctx.ActiveWindow != HashString("B") {
		t.Errorf("Expected content click to activate B, got %d", ctx.ActiveWindow)
	}
	if ctx.Drag.Dragging() {
		t.Error("Expected content press not to arm a drag")
	}
}
