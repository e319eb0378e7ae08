package dock_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/dock"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	rendered    []*dock.Viewport
	err         error
}

func (m *mockRenderer) RenderViewport(vp *dock.Viewport) error {
	m.renderCalls++
	m.rendered = append(m.rendered, vp)
	return m.err
}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := dock.New(renderer, dock.Vec2{X: 1920, Y: 1080})

	var input dock.InputState
	ctx := ui.Begin(input)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if ctx != ui.Context() {
		t.Error("expected Begin to return the GUI context")
	}

	if ctx.BeginWindow("Scene") {
		ctx.Text("Hello World")
		ctx.Button("Play")
	}
	ctx.EndWindow()

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.rendered[0] != ctx.MainViewport() {
		t.Error("expected the main viewport rendered")
	}
}

func TestGUIRendersEveryViewport(t *testing.T) {
	renderer := &mockRenderer{}
	ui := dock.New(renderer, dock.Vec2{X: 800, Y: 600})

	for frame := 0; frame < 2; frame++ {
		ctx := ui.Begin(dock.InputState{})
		for _, name := range []string{"Scene", "Inspector", "Console"} {
			ctx.BeginWindow(name)
			ctx.EndWindow()
		}
		if err := ui.End(); err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}
	}

	if renderer.renderCalls != 6 {
		t.Errorf("expected 3 viewports rendered twice, got %d calls", renderer.renderCalls)
	}
	vps := ui.Context().Viewports()
	for i, vp := range renderer.rendered[3:] {
		if vp != vps[i] {
			t.Errorf("call %d: expected viewports in z-order", i)
		}
	}
}

func TestGUIEndWrapsRenderError(t *testing.T) {
	errLost := errors.New("context lost")
	renderer := &mockRenderer{err: errLost}
	ui := dock.New(renderer, dock.Vec2{X: 800, Y: 600})

	ctx := ui.Begin(dock.InputState{})
	ctx.BeginWindow("Scene")
	ctx.EndWindow()
	ctx.BeginWindow("Log")
	ctx.EndWindow()

	err := ui.End()
	if !errors.Is(err, errLost) {
		t.Fatalf("expected wrapped render error, got %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected rendering to stop at the first error, got %d calls", renderer.renderCalls)
	}
}

func TestDrawListPool(t *testing.T) {
	dl1 := dock.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}
	dl1.AddRect(0, 0, 100, 100, dock.ColorWhite)
	dock.ReleaseDrawList(dl1)

	// Acquire again - might get same or different list
	dl2 := dock.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}
	if !dl2.Empty() || len(dl2.CmdBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}
	dock.ReleaseDrawList(dl2)
}

func TestColorFunctions(t *testing.T) {
	c := dock.RGBA(255, 128, 64, 200)
	r, g, b, a := dock.UnpackRGBA(c)
	if r != 255 || g != 128 || b != 64 || a != 200 {
		t.Errorf("RGBA roundtrip failed: got %d,%d,%d,%d", r, g, b, a)
	}

	lit := dock.Brighten(dock.RGBA(0, 100, 255, 7), 0.5)
	r, g, b, a = dock.UnpackRGBA(lit)
	if r != 127 || g != 177 || b != 255 || a != 7 {
		t.Errorf("Brighten unexpected: got %d,%d,%d,%d", r, g, b, a)
	}
	if dock.Brighten(dock.ColorBlack, 2) != dock.ColorWhite {
		t.Error("Brighten should clamp the amount to 1")
	}
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := dock.AcquireDrawList()
	defer dock.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddRect(float32(i%100), float32(i%100), 50, 50, dock.ColorWhite)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	renderer := &mockRenderer{}
	ui := dock.New(renderer, dock.Vec2{X: 1920, Y: 1080})
	names := []string{"Scene", "Inspector", "Console", "Assets"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.rendered = renderer.rendered[:0]
		ctx := ui.Begin(dock.InputState{})
		for _, name := range names {
			if ctx.BeginWindow(name) {
				for j := 0; j < 10; j++ {
					ctx.Button("Item", dock.WithID(name))
				}
			}
			ctx.EndWindow()
		}
		_ = ui.End()
	}
}
