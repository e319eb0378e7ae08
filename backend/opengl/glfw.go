package opengl

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/dock"
)

// Platform implements dock.Windowing on GLFW.
//
// Every window it creates shares the main window's GL context, so textures
// and buffers are visible from all of them. Vertex array objects are not
// shared; the Renderer keeps one per window.
type Platform struct {
	main    *NativeWindow
	windows map[*glfw.Window]*NativeWindow

	// onDestroy runs with the window's context current, right before the
	// window goes away.
	onDestroy func(w *glfw.Window)
}

var _ dock.Windowing = (*Platform)(nil)

// NewPlatform wraps the application's main window. Its context must be
// current.
func NewPlatform(main *glfw.Window) (*Platform, error) {
	if main == nil {
		return nil, errors.New("opengl: nil main window")
	}
	p := &Platform{windows: make(map[*glfw.Window]*NativeWindow)}
	p.main = p.wrap(main)
	return p, nil
}

// Main returns the main window for dock.WithMainWindow.
func (p *Platform) Main() *NativeWindow {
	return p.main
}

// CreateWindow opens a window sharing the main context. Undecorated windows
// have no title bar or border; they are used while a tab is being dragged.
func (p *Platform) CreateWindow(pos, size dock.Vec2, decorated bool) (dock.NativeWindow, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.FocusOnShow, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)
	if decorated {
		glfw.WindowHint(glfw.Decorated, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.False)
	}

	w, err := glfw.CreateWindow(max(int(size.X), 1), max(int(size.Y), 1), "", nil, p.main.w)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	w.SetPos(int(pos.X), int(pos.Y))
	w.Show()

	slog.Debug("native window created", "pos", pos, "size", size, "decorated", decorated)
	return p.wrap(w), nil
}

func (p *Platform) wrap(w *glfw.Window) *NativeWindow {
	nw := &NativeWindow{w: w, platform: p}
	p.windows[w] = nw
	return nw
}

// lookup returns the GLFW window behind a viewport's native handle.
func (p *Platform) lookup(nw dock.NativeWindow) (*glfw.Window, bool) {
	n, ok := nw.(*NativeWindow)
	if !ok || n.w == nil {
		return nil, false
	}
	if _, known := p.windows[n.w]; !known {
		return nil, false
	}
	return n.w, true
}

// Input polls a screen-space input snapshot across all windows.
// The cursor comes from the window under it (the main window when none
// is), a mouse button is down when any window sees it down.
func (p *Platform) Input() dock.InputState {
	var in dock.InputState

	src := p.main.w
	for w := range p.windows {
		if w.GetAttrib(glfw.Hovered) == glfw.True {
			src = w
			break
		}
	}
	x, y := src.GetCursorPos()
	wx, wy := src.GetPos()
	in.SetMousePos(float32(x)+float32(wx), float32(y)+float32(wy))

	for w := range p.windows {
		for _, b := range []glfw.MouseButton{glfw.MouseButtonLeft, glfw.MouseButtonRight, glfw.MouseButtonMiddle} {
			if w.GetMouseButton(b) == glfw.Press {
				in.SetMouseButton(glfwMouseButtonToDock(b), true)
			}
		}
	}
	return in
}

// NativeWindow is one GLFW window backing a dock viewport.
type NativeWindow struct {
	w        *glfw.Window
	platform *Platform
}

var _ dock.NativeWindow = (*NativeWindow)(nil)

// Window returns the underlying GLFW window, or nil after Destroy.
func (n *NativeWindow) Window() *glfw.Window { return n.w }

func (n *NativeWindow) Pos() dock.Vec2 {
	x, y := n.w.GetPos()
	return dock.Vec2{X: float32(x), Y: float32(y)}
}

func (n *NativeWindow) SetPos(pos dock.Vec2) {
	n.w.SetPos(int(pos.X), int(pos.Y))
}

func (n *NativeWindow) Size() dock.Vec2 {
	w, h := n.w.GetSize()
	return dock.Vec2{X: float32(w), Y: float32(h)}
}

func (n *NativeWindow) SetSize(size dock.Vec2) {
	n.w.SetSize(max(int(size.X), 1), max(int(size.Y), 1))
}

// Destroy closes the window. The main window is left to the application.
func (n *NativeWindow) Destroy() {
	if n.w == nil || n == n.platform.main {
		return
	}
	if hook := n.platform.onDestroy; hook != nil {
		prev := glfw.GetCurrentContext()
		n.w.MakeContextCurrent()
		hook(n.w)
		if prev != nil && prev != n.w {
			prev.MakeContextCurrent()
		} else {
			n.platform.main.w.MakeContextCurrent()
		}
	}
	delete(n.platform.windows, n.w)
	n.w.Destroy()
	n.w = nil
}

func (n *NativeWindow) SetFocusCallback(fn func(focused bool)) {
	n.w.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		fn(focused)
	})
}

// glfwMouseButtonToDock maps GLFW mouse buttons to dock mouse buttons.
func glfwMouseButtonToDock(button glfw.MouseButton) dock.MouseButton {
	switch button {
	case glfw.MouseButtonRight:
		return dock.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return dock.MouseButtonMiddle
	default:
		return dock.MouseButtonLeft
	}
}
