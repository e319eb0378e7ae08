package dock

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// InputState holds the raw input snapshot for one frame.
// The cursor is in screen space (the same space as Viewport.Pos), so a
// cursor outside every viewport is still meaningful while dragging.
//
// The Context keeps the previous frame's snapshot itself; press and release
// edges are derived by comparing the two.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	mouseDown [MouseButtonCount]bool
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	s.mouseDown[button] = down
}

// MouseDown returns true if a mouse button is currently held.
func (s InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// Cursor returns the mouse position as a vector.
func (s InputState) Cursor() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// pressed reports a button-down edge between prev and cur.
func pressed(prev, cur InputState, button MouseButton) bool {
	return cur.MouseDown(button) && !prev.MouseDown(button)
}
