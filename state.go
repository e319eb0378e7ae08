package dock

// WidgetState is the interaction state of a widget, recomputed from scratch
// on every call.
type WidgetState int

const (
	WidgetInactive WidgetState = iota
	WidgetHot                  // cursor over the widget, button up
	WidgetClicked              // cursor over the widget, button down
)

func (s WidgetState) String() string {
	switch s {
	case WidgetHot:
		return "hot"
	case WidgetClicked:
		return "clicked"
	default:
		return "inactive"
	}
}

// StateStore keeps widget state between frames.
// Unlike ImGui's hidden state, this is explicit and inspectable.
type StateStore map[ID]WidgetState

// Get retrieves a widget's last state. Unknown widgets are inactive.
func (m StateStore) Get(id ID) WidgetState {
	return m[id]
}

// Set stores a widget's state for the next frame.
func (m StateStore) Set(id ID, s WidgetState) {
	m[id] = s
}
