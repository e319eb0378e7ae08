package dock

// Style defines the visual appearance and docking metrics.
// Everything is drawn as flat solid-color rectangles.
type Style struct {
	// Tab bar
	TabBarColor       uint32
	TabColor          uint32
	TabSeparatorColor uint32
	TabHotBrighten    float32 // Brightening for the hot/active tab
	TabIdleBrighten   float32 // Brightening for every other tab

	// Window content
	WindowBgColor uint32
	TextColor     uint32

	// Button colors
	ButtonBorderColor  uint32
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	// Docking preview overlay
	PreviewColor uint32
	GuideColor   uint32

	// Sizing
	TabBarHeight      float32
	TabSeparatorWidth float32
	WindowPadding     float32
	ItemSpacing       float32
	ButtonPadding     float32
	ButtonBorder      float32
	GuideThickness    float32

	// Monospace fallback used when no Font is attached
	CharWidth  float32
	CharHeight float32

	// Floating windows
	DefaultWindowSize Vec2 // Size of the viewport a brand-new window floats in
	FloatingOffset    Vec2 // Cascade step between new floating viewports

	// DropAreaWidth is the fraction of half a content area treated as the
	// split border when dropping a dragged tab. 0.5 means the outer quarter
	// on every side splits, the inner half merges.
	DropAreaWidth float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		// Tabs
		TabBarColor:       RGBA(25, 25, 28, 255),
		TabColor:          RGBA(45, 45, 50, 255),
		TabSeparatorColor: RGBA(15, 15, 15, 255),
		TabHotBrighten:    0.35,
		TabIdleBrighten:   0.1,

		// Content
		WindowBgColor: RGBA(20, 20, 20, 240),
		TextColor:     ColorWhite,

		// Buttons
		ButtonBorderColor:  RGBA(80, 80, 80, 255),
		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		// Overlay
		PreviewColor: RGBA(50, 100, 150, 110),
		GuideColor:   RGBA(0, 180, 255, 220),

		// Sizing
		TabBarHeight:      24,
		TabSeparatorWidth: 1,
		WindowPadding:     8,
		ItemSpacing:       4,
		ButtonPadding:     6,
		ButtonBorder:      1,
		GuideThickness:    3,

		CharWidth:  8,
		CharHeight: 8,

		DefaultWindowSize: Vec2{X: 400, Y: 300},
		FloatingOffset:    Vec2{X: 32, Y: 32},

		DropAreaWidth: 0.5,
	}
}
