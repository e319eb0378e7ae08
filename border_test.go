package dock

import "testing"

func TestCheckCursorInBorderArea(t *testing.T) {
	square := Vec2{X: 100, Y: 100}
	wide := Vec2{X: 400, Y: 100}
	origin := Vec2{X: 50, Y: 20}

	tests := []struct {
		name   string
		cursor Vec2
		pos    Vec2
		size   Vec2
		want   int
	}{
		{"center of square", Vec2{X: 50, Y: 50}, Vec2{}, square, BorderCenter},
		{"one unit inside top", Vec2{X: 50, Y: 1}, Vec2{}, square, BorderTop},
		{"one unit inside bottom", Vec2{X: 50, Y: 99}, Vec2{}, square, BorderBottom},
		{"one unit inside right", Vec2{X: 99, Y: 50}, Vec2{}, square, BorderRight},
		{"one unit inside left", Vec2{X: 1, Y: 50}, Vec2{}, square, BorderLeft},
		{"offset rectangle center", Vec2{X: 100, Y: 70}, origin, square, BorderCenter},
		{"offset rectangle top", Vec2{X: 100, Y: 22}, origin, square, BorderTop},
		{"inner edge is border", Vec2{X: 25, Y: 50}, Vec2{}, square, BorderLeft},
		{"just inside inner box", Vec2{X: 26, Y: 50}, Vec2{}, square, BorderCenter},

		// Ties resolve top, bottom, right, left.
		{"top-left corner", Vec2{X: 0, Y: 0}, Vec2{}, square, BorderTop},
		{"top-right corner", Vec2{X: 100, Y: 0}, Vec2{}, square, BorderTop},
		{"bottom-left corner", Vec2{X: 0, Y: 100}, Vec2{}, square, BorderBottom},
		{"bottom-right corner", Vec2{X: 100, Y: 100}, Vec2{}, square, BorderBottom},

		// On a wide rectangle the x distances are compressed by h/w.
		{"wide left band", Vec2{X: 90, Y: 50}, Vec2{}, wide, BorderLeft},
		{"wide right band", Vec2{X: 310, Y: 50}, Vec2{}, wide, BorderRight},
		{"wide center", Vec2{X: 200, Y: 50}, Vec2{}, wide, BorderCenter},
		{"wide near top", Vec2{X: 150, Y: 10}, Vec2{}, wide, BorderTop},

		{"degenerate size", Vec2{X: 0, Y: 0}, Vec2{}, Vec2{}, BorderCenter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckCursorInBorderArea(tt.cursor, tt.pos, tt.size, 0.5)
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestBorderAreaDropWidth(t *testing.T) {
	size := Vec2{X: 100, Y: 100}
	cursor := Vec2{X: 50, Y: 20}

	if got := CheckCursorInBorderArea(cursor, Vec2{}, size, 0.5); got != BorderTop {
		t.Errorf("width 0.5: Expected top, got %d", got)
	}
	if got := CheckCursorInBorderArea(cursor, Vec2{}, size, 0.2); got != BorderCenter {
		t.Errorf("width 0.2: Expected center, got %d", got)
	}
}

func TestBorderPreview(t *testing.T) {
	ctx := NewContext(Vec2{X: 800, Y: 600})
	a := addDockspace(ctx, "a")
	ParentToRoot(a, ctx.MainViewport())

	tests := []struct {
		q    int
		want Rect
	}{
		{BorderTop, Rect{X: 0, Y: 0, W: 800, H: 300}},
		{BorderBottom, Rect{X: 0, Y: 300, W: 800, H: 300}},
		{BorderLeft, Rect{X: 0, Y: 0, W: 400, H: 600}},
		{BorderRight, Rect{X: 400, Y: 0, W: 400, H: 600}},
		{BorderCenter, Rect{X: 0, Y: 24, W: 800, H: 576}},
	}
	for _, tt := range tests {
		if got := borderPreview(a, tt.q); got != tt.want {
			t.Errorf("quadrant %d: Expected %+v, got %+v", tt.q, tt.want, got)
		}
	}
}
