package dock

// Border areas returned by CheckCursorInBorderArea.
const (
	BorderCenter = -1
	BorderTop    = 0
	BorderRight  = 1
	BorderBottom = 2
	BorderLeft   = 3
)

// CheckCursorInBorderArea classifies cursor against the rectangle at pos
// with the given size. The border is inset by size*0.5*dropAreaWidth on
// every side. Coordinates are scaled by (height/width, 1) before the edge
// distances are compared, so the border regions stay square on wide or
// tall rectangles.
//
// It returns BorderCenter when the cursor is strictly inside the inset box,
// otherwise the nearest edge. Ties go to top, then bottom, then right, then
// left.
func CheckCursorInBorderArea(cursor, pos, size Vec2, dropAreaWidth float32) int {
	if size.X <= 0 || size.Y <= 0 {
		return BorderCenter
	}

	scale := Vec2{X: size.Y / size.X, Y: 1}
	p := cursor.Sub(pos)
	p = Vec2{X: p.X * scale.X, Y: p.Y * scale.Y}
	s := Vec2{X: size.X * scale.X, Y: size.Y * scale.Y}
	inset := size.Mul(0.5 * dropAreaWidth)
	inset = Vec2{X: inset.X * scale.X, Y: inset.Y * scale.Y}

	if p.X > inset.X && p.X < s.X-inset.X && p.Y > inset.Y && p.Y < s.Y-inset.Y {
		return BorderCenter
	}

	best, dist := BorderTop, p.Y
	if d := s.Y - p.Y; d < dist {
		best, dist = BorderBottom, d
	}
	if d := s.X - p.X; d < dist {
		best, dist = BorderRight, d
	}
	if d := p.X; d < dist {
		best = BorderLeft
	}
	return best
}

// borderPreview returns the viewport-local part of ds a drop in border area
// q would give the dropped window.
func borderPreview(ds *Dockspace, q int) Rect {
	r := ds.Rect()
	switch q {
	case BorderTop:
		r.H /= 2
	case BorderBottom:
		r.H /= 2
		r.Y += r.H
	case BorderLeft:
		r.W /= 2
	case BorderRight:
		r.W /= 2
		r.X += r.W
	default:
		return ds.ContentRect()
	}
	return r
}
