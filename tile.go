package dock

// Axis is the direction a SplitTile lays out its children.
type Axis int

const (
	// AxisHorizontal places children side by side, splitting along X.
	AxisHorizontal Axis = iota
	// AxisVertical stacks children top to bottom, splitting along Y.
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// along returns the component of v on the axis.
func (a Axis) along(v Vec2) float32 {
	if a == AxisHorizontal {
		return v.X
	}
	return v.Y
}

// across returns the component of v on the other axis.
func (a Axis) across(v Vec2) float32 {
	if a == AxisHorizontal {
		return v.Y
	}
	return v.X
}

// vec builds a vector from an along and an across component.
func (a Axis) vec(along, across float32) Vec2 {
	if a == AxisHorizontal {
		return Vec2{X: along, Y: across}
	}
	return Vec2{X: across, Y: along}
}

// Tile is a node of a viewport's layout tree. The set of variants is closed:
// *RootTile, *SplitTile and *Dockspace.
//
// Positions are relative to the owning viewport's top-left corner.
type Tile interface {
	base() *tileBase
}

// tileBase is the geometry shared by every tile variant.
type tileBase struct {
	Pos  Vec2
	Size Vec2

	parent Tile // navigational only; ownership flows parent to child
}

func (t *tileBase) base() *tileBase { return t }

// Rect returns the tile's viewport-local rectangle.
func (t *tileBase) Rect() Rect { return RectFrom(t.Pos, t.Size) }

// Parent returns the tile holding this one, or nil when detached.
func (t *tileBase) Parent() Tile { return t.parent }

// RootTile is the top of a viewport's tree. It has zero or one child.
type RootTile struct {
	tileBase
	Child Tile
}

// SplitTile divides its extent among one or more children along Axis.
// A split is never left holding exactly one child.
type SplitTile struct {
	tileBase
	Axis     Axis
	Children []Tile
}

// indexOf returns the position of child in s.Children, or -1.
func (s *SplitTile) indexOf(child Tile) int {
	for i, c := range s.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// RecalculateSublayoutSize assigns sizes and positions to every tile below t
// from t's own, already assigned, size and position.
//
// A split scales its children's previous extents along the axis to fill the
// available space, preserving their ratios; if every child has zero extent
// the space is divided equally. The last child takes whatever remains so
// the children always cover the split exactly.
func RecalculateSublayoutSize(t Tile) {
	switch t := t.(type) {
	case *RootTile:
		if t.Child == nil {
			return
		}
		b := t.Child.base()
		b.Pos = Vec2{}
		b.Size = t.Size
		RecalculateSublayoutSize(t.Child)

	case *SplitTile:
		n := len(t.Children)
		if n == 0 {
			return
		}
		avail := t.Axis.along(t.Size)
		var sum float32
		for _, c := range t.Children {
			sum += t.Axis.along(c.base().Size)
		}
		scale := float32(1)
		if sum > 0 && absf(sum-avail) > avail*1e-5 {
			scale = avail / sum
		}

		var offset float32
		for i, c := range t.Children {
			b := c.base()
			var ext float32
			switch {
			case i == n-1:
				ext = avail - offset
			case sum == 0:
				ext = avail / float32(n)
			default:
				ext = t.Axis.along(b.Size) * scale
			}
			b.Pos = t.Pos.Add(t.Axis.vec(offset, 0))
			b.Size = t.Axis.vec(ext, t.Axis.across(t.Size))
			offset += ext
			RecalculateSublayoutSize(c)
		}

	case *Dockspace:
		t.ContentSize = Vec2{X: t.Size.X, Y: t.Size.Y - t.TabBarHeight}
	}
}

// replaceChild swaps old for repl under parent and fixes repl's parent link.
func replaceChild(parent, old, repl Tile) {
	switch p := parent.(type) {
	case *RootTile:
		assertf(p.Child == old, "replaceChild: tile is not the root's child")
		p.Child = repl
	case *SplitTile:
		i := p.indexOf(old)
		assertf(i >= 0, "replaceChild: tile is not a child of the split")
		p.Children[i] = repl
	default:
		assertf(false, "replaceChild: %T cannot hold children", parent)
	}
	repl.base().parent = parent
}

// ParentToRoot makes ds the sole child of vp's root tile. vp must not hold
// any dockspace yet.
func ParentToRoot(ds *Dockspace, vp *Viewport) {
	assertf(vp.Root.Child == nil && len(vp.dockspaces) == 0,
		"ParentToRoot: viewport %d already holds a dockspace", vp.id)
	if ds.parent != nil {
		Unparent(ds)
	}

	vp.Root.Child = ds
	ds.parent = vp.Root
	vp.attach(ds)
	RecalculateSublayoutSize(vp.Root)

	if verbose() {
		dockLogger.Debug("parent to root", "dockspace", ds.id, "viewport", vp.id, "size", ds.Size)
	}
}

// ParentVertical places newDs above (before) or below relativeTo.
func ParentVertical(newDs, relativeTo *Dockspace, before bool) {
	parentSplit(newDs, relativeTo, before, AxisVertical)
}

// ParentHorizontal places newDs left of (before) or right of relativeTo.
func ParentHorizontal(newDs, relativeTo *Dockspace, before bool) {
	parentSplit(newDs, relativeTo, before, AxisHorizontal)
}

// parentSplit inserts newDs next to rel along axis. newDs is detached from
// wherever it was first. The two siblings share rel's previous extent in
// halves.
func parentSplit(newDs, rel *Dockspace, before bool, axis Axis) {
	assertf(newDs != rel, "parent split: dockspace %d relative to itself", rel.id)
	assertf(rel.parent != nil && rel.viewport != nil, "parent split: dockspace %d is not placed", rel.id)
	if newDs.parent != nil {
		Unparent(newDs)
	}

	vp := rel.viewport
	total := axis.along(rel.Size)
	cross := axis.across(rel.Size)

	pair := func() []Tile {
		if before {
			return []Tile{newDs, rel}
		}
		return []Tile{rel, newDs}
	}

	wrap := func(parent Tile) {
		s := &SplitTile{Axis: axis}
		s.Pos = rel.Pos
		s.Size = rel.Size
		replaceChild(parent, rel, s)
		s.Children = pair()
		newDs.parent = s
		rel.parent = s
	}

	switch p := rel.parent.(type) {
	case *RootTile:
		wrap(p)
	case *SplitTile:
		if p.Axis != axis {
			wrap(p)
			break
		}
		i := p.indexOf(rel)
		if !before {
			i++
		}
		p.Children = append(p.Children, nil)
		copy(p.Children[i+1:], p.Children[i:])
		p.Children[i] = newDs
		newDs.parent = p
	default:
		assertf(false, "parent split: dockspace %d has a %T parent", rel.id, rel.parent)
	}

	half := total / 2
	rel.Size = axis.vec(half, cross)
	newDs.Size = axis.vec(total-half, cross)

	vp.attach(newDs)
	RecalculateSublayoutSize(vp.Root)

	if verbose() {
		dockLogger.Debug("parent split",
			"dockspace", newDs.id, "relative", rel.id, "axis", axis, "before", before)
	}
}

// Unparent removes ds from its viewport's tree. A split left with a single
// child is replaced by that child in the split's parent; the grandparent is
// not re-examined.
func Unparent(ds *Dockspace) {
	assertf(ds.parent != nil, "Unparent: dockspace %d has no parent", ds.id)

	switch p := ds.parent.(type) {
	case *RootTile:
		p.Child = nil
	case *SplitTile:
		i := p.indexOf(ds)
		assertf(i >= 0, "Unparent: dockspace %d missing from its split", ds.id)
		p.Children = append(p.Children[:i], p.Children[i+1:]...)
		if len(p.Children) == 1 {
			only := p.Children[0]
			replaceChild(p.parent, p, only)
			b := only.base()
			b.Pos = p.Pos
			b.Size = p.Size
			p.Children = nil
			p.parent = nil
			if verbose() {
				dockLogger.Debug("collapse split", "axis", p.Axis)
			}
		}
	}
	ds.parent = nil

	vp := ds.viewport
	if vp == nil {
		return
	}
	vp.detach(ds)
	RecalculateSublayoutSize(vp.Root)

	if verbose() {
		dockLogger.Debug("unparent", "dockspace", ds.id, "viewport", vp.id)
	}
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
