package dock

// EndFrame composes every dockspace into its viewport's DrawList: the tab
// bar, one quad and one separator per tab, the content background and the
// visible window's geometry translated into place. The docking preview is
// drawn last, on top.
//
// Every window's scratch geometry is cleared afterwards.
func (ctx *Context) EndFrame() {
	assertf(ctx.CurrentWindow == NoWindow, "EndFrame with window %d still open", ctx.CurrentWindow)

	for _, vp := range ctx.viewports {
		vp.drawList.Clear()
	}

	for _, ds := range ctx.dockspaces {
		if ds.viewport == nil {
			continue
		}
		ctx.drawDockspace(ds, ds.viewport.drawList)
	}

	if hot := ctx.Drag.HotDockspace; hot != nil && ctx.Drag.Dragging() && hot.viewport != nil {
		ctx.drawDockPreview(hot, hot.viewport.drawList)
	}

	for _, vp := range ctx.viewports {
		vp.drawList.Finalize()
	}
}

// drawDockspace emits one dockspace in viewport-local coordinates.
func (ctx *Context) drawDockspace(ds *Dockspace, dl *DrawList) {
	style := &ctx.style

	bar := ds.TabBarRect()
	dl.AddRect(bar.X, bar.Y, bar.W, bar.H, style.TabBarColor)

	sep := style.TabSeparatorWidth
	for i, id := range ds.windows {
		r := ds.TabRect(i)
		amount := style.TabIdleBrighten
		if id == ctx.HotWindow || id == ctx.ActiveWindow {
			amount = style.TabHotBrighten
		}
		dl.AddRect(r.X, r.Y, r.W-sep, r.H, Brighten(style.TabColor, amount))
		dl.AddRect(r.X+r.W-sep, r.Y, sep, r.H, style.TabSeparatorColor)
		ctx.drawTabLabel(dl, ctx.windows[id].Name, r)
	}

	content := ds.ContentRect()
	dl.AddRect(content.X, content.Y, content.W, content.H, style.WindowBgColor)

	if w, ok := ctx.windows[ds.ActiveWindow]; ok && w.Enabled {
		dl.Append(w.Draw.List, content.Pos())
	}
	for _, id := range ds.windows {
		ctx.windows[id].Draw.List.Clear()
	}
}

// drawTabLabel centres a window name vertically in its tab. Without a font
// tabs are unlabelled.
func (ctx *Context) drawTabLabel(dl *DrawList, name string, tab Rect) {
	if ctx.font == nil {
		return
	}
	size := measureText(ctx.font, &ctx.style, name)
	x := tab.X + ctx.style.ButtonPadding
	y := tab.Y + (tab.H-size.Y)/2
	ctx.addText(dl, name, x, y, ctx.style.TextColor)
}

// drawDockPreview draws four corner guides marking the drop border of hot's
// content area, then highlights the area the dragged window would take.
func (ctx *Context) drawDockPreview(hot *Dockspace, dl *DrawList) {
	style := &ctx.style
	content := hot.ContentRect()

	inset := content.Size().Mul(0.5 * style.DropAreaWidth)
	x0, y0 := content.X+inset.X, content.Y+inset.Y
	x1, y1 := content.X+content.W-inset.X, content.Y+content.H-inset.Y
	arm := minf(x1-x0, y1-y0) * 0.25
	t := style.GuideThickness

	addCornerGuide(dl, Vec2{X: x0, Y: y0}, 1, 1, arm, t, style.GuideColor)
	addCornerGuide(dl, Vec2{X: x1, Y: y0}, -1, 1, arm, t, style.GuideColor)
	addCornerGuide(dl, Vec2{X: x1, Y: y1}, -1, -1, arm, t, style.GuideColor)
	addCornerGuide(dl, Vec2{X: x0, Y: y1}, 1, -1, arm, t, style.GuideColor)

	cursor := ctx.input.Cursor()
	var area Rect
	switch {
	case hot.ScreenContentRect().Contains(cursor):
		c := hot.ScreenContentRect()
		q := CheckCursorInBorderArea(cursor, c.Pos(), c.Size(), style.DropAreaWidth)
		area = borderPreview(hot, q)
	case hot.ScreenTabBarRect().Contains(cursor):
		area = content
	default:
		return
	}
	dl.AddRect(area.X, area.Y, area.W, area.H, style.PreviewColor)
}

// addCornerGuide emits an L-shaped dart at corner with arms of length arm
// running along (sx, 0) and (0, sy): four vertices, two triangles.
func addCornerGuide(dl *DrawList, corner Vec2, sx, sy, arm, thickness float32, color uint32) {
	tipX := corner.Add(Vec2{X: sx * arm})
	tipY := corner.Add(Vec2{Y: sy * arm})
	inner := corner.Add(Vec2{X: sx * thickness, Y: sy * thickness})
	dl.AddQuad(corner, tipX, inner, tipY, color)
}
