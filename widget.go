package dock

// Button draws a bordered button with a label in the current window and
// returns true on the frame it is pressed.
//
// Only the visible tab of a dockspace is hit-tested; buttons of hidden tabs
// stay inactive.
func (ctx *Context) Button(label string, opts ...WidgetOption) bool {
	w := ctx.currentWindow()
	o := applyOptions(opts)

	id := HashString(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = HashString(optID)
	}

	// Calculate size
	style := &ctx.style
	inner := style.ButtonPadding + style.ButtonBorder
	textSize := measureText(ctx.font, style, label)
	size := Vec2{
		X: textSize.X + inner*2,
		Y: textSize.Y + inner*2,
	}
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		size.X = optWidth
	}
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		size.Y = optHeight
	}

	pos := w.Draw.DrawPos
	state := WidgetInactive
	if w.Visible() && w.dockspace.viewport != nil {
		ds := w.dockspace
		box := RectFrom(pos, size).Offset(ds.viewport.Pos.Add(ds.contentOrigin()))
		if box.Contains(ctx.input.Cursor()) {
			if ctx.input.MouseDown(MouseButtonLeft) {
				state = WidgetClicked
			} else {
				state = WidgetHot
			}
		}
	}
	prev := w.Widgets.Get(id)
	w.Widgets.Set(id, state)

	// State-based coloring
	bgColor := style.ButtonColor
	switch state {
	case WidgetHot:
		bgColor = style.ButtonHoveredColor
	case WidgetClicked:
		bgColor = style.ButtonActiveColor
	}

	dl := w.Draw.List
	b := style.ButtonBorder
	dl.AddRect(pos.X, pos.Y, size.X, size.Y, style.ButtonBorderColor)
	dl.AddRect(pos.X+b, pos.Y+b, size.X-2*b, size.Y-2*b, bgColor)

	// Draw text (centered in button)
	textX := pos.X + (size.X-textSize.X)/2
	textY := pos.Y + (size.Y-textSize.Y)/2
	ctx.addText(dl, label, textX, textY, style.TextColor)

	ctx.advance(w, size.Y)
	return state == WidgetClicked && prev != WidgetClicked
}

// Image draws a textured quad of the given size.
func (ctx *Context) Image(textureID uint32, size Vec2, opts ...WidgetOption) {
	w := ctx.currentWindow()
	o := applyOptions(opts)
	uv := GetOpt(o, OptUV)

	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		size.X = optWidth
	}
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		size.Y = optHeight
	}

	pos := w.Draw.DrawPos
	dl := w.Draw.List
	dl.SetTexture(textureID)
	dl.AddRectUV(pos.X, pos.Y, size.X, size.Y, uv.U0, uv.V0, uv.U1, uv.V1, GetOpt(o, OptTint))
	dl.SetTexture(0)

	ctx.advance(w, size.Y)
}

// Text draws a line of text.
func (ctx *Context) Text(text string) {
	w := ctx.currentWindow()
	size := measureText(ctx.font, &ctx.style, text)
	pos := w.Draw.DrawPos
	ctx.addText(w.Draw.List, text, pos.X, pos.Y, ctx.style.TextColor)
	ctx.advance(w, size.Y)
}

// Spacing moves the draw cursor down by h.
func (ctx *Context) Spacing(h float32) {
	w := ctx.currentWindow()
	w.Draw.DrawPos.Y += h
}

// advance moves the draw cursor below an item of height h.
func (ctx *Context) advance(w *Window, h float32) {
	w.Draw.DrawPos.Y += h + ctx.style.ItemSpacing
}

// addText emits glyph quads with the font texture, then switches back to
// the untextured batch. It draws nothing without a font.
func (ctx *Context) addText(dl *DrawList, text string, x, y float32, color uint32) {
	if ctx.font == nil || text == "" {
		return
	}
	quads := ctx.font.GlyphQuads(text, x, y)
	if len(quads) == 0 {
		return
	}
	dl.SetTexture(ctx.font.TextureID())
	dl.AddGlyphQuads(quads, color)
	dl.SetTexture(0)
}
