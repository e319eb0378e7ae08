package dock

import "sync"

// drawListPool provides reuse of DrawList buffers.
// Window and viewport lists are rebuilt every frame, so pooling keeps the
// per-frame allocation count flat as windows come and go.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint32, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates geometry for one window or one viewport.
// It batches primitives by texture; a new DrawCmd starts whenever the
// texture changes.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint32  // Index data, relative to each command's VertexOffset

	textureID    uint32 // Current texture for batching
	cmdOffset    uint32 // Vertex offset for current command
	idxCmdOffset uint32 // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// Empty reports whether the list holds no geometry.
func (dl *DrawList) Empty() bool {
	return len(dl.IdxBuffer) == 0
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	if len(dl.CmdBuffer) > 0 {
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// ensureCommand ensures there's an active draw command.
func (dl *DrawList) ensureCommand() {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
}

// addVertices adds vertices and returns the starting index.
func (dl *DrawList) addVertices(verts ...Vertex) uint32 {
	dl.ensureCommand()
	startIdx := uint32(len(dl.VtxBuffer)) - dl.cmdOffset
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

// addIndices adds indices (relative to current command's vertex offset).
func (dl *DrawList) addIndices(indices ...uint32) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddRect draws a filled rectangle as one 4-vertex/6-index quad.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}
	dl.AddRectUV(x, y, w, h, 0, 0, 0, 0, color)
}

// AddRectUV draws a textured rectangle. The texture is whatever SetTexture
// selected last.
func (dl *DrawList) AddRectUV(x, y, w, h, u0, v0, u1, v1 float32, color uint32) {
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x, y}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddQuad draws an arbitrary convex quad given its corners in winding order.
func (dl *DrawList) AddQuad(p0, p1, p2, p3 Vec2, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{p0.X, p0.Y}, Color: color},
		Vertex{Pos: [2]float32{p1.X, p1.Y}, Color: color},
		Vertex{Pos: [2]float32{p2.X, p2.Y}, Color: color},
		Vertex{Pos: [2]float32{p3.X, p3.Y}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// GlyphQuad represents a single character's rendering quad.
type GlyphQuad struct {
	X0, Y0 float32 // Screen coordinates (top-left)
	X1, Y1 float32 // Screen coordinates (bottom-right)
	U0, V0 float32 // Texture coordinates (top-left)
	U1, V1 float32 // Texture coordinates (bottom-right)
}

// AddGlyphQuads draws a slice of glyph quads with the specified color.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 || len(quads) == 0 {
		return
	}

	for _, q := range quads {
		vtxIdx := dl.addVertices(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
		dl.addIndices(vtxIdx, vtxIdx+1, vtxIdx+2, vtxIdx, vtxIdx+2, vtxIdx+3)
	}
}

// Append copies src onto the end of dl, translating every vertex position
// by offset. Index values are copied verbatim (they are relative to their
// command's VertexOffset); the copied commands are rebased by dl's prior
// vertex and index counts.
func (dl *DrawList) Append(src *DrawList, offset Vec2) {
	src.Finalize()
	if len(src.CmdBuffer) == 0 {
		return
	}

	// Close the command that is currently open in dl.
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	texture := dl.textureID
	vtxBase := uint32(len(dl.VtxBuffer))
	idxBase := uint32(len(dl.IdxBuffer))

	for _, v := range src.VtxBuffer {
		v.Pos[0] += offset.X
		v.Pos[1] += offset.Y
		dl.VtxBuffer = append(dl.VtxBuffer, v)
	}
	dl.IdxBuffer = append(dl.IdxBuffer, src.IdxBuffer...)
	for _, cmd := range src.CmdBuffer {
		cmd.VertexOffset += vtxBase
		cmd.IndexOffset += idxBase
		dl.CmdBuffer = append(dl.CmdBuffer, cmd)
	}

	// Continue batching on the last copied command, then return to the
	// texture dl was drawing with before the append.
	last := dl.CmdBuffer[len(dl.CmdBuffer)-1]
	dl.textureID = last.TextureID
	dl.cmdOffset = last.VertexOffset
	dl.idxCmdOffset = last.IndexOffset
	dl.SetTexture(texture)
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
	if n := len(dl.CmdBuffer); n > 0 {
		// Batching state must follow the surviving last command.
		dl.textureID = dl.CmdBuffer[n-1].TextureID
		dl.cmdOffset = dl.CmdBuffer[n-1].VertexOffset
		dl.idxCmdOffset = dl.CmdBuffer[n-1].IndexOffset
	}
}
