package dock

import "fmt"

// Renderer draws one viewport's composed geometry into its native window.
type Renderer interface {
	RenderViewport(vp *Viewport) error
}

// GUI ties a Context to a Renderer for the common frame loop.
type GUI struct {
	renderer Renderer
	ctx      *Context
}

// New creates a new GUI instance whose main viewport has the given size.
func New(renderer Renderer, mainSize Vec2, opts ...Option) *GUI {
	return &GUI{
		renderer: renderer,
		ctx:      NewContext(mainSize, opts...),
	}
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input InputState) *Context {
	g.ctx.BeginFrame(input)
	return g.ctx
}

// End finishes the frame and renders every viewport, bottom of the z-order
// first.
func (g *GUI) End() error {
	g.ctx.EndFrame()
	for _, vp := range g.ctx.viewports {
		if err := g.renderer.RenderViewport(vp); err != nil {
			return fmt.Errorf("render viewport %d: %w", vp.id, err)
		}
	}
	return nil
}

// Context returns the GUI context.
func (g *GUI) Context() *Context {
	return g.ctx
}
