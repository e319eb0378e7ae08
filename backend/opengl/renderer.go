// Package opengl provides the GLFW windowing and OpenGL 4.1 rendering
// collaborators for the dock package.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/dock"
	"github.com/go-theft-auto/dock/fontatlas"
)

// Renderer draws viewport draw lists into their GLFW windows.
type Renderer struct {
	platform *Platform

	shader       uint32
	vbo, ebo     uint32
	fontTex      uint32
	projLoc      int32
	texLoc       int32
	useTexLoc    int32
	isRGBATexLoc int32 // Uniform for RGBA vs alpha-only texture mode

	// VAOs are per context; buffers and textures are shared.
	vaos map[*glfw.Window]uint32

	// Track which textures are RGBA (vs alpha-only)
	rgbaTextures map[uint32]bool

	clearColor [4]float32
}

var _ dock.Renderer = (*Renderer)(nil)

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source.
// Alpha-only textures (the glyph atlas) keep R as coverage and take RGB
// from the vertex color; RGBA textures are modulated by it.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D tex;
uniform bool useTexture;
uniform bool isRGBATexture;

void main() {
    if (useTexture) {
        vec4 texColor = texture(tex, TexCoord);
        if (isRGBATexture) {
            FragColor = texColor * Color;
        } else {
            FragColor = vec4(Color.rgb, Color.a * texColor.r);
        }
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer creates the shared GL objects with the main window's context
// current and uploads the glyph atlas, if any. The atlas learns its texture
// id through SetTextureID.
func NewRenderer(p *Platform, atlas *fontatlas.Atlas) (*Renderer, error) {
	r := &Renderer{
		platform:     p,
		vaos:         make(map[*glfw.Window]uint32),
		rgbaTextures: make(map[uint32]bool),
		clearColor:   [4]float32{0.08, 0.08, 0.09, 1},
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.isRGBATexLoc = gl.GetUniformLocation(r.shader, gl.Str("isRGBATexture\x00"))

	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	if atlas != nil {
		r.fontTex = uploadAlpha(atlas.Image())
		atlas.SetTextureID(r.fontTex)
	}

	p.onDestroy = r.forget
	return r, nil
}

// SetClearColor sets the background every viewport is cleared to.
func (r *Renderer) SetClearColor(c uint32) {
	cr, cg, cb, ca := dock.UnpackRGBA(c)
	r.clearColor = [4]float32{float32(cr) / 255, float32(cg) / 255, float32(cb) / 255, float32(ca) / 255}
}

// CreateTexture uploads an RGBA image for use with Context.Image.
func (r *Renderer) CreateTexture(img *image.RGBA) uint32 {
	b := img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.rgbaTextures[tex] = true
	return tex
}

// DeleteTexture releases a texture made by CreateTexture.
func (r *Renderer) DeleteTexture(tex uint32) {
	delete(r.rgbaTextures, tex)
	gl.DeleteTextures(1, &tex)
}

// RenderViewport draws one viewport's composed geometry and presents it.
// Virtual viewports have no window and are skipped.
func (r *Renderer) RenderViewport(vp *dock.Viewport) error {
	w, ok := r.platform.lookup(vp.Native())
	if !ok {
		return nil
	}
	w.MakeContextCurrent()
	vao := r.vaoFor(w)

	fbw, fbh := w.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if dl := vp.DrawList(); dl != nil && len(dl.VtxBuffer) > 0 {
		// Y grows downwards, in window units; the GL viewport maps them onto
		// framebuffer pixels.
		r.draw(vao, dl, mgl32.Ortho2D(0, vp.Size.X, vp.Size.Y, 0))
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("draw viewport %d: gl error 0x%x", vp.ID(), code)
	}
	w.SwapBuffers()
	return nil
}

// DrawViewport draws vp at its screen position into the main window's
// current framebuffer, which spans screen units from the origin. Nothing is
// cleared or presented; tools use it to compose virtual viewports into one
// image.
func (r *Renderer) DrawViewport(vp *dock.Viewport, screen dock.Vec2) error {
	main := r.platform.main.w
	main.MakeContextCurrent()
	vao := r.vaoFor(main)

	if dl := vp.DrawList(); dl != nil && len(dl.VtxBuffer) > 0 {
		p := vp.Pos
		r.draw(vao, dl, mgl32.Ortho2D(-p.X, screen.X-p.X, screen.Y-p.Y, -p.Y))
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("draw viewport %d: gl error 0x%x", vp.ID(), code)
	}
	return nil
}

func (r *Renderer) draw(vao uint32, dl *dock.DrawList, proj mgl32.Mat4) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(dock.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*4,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
			if r.rgbaTextures[cmd.TextureID] {
				gl.Uniform1i(r.isRGBATexLoc, 1)
			} else {
				gl.Uniform1i(r.isRGBATexLoc, 0)
			}
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
			gl.Uniform1i(r.isRGBATexLoc, 0)
		}

		// Indices are relative to the command's first vertex.
		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_INT,
			uintptr(cmd.IndexOffset)*4,
			int32(cmd.VertexOffset),
		)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// vaoFor returns the vertex array of w's context, creating it on first use.
// The context must be current.
func (r *Renderer) vaoFor(w *glfw.Window) uint32 {
	if vao, ok := r.vaos[w]; ok {
		return vao
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats) + Color (1 uint32)
	stride := int32(unsafe.Sizeof(dock.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(dock.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(dock.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	// Only the main window waits for vsync, once per frame.
	if w != r.platform.main.w {
		glfw.SwapInterval(0)
	}

	r.vaos[w] = vao
	return vao
}

// forget drops w's vertex array. It runs with w's context current.
func (r *Renderer) forget(w *glfw.Window) {
	if vao, ok := r.vaos[w]; ok {
		gl.DeleteVertexArrays(1, &vao)
		delete(r.vaos, w)
	}
}

// Delete releases OpenGL resources. The main window's context must be
// current.
func (r *Renderer) Delete() {
	main := r.platform.main.w
	for w, vao := range r.vaos {
		w.MakeContextCurrent()
		gl.DeleteVertexArrays(1, &vao)
	}
	clear(r.vaos)
	main.MakeContextCurrent()

	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	for tex := range r.rgbaTextures {
		gl.DeleteTextures(1, &tex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
	r.platform.onDestroy = nil
}

// uploadAlpha uploads a single-channel image as a GL_RED texture.
func uploadAlpha(img *image.Alpha) uint32 {
	b := img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// compileShader compiles one shader stage.
func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", string(log))
	}
	return shader, nil
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}
	return program, nil
}
