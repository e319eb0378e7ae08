// Command gen replays scripted docking scenarios, composes every viewport
// into one desktop image and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
//	go run ./doc/gen/ --scenarios my.yaml --only split-top
package main

import (
	"context"
	_ "embed"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/dock"
	"github.com/go-theft-auto/dock/backend/opengl"
	"github.com/go-theft-auto/dock/fontatlas"
)

// The hidden window is the desktop every scenario is composed onto.
const (
	desktopWidth  = 800
	desktopHeight = 600
)

//go:embed scenarios.yaml
var defaultScenarios []byte

func init() {
	runtime.LockOSThread()
}

// scenario is one screenshot: windows opened every frame and the input
// replayed over them.
type scenario struct {
	Name    string   `yaml:"name"`
	Windows []string `yaml:"windows"`
	Steps   []step   `yaml:"steps"`
}

// step is one frame of input, repeated Frames times.
type step struct {
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Down   bool    `yaml:"down"`
	Frames int     `yaml:"frames"`
}

func main() {
	cmd := &cli.Command{
		Name:  "gen",
		Usage: "render docking screenshots",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scenarios", Usage: "YAML scenario file (default: built-in)"},
			&cli.StringFlag{Name: "out", Value: filepath.Join("doc", "imgs"), Usage: "output directory"},
			&cli.StringFlag{Name: "only", Usage: "render a single scenario by name"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log layout changes"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			dock.SetVerbose(cmd.Bool("verbose"))
			shots, err := loadScenarios(cmd.String("scenarios"))
			if err != nil {
				return err
			}
			if only := cmd.String("only"); only != "" {
				shots = filterScenarios(shots, only)
				if len(shots) == 0 {
					return fmt.Errorf("no scenario named %q", only)
				}
			}
			return run(shots, cmd.String("out"))
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadScenarios(path string) ([]scenario, error) {
	data := defaultScenarios
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read scenarios: %w", err)
		}
	}
	var shots []scenario
	if err := yaml.Unmarshal(data, &shots); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	for i, s := range shots {
		if s.Name == "" || len(s.Windows) == 0 {
			return nil, fmt.Errorf("scenario %d: name and windows are required", i)
		}
	}
	return shots, nil
}

func filterScenarios(shots []scenario, name string) []scenario {
	for _, s := range shots {
		if s.Name == name {
			return []scenario{s}
		}
	}
	return nil
}

func run(shots []scenario, outDir string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(desktopWidth, desktopHeight, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	atlas, err := fontatlas.Default()
	if err != nil {
		return fmt.Errorf("font atlas: %w", err)
	}
	defer atlas.Close()

	platform, err := opengl.NewPlatform(window)
	if err != nil {
		return fmt.Errorf("platform: %w", err)
	}
	renderer, err := opengl.NewRenderer(platform, atlas)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, s := range shots {
		if err := capture(renderer, atlas, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.Name, err)
		}
		fmt.Printf("  %s.jpg\n", s.Name)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

// capture replays s on a fresh context whose viewports are all virtual, then
// draws them bottom to top onto the hidden desktop and reads it back.
func capture(renderer *opengl.Renderer, font dock.Font, s scenario, outDir string) error {
	ctx := dock.NewContext(dock.Vec2{X: desktopWidth, Y: desktopHeight}, dock.WithFont(font))

	frames := []step{{}}
	for _, st := range s.Steps {
		for n := max(st.Frames, 1); n > 0; n-- {
			frames = append(frames, st)
		}
	}

	for _, st := range frames {
		var in dock.InputState
		in.SetMousePos(st.X, st.Y)
		in.SetMouseButton(dock.MouseButtonLeft, st.Down)

		ctx.BeginFrame(in)
		for _, name := range s.Windows {
			if ctx.BeginWindow(name) {
				drawSample(ctx, name)
			}
			ctx.EndWindow()
		}
		ctx.EndFrame()
	}

	gl.Viewport(0, 0, desktopWidth, desktopHeight)
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	screen := dock.Vec2{X: desktopWidth, Y: desktopHeight}
	for _, vp := range ctx.Viewports() {
		if err := renderer.DrawViewport(vp, screen); err != nil {
			return err
		}
	}

	return writeJPEG(filepath.Join(outDir, s.Name+".jpg"), readPixels(desktopWidth, desktopHeight))
}

// drawSample fills a window with a few widgets so screenshots are not empty.
func drawSample(ctx *dock.Context, name string) {
	size := ctx.WindowDimensions()
	ctx.Text(fmt.Sprintf("%s  %.0fx%.0f", name, size.X, size.Y))
	ctx.Spacing(4)
	ctx.Button("Apply", dock.WithID(name+"/apply"))
	ctx.Button("Reset", dock.WithID(name+"/reset"))
}

// readPixels reads the back buffer into an image, flipped to top-down rows.
func readPixels(width, height int) *image.RGBA {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowLen
		copy(img.Pix[y*img.Stride:], pixels[src:src+rowLen])
	}
	return img
}

func writeJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
