// Example demonstrates docking across several native windows.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The first window docks into the main GLFW window; the others float in
// windows of their own. Drag a tab by its title to move it: drop it on the
// edge of another window's content to split, on its centre or tab bar to
// join it as a tab, or on the desktop to float it.
package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/urfave/cli/v3"

	"github.com/go-theft-auto/dock"
	"github.com/go-theft-auto/dock/backend/opengl"
	"github.com/go-theft-auto/dock/fontatlas"
)

const windowTitle = "dock example"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cmd := &cli.Command{
		Name:  "example",
		Usage: "multi-viewport docking demo",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "size", Value: "1280x720", Usage: "main window size, WxH"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log layout changes"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			var w, h int
			if _, err := fmt.Sscanf(cmd.String("size"), "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
				return fmt.Errorf("invalid --size %q", cmd.String("size"))
			}
			dock.SetVerbose(cmd.Bool("verbose"))
			return run(w, h)
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(width, height int) error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
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

	renderer.SetClearColor(dock.RGBA(24, 24, 28, 255))
	checker := renderer.CreateTexture(checkerboard(64, 8))
	defer renderer.DeleteTexture(checker)

	ui := dock.New(renderer, dock.Vec2{X: float32(width), Y: float32(height)},
		dock.WithWindowing(platform),
		dock.WithMainWindow(platform.Main()),
		dock.WithFont(atlas),
	)

	// Application state.
	clickCount := 0
	var log []string

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()
		ctx := ui.Begin(platform.Input())

		if ctx.BeginWindow("Scene") {
			size := ctx.WindowDimensions()
			ctx.Text(fmt.Sprintf("Viewport %.0fx%.0f", size.X, size.Y))
			ctx.Image(checker, dock.Vec2{X: 256, Y: 256}, dock.WithTint(dock.RGBA(200, 220, 255, 255)))
		}
		ctx.EndWindow()

		if ctx.BeginWindow("Inspector") {
			if ctx.Button(fmt.Sprintf("Click me (%d)", clickCount)) {
				clickCount++
				log = append(log, fmt.Sprintf("clicked %d times", clickCount))
			}
			ctx.Spacing(8)
			if ctx.Button("Clear log", dock.WithWidth(160)) {
				log = log[:0]
			}
			if ctx.IsWindowHot() {
				ctx.Text("hot")
			}
		}
		ctx.EndWindow()

		if ctx.BeginWindow("Console") {
			start := max(len(log)-12, 0)
			for _, line := range log[start:] {
				ctx.Text(line)
			}
		}
		ctx.EndWindow()

		if ctx.BeginWindow("Layout") {
			ctx.Text(fmt.Sprintf("%d viewports, %d dockspaces", len(ctx.Viewports()), len(ctx.Dockspaces())))
			if ctx.IsWindowActive() {
				ctx.Text("active")
			}
		}
		ctx.EndWindow()

		// End the GUI frame and render every viewport.
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
	}

	return nil
}

// checkerboard builds a size x size RGBA image of cell x cell squares.
func checkerboard(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	light := color.RGBA{R: 220, G: 220, B: 220, A: 255}
	dark := color.RGBA{R: 90, G: 90, B: 90, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}
