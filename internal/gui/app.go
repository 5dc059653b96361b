package gui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/cubesphere/internal/orbit"
	"github.com/san-kum/cubesphere/internal/sketch"
)

// Theme Colors
var (
	ColPanel   = rl.NewColor(255, 255, 255, 170)
	ColText    = rl.NewColor(80, 60, 70, 255)
	ColTextDim = rl.NewColor(140, 120, 130, 255)
	ColSelect  = rl.NewColor(255, 143, 177, 255)
)

// worldScale shrinks scene units so the sphere sits well inside raylib's
// default clip range.
const worldScale = 0.05

// Options configure a window session.
type Options struct {
	Width, Height int
	Title         string
	FPS           int
	Logger        *log.Logger
}

type App struct {
	Gen      *sketch.Generator
	State    *sketch.State
	Orbit    *orbit.Orbit
	Camera   rl.Camera3D
	Frame    sketch.Frame
	Buttons  []Button
	Running  bool
	Logger   *log.Logger
	dragging bool
}

// initWindow opens a resizable window and sets the target frame rate.
func initWindow(opts Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)
}

func NewApp(gen *sketch.Generator, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &App{
		Gen:   gen,
		State: gen.State(),
		Orbit: orbit.New(opts.FPS),
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, orbit.DefaultDistance*worldScale),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			60.0,
			rl.CameraPerspective,
		),
		Buttons: LayoutButtons(),
		Running: true,
		Logger:  opts.Logger,
	}
}

// Run opens the window and blocks until it is closed.
func Run(gen *sketch.Generator, opts Options) {
	initWindow(opts)
	defer rl.CloseWindow()
	app := NewApp(gen, opts)
	app.Logger.Info("window opened", "width", opts.Width, "height", opts.Height, "fps", opts.FPS)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input and generates the next frame. It returns true when
// the user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return true
	}
	if rl.IsWindowResized() {
		a.Logger.Info("surface resized", "width", rl.GetScreenWidth(), "height", rl.GetScreenHeight())
	}

	switch {
	case rl.IsKeyPressed(rl.KeyC):
		a.setScheme(sketch.SchemeCool)
	case rl.IsKeyPressed(rl.KeyW):
		a.setScheme(sketch.SchemeWarm)
	case rl.IsKeyPressed(rl.KeyR):
		a.setScheme(sketch.SchemeRandom)
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.State.ResizeCubes()
		a.Logger.Debug("cubes resized", "size", a.State.CubeSize())
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.Running = !a.Running
	}

	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if b, ok := HitButton(a.Buttons, mouse.X, mouse.Y); ok {
			a.setScheme(b.Scheme)
		} else {
			a.dragging = true
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.dragging = false
	}
	if a.dragging {
		d := rl.GetMouseDelta()
		a.Orbit.Drag(float64(d.X), float64(d.Y))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Orbit.Zoom(float64(wheel))
	}
	a.Orbit.Update()
	a.Camera.Position = toVector3(a.Orbit.Eye().Mul(worldScale))

	if a.Running || len(a.Frame.Cubes) == 0 {
		a.Frame = a.Gen.Generate()
	}
	return false
}

func (a *App) setScheme(s sketch.Scheme) {
	a.State.SetColorScheme(s)
	a.Logger.Info("color scheme", "scheme", s, "base_hue", a.State.BaseHue())
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.BeginMode3D(a.Camera)
	a.Frame.Draw(newRenderer(worldScale))
	rl.EndMode3D()
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	for _, b := range a.Buttons {
		b.Draw(b.Scheme == a.State.Scheme())
	}

	snap := a.Frame.State
	x, y := int32(20), int32(rl.GetScreenHeight()-70)
	rl.DrawRectangle(x-10, y-10, 360, 64, ColPanel)
	rl.DrawText(fmt.Sprintf("phase %.1f  hue %.1f  size %.1f", snap.Phase, snap.BaseHue, snap.CubeSize), x, y, 16, ColText)
	rl.DrawText("[C/W/R] SCHEME  [SPACE] RESIZE  [P] PAUSE  [Q] QUIT", x, y+24, 12, ColTextDim)

	status := "RUNNING"
	if !a.Running {
		status = "PAUSED"
	}
	rl.DrawText(fmt.Sprintf("%s  %d FPS", status, rl.GetFPS()), int32(rl.GetScreenWidth())-160, 20, 16, ColText)
}
