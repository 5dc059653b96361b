package viz

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cubesphere/internal/orbit"
	"github.com/san-kum/cubesphere/internal/sketch"
)

const (
	width           = 80
	height          = 24
	panelWidth      = 34
	historyCapacity = 120
	// Terminal cells are coarse; scale pointer motion up.
	dragScale = 4.0
	keyOrbit  = 10.0
)

type TickMsg time.Time

// Options configure a terminal session.
type Options struct {
	FPS     int
	GIFPath string
	Theme   string
	Logger  *log.Logger
}

// Model contains animation state, visualization buffers, and UI context.
type Model struct {
	state     *sketch.State
	gen       *sketch.Generator
	frame     sketch.Frame
	orbit     *orbit.Orbit
	camera    *Camera
	canvas    *Canvas
	bg        color.RGBA
	fps       int
	running   bool
	showHelp  bool
	theme     Theme
	styles    styles
	hueHist   []float64
	recorder  *GIFRecorder
	recording bool
	gifPath   string
	dragging  bool
	lastX     int
	lastY     int
	logger    *log.Logger
}

// NewModel wires a generator to a terminal canvas.
func NewModel(gen *sketch.Generator, opts Options) *Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "cubesphere.gif"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	o := orbit.New(opts.FPS)
	theme := GetTheme(opts.Theme)
	st := gen.State()
	bg := st.Params().Background.RGBA()
	m := &Model{
		state:    st,
		gen:      gen,
		orbit:    o,
		camera:   NewCamera(o),
		canvas:   NewCanvas(width, height),
		bg:       bg,
		fps:      opts.FPS,
		running:  true,
		theme:    theme,
		styles:   newStyles(theme),
		hueHist:  make([]float64, 0, historyCapacity),
		recorder: NewGIFRecorder(bg, opts.FPS),
		gifPath:  opts.GIFPath,
		logger:   opts.Logger,
	}
	m.advance()
	return m
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the animation.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.orbit.Update()
		if m.running {
			m.advance()
		}
		m.draw()
		if m.recording {
			m.recorder.Capture(m.canvas)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c":
		if m.recording {
			m.stopRecording()
		}
		return tea.Quit
	case "c":
		m.setScheme(sketch.SchemeCool)
	case "w":
		m.setScheme(sketch.SchemeWarm)
	case "r":
		m.setScheme(sketch.SchemeRandom)
	case " ":
		m.state.ResizeCubes()
		m.logger.Debug("cubes resized", "size", m.state.CubeSize())
	case "p":
		m.running = !m.running
	case "0":
		m.orbit.Reset()
	case "left", "h":
		m.orbit.Drag(-keyOrbit, 0)
	case "right", "l":
		m.orbit.Drag(keyOrbit, 0)
	case "up", "k":
		m.orbit.Drag(0, -keyOrbit)
	case "down", "j":
		m.orbit.Drag(0, keyOrbit)
	case "+", "=":
		m.orbit.Zoom(1)
	case "-", "_":
		m.orbit.Zoom(-1)
	case "g":
		if m.recording {
			m.stopRecording()
		} else {
			m.recorder.Reset()
			m.recording = true
			m.logger.Info("recording started", "path", m.gifPath)
		}
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	return nil
}

func (m *Model) setScheme(s sketch.Scheme) {
	m.state.SetColorScheme(s)
	m.logger.Info("color scheme", "scheme", s, "base_hue", m.state.BaseHue())
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.orbit.Zoom(1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.orbit.Zoom(-1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging, m.lastX, m.lastY = true, msg.X, msg.Y
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.orbit.Drag(float64(msg.X-m.lastX)*dragScale, float64(msg.Y-m.lastY)*dragScale)
		m.lastX, m.lastY = msg.X, msg.Y
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	}
}

// resize fits the canvas to the terminal, leaving room for the panel.
func (m *Model) resize(w, h int) {
	cw := max(10, w-panelWidth-4)
	ch := max(5, h-1)
	if m.recording {
		// Frames of different sizes cannot share one GIF.
		m.logger.Warn("resize ends recording", "frames", m.recorder.Len())
		m.stopRecording()
	}
	m.canvas.Resize(cw, ch)
	m.recorder.Reset()
	m.logger.Debug("surface resized", "cols", cw, "rows", ch)
	m.draw()
}

func (m *Model) stopRecording() {
	m.recording = false
	if err := m.recorder.Save(m.gifPath); err != nil {
		m.logger.Error("save gif", "err", err)
		return
	}
	m.logger.Info("recording saved", "path", m.gifPath, "frames", m.recorder.Len())
}

// advance generates the next frame.
func (m *Model) advance() {
	m.frame = m.gen.Generate()
	m.hueHist = append(m.hueHist, m.frame.Cubes[0].Color.H)
	if len(m.hueHist) > historyCapacity {
		m.hueHist = m.hueHist[1:]
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	RenderFrame(m.canvas, m.frame, m.camera, m.frame.Params.Lighting)
}

// Frame returns the frame on screen.
func (m *Model) Frame() sketch.Frame { return m.frame }

// Canvas returns the drawing surface.
func (m *Model) Canvas() *Canvas { return m.canvas }

// View renders the TUI interface.
func (m *Model) View() string {
	st := m.styles
	snap := m.frame.State
	var s strings.Builder
	s.WriteString(st.header.Render("CUBESPHERE") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.recording {
		status += " " + st.rec.Render(fmt.Sprintf("● REC %d", m.recorder.Len()))
	}
	s.WriteString(status + "\n\n")

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", m.frame.Index))
	row("Phase", fmt.Sprintf("%.1f", snap.Phase))
	row("Scheme", st.active.Render(snap.Scheme.String()))
	row("Base hue", fmt.Sprintf("%.1f", snap.BaseHue))
	row("Cube size", fmt.Sprintf("%.1f", snap.CubeSize))
	row("Filled", fmt.Sprintf("%d/%d", m.frame.FilledCount(), len(m.frame.Cubes)))
	row("Orbit", fmt.Sprintf("%.0f° %.0f°", m.orbit.Yaw(), m.orbit.Pitch()))
	if len(m.frame.Cubes) > 0 {
		c := m.frame.Cubes[0]
		row("Cell 0,0", swatch(c.Color.RGBA())+fmt.Sprintf(" %.0f/%.0f/%.0f", c.Color.H, c.Color.S, c.Color.B))
	}

	if len(m.hueHist) > 1 {
		chart := asciigraph.Plot(m.hueHist, asciigraph.Height(5), asciigraph.Width(panelWidth-10), asciigraph.Caption("hue (0,0)"))
		s.WriteString("\n" + st.graph.Render(chart) + "\n")
	}

	s.WriteString(st.help.Render("C/W/R:Scheme SP:Resize\nP:Pause G:Record T:Theme\n←↑↓→:Orbit +/-:Zoom ?:Help Q:Quit"))
	panel := st.panel.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.Render(m.bg), panel)
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  C        - Cool color scheme        ║
║  W        - Warm color scheme        ║
║  R        - Random color scheme      ║
║  Space    - Resize cubes             ║
║  P        - Pause/Resume animation   ║
║  Arrows   - Orbit camera             ║
║  Drag     - Orbit camera (mouse)     ║
║  +/-      - Zoom                     ║
║  0        - Reset camera             ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the terminal session and blocks until it exits.
func Run(gen *sketch.Generator, opts Options) error {
	p := tea.NewProgram(NewModel(gen, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
