package viz

import (
	"image/gif"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/cubesphere/internal/sketch"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	gen := sketch.NewGenerator(sketch.NewState(sketch.DefaultParams(), rand.New(rand.NewSource(1))))
	return NewModel(gen, Options{FPS: 30, GIFPath: filepath.Join(t.TempDir(), "out.gif")})
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_SchemeKeys(t *testing.T) {
	m := newTestModel(t)
	tests := []struct {
		key    string
		scheme sketch.Scheme
	}{
		{"w", sketch.SchemeWarm},
		{"c", sketch.SchemeCool},
		{"r", sketch.SchemeRandom},
	}
	for _, tt := range tests {
		m.Update(key(tt.key))
		if got := m.state.Scheme(); got != tt.scheme {
			t.Errorf("key %q: scheme %v, want %v", tt.key, got, tt.scheme)
		}
	}
	if h := m.state.BaseHue(); h < 0 || h >= sketch.HueRange {
		t.Errorf("random base hue out of range: %v", h)
	}
}

func TestModel_ResizeKey(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 20; i++ {
		m.Update(key(" "))
		if s := m.state.CubeSize(); s < sketch.MinCubeSize || s > sketch.MaxCubeSize {
			t.Fatalf("cube size out of range: %v", s)
		}
	}
}

func TestModel_TickAdvances(t *testing.T) {
	m := newTestModel(t)
	if m.Frame().Index != 0 {
		t.Fatalf("expected first frame at construction, got %d", m.Frame().Index)
	}
	m.Update(TickMsg(time.Now()))
	m.Update(TickMsg(time.Now()))
	if m.Frame().Index != 2 || m.Frame().State.Phase != 1.0 {
		t.Errorf("after two ticks: frame %d phase %v", m.Frame().Index, m.Frame().State.Phase)
	}

	m.Update(key("p"))
	m.Update(TickMsg(time.Now()))
	if m.Frame().Index != 2 {
		t.Errorf("paused model advanced to frame %d", m.Frame().Index)
	}
}

func TestModel_WindowResize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Canvas().Width != 120-panelWidth-4 || m.Canvas().Height != 39 {
		t.Errorf("canvas %dx%d", m.Canvas().Width, m.Canvas().Height)
	}
	m.Update(tea.WindowSizeMsg{Width: 5, Height: 2})
	if m.Canvas().Width < 10 || m.Canvas().Height < 5 {
		t.Errorf("canvas shrank below minimum: %dx%d", m.Canvas().Width, m.Canvas().Height)
	}
}

func TestModel_OrbitKeys(t *testing.T) {
	m := newTestModel(t)
	m.Update(key("left"))
	m.orbit.Settle()
	if m.orbit.Yaw() >= 0 {
		t.Errorf("left should orbit to negative yaw, got %v", m.orbit.Yaw())
	}
	m.Update(key("0"))
	m.orbit.Settle()
	if m.orbit.Yaw() != 0 {
		t.Errorf("reset yaw = %v", m.orbit.Yaw())
	}
}

func TestModel_Recording(t *testing.T) {
	m := newTestModel(t)
	m.Update(key("g"))
	if !m.recording {
		t.Fatal("g should start recording")
	}
	m.Update(TickMsg(time.Now()))
	m.Update(TickMsg(time.Now()))
	if m.recorder.Len() != 2 {
		t.Errorf("recorded %d frames, want 2", m.recorder.Len())
	}
	m.Update(key("g"))
	if m.recording {
		t.Error("second g should stop recording")
	}
}

func TestModel_ResizeSavesRecording(t *testing.T) {
	m := newTestModel(t)
	m.Update(key("g"))
	m.Update(TickMsg(time.Now()))
	m.Update(TickMsg(time.Now()))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.recording {
		t.Error("resize should end the recording")
	}
	if m.recorder.Len() != 0 {
		t.Errorf("recorder should be empty after resize, has %d frames", m.recorder.Len())
	}
	f, err := os.Open(m.gifPath)
	if err != nil {
		t.Fatalf("recording was not saved: %v", err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != 2 {
		t.Errorf("saved %d frames, want 2", len(g.Image))
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t)
	m.Update(TickMsg(time.Now()))
	view := m.View()
	for _, want := range []string{"CUBESPHERE", "cool", "36/72"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	m.Update(key("?"))
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help not shown")
	}
}
