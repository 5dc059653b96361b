package viz

import (
	"image/color"
	"strings"
	"testing"
)

func TestCanvas_SetUnset(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Pen = color.RGBA{10, 20, 30, 255}
	c.Set(0, 0)
	c.Set(1, 3)
	if got := c.Grid[0][0]; got != brailleBlank+0x1+0x80 {
		t.Errorf("unexpected rune %U", got)
	}
	if c.Colors[0][0] != c.Pen {
		t.Errorf("cell color not set: %v", c.Colors[0][0])
	}
	if !c.IsSet(1, 3) || c.IsSet(1, 2) {
		t.Error("IsSet mismatch")
	}
	c.Unset(0, 0)
	if c.Grid[0][0] != brailleBlank+0x80 {
		t.Errorf("Unset failed: %U", c.Grid[0][0])
	}
}

func TestCanvas_OutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 8}, {100, 100}} {
		c.Set(p[0], p[1])
		c.Unset(p[0], p[1])
		if c.IsSet(p[0], p[1]) {
			t.Errorf("pixel %v should be out of bounds", p)
		}
	}
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Error("out-of-bounds writes changed the canvas")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(5, 2)
	c.DrawLine(0, 0, 9, 0)
	for x := 0; x < 10; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("pixel %d not set", x)
		}
	}
	c.Clear()
	c.DrawLine(0, 0, 7, 7)
	for i := 0; i < 8; i++ {
		if !c.IsSet(i, i) {
			t.Errorf("diagonal pixel %d not set", i)
		}
	}
}

func TestCanvas_FillPolygon(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillPolygon([]int{2, 12, 12, 2}, []int{2, 2, 12, 12})
	if !c.IsSet(7, 7) {
		t.Error("interior pixel not filled")
	}
	if c.IsSet(15, 7) || c.IsSet(7, 15) {
		t.Error("exterior pixel filled")
	}
	c.Clear()
	c.FillPolygon([]int{0, 1}, []int{0, 1})
	if c.IsSet(0, 0) {
		t.Error("degenerate polygon should draw nothing")
	}
}

func TestCanvas_Resize(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Set(0, 0)
	c.Resize(7, 2)
	if c.Width != 7 || c.Height != 2 || len(c.Grid) != 2 || len(c.Grid[0]) != 7 {
		t.Fatalf("bad resize: %dx%d", c.Width, c.Height)
	}
	if c.IsSet(0, 0) {
		t.Error("resize should clear")
	}
	c.Resize(0, -1)
	if c.Width != 1 || c.Height != 1 {
		t.Errorf("expected minimum 1x1, got %dx%d", c.Width, c.Height)
	}
}

func TestCanvas_Render(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Pen = color.RGBA{255, 0, 0, 255}
	c.Set(0, 0)
	out := c.Render(color.RGBA{255, 215, 215, 255})
	if !strings.Contains(out, string(rune(brailleBlank+0x1))) {
		t.Errorf("rendered output lost the dot: %q", out)
	}
	if strings.Count(out, "\n") != 0 {
		t.Errorf("single row should have no newline: %q", out)
	}
}
