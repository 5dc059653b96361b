package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/cubesphere/internal/sketch"
)

const (
	buttonX, buttonY = 20, 20
	buttonW, buttonH = 90, 32
	buttonGap        = 10
)

// Button switches the color scheme when clicked.
type Button struct {
	Label  string
	Scheme sketch.Scheme
	X, Y   float32
	W, H   float32
}

// LayoutButtons places the Cool, Warm and Random buttons in a row.
func LayoutButtons() []Button {
	schemes := []sketch.Scheme{sketch.SchemeCool, sketch.SchemeWarm, sketch.SchemeRandom}
	labels := []string{"Cool", "Warm", "Random"}
	buttons := make([]Button, len(schemes))
	for i, s := range schemes {
		buttons[i] = Button{
			Label:  labels[i],
			Scheme: s,
			X:      float32(buttonX + i*(buttonW+buttonGap)),
			Y:      buttonY,
			W:      buttonW,
			H:      buttonH,
		}
	}
	return buttons
}

func (b Button) Contains(x, y float32) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// HitButton returns the button under (x, y), if any.
func HitButton(buttons []Button, x, y float32) (Button, bool) {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

func (b Button) Draw(active bool) {
	rect := rl.NewRectangle(b.X, b.Y, b.W, b.H)
	bg := ColPanel
	if active {
		bg = ColSelect
	}
	rl.DrawRectangleRounded(rect, 0.3, 6, bg)
	tw := rl.MeasureText(b.Label, 16)
	rl.DrawText(b.Label, int32(b.X)+(int32(b.W)-tw)/2, int32(b.Y)+8, 16, ColText)
}
