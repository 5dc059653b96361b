package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/cubesphere/internal/sketch"
)

// renderer draws sketch primitives with rlgl. raylib has no fixed-function
// lights, so a Recorder mirrors the transform stack and fills are shaded in
// software from the cube position.
type renderer struct {
	scale    float32
	rec      *sketch.Recorder
	lighting sketch.Lighting
}

func newRenderer(scale float64) *renderer {
	return &renderer{scale: float32(scale), rec: sketch.NewRecorder()}
}

func (r *renderer) Background(c sketch.HSB) {
	r.rec.Background(c)
	rl.ClearBackground(c.RGBA())
}

func (r *renderer) AmbientLight(level float64) {
	r.rec.AmbientLight(level)
	r.lighting.Ambient = level
}

func (r *renderer) PointLight(c sketch.HSB, pos mgl64.Vec3) {
	r.rec.PointLight(c, pos)
	r.lighting.Point = sketch.PointLight{Color: c, Position: pos}
}

// OrbitControl is a no-op here: the orbit view is already in the camera
// passed to BeginMode3D.
func (r *renderer) OrbitControl() { r.rec.OrbitControl() }

func (r *renderer) Push() {
	r.rec.Push()
	rl.PushMatrix()
}

func (r *renderer) Pop() {
	r.rec.Pop()
	rl.PopMatrix()
}

func (r *renderer) RotateX(deg float64) {
	r.rec.RotateX(deg)
	rl.Rotatef(float32(deg), 1, 0, 0)
}

func (r *renderer) RotateY(deg float64) {
	r.rec.RotateY(deg)
	rl.Rotatef(float32(deg), 0, 1, 0)
}

func (r *renderer) RotateZ(deg float64) {
	r.rec.RotateZ(deg)
	rl.Rotatef(float32(deg), 0, 0, 1)
}

func (r *renderer) Translate(x, y, z float64) {
	r.rec.Translate(x, y, z)
	rl.Translatef(float32(x)*r.scale, float32(y)*r.scale, float32(z)*r.scale)
}

func (r *renderer) Stroke(c sketch.HSB) { r.rec.Stroke(c) }
func (r *renderer) Fill(c sketch.HSB)   { r.rec.Fill(c) }
func (r *renderer) NoFill()             { r.rec.NoFill() }

func (r *renderer) Box(size float64) {
	r.rec.Box(size)
	b := r.rec.Boxes[len(r.rec.Boxes)-1]
	s := float32(size) * r.scale
	origin := rl.NewVector3(0, 0, 0)
	if b.Filled {
		center := b.Transform.Col(3).Vec3()
		rl.DrawCube(origin, s, s, s, shadeBox(r.lighting, b.Fill.RGBA(), center))
	}
	rl.DrawCubeWires(origin, s, s, s, b.Stroke.RGBA())
}

// shadeBox lights a whole cube by the outward direction of its center.
func shadeBox(l sketch.Lighting, c color.RGBA, center mgl64.Vec3) color.RGBA {
	return l.Shade(c, center, center)
}

func toVector3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}
