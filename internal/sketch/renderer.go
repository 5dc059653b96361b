package sketch

import "github.com/go-gl/mathgl/mgl64"

// Renderer is the set of drawing primitives a backend provides. Angles are in
// degrees. Push and Pop save and restore the transform and style.
type Renderer interface {
	Background(c HSB)
	AmbientLight(level float64)
	PointLight(c HSB, pos mgl64.Vec3)
	// OrbitControl applies the backend's pointer-driven camera.
	OrbitControl()
	Push()
	Pop()
	RotateX(deg float64)
	RotateY(deg float64)
	RotateZ(deg float64)
	Translate(x, y, z float64)
	Stroke(c HSB)
	Fill(c HSB)
	NoFill()
	Box(size float64)
}
