package sketch

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Cube is one draw instruction: a cube of edge Size whose center sits at the
// origin of Model.
type Cube struct {
	Cell   Cell
	Color  HSB
	Filled bool
	Size   float64
	// Local is Rz(outer) * Rx(inner) * T(0, radius, 0).
	Local mgl64.Mat4
	// Model is Scene * Local.
	Model mgl64.Mat4
}

// Center returns the cube center in scene coordinates.
func (c Cube) Center() mgl64.Vec3 {
	return c.Model.Col(3).Vec3()
}

var unitCorners = [8]mgl64.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// CubeEdges indexes pairs of Corners.
var CubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// CubeFaces indexes quads of Corners, wound counter-clockwise seen from outside.
var CubeFaces = [6][4]int{
	{0, 3, 2, 1}, {4, 5, 6, 7},
	{0, 1, 5, 4}, {2, 3, 7, 6},
	{0, 4, 7, 3}, {1, 2, 6, 5},
}

// Corners returns the eight cube corners in scene coordinates.
func (c Cube) Corners() [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	h := c.Size / 2
	for i, u := range unitCorners {
		out[i] = mgl64.TransformCoordinate(u.Mul(h), c.Model)
	}
	return out
}

// FaceNormal returns the outward normal of face i in scene coordinates.
func (c Cube) FaceNormal(corners [8]mgl64.Vec3, i int) mgl64.Vec3 {
	f := CubeFaces[i]
	a, b, d := corners[f[0]], corners[f[1]], corners[f[3]]
	return b.Sub(a).Cross(d.Sub(a)).Normalize()
}

// Frame is everything needed to draw one animation frame.
type Frame struct {
	Index  int
	State  Snapshot
	Params Params
	// Spin is the phase-driven rotation about Y, in degrees.
	Spin  float64
	Scene mgl64.Mat4
	Cubes []Cube
}

// FilledCount returns how many cubes are drawn solid.
func (f Frame) FilledCount() int {
	n := 0
	for _, c := range f.Cubes {
		if c.Filled {
			n++
		}
	}
	return n
}

// Generator produces frames from a State. It reads the state once per frame
// and advances the phase after all cells are computed.
type Generator struct {
	state  *State
	cells  []Cell
	frames int
}

func NewGenerator(st *State) *Generator {
	return &Generator{state: st, cells: Cells()}
}

func (g *Generator) State() *State { return g.state }

// Frames returns how many frames have been generated.
func (g *Generator) Frames() int { return g.frames }

// Generate computes the next frame and advances the phase.
func (g *Generator) Generate() Frame {
	snap := g.state.Snapshot()
	p := g.state.Params()
	spin := ReducePhase(snap.Phase) / 2
	scene := rotX(p.Tilt).Mul4(rotY(spin))
	translate := mgl64.Translate3D(0, p.Radius, 0)

	cubes := make([]Cube, len(g.cells))
	for i, cell := range g.cells {
		local := rotZ(float64(cell.Outer)).Mul4(rotX(float64(cell.Inner))).Mul4(translate)
		cubes[i] = Cube{
			Cell:   cell,
			Color:  Gradient(snap, cell),
			Filled: cell.Filled(),
			Size:   snap.CubeSize,
			Local:  local,
			Model:  scene.Mul4(local),
		}
	}

	f := Frame{Index: g.frames, State: snap, Params: p, Spin: spin, Scene: scene, Cubes: cubes}
	g.frames++
	g.state.AdvancePhase()
	return f
}

// Draw issues the frame through r's primitives. Each cube is wrapped in
// Push/Pop so its transform never leaks into the next one.
func (f Frame) Draw(r Renderer) {
	l := f.Params.Lighting
	r.Background(f.Params.Background)
	r.AmbientLight(l.Ambient)
	r.PointLight(l.Point.Color, l.Point.Position)
	r.OrbitControl()
	r.RotateX(f.Params.Tilt)
	r.RotateY(f.Spin)
	for _, c := range f.Cubes {
		r.Push()
		r.RotateZ(float64(c.Cell.Outer))
		r.RotateX(float64(c.Cell.Inner))
		r.Stroke(c.Color)
		if c.Filled {
			r.Fill(c.Color)
		} else {
			r.NoFill()
		}
		r.Translate(0, f.Params.Radius, 0)
		r.Box(c.Size)
		r.Pop()
	}
}

func rotX(deg float64) mgl64.Mat4 { return mgl64.HomogRotate3DX(mgl64.DegToRad(deg)) }
func rotY(deg float64) mgl64.Mat4 { return mgl64.HomogRotate3DY(mgl64.DegToRad(deg)) }
func rotZ(deg float64) mgl64.Mat4 { return mgl64.HomogRotate3DZ(mgl64.DegToRad(deg)) }
