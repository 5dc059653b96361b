package sketch

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Op identifies a recorded primitive.
type Op int

const (
	OpBackground Op = iota
	OpAmbientLight
	OpPointLight
	OpOrbitControl
	OpPush
	OpPop
	OpRotateX
	OpRotateY
	OpRotateZ
	OpTranslate
	OpStroke
	OpFill
	OpNoFill
	OpBox
)

var opNames = [...]string{
	"background", "ambientLight", "pointLight", "orbitControl", "push", "pop",
	"rotateX", "rotateY", "rotateZ", "translate", "stroke", "fill", "noFill", "box",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Command is one primitive call and its numeric arguments.
type Command struct {
	Op   Op
	Args []float64
}

func (c Command) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprintf("%g", a)
	}
	return c.Op.String() + "(" + strings.Join(parts, ", ") + ")"
}

// RecordedBox is a Box call with the transform and style in effect.
type RecordedBox struct {
	Transform mgl64.Mat4
	Size      float64
	Stroke    HSB
	Fill      HSB
	Filled    bool
}

type recorderStyle struct {
	transform mgl64.Mat4
	stroke    HSB
	fill      HSB
	filled    bool
}

// Recorder is a Renderer that keeps every call and tracks the transform
// stack, so draw output can be inspected without a display.
type Recorder struct {
	Commands []Command
	Boxes    []RecordedBox
	MaxDepth int

	cur   recorderStyle
	stack []recorderStyle
}

func NewRecorder() *Recorder {
	return &Recorder{cur: recorderStyle{transform: mgl64.Ident4(), filled: true}}
}

// Depth returns the current Push nesting.
func (r *Recorder) Depth() int { return len(r.stack) }

func (r *Recorder) record(op Op, args ...float64) {
	r.Commands = append(r.Commands, Command{Op: op, Args: args})
}

func (r *Recorder) Background(c HSB)       { r.record(OpBackground, c.H, c.S, c.B) }
func (r *Recorder) AmbientLight(l float64) { r.record(OpAmbientLight, l) }
func (r *Recorder) PointLight(c HSB, pos mgl64.Vec3) {
	r.record(OpPointLight, c.H, c.S, c.B, pos.X(), pos.Y(), pos.Z())
}

// OrbitControl is recorded but leaves the transform alone.
func (r *Recorder) OrbitControl() { r.record(OpOrbitControl) }

func (r *Recorder) Push() {
	r.record(OpPush)
	r.stack = append(r.stack, r.cur)
	if len(r.stack) > r.MaxDepth {
		r.MaxDepth = len(r.stack)
	}
}

// Pop on an empty stack is recorded and otherwise ignored.
func (r *Recorder) Pop() {
	r.record(OpPop)
	if n := len(r.stack); n > 0 {
		r.cur = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
}

func (r *Recorder) RotateX(deg float64) {
	r.record(OpRotateX, deg)
	r.cur.transform = r.cur.transform.Mul4(rotX(deg))
}

func (r *Recorder) RotateY(deg float64) {
	r.record(OpRotateY, deg)
	r.cur.transform = r.cur.transform.Mul4(rotY(deg))
}

func (r *Recorder) RotateZ(deg float64) {
	r.record(OpRotateZ, deg)
	r.cur.transform = r.cur.transform.Mul4(rotZ(deg))
}

func (r *Recorder) Translate(x, y, z float64) {
	r.record(OpTranslate, x, y, z)
	r.cur.transform = r.cur.transform.Mul4(mgl64.Translate3D(x, y, z))
}

func (r *Recorder) Stroke(c HSB) {
	r.record(OpStroke, c.H, c.S, c.B)
	r.cur.stroke = c
}

func (r *Recorder) Fill(c HSB) {
	r.record(OpFill, c.H, c.S, c.B)
	r.cur.fill, r.cur.filled = c, true
}

func (r *Recorder) NoFill() {
	r.record(OpNoFill)
	r.cur.filled = false
}

func (r *Recorder) Box(size float64) {
	r.record(OpBox, size)
	r.Boxes = append(r.Boxes, RecordedBox{
		Transform: r.cur.transform,
		Size:      size,
		Stroke:    r.cur.stroke,
		Fill:      r.cur.fill,
		Filled:    r.cur.filled,
	})
}

// Count returns how many commands with op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}
