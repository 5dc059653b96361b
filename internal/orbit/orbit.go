// Package orbit implements pointer-driven camera orbiting with spring easing.
package orbit

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultDistance = 800.0
	MinDistance     = 200.0
	MaxDistance     = 4000.0
	MaxPitch        = 89.0

	// Degrees of rotation per unit of pointer movement.
	DefaultSensitivity = 0.5
	zoomFactor         = 1.1

	angularFrequency = 6.0
	dampingRatio     = 1.0
)

type axis struct {
	pos, vel, target float64
}

// Orbit is a camera circling the origin. Drag and Zoom move the targets;
// Update eases the current values toward them once per frame.
type Orbit struct {
	Sensitivity float64

	spring   harmonica.Spring
	yaw      axis
	pitch    axis
	distance axis
}

// New returns an orbit at the default distance, eased for the given frame rate.
func New(fps int) *Orbit {
	if fps <= 0 {
		fps = 60
	}
	return &Orbit{
		Sensitivity: DefaultSensitivity,
		spring:      harmonica.NewSpring(harmonica.FPS(fps), angularFrequency, dampingRatio),
		distance:    axis{pos: DefaultDistance, target: DefaultDistance},
	}
}

// Drag rotates the target by pointer movement dx, dy.
func (o *Orbit) Drag(dx, dy float64) {
	o.yaw.target += dx * o.Sensitivity
	o.pitch.target = mgl64.Clamp(o.pitch.target+dy*o.Sensitivity, -MaxPitch, MaxPitch)
}

// Zoom moves the target distance; positive steps zoom in.
func (o *Orbit) Zoom(steps float64) {
	d := o.distance.target * math.Pow(zoomFactor, -steps)
	o.distance.target = mgl64.Clamp(d, MinDistance, MaxDistance)
}

// Reset snaps back to the default view.
func (o *Orbit) Reset() {
	o.yaw = axis{}
	o.pitch = axis{}
	o.distance = axis{pos: DefaultDistance, target: DefaultDistance}
}

// Update advances the springs by one frame.
func (o *Orbit) Update() {
	for _, a := range []*axis{&o.yaw, &o.pitch, &o.distance} {
		a.pos, a.vel = o.spring.Update(a.pos, a.vel, a.target)
	}
}

// Settle jumps the current values to their targets.
func (o *Orbit) Settle() {
	for _, a := range []*axis{&o.yaw, &o.pitch, &o.distance} {
		a.pos, a.vel = a.target, 0
	}
}

func (o *Orbit) Yaw() float64      { return o.yaw.pos }
func (o *Orbit) Pitch() float64    { return o.pitch.pos }
func (o *Orbit) Distance() float64 { return o.distance.pos }

// View returns the rotation applied to the scene before projection: pitch
// about X, then yaw about Y.
func (o *Orbit) View() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(mgl64.DegToRad(o.pitch.pos)).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(o.yaw.pos)))
}

// Eye returns the camera position in scene coordinates, looking at the
// origin. The unrotated eye sits on +Z.
func (o *Orbit) Eye() mgl64.Vec3 {
	eye := mgl64.Vec3{0, 0, o.distance.pos}
	return mgl64.TransformCoordinate(eye, o.View().Inv())
}
