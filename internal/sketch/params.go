package sketch

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultRadius  = 200.0
	DefaultTilt    = 30.0
	DefaultAmbient = 100.0
)

var (
	// DefaultBackground is a light pastel pink.
	DefaultBackground = HSB{H: 340, S: 40, B: 255}
	DefaultLight      = PointLight{Color: HSB{H: 255, S: 255, B: 255}, Position: mgl64.Vec3{0, 0, 200}}
)

// Params are the fixed constants of the sketch. The defaults reproduce the
// classic look; config files may override them.
type Params struct {
	CubeSize   float64
	Scheme     Scheme
	Radius     float64
	PhaseStep  float64
	Tilt       float64
	Background HSB
	Lighting   Lighting
}

func DefaultParams() Params {
	return Params{
		CubeSize:   DefaultCubeSize,
		Scheme:     SchemeCool,
		Radius:     DefaultRadius,
		PhaseStep:  PhaseStep,
		Tilt:       DefaultTilt,
		Background: DefaultBackground,
		Lighting:   Lighting{Ambient: DefaultAmbient, Point: DefaultLight},
	}
}

// Validate reports the first parameter outside its valid range.
func (p Params) Validate() error {
	checks := []struct {
		name string
		v    float64
		ok   bool
	}{
		{"cube_size", p.CubeSize, p.CubeSize > 0},
		{"radius", p.Radius, p.Radius > 0},
		{"phase_step", p.PhaseStep, p.PhaseStep >= 0},
		{"tilt", p.Tilt, true},
		{"ambient", p.Lighting.Ambient, p.Lighting.Ambient >= 0 && p.Lighting.Ambient <= 255},
	}
	for _, c := range checks {
		if !c.ok || math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return &ParamError{Name: c.name, Value: c.v, Wrapped: ErrParameterBounds}
		}
	}
	if p.Scheme < SchemeCool || p.Scheme > SchemeRandom {
		return &ParamError{Name: "scheme", Value: float64(p.Scheme), Wrapped: ErrUnknownScheme}
	}
	return nil
}
