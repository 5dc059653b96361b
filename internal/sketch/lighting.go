package sketch

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PointLight is a light at a fixed world position. Only its brightness is
// used as intensity; the light is treated as white.
type PointLight struct {
	Color    HSB
	Position mgl64.Vec3
}

// Lighting is the ambient level plus one point light.
type Lighting struct {
	Ambient float64
	Point   PointLight
}

// Shade lights a surface color at pos with the given outward normal using
// ambient plus Lambert diffuse. The result never exceeds the unlit color.
func (l Lighting) Shade(c color.RGBA, pos, normal mgl64.Vec3) color.RGBA {
	k := l.Intensity(pos, normal)
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * k)),
		G: uint8(math.Round(float64(c.G) * k)),
		B: uint8(math.Round(float64(c.B) * k)),
		A: c.A,
	}
}

// Intensity returns the light factor in [0,1] for a surface point.
func (l Lighting) Intensity(pos, normal mgl64.Vec3) float64 {
	k := l.Ambient / 255
	toLight := l.Point.Position.Sub(pos)
	if toLight.Len() > 0 && normal.Len() > 0 {
		diffuse := toLight.Normalize().Dot(normal.Normalize())
		if diffuse > 0 {
			k += diffuse * mgl64.Clamp(l.Point.Color.B, 0, 255) / 255
		}
	}
	return mgl64.Clamp(k, 0, 1)
}
