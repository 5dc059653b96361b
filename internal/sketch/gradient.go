package sketch

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	satLow, satHigh = 150.0, 255.0
	briLow, briHigh = 150.0, 255.0
	// Hue offset across the latitude bands.
	hueSpread = 60.0
)

// HSB is a color with every channel on a 0..255 scale.
type HSB struct {
	H, S, B float64
}

// RGBA converts to display RGB. Hue is read on a circle of HueRange units,
// so 255 and 0 are the same hue; values above 255 are clamped first, as are
// saturation and brightness.
func (c HSB) RGBA() color.RGBA {
	h := mgl64.Clamp(c.H, 0, HueRange)
	s := mgl64.Clamp(c.S, 0, 255) / 255
	v := mgl64.Clamp(c.B, 0, 255) / 255
	deg := math.Mod(h*360/HueRange, 360)
	r, g, b := colorful.Hsv(deg, s, v).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex returns the #rrggbb form used by lipgloss and SVG.
func (c HSB) Hex() string {
	rgba := c.RGBA()
	return colorful.Color{R: float64(rgba.R) / 255, G: float64(rgba.G) / 255, B: float64(rgba.B) / 255}.Hex()
}

// LinearMap rescales v from [a,b] to [c,d] without clamping.
func LinearMap(v, a, b, c, d float64) float64 {
	return c + (v-a)*(d-c)/(b-a)
}

// Gradient maps a grid cell and the frame state to a color:
//
//	hue = (baseHue + map(outer, 0..180 -> 0..60) + phase) mod 255
//	sat = map(sin(inner + phase), -1..1 -> 150..255)
//	bri = map(cos(2*outer), -1..1 -> 150..255)
//
// Angles are in degrees.
func Gradient(s Snapshot, cell Cell) HSB {
	phase := ReducePhase(s.Phase)
	outer, inner := float64(cell.Outer), float64(cell.Inner)
	hue := WrapHue(s.BaseHue + LinearMap(outer, 0, OuterLimit, 0, hueSpread) + phase)
	sat := LinearMap(sinDeg(inner+phase), -1, 1, satLow, satHigh)
	bri := LinearMap(cosDeg(2*outer), -1, 1, briLow, briHigh)
	return HSB{H: hue, S: sat, B: bri}
}

// WrapHue reduces h into [0,255).
func WrapHue(h float64) float64 {
	h = math.Mod(h, HueRange)
	if h < 0 {
		h += HueRange
	}
	if h >= HueRange {
		h = 0
	}
	return h
}

// ReducePhase reduces the phase into [0,PhasePeriod).
func ReducePhase(p float64) float64 {
	p = math.Mod(p, PhasePeriod)
	if p < 0 {
		p += PhasePeriod
	}
	return p
}

func sinDeg(d float64) float64 { return math.Sin(mgl64.DegToRad(math.Mod(d, 360))) }
func cosDeg(d float64) float64 { return math.Cos(mgl64.DegToRad(math.Mod(d, 360))) }
