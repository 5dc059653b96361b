package viz

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/cubesphere/internal/orbit"
	"github.com/san-kum/cubesphere/internal/sketch"
)

const (
	// DefaultFOV is the vertical field of view of a web canvas default camera.
	DefaultFOV = 60.0
	nearPlane  = 1.0
	// Edges of a cube are pulled this much toward the eye so outlines stay
	// on top of the cube's own faces.
	edgeBias = 0.5
)

// Camera manages 3D projection to a 2D plane. The view comes from an orbit;
// screen y grows downward, as does scene y.
type Camera struct {
	Orbit *orbit.Orbit
	FOV   float64
}

func NewCamera(o *orbit.Orbit) *Camera {
	if o == nil {
		o = orbit.New(60)
	}
	return &Camera{Orbit: o, FOV: DefaultFOV}
}

// Project converts scene coordinates to screen coordinates.
// Returns x, y, depth (distance in front of the eye), and visibility.
func (c *Camera) Project(p mgl64.Vec3, sw, sh int) (int, int, float64, bool) {
	v := mgl64.TransformCoordinate(p, c.Orbit.View())
	depth := c.Orbit.Distance() - v.Z()
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	f := (float64(sh) / 2) / math.Tan(mgl64.DegToRad(c.FOV)/2)
	sx := int(math.Round(float64(sw)/2 + v.X()*f/depth))
	sy := int(math.Round(float64(sh)/2 + v.Y()*f/depth))
	return sx, sy, depth, true
}

// Depth returns the distance of p in front of the eye.
func (c *Camera) Depth(p mgl64.Vec3) float64 {
	v := mgl64.TransformCoordinate(p, c.Orbit.View())
	return c.Orbit.Distance() - v.Z()
}

// Primitive is a projected polygon or line ready to paint.
type Primitive struct {
	Xs, Ys []int
	Depth  float64
	Color  color.RGBA
	Fill   bool
}

// ProjectFrame projects every cube of f into screen-space primitives sorted
// far to near (painter's algorithm). Filled cubes contribute their
// camera-facing faces, shaded by l; every cube contributes its 12 edges.
func ProjectFrame(f sketch.Frame, cam *Camera, l sketch.Lighting, sw, sh int) []Primitive {
	eye := cam.Orbit.Eye()
	prims := make([]Primitive, 0, len(f.Cubes)*18)
	for _, cube := range f.Cubes {
		corners := cube.Corners()
		var xs, ys [8]int
		var visible [8]bool
		for i, p := range corners {
			xs[i], ys[i], _, visible[i] = cam.Project(p, sw, sh)
		}
		base := cube.Color.RGBA()

		if cube.Filled {
			for fi, face := range sketch.CubeFaces {
				n := cube.FaceNormal(corners, fi)
				center := corners[face[0]].Add(corners[face[2]]).Mul(0.5)
				if eye.Sub(center).Dot(n) <= 0 {
					continue
				}
				if !(visible[face[0]] && visible[face[1]] && visible[face[2]] && visible[face[3]]) {
					continue
				}
				prims = append(prims, Primitive{
					Xs:    []int{xs[face[0]], xs[face[1]], xs[face[2]], xs[face[3]]},
					Ys:    []int{ys[face[0]], ys[face[1]], ys[face[2]], ys[face[3]]},
					Depth: cam.Depth(center),
					Color: l.Shade(base, center, n),
					Fill:  true,
				})
			}
		}

		for _, e := range sketch.CubeEdges {
			a, b := e[0], e[1]
			if !visible[a] || !visible[b] {
				continue
			}
			mid := corners[a].Add(corners[b]).Mul(0.5)
			prims = append(prims, Primitive{
				Xs:    []int{xs[a], xs[b]},
				Ys:    []int{ys[a], ys[b]},
				Depth: cam.Depth(mid) - edgeBias,
				Color: base,
			})
		}
	}
	sort.SliceStable(prims, func(i, j int) bool { return prims[i].Depth > prims[j].Depth })
	return prims
}

// RenderFrame draws the frame to the canvas.
func RenderFrame(c *Canvas, f sketch.Frame, cam *Camera, l sketch.Lighting) {
	if c == nil || cam == nil {
		return
	}
	sw, sh := c.PixelSize()
	for _, p := range ProjectFrame(f, cam, l, sw, sh) {
		c.Pen = p.Color
		if p.Fill {
			c.FillPolygon(p.Xs, p.Ys)
			continue
		}
		c.DrawLine(p.Xs[0], p.Ys[0], p.Xs[1], p.Ys[1])
	}
}
