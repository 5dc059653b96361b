package sketch_test

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cubesphere/internal/sketch"
)

var _ = Describe("Grid", func() {
	It("has 72 cells in outer-major order", func() {
		cells := sketch.Cells()
		Expect(cells).To(HaveLen(72))
		Expect(cells[0]).To(Equal(sketch.Cell{Outer: 0, Inner: 0}))
		Expect(cells[11]).To(Equal(sketch.Cell{Outer: 0, Inner: 330}))
		Expect(cells[12]).To(Equal(sketch.Cell{Outer: 30, Inner: 0}))
		Expect(cells[71]).To(Equal(sketch.Cell{Outer: 150, Inner: 330}))
	})

	It("fills every cell whose angle sum is a multiple of 60", func() {
		filled := 0
		for _, c := range sketch.Cells() {
			if c.Filled() {
				filled++
				Expect((c.Outer + c.Inner) % 60).To(Equal(0))
			}
		}
		// Six bands, six matching longitudes each.
		Expect(filled).To(Equal(36))
	})

	It("fills (0,0) and (30,30) but not (0,30)", func() {
		Expect(sketch.Cell{Outer: 0, Inner: 0}.Filled()).To(BeTrue())
		Expect(sketch.Cell{Outer: 30, Inner: 30}.Filled()).To(BeTrue())
		Expect(sketch.Cell{Outer: 0, Inner: 30}.Filled()).To(BeFalse())
	})
})

var _ = Describe("Generator", func() {
	var (
		st  *sketch.State
		gen *sketch.Generator
	)

	BeforeEach(func() {
		st = sketch.NewState(sketch.DefaultParams(), nil)
		gen = sketch.NewGenerator(st)
	})

	It("generates the first frame from the initial state", func() {
		f := gen.Generate()
		Expect(f.Index).To(Equal(0))
		Expect(f.Cubes).To(HaveLen(72))
		Expect(f.FilledCount()).To(Equal(36))

		first := f.Cubes[0]
		Expect(first.Cell).To(Equal(sketch.Cell{Outer: 0, Inner: 0}))
		Expect(first.Filled).To(BeTrue())
		Expect(first.Color.H).To(Equal(200.0))
		Expect(first.Color.S).To(BeNumerically("~", 202.5, 1e-9))
		Expect(first.Color.B).To(BeNumerically("~", 255, 1e-9))
		Expect(first.Size).To(Equal(50.0))

		c := f.Cubes[13]
		Expect(c.Cell).To(Equal(sketch.Cell{Outer: 30, Inner: 30}))
		Expect(c.Filled).To(BeTrue())
		Expect(c.Color.H).To(BeNumerically("~", 210, 1e-9))
	})

	It("advances the phase once per frame", func() {
		for i := 0; i < 5; i++ {
			f := gen.Generate()
			Expect(f.State.Phase).To(Equal(0.5 * float64(i)))
		}
		Expect(st.Phase()).To(Equal(2.5))
		Expect(gen.Frames()).To(Equal(5))
	})

	It("uses one cube size for a whole frame", func() {
		st.ResizeCubes()
		size := st.CubeSize()
		f := gen.Generate()
		for _, c := range f.Cubes {
			Expect(c.Size).To(Equal(size))
		}
	})

	It("places every cube center on the radius sphere", func() {
		gen.Generate()
		f := gen.Generate()
		for _, c := range f.Cubes {
			Expect(c.Center().Len()).To(BeNumerically("~", 200, 1e-9))
		}
	})

	It("places cell (0,0) straight along +Y before the scene rotation", func() {
		f := gen.Generate()
		local := f.Cubes[0].Local.Col(3).Vec3()
		Expect(local.ApproxEqualThreshold(mgl64.Vec3{0, 200, 0}, 1e-9)).To(BeTrue())
	})

	It("spins by half the phase", func() {
		for i := 0; i < 10; i++ {
			gen.Generate()
		}
		f := gen.Generate()
		Expect(f.Spin).To(Equal(2.5))
	})

	It("builds cube corners at half the edge from the center", func() {
		f := gen.Generate()
		c := f.Cubes[5]
		corners := c.Corners()
		for _, p := range corners {
			Expect(p.Sub(c.Center()).Len()).To(BeNumerically("~", 25*math.Sqrt(3), 1e-9))
		}
		for i := range sketch.CubeFaces {
			n := c.FaceNormal(corners, i)
			Expect(n.Len()).To(BeNumerically("~", 1, 1e-9))
			face := sketch.CubeFaces[i]
			mid := corners[face[0]].Add(corners[face[2]]).Mul(0.5)
			Expect(mid.Sub(c.Center()).Dot(n)).To(BeNumerically(">", 0))
		}
	})
})

var _ = Describe("Frame.Draw", func() {
	var (
		f   sketch.Frame
		rec *sketch.Recorder
	)

	BeforeEach(func() {
		st := sketch.NewState(sketch.DefaultParams(), nil)
		gen := sketch.NewGenerator(st)
		gen.Generate()
		f = gen.Generate()
		rec = sketch.NewRecorder()
		f.Draw(rec)
	})

	It("sets up the scene before the cells", func() {
		head := rec.Commands[:6]
		ops := make([]sketch.Op, len(head))
		for i, c := range head {
			ops[i] = c.Op
		}
		Expect(ops).To(Equal([]sketch.Op{
			sketch.OpBackground, sketch.OpAmbientLight, sketch.OpPointLight,
			sketch.OpOrbitControl, sketch.OpRotateX, sketch.OpRotateY,
		}))
		Expect(head[0].Args).To(Equal([]float64{340, 40, 255}))
		Expect(head[1].Args).To(Equal([]float64{100}))
		Expect(head[2].Args).To(Equal([]float64{255, 255, 255, 0, 0, 200}))
		Expect(head[4].Args).To(Equal([]float64{30}))
		Expect(head[5].Args).To(Equal([]float64{0.25}))
	})

	It("wraps each cell in a balanced push/pop", func() {
		Expect(rec.Count(sketch.OpPush)).To(Equal(72))
		Expect(rec.Count(sketch.OpPop)).To(Equal(72))
		Expect(rec.Count(sketch.OpBox)).To(Equal(72))
		Expect(rec.MaxDepth).To(Equal(1))
		Expect(rec.Depth()).To(Equal(0))
	})

	It("issues the per-cell primitives in order", func() {
		cell := rec.Commands[6:14]
		ops := make([]sketch.Op, len(cell))
		for i, c := range cell {
			ops[i] = c.Op
		}
		Expect(ops).To(Equal([]sketch.Op{
			sketch.OpPush, sketch.OpRotateZ, sketch.OpRotateX, sketch.OpStroke,
			sketch.OpFill, sketch.OpTranslate, sketch.OpBox, sketch.OpPop,
		}))
		Expect(cell[5].Args).To(Equal([]float64{0, 200, 0}))
	})

	It("matches the explicit cube matrices and styles", func() {
		Expect(rec.Boxes).To(HaveLen(len(f.Cubes)))
		for i, b := range rec.Boxes {
			c := f.Cubes[i]
			Expect(b.Transform.ApproxEqualThreshold(c.Model, 1e-9)).To(BeTrue())
			Expect(b.Filled).To(Equal(c.Filled))
			Expect(b.Stroke).To(Equal(c.Color))
			Expect(b.Size).To(Equal(c.Size))
		}
		Expect(rec.Count(sketch.OpFill)).To(Equal(36))
		Expect(rec.Count(sketch.OpNoFill)).To(Equal(36))
	})
})

var _ = Describe("Lighting", func() {
	l := sketch.DefaultParams().Lighting

	It("lights a face pointing at the light fully", func() {
		k := l.Intensity(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1})
		Expect(k).To(Equal(1.0))
	})

	It("leaves only ambient on a face turned away", func() {
		k := l.Intensity(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -1})
		Expect(k).To(BeNumerically("~", 100.0/255, 1e-12))
	})

	It("never brightens a color", func() {
		c := colorRGBA(200, 100, 50)
		shaded := l.Shade(c, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0})
		Expect(shaded.R).To(BeNumerically("<=", c.R))
		Expect(shaded.G).To(BeNumerically("<=", c.G))
		Expect(shaded.B).To(BeNumerically("<=", c.B))
		Expect(shaded.A).To(Equal(c.A))
	})
})
