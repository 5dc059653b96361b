package sketch_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cubesphere/internal/sketch"
)

var _ = Describe("LinearMap", func() {
	It("maps the domain ends onto the range ends", func() {
		Expect(sketch.LinearMap(0, 0, 180, 0, 60)).To(Equal(0.0))
		Expect(sketch.LinearMap(180, 0, 180, 0, 60)).To(Equal(60.0))
		Expect(sketch.LinearMap(30, 0, 180, 0, 60)).To(Equal(10.0))
		Expect(sketch.LinearMap(0, -1, 1, 150, 255)).To(Equal(202.5))
	})

	It("does not clamp", func() {
		Expect(sketch.LinearMap(2, -1, 1, 150, 255)).To(Equal(307.5))
	})
})

var _ = Describe("Gradient", func() {
	start := sketch.Snapshot{Phase: 0, CubeSize: 50, BaseHue: 200}

	It("colors cell (0,0) of the first frame", func() {
		c := sketch.Gradient(start, sketch.Cell{Outer: 0, Inner: 0})
		Expect(c.H).To(Equal(200.0))
		Expect(c.S).To(BeNumerically("~", 202.5, 1e-9))
		Expect(c.B).To(BeNumerically("~", 255, 1e-9))
	})

	It("offsets the hue by band for cell (30,30)", func() {
		c := sketch.Gradient(start, sketch.Cell{Outer: 30, Inner: 30})
		Expect(c.H).To(BeNumerically("~", 210, 1e-9))
	})

	It("wraps the hue at 255", func() {
		s := start
		s.Phase = 60
		c := sketch.Gradient(s, sketch.Cell{Outer: 0, Inner: 0})
		Expect(c.H).To(BeNumerically("~", 5, 1e-9))
	})

	It("stays in range for any phase and base hue", func() {
		rng := rand.New(rand.NewSource(3))
		phases := []float64{0, 0.5, -0.5, -1e6, 1e6, 1e12, math.MaxInt32, sketch.PhasePeriod, -sketch.PhasePeriod}
		for i := 0; i < 2000; i++ {
			phases = append(phases, (rng.Float64()-0.5)*1e9)
		}
		for _, phase := range phases {
			base := rng.Float64() * 255
			for _, cell := range sketch.Cells() {
				c := sketch.Gradient(sketch.Snapshot{Phase: phase, BaseHue: base}, cell)
				Expect(c.H).To(BeNumerically(">=", 0))
				Expect(c.H).To(BeNumerically("<", 255))
				Expect(c.S).To(BeNumerically(">=", 150-1e-9))
				Expect(c.S).To(BeNumerically("<=", 255+1e-9))
				Expect(c.B).To(BeNumerically(">=", 150-1e-9))
				Expect(c.B).To(BeNumerically("<=", 255+1e-9))
			}
		}
	})

	It("gives the same color one phase period later", func() {
		cell := sketch.Cell{Outer: 90, Inner: 210}
		a := sketch.Gradient(sketch.Snapshot{Phase: 17.5, BaseHue: 12}, cell)
		b := sketch.Gradient(sketch.Snapshot{Phase: 17.5 + 3*sketch.PhasePeriod, BaseHue: 12}, cell)
		Expect(b.H).To(BeNumerically("~", a.H, 1e-9))
		Expect(b.S).To(BeNumerically("~", a.S, 1e-9))
		Expect(b.B).To(BeNumerically("~", a.B, 1e-9))
	})
})

var _ = Describe("HSB", func() {
	It("converts pure hues", func() {
		Expect(sketch.HSB{H: 0, S: 255, B: 255}.RGBA()).To(Equal(colorRGBA(255, 0, 0)))
		Expect(sketch.HSB{H: 85, S: 255, B: 255}.RGBA()).To(Equal(colorRGBA(0, 255, 0)))
	})

	It("reads hue 255 as hue 0", func() {
		Expect(sketch.HSB{H: 255, S: 255, B: 255}.RGBA()).To(Equal(sketch.HSB{H: 0, S: 255, B: 255}.RGBA()))
	})

	It("clamps out-of-range channels", func() {
		Expect(sketch.HSB{H: 340, S: 40, B: 255}.RGBA()).To(Equal(sketch.HSB{H: 255, S: 40, B: 255}.RGBA()))
		Expect(sketch.HSB{H: 10, S: 0, B: 400}.Hex()).To(Equal("#ffffff"))
	})

	It("renders the background as a light pink", func() {
		c := sketch.DefaultBackground.RGBA()
		Expect(c.R).To(Equal(uint8(255)))
		Expect(c.G).To(BeNumerically("<", 255))
		Expect(c.G).To(BeNumerically(">", 200))
		Expect(c.B).To(Equal(c.G))
	})
})

var _ = Describe("WrapHue", func() {
	DescribeTable("reduces into [0,255)",
		func(in, want float64) {
			Expect(sketch.WrapHue(in)).To(BeNumerically("~", want, 1e-9))
		},
		Entry("inside", 100.0, 100.0),
		Entry("boundary", 255.0, 0.0),
		Entry("above", 300.0, 45.0),
		Entry("negative", -10.0, 245.0),
		Entry("tiny negative", -1e-18, 0.0),
	)
})
