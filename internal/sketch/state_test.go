package sketch_test

import (
	"errors"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cubesphere/internal/sketch"
)

var _ = Describe("State", func() {
	var st *sketch.State

	BeforeEach(func() {
		st = sketch.NewState(sketch.DefaultParams(), rand.New(rand.NewSource(42)))
	})

	It("starts at phase 0 with size 50 and the cool hue", func() {
		Expect(st.Phase()).To(Equal(0.0))
		Expect(st.CubeSize()).To(Equal(50.0))
		Expect(st.BaseHue()).To(Equal(200.0))
		Expect(st.Scheme()).To(Equal(sketch.SchemeCool))
	})

	Describe("SetColorScheme", func() {
		It("sets exactly 200 for cool", func() {
			st.SetColorScheme(sketch.SchemeWarm)
			st.SetColorScheme(sketch.SchemeCool)
			Expect(st.BaseHue()).To(Equal(200.0))
		})

		It("sets exactly 0 for warm", func() {
			st.SetColorScheme(sketch.SchemeWarm)
			Expect(st.BaseHue()).To(Equal(0.0))
		})

		It("keeps random hues in [0,255)", func() {
			for i := 0; i < 10000; i++ {
				st.SetColorScheme(sketch.SchemeRandom)
				Expect(st.BaseHue()).To(BeNumerically(">=", 0))
				Expect(st.BaseHue()).To(BeNumerically("<", 255))
			}
		})

		It("treats an unknown scheme as cool", func() {
			st.SetColorScheme(sketch.Scheme(99))
			Expect(st.BaseHue()).To(Equal(200.0))
			Expect(st.Scheme()).To(Equal(sketch.SchemeCool))
		})
	})

	Describe("ResizeCubes", func() {
		It("always lands in [30,70]", func() {
			seen := map[float64]bool{}
			for i := 0; i < 10000; i++ {
				st.ResizeCubes()
				Expect(st.CubeSize()).To(BeNumerically(">=", 30))
				Expect(st.CubeSize()).To(BeNumerically("<=", 70))
				seen[st.CubeSize()] = true
			}
			Expect(len(seen)).To(BeNumerically(">", 1))
		})
	})

	Describe("AdvancePhase", func() {
		It("adds exactly 0.5 per call", func() {
			for _, n := range []int{1, 2, 7, 1000, 123457} {
				s := sketch.NewState(sketch.DefaultParams(), nil)
				for i := 0; i < n; i++ {
					s.AdvancePhase()
				}
				Expect(s.Phase()).To(Equal(0.5 * float64(n)))
			}
		})
	})

	It("resets to the initial values", func() {
		st.AdvancePhase()
		st.ResizeCubes()
		st.SetColorScheme(sketch.SchemeWarm)
		st.Reset()
		Expect(st.Snapshot()).To(Equal(sketch.Snapshot{Phase: 0, CubeSize: 50, BaseHue: 200, Scheme: sketch.SchemeCool}))
	})

	It("is reproducible for a given seed", func() {
		a := sketch.NewState(sketch.DefaultParams(), rand.New(rand.NewSource(7)))
		b := sketch.NewState(sketch.DefaultParams(), rand.New(rand.NewSource(7)))
		a.ResizeCubes()
		b.ResizeCubes()
		a.SetColorScheme(sketch.SchemeRandom)
		b.SetColorScheme(sketch.SchemeRandom)
		Expect(a.Snapshot()).To(Equal(b.Snapshot()))
	})
})

var _ = Describe("ParseScheme", func() {
	DescribeTable("known names",
		func(name string, want sketch.Scheme) {
			got, err := sketch.ParseScheme(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("cool", "cool", sketch.SchemeCool),
		Entry("warm", "Warm", sketch.SchemeWarm),
		Entry("random", " RANDOM ", sketch.SchemeRandom),
	)

	It("rejects unknown names", func() {
		_, err := sketch.ParseScheme("neon")
		Expect(errors.Is(err, sketch.ErrUnknownScheme)).To(BeTrue())
	})

	It("round-trips through String", func() {
		for _, name := range sketch.SchemeNames() {
			sc, err := sketch.ParseScheme(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(sc.String()).To(Equal(name))
		}
	})
})

var _ = Describe("Params", func() {
	It("accepts the defaults", func() {
		Expect(sketch.DefaultParams().Validate()).To(Succeed())
	})

	It("rejects a non-positive cube size", func() {
		p := sketch.DefaultParams()
		p.CubeSize = 0
		err := p.Validate()
		Expect(errors.Is(err, sketch.ErrParameterBounds)).To(BeTrue())
		var pe *sketch.ParamError
		Expect(errors.As(err, &pe)).To(BeTrue())
		Expect(pe.Name).To(Equal("cube_size"))
	})

	It("rejects an ambient level above 255", func() {
		p := sketch.DefaultParams()
		p.Lighting.Ambient = 300
		Expect(errors.Is(p.Validate(), sketch.ErrParameterBounds)).To(BeTrue())
	})
})
