package sketch

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	CoolHue = 200.0
	WarmHue = 0.0
	// HueRange is the size of the hue circle; hue 255 and hue 0 are the same color.
	HueRange = 255.0

	DefaultCubeSize = 50.0
	MinCubeSize     = 30.0
	MaxCubeSize     = 70.0

	PhaseStep = 0.5

	// PhasePeriod is lcm(255, 360, 720): hue wraps every 255, the trig terms
	// every 360 and the spin (phase/2 degrees) every 720. Reducing the phase
	// modulo PhasePeriod changes no output.
	//
	// The raw phase is a float64 that grows by 0.5 per frame. Multiples of 0.5
	// stay exact up to 2^52, which is millions of years at 60 fps, so
	// AdvancePhase never reduces it. Consumers reduce before calling trig.
	PhasePeriod = 12240.0
)

// Scheme selects how the base hue is chosen.
type Scheme int

const (
	SchemeCool Scheme = iota
	SchemeWarm
	SchemeRandom
)

var schemeNames = [...]string{"cool", "warm", "random"}

func (s Scheme) String() string {
	if s < 0 || int(s) >= len(schemeNames) {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemeNames[s]
}

// ParseScheme maps a scheme name (case-insensitive) to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	for i, n := range schemeNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Scheme(i), nil
		}
	}
	return SchemeCool, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// SchemeNames returns list of available scheme names
func SchemeNames() []string {
	names := make([]string, len(schemeNames))
	copy(names, schemeNames[:])
	return names
}

// Snapshot is the state as seen by one frame.
type Snapshot struct {
	Phase    float64
	CubeSize float64
	BaseHue  float64
	Scheme   Scheme
}

// State holds the mutable animation scalars. Every mutation goes through a
// named method so the single-loop access pattern stays easy to audit.
type State struct {
	params   Params
	rng      *rand.Rand
	phase    float64
	cubeSize float64
	baseHue  float64
	scheme   Scheme
}

// NewState returns a state initialised from p. rng drives the random scheme
// and cube resizing; a nil rng gets a fixed seed.
func NewState(p Params, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &State{params: p, rng: rng}
	s.Reset()
	return s
}

// Reset restores phase 0, the configured cube size and the configured scheme.
func (s *State) Reset() {
	s.phase = 0
	s.cubeSize = s.params.CubeSize
	s.SetColorScheme(s.params.Scheme)
}

// SetColorScheme sets the base hue for the scheme: cool is 200, warm is 0 and
// random draws uniformly from [0,255).
func (s *State) SetColorScheme(sc Scheme) {
	switch sc {
	case SchemeWarm:
		s.baseHue = WarmHue
	case SchemeRandom:
		h := s.rng.Float64() * HueRange
		if h >= HueRange {
			h = 0
		}
		s.baseHue = h
	default:
		sc = SchemeCool
		s.baseHue = CoolHue
	}
	s.scheme = sc
}

// ResizeCubes draws a new cube edge length uniformly from [30,70].
func (s *State) ResizeCubes() {
	s.cubeSize = MinCubeSize + s.rng.Float64()*(MaxCubeSize-MinCubeSize)
}

// AdvancePhase adds the phase step. The phase is never reduced here.
func (s *State) AdvancePhase() {
	s.phase += s.params.PhaseStep
}

func (s *State) Phase() float64    { return s.phase }
func (s *State) CubeSize() float64 { return s.cubeSize }
func (s *State) BaseHue() float64  { return s.baseHue }
func (s *State) Scheme() Scheme    { return s.scheme }
func (s *State) Params() Params    { return s.params }

// Snapshot copies the scalars read by one frame.
func (s *State) Snapshot() Snapshot {
	return Snapshot{Phase: s.phase, CubeSize: s.cubeSize, BaseHue: s.baseHue, Scheme: s.scheme}
}
