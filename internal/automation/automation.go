package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/cubesphere/internal/sketch"
)

// ErrInvalidScenario indicates a malformed scenario step.
var ErrInvalidScenario = errors.New("automation: invalid scenario")

// Scenario defines a scripted sequence of UI triggers
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep fires before the frame with index At is generated. A step
// may switch the scheme, resize the cubes, or both; the scheme goes first.
type ScenarioStep struct {
	At     int    `yaml:"at"`
	Scheme string `yaml:"scheme"`
	Resize bool   `yaml:"resize"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes and validates a YAML scenario. Steps are ordered by
// frame; steps on the same frame keep their file order.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(sc.Steps, func(i, j int) bool { return sc.Steps[i].At < sc.Steps[j].At })
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	for i, step := range sc.Steps {
		if step.At < 0 {
			return fmt.Errorf("%w: step %d: frame %d", ErrInvalidScenario, i+1, step.At)
		}
		if step.Scheme == "" && !step.Resize {
			return fmt.Errorf("%w: step %d: no action", ErrInvalidScenario, i+1)
		}
		if step.Scheme != "" {
			if _, err := sketch.ParseScheme(step.Scheme); err != nil {
				return fmt.Errorf("%w: step %d: %w", ErrInvalidScenario, i+1, err)
			}
		}
	}
	return nil
}

// Apply runs every step scheduled for frame against st and returns how
// many fired.
func (sc *Scenario) Apply(st *sketch.State, frame int) int {
	if sc == nil {
		return 0
	}
	n := 0
	for _, step := range sc.Steps {
		if step.At != frame {
			continue
		}
		if step.Scheme != "" {
			s, _ := sketch.ParseScheme(step.Scheme)
			st.SetColorScheme(s)
		}
		if step.Resize {
			st.ResizeCubes()
		}
		n++
	}
	return n
}

// RunScenario generates n frames, firing the scenario's triggers before each
// one. A nil scenario just generates frames.
func RunScenario(ctx context.Context, sc *Scenario, gen *sketch.Generator, n int) ([]sketch.Frame, error) {
	if n < 1 {
		return nil, fmt.Errorf("frames must be at least 1, got %d", n)
	}
	frames := make([]sketch.Frame, n)
	for i := range frames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sc.Apply(gen.State(), gen.Frames())
		frames[i] = gen.Generate()
	}
	return frames, nil
}
