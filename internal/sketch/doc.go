// Package sketch generates the animated sphere of cubes.
//
// The package holds the animation state and the per-frame generator:
//
//   - [State]: color phase, cube size and base hue, mutated only through its methods
//   - [Generator]: turns a [State] snapshot into a [Frame] of 72 cubes
//   - [Gradient]: maps a grid cell and the phase to an [HSB] color
//   - [Renderer]: the drawing primitives a backend provides
//
// # Example
//
//	st := sketch.NewState(sketch.DefaultParams(), rand.New(rand.NewSource(1)))
//	gen := sketch.NewGenerator(st)
//	frame := gen.Generate()
//	frame.Draw(renderer)
//
// # Thread Safety
//
// State and Generator are NOT thread-safe. Input handlers and frame
// generation are expected to run on the same loop, one after the other.
package sketch
