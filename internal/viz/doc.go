// Package viz renders the cube sphere in a terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the Bubble Tea program driving a [sketch.Generator]
//   - [Canvas]: Braille-based pixel canvas with per-cell color
//   - [Camera]: perspective projection through an orbit
//   - Theme selection with 4 built-in panel palettes
//
// # Key Bindings
//
//	C/W/R  - Cool, warm or random color scheme
//	Space  - Resize cubes
//	P      - Pause/Resume animation
//	Arrows - Orbit (mouse drag works too)
//	+/-    - Zoom
//	T      - Cycle themes
//	G      - Toggle GIF recording
//	?      - Show help overlay
//
// # Recording
//
// The view can record sessions as GIF animations with the G key. Recordings
// are saved to the path given in [Options].
package viz
