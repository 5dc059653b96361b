package viz

import "errors"

// ErrNoFrames indicates a GIF save with nothing recorded.
var ErrNoFrames = errors.New("viz: no frames recorded")
