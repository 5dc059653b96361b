package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/cubesphere/internal/sketch"
	"github.com/san-kum/cubesphere/internal/viz"
)

// FrameSVG writes one frame as an SVG still of width x height pixels.
// Faces and edges are painted far to near.
func FrameSVG(w io.Writer, f sketch.Frame, cam *viz.Camera, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}
	cw := &errWriter{w: w}
	canvas := svg.New(cw)
	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("cubesphere frame %d", f.Index))
	canvas.Rect(0, 0, width, height, "fill:"+f.Params.Background.Hex())

	canvas.Gstyle("stroke-width:2;stroke-linejoin:round")
	for _, p := range viz.ProjectFrame(f, cam, f.Params.Lighting, width, height) {
		hex := fmt.Sprintf("#%02x%02x%02x", p.Color.R, p.Color.G, p.Color.B)
		if p.Fill {
			canvas.Polygon(p.Xs, p.Ys, "fill:"+hex+";stroke:none")
			continue
		}
		canvas.Line(p.Xs[0], p.Ys[0], p.Xs[1], p.Ys[1], "stroke:"+hex)
	}
	canvas.Gend()
	canvas.End()
	return cw.err
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
