package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/san-kum/cubesphere/internal/sketch"
)

// ErrBadSize indicates a non-positive output size.
var ErrBadSize = errors.New("export: invalid output size")

// CellRecord is one cube of a frame in export form.
type CellRecord struct {
	Outer      int     `json:"outer"`
	Inner      int     `json:"inner"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
	Filled     bool    `json:"filled"`
	Size       float64 `json:"size"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
}

type FrameData struct {
	Frame    int          `json:"frame"`
	Phase    float64      `json:"phase"`
	CubeSize float64      `json:"cube_size"`
	BaseHue  float64      `json:"base_hue"`
	Scheme   string       `json:"scheme"`
	Spin     float64      `json:"spin"`
	Filled   int          `json:"filled"`
	Cells    []CellRecord `json:"cells"`
}

// NewFrameData flattens a frame for export.
func NewFrameData(f sketch.Frame) FrameData {
	data := FrameData{
		Frame:    f.Index,
		Phase:    f.State.Phase,
		CubeSize: f.State.CubeSize,
		BaseHue:  f.State.BaseHue,
		Scheme:   f.State.Scheme.String(),
		Spin:     f.Spin,
		Filled:   f.FilledCount(),
		Cells:    make([]CellRecord, len(f.Cubes)),
	}
	for i, c := range f.Cubes {
		p := c.Center()
		data.Cells[i] = CellRecord{
			Outer:      c.Cell.Outer,
			Inner:      c.Cell.Inner,
			Hue:        c.Color.H,
			Saturation: c.Color.S,
			Brightness: c.Color.B,
			Filled:     c.Filled,
			Size:       c.Size,
			X:          p.X(),
			Y:          p.Y(),
			Z:          p.Z(),
		}
	}
	return data
}

func WriteFrameJSON(w io.Writer, f sketch.Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewFrameData(f))
}

var csvHeader = []string{"outer", "inner", "hue", "saturation", "brightness", "filled", "size", "x", "y", "z"}

func WriteFrameCSV(w io.Writer, f sketch.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range NewFrameData(f).Cells {
		row := []string{
			strconv.Itoa(c.Outer),
			strconv.Itoa(c.Inner),
			formatFloat(c.Hue),
			formatFloat(c.Saturation),
			formatFloat(c.Brightness),
			strconv.FormatBool(c.Filled),
			formatFloat(c.Size),
			formatFloat(c.X),
			formatFloat(c.Y),
			formatFloat(c.Z),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
