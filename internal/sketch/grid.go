package sketch

const (
	GridStep = 30
	// OuterLimit bounds the latitude bands: 0..150, six bands.
	OuterLimit = 180
	// InnerLimit bounds the longitude positions: 0..330, twelve per band.
	InnerLimit  = 360
	FillModulus = 60

	NumCells = (OuterLimit / GridStep) * (InnerLimit / GridStep)
)

// Cell is one (outer, inner) position on the angular grid, in degrees.
type Cell struct {
	Outer, Inner int
}

// Filled reports whether the cube at this cell is drawn solid rather than as
// a wireframe.
func (c Cell) Filled() bool {
	return (c.Outer+c.Inner)%FillModulus == 0
}

// Cells returns the grid in draw order, outer angle major.
func Cells() []Cell {
	cells := make([]Cell, 0, NumCells)
	for outer := 0; outer < OuterLimit; outer += GridStep {
		for inner := 0; inner < InnerLimit; inner += GridStep {
			cells = append(cells, Cell{Outer: outer, Inner: inner})
		}
	}
	return cells
}
