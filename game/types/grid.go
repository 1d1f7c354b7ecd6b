package types

// WrapMode is the boundary policy applied when the head leaves the grid
type WrapMode uint8

const (
	Solid WrapMode = iota // leaving the grid is fatal
	Wrap                  // leaving the grid re-enters on the opposite edge
)

func (m WrapMode) String() string {
	if m == Wrap {
		return "wrap"
	}
	return "solid"
}

// Metric selects the neighborhood shape used for head exclusion
type Metric uint8

const (
	Chebyshev Metric = iota // square neighborhood
	Manhattan               // diamond neighborhood
)

// Distance returns the distance between two cells under m
func (m Metric) Distance(a, b Cell) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if m == Manhattan {
		return dx + dy
	}
	return max(dx, dy)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether c lies inside the grid
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Area returns the number of cells
func (g Grid) Area() int {
	return g.Width * g.Height
}

// ResolveMove computes the cell one step from head in direction d.
// Under Wrap the result is taken modulo the grid dimensions; under Solid an
// off-grid result is reported with ok=false.
func (g Grid) ResolveMove(head Cell, d Direction, mode WrapMode) (next Cell, ok bool) {
	next = head.Add(d)
	if mode == Wrap {
		return g.WrapCell(next), true
	}
	if !g.Contains(next) {
		return next, false
	}
	return next, true
}

// WrapCell folds c back onto the grid
func (g Grid) WrapCell(c Cell) Cell {
	return Cell{X: mod(c.X, g.Width), Y: mod(c.Y, g.Height)}
}

func mod(v, n int) int {
	return ((v % n) + n) % n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
