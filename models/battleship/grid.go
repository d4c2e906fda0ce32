package battleship

type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateShip
	CellStateHit
	CellStateMiss

	// Neighbour of a sunk ship. Nothing can be there.
	CellStateDestroyedBuffer
)

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Returns the coordinates moved by dx and dy.
func (c Coordinates) Offset(dx, dy int) Coordinates {
	return Coordinates{X: c.X + dx, Y: c.Y + dy}
}

// Indexed as grid[x][y]
type Grid [][]CellState

// Creates a new default grid
// All indexes are zero/CellStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]CellState, gridSize)
	}
	return grid
}

// 8-neighbourhood of a cell plus the cell itself
var neighbourhood = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
