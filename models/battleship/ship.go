package battleship

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

const (
	MinShipLength = 1
	MaxShipLength = 3
)

// Default fleet: one 3-cell, two 2-cell and four 1-cell ships
var DefaultFleet = []int{3, 2, 2, 1, 1, 1, 1}

type Ship struct {
	bow           Coordinates
	length        int
	orientation   Orientation
	remainingHits int
}

func NewShip(bow Coordinates, length int, orientation Orientation) *Ship {
	return &Ship{
		bow:           bow,
		length:        length,
		orientation:   orientation,
		remainingHits: length,
	}
}

// Cells covered by the ship, from the bow onwards.
// Horizontal ships grow along x and vertical ones along y.
func (sh *Ship) OccupiedCells() []Coordinates {
	cells := make([]Coordinates, 0, sh.length)

	for i := 0; i < sh.length; i++ {
		switch sh.orientation {
		case OrientationHorizontal:
			cells = append(cells, sh.bow.Offset(i, 0))
		default:
			cells = append(cells, sh.bow.Offset(0, i))
		}
	}
	return cells
}

func (sh *Ship) IsHitBy(target Coordinates) bool {
	for _, cell := range sh.OccupiedCells() {
		if cell == target {
			return true
		}
	}
	return false
}

func (sh *Ship) gotHit() {
	if sh.remainingHits > 0 {
		sh.remainingHits--
	}
}

func (sh *Ship) IsSunk() bool {
	return sh.remainingHits == 0
}

func (sh *Ship) RemainingHits() int {
	return sh.remainingHits
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Bow() Coordinates {
	return sh.bow
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}
