package battleship

import (
	cerr "github.com/saeidalz13/battleship-cli/internal/error"
)

type ShotOutcome uint8

const (
	ShotOutcomeMiss ShotOutcome = iota
	ShotOutcomeHit
	ShotOutcomeSunk
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotOutcomeHit:
		return "hit"
	case ShotOutcomeSunk:
		return "sunk"
	default:
		return "miss"
	}
}

// Hit and sunk both let the shooter fire again.
func (o ShotOutcome) GrantsExtraShot() bool {
	return o == ShotOutcomeHit || o == ShotOutcomeSunk
}

type Board struct {
	size      int
	hidden    bool
	inPlay    bool
	grid      Grid
	ships     []*Ship
	reserved  map[Coordinates]struct{}
	targeted  map[Coordinates]struct{}
	destroyed int
}

func NewBoard(size int) *Board {
	return &Board{
		size:     size,
		grid:     NewGrid(size),
		ships:    make([]*Ship, 0, len(DefaultFleet)),
		reserved: make(map[Coordinates]struct{}, size*size),
		targeted: make(map[Coordinates]struct{}, size*size),
	}
}

func (b *Board) IsOutOfBounds(c Coordinates) bool {
	return !(0 <= c.X && c.X < b.size && 0 <= c.Y && c.Y < b.size)
}

// Places the ship and reserves its surroundings so that no other
// ship can touch it, not even diagonally. Nothing is mutated when
// the placement is rejected.
func (b *Board) AddShip(ship *Ship) error {
	if b.inPlay {
		return cerr.ErrBoardInPlay
	}

	if ship.length < MinShipLength || ship.length > MaxShipLength {
		return cerr.ErrShipPositionInvalid(ship.bow.X, ship.bow.Y, ship.length)
	}

	cells := ship.OccupiedCells()
	for _, c := range cells {
		if b.IsOutOfBounds(c) || b.IsReserved(c) {
			return cerr.ErrShipPositionInvalid(ship.bow.X, ship.bow.Y, ship.length)
		}
	}

	for _, c := range cells {
		b.grid[c.X][c.Y] = CellStateShip
		b.reserved[c] = struct{}{}
	}
	b.ships = append(b.ships, ship)
	b.contour(ship, false)

	return nil
}

// Walks the ship's neighbourhood. During setup it only reserves the
// cells; once the ship is sunk the untouched ones get marked too.
func (b *Board) contour(ship *Ship, markDestroyed bool) {
	for _, c := range ship.OccupiedCells() {
		for _, d := range neighbourhood {
			cur := c.Offset(d[0], d[1])
			if b.IsOutOfBounds(cur) {
				continue
			}

			if markDestroyed {
				if b.grid[cur.X][cur.Y] == CellStateEmpty {
					b.grid[cur.X][cur.Y] = CellStateDestroyedBuffer
				}
				continue
			}
			b.reserved[cur] = struct{}{}
		}
	}
}

// Moves the board from setup to play. The targeted record starts empty.
func (b *Board) Begin() {
	b.targeted = make(map[Coordinates]struct{}, b.size*b.size)
	b.inPlay = true
}

func (b *Board) Shot(target Coordinates) (ShotOutcome, error) {
	if b.IsOutOfBounds(target) {
		return ShotOutcomeMiss, cerr.ErrXorYOutOfGridBound(target.X, target.Y)
	}
	if b.IsTargeted(target) {
		return ShotOutcomeMiss, cerr.ErrAttackPositionAlreadyFilled(target.X, target.Y)
	}
	b.targeted[target] = struct{}{}

	for _, ship := range b.ships {
		if ship.IsSunk() || !ship.IsHitBy(target) {
			continue
		}

		ship.gotHit()
		b.grid[target.X][target.Y] = CellStateHit

		if ship.IsSunk() {
			b.destroyed++
			b.contour(ship, true)
			return ShotOutcomeSunk, nil
		}
		return ShotOutcomeHit, nil
	}

	b.grid[target.X][target.Y] = CellStateMiss
	return ShotOutcomeMiss, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Hidden() bool {
	return b.hidden
}

func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

func (b *Board) InPlay() bool {
	return b.inPlay
}

func (b *Board) Cell(c Coordinates) CellState {
	return b.grid[c.X][c.Y]
}

func (b *Board) Ships() []*Ship {
	return b.ships
}

func (b *Board) DestroyedCount() int {
	return b.destroyed
}

func (b *Board) IsReserved(c Coordinates) bool {
	_, prs := b.reserved[c]
	return prs
}

func (b *Board) ReservedCount() int {
	return len(b.reserved)
}

func (b *Board) IsTargeted(c Coordinates) bool {
	_, prs := b.targeted[c]
	return prs
}
