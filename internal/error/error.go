package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds        = errors.New("target is out of the board")
	ErrAlreadyTargeted    = errors.New("this cell was already attacked")
	ErrInvalidPlacement   = errors.New("ship position is invalid")
	ErrPlacementExhausted = errors.New("ran out of attempts placing the fleet")
	ErrFleetUnplaceable   = errors.New("fleet could not be placed on the board")
	ErrBoardInPlay        = errors.New("board is already in play")
	ErrGameOver           = errors.New("game is already over")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrAttackPositionAlreadyFilled(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrAlreadyTargeted, x, y)
}

func ErrShipPositionInvalid(x, y, length int) error {
	return fmt.Errorf("%w\tbow x: %d\tbow y: %d\tlength: %d", ErrInvalidPlacement, x, y, length)
}

func ErrFleetAttemptsExhausted(attempts int) error {
	return fmt.Errorf("%w after %d attempts", ErrPlacementExhausted, attempts)
}

func ErrBoardRetriesExhausted(retries int, fleet []int, size int) error {
	return fmt.Errorf("%w: gave up after %d boards\tfleet: %v\tsize: %d", ErrFleetUnplaceable, retries, fleet, size)
}

func ErrConfigField(field string, value interface{}) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidConfig, field, value)
}
