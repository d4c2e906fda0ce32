package battleship

import (
	"errors"

	cerr "github.com/saeidalz13/battleship-cli/internal/error"
	"go.uber.org/zap"
)

const (
	DefaultGridSize        = 6
	DefaultMaxAttempts     = 2000
	DefaultMaxBoardRetries = 100
)

// Labels are single digits, so larger boards cannot be drawn.
const MaxGridSize = 9

type FleetPlacer struct {
	fleet           []int
	size            int
	rand            Rand
	maxAttempts     int
	maxBoardRetries int
	logger          *zap.Logger
}

type FleetOption func(*FleetPlacer)

func WithFleet(fleet []int) FleetOption {
	return func(fp *FleetPlacer) {
		fp.fleet = fleet
	}
}

func WithGridSize(size int) FleetOption {
	return func(fp *FleetPlacer) {
		fp.size = size
	}
}

func WithMaxAttempts(attempts int) FleetOption {
	return func(fp *FleetPlacer) {
		fp.maxAttempts = attempts
	}
}

func WithMaxBoardRetries(retries int) FleetOption {
	return func(fp *FleetPlacer) {
		fp.maxBoardRetries = retries
	}
}

func WithFleetLogger(logger *zap.Logger) FleetOption {
	return func(fp *FleetPlacer) {
		fp.logger = logger
	}
}

func NewFleetPlacer(rand Rand, opts ...FleetOption) *FleetPlacer {
	fp := FleetPlacer{
		fleet:           DefaultFleet,
		size:            DefaultGridSize,
		rand:            rand,
		maxAttempts:     DefaultMaxAttempts,
		maxBoardRetries: DefaultMaxBoardRetries,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&fp)
	}

	return &fp
}

func (fp *FleetPlacer) FleetSize() int {
	return len(fp.fleet)
}

// Places the whole fleet, in order, on a fresh board. The attempt
// budget is shared by every ship of the fleet.
func (fp *FleetPlacer) Place() (*Board, error) {
	board := NewBoard(fp.size)
	attempts := 0

	for _, length := range fp.fleet {
	shipLoop:
		for {
			attempts++
			if attempts > fp.maxAttempts {
				return nil, cerr.ErrFleetAttemptsExhausted(fp.maxAttempts)
			}

			bow := NewCoordinates(fp.rand.IntN(fp.size), fp.rand.IntN(fp.size))
			ship := NewShip(bow, length, Orientation(fp.rand.IntN(2)))

			err := board.AddShip(ship)
			switch {
			case err == nil:
				break shipLoop
			case errors.Is(err, cerr.ErrInvalidPlacement):
				continue shipLoop
			default:
				return nil, err
			}
		}
	}

	board.Begin()
	fp.logger.Debug("fleet placed", zap.Int("attempts", attempts), zap.Int("ships", len(fp.fleet)))
	return board, nil
}

// Keeps generating boards until one holds the whole fleet. Running out
// of board retries means the fleet does not fit the configuration.
func (fp *FleetPlacer) BuildBoard() (*Board, error) {
	for retry := 1; retry <= fp.maxBoardRetries; retry++ {
		board, err := fp.Place()
		if err == nil {
			return board, nil
		}
		if !errors.Is(err, cerr.ErrPlacementExhausted) {
			return nil, err
		}

		fp.logger.Debug("discarding board", zap.Int("retry", retry), zap.Error(err))
	}

	return nil, cerr.ErrBoardRetriesExhausted(fp.maxBoardRetries, fp.fleet, fp.size)
}
