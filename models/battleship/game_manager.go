package battleship

import (
	"go.uber.org/zap"
)

type GameManager interface {
	CreateGame(prompt Prompt, sink MessageSink, opts ...GameOption) (*Game, error)
	GamesCreated() int
}

// Sets up human vs computer games on freshly generated boards.
type BattleshipGameManager struct {
	rand          Rand
	placer        *FleetPlacer
	startingState GameState
	logger        *zap.Logger
	gamesCreated  int
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(rand Rand, placer *FleetPlacer, startingState GameState, logger *zap.Logger) *BattleshipGameManager {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &BattleshipGameManager{
		rand:          rand,
		placer:        placer,
		startingState: startingState,
		logger:        logger,
	}
}

// Player A is always the human and player B the computer. The
// computer's board is hidden from display. Extra options are applied
// after the manager's own.
func (bgm *BattleshipGameManager) CreateGame(prompt Prompt, sink MessageSink, opts ...GameOption) (*Game, error) {
	humanBoard, err := bgm.placer.BuildBoard()
	if err != nil {
		return nil, err
	}
	computerBoard, err := bgm.placer.BuildBoard()
	if err != nil {
		return nil, err
	}
	computerBoard.SetHidden(true)

	human := NewPlayer(PlayerNameHuman, humanBoard, computerBoard, NewHumanTargeter(prompt), sink)
	computer := NewPlayer(
		PlayerNameComputer,
		computerBoard,
		humanBoard,
		NewAutomatedTargeter(bgm.rand, humanBoard.Size(), sink),
		sink,
	)

	gameOpts := []GameOption{
		WithStartingPlayer(bgm.startingState),
		WithFleetSize(bgm.placer.FleetSize()),
		WithLogger(bgm.logger),
	}
	game := NewGame(human, computer, append(gameOpts, opts...)...)
	bgm.gamesCreated++
	bgm.logger.Debug("game created", zap.String("game", game.Uuid()), zap.Stringer("first", bgm.startingState))

	return game, nil
}

func (bgm *BattleshipGameManager) GamesCreated() int {
	return bgm.gamesCreated
}
