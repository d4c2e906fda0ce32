package battleship

import (
	"context"

	cerr "github.com/saeidalz13/battleship-cli/internal/error"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GameState uint8

const (
	GameStatePlayerATurn GameState = iota
	GameStatePlayerBTurn
	GameStateGameOver
)

func (s GameState) String() string {
	switch s {
	case GameStatePlayerATurn:
		return "player_a_turn"
	case GameStatePlayerBTurn:
		return "player_b_turn"
	default:
		return "game_over"
	}
}

type Game struct {
	uuid       string
	players    [2]*Player
	state      GameState
	fleetSize  int
	turns      int
	loser      *Player
	beforeTurn func(*Game)
	logger     *zap.Logger
}

type GameOption func(*Game)

// Chooses who moves first: GameStatePlayerATurn or GameStatePlayerBTurn.
func WithStartingPlayer(state GameState) GameOption {
	return func(g *Game) {
		if state == GameStatePlayerBTurn {
			g.state = GameStatePlayerBTurn
			return
		}
		g.state = GameStatePlayerATurn
	}
}

// Number of sunk ships that ends the game.
func WithFleetSize(size int) GameOption {
	return func(g *Game) {
		g.fleetSize = size
	}
}

// Called by Play before every turn, e.g. to redraw the boards.
func WithBeforeTurn(fn func(*Game)) GameOption {
	return func(g *Game) {
		g.beforeTurn = fn
	}
}

func WithLogger(logger *zap.Logger) GameOption {
	return func(g *Game) {
		g.logger = logger
	}
}

func NewGame(playerA, playerB *Player, opts ...GameOption) *Game {
	game := Game{
		uuid:      uuid.NewString()[:6],
		players:   [2]*Player{playerA, playerB},
		state:     GameStatePlayerATurn,
		fleetSize: len(DefaultFleet),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&game)
	}
	game.logger = game.logger.With(zap.String("game", game.uuid))

	return &game
}

// Plays a single turn of the active player and advances the state
// machine. A hit keeps the turn with the same player.
func (g *Game) Step() error {
	if g.state == GameStateGameOver {
		return cerr.ErrGameOver
	}

	active := g.ActivePlayer()
	again, err := active.Turn()
	if err != nil {
		return err
	}
	g.turns++

	g.logger.Debug("turn played",
		zap.String("player", active.Name()),
		zap.Bool("again", again),
		zap.Int("destroyed_a", g.players[0].board.DestroyedCount()),
		zap.Int("destroyed_b", g.players[1].board.DestroyedCount()),
	)

	for _, p := range g.players {
		if p.board.DestroyedCount() >= g.fleetSize {
			g.loser = p
			g.state = GameStateGameOver
			g.logger.Info("game over", zap.String("loser", p.Name()), zap.Int("turns", g.turns))
			return nil
		}
	}

	if !again {
		g.flipTurn()
	}
	return nil
}

func (g *Game) flipTurn() {
	if g.state == GameStatePlayerATurn {
		g.state = GameStatePlayerBTurn
		return
	}
	g.state = GameStatePlayerATurn
}

// Steps until somebody loses their whole fleet.
func (g *Game) Play(ctx context.Context) (*Player, error) {
gameLoop:
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if g.beforeTurn != nil {
			g.beforeTurn(g)
		}
		if err := g.Step(); err != nil {
			return nil, err
		}
		if g.state == GameStateGameOver {
			break gameLoop
		}
	}

	return g.Winner(), nil
}

func (g *Game) ActivePlayer() *Player {
	if g.state == GameStatePlayerBTurn {
		return g.players[1]
	}
	return g.players[0]
}

func (g *Game) Winner() *Player {
	switch g.loser {
	case nil:
		return nil
	case g.players[0]:
		return g.players[1]
	default:
		return g.players[0]
	}
}

func (g *Game) Loser() *Player {
	return g.loser
}

func (g *Game) IsOver() bool {
	return g.state == GameStateGameOver
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) Uuid() string {
	return g.uuid
}

// Returns the players in the order A then B.
func (g *Game) Players() []*Player {
	return []*Player{g.players[0], g.players[1]}
}
