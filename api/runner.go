package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/saeidalz13/battleship-cli/internal/config"
	mb "github.com/saeidalz13/battleship-cli/models/battleship"
	"github.com/saeidalz13/battleship-cli/models/console"
)

const separatorWidth = 20

// Everything the runner needs from the user: targets and a yes/no answer.
type ConsolePrompt interface {
	mb.Prompt
	Confirm(question string) (bool, error)
}

type Runner struct {
	stage       string
	gameManager mb.GameManager
	prompt      ConsolePrompt
	sink        mb.MessageSink
	renderer    *console.Renderer
	out         io.Writer
	logger      *zap.Logger
}

type Option func(*Runner) error

func NewRunner(gameManager mb.GameManager, prompt ConsolePrompt, out io.Writer, optFuncs ...Option) (*Runner, error) {
	runner := Runner{
		stage:       config.StageDev,
		gameManager: gameManager,
		prompt:      prompt,
		out:         out,
		logger:      zap.NewNop(),
	}
	for _, opt := range optFuncs {
		if err := opt(&runner); err != nil {
			return nil, err
		}
	}

	if runner.renderer == nil {
		runner.renderer = console.NewRenderer()
	}
	if runner.sink == nil {
		runner.sink = console.NewWriterSink(out, console.NewStyles())
	}

	return &runner, nil
}

func WithStage(stage string) Option {
	return func(r *Runner) error {
		if stage != config.StageProd && stage != config.StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		r.stage = stage
		return nil
	}
}

func WithSink(sink mb.MessageSink) Option {
	return func(r *Runner) error {
		r.sink = sink
		return nil
	}
}

func WithRenderer(renderer *console.Renderer) Option {
	return func(r *Runner) error {
		r.renderer = renderer
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		r.logger = logger
		return nil
	}
}

// Plays games until the user declines a rematch or the input runs out.
func (r *Runner) Run(ctx context.Context) error {
	r.greet()

runLoop:
	for {
		game, err := r.gameManager.CreateGame(r.prompt, r.sink, mb.WithBeforeTurn(r.beforeTurn))
		if err != nil {
			r.logger.Error("failed to create game", zap.Error(err))
			return err
		}
		r.logger.Info("game started", zap.String("game", game.Uuid()), zap.String("stage", r.stage))

		if _, err := game.Play(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				r.logger.Info("input closed, leaving", zap.String("game", game.Uuid()))
				return nil
			}
			return err
		}
		r.drawBoards(game)
		r.summarize(game)

		again, err := r.prompt.Confirm("Play again?")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !again {
			break runLoop
		}
	}

	r.logger.Info("leaving", zap.Int("games", r.gameManager.GamesCreated()))
	return nil
}

func (r *Runner) beforeTurn(game *mb.Game) {
	r.drawBoards(game)
	r.separator()
	if game.ActivePlayer().Name() == mb.PlayerNameHuman {
		r.sink.Send(mb.NewMessage(mb.MessageKindInfo, "Your move!"))
	} else {
		r.sink.Send(mb.NewMessage(mb.MessageKindInfo, "Computer's move!"))
	}
}

func (r *Runner) greet() {
	r.separator()
	_, _ = fmt.Fprintln(r.out, "Battleship!")
	_, _ = fmt.Fprintln(r.out, "Enter targets as: row column")
	_, _ = fmt.Fprintln(r.out, "e.g. 2 5 is the second row, fifth column")
}

func (r *Runner) separator() {
	_, _ = fmt.Fprintln(r.out, strings.Repeat("-", separatorWidth))
}

// Players are drawn in the order human then computer.
func (r *Runner) drawBoards(game *mb.Game) {
	for _, p := range game.Players() {
		r.separator()
		title := "Your board:"
		if p.Name() != mb.PlayerNameHuman {
			title = "Computer's board:"
		}
		_, _ = fmt.Fprintln(r.out, r.renderer.Render(p.Board(), title))
	}
}

func (r *Runner) summarize(game *mb.Game) {
	r.separator()

	winnerName := ""
	if winner := game.Winner(); winner != nil {
		winnerName = winner.Name()
	}
	if winnerName == mb.PlayerNameHuman {
		r.sink.Send(mb.NewMessage(mb.MessageKindGameOver, "You won!"))
	} else {
		r.sink.Send(mb.NewMessage(mb.MessageKindGameOver, "Computer won :("))
	}

	_, _ = fmt.Fprintf(r.out, "Turns played: %d\n", game.Turns())
	for _, p := range game.Players() {
		stats := p.Stats()
		_, _ = fmt.Fprintf(r.out, "%s: %d shots, %d hits, %d sunk, %.1f%% accuracy\n",
			p.Name(), stats.Shots, stats.Hits, stats.Sunk, stats.Accuracy())
	}

	r.logger.Info("game finished",
		zap.String("game", game.Uuid()),
		zap.String("winner", winnerName),
		zap.Int("turns", game.Turns()),
	)
}
