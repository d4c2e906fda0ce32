package battleship

import (
	"errors"
	"fmt"

	"github.com/dariubs/percent"
	cerr "github.com/saeidalz13/battleship-cli/internal/error"
)

const (
	PlayerNameHuman    = "You"
	PlayerNameComputer = "Computer"
)

// Produces the next target. This is the only thing that differs
// between the human and the automated player.
type Targeter interface {
	Ask() (Coordinates, error)
}

type HumanTargeter struct {
	prompt Prompt
}

func NewHumanTargeter(prompt Prompt) *HumanTargeter {
	return &HumanTargeter{prompt: prompt}
}

func (h *HumanTargeter) Ask() (Coordinates, error) {
	return h.prompt.ReadCoordinates()
}

type AutomatedTargeter struct {
	rand Rand
	size int
	sink MessageSink
}

func NewAutomatedTargeter(rand Rand, size int, sink MessageSink) *AutomatedTargeter {
	if sink == nil {
		sink = nopSink{}
	}
	return &AutomatedTargeter{rand: rand, size: size, sink: sink}
}

// Announces the target the way the human types it: row, then column.
func (a *AutomatedTargeter) Ask() (Coordinates, error) {
	target := NewCoordinates(a.rand.IntN(a.size), a.rand.IntN(a.size))
	a.sink.Send(NewMessage(MessageKindInfo, fmt.Sprintf("Computer fires at: %d %d", target.Y+1, target.X+1)))
	return target, nil
}

var (
	_ Targeter = (*HumanTargeter)(nil)
	_ Targeter = (*AutomatedTargeter)(nil)
)

type ShotStats struct {
	Shots int
	Hits  int
	Sunk  int
}

func (s ShotStats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return percent.PercentOf(s.Hits, s.Shots)
}

type Player struct {
	name          string
	board         *Board
	opponentBoard *Board
	targeter      Targeter
	sink          MessageSink
	stats         ShotStats
}

func NewPlayer(name string, board, opponentBoard *Board, targeter Targeter, sink MessageSink) *Player {
	if sink == nil {
		sink = nopSink{}
	}

	return &Player{
		name:          name,
		board:         board,
		opponentBoard: opponentBoard,
		targeter:      targeter,
		sink:          sink,
	}
}

// Fires one shot at the opponent and reports whether the player shoots
// again. Rule violations are reported and the player is asked again;
// only a failing targeter ends the turn with an error.
func (p *Player) Turn() (bool, error) {
	for {
		target, err := p.targeter.Ask()
		if err != nil {
			return false, err
		}

		outcome, err := p.opponentBoard.Shot(target)
		if err != nil {
			if errors.Is(err, cerr.ErrOutOfBounds) {
				p.sink.Send(NewMessage(MessageKindWarning, "You are trying to shoot outside the board!"))
				continue
			}
			if errors.Is(err, cerr.ErrAlreadyTargeted) {
				p.sink.Send(NewMessage(MessageKindWarning, "This cell was already attacked!"))
				continue
			}
			return false, err
		}

		p.record(outcome)
		return outcome.GrantsExtraShot(), nil
	}
}

func (p *Player) record(outcome ShotOutcome) {
	p.stats.Shots++

	switch outcome {
	case ShotOutcomeSunk:
		p.stats.Hits++
		p.stats.Sunk++
		p.sink.Send(NewMessage(MessageKindOutcome, "Ship sunk!"))
	case ShotOutcomeHit:
		p.stats.Hits++
		p.sink.Send(NewMessage(MessageKindOutcome, "Ship hit!"))
	default:
		p.sink.Send(NewMessage(MessageKindOutcome, "Miss!"))
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) OpponentBoard() *Board {
	return p.opponentBoard
}

func (p *Player) Stats() ShotStats {
	return p.stats
}
