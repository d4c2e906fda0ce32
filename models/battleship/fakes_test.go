package battleship_test

import (
	"io"

	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

// Replays the given values in order, wrapping around at the end.
type scriptedRand struct {
	values []int
	calls  int
}

func (s *scriptedRand) IntN(n int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v % n
}

type scriptedPrompt struct {
	targets []mb.Coordinates
}

func (p *scriptedPrompt) ReadCoordinates() (mb.Coordinates, error) {
	if len(p.targets) == 0 {
		return mb.Coordinates{}, io.EOF
	}
	target := p.targets[0]
	p.targets = p.targets[1:]
	return target, nil
}

type recordingSink struct {
	messages []mb.Message
}

func (s *recordingSink) Send(msg mb.Message) {
	s.messages = append(s.messages, msg)
}

func (s *recordingSink) count(kind mb.MessageKind) int {
	n := 0
	for _, msg := range s.messages {
		if msg.Kind == kind {
			n++
		}
	}
	return n
}

// Board in play mode holding the given ships.
func boardWithShips(size int, ships ...*mb.Ship) *mb.Board {
	board := mb.NewBoard(size)
	for _, ship := range ships {
		if err := board.AddShip(ship); err != nil {
			panic(err)
		}
	}
	board.Begin()
	return board
}

func coords(pairs ...[2]int) []mb.Coordinates {
	out := make([]mb.Coordinates, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, mb.NewCoordinates(p[0], p[1]))
	}
	return out
}
