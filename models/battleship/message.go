package battleship

type MessageKind uint8

const (
	MessageKindInfo MessageKind = iota
	MessageKindWarning
	MessageKindOutcome
	MessageKindGameOver
)

type Message struct {
	Kind MessageKind
	Text string
}

func NewMessage(kind MessageKind, text string) Message {
	return Message{Kind: kind, Text: text}
}

// Receives everything the game wants the user to know about.
type MessageSink interface {
	Send(msg Message)
}

// Source of zero-based target coordinates for the human player.
// Malformed input is dealt with before returning.
type Prompt interface {
	ReadCoordinates() (Coordinates, error)
}

type nopSink struct{}

func (nopSink) Send(Message) {}
