package console

import (
	"fmt"
	"io"

	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

// Writes every message on its own line.
type WriterSink struct {
	out    io.Writer
	styles Styles
}

var _ mb.MessageSink = (*WriterSink)(nil)

func NewWriterSink(out io.Writer, styles Styles) *WriterSink {
	return &WriterSink{out: out, styles: styles}
}

func (ws *WriterSink) Send(msg mb.Message) {
	_, _ = fmt.Fprintln(ws.out, ws.styles.render(ws.styles.forMessage(msg.Kind), msg.Text))
}
