package console

import (
	"fmt"
	"strings"

	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

const (
	GlyphWater  = "O"
	GlyphShip   = "■"
	GlyphHit    = "X"
	GlyphMiss   = "T"
	GlyphBuffer = "·"
)

type Renderer struct {
	styles Styles
}

type RendererOption func(*Renderer)

func WithPlainOutput() RendererOption {
	return func(r *Renderer) {
		r.styles = NewPlainStyles()
	}
}

func WithStyles(styles Styles) RendererOption {
	return func(r *Renderer) {
		r.styles = styles
	}
}

func NewRenderer(opts ...RendererOption) *Renderer {
	r := Renderer{styles: NewStyles()}
	for _, opt := range opts {
		opt(&r)
	}
	return &r
}

// Draws the board with one-based labels. Rows follow y and columns
// follow x. Ships on a hidden board are drawn as water.
func (r *Renderer) Render(board *mb.Board, title string) string {
	var sb strings.Builder
	size := board.Size()

	if title != "" {
		sb.WriteString(r.styles.render(r.styles.Title, title))
		sb.WriteString("\n")
	}

	sb.WriteString(" ")
	for x := 1; x <= size; x++ {
		fmt.Fprintf(&sb, " | %d", x)
	}
	sb.WriteString(" |")

	for y := 0; y < size; y++ {
		fmt.Fprintf(&sb, "\n%d", y+1)
		for x := 0; x < size; x++ {
			sb.WriteString(" | ")
			sb.WriteString(r.glyph(board, mb.NewCoordinates(x, y)))
		}
		sb.WriteString(" |")
	}

	return sb.String()
}

func (r *Renderer) glyph(board *mb.Board, c mb.Coordinates) string {
	switch board.Cell(c) {
	case mb.CellStateShip:
		if board.Hidden() {
			return r.styles.render(r.styles.Water, GlyphWater)
		}
		return r.styles.render(r.styles.Ship, GlyphShip)
	case mb.CellStateHit:
		return r.styles.render(r.styles.Hit, GlyphHit)
	case mb.CellStateMiss:
		return r.styles.render(r.styles.Miss, GlyphMiss)
	case mb.CellStateDestroyedBuffer:
		return r.styles.render(r.styles.Buffer, GlyphBuffer)
	default:
		return r.styles.render(r.styles.Water, GlyphWater)
	}
}
