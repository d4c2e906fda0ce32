package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

const (
	promptCoordinates = "Enter two coordinates (separated by a space): "
)

var (
	ErrWrongTokenCount = errors.New("you need to enter two coordinates")
	ErrNotNumbers      = errors.New("you need to enter numbers")
	ErrNotPositive     = errors.New("coordinates start at 1")
)

// Reads targets line by line and keeps asking until the line holds
// exactly two positive integers.
type LinePrompt struct {
	scanner *bufio.Scanner
	out     io.Writer
	styles  Styles
}

var _ mb.Prompt = (*LinePrompt)(nil)

func NewLinePrompt(in io.Reader, out io.Writer, styles Styles) *LinePrompt {
	return &LinePrompt{
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  styles,
	}
}

// Returns io.EOF once the input is exhausted.
func (lp *LinePrompt) readLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(lp.out, prompt)

	if !lp.scanner.Scan() {
		if err := lp.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return lp.scanner.Text(), nil
}

func (lp *LinePrompt) ReadCoordinates() (mb.Coordinates, error) {
	for {
		line, err := lp.readLine(promptCoordinates)
		if err != nil {
			return mb.Coordinates{}, err
		}

		coords, err := ParseCoordinates(line)
		if err != nil {
			_, _ = fmt.Fprintln(lp.out, lp.styles.render(lp.styles.Warning, err.Error()))
			continue
		}
		return coords, nil
	}
}

// Asks a yes/no question until it gets an answer.
func (lp *LinePrompt) Confirm(question string) (bool, error) {
	for {
		line, err := lp.readLine(question + " (y/n): ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// Turns one-based "row column" input such as "3 4" into zero-based
// coordinates. Rows follow y and columns follow x, so "3 4" is x=3 y=2.
// The upper bound is left to the board.
func ParseCoordinates(line string) (mb.Coordinates, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return mb.Coordinates{}, ErrWrongTokenCount
	}

	values := [2]int{}
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return mb.Coordinates{}, ErrNotNumbers
		}
		if v < 1 {
			return mb.Coordinates{}, ErrNotPositive
		}
		values[i] = v
	}

	row, column := values[0], values[1]
	return mb.NewCoordinates(column-1, row-1), nil
}
