package console_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	mb "github.com/saeidalz13/battleship-cli/models/battleship"
	"github.com/saeidalz13/battleship-cli/models/console"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		expected    mb.Coordinates
		expectedErr error
	}{
		{name: "valid", line: "3 4", expected: mb.NewCoordinates(3, 2)},
		{name: "extra whitespace", line: "  1\t6 ", expected: mb.NewCoordinates(5, 0)},
		{name: "beyond the board is left to the board", line: "7 9", expected: mb.NewCoordinates(8, 6)},
		{name: "one token", line: "3", expectedErr: console.ErrWrongTokenCount},
		{name: "three tokens", line: "1 2 3", expectedErr: console.ErrWrongTokenCount},
		{name: "empty", line: "", expectedErr: console.ErrWrongTokenCount},
		{name: "letters", line: "a b", expectedErr: console.ErrNotNumbers},
		{name: "zero", line: "0 2", expectedErr: console.ErrNotPositive},
		{name: "negative", line: "2 -1", expectedErr: console.ErrNotPositive},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := console.ParseCoordinates(test.line)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected err: %v\tgot: %v", test.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.expected {
				t.Fatalf("expected: %v\tgot: %v", test.expected, got)
			}
		})
	}
}

func TestReadCoordinatesRepromptsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	prompt := console.NewLinePrompt(strings.NewReader("hello\n1\nx y\n2 5\n"), &out, console.NewPlainStyles())

	got, err := prompt.ReadCoordinates()
	if err != nil {
		t.Fatal(err)
	}
	if got != mb.NewCoordinates(4, 1) {
		t.Fatalf("expected (4, 1), got %v", got)
	}

	if n := strings.Count(out.String(), "Enter two coordinates"); n != 4 {
		t.Fatalf("expected 4 prompts, got %d\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), console.ErrNotNumbers.Error()) {
		t.Fatalf("expected a hint about numbers in:\n%s", out.String())
	}

	if _, err := prompt.ReadCoordinates(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF at the end of input, got: %v", err)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    bool
		expectedErr error
	}{
		{name: "yes", input: "y\n", expected: true},
		{name: "no after garbage", input: "maybe\n3 3\nNo\n", expected: false},
		{name: "input closed", input: "", expectedErr: io.EOF},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			prompt := console.NewLinePrompt(strings.NewReader(test.input), io.Discard, console.NewPlainStyles())

			got, err := prompt.Confirm("Play again?")
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected err: %v\tgot: %v", test.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.expected {
				t.Fatalf("expected: %t\tgot: %t", test.expected, got)
			}
		})
	}
}
