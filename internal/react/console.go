// Package react runs line-oriented interactive loops on a console.
package react

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrInputClosed is returned when input ends before a terminal state.
var ErrInputClosed = errors.New("input closed before the session finished")

// Lines is a line source that can be shared by consecutive loops reading
// the same input, so that buffered input is not lost between them.
type Lines struct {
	scanner *bufio.Scanner
}

// NewLines reads lines from r.
func NewLines(r io.Reader) *Lines {
	return &Lines{scanner: bufio.NewScanner(r)}
}

// Loop describes a console interaction over states of type S.
type Loop[S any] struct {
	// Render produces the text shown before each line of input.
	Render func(S) string
	// Next computes the state following a line of input.
	Next func(S, string) S
	// IsTerminal ends the loop.
	IsTerminal func(S) bool
	// TerminalText, when set, is printed once the loop ends.
	TerminalText func(S) string
}

// Console runs loop from initial, reading one line from in per step and
// writing rendered states to out. It returns the terminal state, or the
// last state reached together with ErrInputClosed if in runs dry.
func Console[S any](in *Lines, out io.Writer, initial S, loop Loop[S]) (S, error) {
	scanner := in.scanner
	state := initial
	for !loop.IsTerminal(state) {
		if _, err := fmt.Fprintln(out, loop.Render(state)); err != nil {
			return state, fmt.Errorf("failed to write prompt: %w", err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return state, fmt.Errorf("failed to read input: %w", err)
			}
			return state, ErrInputClosed
		}
		state = loop.Next(state, scanner.Text())
	}
	if loop.TerminalText != nil {
		if _, err := fmt.Fprintln(out, loop.TerminalText(state)); err != nil {
			return state, fmt.Errorf("failed to write result: %w", err)
		}
	}
	return state, nil
}
