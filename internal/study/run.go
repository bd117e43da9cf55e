package study

import (
	"io"

	"github.com/verte-zerg/tuicards/internal/classify"
	"github.com/verte-zerg/tuicards/internal/deck"
	"github.com/verte-zerg/tuicards/internal/react"
)

// Run studies d on a line-oriented console and returns the session result.
// If input ends early the result covers the answers given so far.
func Run(in *react.Lines, out io.Writer, d deck.Deck, isPositive classify.Classifier) (Result, error) {
	final, err := react.Console(in, out, NewState(d), react.Loop[State]{
		Render: Render,
		Next: func(s State, input string) State {
			return Transition(s, input, isPositive)
		},
		IsTerminal: IsTerminal,
	})
	return Summarize(d.Size(), final), err
}
