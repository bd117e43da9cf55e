// Package deck implements the question/answer deck protocol.
package deck

import (
	"slices"

	"github.com/verte-zerg/tuicards/internal/card"
)

// State is the visible state of a deck.
type State int

// Deck states.
const (
	Exhausted State = iota
	Question
	Answer
)

func (s State) String() string {
	switch s {
	case Exhausted:
		return "exhausted"
	case Question:
		return "question"
	case Answer:
		return "answer"
	default:
		return "unknown"
	}
}

// Deck is a source of question/answer pairs. Implementations are values:
// Flip and Advance return a new deck and never modify the receiver.
// Decks hold slices, so compare them with Equal, not ==.
type Deck interface {
	// State reports whether the deck is exhausted or which face is showing.
	State() State
	// Text returns the visible text; ok is false when the deck is exhausted.
	Text() (text string, ok bool)
	// Size is the number of remaining items. Requeued items still count.
	Size() int
	// Flip turns a question into its answer. In any other state the deck
	// is returned unchanged.
	Flip() Deck
	// Advance moves from an answer to the next question. A correct item is
	// discarded, an incorrect one is moved to the end. In any other state
	// the deck is returned unchanged.
	Advance(correct bool) Deck
}

// Equal reports whether a and b are the same kind of deck with the same
// contents and showing the same face.
func Equal(a, b Deck) bool {
	switch a := a.(type) {
	case ListDeck:
		b, ok := b.(ListDeck)
		return ok && a.Front == b.Front && slices.EqualFunc(a.Cards, b.Cards, card.Card.Equal)
	case SquaresDeck:
		b, ok := b.(SquaresDeck)
		return ok && a.N == b.N && a.Front == b.Front && slices.Equal(a.Pending, b.Pending)
	default:
		return a == b
	}
}

func stateOf(size int, front bool) State {
	switch {
	case size == 0:
		return Exhausted
	case front:
		return Question
	default:
		return Answer
	}
}

// requeue returns items without its head, followed by the head when the
// item was answered incorrectly. The input slice is left untouched.
func requeue[T any](items []T, correct bool) []T {
	if len(items) == 0 {
		return items
	}
	out := make([]T, 0, len(items))
	out = append(out, items[1:]...)
	if !correct {
		out = append(out, items[0])
	}
	return out
}
