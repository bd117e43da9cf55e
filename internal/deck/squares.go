package deck

import "strconv"

// SquaresDeck drills perfect squares counting down from N. Pending holds
// one entry per remaining question.
//
// N decrements on every Advance while Pending is dropped or rotated, so
// after an incorrect answer the question number no longer tracks the head
// of Pending. Callers rely on this countdown behaviour; keep it.
type SquaresDeck struct {
	N       int
	Front   bool
	Pending []int
}

// NewSquaresDeck returns a deck asking count squares, from count^2 down.
func NewSquaresDeck(count int) SquaresDeck {
	if count < 0 {
		count = 0
	}
	pending := make([]int, count)
	for i := range pending {
		pending[i] = i + 1
	}
	return SquaresDeck{N: count, Front: true, Pending: pending}
}

// State implements Deck.
func (d SquaresDeck) State() State {
	return stateOf(len(d.Pending), d.Front)
}

// Text implements Deck.
func (d SquaresDeck) Text() (string, bool) {
	switch d.State() {
	case Question:
		return strconv.Itoa(d.N) + "^2 = ?", true
	case Answer:
		return strconv.Itoa(d.N * d.N), true
	default:
		return "", false
	}
}

// Size implements Deck.
func (d SquaresDeck) Size() int {
	return len(d.Pending)
}

// Flip implements Deck.
func (d SquaresDeck) Flip() Deck {
	if d.State() != Question {
		return d
	}
	return SquaresDeck{N: d.N, Front: false, Pending: d.Pending}
}

// Advance implements Deck.
func (d SquaresDeck) Advance(correct bool) Deck {
	if d.State() != Answer {
		return d
	}
	return SquaresDeck{N: d.N - 1, Front: true, Pending: requeue(d.Pending, correct)}
}
