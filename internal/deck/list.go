package deck

import "github.com/verte-zerg/tuicards/internal/card"

// ListDeck is a deck over a fixed list of cards. The current card is the
// first element.
type ListDeck struct {
	Cards []card.Card
	Front bool
}

// NewListDeck returns a deck showing the question of the first card.
func NewListDeck(cards []card.Card) ListDeck {
	return ListDeck{Cards: cards, Front: true}
}

// State implements Deck.
func (d ListDeck) State() State {
	return stateOf(len(d.Cards), d.Front)
}

// Text implements Deck.
func (d ListDeck) Text() (string, bool) {
	switch d.State() {
	case Question:
		return d.Cards[0].Front, true
	case Answer:
		return d.Cards[0].Back, true
	default:
		return "", false
	}
}

// Size implements Deck.
func (d ListDeck) Size() int {
	return len(d.Cards)
}

// Flip implements Deck.
func (d ListDeck) Flip() Deck {
	if d.State() != Question {
		return d
	}
	return ListDeck{Cards: d.Cards, Front: false}
}

// Advance implements Deck.
func (d ListDeck) Advance(correct bool) Deck {
	if d.State() != Answer {
		return d
	}
	return ListDeck{Cards: requeue(d.Cards, correct), Front: true}
}
