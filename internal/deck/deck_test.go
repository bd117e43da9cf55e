package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuicards/internal/card"
)

var (
	cardJP    = card.New("What is the capital of Japan?", "Tokyo", "geography", "easy")
	cardCB    = card.New("What is the capital of Cuba?", "Havana", "geography")
	cardMN    = card.New("What is the capital of Mongolia?", "Ulaanbaatar", "geography", "hard")
	cardCmaj9 = card.New("What are the notes in Cmaj9?", "CEGBD")
	allCards  = []card.Card{cardJP, cardCB, cardMN, cardCmaj9}
)

func TestListDeckState(t *testing.T) {
	assert.Equal(t, Question, NewListDeck(allCards).State())
	assert.Equal(t, Answer, ListDeck{Cards: []card.Card{cardCB}}.State())
	assert.Equal(t, Exhausted, NewListDeck(nil).State())
	assert.Equal(t, Exhausted, ListDeck{}.State())
}

func TestListDeckText(t *testing.T) {
	text, ok := NewListDeck(allCards).Text()
	assert.True(t, ok)
	assert.Equal(t, cardJP.Front, text)

	text, ok = ListDeck{Cards: []card.Card{cardCB}}.Text()
	assert.True(t, ok)
	assert.Equal(t, "Havana", text)

	text, ok = NewListDeck(nil).Text()
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestListDeckSize(t *testing.T) {
	assert.Equal(t, 4, NewListDeck(allCards).Size())
	assert.Equal(t, 1, ListDeck{Cards: []card.Card{cardCB}}.Size())
	assert.Equal(t, 0, NewListDeck(nil).Size())
}

func TestListDeckFlip(t *testing.T) {
	front := NewListDeck([]card.Card{cardCB})
	assert.Equal(t, ListDeck{Cards: []card.Card{cardCB}, Front: false}, front.Flip())

	back := ListDeck{Cards: allCards, Front: false}
	assert.Equal(t, back, back.Flip())

	empty := NewListDeck(nil)
	assert.Equal(t, empty, empty.Flip())
}

func TestListDeckFlipTwiceStaysOnAnswer(t *testing.T) {
	d := NewListDeck(allCards)
	once := d.Flip()
	assert.Equal(t, once, once.Flip())
	text, _ := once.Flip().Text()
	assert.Equal(t, "Tokyo", text)
}

func TestFlipIsIdempotentOnAnswer(t *testing.T) {
	decks := []Deck{NewListDeck(allCards), NewSquaresDeck(3)}
	for _, d := range decks {
		once := d.Flip()
		assert.True(t, Equal(once, once.Flip()))
		assert.False(t, Equal(d, once))
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(NewListDeck(allCards), NewListDeck([]card.Card{cardJP, cardCB, cardMN, cardCmaj9})))
	assert.False(t, Equal(NewListDeck(allCards), NewListDeck(allCards[1:])))
	assert.True(t, Equal(NewSquaresDeck(2), SquaresDeck{N: 2, Front: true, Pending: []int{1, 2}}))
	assert.False(t, Equal(NewSquaresDeck(2), NewSquaresDeck(2).Flip().Advance(false)))
	assert.False(t, Equal(NewListDeck(nil), NewSquaresDeck(0)))
}

func TestListDeckAdvance(t *testing.T) {
	single := ListDeck{Cards: []card.Card{cardCB}}
	assert.Equal(t, ListDeck{Cards: []card.Card{}, Front: true}, single.Advance(true))
	assert.Equal(t, ListDeck{Cards: []card.Card{cardCB}, Front: true}, single.Advance(false))

	pair := ListDeck{Cards: []card.Card{cardJP, cardCB}}
	next := pair.Advance(false)
	assert.Equal(t, ListDeck{Cards: []card.Card{cardCB, cardJP}, Front: true}, next)
	assert.Equal(t, Question, next.State())
	text, _ := next.Text()
	assert.Equal(t, cardCB.Front, text)
}

func TestListDeckAdvanceConservesCards(t *testing.T) {
	d := ListDeck{Cards: allCards}

	correct := d.Advance(true)
	assert.Equal(t, len(allCards)-1, correct.Size())

	wrong := d.Advance(false).(ListDeck)
	require.Len(t, wrong.Cards, len(allCards))
	assert.ElementsMatch(t, allCards, wrong.Cards)
	assert.Equal(t, allCards[0], wrong.Cards[len(wrong.Cards)-1])
}

func TestListDeckAdvanceDoesNotMutate(t *testing.T) {
	cards := []card.Card{cardJP, cardCB, cardMN}
	d := ListDeck{Cards: cards}
	_ = d.Advance(false)
	_ = d.Advance(true)
	assert.Equal(t, []card.Card{cardJP, cardCB, cardMN}, cards)
	assert.False(t, d.Front)
}

func TestListDeckAdvanceOutsideAnswerIsNoop(t *testing.T) {
	front := NewListDeck(allCards)
	assert.Equal(t, front, front.Advance(true))
	assert.Equal(t, front, front.Advance(false))
}

func TestExhaustedIsAbsorbing(t *testing.T) {
	decks := []Deck{NewListDeck(nil), ListDeck{}, NewSquaresDeck(0), SquaresDeck{N: 5}}
	for _, d := range decks {
		for _, next := range []Deck{d.Flip(), d.Advance(true), d.Advance(false)} {
			assert.Equal(t, d, next)
			assert.Equal(t, Exhausted, next.State())
			_, ok := next.Text()
			assert.False(t, ok)
		}
	}
}

func TestListDeckDrainsAfterRequeue(t *testing.T) {
	var d Deck = NewListDeck([]card.Card{cardJP, cardCB})
	answers := []bool{false, true, true}
	for _, correct := range answers {
		d = d.Flip().Advance(correct)
	}
	assert.Equal(t, Exhausted, d.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "exhausted", Exhausted.String())
	assert.Equal(t, "question", Question.String())
	assert.Equal(t, "answer", Answer.String())
	assert.Equal(t, "unknown", State(42).String())
}
