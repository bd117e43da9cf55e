package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/tuicards/internal/card"
)

func TestShuffleIsSeededPermutation(t *testing.T) {
	a := NewShuffler(7).Shuffle(allCards)
	b := NewShuffler(7).Shuffle(allCards)
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, allCards, a)
	assert.Equal(t, []card.Card{cardJP, cardCB, cardMN, cardCmaj9}, allCards)
}

func TestShuffleEmpty(t *testing.T) {
	assert.Empty(t, NewShuffler(1).Shuffle(nil))
}
