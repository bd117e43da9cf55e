package deck

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tuicards/internal/card"
)

// Shuffler reorders cards before a session starts.
type Shuffler struct {
	rnd *rand.Rand
}

// NewShuffler returns a Shuffler seeded with seed, or with the current
// time when seed is zero.
func NewShuffler(seed int64) *Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Shuffler{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a shuffled copy of cards.
func (s *Shuffler) Shuffle(cards []card.Card) []card.Card {
	out := make([]card.Card, len(cards))
	copy(out, cards)
	s.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
