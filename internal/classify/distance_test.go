package classify

import (
	"testing"

	"github.com/agext/levenshtein"
	"github.com/stretchr/testify/assert"
)

// naiveDistance is the direct recursive definition, used as a reference.
func naiveDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	switch {
	case len(rb) == 0:
		return len(ra)
	case len(ra) == 0:
		return len(rb)
	case ra[0] == rb[0]:
		return naiveDistance(string(ra[1:]), string(rb[1:]))
	default:
		return 1 + min(
			naiveDistance(string(ra[1:]), b),
			naiveDistance(a, string(rb[1:])),
			naiveDistance(string(ra[1:]), string(rb[1:])),
		)
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "howdy", 5},
		{"howdy", "", 5},
		{"howdy", "howdy", 0},
		{"kitten", "sitting", 3},
		{"sitting", "kitten", 3},
		{"", "", 0},
		{"flaw", "lawn", 2},
		{"héllo", "hello", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EditDistance(tt.a, tt.b), "%q -> %q", tt.a, tt.b)
	}
}

func TestEditDistanceLaws(t *testing.T) {
	words := []string{"", "y", "yes", "nope", "nadda", "uh huh", "absolutely not", "affirmative", "ouch"}
	for _, a := range words {
		assert.Equal(t, 0, EditDistance(a, a))
		assert.Equal(t, len([]rune(a)), EditDistance("", a))
		for _, b := range words {
			d := EditDistance(a, b)
			assert.Equal(t, d, EditDistance(b, a), "symmetry %q %q", a, b)
			assert.Equal(t, levenshtein.Distance(a, b, nil), d, "oracle %q %q", a, b)
		}
	}
}

func TestEditDistanceMatchesRecursiveDefinition(t *testing.T) {
	words := []string{"", "a", "ab", "yes", "yep", "nay", "nadda", "roger", "kitten"}
	for _, a := range words {
		for _, b := range words {
			assert.Equal(t, naiveDistance(a, b), EditDistance(a, b), "%q %q", a, b)
		}
	}
}
