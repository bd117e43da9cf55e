package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopK(t *testing.T) {
	assert.Equal(t, []int{}, TopK([]int{}, 5, func(i int) int { return i }))
	assert.Equal(t, []int{0, 1, 2, 3, 8}, TopK([]int{9, 8, 1, 3, 2, 0}, 5, func(i int) int { return -i }))
	assert.Equal(t, []string{"abcd", "abc", "ab"}, TopK([]string{"abc", "abcd", "a", "ab"}, 3, func(s string) int { return len(s) }))
}

func TestTopKLength(t *testing.T) {
	items := []int{4, 1, 3}
	identity := func(i int) int { return i }
	for k := -1; k <= 5; k++ {
		want := min(max(k, 0), len(items))
		assert.Len(t, TopK(items, k, identity), want, "k=%d", k)
	}
}

func TestTopKIsStable(t *testing.T) {
	words := []string{"bb", "a", "cc", "d", "ee"}
	got := TopK(words, len(words), func(s string) int { return len(s) })
	assert.Equal(t, []string{"bb", "cc", "ee", "a", "d"}, got)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, len(got[i-1]), len(got[i]))
	}
}

func TestTopKDoesNotModifyInput(t *testing.T) {
	items := []int{3, 1, 2}
	_ = TopK(items, 2, func(i int) int { return i })
	assert.Equal(t, []int{3, 1, 2}, items)
}
