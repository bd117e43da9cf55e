package classify

// DistanceFunc measures how far apart two examples are.
type DistanceFunc[T any] func(a, b T) int

// EditDistance returns the Levenshtein distance between a and b: the
// minimum number of single-rune insertions, deletions and substitutions
// turning a into b.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	// Two rows of the (len(ra)+1) x (len(rb)+1) table.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
