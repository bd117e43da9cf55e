// Package classify interprets free-text self-grading answers.
//
// It provides a small generic toolkit (top-k selection, edit distance and
// k-nearest-neighbour voting) and two interchangeable yes/no classifiers
// built on it.
package classify

import (
	"cmp"
	"slices"
)

// ScoreFunc scores an item; higher scores rank first.
type ScoreFunc[T any] func(T) int

// TopK returns up to k items ordered by descending score. Items with equal
// scores keep their input order. The input slice is not modified.
func TopK[T any](items []T, k int, score ScoreFunc[T]) []T {
	if k <= 0 || len(items) == 0 {
		return []T{}
	}
	type scored struct {
		item  T
		score int
	}
	ranked := make([]scored, len(items))
	for i, item := range items {
		ranked[i] = scored{item: item, score: score(item)}
	}
	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})
	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]T, k)
	for i := range out {
		out[i] = ranked[i].item
	}
	return out
}
