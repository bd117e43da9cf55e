package classify

// LabeledExample is one training datum.
type LabeledExample[E, L any] struct {
	Example E
	Label   L
}

// ResultWithVotes is the outcome of a majority vote: the winning label and
// how many neighbours carried it.
type ResultWithVotes[L any] struct {
	Label L
	Votes int
}

// NearestNeighborLabel predicts the label of query by majority vote among
// the k dataset examples closest to it under dist. Distance ties keep
// dataset order; label ties go to the label seen first among the
// neighbours. An empty dataset or non-positive k yields the zero result.
func NearestNeighborLabel[E any, L comparable](query E, dataset []LabeledExample[E, L], dist DistanceFunc[E], k int) ResultWithVotes[L] {
	closest := TopK(dataset, k, func(ex LabeledExample[E, L]) int {
		return -dist(query, ex.Example)
	})
	if len(closest) == 0 {
		return ResultWithVotes[L]{}
	}

	counts := make(map[L]int, len(closest))
	var order []L
	for _, ex := range closest {
		if _, seen := counts[ex.Label]; !seen {
			order = append(order, ex.Label)
		}
		counts[ex.Label]++
	}
	tallies := make([]ResultWithVotes[L], len(order))
	for i, label := range order {
		tallies[i] = ResultWithVotes[L]{Label: label, Votes: counts[label]}
	}
	return TopK(tallies, 1, func(r ResultWithVotes[L]) int { return r.Votes })[0]
}
