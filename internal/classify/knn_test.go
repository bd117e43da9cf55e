package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var numberDataset = []LabeledExample[int, string]{
	{Example: 2, Label: "a"},
	{Example: 3, Label: "a"},
	{Example: 7, Label: "b"},
	{Example: 10, Label: "b"},
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func TestNearestNeighborLabel(t *testing.T) {
	tests := []struct {
		name  string
		query int
		k     int
		want  ResultWithVotes[string]
	}{
		{name: "single neighbour", query: 1, k: 1, want: ResultWithVotes[string]{Label: "a", Votes: 1}},
		{name: "majority a", query: 5, k: 3, want: ResultWithVotes[string]{Label: "a", Votes: 2}},
		{name: "majority b", query: 8, k: 3, want: ResultWithVotes[string]{Label: "b", Votes: 2}},
		{name: "label tie goes to first neighbour", query: 5, k: 2, want: ResultWithVotes[string]{Label: "a", Votes: 1}},
		{name: "k beyond dataset", query: 5, k: 10, want: ResultWithVotes[string]{Label: "a", Votes: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearestNeighborLabel(tt.query, numberDataset, absDiff, tt.k)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNearestNeighborLabelDegenerate(t *testing.T) {
	assert.Equal(t, ResultWithVotes[string]{}, NearestNeighborLabel[int, string](5, nil, absDiff, 3))
	assert.Equal(t, ResultWithVotes[string]{}, NearestNeighborLabel(5, numberDataset, absDiff, 0))
}

func TestNearestNeighborLabelDeterministic(t *testing.T) {
	first := NearestNeighborLabel("maybe", YesNoDataset, EditDistance, K)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, NearestNeighborLabel("maybe", YesNoDataset, EditDistance, K))
	}
}
