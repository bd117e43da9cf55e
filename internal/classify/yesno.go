package classify

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// K is the neighbour count used by the yes/no classifier.
const K = 3

// ErrUnknownClassifier is returned by ByName for unregistered names.
var ErrUnknownClassifier = errors.New("unknown classifier")

// Classifier reports whether a free-text answer means "yes".
type Classifier func(string) bool

// YesNoDataset is the reference corpus of common yes/no phrases.
var YesNoDataset = []LabeledExample[string, bool]{
	{"yes", true},
	{"y", true},
	{"indeed", true},
	{"aye", true},
	{"oh yes", true},
	{"affirmative", true},
	{"roger", true},
	{"uh huh", true},
	{"true", true},

	{"no", false},
	{"n", false},
	{"nope", false},
	{"negative", false},
	{"nay", false},
	{"negatory", false},
	{"uh uh", false},
	{"absolutely not", false},
	{"false", false},
}

// ClassifyYesNo labels text as yes (true) or no (false). An exact
// case-insensitive corpus match short-circuits with K votes; anything else
// is decided by nearest-neighbour vote over edit distance.
func ClassifyYesNo(text string) ResultWithVotes[bool] {
	lowered := strings.ToLower(text)
	for _, ex := range YesNoDataset {
		if lowered == ex.Example {
			return ResultWithVotes[bool]{Label: ex.Label, Votes: K}
		}
	}
	return NearestNeighborLabel(text, YesNoDataset, EditDistance, K)
}

// IsPositiveML classifies text with ClassifyYesNo.
func IsPositiveML(text string) bool {
	return ClassifyYesNo(text).Label
}

// IsPositiveSimple treats any answer starting with "y" as positive.
func IsPositiveSimple(text string) bool {
	return strings.HasPrefix(strings.ToUpper(text), "Y")
}

var registry = map[string]Classifier{
	"simple": IsPositiveSimple,
	"ml":     IsPositiveML,
}

// DefaultName is the classifier used when none is configured.
const DefaultName = "ml"

// ByName returns the registered classifier called name.
func ByName(name string) (Classifier, error) {
	c, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownClassifier, name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Names lists registered classifier names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
