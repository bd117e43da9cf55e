// Package study drives a self-graded pass over a deck.
package study

import (
	"fmt"

	"github.com/verte-zerg/tuicards/internal/classify"
	"github.com/verte-zerg/tuicards/internal/deck"
)

// Prompts shown under the card text.
const (
	ThinkPrompt = "Think of the result? Press enter to continue"
	CheckPrompt = "Correct? (Y)es/(N)o"
)

// State is the study session state: the deck and the number of
// self-reported incorrect answers so far.
type State struct {
	Deck  deck.Deck
	Wrong int
}

// Result summarises a finished session.
type Result struct {
	// NumQuestions is the original deck size.
	NumQuestions int
	// NumAttempts counts every answer given, including repeats.
	NumAttempts int
}

func (r Result) String() string {
	return fmt.Sprintf("Questions: %d, Attempts: %d", r.NumQuestions, r.NumAttempts)
}

// NewState starts a session over d.
func NewState(d deck.Deck) State {
	return State{Deck: d}
}

// Render returns the card text followed by the prompt for the current
// face, or an empty string once the deck is exhausted.
func Render(s State) string {
	text, _ := s.Deck.Text()
	switch s.Deck.State() {
	case deck.Question:
		return text + "\n" + ThinkPrompt
	case deck.Answer:
		return text + "\n" + CheckPrompt
	default:
		return ""
	}
}

// Transition applies one line of input. A question is flipped regardless
// of input; an answer is graded by isPositive, and a non-positive grade
// requeues the card and counts a wrong answer.
func Transition(s State, input string, isPositive classify.Classifier) State {
	switch s.Deck.State() {
	case deck.Question:
		return State{Deck: s.Deck.Flip(), Wrong: s.Wrong}
	case deck.Answer:
		if isPositive(input) {
			return State{Deck: s.Deck.Advance(true), Wrong: s.Wrong}
		}
		return State{Deck: s.Deck.Advance(false), Wrong: s.Wrong + 1}
	default:
		return s
	}
}

// IsTerminal reports whether the deck has no cards left.
func IsTerminal(s State) bool {
	return s.Deck.Size() == 0
}

// Summarize reports the result of a session that started with
// originalSize cards and ended in final. Each wrong answer costs one
// extra attempt.
func Summarize(originalSize int, final State) Result {
	return Result{
		NumQuestions: originalSize,
		NumAttempts:  originalSize + final.Wrong,
	}
}
