package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuicards/internal/card"
	"github.com/verte-zerg/tuicards/internal/classify"
	"github.com/verte-zerg/tuicards/internal/deck"
	"github.com/verte-zerg/tuicards/internal/study"
)

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func pressEnter(m *Model) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestModelStudiesDeck(t *testing.T) {
	cards := []card.Card{
		card.New("What is the capital of Cuba?", "Havana", "geography"),
		card.New("What is the capital of Japan?", "Tokyo", "geography"),
	}
	m := NewModel("capitals", deck.NewListDeck(cards), classify.IsPositiveML)

	if !strings.Contains(m.View(), study.ThinkPrompt) {
		t.Fatalf("expected think prompt, got %q", m.View())
	}
	pressEnter(m)
	if !strings.Contains(m.View(), "Havana") {
		t.Fatalf("expected answer text, got %q", m.View())
	}
	typeText(m, "nope")
	pressEnter(m)
	if m.state.Wrong != 1 {
		t.Fatalf("expected 1 wrong answer, got %d", m.state.Wrong)
	}

	for _, answer := range []string{"yes", "affirmative"} {
		pressEnter(m)
		typeText(m, answer)
		pressEnter(m)
	}
	if !m.Finished() {
		t.Fatalf("expected session to be finished")
	}
	if got := m.Result(); got != (study.Result{NumQuestions: 2, NumAttempts: 3}) {
		t.Fatalf("unexpected result: %+v", got)
	}
	if !strings.Contains(m.View(), "Questions: 2, Attempts: 3") {
		t.Fatalf("expected summary, got %q", m.View())
	}
	if cmd := pressEnter(m); cmd == nil {
		t.Fatalf("expected quit command after summary")
	}
}

func TestModelIgnoresTypingOnQuestion(t *testing.T) {
	m := NewModel("", deck.NewSquaresDeck(1), classify.IsPositiveSimple)
	typeText(m, "abc")
	if m.input.Value() != "" {
		t.Fatalf("expected input to stay empty on question, got %q", m.input.Value())
	}
	pressEnter(m)
	typeText(m, "y")
	pressEnter(m)
	if !m.Finished() {
		t.Fatalf("expected squares deck to finish")
	}
}

func TestModelEmptyDeckStartsFinished(t *testing.T) {
	m := NewModel("", deck.NewListDeck(nil), classify.IsPositiveML)
	if !m.Finished() {
		t.Fatalf("expected empty deck to be finished")
	}
	if got := m.Result(); got != (study.Result{}) {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel("", deck.NewSquaresDeck(2), classify.IsPositiveML)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.Quit() {
		t.Fatalf("expected quit")
	}
}

func TestRenderFooter(t *testing.T) {
	m := NewModel("squares", deck.NewSquaresDeck(3), classify.IsPositiveML)
	m.state.Wrong = 2
	out := m.renderFooter()
	for _, needle := range []string{"squares", "Remaining 3/3", "Wrong 2"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("footer missing %q: %s", needle, out)
		}
	}
}
