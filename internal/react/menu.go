package react

import (
	"io"
	"strconv"
	"strings"
)

// Menu texts.
const (
	MenuPrompt       = "Enter your choice (or 0 to quit)"
	MenuQuit         = "You quit"
	MenuChoicePrefix = "You chose: "
)

// Named is a menu option with a display name.
type Named[T any] struct {
	Value T
	Name  string
}

const (
	choiceQuit    = -1
	choiceInvalid = -2
)

// ChooseOption lets the user pick one of options by number, or quit with 0.
// Invalid input re-displays the menu. ok is false when the user quit.
func ChooseOption[T any](in *Lines, out io.Writer, options []Named[T]) (choice Named[T], ok bool, err error) {
	render := func(int) string {
		var b strings.Builder
		for i, opt := range options {
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteString(". ")
			b.WriteString(opt.Name)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		b.WriteString(MenuPrompt)
		return b.String()
	}
	next := func(_ int, input string) int {
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || n < 0 || n > len(options) {
			return choiceInvalid
		}
		return n - 1
	}
	terminal := func(state int) bool {
		return state == choiceQuit || (state >= 0 && state < len(options))
	}
	result := func(state int) string {
		if state == choiceQuit {
			return MenuQuit
		}
		return MenuChoicePrefix + options[state].Name
	}

	state, err := Console(in, out, choiceInvalid, Loop[int]{
		Render:       render,
		Next:         next,
		IsTerminal:   terminal,
		TerminalText: result,
	})
	if err != nil || state == choiceQuit {
		return Named[T]{}, false, err
	}
	return options[state], true, nil
}
