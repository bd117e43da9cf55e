// Package tui provides the Bubble Tea study interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuicards/internal/classify"
	"github.com/verte-zerg/tuicards/internal/deck"
	"github.com/verte-zerg/tuicards/internal/study"
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	summaryStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
)

// Model implements the Bubble Tea study UI. It feeds key presses to the
// study reducer and renders its state.
type Model struct {
	state        study.State
	isPositive   classify.Classifier
	originalSize int
	title        string

	input textinput.Model

	width  int
	height int

	done bool
	quit bool
}

// NewModel constructs a study TUI model over d.
func NewModel(title string, d deck.Deck, isPositive classify.Classifier) *Model {
	input := textinput.New()
	input.Placeholder = "yes / no"
	input.Prompt = "> "
	input.CharLimit = 64
	input.Focus()

	m := &Model{
		state:        study.NewState(d),
		isPositive:   isPositive,
		originalSize: d.Size(),
		title:        title,
		input:        input,
	}
	m.done = study.IsTerminal(m.state)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		}
		if m.done {
			if msg.Type == tea.KeyEnter || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			m.submit()
			return m, nil
		}
		if m.state.Deck.State() == deck.Answer {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) submit() {
	answer := ""
	if m.state.Deck.State() == deck.Answer {
		answer = strings.TrimSpace(m.input.Value())
	}
	m.state = study.Transition(m.state, answer, m.isPositive)
	m.input.Reset()
	if study.IsTerminal(m.state) {
		m.done = true
	}
}

// Result reports the session outcome so far.
func (m *Model) Result() study.Result {
	return study.Summarize(m.originalSize, m.state)
}

// Finished reports whether every card was answered correctly.
func (m *Model) Finished() bool {
	return m.done
}

// Quit reports whether the user left before finishing.
func (m *Model) Quit() bool {
	return m.quit && !m.done
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderBody()
	if m.width == 0 || m.height == 0 {
		return content
	}
	content = lipgloss.NewStyle().Width(m.contentWidth()).Render(content)
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(int(float64(m.width)*0.70), 1)
}

func (m *Model) renderBody() string {
	if m.done {
		return summaryStyle.Render(fmt.Sprintf("%s\n\nPress enter to exit", m.Result()))
	}
	text, _ := m.state.Deck.Text()
	text = wrapText(text, m.contentWidth())
	switch m.state.Deck.State() {
	case deck.Question:
		return questionStyle.Render(text) + "\n\n" + promptStyle.Render(study.ThinkPrompt)
	case deck.Answer:
		return answerStyle.Render(text) + "\n\n" + promptStyle.Render(study.CheckPrompt) + "\n" + m.input.View()
	default:
		return ""
	}
}

func (m *Model) renderFooter() string {
	if m.done {
		return ""
	}
	segments := []string{}
	if m.title != "" {
		segments = append(segments, m.title)
	}
	segments = append(segments, fmt.Sprintf("Remaining %d/%d", m.state.Deck.Size(), m.originalSize))
	wrong := fmt.Sprintf("Wrong %d", m.state.Wrong)
	if m.state.Wrong > 0 {
		wrong = wrongStyle.Render(wrong)
	}
	segments = append(segments, wrong)
	return footerStyle.Render(strings.Join(segments, "  "))
}
