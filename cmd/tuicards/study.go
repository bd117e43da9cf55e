package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuicards/internal/card"
	"github.com/verte-zerg/tuicards/internal/classify"
	"github.com/verte-zerg/tuicards/internal/config"
	"github.com/verte-zerg/tuicards/internal/deck"
	"github.com/verte-zerg/tuicards/internal/model"
	"github.com/verte-zerg/tuicards/internal/react"
	"github.com/verte-zerg/tuicards/internal/store"
	"github.com/verte-zerg/tuicards/internal/study"
	"github.com/verte-zerg/tuicards/internal/tui"
)

func newStudyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "study [file]",
		Short: "Study a flashcard file or a stored deck",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStudyCmd,
	}
	cmd.Flags().StringVar(&studyDeck, "deck", "", "name of a stored deck")
	cmd.Flags().StringVar(&studyTag, "tag", "", "only study cards with this tag")
	cmd.Flags().StringVar(&studyClassifier, "classifier", defaultClassifier, "answer classifier (ml, simple)")
	cmd.Flags().BoolVar(&studyShuffle, "shuffle", false, "shuffle cards before studying")
	cmd.Flags().Int64Var(&studySeed, "seed", 0, "shuffle seed (0: random)")
	cmd.Flags().BoolVar(&studyPlain, "plain", false, "use the line-based console instead of the TUI")
	return cmd
}

func runStudyCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadStudyConfig(cmd)
	if err != nil {
		return err
	}
	if (len(args) == 0) == (studyDeck == "") {
		return fmt.Errorf("provide either a card file or --deck")
	}

	var (
		cards []card.Card
		title string
	)
	if studyDeck != "" {
		title = studyDeck
		cards, err = loadStoredCards(cmd.Context(), studyDeck)
		if err != nil {
			return err
		}
	} else {
		title = args[0]
		cards = loadCardFile(args[0])
	}
	cards = prepareCards(cards, cfg)
	return runSession(cmd, react.NewLines(cmd.InOrStdin()), title, deck.NewListDeck(cards), cfg)
}

func newSquaresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "squares",
		Short: "Drill perfect squares",
		Args:  cobra.NoArgs,
		RunE:  runSquaresCmd,
	}
	cmd.Flags().IntVar(&squaresCount, "count", defaultSquares, "number of squares, counting down")
	cmd.Flags().StringVar(&studyClassifier, "classifier", defaultClassifier, "answer classifier (ml, simple)")
	cmd.Flags().BoolVar(&studyPlain, "plain", false, "use the line-based console instead of the TUI")
	return cmd
}

func runSquaresCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadStudyConfig(cmd)
	if err != nil {
		return err
	}
	return runSession(cmd, react.NewLines(cmd.InOrStdin()), "squares", deck.NewSquaresDeck(cfg.Squares), cfg)
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>...",
		Short: "Show how an answer would be graded",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, text := range args {
				res := classify.ClassifyYesNo(text)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%q: %t (%d/%d votes), simple: %t\n",
					text, res.Label, res.Votes, classify.K, classify.IsPositiveSimple(text)); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

// deckSource is a root menu entry: a stored deck name, or the squares drill
// when stored is empty.
type deckSource struct {
	stored  string
	squares int
}

func runMenuCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadStudyConfig(cmd)
	if err != nil {
		return err
	}
	in, out := react.NewLines(cmd.InOrStdin()), cmd.OutOrStdout()

	options := []react.Named[deckSource]{}
	decks, err := listStoredDecks(cmd.Context())
	if err != nil {
		logErrf("failed to list stored decks: %v\n", err)
	}
	for _, d := range decks {
		options = append(options, react.Named[deckSource]{
			Value: deckSource{stored: d.Name},
			Name:  fmt.Sprintf("%s (%d cards)", d.Name, d.CardCount),
		})
	}
	options = append(options, react.Named[deckSource]{
		Value: deckSource{squares: cfg.Squares},
		Name:  "Perfect squares (" + strconv.Itoa(cfg.Squares) + ")",
	})

	classifiers := make([]react.Named[string], 0, len(classify.Names()))
	for _, name := range classify.Names() {
		classifiers = append(classifiers, react.Named[string]{Value: name, Name: classifierTitle(name)})
	}

	for {
		more, err := runMenuSession(cmd, in, out, options, classifiers, cfg)
		if errors.Is(err, react.ErrInputClosed) {
			logger.Debug("input closed at menu")
			return nil
		}
		if err != nil || !more {
			return err
		}
	}
}

// runMenuSession asks for a deck and a classifier, then studies. It
// reports false once the user quits a menu.
func runMenuSession(cmd *cobra.Command, in *react.Lines, out io.Writer, options []react.Named[deckSource],
	classifiers []react.Named[string], cfg model.StudyConfig) (bool, error) {
	chosen, ok, err := react.ChooseOption(in, out, options)
	if err != nil || !ok {
		return false, err
	}
	classifier, ok, err := react.ChooseOption(in, out, classifiers)
	if err != nil || !ok {
		return false, err
	}
	cfg.Classifier = classifier.Value

	if chosen.Value.stored == "" {
		return true, runSession(cmd, in, "squares", deck.NewSquaresDeck(chosen.Value.squares), cfg)
	}
	cards, err := loadStoredCards(cmd.Context(), chosen.Value.stored)
	if err != nil {
		return false, err
	}
	return true, runSession(cmd, in, chosen.Value.stored, deck.NewListDeck(prepareCards(cards, cfg)), cfg)
}

func classifierTitle(name string) string {
	switch name {
	case "ml":
		return "Nearest-neighbour yes/no (ml)"
	case "simple":
		return "Starts with Y (simple)"
	default:
		return name
	}
}

func prepareCards(cards []card.Card, cfg model.StudyConfig) []card.Card {
	cards = card.FilterByTag(cards, cfg.Tag)
	if cfg.Shuffle {
		cards = deck.NewShuffler(cfg.Seed).Shuffle(cards)
	}
	return cards
}

func loadCardFile(path string) []card.Card {
	cards, skipped, err := card.ReadFile(path)
	if err != nil {
		logger.Debug("card file unavailable, studying an empty deck", "path", path, "err", err)
		return nil
	}
	for _, s := range skipped {
		logErrf("skipping %s: %v\n", path, s)
	}
	if cards == nil && len(skipped) == 0 {
		logger.Debug("card file empty", "path", path)
	}
	return cards
}

func loadStoredCards(ctx context.Context, name string) ([]card.Card, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	cards, err := st.LoadCards(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrDeckNotFound) {
			return nil, fmt.Errorf("%w (list decks with: tuicards decks)", err)
		}
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	return cards, nil
}

func runSession(cmd *cobra.Command, in *react.Lines, title string, d deck.Deck, cfg model.StudyConfig) error {
	isPositive, err := classify.ByName(cfg.Classifier)
	if err != nil {
		return err
	}
	logger.Debug("starting session", "deck", title, "size", d.Size(), "classifier", cfg.Classifier)

	out := cmd.OutOrStdout()
	if d.Size() == 0 {
		logErrln("no cards to study")
		return printResult(out, study.Result{})
	}

	if cfg.Plain || !isTerminal() {
		res, err := study.Run(in, out, d, isPositive)
		if err != nil && !errors.Is(err, react.ErrInputClosed) {
			return err
		}
		if err != nil {
			logErrln("session ended early")
		}
		logger.Debug("session finished", "questions", res.NumQuestions, "attempts", res.NumAttempts)
		return printResult(out, res)
	}

	m := tui.NewModel(title, d, isPositive)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if m.Quit() {
		logErrln(react.MenuQuit)
	}
	res := m.Result()
	logger.Debug("session finished", "questions", res.NumQuestions, "attempts", res.NumAttempts, "completed", m.Finished())
	return printResult(out, res)
}

func printResult(w io.Writer, res study.Result) error {
	if _, err := fmt.Fprintln(w, res); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
