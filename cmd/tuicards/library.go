package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuicards/internal/card"
	"github.com/verte-zerg/tuicards/internal/config"
	"github.com/verte-zerg/tuicards/internal/model"
	"github.com/verte-zerg/tuicards/internal/store"
	"github.com/verte-zerg/tuicards/internal/table"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a flashcard file into the card library",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportCmd,
	}
	cmd.Flags().StringVar(&importName, "name", "", "deck name (default: file name without extension)")
	cmd.Flags().BoolVar(&importForce, "force", false, "replace an existing deck with the same name")
	return cmd
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	path := args[0]
	name := importName
	if name == "" {
		name = deckNameFromPath(path)
	}
	cards, skipped, err := card.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read cards: %w", err)
	}
	if cards == nil && len(skipped) == 0 {
		return fmt.Errorf("no cards found in %s", path)
	}
	for _, s := range skipped {
		logErrf("skipping %s: %v\n", path, s)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	info, err := st.ImportDeck(cmd.Context(), name, abs, cards, importForce)
	if err != nil {
		if errors.Is(err, store.ErrDeckExists) {
			return fmt.Errorf("%w (use --force to replace)", err)
		}
		return fmt.Errorf("failed to import deck: %w", err)
	}
	logger.Debug("deck imported", "id", info.ID, "name", info.Name, "cards", info.CardCount)
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cards into %q\n", info.CardCount, info.Name); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newDecksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decks",
		Short: "List stored decks",
		Args:  cobra.NoArgs,
		RunE:  runDecksCmd,
	}
}

func runDecksCmd(cmd *cobra.Command, _ []string) error {
	decks, err := listStoredDecks(cmd.Context())
	if err != nil {
		return err
	}
	if len(decks) == 0 {
		logErrln("No decks found. Import one with: tuicards import <file>")
		return nil
	}
	rows := make([][]string, 0, len(decks))
	for _, d := range decks {
		rows = append(rows, []string{
			d.Name,
			strconv.Itoa(d.CardCount),
			d.ImportedAt.Local().Format("2006-01-02 15:04"),
			d.SourcePath,
		})
	}
	for _, line := range table.Format([]string{"Deck", "Cards", "Imported", "Source"}, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <deck>",
		Short: "Delete a stored deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(config.DefaultDBPath())
			if err != nil {
				return fmt.Errorf("failed to open db: %w", err)
			}
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close db: %v\n", cerr)
				}
			}()
			if err := st.DeleteDeck(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete deck: %w", err)
			}
			return nil
		},
	}
}

func listStoredDecks(ctx context.Context) ([]model.DeckInfo, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	decks, err := st.ListDecks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return decks, nil
}

func deckNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
