// Package store handles SQLite persistence of the card library.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/tuicards/internal/card"
	"github.com/verte-zerg/tuicards/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

var (
	// ErrDeckNotFound is returned when no deck has the requested name.
	ErrDeckNotFound = errors.New("deck not found")
	// ErrDeckExists is returned when importing over an existing deck without replace.
	ErrDeckExists = errors.New("deck already exists")
)

// Store wraps SQLite access for imported decks.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS decks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			source_path TEXT NOT NULL,
			imported_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS cards (
			deck_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			front TEXT NOT NULL,
			back TEXT NOT NULL,
			tags TEXT,
			PRIMARY KEY (deck_id, position)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ImportDeck stores cards under name, keeping their order. When replace is
// set an existing deck with the same name is overwritten.
func (s *Store) ImportDeck(ctx context.Context, name, sourcePath string, cards []card.Card, replace bool) (info model.DeckInfo, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.DeckInfo{}, fmt.Errorf("deck name is empty")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.DeckInfo{}, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	var existing string
	err = tx.QueryRowContext(ctx, `SELECT id FROM decks WHERE name = ?`, name).Scan(&existing)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = nil
	case err != nil:
		return model.DeckInfo{}, err
	case !replace:
		err = fmt.Errorf("%w: %s", ErrDeckExists, name)
		return model.DeckInfo{}, err
	default:
		if _, err = tx.ExecContext(ctx, `DELETE FROM cards WHERE deck_id = ?`, existing); err != nil {
			return model.DeckInfo{}, err
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, existing); err != nil {
			return model.DeckInfo{}, err
		}
	}

	info = model.DeckInfo{
		ID:         uuid.NewString(),
		Name:       name,
		SourcePath: sourcePath,
		CardCount:  len(cards),
		ImportedAt: time.Now().UTC(),
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO decks (id, name, source_path, imported_at) VALUES (?, ?, ?, ?)`,
		info.ID, info.Name, info.SourcePath, info.ImportedAt.Format(time.RFC3339Nano),
	); err != nil {
		return model.DeckInfo{}, err
	}

	if len(cards) > 0 {
		var stmt *sql.Stmt
		stmt, err = tx.PrepareContext(ctx,
			`INSERT INTO cards (deck_id, position, front, back, tags) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return model.DeckInfo{}, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, c := range cards {
			if _, err = stmt.ExecContext(ctx, info.ID, i, c.Front, c.Back, encodeTags(c.Tags)); err != nil {
				return model.DeckInfo{}, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return model.DeckInfo{}, err
	}
	return info, nil
}

// ListDecks returns stored decks ordered by name.
func (s *Store) ListDecks(ctx context.Context) ([]model.DeckInfo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT d.id, d.name, d.source_path, d.imported_at, COUNT(c.position)
		FROM decks d
		LEFT JOIN cards c ON c.deck_id = d.id
		GROUP BY d.id
		ORDER BY d.name ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var decks []model.DeckInfo
	for rows.Next() {
		var info model.DeckInfo
		var importedAt string
		if err := rows.Scan(&info.ID, &info.Name, &info.SourcePath, &importedAt, &info.CardCount); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, importedAt)
		if err != nil {
			return nil, err
		}
		info.ImportedAt = parsed
		decks = append(decks, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return decks, nil
}

// LoadCards returns the cards of the deck called name in import order.
func (s *Store) LoadCards(ctx context.Context, name string) ([]card.Card, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM decks WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT front, back, tags FROM cards WHERE deck_id = ? ORDER BY position ASC`, id)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var cards []card.Card
	for rows.Next() {
		var c card.Card
		var tags sql.NullString
		if err := rows.Scan(&c.Front, &c.Back, &tags); err != nil {
			return nil, err
		}
		c.Tags = decodeTags(tags)
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

// DeleteDeck removes the deck called name and its cards.
func (s *Store) DeleteDeck(ctx context.Context, name string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM decks WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		err = fmt.Errorf("%w: %s", ErrDeckNotFound, name)
		return err
	}
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM cards WHERE deck_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id); err != nil {
		return err
	}
	err = tx.Commit()
	return err
}

// encodeTags stores an untagged card as NULL so it loads back with no tags,
// while a single empty tag stays distinct as "".
func encodeTags(tags []string) sql.NullString {
	if len(tags) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.Join(tags, card.SepTag), Valid: true}
}

func decodeTags(tags sql.NullString) []string {
	if !tags.Valid {
		return nil
	}
	return strings.Split(tags.String, card.SepTag)
}
