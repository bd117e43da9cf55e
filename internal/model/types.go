// Package model defines shared data structures.
package model

import "time"

// StudyConfig defines study session settings.
type StudyConfig struct {
	Classifier string
	Tag        string
	Shuffle    bool
	Seed       int64
	Plain      bool
	Squares    int
}

// DeckInfo describes a deck stored in the card library.
type DeckInfo struct {
	ID         string
	Name       string
	SourcePath string
	CardCount  int
	ImportedAt time.Time
}
