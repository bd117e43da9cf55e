// Package card defines flashcards and their line-based file format.
package card

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// SepCard separates front, back and tags on a line.
	SepCard = "|"
	// SepTag separates tags within the tag field.
	SepTag = ","
)

// Card is a question/answer pair with associated tags.
type Card struct {
	Front string
	Back  string
	Tags  []string
}

// New returns a card that owns a copy of tags.
func New(front, back string, tags ...string) Card {
	return Card{Front: front, Back: back, Tags: slices.Clone(tags)}
}

// Equal reports whether both cards have the same front, back and tag sequence.
func (c Card) Equal(other Card) bool {
	return c.Front == other.Front && c.Back == other.Back && slices.Equal(c.Tags, other.Tags)
}

// IsTagged reports whether the card carries tag.
func (c Card) IsTagged(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// FileFormat renders the card as a single file line.
func (c Card) FileFormat() string {
	return c.Front + SepCard + c.Back + SepCard + strings.Join(c.Tags, SepTag)
}

// ParseLine parses a "front|back|tag1,tag2" line. Only the first two
// separators split fields; anything after the second belongs to the tags.
// An empty tag field yields a single empty tag.
func ParseLine(line string) (Card, error) {
	parts := strings.SplitN(line, SepCard, 3)
	if len(parts) < 3 {
		return Card{}, fmt.Errorf("expected front%sback%stags, got %d field(s)", SepCard, SepCard, len(parts))
	}
	return Card{
		Front: parts[0],
		Back:  parts[1],
		Tags:  strings.Split(parts[2], SepTag),
	}, nil
}
