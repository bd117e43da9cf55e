// Package tui provides the Bubble Tea study interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type wrapRune struct {
	r       rune
	width   int
	isSpace bool
}

// wrapText breaks text into lines no wider than width display cells.
// Lines break at the last space when possible; longer words are split.
// Existing newlines are kept.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	paragraphs := strings.Split(text, "\n")
	for i, p := range paragraphs {
		paragraphs[i] = wrapLine(p, width)
	}
	return strings.Join(paragraphs, "\n")
}

func wrapLine(text string, width int) string {
	runes := make([]wrapRune, 0, len(text))
	for _, r := range text {
		runes = append(runes, wrapRune{r: r, width: runewidth.RuneWidth(r), isSpace: r == ' '})
	}

	var out strings.Builder
	line := make([]wrapRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]wrapRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
				if item.isSpace {
					i++
				}
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderRunes(line))
	return out.String()
}

func renderRunes(runes []wrapRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteRune(item.r)
	}
	return b.String()
}

func lineWidthOf(line []wrapRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []wrapRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
