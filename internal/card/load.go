package card

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineError describes a line that could not be parsed.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// LoadFile reads cards from path. A file that is missing or cannot be read
// yields no cards and no error. Malformed lines are skipped and reported in
// the returned slice.
func LoadFile(path string) ([]Card, []LineError, error) {
	cards, skipped, err := ReadFile(path)
	if err != nil {
		return nil, nil, nil
	}
	return cards, skipped, nil
}

// ReadFile is LoadFile without the fallback: open and read failures,
// including a missing file, are returned.
func ReadFile(path string) ([]Card, []LineError, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only card file.
			_ = cerr
		}
	}()
	return Read(file)
}

// Read parses cards from r, one per line. Blank lines are ignored.
func Read(r io.Reader) ([]Card, []LineError, error) {
	var (
		cards   []Card
		skipped []LineError
	)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseLine(line)
		if err != nil {
			skipped = append(skipped, LineError{Line: lineNo, Err: err})
			continue
		}
		cards = append(cards, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return cards, skipped, nil
}

// Write writes cards to w in file format, one per line.
func Write(w io.Writer, cards []Card) error {
	bw := bufio.NewWriter(w)
	for _, c := range cards {
		if _, err := fmt.Fprintln(bw, c.FileFormat()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
