package intelhex

import (
	"bufio"
	"io"
	"strings"
)

// Scanner reads text lines from an input stream, numbers them from 1 by
// their position in the source, and skips lines that are empty or all
// whitespace so the record parser never sees a blank line.
type Scanner struct {
	scanner *bufio.Scanner
	line    int
	text    string
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{scanner: bufio.NewScanner(r)}
}

// Scan advances to the next non-blank line, reporting false at end of
// input or on a read error.
func (s *Scanner) Scan() bool {
	for s.scanner.Scan() {
		s.line++
		if strings.TrimSpace(s.scanner.Text()) != "" {
			s.text = s.scanner.Text()
			return true
		}
	}
	return false
}

// Line reports the 1-based source line number of the current line.
func (s *Scanner) Line() int {
	return s.line
}

// Text reports the current line, including any trailing whitespace.
func (s *Scanner) Text() string {
	return s.text
}

// Err reports the first error encountered by the underlying reader.
func (s *Scanner) Err() error {
	return s.scanner.Err()
}
