// Package lines loads a text file into an ordered, mutable sequence of lines
// and writes it back.
//
// Lines are held without their terminator. Positions taken by Sequence
// methods are 1-based, matching the line numbers users type.
package lines

import (
	"fmt"
	"strings"

	"ledit/internal/errs"
)

// Sequence is the in-memory line sequence of one file, owned by a single
// edit operation.
type Sequence struct {
	lines []string
}

// NewSequence builds a Sequence from already-split lines.
func NewSequence(lines ...string) *Sequence {
	return &Sequence{lines: append([]string(nil), lines...)}
}

// Len returns the number of lines.
func (s *Sequence) Len() int {
	return len(s.lines)
}

// Lines returns a copy of the lines in order.
func (s *Sequence) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Line returns line n.
func (s *Sequence) Line(n int) (string, error) {
	if err := s.checkExisting(n); err != nil {
		return "", err
	}
	return s.lines[n-1], nil
}

// Insert places text so that it becomes line n. n may be Len()+1, which
// appends a new last line.
func (s *Sequence) Insert(n int, text string) error {
	if n < 1 || n > len(s.lines)+1 {
		return fmt.Errorf("%w: %d not in [1, %d]", errs.ErrInvalidLineNumber, n, len(s.lines)+1)
	}
	if err := checkText(text); err != nil {
		return err
	}
	s.lines = append(s.lines, "")
	copy(s.lines[n:], s.lines[n-1:])
	s.lines[n-1] = text
	return nil
}

// Append adds text as the new last line.
func (s *Sequence) Append(text string) error {
	return s.Insert(len(s.lines)+1, text)
}

// Delete removes line n and returns its content.
func (s *Sequence) Delete(n int) (string, error) {
	if err := s.checkExisting(n); err != nil {
		return "", err
	}
	removed := s.lines[n-1]
	s.lines = append(s.lines[:n-1], s.lines[n:]...)
	return removed, nil
}

// Replace overwrites line n with text.
func (s *Sequence) Replace(n int, text string) error {
	if err := s.checkExisting(n); err != nil {
		return err
	}
	if err := checkText(text); err != nil {
		return err
	}
	s.lines[n-1] = text
	return nil
}

// Trim strips trailing whitespace from every line and reports how many lines
// changed.
func (s *Sequence) Trim() int {
	changed := 0
	for i, line := range s.lines {
		trimmed := TrimRight(line)
		if trimmed != line {
			s.lines[i] = trimmed
			changed++
		}
	}
	return changed
}

// TrimRight removes trailing spaces, tabs, carriage returns and newlines.
func TrimRight(line string) string {
	return strings.TrimRight(line, " \t\r\n")
}

func (s *Sequence) checkExisting(n int) error {
	if n < 1 || n > len(s.lines) {
		return fmt.Errorf("%w: %d not in [1, %d]", errs.ErrInvalidLineNumber, n, len(s.lines))
	}
	return nil
}

// A line never carries its own terminator; an embedded newline would make
// the in-memory count disagree with the file.
func checkText(text string) error {
	if strings.ContainsAny(text, "\n") {
		return fmt.Errorf("%w: line content contains a newline", errs.ErrInvalidArgument)
	}
	return nil
}
