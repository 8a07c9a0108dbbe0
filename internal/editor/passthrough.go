package editor

import (
	"io"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"

	"ledit/internal/changelog"
	"ledit/internal/errs"
	"ledit/internal/lines"
)

// The operations below do not write to the changelog.

// DeleteFile removes path. Its changelog, if any, is left in place.
func (ed *Editor) DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		return errs.FromOS("delete-file", path, err)
	}
	ed.logger.Debug("file deleted", "path", path)
	return nil
}

// ShowFile copies the raw content of path to w.
func (ed *Editor) ShowFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.FromOS("show-file", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(w, f); err != nil {
		return errs.FromOS("show-file", path, err)
	}
	return nil
}

// ReadFile returns the raw content of path.
func (ed *Editor) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.FromOS("show-file", path, err)
	}
	return data, nil
}

// ShowLine returns line n of path.
func (ed *Editor) ShowLine(path string, n int) (string, error) {
	seq, err := ed.load("show-line", path)
	if err != nil {
		return "", err
	}
	line, err := seq.Line(n)
	if err != nil {
		return "", errs.LineError("show-line", path, n, err)
	}
	return line, nil
}

// LineCount returns the number of lines in path.
func (ed *Editor) LineCount(path string) (int, error) {
	return lines.Count(path)
}

// Trim strips trailing whitespace from every line of path and reports how
// many lines changed. The file is rewritten even when nothing changed so that
// every line ends with a single "\n".
func (ed *Editor) Trim(path string) (int, error) {
	seq, err := ed.load("trim", path)
	if err != nil {
		return 0, err
	}
	changed := seq.Trim()
	if err := ed.flush(path, seq); err != nil {
		return 0, err
	}
	return changed, nil
}

// Match is one line returned by Find.
type Match struct {
	Line  int // 1-based
	Text  string
	Score int // fuzzy score, 0 for substring matches
}

// Find returns the lines of path containing query, in file order. With
// fuzzyMatch set, lines are matched as fuzzy subsequences and ranked best
// first.
func (ed *Editor) Find(path, query string, fuzzyMatch bool) ([]Match, error) {
	seq, err := ed.load("find", path)
	if err != nil {
		return nil, err
	}
	all := seq.Lines()

	var matches []Match
	if fuzzyMatch {
		for _, m := range fuzzy.Find(query, all) {
			matches = append(matches, Match{Line: m.Index + 1, Text: m.Str, Score: m.Score})
		}
		return matches, nil
	}
	for i, line := range all {
		if strings.Contains(line, query) {
			matches = append(matches, Match{Line: i + 1, Text: line})
		}
	}
	return matches, nil
}

// Changelog replays the changelog of path.
func (ed *Editor) Changelog(path string) ([]changelog.Entry, error) {
	return ed.store.ReadAll(path)
}
