// Package editor implements the file operations exposed by the command line.
//
// Mutating operations load the file through package lines, apply the edit in
// memory, flush it, and only then append one entry to the changelog. A file
// can therefore be ahead of its log after a crash, but the log never records
// an edit that did not happen.
package editor

import (
	"fmt"
	"io"
	"log/slog"

	"ledit/internal/changelog"
	"ledit/internal/clock"
)

// Editor runs file operations against a changelog store.
type Editor struct {
	store  changelog.Store
	clock  clock.Clock
	logger *slog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithClock sets the clock used to timestamp changelog entries.
func WithClock(c clock.Clock) Option {
	return func(e *Editor) {
		e.clock = c
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = l
	}
}

// New creates an Editor that records mutations in store.
func New(store changelog.Store, opts ...Option) *Editor {
	e := &Editor{
		store:  store,
		clock:  clock.RealClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result describes a completed mutating operation.
type Result struct {
	Path       string
	LineNumber int
	TotalLines int
	Entry      changelog.Entry
}

// LogError reports that a file mutation succeeded but its changelog entry
// could not be appended. The file is authoritative; Result describes it.
type LogError struct {
	Result Result
	Err    error
}

func (e *LogError) Error() string {
	return fmt.Sprintf("%s applied to %s but changelog was not updated: %v", e.Result.Entry.Operation, e.Result.Path, e.Err)
}

func (e *LogError) Unwrap() error {
	return e.Err
}

// commit appends the entry for a completed mutation.
func (ed *Editor) commit(op, path string, lineNumber, totalLines int) (Result, error) {
	entry := changelog.Entry{
		Operation:  op,
		Filename:   path,
		Timestamp:  ed.clock.Now(),
		LineNumber: uint64(lineNumber),
		TotalLines: uint64(totalLines),
	}
	res := Result{Path: path, LineNumber: lineNumber, TotalLines: totalLines, Entry: entry}

	if err := ed.store.Append(path, entry); err != nil {
		ed.logger.Warn("changelog append failed", "op", op, "path", path, "err", err)
		return res, &LogError{Result: res, Err: err}
	}
	ed.logger.Debug("changelog appended", "op", op, "path", path, "line", lineNumber, "lines", totalLines)
	return res, nil
}
