// Package errs defines the error taxonomy shared by the line store, the
// changelog and the edit operations.
package errs

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrNotFound is returned when a file required for reading does not exist.
	// Write paths never report it; see FromWrite.
	ErrNotFound = errors.New("not found")

	// ErrIO is returned for open, read, write or flush failures.
	ErrIO = errors.New("i/o error")

	// ErrInvalidLineNumber is returned when a line position is outside the
	// range accepted by an operation.
	ErrInvalidLineNumber = errors.New("invalid line number")

	// ErrInvalidArgument is returned when a numeric argument cannot be parsed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLogFull is returned by the capped in-memory changelog once its
	// capacity is exhausted.
	ErrLogFull = errors.New("changelog full")

	// ErrCorruptLog is returned when a changelog file is not a whole number of
	// records.
	ErrCorruptLog = errors.New("corrupt changelog")
)

// PathError records the operation and file that failed. Line is the 1-based
// line involved, or 0 when the failure is not about a line.
type PathError struct {
	Op   string
	Path string
	Line int
	Err  error
}

func (e *PathError) Error() string {
	if e.Line != 0 {
		return fmt.Sprintf("%s %s:%d: %v", e.Op, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// NewPathError creates a PathError.
func NewPathError(op, path string, err error) *PathError {
	return &PathError{Op: op, Path: path, Err: err}
}

// LineError creates a PathError for a specific line.
func LineError(op, path string, line int, err error) *PathError {
	return &PathError{Op: op, Path: path, Line: line, Err: err}
}

// FromOS classifies an operating system error as ErrNotFound or ErrIO and
// wraps it so that both the class and the cause stay in the chain.
func FromOS(op, path string, err error) error {
	if err == nil {
		return nil
	}
	class := ErrIO
	if errors.Is(err, fs.ErrNotExist) {
		class = ErrNotFound
	}
	return &PathError{Op: op, Path: path, Err: fmt.Errorf("%w: %w", class, unwrapPath(err))}
}

// FromWrite wraps an error from creating, writing or renaming a file. A
// missing parent directory is still an i/o failure, so the class is always
// ErrIO.
func FromWrite(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &PathError{Op: op, Path: path, Err: fmt.Errorf("%w: %w", ErrIO, unwrapPath(err))}
}

// unwrapPath drops the *fs.PathError shell so the path is not printed twice.
func unwrapPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
