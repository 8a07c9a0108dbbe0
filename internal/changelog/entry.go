// Package changelog keeps the append-only audit log of mutating operations.
//
// Two backends share the Store interface. FileStore keeps one binary file per
// edited file, named "<file>.changelog", holding contiguous fixed-size
// records. MemoryStore keeps a single capped, process-lifetime buffer of
// entries tagged with their filename.
package changelog

import "time"

// Operation tags written to the log.
const (
	OpCreateFile = "Create File"
	OpCopyFile   = "Copy File"
	OpAppendLine = "Append Line"
	OpInsertLine = "Insert Line"
	OpDeleteLine = "Delete Line"
)

// Entry is one completed operation. Entries are never modified after they are
// appended.
type Entry struct {
	Operation string
	// Filename is the edited file. FileStore does not persist it because the
	// log is named after the file; it is filled in on read.
	Filename   string
	Timestamp  time.Time
	LineNumber uint64 // 1-based line acted on, 0 when not applicable
	TotalLines uint64 // line count after the operation, 0 when not applicable
}

// IsLineOperation reports whether the entry's line number is meaningful for
// display.
func (e Entry) IsLineOperation() bool {
	switch e.Operation {
	case OpAppendLine, OpInsertLine, OpDeleteLine:
		return true
	}
	return false
}

// Store is implemented by both changelog backends.
type Store interface {
	// Append records e in the log for filename.
	Append(filename string, e Entry) error
	// ReadAll returns every entry for filename in the order it was appended.
	ReadAll(filename string) ([]Entry, error)
}
