package changelog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"ledit/internal/errs"
)

// Suffix is appended to an edited file's path to name its changelog.
const Suffix = ".changelog"

// LogPath returns the changelog path for filename.
func LogPath(filename string) string {
	return filename + Suffix
}

// FileStore implements Store with one binary log file per edited file.
type FileStore struct{}

func NewFileStore() *FileStore {
	return &FileStore{}
}

// Append writes one record to the end of filename's log, creating the log if
// needed.
func (s *FileStore) Append(filename string, e Entry) error {
	path := LogPath(filename)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errs.FromWrite("append changelog", path, err)
	}
	if _, err := f.Write(MarshalRecord(e)); err != nil {
		f.Close()
		return errs.FromWrite("append changelog", path, err)
	}
	if err := f.Close(); err != nil {
		return errs.FromWrite("append changelog", path, err)
	}
	return nil
}

// ReadAll replays filename's log. A log that does not exist yet has no
// entries. A log whose size is not a multiple of RecordSize is reported as
// ErrCorruptLog rather than partially decoded.
func (s *FileStore) ReadAll(filename string) ([]Entry, error) {
	path := LogPath(filename)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, errs.FromOS("read changelog", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errs.FromOS("read changelog", path, err)
	}
	size := info.Size()
	if size%RecordSize != 0 {
		return nil, errs.NewPathError("read changelog", path,
			fmt.Errorf("%w: size %d is not a multiple of %d", errs.ErrCorruptLog, size, RecordSize))
	}

	count := int(size / RecordSize)
	entries := make([]Entry, 0, count)
	buf := make([]byte, RecordSize)
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(f, buf); err != nil {
			return nil, errs.FromOS("read changelog", path, err)
		}
		e, err := UnmarshalRecord(buf)
		if err != nil {
			return nil, errs.NewPathError("read changelog", path, err)
		}
		e.Filename = filename
		entries = append(entries, e)
	}
	return entries, nil
}
