package lines

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/exp/mmap"

	"ledit/internal/errs"
)

// maxLineSize bounds a single line read by Load.
const maxLineSize = 16 * 1024 * 1024

// Load reads the whole file at path. A final line without a terminator is
// still a line; a trailing "\r" is treated as part of the terminator.
func Load(path string) (*Sequence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errs.FromOS("load", path, err)
	}
	defer file.Close()

	seq, err := read(file)
	if err != nil {
		return nil, errs.FromOS("load", path, err)
	}
	return seq, nil
}

func read(r io.Reader) (*Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Sequence{lines: lines}, nil
}

// Flush replaces the content of path with seq, one "\n" after every line.
// The mode of an existing file is preserved.
func Flush(path string, seq *Sequence) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return Replace("flush", path, mode, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for _, line := range seq.lines {
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
		return bw.Flush()
	})
}

// Replace writes the content produced by write to a temporary file next to
// path, syncs it and renames it over path. A failure before the rename leaves
// the previous content intact. All failures are ErrIO.
func Replace(op, path string, mode os.FileMode, write func(io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return errs.FromWrite(op, path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		return errs.FromWrite(op, path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return errs.FromWrite(op, path, err)
	}
	if err := tmp.Sync(); err != nil {
		return errs.FromWrite(op, path, err)
	}
	if err := tmp.Close(); err != nil {
		return errs.FromWrite(op, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errs.FromWrite(op, path, err)
	}
	return nil
}

// Count returns the number of lines in path using the same definition as
// Load, without building a Sequence.
func Count(path string) (int, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return 0, errs.FromOS("count", path, err)
	}
	defer reader.Close()

	size := reader.Len()
	if size == 0 {
		return 0, nil
	}

	const chunkSize = 64 * 1024
	buf := make([]byte, chunkSize)
	count := 0
	var last byte
	for pos := 0; pos < size; {
		n, err := reader.ReadAt(buf, int64(pos))
		if n == 0 && err != nil {
			return 0, errs.FromOS("count", path, err)
		}
		chunk := buf[:n]
		count += bytes.Count(chunk, []byte{'\n'})
		last = chunk[n-1]
		pos += n
	}
	if last != '\n' {
		count++
	}
	return count, nil
}
