package editor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"ledit/internal/changelog"
	"ledit/internal/errs"
	"ledit/internal/lines"
)

// CreateFile creates path, truncating any existing content, and logs
// (Create File, 0, 0).
func (ed *Editor) CreateFile(path string) (Result, error) {
	f, err := os.Create(path)
	if err != nil {
		return Result{}, errs.FromWrite("create-file", path, err)
	}
	if err := f.Close(); err != nil {
		return Result{}, errs.FromWrite("create-file", path, err)
	}
	ed.logger.Debug("file created", "path", path)
	return ed.commit(changelog.OpCreateFile, path, 0, 0)
}

// CopyFile copies src to dst and logs (Copy File, 0, 0) against dst. The copy
// is written next to dst and renamed over it, so dst keeps its old content if
// the copy fails. Copying a file onto itself is ErrInvalidArgument.
func (ed *Editor) CopyFile(src, dst string) (Result, error) {
	in, err := os.Open(src)
	if err != nil {
		return Result{}, errs.FromOS("copy-file", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return Result{}, errs.FromOS("copy-file", src, err)
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return Result{}, errs.NewPathError("copy-file", dst,
			fmt.Errorf("%w: %s and %s are the same file", errs.ErrInvalidArgument, src, dst))
	}

	err = lines.Replace("copy-file", dst, info.Mode().Perm(), func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	ed.logger.Debug("file copied", "src", src, "dst", dst)
	return ed.commit(changelog.OpCopyFile, dst, 0, 0)
}

// AppendLine adds text as the last line of path and logs
// (Append Line, 0, lines after). A missing path is created.
func (ed *Editor) AppendLine(path, text string) (Result, error) {
	seq, err := ed.load("append-line", path)
	if errors.Is(err, errs.ErrNotFound) {
		seq, err = lines.NewSequence(), nil
	}
	if err != nil {
		return Result{}, err
	}
	if err := seq.Append(text); err != nil {
		return Result{}, errs.NewPathError("append-line", path, err)
	}
	if err := ed.flush(path, seq); err != nil {
		return Result{}, err
	}
	return ed.commit(changelog.OpAppendLine, path, 0, seq.Len())
}

// InsertLine makes text line n of path, where n is in [1, lines+1], and logs
// (Insert Line, n, lines after). An out-of-range n leaves the file untouched.
func (ed *Editor) InsertLine(path string, n int, text string) (Result, error) {
	seq, err := ed.load("insert-line", path)
	if err != nil {
		return Result{}, err
	}
	if err := seq.Insert(n, text); err != nil {
		return Result{}, errs.LineError("insert-line", path, n, err)
	}
	if err := ed.flush(path, seq); err != nil {
		return Result{}, err
	}
	return ed.commit(changelog.OpInsertLine, path, n, seq.Len())
}

// DeleteLine removes line n of path, where n is in [1, lines], and logs
// (Delete Line, n, lines after). An out-of-range n leaves the file untouched.
func (ed *Editor) DeleteLine(path string, n int) (Result, error) {
	seq, err := ed.load("delete-line", path)
	if err != nil {
		return Result{}, err
	}
	if _, err := seq.Delete(n); err != nil {
		return Result{}, errs.LineError("delete-line", path, n, err)
	}
	if err := ed.flush(path, seq); err != nil {
		return Result{}, err
	}
	return ed.commit(changelog.OpDeleteLine, path, n, seq.Len())
}

func (ed *Editor) load(op, path string) (*lines.Sequence, error) {
	seq, err := lines.Load(path)
	if err != nil {
		return nil, err
	}
	ed.logger.Debug("file loaded", "op", op, "path", path, "lines", seq.Len())
	return seq, nil
}

func (ed *Editor) flush(path string, seq *lines.Sequence) error {
	if err := lines.Flush(path, seq); err != nil {
		return err
	}
	ed.logger.Debug("file flushed", "path", path, "lines", seq.Len())
	return nil
}
