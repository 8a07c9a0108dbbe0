package changelog

import (
	"fmt"
	"io"
)

// TimeLayout is how entry timestamps are displayed.
const TimeLayout = "2006-01-02 15:04:05"

// Format writes a numbered, human-readable listing of entries for filename.
func Format(w io.Writer, filename string, entries []Entry) error {
	if _, err := fmt.Fprintf(w, "Change Log for '%s':\n", filename); err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No changes recorded.")
		return err
	}
	for i, e := range entries {
		if _, err := fmt.Fprintln(w, FormatEntry(i+1, e)); err != nil {
			return err
		}
	}
	return nil
}

// FormatEntry renders a single entry as it appears in Format.
func FormatEntry(n int, e Entry) string {
	ts := e.Timestamp.Format(TimeLayout)
	if e.IsLineOperation() {
		return fmt.Sprintf("%d. %s at %s on line %d. Total lines: %d.", n, e.Operation, ts, e.LineNumber, e.TotalLines)
	}
	return fmt.Sprintf("%d. %s at %s. Total lines: %d.", n, e.Operation, ts, e.TotalLines)
}
