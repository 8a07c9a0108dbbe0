package changelog

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"time"

	"ledit/internal/errs"
)

func TestMarshalRecord_Layout(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	buf := MarshalRecord(Entry{
		Operation:  OpInsertLine,
		Filename:   "ignored.txt",
		Timestamp:  ts,
		LineNumber: 3,
		TotalLines: 7,
	})

	if len(buf) != RecordSize || RecordSize != 88 {
		t.Fatalf("record is %d bytes (RecordSize=%d), want 88", len(buf), RecordSize)
	}
	if got := string(buf[:len(OpInsertLine)]); got != OpInsertLine {
		t.Errorf("operation field = %q", got)
	}
	for i := len(OpInsertLine); i < 64; i++ {
		if buf[i] != 0 {
			t.Fatalf("operation padding byte %d = %d, want 0", i, buf[i])
		}
	}
	if got := int64(binary.LittleEndian.Uint64(buf[64:])); got != 1700000000 {
		t.Errorf("timestamp = %d", got)
	}
	if got := binary.LittleEndian.Uint64(buf[72:]); got != 3 {
		t.Errorf("line_number = %d", got)
	}
	if got := binary.LittleEndian.Uint64(buf[80:]); got != 7 {
		t.Errorf("total_lines = %d", got)
	}
}

func TestMarshalRecord_TruncatesLongOperation(t *testing.T) {
	long := strings.Repeat("x", 100)
	buf := MarshalRecord(Entry{Operation: long})
	if buf[63] != 0 {
		t.Errorf("operation field must stay NUL-terminated, byte 63 = %d", buf[63])
	}

	e, err := UnmarshalRecord(buf)
	if err != nil {
		t.Fatalf("UnmarshalRecord failed: %v", err)
	}
	if e.Operation != long[:63] {
		t.Errorf("Operation = %q (len %d), want 63 x's", e.Operation, len(e.Operation))
	}
}

func TestUnmarshalRecord(t *testing.T) {
	want := Entry{
		Operation:  OpDeleteLine,
		Timestamp:  time.Unix(1234567890, 0),
		LineNumber: 2,
		TotalLines: 1,
	}
	got, err := UnmarshalRecord(MarshalRecord(want))
	if err != nil {
		t.Fatalf("UnmarshalRecord failed: %v", err)
	}
	if got.Operation != want.Operation || !got.Timestamp.Equal(want.Timestamp) ||
		got.LineNumber != want.LineNumber || got.TotalLines != want.TotalLines {
		t.Errorf("UnmarshalRecord = %+v, want %+v", got, want)
	}

	if _, err := UnmarshalRecord(make([]byte, RecordSize-1)); !errors.Is(err, errs.ErrCorruptLog) {
		t.Errorf("short record error = %v, want ErrCorruptLog", err)
	}
}
