package changelog

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"ledit/internal/errs"
)

// Record layout, little-endian:
//
//	operation   [64]byte  NUL-padded, always NUL-terminated
//	timestamp   int64     Unix seconds
//	line_number uint64
//	total_lines uint64
const (
	operationSize = 64
	RecordSize    = operationSize + 8 + 8 + 8
)

// MarshalRecord encodes e into its fixed-size record. Operation tags longer
// than 63 bytes are truncated.
func MarshalRecord(e Entry) []byte {
	buf := make([]byte, RecordSize)
	offset := 0

	copy(buf[offset:offset+operationSize-1], e.Operation)
	offset += operationSize

	binary.LittleEndian.PutUint64(buf[offset:], uint64(e.Timestamp.Unix()))
	offset += 8

	binary.LittleEndian.PutUint64(buf[offset:], e.LineNumber)
	offset += 8

	binary.LittleEndian.PutUint64(buf[offset:], e.TotalLines)
	return buf
}

// UnmarshalRecord decodes one record. The Filename of the result is empty.
func UnmarshalRecord(buf []byte) (Entry, error) {
	var e Entry
	if len(buf) != RecordSize {
		return e, fmt.Errorf("%w: record is %d bytes, want %d", errs.ErrCorruptLog, len(buf), RecordSize)
	}
	offset := 0

	op := buf[offset : offset+operationSize]
	if i := bytes.IndexByte(op, 0); i >= 0 {
		op = op[:i]
	}
	e.Operation = string(op)
	offset += operationSize

	e.Timestamp = time.Unix(int64(binary.LittleEndian.Uint64(buf[offset:])), 0)
	offset += 8

	e.LineNumber = binary.LittleEndian.Uint64(buf[offset:])
	offset += 8

	e.TotalLines = binary.LittleEndian.Uint64(buf[offset:])
	return e, nil
}
