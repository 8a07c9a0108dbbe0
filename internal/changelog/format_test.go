package changelog

import (
	"bytes"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	stamp := ts.Format(TimeLayout)
	entries := []Entry{
		{Operation: OpCreateFile, Timestamp: ts},
		{Operation: OpAppendLine, Timestamp: ts, TotalLines: 1},
		{Operation: OpDeleteLine, Timestamp: ts, LineNumber: 2, TotalLines: 1},
	}

	var buf bytes.Buffer
	if err := Format(&buf, "a.txt", entries); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	want := "Change Log for 'a.txt':\n" +
		"1. Create File at " + stamp + ". Total lines: 0.\n" +
		"2. Append Line at " + stamp + " on line 0. Total lines: 1.\n" +
		"3. Delete Line at " + stamp + " on line 2. Total lines: 1.\n"
	if buf.String() != want {
		t.Errorf("Format output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormat_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Format(&buf, "a.txt", nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Change Log for 'a.txt':\nNo changes recorded.\n" {
		t.Errorf("Format(empty) = %q", buf.String())
	}
}
