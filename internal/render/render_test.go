package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestLexerName(t *testing.T) {
	tests := []struct {
		filename string
		content  string
		want     string
	}{
		{"main.go", "package main\n", "Go"},
		{"script.py", "print('x')\n", "Python"},
		{"notes.unknownext", "", "plaintext"},
	}
	for _, tt := range tests {
		if got := LexerName(tt.filename, tt.content); got != tt.want {
			t.Errorf("LexerName(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestHighlight(t *testing.T) {
	var buf bytes.Buffer
	if err := Highlight(&buf, "main.go", "package main\n", ""); err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "package") || !strings.Contains(out, "main") {
		t.Errorf("highlighted output lost the source text: %q", out)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escapes in output: %q", out)
	}
}

func TestMarkdownHTML(t *testing.T) {
	var buf bytes.Buffer
	src := "# Title\n\n- [x] done\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"
	if err := MarkdownHTML(&buf, []byte(src)); err != nil {
		t.Fatalf("MarkdownHTML failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<h1>Title</h1>", "<table>", `type="checkbox"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
