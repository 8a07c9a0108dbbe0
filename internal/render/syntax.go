// Package render turns file content into highlighted terminal output or HTML
// for show-file.
package render

import (
	"io"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// LexerName picks a chroma lexer for filename, falling back to content
// analysis and then to plain text.
func LexerName(filename, content string) string {
	if lexer := lexers.Match(filename); lexer != nil {
		return lexer.Config().Name
	}
	if lexer := lexers.Analyse(content); lexer != nil {
		return lexer.Config().Name
	}
	return "plaintext"
}

// Highlight writes content to w with ANSI syntax highlighting chosen from
// filename. An empty style selects DefaultStyle.
func Highlight(w io.Writer, filename, content, style string) error {
	if style == "" {
		style = DefaultStyle
	}
	return quick.Highlight(w, content, LexerName(filename, content), "terminal16m", style)
}
