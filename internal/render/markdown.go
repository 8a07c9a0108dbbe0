package render

import (
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// MarkdownHTML converts Markdown source to HTML.
func MarkdownHTML(w io.Writer, source []byte) error {
	return markdown.Convert(source, w)
}
