// Package markdown compiles markdown-like document bodies into renderable
// HTML using Goldmark.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// compiler is shared; goldmark.Markdown instances are safe for concurrent use.
var compiler = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Compile renders a markdown body (frontmatter already removed) into HTML.
//
// Heading IDs are generated automatically so compiled sections keep their
// anchors for in-page navigation. Raw HTML in source documents is passed
// through: content files are authored in-house, not user-submitted.
func Compile(body []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := compiler.Convert(body, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
