package converter

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown wraps the markdown-to-HTML engine with the fixed feature
// set used for every conversion: tables, strikethrough, task lists and
// footnotes as extensions, auto heading IDs, hard wraps so single
// newlines become line breaks, and raw HTML passthrough. Fenced code
// blocks and lists that interrupt paragraphs are CommonMark core.
type Markdown struct {
	engine goldmark.Markdown
}

// NewMarkdown creates the configured markdown engine
func NewMarkdown() *Markdown {
	return &Markdown{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
				extension.TaskList,
				extension.Footnote,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithUnsafe(),
			),
		),
	}
}

// ToHTML converts markdown text to an HTML fragment
func (m *Markdown) ToHTML(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := m.engine.Convert(source, &buf); err != nil {
		return "", errors.Wrap(err, "markdown conversion failed")
	}
	return buf.String(), nil
}
