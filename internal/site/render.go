package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts typeset markdown into page HTML. The typeset engine
// emits markdown with embedded HTML fragments, so raw HTML passes through.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with the given chroma highlight style.
func NewRenderer(highlightStyle string) *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Linkify,
				highlighting.NewHighlighting(
					highlighting.WithStyle(highlightStyle),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				goldmarkhtml.WithUnsafe(),
			),
		),
	}
}

// Render converts markdown to HTML.
func (r *Renderer) Render(source []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- post content is trusted
}
