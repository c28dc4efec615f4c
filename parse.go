package typeset

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parser is the shared goldmark instance used to build document trees.
// Tables are needed by the numbering pass; linkify matches the source
// documents' bare URLs. Parsing is read-only on the instance, so sharing
// it across goroutines is safe.
var parser = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Linkify,
	),
)

// Parse builds a document tree from raw markdown source.
func Parse(source []byte) (*Node, error) {
	root := parser.Parser().Parse(text.NewReader(source))
	doc, ok := root.(*gast.Document)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected root node %T", ErrParse, root)
	}
	return convert(doc, source), nil
}

// convert maps one goldmark node (and its subtree) into the engine's node
// model. Unhandled kinds collapse to their plain text so the pipeline never
// sees a node it cannot classify.
func convert(n gast.Node, source []byte) *Node {
	switch t := n.(type) {
	case *gast.Document:
		return container(KindDocument, n, source)
	case *gast.Paragraph, *gast.TextBlock:
		return container(KindParagraph, n, source)
	case *gast.Heading:
		out := container(KindHeading, n, source)
		out.Level = t.Level
		return out
	case *gast.Blockquote:
		return container(KindBlockquote, n, source)
	case *gast.List:
		out := container(KindList, n, source)
		out.Ordered = t.IsOrdered()
		out.Start = t.Start
		return out
	case *gast.ListItem:
		return container(KindListItem, n, source)
	case *gast.ThematicBreak:
		return &Node{Kind: KindThematicBreak}
	case *gast.FencedCodeBlock:
		return &Node{
			Kind:  KindCodeBlock,
			Lang:  string(t.Language(source)),
			Value: linesOf(n, source),
		}
	case *gast.CodeBlock:
		return &Node{Kind: KindCodeBlock, Value: linesOf(n, source)}
	case *gast.HTMLBlock:
		value := linesOf(n, source)
		if t.HasClosure() {
			value += string(t.ClosureLine.Value(source))
		}
		return NewRaw(strings.TrimSuffix(value, "\n"))
	case *gast.RawHTML:
		return NewRaw(segmentsOf(t.Segments, source))
	case *gast.Text:
		value := string(t.Segment.Value(source))
		if t.SoftLineBreak() {
			value += "\n"
		}
		return NewText(value)
	case *gast.String:
		return NewText(string(t.Value))
	case *gast.CodeSpan:
		return &Node{Kind: KindCodeSpan, Value: rawText(n, source)}
	case *gast.Emphasis:
		kind := KindEmphasis
		if t.Level >= 2 {
			kind = KindStrong
		}
		return container(kind, n, source)
	case *gast.Link:
		out := container(KindLink, n, source)
		out.URL = string(t.Destination)
		return out
	case *gast.AutoLink:
		url := string(t.URL(source))
		return &Node{
			Kind:     KindLink,
			URL:      url,
			Children: []*Node{NewText(string(t.Label(source)))},
		}
	case *gast.Image:
		return &Node{
			Kind: KindImage,
			URL:  string(t.Destination),
			Alt:  rawText(n, source),
		}
	case *east.Table:
		return container(KindTable, n, source)
	case *east.TableHeader:
		return container(KindTableRow, n, source)
	case *east.TableRow:
		return container(KindTableRow, n, source)
	case *east.TableCell:
		return container(KindTableCell, n, source)
	default:
		return NewText(rawText(n, source))
	}
}

// container converts the node's children under the given kind.
func container(kind NodeKind, n gast.Node, source []byte) *Node {
	out := &Node{Kind: kind}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out.Children = append(out.Children, convert(c, source))
	}
	return out
}

// linesOf joins a block node's source lines.
func linesOf(n gast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

// segmentsOf joins raw inline segments.
func segmentsOf(segments *text.Segments, source []byte) string {
	var b strings.Builder
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

// rawText concatenates every text segment under n.
func rawText(n gast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gast.Text:
			b.Write(t.Segment.Value(source))
		case *gast.String:
			b.Write(t.Value)
		default:
			b.WriteString(rawText(c, source))
		}
	}
	return b.String()
}
