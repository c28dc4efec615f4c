package typeset

import (
	"fmt"
	"strings"
)

// Render serializes a document tree back to markdown with embedded HTML.
// Raw-markup values are emitted verbatim; no escaping or validation happens
// here, malformed markup passes straight through.
func Render(doc *Node) string {
	var b strings.Builder
	renderBlocks(&b, doc.Children, "")
	return b.String()
}

// renderBlocks writes block-level nodes separated by blank lines, each line
// prefixed (used for blockquote and list nesting).
func renderBlocks(b *strings.Builder, nodes []*Node, prefix string) {
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(prefix)
			b.WriteString("\n")
		}
		renderBlock(b, n, prefix)
	}
}

func renderBlock(b *strings.Builder, n *Node, prefix string) {
	switch n.Kind {
	case KindParagraph:
		writePrefixedLines(b, renderInline(n.Children), prefix)
	case KindHeading:
		b.WriteString(prefix)
		b.WriteString(strings.Repeat("#", n.Level))
		b.WriteString(" ")
		b.WriteString(renderInline(n.Children))
		b.WriteString("\n")
	case KindRaw:
		writePrefixedLines(b, n.Value, prefix)
	case KindText:
		writePrefixedLines(b, n.Value, prefix)
	case KindCodeBlock:
		b.WriteString(prefix)
		b.WriteString("```")
		b.WriteString(n.Lang)
		b.WriteString("\n")
		value := n.Value
		if value != "" && !strings.HasSuffix(value, "\n") {
			value += "\n"
		}
		for _, line := range strings.SplitAfter(value, "\n") {
			if line == "" {
				continue
			}
			b.WriteString(prefix)
			b.WriteString(line)
		}
		b.WriteString(prefix)
		b.WriteString("```\n")
	case KindBlockquote:
		var inner strings.Builder
		renderBlocks(&inner, n.Children, "")
		for _, line := range strings.Split(strings.TrimSuffix(inner.String(), "\n"), "\n") {
			b.WriteString(prefix)
			b.WriteString("> ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	case KindList:
		renderList(b, n, prefix)
	case KindThematicBreak:
		b.WriteString(prefix)
		b.WriteString("---\n")
	case KindTable:
		renderTable(b, n, prefix)
	default:
		writePrefixedLines(b, renderInline(n.Children), prefix)
	}
}

// renderList writes list items with their markers, indenting continuation
// lines to the marker width.
func renderList(b *strings.Builder, list *Node, prefix string) {
	for i, item := range list.Children {
		marker := "- "
		if list.Ordered {
			start := list.Start
			if start == 0 {
				start = 1
			}
			marker = fmt.Sprintf("%d. ", start+i)
		}

		var inner strings.Builder
		renderBlocks(&inner, item.Children, "")
		lines := strings.Split(strings.TrimSuffix(inner.String(), "\n"), "\n")
		for j, line := range lines {
			b.WriteString(prefix)
			if j == 0 {
				b.WriteString(marker)
			} else {
				b.WriteString(strings.Repeat(" ", len(marker)))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
}

// renderTable writes rows as a GFM pipe table, with the first row as the
// header. Raw children (the numbered caption) are emitted after the table,
// on their own lines.
func renderTable(b *strings.Builder, table *Node, prefix string) {
	var after []*Node
	headerDone := false
	for _, child := range table.Children {
		if child.Kind != KindTableRow {
			after = append(after, child)
			continue
		}
		cells := make([]string, 0, len(child.Children))
		for _, cell := range child.Children {
			cells = append(cells, strings.TrimSpace(renderInline(cell.Children)))
		}
		b.WriteString(prefix)
		b.WriteString("| ")
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString(" |\n")
		if !headerDone {
			headerDone = true
			b.WriteString(prefix)
			b.WriteString("|")
			b.WriteString(strings.Repeat(" --- |", len(cells)))
			b.WriteString("\n")
		}
	}
	for _, child := range after {
		b.WriteString(prefix)
		b.WriteString(child.Value)
		b.WriteString("\n")
	}
}

// writePrefixedLines writes a possibly multi-line value with the prefix.
func writePrefixedLines(b *strings.Builder, value string, prefix string) {
	for _, line := range strings.Split(strings.TrimSuffix(value, "\n"), "\n") {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// renderInline serializes inline nodes to markdown text.
func renderInline(nodes []*Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case KindText, KindRaw:
			b.WriteString(n.Value)
		case KindCodeSpan:
			b.WriteString("`")
			b.WriteString(n.Value)
			b.WriteString("`")
		case KindEmphasis:
			b.WriteString("*")
			b.WriteString(renderInline(n.Children))
			b.WriteString("*")
		case KindStrong:
			b.WriteString("**")
			b.WriteString(renderInline(n.Children))
			b.WriteString("**")
		case KindLink:
			b.WriteString("[")
			b.WriteString(renderInline(n.Children))
			b.WriteString("](")
			b.WriteString(n.URL)
			b.WriteString(")")
		case KindImage:
			b.WriteString("![")
			b.WriteString(n.Alt)
			b.WriteString("](")
			b.WriteString(n.URL)
			b.WriteString(")")
		default:
			b.WriteString(renderInline(n.Children))
		}
	}
	return b.String()
}
