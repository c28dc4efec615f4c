package typeset

import "strings"

// Footnote marker delimiters. A footnote whose content is a markdown link
// gets broken apart by the parser: the text before the link keeps the open
// marker, the text after it starts with the close marker.
const (
	footnoteOpen  = "[^"
	footnoteClose = "]"
)

// spliceFootnoteLinks reassembles footnote markers split around a link node.
// It scans the sibling list with a three-node window: text ending in "[^",
// a link with at least one child, text starting with "]". A match collapses
// the three nodes into one text node carrying the canonical marker around
// the link's first-child text, and the close node's remainder is re-injected
// so back-to-back markers keep matching. Adjacent text nodes in the result
// are coalesced.
func spliceFootnoteLinks(nodes []*Node) []*Node {
	// Parsers split literal text around failed link openers; merge those
	// fragments first so the window sees whole marker values.
	rest := coalesceText(nodes)

	out := make([]*Node, 0, len(rest))
	i := 0
	for i < len(rest) {
		n := rest[i]
		if n.Kind == KindText && strings.HasSuffix(n.Value, footnoteOpen) &&
			i+2 < len(rest) &&
			rest[i+1].Kind == KindLink && len(rest[i+1].Children) > 0 &&
			rest[i+2].Kind == KindText && strings.HasPrefix(rest[i+2].Value, footnoteClose) {
			label := rest[i+1].Children[0].Value
			spliced := strings.TrimSuffix(n.Value, footnoteOpen) + footnoteOpen + label + footnoteClose
			out = append(out, NewText(spliced))

			// Re-inject the remainder of the close node so the scan
			// resumes on it.
			rest[i+2] = NewText(strings.TrimPrefix(rest[i+2].Value, footnoteClose))
			i += 2
			continue
		}
		out = append(out, n)
		i++
	}

	return coalesceText(out)
}

// coalesceText merges runs of adjacent text nodes into single nodes.
// Adjacency across a non-text node is never merged.
func coalesceText(nodes []*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == KindText && len(out) > 0 && out[len(out)-1].Kind == KindText {
			out[len(out)-1] = NewText(out[len(out)-1].Value + n.Value)
			continue
		}
		out = append(out, n)
	}
	return out
}
