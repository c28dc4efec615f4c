package typeset

import (
	"fmt"
	"regexp"
	"strings"
)

// footnoteMarker matches an inline footnote, [^content].
var footnoteMarker = regexp.MustCompile(`\[\^([^\]]+)\]`)

// Marker contents starting with these prefixes are figure and table
// references, handled by their own labeling rules rather than the footnote
// collector.
const (
	figureRefPrefix = "图"
	tableRefPrefix  = "表"
)

// collectFootnotes extracts footnote markers from a sibling list. Each
// marker gets the next document-wide number, in encounter order; its content
// is appended to the traversal's footnote sequence and the marker itself is
// replaced by a raw forward-reference link. Segments outside markers become
// text nodes, empty segments dropped. Raw nodes are scanned too: the anchor
// rewrites run earlier and may have re-tagged a node that still carries
// markers. Already-rendered references contain no marker syntax, so a second
// traversal never re-collects them.
func (st *state) collectFootnotes(nodes []*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind != KindText && n.Kind != KindRaw {
			out = append(out, n)
			continue
		}
		out = append(out, st.splitFootnotes(n)...)
	}
	return out
}

// splitFootnotes splits one text node around its footnote markers.
func (st *state) splitFootnotes(n *Node) []*Node {
	matches := footnoteMarker.FindAllStringSubmatchIndex(n.Value, -1)
	if len(matches) == 0 {
		return []*Node{n}
	}

	var out []*Node
	pos := 0
	collected := false
	for _, m := range matches {
		content := n.Value[m[2]:m[3]]
		if strings.HasPrefix(content, figureRefPrefix) || strings.HasPrefix(content, tableRefPrefix) {
			continue
		}
		if seg := n.Value[pos:m[0]]; seg != "" {
			out = append(out, NewText(seg))
		}
		st.footnoteCount++
		st.footnotes = append(st.footnotes, FootnoteEntry{Number: st.footnoteCount, Content: content})
		out = append(out, NewRaw(footnoteRef(st.footnoteCount)))
		pos = m[1]
		collected = true
	}
	if !collected {
		return []*Node{n}
	}
	if seg := n.Value[pos:]; seg != "" {
		out = append(out, NewText(seg))
	}
	return out
}

// footnoteRef builds the in-text forward link for footnote n. The sup
// carries the backward-target id the footnote body links back to.
func footnoteRef(n int) string {
	return fmt.Sprintf(`<sup class="footnote-ref" id="fnref:%d"><a href="#fn:%d">[%d]</a></sup>`, n, n, n)
}

// footnoteBody builds the end-of-document rendering block for one footnote.
// The content is emitted verbatim; it is never re-processed.
func footnoteBody(fn FootnoteEntry) string {
	return fmt.Sprintf(`<span class="footnote-body" id="fn:%d"><a href="#fnref:%d">[%d]</a> %s</span>`,
		fn.Number, fn.Number, fn.Number, fn.Content)
}
