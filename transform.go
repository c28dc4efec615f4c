package typeset

import "strings"

// trailingMark is appended to the last paragraph of every document.
const trailingMark = "¶"

// encodedSpace is the percent-encoded-space artifact some editors leave in
// pasted text; it is collapsed before any rule runs.
const encodedSpace = "%20"

// state carries the counters and collected footnotes for one traversal.
// Every Transform call constructs a fresh state, so concurrent documents
// never share numbering.
type state struct {
	figureCount   int
	tableCount    int
	footnoteCount int
	footnotes     []FootnoteEntry
}

// Transform rewrites the document tree in place into its publication-ready
// form. It visits every paragraph, table, and table cell in document order,
// runs the rewrite chain on each node's children, then appends the trailing
// mark and, if any footnotes were collected, the footnote section. Any error
// aborts the transform and is returned to the caller.
func Transform(doc *Node) error {
	if doc == nil {
		return ErrNilDocument
	}
	st := &state{}
	if err := st.walk(doc); err != nil {
		return err
	}
	st.finalize(doc)
	return nil
}

// walk visits the tree in document order, processing the children of every
// paragraph, table, and table-cell node.
func (st *state) walk(n *Node) error {
	switch n.Kind {
	case KindParagraph, KindTable, KindTableCell:
		children, err := st.process(n.Children)
		if err != nil {
			return err
		}
		n.Children = children
	}
	for _, c := range n.Children {
		if err := st.walk(c); err != nil {
			return err
		}
	}
	return nil
}

// process runs the rewrite chain over one sibling list. Each pass consumes
// the previous pass's output. The sequence is fixed: reordering it changes
// the output, even where individual rules look independent.
func (st *state) process(nodes []*Node) ([]*Node, error) {
	normalizeEncodedSpaces(nodes)

	nodes = spliceFootnoteLinks(nodes)
	for _, r := range anchorLinkRules {
		nodes = rewritePattern(nodes, r)
	}
	nodes = st.collectFootnotes(nodes)

	nodes, err := st.numberFigures(nodes)
	if err != nil {
		return nil, err
	}
	nodes = rewritePattern(nodes, figureRefLabel)

	nodes, err = st.numberTables(nodes)
	if err != nil {
		return nil, err
	}
	nodes = rewritePattern(nodes, tableRefLabel)

	nodes = rewritePattern(nodes, emphasisBrackets)
	nodes = rewritePattern(nodes, cjkBeforeLatin)
	nodes = rewritePattern(nodes, latinBeforeCJK)
	for i := 0; i < punctPasses; i++ {
		nodes = rewritePattern(nodes, punctSpacing)
	}
	nodes = rewritePattern(nodes, cornerQuotes)
	nodes = rewritePattern(nodes, attributionLine)
	for _, r := range alignmentRules {
		nodes = rewritePattern(nodes, r)
	}
	return nodes, nil
}

// normalizeEncodedSpaces collapses the %20 artifact in text and raw values.
func normalizeEncodedSpaces(nodes []*Node) {
	for _, n := range nodes {
		if n.Kind == KindText || n.Kind == KindRaw {
			n.Value = strings.ReplaceAll(n.Value, encodedSpace, " ")
		}
	}
}

// finalize appends the trailing mark to the last paragraph with content,
// then emits the footnote section: a divider and one rendering block per
// footnote, in collection order.
func (st *state) finalize(doc *Node) {
	if p := lastContentParagraph(doc); p != nil {
		leaf := p.Children[len(p.Children)-1]
		if leaf.Kind == KindText || leaf.Kind == KindRaw {
			leaf.Value += trailingMark
		}
	}

	if len(st.footnotes) == 0 {
		return
	}
	doc.Children = append(doc.Children, &Node{Kind: KindThematicBreak})
	for _, fn := range st.footnotes {
		doc.Children = append(doc.Children, &Node{
			Kind:     KindParagraph,
			Children: []*Node{NewRaw(footnoteBody(fn))},
		})
	}
}

// lastContentParagraph returns the last paragraph node in document order
// that has any children, or nil.
func lastContentParagraph(n *Node) *Node {
	var last *Node
	if n.Kind == KindParagraph && len(n.Children) > 0 {
		last = n
	}
	for _, c := range n.Children {
		if p := lastContentParagraph(c); p != nil {
			last = p
		}
	}
	return last
}

// Process parses raw markdown, transforms the tree, and serializes it back
// to markdown with embedded HTML fragments.
func Process(source []byte) ([]byte, error) {
	doc, err := Parse(source)
	if err != nil {
		return nil, err
	}
	if err := Transform(doc); err != nil {
		return nil, err
	}
	return []byte(Render(doc)), nil
}
