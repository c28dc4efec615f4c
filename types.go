package typeset

// NodeKind identifies the variant of a Node.
type NodeKind int

// Node kinds. Text and Raw carry a string value; Raw values are final
// embeddable markup and are never re-escaped or re-parsed. Container kinds
// own an ordered child sequence.
const (
	KindDocument NodeKind = iota
	KindParagraph
	KindHeading
	KindText
	KindRaw
	KindEmphasis
	KindStrong
	KindCodeSpan
	KindCodeBlock
	KindBlockquote
	KindList
	KindListItem
	KindLink
	KindImage
	KindTable
	KindTableRow
	KindTableCell
	KindThematicBreak
)

// String returns the kind name for debugging output.
func (k NodeKind) String() string {
	names := [...]string{
		"document", "paragraph", "heading", "text", "raw", "emphasis",
		"strong", "code-span", "code-block", "blockquote", "list",
		"list-item", "link", "image", "table", "table-row", "table-cell",
		"thematic-break",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Node is one node of the document tree. Ownership is strictly tree-shaped:
// a pass replaces a parent's Children wholesale and never shares nodes
// between parents.
type Node struct {
	Kind     NodeKind
	Value    string  // text, raw markup, or code literal
	URL      string  // link destination or image source
	Alt      string  // image alternative text
	Level    int     // heading level
	Lang     string  // fenced code block language
	Ordered  bool    // ordered list
	Start    int     // ordered list start number
	Children []*Node // container content, in document order
}

// NewText creates a text node.
func NewText(value string) *Node {
	return &Node{Kind: KindText, Value: value}
}

// NewRaw creates a raw-markup node whose value is final output.
func NewRaw(value string) *Node {
	return &Node{Kind: KindRaw, Value: value}
}

// FootnoteEntry is one collected footnote: its assigned document-wide
// number and the marker content, verbatim.
type FootnoteEntry struct {
	Number  int
	Content string
}
