package typeset

import (
	"fmt"
	"strings"
)

// tableCaptionPrefix identifies a caption block already emitted by a prior
// traversal, so re-running the pipeline never double-numbers a table.
const tableCaptionPrefix = `<caption class="table-caption"`

// numberTables tracks table boundaries across a sibling list and emits one
// numbered caption per table. Entering a table (the first row node) reads
// the first cell's first inline child as the caption title and blanks that
// cell, since the caption replaces it visually. Leaving the table (the first
// non-row node, or the end of the list) emits the caption after the rows;
// the stylesheet repositions it above with caption-side.
func (st *state) numberTables(nodes []*Node) ([]*Node, error) {
	out := make([]*Node, 0, len(nodes))
	inTable := false
	titled := false
	pendingTitle := ""

	emit := func() error {
		st.tableCount++
		num, err := CJKNumeral(st.tableCount)
		if err != nil {
			return err
		}
		label := tableRefPrefix + num
		out = append(out, NewRaw(fmt.Sprintf(
			`%s><a id="%s" href="#%s-back">%s</a> %s</caption>`,
			tableCaptionPrefix, label, label, label, pendingTitle)))
		inTable, titled, pendingTitle = false, false, ""
		return nil
	}

	for _, n := range nodes {
		if n.Kind == KindTableRow {
			inTable = true
			if !titled {
				titled = true
				pendingTitle = extractCaptionTitle(n)
			}
			out = append(out, n)
			continue
		}
		if inTable {
			// A caption from an earlier run means this table is already
			// numbered; reset without emitting.
			if n.Kind == KindRaw && strings.HasPrefix(n.Value, tableCaptionPrefix) {
				inTable, titled, pendingTitle = false, false, ""
			} else if err := emit(); err != nil {
				return nil, err
			}
		}
		out = append(out, n)
	}
	if inTable {
		if err := emit(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// extractCaptionTitle reads the text of the row's first cell's first inline
// child and blanks it. Missing structure degrades to an empty title.
func extractCaptionTitle(row *Node) string {
	if len(row.Children) == 0 {
		return ""
	}
	cell := row.Children[0]
	if cell.Kind != KindTableCell || len(cell.Children) == 0 {
		return ""
	}
	inline := cell.Children[0]
	title := inline.Value
	inline.Value = ""
	return title
}
