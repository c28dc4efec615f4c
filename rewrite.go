package typeset

import "regexp"

// rule pairs a compiled pattern with its substitution template. Rules are
// applied in a fixed, documented order by the pipeline; the order is part
// of the output contract and must not be changed.
type rule struct {
	re   *regexp.Regexp
	tmpl string
}

// rewritePattern applies one rule across a sibling list and returns the new
// list. Only text, raw-markup, and blockquote nodes are candidates; every
// other kind passes through unexamined. A match substitutes the whole value
// (all occurrences, in one pass) and re-tags the node as raw markup so
// downstream consumers treat it as pre-rendered output. Non-matching nodes
// keep their kind and value.
func rewritePattern(nodes []*Node, r rule) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case KindText, KindRaw, KindBlockquote:
			if n.Value != "" && r.re.MatchString(n.Value) {
				out = append(out, NewRaw(r.re.ReplaceAllString(n.Value, r.tmpl)))
				continue
			}
		}
		out = append(out, n)
	}
	return out
}
