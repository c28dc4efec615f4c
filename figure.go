package typeset

import (
	"fmt"
	"html"
	"strings"
)

// attachmentsSegment is the asset directory marker in image paths. Any URL
// containing it collapses to a root-relative /attachments/ path, so nested
// source layouts all resolve against the published asset root.
const attachmentsSegment = "attachments/"

// Float classes alternate per figure: odd ordinals float right, even left.
const (
	figureFloatRight = "figure-right"
	figureFloatLeft  = "figure-left"
)

// numberFigures replaces every image node in a sibling list with a numbered
// figure block. The caption carries the figure's backward/forward anchor
// pair (id 图N, linking to the in-text reference's 图N-back) labeled with the
// ordinal and the original alt text. Non-image nodes pass through unchanged.
func (st *state) numberFigures(nodes []*Node) ([]*Node, error) {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind != KindImage {
			out = append(out, n)
			continue
		}

		st.figureCount++
		num, err := CJKNumeral(st.figureCount)
		if err != nil {
			return nil, err
		}

		float := figureFloatRight
		if st.figureCount%2 == 0 {
			float = figureFloatLeft
		}
		label := figureRefPrefix + num
		src := rewriteAttachmentPath(n.URL)
		alt := html.EscapeString(n.Alt)

		out = append(out, NewRaw(fmt.Sprintf(
			`<figure class="%s"><img src="%s" alt="%s"><figcaption><a id="%s" href="#%s-back">%s</a> %s</figcaption></figure>`,
			float, src, alt, label, label, label, alt)))
	}
	return out, nil
}

// rewriteAttachmentPath collapses any path containing "attachments/" to the
// root-relative form, keeping everything after the marker. Other URLs are
// returned untouched.
func rewriteAttachmentPath(url string) string {
	i := strings.Index(url, attachmentsSegment)
	if i < 0 {
		return url
	}
	return "/" + attachmentsSegment + url[i+len(attachmentsSegment):]
}
