package site

import (
	"strings"
	"unicode/utf8"

	xhtml "golang.org/x/net/html"
)

// summaryMaxRunes caps the auto-generated summary length.
const summaryMaxRunes = 160

// skippedSummaryElements are elements whose text does not belong in a
// summary: captions, footnote markers, code listings.
var skippedSummaryElements = map[string]bool{
	"figure": true,
	"sup":    true,
	"pre":    true,
	"table":  true,
	"h1":     true,
	"h2":     true,
	"h3":     true,
	"h4":     true,
	"h5":     true,
	"h6":     true,
}

// voidElements never receive a closing tag, so they must not affect the
// skip depth.
var voidElements = map[string]bool{
	"img": true, "br": true, "hr": true, "input": true,
	"meta": true, "link": true, "source": true, "wbr": true,
}

// ExtractSummary derives a plain-text summary from rendered post HTML.
// It walks the document, collecting text outside captions, footnotes, code
// and headings, and truncates at a rune boundary. Malformed HTML never
// fails; the tokenizer recovers and the result may just be shorter.
func ExtractSummary(rendered string) string {
	var b strings.Builder
	z := xhtml.NewTokenizer(strings.NewReader(rendered))
	depth := 0 // nesting depth inside skipped elements

	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			return truncateRunes(collapseSpace(b.String()), summaryMaxRunes)
		case xhtml.StartTagToken:
			name, _ := z.TagName()
			if voidElements[string(name)] {
				continue
			}
			if skippedSummaryElements[string(name)] || depth > 0 {
				depth++
			}
		case xhtml.EndTagToken:
			if depth > 0 {
				depth--
			}
		case xhtml.TextToken:
			if depth == 0 {
				b.Write(z.Text())
				b.WriteByte(' ')
			}
			if utf8.RuneCountInString(b.String()) > summaryMaxRunes*2 {
				return truncateRunes(collapseSpace(b.String()), summaryMaxRunes)
			}
		}
	}
}

// FirstImage returns the src of the first <img> in rendered post HTML,
// or "" if the post has no image.
func FirstImage(rendered string) string {
	z := xhtml.NewTokenizer(strings.NewReader(rendered))
	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			return ""
		}
		if tt != xhtml.StartTagToken && tt != xhtml.SelfClosingTagToken {
			continue
		}
		name, hasAttr := z.TagName()
		if string(name) != "img" || !hasAttr {
			continue
		}
		for {
			key, val, more := z.TagAttr()
			if string(key) == "src" {
				return string(val)
			}
			if !more {
				break
			}
		}
	}
}

// collapseSpace folds runs of whitespace into single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateRunes cuts s at a rune boundary, appending an ellipsis when
// anything was removed.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max])) + "…"
}
