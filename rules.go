package typeset

import "regexp"

// Precompiled rewrite rules, in the order the pipeline applies them.
var (
	// Wiki-style anchor links, [[target|description]]. The two
	// cross-document forms require a page name before the anchor, so they
	// cannot swallow the in-page #-prefixed form. Description variants run
	// first so the plain variants never see a pipe.
	crossDocLinkDesc = mustRule(`\[\[([^#|\]]+)#([^|\]]*)\|([^\]]+)\]\]`, `<a href="/$1/#$2">$3</a>`)
	crossDocLink     = mustRule(`\[\[([^#|\]]+)#([^|\]]*)\]\]`, `<a href="/$1/#$2">$2</a>`)
	inPageLinkDesc   = mustRule(`\[\[#([^|\]]+)\|([^\]]+)\]\]`, `<a href="#$1">$2</a>`)
	inPageLink       = mustRule(`\[\[#([^|\]]+)\]\]`, `<a href="#$1">$1</a>`)

	// In-text references to numbered figures and tables, e.g. [^图一].
	// Each becomes a forward link paired with a backward target so the
	// caption can link back to the reference site.
	figureRefLabel = mustRule(`\[\^(图[一二三四五六七八九十]+)\]`, `<a id="$1-back" href="#$1">$1</a>`)
	tableRefLabel  = mustRule(`\[\^(表[一二三四五六七八九十]+)\]`, `<a id="$1-back" href="#$1">$1</a>`)

	// 【】 brackets mark emphasized phrases; the markers are consumed.
	emphasisBrackets = mustRule(`【([^【】]+)】`, `<strong>$1</strong>`)

	// Spacing between Chinese and Latin/digit runs, both directions.
	cjkBeforeLatin = mustRule(`(\p{Han})([A-Za-z0-9])`, `$1 $2`)
	latinBeforeCJK = mustRule(`([A-Za-z0-9])(\p{Han})`, `$1 $2`)

	// Full-width punctuation supplies its own visual spacing; collapse any
	// whitespace around it.
	punctSpacing = mustRule(`\s*([，。！？；：、（）《》])\s*`, `$1`)

	// Corner quotes get an invisible span so the stylesheet can tighten
	// their built-in side bearings.
	cornerQuotes = mustRule(`([「」『』])`, `<span class="cjk-quote">$1</span>`)

	// Attribution lines, ——author, are pushed to the right margin.
	attributionLine = mustRule(`(?m)^(——.+)$`, `<div style="text-align:right">$1</div>`)

	// Alignment directives. The lowercase variants additionally italicize.
	alignmentRules = []rule{
		mustRule(`\.Right\{([^{}]*)\}`, `<div style="text-align:right">$1</div>`),
		mustRule(`\.Center\{([^{}]*)\}`, `<div style="text-align:center">$1</div>`),
		mustRule(`\.Left\{([^{}]*)\}`, `<div style="text-align:left">$1</div>`),
		mustRule(`\.right\{([^{}]*)\}`, `<div style="text-align:right"><em>$1</em></div>`),
		mustRule(`\.center\{([^{}]*)\}`, `<div style="text-align:center"><em>$1</em></div>`),
		mustRule(`\.left\{([^{}]*)\}`, `<div style="text-align:left"><em>$1</em></div>`),
	}
)

// anchorLinkRules lists the four wiki-link variants in application order.
var anchorLinkRules = []rule{
	crossDocLinkDesc,
	crossDocLink,
	inPageLinkDesc,
	inPageLink,
}

// punctPasses is the number of times the punctuation collapse runs, enough
// to reach a fixed point even when one substitution exposes another.
const punctPasses = 3

func mustRule(pattern, tmpl string) rule {
	return rule{re: regexp.MustCompile(pattern), tmpl: tmpl}
}
