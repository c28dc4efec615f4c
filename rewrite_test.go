package typeset

import "testing"

func TestRewritePattern(t *testing.T) {
	r := mustRule(`==([^=]+)==`, `<mark>$1</mark>`)

	tests := []struct {
		name         string
		node         *Node
		expectedKind NodeKind
		expectedVal  string
	}{
		{
			name:         "matching text becomes raw",
			node:         NewText("see ==this== here"),
			expectedKind: KindRaw,
			expectedVal:  "see <mark>this</mark> here",
		},
		{
			name:         "all occurrences substituted in one pass",
			node:         NewText("==a== and ==b=="),
			expectedKind: KindRaw,
			expectedVal:  "<mark>a</mark> and <mark>b</mark>",
		},
		{
			name:         "matching raw stays raw output",
			node:         NewRaw("<p>==x==</p>"),
			expectedKind: KindRaw,
			expectedVal:  "<p><mark>x</mark></p>",
		},
		{
			name:         "unmatched text stays text",
			node:         NewText("plain"),
			expectedKind: KindText,
			expectedVal:  "plain",
		},
		{
			name:         "unmatched raw stays raw",
			node:         NewRaw("<br>"),
			expectedKind: KindRaw,
			expectedVal:  "<br>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := rewritePattern([]*Node{tt.node}, r)
			if len(out) != 1 {
				t.Fatalf("rewritePattern() returned %d nodes, want 1", len(out))
			}
			if out[0].Kind != tt.expectedKind {
				t.Errorf("kind = %v, want %v", out[0].Kind, tt.expectedKind)
			}
			if out[0].Value != tt.expectedVal {
				t.Errorf("value = %q, want %q", out[0].Value, tt.expectedVal)
			}
		})
	}
}

func TestRewritePatternPassThrough(t *testing.T) {
	r := mustRule(`x`, `y`)
	img := &Node{Kind: KindImage, URL: "x.png", Alt: "x"}
	link := &Node{Kind: KindLink, URL: "x", Children: []*Node{NewText("x")}}

	out := rewritePattern([]*Node{img, link}, r)
	if out[0] != img || out[1] != link {
		t.Error("non-candidate kinds must pass through unexamined")
	}
}

func TestAnchorLinkRules(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "in-page without description",
			input:    "见[[#背景]]。",
			expected: `见<a href="#背景">背景</a>。`,
		},
		{
			name:     "in-page with description",
			input:    "见[[#背景|上文]]。",
			expected: `见<a href="#背景">上文</a>。`,
		},
		{
			name:     "cross-document without description",
			input:    "另见[[old-post#结论]]。",
			expected: `另见<a href="/old-post/#结论">结论</a>。`,
		},
		{
			name:     "cross-document with description",
			input:    "另见[[old-post#结论|那篇文章]]。",
			expected: `另见<a href="/old-post/#结论">那篇文章</a>。`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := []*Node{NewText(tt.input)}
			for _, r := range anchorLinkRules {
				nodes = rewritePattern(nodes, r)
			}
			if nodes[0].Value != tt.expected {
				t.Errorf("got %q, want %q", nodes[0].Value, tt.expected)
			}
			if nodes[0].Kind != KindRaw {
				t.Errorf("kind = %v, want raw", nodes[0].Kind)
			}
		})
	}
}

func TestCrossDocRuleSkipsInPageForm(t *testing.T) {
	nodes := []*Node{NewText("[[#only-anchor]]")}
	nodes = rewritePattern(nodes, crossDocLinkDesc)
	nodes = rewritePattern(nodes, crossDocLink)
	if nodes[0].Kind != KindText {
		t.Fatalf("cross-document rules must not match the #-prefixed form, got %q", nodes[0].Value)
	}
}

func TestSpacingRules(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		rules    []rule
		expected string
	}{
		{
			name:     "space inserted between CJK and Latin",
			input:    "我用Go写博客",
			rules:    []rule{cjkBeforeLatin, latinBeforeCJK},
			expected: "我用 Go 写博客",
		},
		{
			name:     "space inserted around digits",
			input:    "共3篇",
			rules:    []rule{cjkBeforeLatin, latinBeforeCJK},
			expected: "共 3 篇",
		},
		{
			name:     "space collapsed around full-width punctuation",
			input:    "第一， 第二 。完",
			rules:    []rule{punctSpacing},
			expected: "第一，第二。完",
		},
		{
			name:     "punctuation collapse is idempotent",
			input:    "好， 的",
			rules:    []rule{punctSpacing, punctSpacing, punctSpacing},
			expected: "好，的",
		},
		{
			name:     "bracket pair emphasis",
			input:    "结论：【重要】如下",
			rules:    []rule{emphasisBrackets},
			expected: "结论：<strong>重要</strong>如下",
		},
		{
			name:     "corner quotes wrapped in spans",
			input:    "他说「好」",
			rules:    []rule{cornerQuotes},
			expected: `他说<span class="cjk-quote">「</span>好<span class="cjk-quote">」</span>`,
		},
		{
			name:     "attribution line right aligned",
			input:    "——鲁迅",
			rules:    []rule{attributionLine},
			expected: `<div style="text-align:right">——鲁迅</div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := []*Node{NewText(tt.input)}
			for _, r := range tt.rules {
				nodes = rewritePattern(nodes, r)
			}
			if nodes[0].Value != tt.expected {
				t.Errorf("got %q, want %q", nodes[0].Value, tt.expected)
			}
		})
	}
}

func TestAlignmentRules(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Right plain",
			input:    ".Right{完}",
			expected: `<div style="text-align:right">完</div>`,
		},
		{
			name:     "Center plain",
			input:    ".Center{目录}",
			expected: `<div style="text-align:center">目录</div>`,
		},
		{
			name:     "Left plain",
			input:    ".Left{注}",
			expected: `<div style="text-align:left">注</div>`,
		},
		{
			name:     "right italic",
			input:    ".right{完}",
			expected: `<div style="text-align:right"><em>完</em></div>`,
		},
		{
			name:     "center italic",
			input:    ".center{题记}",
			expected: `<div style="text-align:center"><em>题记</em></div>`,
		},
		{
			name:     "left italic",
			input:    ".left{注}",
			expected: `<div style="text-align:left"><em>注</em></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := []*Node{NewText(tt.input)}
			for _, r := range alignmentRules {
				nodes = rewritePattern(nodes, r)
			}
			if nodes[0].Value != tt.expected {
				t.Errorf("got %q, want %q", nodes[0].Value, tt.expected)
			}
		})
	}
}
