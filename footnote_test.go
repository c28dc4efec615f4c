package typeset

import "testing"

func TestCollectFootnotes(t *testing.T) {
	st := &state{}
	nodes := st.collectFootnotes([]*Node{
		NewText("甲[^a]乙[^b]"),
	})

	expected := []*Node{
		NewText("甲"),
		NewRaw(footnoteRef(1)),
		NewText("乙"),
		NewRaw(footnoteRef(2)),
	}
	assertNodeList(t, nodes, expected)

	if len(st.footnotes) != 2 {
		t.Fatalf("collected %d footnotes, want 2", len(st.footnotes))
	}
	if st.footnotes[0].Number != 1 || st.footnotes[0].Content != "a" {
		t.Errorf("first entry = %+v, want {1 a}", st.footnotes[0])
	}
	if st.footnotes[1].Number != 2 || st.footnotes[1].Content != "b" {
		t.Errorf("second entry = %+v, want {2 b}", st.footnotes[1])
	}
}

func TestCollectFootnotesSourceOrderAcrossNodes(t *testing.T) {
	st := &state{}
	st.collectFootnotes([]*Node{NewText("x[^第一个]")})
	st.collectFootnotes([]*Node{NewText("y[^第二个]")})

	if st.footnotes[0].Content != "第一个" || st.footnotes[1].Content != "第二个" {
		t.Errorf("entries out of source order: %+v", st.footnotes)
	}
}

func TestCollectFootnotesReservedPrefixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "figure reference excluded", input: "如[^图一]所示"},
		{name: "table reference excluded", input: "见[^表二]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &state{}
			out := st.collectFootnotes([]*Node{NewText(tt.input)})
			if len(st.footnotes) != 0 {
				t.Errorf("reserved marker collected as footnote: %+v", st.footnotes)
			}
			if len(out) != 1 || out[0].Kind != KindText || out[0].Value != tt.input {
				t.Errorf("reserved marker text altered: %+v", out[0])
			}
		})
	}
}

func TestCollectFootnotesMixedReservedAndPlain(t *testing.T) {
	st := &state{}
	out := st.collectFootnotes([]*Node{NewText("见[^图一]的说明[^真注]。")})

	expected := []*Node{
		NewText("见[^图一]的说明"),
		NewRaw(footnoteRef(1)),
		NewText("。"),
	}
	assertNodeList(t, out, expected)
	if len(st.footnotes) != 1 || st.footnotes[0].Content != "真注" {
		t.Errorf("footnotes = %+v, want one entry 真注", st.footnotes)
	}
}

func TestCollectFootnotesDropsEmptySegments(t *testing.T) {
	st := &state{}
	out := st.collectFootnotes([]*Node{NewText("[^a][^b]")})

	expected := []*Node{
		NewRaw(footnoteRef(1)),
		NewRaw(footnoteRef(2)),
	}
	assertNodeList(t, out, expected)
}

func TestCollectFootnotesScansRawNodes(t *testing.T) {
	// The anchor rewrites may re-tag a node raw before collection runs;
	// markers inside it must still be collected.
	st := &state{}
	out := st.collectFootnotes([]*Node{NewRaw(`见<a href="#x">x</a>[^注]`)})

	if len(st.footnotes) != 1 || st.footnotes[0].Content != "注" {
		t.Fatalf("footnotes = %+v, want one entry 注", st.footnotes)
	}
	if out[len(out)-1].Value != footnoteRef(1) {
		t.Errorf("marker not replaced: %+v", out)
	}
}

func TestCollectFootnotesIgnoresRenderedRefs(t *testing.T) {
	st := &state{}
	rendered := NewRaw(footnoteRef(7))
	out := st.collectFootnotes([]*Node{rendered})

	if len(st.footnotes) != 0 {
		t.Errorf("rendered reference re-collected: %+v", st.footnotes)
	}
	if len(out) != 1 || out[0] != rendered {
		t.Error("rendered reference must pass through unchanged")
	}
}

func TestUnterminatedMarkerPassesThrough(t *testing.T) {
	st := &state{}
	out := st.collectFootnotes([]*Node{NewText("文字[^未闭合")})

	if len(st.footnotes) != 0 {
		t.Errorf("unterminated marker collected: %+v", st.footnotes)
	}
	if out[0].Value != "文字[^未闭合" {
		t.Errorf("value = %q, want untouched text", out[0].Value)
	}
}
