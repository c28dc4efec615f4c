package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStyleEmbedded(t *testing.T) {
	css, err := LoadStyle("site")
	if err != nil {
		t.Fatalf("LoadStyle(\"site\") error = %v", err)
	}
	for _, class := range []string{".figure-right", ".figure-left", ".table-caption", ".footnote-ref", ".footnote-body"} {
		if !strings.Contains(css, class) {
			t.Errorf("site.css missing %s rule", class)
		}
	}
}

func TestLoadStyleNotFound(t *testing.T) {
	_, err := LoadStyle("nonexistent")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(\"nonexistent\") error = %v, want ErrStyleNotFound", err)
	}
}

func TestLoadTemplateEmbedded(t *testing.T) {
	for _, name := range []string{"page", "index"} {
		t.Run(name, func(t *testing.T) {
			tmpl, err := LoadTemplate(name)
			if err != nil {
				t.Fatalf("LoadTemplate(%q) error = %v", name, err)
			}
			if !strings.Contains(tmpl, "{{.Site.Title}}") {
				t.Errorf("template %q missing site title placeholder", name)
			}
		})
	}
}

func TestLoadTemplateNotFound(t *testing.T) {
	_, err := LoadTemplate("nonexistent")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(\"nonexistent\") error = %v, want ErrTemplateNotFound", err)
	}
}
