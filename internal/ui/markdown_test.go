package ui

import (
	"strings"
	"testing"
)

func TestMarkdownRenderer_Render(t *testing.T) {
	m := NewMarkdownRenderer("notty", nil)
	out := m.Render("**Mandate:** welfare of retired personnel", 60)
	if !strings.Contains(out, "Mandate:") || !strings.Contains(out, "retired personnel") {
		t.Errorf("markdown not rendered: %q", out)
	}
	if _, ok := m.renderers[60]; !ok {
		t.Error("renderer for width 60 not cached")
	}
}

func TestMarkdownRenderer_NilFallsBackToSource(t *testing.T) {
	var m *MarkdownRenderer
	if got := m.Render("  plain *text*  \n", 40); got != "plain *text*" {
		t.Errorf("nil renderer = %q", got)
	}
}
