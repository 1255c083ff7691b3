package services

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Heading\n\nHello **world**")
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}

	if !strings.Contains(html, "<h1 id=\"heading\">Heading</h1>") {
		t.Errorf("heading not rendered: %q", html)
	}
	if !strings.Contains(html, "<strong>world</strong>") {
		t.Errorf("emphasis not rendered: %q", html)
	}
}

func TestRenderMarkdown_GFMTables(t *testing.T) {
	html, err := RenderMarkdown("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("GFM table not rendered: %q", html)
	}
}
