package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSanitize_RemovesScripts(t *testing.T) {
	in := `<p>hello</p><script>alert("x")</script>`
	got := Sanitize(in)
	if strings.Contains(got, "<script") {
		t.Errorf("script survived: %q", got)
	}
	if !strings.Contains(got, "<p>hello</p>") {
		t.Errorf("paragraph stripped: %q", got)
	}
}

func TestSanitize_RemovesEventHandlers(t *testing.T) {
	got := Sanitize(`<a href="https://example.com" onclick="evil()">link</a>`)
	if strings.Contains(got, "onclick") {
		t.Errorf("event handler survived: %q", got)
	}
	if !strings.Contains(got, "link") {
		t.Errorf("link text stripped: %q", got)
	}
}

func TestSanitize_RemovesJavascriptURLs(t *testing.T) {
	got := Sanitize(`<a href="javascript:alert(1)">x</a>`)
	if strings.Contains(got, "javascript:") {
		t.Errorf("javascript URL survived: %q", got)
	}
}

func TestSanitize_KeepsTables(t *testing.T) {
	in := `<table><tr><td colspan="2">cell</td></tr></table>`
	got := Sanitize(in)
	if !strings.Contains(got, "<table>") || !strings.Contains(got, `colspan="2"`) {
		t.Errorf("table markup lost: %q", got)
	}
}

func TestSanitize_Empty(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\") = %q", got)
	}
}
