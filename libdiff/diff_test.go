package libdiff

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestTexts(t *testing.T) {
	diffs := Texts(`{ "a": 1 }`, `{"a":1}`)
	if !Changed(diffs) {
		t.Fatal("expected changes between raw and canonical text")
	}

	same := Texts(`{"a":1}`, `{"a":1}`)
	if Changed(same) {
		t.Errorf("expected no changes, got %v", same)
	}
}

func TestRenderPlain(t *testing.T) {
	diffs := Texts("abc", "abd")
	got := Render(diffs, false)
	if !strings.Contains(got, "[-c-]") || !strings.Contains(got, "{+d+}") {
		t.Errorf("Render() = %q, want deletion and insertion markers", got)
	}

	same := Texts("abc", "abc")
	if got := Render(same, false); got != "abc" {
		t.Errorf("Render() = %q, want %q", got, "abc")
	}
}

func TestRenderColored(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	diffs := Texts("abc", "abd")
	got := Render(diffs, true)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Render() = %q, want ANSI escapes", got)
	}
}
