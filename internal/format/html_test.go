// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "Hello world", "Hello world"},
		{"simple tags", "<p>Hello <b>world</b></p>", "Hello world"},
		{"highlight marks", "custodial <mark>interrogation</mark> rules", "custodial interrogation rules"},
		{"nested tags", "<div><span>a</span> <em>b</em></div>", "a b"},
		{"whitespace collapsed", "<p>a</p>\n\n<p>b</p>", "a b"},
		{"empty", "", ""},
		{"only tags", "<br/><hr/>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.in); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripHTMLIdempotent(t *testing.T) {
	inputs := []string{
		"Hello world",
		"<p>Hello <b>world</b></p>",
		"custodial <mark>interrogation</mark>",
	}
	for _, in := range inputs {
		once := StripHTML(in)
		twice := StripHTML(once)
		if once != twice {
			t.Errorf("not idempotent: StripHTML(%q) = %q, StripHTML again = %q", in, once, twice)
		}
	}
}

func TestStripTagsPreservesLineStructure(t *testing.T) {
	in := "<p>First paragraph.</p>\n<p>Second paragraph.</p>"
	want := "First paragraph.\nSecond paragraph."
	if got := StripTags(in); got != want {
		t.Errorf("StripTags = %q, want %q", got, want)
	}
}

func TestStripTagsPlainTextUntouched(t *testing.T) {
	in := "Line one.\n\n  Indented line two.\n"
	if got := StripTags(in); got != in {
		t.Errorf("StripTags changed plain text: %q", got)
	}
}
