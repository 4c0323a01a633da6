// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders CourtListener responses as line-oriented text
// for human (and model) consumption. No state, no I/O.
package format

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes markup from s and collapses the resulting
// whitespace runs to single spaces. Tags are replaced with nothing.
// The function is idempotent: output never contains markup, and
// collapsing collapsed whitespace is a no-op.
func StripHTML(s string) string {
	return strings.Join(strings.Fields(StripTags(s)), " ")
}

// StripTags removes markup from s but preserves the original
// whitespace, including line structure. Used for full opinion bodies
// where paragraph breaks carry meaning.
func StripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	tz := html.NewTokenizer(strings.NewReader(s))
	for {
		switch tz.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tz.Text())
		}
	}
}
