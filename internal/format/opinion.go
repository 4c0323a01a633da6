// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"strings"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
)

// DefaultMaxOpinionChars bounds opinion text when the caller does not
// ask for a specific length.
const DefaultMaxOpinionChars = 50000

// OpinionMeta carries cluster-level context for an opinion rendering.
// Fields are optional; empty ones are omitted from the output.
type OpinionMeta struct {
	CaseName  string
	DateFiled string
	CaseURL   string
}

// OpinionText renders a court opinion with a metadata header followed
// by the text body. Markup sources are stripped of tags with line
// structure preserved; text past maxChars is truncated with a notice
// pointing at the full opinion. An opinion with no populated text
// source yields an explicit no-text message.
func OpinionText(op *courtlistener.Opinion, meta OpinionMeta, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxOpinionChars
	}

	raw, source, markup, ok := op.BestText()
	if !ok {
		return fmt.Sprintf("No text content available for opinion %d.", op.ID)
	}

	text := raw
	if markup {
		text = StripTags(raw)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Sprintf("No text content available for opinion %d.", op.ID)
	}

	truncated := false
	if len(text) > maxChars {
		text = text[:maxChars]
		truncated = true
	}

	var lines []string
	if meta.CaseName != "" {
		lines = append(lines, fmt.Sprintf("Case: %s", meta.CaseName))
	}
	if meta.DateFiled != "" {
		lines = append(lines, fmt.Sprintf("Date: %s", meta.DateFiled))
	}
	if op.AuthorStr != "" {
		lines = append(lines, fmt.Sprintf("Author: %s", op.AuthorStr))
	}
	if op.Type != "" {
		lines = append(lines, fmt.Sprintf("Opinion Type: %s", op.Type))
	}
	lines = append(lines,
		fmt.Sprintf("Text Source: %s", source),
		fmt.Sprintf("Opinion ID: %d", op.ID),
		"",
		"--- OPINION TEXT ---",
		text,
	)

	if truncated {
		notice := fmt.Sprintf("[Truncated at %d characters.", maxChars)
		if meta.CaseURL != "" {
			notice += fmt.Sprintf(" Full opinion: %s%s", courtListenerSite, meta.CaseURL)
		}
		notice += "]"
		lines = append(lines, "", notice)
	}

	return strings.Join(lines, "\n")
}
