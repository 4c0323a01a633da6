// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"strings"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
)

// CitationMatches renders a citation-lookup response. Zero matches is
// a distinct "not found" outcome, not an error.
func CitationMatches(matches []courtlistener.CitationMatch, queried string) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No cases found for citation: %s", queried)
	}

	var lines []string
	for _, m := range matches {
		cite := m.Citation
		if cite == "" {
			cite = "?"
		}
		lines = append(lines, fmt.Sprintf("Citation: %s", cite))
		if len(m.NormalizedCitations) > 0 {
			lines = append(lines, fmt.Sprintf("Normalized: %s", strings.Join(m.NormalizedCitations, ", ")))
		}
		lines = append(lines, fmt.Sprintf("Status: %d", m.Status))

		switch {
		case m.Resolved():
			for _, cl := range m.Clusters {
				lines = append(lines, clusterLines(cl)...)
			}
		case m.Status == 404:
			lines = append(lines, "No matching case found for this citation.")
		}
		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func clusterLines(cl courtlistener.Cluster) []string {
	name := cl.CaseName
	if name == "" {
		name = "Unknown"
	}
	date := cl.DateFiled
	if date == "" {
		date = "?"
	}

	lines := []string{
		"",
		fmt.Sprintf("Case: %s", name),
		fmt.Sprintf("Date Filed: %s", date),
	}
	if cites := cl.CitationStrings(); len(cites) > 0 {
		lines = append(lines, fmt.Sprintf("Citations: %s", strings.Join(cites, ", ")))
	}
	lines = append(lines, fmt.Sprintf("Cluster ID: %d", cl.ID))
	if cl.AbsoluteURL != "" {
		lines = append(lines, fmt.Sprintf("URL: %s%s", courtListenerSite, cl.AbsoluteURL))
	}
	return lines
}
