// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"strings"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
)

// courtListenerSite prefixes the relative absolute_url values the API
// returns.
const courtListenerSite = "https://www.courtlistener.com"

// SearchResults renders one page of search hits as numbered blocks, in
// the order the API returned them. An empty page yields an explicit
// no-results message, never empty text. Hits missing optional fields
// (citations, snippet) omit those lines rather than printing a
// placeholder.
func SearchResults(resp *courtlistener.SearchResponse, header string) string {
	if len(resp.Results) == 0 {
		return fmt.Sprintf("No results found. %s", header)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d total results)\n", header, resp.Count)

	for i, hit := range resp.Results {
		b.WriteString("\n")
		b.WriteString(searchHitBlock(i+1, hit))
	}
	return b.String()
}

func searchHitBlock(rank int, hit courtlistener.SearchHit) string {
	name := hit.CaseName
	if name == "" {
		name = "Unknown"
	}
	court := hit.Court
	if court == "" {
		court = "?"
	}
	date := hit.DateFiled
	if date == "" {
		date = "?"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s (%s, %s)\n", rank, name, court, date)
	if len(hit.Citations) > 0 {
		fmt.Fprintf(&b, "   Citations: %s\n", strings.Join(hit.Citations, ", "))
	}
	fmt.Fprintf(&b, "   Cited by: %d cases\n", hit.CitedBy())
	if snippet := StripHTML(hit.Snippet); snippet != "" {
		fmt.Fprintf(&b, "   Snippet: %s\n", snippet)
	}
	if hit.ClusterID != 0 {
		fmt.Fprintf(&b, "   Cluster ID: %d\n", hit.ClusterID)
	}
	if hit.AbsoluteURL != "" {
		fmt.Fprintf(&b, "   URL: %s%s\n", courtListenerSite, hit.AbsoluteURL)
	}
	return b.String()
}
