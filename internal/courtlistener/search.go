// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package courtlistener

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Search runs one v4 opinion search and returns the decoded page.
func (c *Client) Search(ctx context.Context, q SearchQuery) (*SearchResponse, error) {
	var out SearchResponse
	if err := c.getJSON(ctx, c.baseV4+"/search/", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchResponse is one page of v4 search results.
type SearchResponse struct {
	Count   int         `json:"count"`
	Results []SearchHit `json:"results"`
}

// SearchHit is a single opinion search result. CourtListener has
// shipped both camelCase and snake_case variants of some fields across
// v4 revisions, so the ambiguous ones decode through helpers.
type SearchHit struct {
	CaseName      string       `json:"caseName"`
	Court         string       `json:"court"`
	DateFiled     string       `json:"dateFiled"`
	Citations     CitationList `json:"citations"`
	Snippet       string       `json:"snippet"`
	ClusterID     int          `json:"cluster_id"`
	AbsoluteURL   string       `json:"absolute_url"`
	CiteCount     int          `json:"citeCount"`
	CitationCount int          `json:"citation_count"`
}

// CitedBy returns the citing-case count regardless of which field name
// the API used.
func (h SearchHit) CitedBy() int {
	if h.CiteCount > 0 {
		return h.CiteCount
	}
	return h.CitationCount
}

// CitationList is a list of reporter citations. The API returns either
// plain strings ("410 U.S. 113") or structured objects with volume,
// reporter and page; both decode to the rendered string form.
type CitationList []string

// UnmarshalJSON accepts null, an array of strings, or an array of
// citation objects.
func (l *CitationList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}

	var asStrings []string
	if err := json.Unmarshal(data, &asStrings); err == nil {
		*l = asStrings
		return nil
	}

	var asObjects []Citation
	if err := json.Unmarshal(data, &asObjects); err != nil {
		return fmt.Errorf("citations: unsupported shape: %w", err)
	}
	rendered := make([]string, 0, len(asObjects))
	for _, c := range asObjects {
		if s := c.String(); s != "" {
			rendered = append(rendered, s)
		}
	}
	*l = rendered
	return nil
}

// Citation is one structured reporter citation.
type Citation struct {
	Volume   int    `json:"volume"`
	Reporter string `json:"reporter"`
	Page     string `json:"page"`
}

// String renders the citation in standard "volume reporter page" form.
func (c Citation) String() string {
	parts := make([]string, 0, 3)
	if c.Volume > 0 {
		parts = append(parts, fmt.Sprintf("%d", c.Volume))
	}
	if c.Reporter != "" {
		parts = append(parts, c.Reporter)
	}
	if c.Page != "" {
		parts = append(parts, c.Page)
	}
	return strings.Join(parts, " ")
}
