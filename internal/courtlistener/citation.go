// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package courtlistener

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// LookupCitation resolves the citations found in text against the v3
// citation-lookup endpoint. Text may be a bare citation ("410 U.S. 113")
// or prose containing several; the API extracts and resolves each.
func (c *Client) LookupCitation(ctx context.Context, text string) ([]CitationMatch, error) {
	form := url.Values{"text": {text}}
	var out []CitationMatch
	if err := c.postForm(ctx, c.baseV3+"/citation-lookup/", form, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CitationMatch is one extracted citation and its resolution. Status
// follows HTTP semantics: 200 resolved, 404 no matching case.
type CitationMatch struct {
	Citation            string      `json:"citation"`
	NormalizedCitations []string    `json:"normalized_citations"`
	Status              int         `json:"status"`
	ErrorMessage        string      `json:"error_message"`
	Clusters            ClusterList `json:"clusters"`
}

// Resolved reports whether the citation matched at least one cluster.
func (m CitationMatch) Resolved() bool {
	return m.Status == 200 && len(m.Clusters) > 0
}

// ClusterList tolerates both response shapes the endpoint has used: a
// single cluster object or an array of them.
type ClusterList []Cluster

// UnmarshalJSON accepts null, one object, or an array.
func (l *ClusterList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "{") {
		var one Cluster
		if err := json.Unmarshal(data, &one); err != nil {
			return fmt.Errorf("clusters: %w", err)
		}
		*l = ClusterList{one}
		return nil
	}
	var many []Cluster
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("clusters: %w", err)
	}
	*l = many
	return nil
}

// Cluster is the API's grouping of the opinions belonging to one case
// decision.
type Cluster struct {
	ID          int        `json:"id"`
	CaseName    string     `json:"case_name"`
	DateFiled   string     `json:"date_filed"`
	AbsoluteURL string     `json:"absolute_url"`
	Citations   []Citation `json:"citations"`
	SubOpinions []string   `json:"sub_opinions"`
}

// CitationStrings renders the cluster's reporter citations, skipping
// ones that render empty.
func (cl Cluster) CitationStrings() []string {
	out := make([]string, 0, len(cl.Citations))
	for _, c := range cl.Citations {
		if s := c.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}
