// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package courtlistener

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
)

// opinionURLPattern extracts the numeric opinion ID from a v3 resource
// URL like ".../api/rest/v3/opinions/12345/".
var opinionURLPattern = regexp.MustCompile(`/opinions/(\d+)/`)

// GetCluster fetches one cluster by ID from the v3 API.
func (c *Client) GetCluster(ctx context.Context, clusterID int) (*Cluster, error) {
	var out Cluster
	url := fmt.Sprintf("%s/clusters/%d/", c.baseV3, clusterID)
	if err := c.getJSON(ctx, url, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOpinion fetches one opinion by ID from the v3 API.
func (c *Client) GetOpinion(ctx context.Context, opinionID int) (*Opinion, error) {
	var out Opinion
	url := fmt.Sprintf("%s/opinions/%d/", c.baseV3, opinionID)
	if err := c.getJSON(ctx, url, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PrimaryOpinionID returns the ID of the cluster's first sub-opinion.
// The cluster payload carries opinions as resource URLs, not IDs.
func (cl Cluster) PrimaryOpinionID() (int, error) {
	if len(cl.SubOpinions) == 0 {
		return 0, fmt.Errorf("no opinions found in cluster %d", cl.ID)
	}
	m := opinionURLPattern.FindStringSubmatch(cl.SubOpinions[0])
	if m == nil {
		return 0, fmt.Errorf("could not parse opinion ID from %q", cl.SubOpinions[0])
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("could not parse opinion ID from %q", cl.SubOpinions[0])
	}
	return id, nil
}

// Opinion is the v3 opinion payload. The text lives in whichever source
// field the ingest pipeline populated; plain_text is preferred and the
// HTML variants are fallbacks in fixed order.
type Opinion struct {
	ID                int    `json:"id"`
	AuthorStr         string `json:"author_str"`
	Type              string `json:"type"`
	PlainText         string `json:"plain_text"`
	HTMLWithCitations string `json:"html_with_citations"`
	HTML              string `json:"html"`
	HTMLColumbia      string `json:"html_columbia"`
	HTMLLawbox        string `json:"html_lawbox"`
	HTMLAnon2020      string `json:"html_anon_2020"`
	XMLHarvard        string `json:"xml_harvard"`
}

// BestText returns the first populated text source along with its field
// name and whether it is markup that still needs stripping. Empty text
// with ok=false means no source had content.
func (o *Opinion) BestText() (text, source string, markup bool, ok bool) {
	if o.PlainText != "" {
		return o.PlainText, "plain_text", false, true
	}
	markupSources := []struct {
		name string
		body string
	}{
		{"html_with_citations", o.HTMLWithCitations},
		{"html", o.HTML},
		{"html_columbia", o.HTMLColumbia},
		{"html_lawbox", o.HTMLLawbox},
		{"html_anon_2020", o.HTMLAnon2020},
		{"xml_harvard", o.XMLHarvard},
	}
	for _, s := range markupSources {
		if s.body != "" {
			return s.body, s.name, true, true
		}
	}
	return "", "", false, false
}
