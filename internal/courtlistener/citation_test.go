// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package courtlistener

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupCitationPostsForm(t *testing.T) {
	var captured *http.Request
	var gotText string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		r.ParseForm()
		gotText = r.PostFormValue("text")
		fmt.Fprint(w, `[]`)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	_, err := c.LookupCitation(context.Background(), "410 U.S. 113")
	if err != nil {
		t.Fatalf("LookupCitation: %v", err)
	}

	if captured.Method != http.MethodPost {
		t.Errorf("method = %q, want POST", captured.Method)
	}
	if captured.URL.Path != "/citation-lookup/" {
		t.Errorf("path = %q, want /citation-lookup/", captured.URL.Path)
	}
	if gotText != "410 U.S. 113" {
		t.Errorf("text = %q, want %q", gotText, "410 U.S. 113")
	}
}

func TestLookupCitationDecodesMatch(t *testing.T) {
	body := `[{"citation":"410 U.S. 113","normalized_citations":["410 U.S. 113"],"status":200,
		"clusters":[{"id":108713,"case_name":"Roe v. Wade","date_filed":"1973-01-22",
		"absolute_url":"/opinion/108713/roe-v-wade/",
		"citations":[{"volume":410,"reporter":"U.S.","page":"113"}]}]}]`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	matches, err := c.LookupCitation(context.Background(), "410 U.S. 113")
	if err != nil {
		t.Fatalf("LookupCitation: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}

	m := matches[0]
	if !m.Resolved() {
		t.Error("match should be resolved")
	}
	if len(m.Clusters) != 1 {
		t.Fatalf("len(Clusters) = %d, want 1", len(m.Clusters))
	}
	cl := m.Clusters[0]
	if cl.CaseName != "Roe v. Wade" {
		t.Errorf("CaseName = %q", cl.CaseName)
	}
	if got := cl.CitationStrings(); len(got) != 1 || got[0] != "410 U.S. 113" {
		t.Errorf("CitationStrings = %v", got)
	}
}

func TestClusterListShapes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantLen int
	}{
		{"null", `null`, 0},
		{"single object", `{"id":1,"case_name":"A"}`, 1},
		{"array", `[{"id":1},{"id":2}]`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l ClusterList
			if err := json.Unmarshal([]byte(tt.in), &l); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if len(l) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(l), tt.wantLen)
			}
		})
	}
}

func TestCitationMatchResolved(t *testing.T) {
	tests := []struct {
		name string
		m    CitationMatch
		want bool
	}{
		{"status 200 with cluster", CitationMatch{Status: 200, Clusters: ClusterList{{ID: 1}}}, true},
		{"status 200 no clusters", CitationMatch{Status: 200}, false},
		{"status 404", CitationMatch{Status: 404, Clusters: ClusterList{{ID: 1}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Resolved(); got != tt.want {
				t.Errorf("Resolved() = %v, want %v", got, tt.want)
			}
		})
	}
}
