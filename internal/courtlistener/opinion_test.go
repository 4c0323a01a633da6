// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package courtlistener

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetClusterAndOpinionPaths(t *testing.T) {
	var paths []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		fmt.Fprint(w, `{"id":42}`)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	ctx := context.Background()

	if _, err := c.GetCluster(ctx, 106790); err != nil {
		t.Fatalf("GetCluster: %v", err)
	}
	if _, err := c.GetOpinion(ctx, 12345); err != nil {
		t.Fatalf("GetOpinion: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d, want 2", len(paths))
	}
	if paths[0] != "/clusters/106790/" {
		t.Errorf("cluster path = %q", paths[0])
	}
	if paths[1] != "/opinions/12345/" {
		t.Errorf("opinion path = %q", paths[1])
	}
}

func TestPrimaryOpinionID(t *testing.T) {
	tests := []struct {
		name    string
		cluster Cluster
		wantID  int
		wantErr bool
	}{
		{
			"resolves first sub-opinion",
			Cluster{ID: 1, SubOpinions: []string{
				"https://www.courtlistener.com/api/rest/v3/opinions/107252/",
				"https://www.courtlistener.com/api/rest/v3/opinions/107253/",
			}},
			107252, false,
		},
		{"no sub-opinions", Cluster{ID: 2}, 0, true},
		{"unparseable URL", Cluster{ID: 3, SubOpinions: []string{"not-a-url"}}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := tt.cluster.PrimaryOpinionID()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("PrimaryOpinionID: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("id = %d, want %d", id, tt.wantID)
			}
		})
	}
}

func TestBestTextPriority(t *testing.T) {
	tests := []struct {
		name       string
		op         Opinion
		wantSource string
		wantMarkup bool
		wantOK     bool
	}{
		{
			"plain text preferred",
			Opinion{PlainText: "plain", HTMLWithCitations: "<p>html</p>"},
			"plain_text", false, true,
		},
		{
			"html_with_citations next",
			Opinion{HTMLWithCitations: "<p>a</p>", HTML: "<p>b</p>"},
			"html_with_citations", true, true,
		},
		{
			"html fallback",
			Opinion{HTML: "<p>b</p>"},
			"html", true, true,
		},
		{
			"xml_harvard last",
			Opinion{XMLHarvard: "<opinion>c</opinion>"},
			"xml_harvard", true, true,
		},
		{
			"nothing populated",
			Opinion{},
			"", false, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, source, markup, ok := tt.op.BestText()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
			if markup != tt.wantMarkup {
				t.Errorf("markup = %v, want %v", markup, tt.wantMarkup)
			}
		})
	}
}
