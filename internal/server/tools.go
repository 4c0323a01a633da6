// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
	"github.com/pdiddy/caselaw-mcp/internal/courts"
	"github.com/pdiddy/caselaw-mcp/internal/format"
)

// SearchCasesArgs are the inputs shared by the two search tools.
type SearchCasesArgs struct {
	Query       string `json:"query" jsonschema:"Keywords to search for (e.g. fourth amendment search seizure). Use quotes around phrases for exact matching."`
	Court       string `json:"court,omitempty" jsonschema:"Court filter code (e.g. scotus, ca9, orctapp). Multiple courts separated by spaces."`
	FiledAfter  string `json:"filed_after,omitempty" jsonschema:"Start date filter in YYYY-MM-DD format."`
	FiledBefore string `json:"filed_before,omitempty" jsonschema:"End date filter in YYYY-MM-DD format."`
	OrderBy     string `json:"order_by,omitempty" jsonschema:"Sort order: score desc (relevance), dateFiled desc (newest), dateFiled asc (oldest), citeCount desc (most cited)."`
	Limit       int    `json:"limit,omitempty" jsonschema:"Max results to return (1-20, default 10)."`
}

// LookupCitationArgs identify a citation to resolve.
type LookupCitationArgs struct {
	Citation string `json:"citation" jsonschema:"A legal citation string (e.g. 410 U.S. 113). May include surrounding text; every citation found is resolved."`
}

// GetCaseTextArgs identify an opinion to fetch. Either ID works; a
// cluster ID resolves to the cluster's primary opinion.
type GetCaseTextArgs struct {
	ClusterID     int `json:"cluster_id,omitempty" jsonschema:"The cluster ID of the case (from search results)."`
	OpinionID     int `json:"opinion_id,omitempty" jsonschema:"The specific opinion ID, if known."`
	MaxCharacters int `json:"max_characters,omitempty" jsonschema:"Maximum characters of opinion text to return (default 50000)."`
}

// FindCitingCasesArgs identify the cited case and optional filters.
type FindCitingCasesArgs struct {
	ClusterID   int    `json:"cluster_id" jsonschema:"Cluster ID of the case to find citations for (from search results or lookup_citation)."`
	Court       string `json:"court,omitempty" jsonschema:"Court filter code (e.g. scotus, ca9)."`
	FiledAfter  string `json:"filed_after,omitempty" jsonschema:"Start date filter in YYYY-MM-DD format."`
	FiledBefore string `json:"filed_before,omitempty" jsonschema:"End date filter in YYYY-MM-DD format."`
	OrderBy     string `json:"order_by,omitempty" jsonschema:"Sort order (default score desc)."`
	Limit       int    `json:"limit,omitempty" jsonschema:"Max results to return (1-20, default 10)."`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "search_cases",
		Description: "Search CourtListener for case law opinions by keywords. " +
			"Returns case names, courts, dates, citations and snippets.",
	}, s.searchCases)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "semantic_search",
		Description: "Search for case law using natural language / semantic similarity. " +
			"Finds conceptually similar cases even when different terminology is used; " +
			"put required terms in quotation marks to force exact matching within semantic results.",
	}, s.semanticSearch)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "lookup_citation",
		Description: "Look up a legal citation and resolve it to the corresponding case. " +
			"Returns the case name, date, reporter citations and cluster ID.",
	}, s.lookupCitation)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "get_case_text",
		Description: "Retrieve the full text of a court opinion. Provide either a " +
			"cluster_id (case-level ID from search results) or a specific opinion_id; " +
			"a cluster_id fetches the primary opinion in the cluster.",
	}, s.getCaseText)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "find_citing_cases",
		Description: "Find cases that cite a given case, identified by its cluster ID " +
			"(obtain one from search results or lookup_citation).",
	}, s.findCitingCases)
}

// textResult wraps plain text in a successful tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult wraps one human-readable failure line in an IsError
// result. The text is the whole story; callers branch on IsError.
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// gatewayResult converts a gateway failure into an IsError result,
// passing the normalized message through unchanged. Context
// cancellation propagates as a real error so the host sees it.
func (s *Server) gatewayResult(ctx context.Context, tool string, err error) (*mcp.CallToolResult, any, error) {
	if ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}
	s.log.Warn("upstream call failed", zap.String("tool", tool), zap.Error(err))
	return errorResult(err.Error()), nil, nil
}

func (s *Server) toolLog(tool string) *zap.Logger {
	return s.log.With(
		zap.String("tool", tool),
		zap.String("request_id", uuid.NewString()),
	)
}

// limitOrDefault substitutes the configured default when the caller
// did not ask for a count. Clamping to [1,20] happens in the builder.
func (s *Server) limitOrDefault(n int) int {
	if n == 0 {
		return s.search.MaxResults
	}
	return n
}

// withCourtHint appends one advisory line when the court filter
// contains codes the registry does not know.
func withCourtHint(text, courtFilter string) string {
	if hint := courts.Hint(courtFilter); hint != "" {
		return text + "\n\n" + hint
	}
	return text
}

func (s *Server) runSearch(ctx context.Context, tool string, args SearchCasesArgs, semantic bool, header string) (*mcp.CallToolResult, any, error) {
	l := s.toolLog(tool)
	if strings.TrimSpace(args.Query) == "" {
		return errorResult("Error: query must not be empty."), nil, nil
	}

	l.Info("search requested",
		zap.String("query", args.Query),
		zap.String("court", args.Court),
		zap.Int("limit", args.Limit),
		zap.Bool("semantic", semantic),
	)

	resp, err := s.client.Search(ctx, courtlistener.SearchQuery{
		Query:       args.Query,
		Court:       args.Court,
		FiledAfter:  args.FiledAfter,
		FiledBefore: args.FiledBefore,
		OrderBy:     args.OrderBy,
		Limit:       s.limitOrDefault(args.Limit),
		Semantic:    semantic,
	})
	if err != nil {
		return s.gatewayResult(ctx, tool, err)
	}

	l.Info("search completed", zap.Int("results", len(resp.Results)), zap.Int("total", resp.Count))
	return textResult(withCourtHint(format.SearchResults(resp, header), args.Court)), nil, nil
}

func (s *Server) searchCases(ctx context.Context, req *mcp.CallToolRequest, args SearchCasesArgs) (*mcp.CallToolResult, any, error) {
	return s.runSearch(ctx, "search_cases", args, false,
		fmt.Sprintf("Search results for %q", args.Query))
}

func (s *Server) semanticSearch(ctx context.Context, req *mcp.CallToolRequest, args SearchCasesArgs) (*mcp.CallToolResult, any, error) {
	args.OrderBy = courtlistener.DefaultOrderBy
	return s.runSearch(ctx, "semantic_search", args, true,
		fmt.Sprintf("Semantic search results for %q", args.Query))
}

func (s *Server) lookupCitation(ctx context.Context, req *mcp.CallToolRequest, args LookupCitationArgs) (*mcp.CallToolResult, any, error) {
	l := s.toolLog("lookup_citation")
	citation := strings.TrimSpace(args.Citation)
	if citation == "" {
		return errorResult("Error: citation must not be empty."), nil, nil
	}

	l.Info("citation lookup requested", zap.String("citation", citation))

	matches, err := s.client.LookupCitation(ctx, citation)
	if err != nil {
		return s.gatewayResult(ctx, "lookup_citation", err)
	}

	l.Info("citation lookup completed", zap.Int("matches", len(matches)))
	return textResult(format.CitationMatches(matches, citation)), nil, nil
}

func (s *Server) getCaseText(ctx context.Context, req *mcp.CallToolRequest, args GetCaseTextArgs) (*mcp.CallToolResult, any, error) {
	l := s.toolLog("get_case_text")
	if args.ClusterID == 0 && args.OpinionID == 0 {
		return errorResult("Error: Provide either cluster_id or opinion_id."), nil, nil
	}

	l.Info("case text requested",
		zap.Int("cluster_id", args.ClusterID),
		zap.Int("opinion_id", args.OpinionID),
	)

	opinionID := args.OpinionID
	var meta format.OpinionMeta

	if opinionID == 0 {
		cluster, err := s.client.GetCluster(ctx, args.ClusterID)
		if err != nil {
			return s.gatewayResult(ctx, "get_case_text", err)
		}
		meta = format.OpinionMeta{
			CaseName:  cluster.CaseName,
			DateFiled: cluster.DateFiled,
			CaseURL:   cluster.AbsoluteURL,
		}
		opinionID, err = cluster.PrimaryOpinionID()
		if err != nil {
			return errorResult("Error: " + err.Error() + "."), nil, nil
		}
	}

	opinion, err := s.client.GetOpinion(ctx, opinionID)
	if err != nil {
		return s.gatewayResult(ctx, "get_case_text", err)
	}

	l.Info("case text fetched", zap.Int("opinion_id", opinionID))
	return textResult(format.OpinionText(opinion, meta, args.MaxCharacters)), nil, nil
}

func (s *Server) findCitingCases(ctx context.Context, req *mcp.CallToolRequest, args FindCitingCasesArgs) (*mcp.CallToolResult, any, error) {
	tool := "find_citing_cases"
	l := s.toolLog(tool)
	if args.ClusterID == 0 {
		return errorResult("Error: cluster_id must be provided."), nil, nil
	}

	l.Info("citing-case search requested", zap.Int("cluster_id", args.ClusterID))

	resp, err := s.client.Search(ctx, courtlistener.SearchQuery{
		Query:       courtlistener.CitingQuery(args.ClusterID),
		Court:       args.Court,
		FiledAfter:  args.FiledAfter,
		FiledBefore: args.FiledBefore,
		OrderBy:     args.OrderBy,
		Limit:       s.limitOrDefault(args.Limit),
	})
	if err != nil {
		return s.gatewayResult(ctx, tool, err)
	}

	l.Info("citing-case search completed", zap.Int("results", len(resp.Results)))
	header := fmt.Sprintf("Cases citing cluster %d", args.ClusterID)
	return textResult(withCourtHint(format.SearchResults(resp, header), args.Court)), nil, nil
}
