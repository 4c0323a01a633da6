// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package courtlistener

import (
	"fmt"
	"net/url"
)

// Result-count bounds enforced by the upstream search API. Requests
// outside the range are clamped, not rejected.
const (
	MinLimit = 1
	MaxLimit = 20
)

// DefaultOrderBy is the relevance sort applied when no order is given.
const DefaultOrderBy = "score desc"

// SearchQuery holds the parameters for one v4 opinion search. The same
// builder backs keyword search, semantic search, and the citing-case
// lookup so filter semantics stay identical across all three.
type SearchQuery struct {
	// Query is the search text, or a relation query like "cites:(12345)".
	Query string
	// Court filters by court code(s), space-separated (e.g. "scotus ca9").
	Court string
	// FiledAfter and FiledBefore bound the decision date (YYYY-MM-DD).
	FiledAfter  string
	FiledBefore string
	// OrderBy selects the sort; empty means DefaultOrderBy.
	OrderBy string
	// Limit is the requested result count, clamped to [MinLimit, MaxLimit].
	Limit int
	// Semantic switches the upstream engine to semantic matching.
	Semantic bool
}

// ClampLimit forces n into the [MinLimit, MaxLimit] range.
func ClampLimit(n int) int {
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// Values renders the query as URL parameters. Unset optional filters
// are omitted entirely, never sent as empty strings.
func (q SearchQuery) Values() url.Values {
	order := q.OrderBy
	if order == "" {
		order = DefaultOrderBy
	}

	params := url.Values{
		"type":     {"o"},
		"q":        {q.Query},
		"order_by": {order},
	}
	if q.Court != "" {
		params.Set("court", q.Court)
	}
	if q.FiledAfter != "" {
		params.Set("filed_after", q.FiledAfter)
	}
	if q.FiledBefore != "" {
		params.Set("filed_before", q.FiledBefore)
	}
	if q.Semantic {
		params.Set("semantic", "on")
	}
	params.Set("limit", fmt.Sprintf("%d", ClampLimit(q.Limit)))
	return params
}

// CitingQuery returns the relation query matching every opinion that
// cites the given cluster.
func CitingQuery(clusterID int) string {
	return fmt.Sprintf("cites:(%d)", clusterID)
}
