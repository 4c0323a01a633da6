// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound API requests.
type HTTPConfig struct {
	// Timeout is the per-request timeout. A request that exceeds it is
	// abandoned and reported as a timeout error.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "caselaw-mcp/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// APIConfig holds CourtListener endpoint settings. Two API versions are
// live at once: v3 serves citation and opinion lookup, v4 serves the
// unified keyword/semantic search.
type APIConfig struct {
	// Token is the CourtListener API token. Required; loaded from the
	// COURTLISTENER_API_TOKEN environment variable.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// BaseV3 is the v3 REST base URL (citation-lookup, clusters, opinions).
	BaseV3 string `json:"base_v3" yaml:"base_v3"`

	// BaseV4 is the v4 REST base URL (search).
	BaseV4 string `json:"base_v4" yaml:"base_v4"`
}

// SearchConfig holds settings for the search tools.
type SearchConfig struct {
	// MaxResults is the default number of results per search (default 10,
	// capped at 20 by the upstream API).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all settings for the server.
type Config struct {
	HTTP   HTTPConfig   `json:"http" yaml:"http"`
	API    APIConfig    `json:"api" yaml:"api"`
	Search SearchConfig `json:"search" yaml:"search"`
}

// DefaultConfig returns a Config with production endpoints and defaults.
// The token is left empty; it must come from the environment.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "caselaw-mcp/0.1",
		},
		API: APIConfig{
			BaseV3: "https://www.courtlistener.com/api/rest/v3",
			BaseV4: "https://www.courtlistener.com/api/rest/v4",
		},
		Search: SearchConfig{
			MaxResults: 10,
		},
	}
}
