// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the legal-research tools over the Model
// Context Protocol. Each tool is stateless: validate input, call the
// shared CourtListener client, render text. Gateway failures come back
// to the caller as IsError text results; no Go error ever crosses the
// protocol boundary for an expected failure mode.
package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
	"github.com/pdiddy/caselaw-mcp/internal/logger"
	"github.com/pdiddy/caselaw-mcp/pkg/types"
)

const serverName = "caselaw-mcp"

const instructions = "Legal research server providing access to the CourtListener " +
	"case law database. Use search_cases for keyword searches, semantic_search for " +
	"natural language queries, lookup_citation for resolving citations, get_case_text " +
	"for full opinion text, and find_citing_cases to discover cases citing a given decision."

// Server wires the five research tools onto one MCP server backed by
// the shared CourtListener client.
type Server struct {
	client *courtlistener.Client
	search types.SearchConfig
	log    *zap.Logger
	mcp    *mcp.Server
}

// New builds the server and registers its tools. The client is the
// process-wide handle created at startup; the server never mutates it.
func New(client *courtlistener.Client, search types.SearchConfig, version string) *Server {
	s := &Server{
		client: client,
		search: search,
		log:    logger.GetLogger(),
	}
	s.mcp = mcp.NewServer(
		&mcp.Implementation{Name: serverName, Version: version},
		&mcp.ServerOptions{Instructions: instructions},
	)
	s.registerTools()
	return s
}

// Run serves MCP over stdio until ctx is cancelled or stdin closes.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("MCP server starting", zap.String("name", serverName))
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
