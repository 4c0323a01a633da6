// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
	"github.com/pdiddy/caselaw-mcp/internal/logger"
	"github.com/pdiddy/caselaw-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Serve speaks the Model Context Protocol on standard input/output. The
shared CourtListener client is created once at startup (a missing
COURTLISTENER_API_TOKEN fails here, before any network call) and torn
down at shutdown. SIGINT and SIGTERM stop the server and abandon any
in-flight upstream requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		client, err := courtlistener.NewClient(cfg)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
		defer client.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		l := logger.GetLogger()
		defer l.Sync()

		srv := server.New(client, cfg.Search, version)
		if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
			l.Error("MCP server failed", zap.Error(err))
			return err
		}
		l.Info("MCP server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
