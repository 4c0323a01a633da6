// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the caselaw-mcp CLI. The serve
// subcommand runs the MCP server over stdio; the search, citation and
// opinion subcommands hit the same CourtListener gateway directly from
// a terminal.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/caselaw-mcp/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the caselaw-mcp CLI.
var rootCmd = &cobra.Command{
	Use:   "caselaw-mcp",
	Short: "CourtListener legal research over the Model Context Protocol",
	Long: `caselaw-mcp exposes CourtListener case-law research as MCP tools: keyword
search, semantic search, citation lookup, opinion text retrieval, and
citing-case discovery.

Run 'caselaw-mcp serve' to speak MCP over stdio, or use the search,
citation and opinion subcommands directly from a terminal. All access
requires the COURTLISTENER_API_TOKEN environment variable.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./caselaw-mcp.yaml or ~/.config/caselaw-mcp/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("caselaw-mcp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "caselaw-mcp"))
		}
	}

	viper.SetEnvPrefix("CASELAW_MCP")
	viper.AutomaticEnv()

	// The one required credential, by its conventional name.
	viper.BindEnv("api.token", "COURTLISTENER_API_TOKEN")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig layers viper values over the built-in defaults.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()

	if v := viper.GetDuration("http.timeout"); v > 0 {
		cfg.HTTP.Timeout = v
	}
	if v := viper.GetString("http.user_agent"); v != "" {
		cfg.HTTP.UserAgent = v
	}
	if v := viper.GetString("api.base_v3"); v != "" {
		cfg.API.BaseV3 = v
	}
	if v := viper.GetString("api.base_v4"); v != "" {
		cfg.API.BaseV4 = v
	}
	cfg.API.Token = viper.GetString("api.token")
	if v := viper.GetInt("search.max_results"); v > 0 {
		cfg.Search.MaxResults = v
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
