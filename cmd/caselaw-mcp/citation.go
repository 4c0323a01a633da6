package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
	"github.com/pdiddy/caselaw-mcp/internal/format"
)

var citationCmd = &cobra.Command{
	Use:   "citation <citation...>",
	Short: "Resolve a legal citation to its case",
	Long: `Citation resolves reporter citations (e.g. "410 U.S. 113") against the
CourtListener citation-lookup endpoint and prints the matching case's
identifying information. Text containing several citations resolves
each one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		cfg := loadConfig()
		client, err := courtlistener.NewClient(cfg)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
		defer client.Close()

		matches, err := client.LookupCitation(cmd.Context(), text)
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, format.CitationMatches(matches, text))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(citationCmd)
}
