package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
	"github.com/pdiddy/caselaw-mcp/internal/format"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search CourtListener for case law opinions",
	Long: `Search queries the CourtListener v4 opinion search. Results print as
numbered blocks with case name, court, date, citations and a snippet.
Pass --semantic to switch the upstream engine to semantic matching.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, _ := cmd.Flags().GetString("query")
		if query == "" {
			query = strings.Join(args, " ")
		}
		if strings.TrimSpace(query) == "" {
			return fmt.Errorf("query must not be empty")
		}

		court, _ := cmd.Flags().GetString("court")
		filedAfter, _ := cmd.Flags().GetString("filed-after")
		filedBefore, _ := cmd.Flags().GetString("filed-before")
		orderBy, _ := cmd.Flags().GetString("order-by")
		limit, _ := cmd.Flags().GetInt("limit")
		semantic, _ := cmd.Flags().GetBool("semantic")

		cfg := loadConfig()
		client, err := courtlistener.NewClient(cfg)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
		defer client.Close()

		if limit == 0 {
			limit = cfg.Search.MaxResults
		}

		resp, err := client.Search(cmd.Context(), courtlistener.SearchQuery{
			Query:       query,
			Court:       court,
			FiledAfter:  filedAfter,
			FiledBefore: filedBefore,
			OrderBy:     orderBy,
			Limit:       limit,
			Semantic:    semantic,
		})
		if err != nil {
			return err
		}

		header := fmt.Sprintf("Search results for %q", query)
		if semantic {
			header = fmt.Sprintf("Semantic search results for %q", query)
		}
		fmt.Fprintln(os.Stdout, format.SearchResults(resp, header))
		return nil
	},
}

func init() {
	searchCmd.Flags().String("query", "", "search keywords (alternative to positional args)")
	searchCmd.Flags().String("court", "", "court filter code(s), space-separated (e.g. \"scotus ca9\")")
	searchCmd.Flags().String("filed-after", "", "decision date range start (YYYY-MM-DD)")
	searchCmd.Flags().String("filed-before", "", "decision date range end (YYYY-MM-DD)")
	searchCmd.Flags().String("order-by", "", "sort order (default \"score desc\")")
	searchCmd.Flags().Int("limit", 0, "maximum number of results (1-20)")
	searchCmd.Flags().Bool("semantic", false, "use semantic matching instead of keywords")

	rootCmd.AddCommand(searchCmd)
}
