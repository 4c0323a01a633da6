package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
	"github.com/pdiddy/caselaw-mcp/internal/format"
)

var opinionCmd = &cobra.Command{
	Use:   "opinion",
	Short: "Fetch the full text of a court opinion",
	Long: `Opinion retrieves one opinion's text. Provide --cluster (case-level ID
from search results) or --opinion (a specific opinion ID); a cluster ID
resolves to the cluster's primary opinion. HTML sources are stripped to
plain text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		clusterID, _ := cmd.Flags().GetInt("cluster")
		opinionID, _ := cmd.Flags().GetInt("opinion")
		maxChars, _ := cmd.Flags().GetInt("max-chars")

		if clusterID == 0 && opinionID == 0 {
			return fmt.Errorf("provide either --cluster or --opinion")
		}

		cfg := loadConfig()
		client, err := courtlistener.NewClient(cfg)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
		defer client.Close()

		ctx := cmd.Context()
		var meta format.OpinionMeta

		if opinionID == 0 {
			cluster, err := client.GetCluster(ctx, clusterID)
			if err != nil {
				return err
			}
			meta = format.OpinionMeta{
				CaseName:  cluster.CaseName,
				DateFiled: cluster.DateFiled,
				CaseURL:   cluster.AbsoluteURL,
			}
			opinionID, err = cluster.PrimaryOpinionID()
			if err != nil {
				return err
			}
		}

		op, err := client.GetOpinion(ctx, opinionID)
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, format.OpinionText(op, meta, maxChars))
		return nil
	},
}

func init() {
	opinionCmd.Flags().Int("cluster", 0, "cluster ID of the case (from search results)")
	opinionCmd.Flags().Int("opinion", 0, "specific opinion ID")
	opinionCmd.Flags().Int("max-chars", 0, "maximum characters of opinion text (default 50000)")

	rootCmd.AddCommand(opinionCmd)
}
