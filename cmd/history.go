package cmd

import (
	"github.com/bnema/bundle-deploy-cli/internal/adapters/history"
	"github.com/bnema/bundle-deploy-cli/internal/adapters/render/report"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent deployments, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ledger, err := history.Open(app.historyPath)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			entries, err := ledger.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, toHistoryViews(entries))
			}
			rendered, err := report.History(entries)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
