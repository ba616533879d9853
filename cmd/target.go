package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/bundle-deploy-cli/internal/adapters/render/report"
	"github.com/bnema/bundle-deploy-cli/internal/application"
	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newTargetCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage named deployment targets",
	}

	cmd.AddCommand(
		newTargetSetCmd(app),
		newTargetRemoveCmd(app),
		newTargetListCmd(app),
	)

	return cmd
}

func newTargetSetCmd(app *app) *cobra.Command {
	var flags targetFlags
	var password string

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Create or replace a named target",
		Long:  "Stores the connection settings under <name>. The password goes to the secret store; when neither --password nor BD_PASSWORD is given the stored password is kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := domain.DefaultTarget()
			target.ID = domain.TargetID(strings.TrimSpace(args[0]))
			if err := flags.apply(cmd.Flags(), &target, true); err != nil {
				return err
			}

			if !cmd.Flags().Changed("password") {
				password = envOrDefault("BD_PASSWORD", "")
			}

			if err := app.targets.SetTarget(cmd.Context(), application.SetTargetCommand{Target: target, Password: password}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved target %s (%s)\n", target.ID, target)
			return nil
		},
	}

	flags.registerConnection(cmd.Flags())
	cmd.Flags().StringVar(&password, "password", "", "Password stored in the secret store (default: BD_PASSWORD)")

	return cmd
}

func newTargetRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a named target and its stored password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.TargetID(strings.TrimSpace(args[0]))
			if err := app.targets.RemoveTarget(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed target %s\n", id)
			return nil
		},
	}
}

func newTargetListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List named targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := app.targets.ListTargets(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, toTargetViews(summaries))
			}
			rendered, err := report.Targets(summaries)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

type targetView struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Username    string `json:"username"`
	TLS         string `json:"tls"`
	Proxy       string `json:"proxy,omitempty"`
	Timeout     string `json:"timeout,omitempty"`
	HasPassword bool   `json:"hasPassword"`
}

func toTargetViews(summaries []application.TargetSummary) []targetView {
	views := make([]targetView, 0, len(summaries))
	for _, summary := range summaries {
		target := summary.Target
		view := targetView{
			ID:          string(target.ID),
			URL:         target.String(),
			Username:    target.Username,
			TLS:         string(target.TLS),
			HasPassword: summary.HasPassword,
		}
		if target.Proxy != nil {
			view.Proxy = target.Proxy.URL().Host
		}
		if target.Timeout > 0 {
			view.Timeout = target.Timeout.String()
		}
		views = append(views, view)
	}
	return views
}
