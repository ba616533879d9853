package cmd

import (
	"fmt"
	"strconv"

	"github.com/bnema/bundle-deploy-cli/internal/adapters/bundleapi"
	"github.com/bnema/bundle-deploy-cli/internal/adapters/render/report"
	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newBundlesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundles",
		Short: "Inspect and manage installed bundles",
	}

	cmd.AddCommand(
		newBundlesListCmd(app),
		newBundlesUninstallCmd(app),
		newBundlesStartCmd(app),
	)

	return cmd
}

func newBundlesListCmd(app *app) *cobra.Command {
	var flags targetFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, app, &flags, func(client *bundleapi.Client) error {
				records, err := client.ListInstalled(cmd.Context())
				if err != nil {
					return err
				}

				if asJSON {
					return writeJSON(cmd, toBundleViews(records))
				}
				rendered, err := report.Bundles(client.ConfiguredTarget(), records)
				return writeRendered(cmd, rendered, err)
			})
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newBundlesUninstallCmd(app *app) *cobra.Command {
	var flags targetFlags

	cmd := &cobra.Command{
		Use:   "uninstall <id>",
		Short: "Uninstall a bundle by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id < 0 {
				return fmt.Errorf("invalid bundle id %q", args[0])
			}

			return withClient(cmd, app, &flags, func(client *bundleapi.Client) error {
				if err := client.Uninstall(cmd.Context(), domain.BundleID(id)); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Uninstalled bundle %d\n", id)
				return nil
			})
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newBundlesStartCmd(app *app) *cobra.Command {
	var flags targetFlags

	cmd := &cobra.Command{
		Use:   "start <location>",
		Short: "Start an installed bundle by location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, app, &flags, func(client *bundleapi.Client) error {
				if err := client.Activate(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Started bundle %s\n", args[0])
				return nil
			})
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func withClient(cmd *cobra.Command, app *app, flags *targetFlags, fn func(*bundleapi.Client) error) error {
	target, password, err := flags.resolve(cmd, app, "")
	if err != nil {
		return err
	}
	client, err := app.newClient(target, password)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	return fn(client)
}
