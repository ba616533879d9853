package cmd

import (
	"context"

	"github.com/bnema/bundle-deploy-cli/internal/adapters/render/report"
	"github.com/bnema/bundle-deploy-cli/internal/application"
	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newInstallCmd(app *app) *cobra.Command {
	var flags targetFlags
	var noStart bool
	var lenient bool
	var strategy string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "install <archive>...",
		Short: "Force-install bundle archives and start them",
		Long:  "Replaces any installed bundle with the same symbolic name, uploads each archive in order and starts it. With --lenient a bundle that installs but fails to start is reported as a warning.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			replace, err := domain.ParseReplaceStrategy(strategy)
			if err != nil {
				return err
			}
			opts := application.DeployOptions{Policy: activationPolicy(lenient), Strategy: replace}

			target, password, err := flags.resolve(cmd, app, "")
			if err != nil {
				return err
			}
			client, err := app.newClient(target, password)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			ledger, closeLedger := app.openLedger()
			defer closeLedger()
			deployer := app.newDeployer(client, ledger)

			results := make([]domain.DeployResult, 0, len(args))
			runErr := runWithProgress(cmd, app, "Deploying bundles...", func(ctx context.Context) error {
				for _, path := range args {
					var result domain.DeployResult
					var err error
					if noStart {
						result, err = deployer.ForceInstall(ctx, path, replace)
					} else {
						result, err = deployer.InstallAndStart(ctx, path, opts)
					}
					if err != nil {
						return err
					}
					results = append(results, result)
				}
				return nil
			})

			if asJSON {
				if err := writeJSON(cmd, toDeployResultViews(results)); err != nil {
					return err
				}
				return runErr
			}
			if len(results) > 0 {
				rendered, renderErr := report.Deploy(results)
				if err := writeRendered(cmd, rendered, renderErr); err != nil {
					return err
				}
			}
			return runErr
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&noStart, "no-start", false, "Install without starting")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Report start failures as warnings instead of failing")
	cmd.Flags().StringVar(&strategy, "strategy", string(domain.ReplaceUninstallFirst), "Replace strategy (uninstall-first|override)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func activationPolicy(lenient bool) domain.ActivationPolicy {
	if lenient {
		return domain.ActivationLenient
	}
	return domain.ActivationStrict
}
