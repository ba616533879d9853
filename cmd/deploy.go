package cmd

import (
	"context"

	"github.com/bnema/bundle-deploy-cli/internal/adapters/manifest"
	"github.com/bnema/bundle-deploy-cli/internal/adapters/render/report"
	"github.com/bnema/bundle-deploy-cli/internal/application"
	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/spf13/cobra"
)

type deployOutput struct {
	Bundles      []deployResultView `json:"bundles"`
	Dependencies *sweepView         `json:"dependencies,omitempty"`
}

func newDeployCmd(app *app) *cobra.Command {
	var flags targetFlags
	var manifestPath string
	var withDependencies bool
	var lenient bool
	var strategy string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the bundles listed in a manifest",
		Long:  "Deploys every bundle of the manifest in order. With --with-dependencies the declared dependencies that match a resolvable artifact are deployed afterwards; unresolvable ones are reported and skipped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := manifest.Load(manifestPath)
			if err != nil {
				return err
			}

			opts := application.DeployOptions{Policy: plan.Policy, Strategy: plan.Strategy}
			if lenient {
				opts.Policy = domain.ActivationLenient
			}
			if cmd.Flags().Changed("strategy") {
				if opts.Strategy, err = domain.ParseReplaceStrategy(strategy); err != nil {
					return err
				}
			}

			target, password, err := flags.resolve(cmd, app, plan.Target)
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

			results := make([]domain.DeployResult, 0, len(plan.Bundles))
			var sweep *domain.SweepReport
			runErr := runWithProgress(cmd, app, "Deploying manifest...", func(ctx context.Context) error {
				for _, path := range plan.Bundles {
					result, err := deployer.InstallAndStart(ctx, path, opts)
					if err != nil {
						return err
					}
					results = append(results, result)
				}

				if !withDependencies || len(plan.Dependencies) == 0 {
					return nil
				}
				swept, err := deployer.DeployDependencies(ctx, plan.Dependencies, resolvableArtifacts(plan), opts.Strategy)
				sweep = &swept
				return err
			})

			if asJSON {
				output := deployOutput{Bundles: toDeployResultViews(results)}
				if sweep != nil {
					view := toSweepView(*sweep)
					output.Dependencies = &view
				}
				if err := writeJSON(cmd, output); err != nil {
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
			if sweep != nil {
				rendered, renderErr := report.Sweep(len(plan.Dependencies), *sweep)
				if err := writeRendered(cmd, rendered, renderErr); err != nil {
					return err
				}
			}
			return runErr
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&manifestPath, "manifest", "f", manifest.DefaultFileName, "Deployment manifest")
	cmd.Flags().BoolVar(&withDependencies, "with-dependencies", false, "Also deploy declared dependencies")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Report start failures as warnings instead of failing")
	cmd.Flags().StringVar(&strategy, "strategy", string(domain.ReplaceUninstallFirst), "Replace strategy (uninstall-first|override), overrides the manifest")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

// resolvableArtifacts returns the manifest's artifacts. A manifest without an
// artifacts section treats every declared dependency as resolvable from the
// local repository.
func resolvableArtifacts(plan manifest.Plan) []domain.ResolvedArtifact {
	if len(plan.Artifacts) > 0 {
		return plan.Artifacts
	}

	artifacts := make([]domain.ResolvedArtifact, 0, len(plan.Dependencies))
	for _, dependency := range plan.Dependencies {
		artifacts = append(artifacts, domain.ResolvedArtifact{Coordinates: dependency})
	}
	return artifacts
}
