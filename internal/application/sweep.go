package application

import (
	"context"
	"strings"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/sirupsen/logrus"
)

// DeployDependencies deploys every declared dependency that has an exactly
// matching resolvable artifact, in declaration order and with lenient
// activation. Resolution failures are recorded on the report and the sweep
// moves on. Any other failure stops the sweep; the report then holds what was
// done so far.
func (d *Deployer) DeployDependencies(ctx context.Context, declared []domain.Coordinates, resolvable []domain.ResolvedArtifact, strategy domain.ReplaceStrategy) (domain.SweepReport, error) {
	var report domain.SweepReport
	opts := DeployOptions{Policy: domain.ActivationLenient, Strategy: strategy}

	for _, dependency := range declared {
		logger := d.logger.WithField("dependency", dependency.String())

		artifact, ok := findArtifact(resolvable, dependency)
		if !ok {
			logger.Info("skipping dependency: no matching resolvable artifact")
			report.Skipped = append(report.Skipped, domain.SkippedDependency{
				Coordinates: dependency,
				Reason:      "no matching resolvable artifact",
			})
			continue
		}

		path, err := d.resolve(ctx, artifact)
		if err != nil {
			if !domain.IsResolutionError(err) {
				return report, err
			}
			logger.WithError(err).Warn("could not resolve dependency, skipping")
			report.Failures = append(report.Failures, domain.ResolutionFailure{Coordinates: dependency, Err: err})
			continue
		}
		if path == "" {
			logger.Info("skipping dependency: no local file to deploy")
			report.Skipped = append(report.Skipped, domain.SkippedDependency{
				Coordinates: dependency,
				Reason:      "no local file to deploy",
			})
			continue
		}

		result, err := d.InstallAndStart(ctx, path, opts)
		if err != nil {
			return report, err
		}
		report.Deployed = append(report.Deployed, result)
	}

	d.logger.WithFields(logrus.Fields{
		"deployed": len(report.Deployed),
		"skipped":  len(report.Skipped),
		"failures": len(report.Failures),
	}).Info("dependency sweep finished")

	return report, nil
}

func (d *Deployer) resolve(ctx context.Context, artifact domain.ResolvedArtifact) (string, error) {
	if strings.TrimSpace(artifact.Path) != "" {
		return artifact.Path, nil
	}
	if d.resolver == nil {
		return "", nil
	}
	return d.resolver.Resolve(ctx, artifact.Coordinates)
}

func findArtifact(resolvable []domain.ResolvedArtifact, coords domain.Coordinates) (domain.ResolvedArtifact, bool) {
	for _, artifact := range resolvable {
		if artifact.Coordinates.Equal(coords) {
			return artifact, true
		}
	}
	return domain.ResolvedArtifact{}, false
}
