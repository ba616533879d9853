package application

import (
	"context"
	"fmt"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/bnema/bundle-deploy-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Deployer pushes bundle archives to one runtime. Every remote call is issued
// sequentially; a Deployer must not be shared between goroutines.
type Deployer struct {
	manager   ports.BundleManager
	inspector ports.ArchiveInspector
	resolver  ports.ArtifactResolver
	ledger    ports.DeploymentLedger
	clock     ports.Clock
	logger    logrus.FieldLogger
	target    string
	runID     string
}

type DeployerOption func(*Deployer)

// WithLedger records one history entry per deployed archive.
func WithLedger(ledger ports.DeploymentLedger) DeployerOption {
	return func(d *Deployer) {
		d.ledger = ledger
	}
}

func WithLogger(logger logrus.FieldLogger) DeployerOption {
	return func(d *Deployer) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func WithClock(clock ports.Clock) DeployerOption {
	return func(d *Deployer) {
		if clock != nil {
			d.clock = clock
		}
	}
}

// WithTarget names the runtime in logs and history entries.
func WithTarget(target string) DeployerOption {
	return func(d *Deployer) {
		d.target = target
	}
}

func WithRunID(runID string) DeployerOption {
	return func(d *Deployer) {
		if runID != "" {
			d.runID = runID
		}
	}
}

func NewDeployer(manager ports.BundleManager, inspector ports.ArchiveInspector, resolver ports.ArtifactResolver, opts ...DeployerOption) *Deployer {
	d := &Deployer{
		manager:   manager,
		inspector: inspector,
		resolver:  resolver,
		clock:     ports.SystemClock{},
		logger:    logrus.StandardLogger(),
		runID:     uuid.NewString(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.WithField("run_id", d.runID)
	if d.target != "" {
		d.logger = d.logger.WithField("target", d.target)
	}

	return d
}

func (d *Deployer) RunID() string {
	return d.runID
}

// ForceInstall replaces any installed bundle that has the archive's symbolic
// name with the archive, without activating it.
func (d *Deployer) ForceInstall(ctx context.Context, path string, strategy domain.ReplaceStrategy) (domain.DeployResult, error) {
	return d.deploy(ctx, path, DeployOptions{Strategy: strategy}, false)
}

// InstallAndStart force-installs the archive and activates it. With the
// lenient policy a failed activation is reported on the result and the call
// still succeeds.
func (d *Deployer) InstallAndStart(ctx context.Context, path string, opts DeployOptions) (domain.DeployResult, error) {
	return d.deploy(ctx, path, opts, true)
}

func (d *Deployer) deploy(ctx context.Context, path string, opts DeployOptions, activate bool) (domain.DeployResult, error) {
	opts = opts.withDefaults()
	result := domain.DeployResult{Path: path}

	name, err := d.inspector.SymbolicName(path)
	if err != nil {
		return result, err
	}
	result.SymbolicName = name
	logger := d.logger.WithField("symbolic_name", name)

	archive, err := d.inspector.Read(path)
	if err != nil {
		return result, err
	}

	logger.WithField("path", path).Info("installing bundle")

	installOpts := ports.InstallOptions{}
	switch opts.Strategy {
	case domain.ReplaceOverride:
		installOpts.Override = true
	case domain.ReplaceUninstallFirst:
		replaced, err := d.uninstallIfInstalled(ctx, name, logger)
		if err != nil {
			d.record(ctx, result, domain.OutcomeFailed, err)
			return result, err
		}
		result.Replaced = replaced
	default:
		return result, fmt.Errorf("unsupported replace strategy %q", opts.Strategy)
	}

	location, err := d.manager.Install(ctx, archive, installOpts)
	if err != nil {
		d.record(ctx, result, domain.OutcomeFailed, err)
		return result, fmt.Errorf("install %s: %w", name, err)
	}
	result.Location = location
	logger = logger.WithField("location", location)

	if !activate {
		logger.Info("bundle installed")
		d.record(ctx, result, domain.OutcomeInstalled, nil)
		return result, nil
	}

	if err := d.manager.Activate(ctx, location); err != nil {
		if opts.Policy == domain.ActivationLenient {
			logger.WithError(err).Warn("bundle installed but could not be activated")
			result.ActivationErr = err
			d.record(ctx, result, domain.OutcomeActivationFailed, err)
			return result, nil
		}
		d.record(ctx, result, domain.OutcomeActivationFailed, err)
		return result, fmt.Errorf("activate %s: %w", name, err)
	}

	result.Activated = true
	logger.Info("bundle active")
	d.record(ctx, result, domain.OutcomeActive, nil)
	return result, nil
}

// uninstallIfInstalled looks the bundle up by name right before acting, since
// ids change on every install.
func (d *Deployer) uninstallIfInstalled(ctx context.Context, name string, logger logrus.FieldLogger) (*domain.BundleRecord, error) {
	records, err := d.manager.ListInstalled(ctx)
	if err != nil {
		return nil, fmt.Errorf("look up %s: %w", name, err)
	}

	record, ok := domain.FindBySymbolicName(records, name)
	if !ok {
		return nil, nil
	}

	if err := d.manager.Uninstall(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("uninstall %s (id %d): %w", name, record.ID, err)
	}
	logger.WithField("bundle_id", int64(record.ID)).Info("uninstalled previous bundle")

	return &record, nil
}

func (d *Deployer) record(ctx context.Context, result domain.DeployResult, outcome domain.DeploymentOutcome, cause error) {
	if d.ledger == nil {
		return
	}

	entry := domain.DeploymentEntry{
		RunID:        d.runID,
		Target:       d.target,
		SymbolicName: result.SymbolicName,
		Path:         result.Path,
		Location:     result.Location,
		Outcome:      outcome,
		At:           d.clock.Now(),
	}
	if cause != nil {
		entry.Message = cause.Error()
	}

	if err := d.ledger.Record(ctx, entry); err != nil {
		d.logger.WithError(err).Warn("could not record deployment history")
	}
}
