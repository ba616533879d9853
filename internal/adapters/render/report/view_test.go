package report

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/bundle-deploy-cli/internal/application"
	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBundles(t *testing.T) {
	output, err := Bundles("http://localhost:8080", []domain.BundleRecord{
		{ID: 0, SymbolicName: "org.apache.felix.framework", Version: "7.0.5", State: domain.BundleStateActive},
		{ID: 12, SymbolicName: "com.acme.core", State: domain.BundleStateInstalled},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "target: http://localhost:8080")
	assert.Contains(t, output, "bundles: 2")
	assert.Contains(t, output, "org.apache.felix.framework")
	assert.Contains(t, output, "7.0.5")
	assert.Contains(t, output, "com.acme.core")
	assert.Contains(t, output, "installed")
	assert.Contains(t, output, "n/a")
}

func TestRenderBundlesEmpty(t *testing.T) {
	output, err := Bundles("http://localhost:8080", nil)

	require.NoError(t, err)
	assert.Contains(t, output, "No bundles installed.")
}

func TestRenderDeployShowsActivationWarning(t *testing.T) {
	output, err := Deploy([]domain.DeployResult{
		{SymbolicName: "com.acme.core", Location: "/framework/bundle/4", Activated: true, Replaced: &domain.BundleRecord{ID: 2}},
		{SymbolicName: "com.acme.api", Location: "/framework/bundle/5", ActivationErr: errors.New("activate bundle: 500 Internal Server Error")},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "archives: 2")
	assert.Contains(t, output, "active")
	assert.Contains(t, output, "(replaced id 2)")
	assert.Contains(t, output, "installed, not active")
	assert.Contains(t, output, "500 Internal Server Error")
}

func TestRenderSweep(t *testing.T) {
	api := domain.Coordinates{Group: "com.acme", Artifact: "api", Version: "1.0"}
	output, err := Sweep(4, domain.SweepReport{
		Deployed: []domain.DeployResult{
			{SymbolicName: "com.acme.core", Activated: true},
			{SymbolicName: "com.acme.util", Activated: true},
		},
		Failures: []domain.ResolutionFailure{{Coordinates: api, Err: errors.New("not in local repository")}},
		Skipped: []domain.SkippedDependency{
			{Coordinates: domain.Coordinates{Group: "g", Artifact: "a", Version: "1.0"}, Reason: "no matching resolvable artifact"},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "2/4 deployed")
	assert.Contains(t, output, "[============------------]")
	assert.Contains(t, output, "com.acme:api:1.0")
	assert.Contains(t, output, "g:a:1.0: no matching resolvable artifact")
	assert.Contains(t, output, "warnings: 1")
}

func TestRenderSweepWithoutDeclaredDependencies(t *testing.T) {
	output, err := Sweep(0, domain.SweepReport{})

	require.NoError(t, err)
	assert.Contains(t, output, "0/0 deployed")
	assert.NotContains(t, output, "warnings")
}

func TestRenderHistory(t *testing.T) {
	output, err := History([]domain.DeploymentEntry{
		{
			SymbolicName: "com.acme.core",
			Target:       "http://localhost:8080",
			Outcome:      domain.OutcomeActivationFailed,
			Message:      "activate bundle: 500 Internal Server Error",
			At:           time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "entries: 1")
	assert.Contains(t, output, "activation_failed")
	assert.Contains(t, output, "500 Internal Server Error")
}

func TestRenderTargetsHidesPasswords(t *testing.T) {
	output, err := Targets([]application.TargetSummary{
		{
			Target: domain.Target{
				ID:        "staging",
				Host:      "osgi.staging.internal",
				Port:      8443,
				TLS:       domain.TLSModeVerify,
				Username:  "deployer",
				SecretRef: "bd://staging/password",
				Proxy:     &domain.Proxy{Host: "proxy.internal", Port: 3128},
				Timeout:   30 * time.Second,
			},
			HasPassword: true,
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "staging")
	assert.Contains(t, output, "https://osgi.staging.internal:8443")
	assert.Contains(t, output, "password: stored")
	assert.Contains(t, output, "proxy: proxy.internal:3128")
	assert.Contains(t, output, "timeout: 30s")
	assert.NotContains(t, output, "bd://")
}
