package application_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/bnema/bundle-deploy-cli/internal/adapters/archive"
	"github.com/bnema/bundle-deploy-cli/internal/adapters/bundleapi"
	"github.com/bnema/bundle-deploy-cli/internal/adapters/history"
	"github.com/bnema/bundle-deploy-cli/internal/application"
	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/bnema/bundle-deploy-cli/internal/testkit/fakeruntime"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRuntimeDeployer(t *testing.T, runtime *fakeruntime.Runtime, opts ...application.DeployerOption) *application.Deployer {
	t.Helper()

	host, port := runtime.HostPort()
	client, err := bundleapi.NewBuilder().WithHost(host).WithPort(port).Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return application.NewDeployer(client, archive.ManifestInspector{}, nil, opts...)
}

func TestForceInstallTwiceLeavesOneBundle(t *testing.T) {
	for _, strategy := range []domain.ReplaceStrategy{domain.ReplaceUninstallFirst, domain.ReplaceOverride} {
		t.Run(string(strategy), func(t *testing.T) {
			runtime := fakeruntime.Start(t)
			deployer := newRuntimeDeployer(t, runtime)

			path, err := archive.WriteJAR(t.TempDir(), "core.jar", "com.acme.core;singleton:=true", "1.0.0")
			require.NoError(t, err)

			_, err = deployer.ForceInstall(context.Background(), path, strategy)
			require.NoError(t, err)
			second, err := deployer.ForceInstall(context.Background(), path, strategy)
			require.NoError(t, err)

			bundles := runtime.Bundles()
			require.Len(t, bundles, 1)
			assert.Equal(t, "com.acme.core", bundles[0].SymbolicName)
			assert.Equal(t, bundles[0].Location, second.Location)
		})
	}
}

func TestInstallAndStartAgainstRuntimeRecordsHistory(t *testing.T) {
	runtime := fakeruntime.Start(t)
	runtime.Seed("com.acme.core", "0.9.0")

	ledger, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ledger.Close() })

	deployer := newRuntimeDeployer(t, runtime, application.WithLedger(ledger), application.WithTarget(runtime.URL()))
	path, err := archive.WriteJAR(t.TempDir(), "core.jar", "com.acme.core", "1.0.0")
	require.NoError(t, err)

	result, err := deployer.InstallAndStart(context.Background(), path, application.DeployOptions{})
	require.NoError(t, err)
	assert.True(t, result.Activated)
	require.NotNil(t, result.Replaced)
	assert.Equal(t, domain.BundleID(1), result.Replaced.ID)

	assert.Equal(t, []string{
		"GET /framework/bundles/representations",
		"DELETE /framework/bundle/1",
		"POST /framework/bundles",
		"PUT /framework/bundle/2/state",
	}, runtime.Requests())

	entries, err := ledger.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.OutcomeActive, entries[0].Outcome)
	assert.Equal(t, deployer.RunID(), entries[0].RunID)
	assert.Equal(t, runtime.URL(), entries[0].Target)
}

func TestLenientStartSurvivesActivationFailure(t *testing.T) {
	runtime := fakeruntime.Start(t)
	runtime.Fail(fakeruntime.CallActivate, "com.acme.core", http.StatusInternalServerError)

	logger, hook := test.NewNullLogger()
	deployer := newRuntimeDeployer(t, runtime, application.WithLogger(logger))
	path, err := archive.WriteJAR(t.TempDir(), "core.jar", "com.acme.core", "1.0.0")
	require.NoError(t, err)

	result, err := deployer.InstallAndStart(context.Background(), path, application.DeployOptions{Policy: domain.ActivationLenient})
	require.NoError(t, err)
	assert.False(t, result.Activated)
	require.Error(t, result.ActivationErr)
	require.Len(t, runtime.Bundles(), 1)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "bundle installed but could not be activated", hook.LastEntry().Message)

	_, err = deployer.InstallAndStart(context.Background(), path, application.DeployOptions{Policy: domain.ActivationStrict})
	require.Error(t, err)
	assert.Len(t, runtime.Bundles(), 1)
}
