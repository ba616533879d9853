package bundleapi_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/bundle-deploy-cli/internal/adapters/archive"
	"github.com/bnema/bundle-deploy-cli/internal/adapters/bundleapi"
	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/bnema/bundle-deploy-cli/internal/ports"
	"github.com/bnema/bundle-deploy-cli/internal/testkit/fakeruntime"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderDefaults(t *testing.T) {
	t.Parallel()

	builder := bundleapi.NewBuilder()
	target := builder.Target()
	assert.Equal(t, "localhost", target.Host)
	assert.Equal(t, 8080, target.Port)
	assert.Equal(t, domain.TLSModeNone, target.TLS)
	assert.Equal(t, "admin", target.Username)
	assert.Nil(t, target.Proxy)

	client, err := builder.Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	assert.Equal(t, "http://localhost:8080", client.ConfiguredTarget())
}

func TestBuilderAppliesSettings(t *testing.T) {
	t.Parallel()

	client, err := bundleapi.NewBuilder().
		WithHost("runtime.example.com").
		WithPort(8443).
		EnableHTTPS().
		WithCredentials("deployer", "pw").
		WithTimeout(5 * time.Second).
		Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, "https://runtime.example.com:8443", client.ConfiguredTarget())
}

func TestBuilderRejectsInvalidTarget(t *testing.T) {
	t.Parallel()

	_, err := bundleapi.NewBuilder().WithPort(0).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port 0 out of range")

	_, err = bundleapi.NewBuilder().WithHost(" ").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host is required")
}

func buildAgainst(t *testing.T, rt *fakeruntime.Runtime, configure func(*bundleapi.Builder)) *bundleapi.Client {
	t.Helper()

	host, port := rt.HostPort()
	builder := bundleapi.NewBuilder().WithHost(host).WithPort(port)
	if configure != nil {
		configure(builder)
	}
	client, err := builder.Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestInstalledLocationIsUsableForActivation(t *testing.T) {
	t.Parallel()

	rt := fakeruntime.Start(t, fakeruntime.WithCredentials("admin", "admin123"))
	client := buildAgainst(t, rt, nil)

	data, err := archive.BuildJAR("com.acme.core", "1.2.0")
	require.NoError(t, err)

	location, err := client.Install(context.Background(), domain.Archive{Name: "core.jar", Data: data}, ports.InstallOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, location)

	require.NoError(t, client.Activate(context.Background(), location))

	records, err := client.ListInstalled(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "com.acme.core", records[0].SymbolicName)
	assert.Equal(t, "1.2.0", records[0].Version)
	assert.Equal(t, location, records[0].Location)
	assert.Equal(t, domain.BundleStateActive, records[0].State)
}

func TestWrongCredentialsAreRejected(t *testing.T) {
	t.Parallel()

	rt := fakeruntime.Start(t, fakeruntime.WithCredentials("admin", "admin123"))
	client := buildAgainst(t, rt, func(b *bundleapi.Builder) {
		b.WithCredentials("admin", "wrong")
	})

	_, err := client.ListInstalled(context.Background())

	var remoteErr *domain.RemoteCallError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, 401, remoteErr.StatusCode)
}

func TestInsecureHTTPSTrustsSelfSignedCertificate(t *testing.T) {
	t.Parallel()

	rt := fakeruntime.Start(t, fakeruntime.WithTLS())
	logger, hook := test.NewNullLogger()
	client := buildAgainst(t, rt, func(b *bundleapi.Builder) {
		b.EnableInsecureHTTPS().WithLogger(logger)
	})

	_, err := client.ListInstalled(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, logrus.WarnLevel, hook.Entries[0].Level)
	assert.Contains(t, hook.Entries[0].Message, "trusting any server certificate")
}

func TestVerifiedHTTPSRejectsSelfSignedCertificate(t *testing.T) {
	t.Parallel()

	rt := fakeruntime.Start(t, fakeruntime.WithTLS())
	client := buildAgainst(t, rt, func(b *bundleapi.Builder) {
		b.EnableHTTPS()
	})

	_, err := client.ListInstalled(context.Background())

	var transportErr *domain.TransportError
	require.True(t, errors.As(err, &transportErr))
}
