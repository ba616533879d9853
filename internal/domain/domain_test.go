package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleStateLabel(t *testing.T) {
	tests := []struct {
		name  string
		state BundleState
		want  string
	}{
		{name: "installed", state: BundleStateInstalled, want: "installed"},
		{name: "resolved", state: BundleStateResolved, want: "resolved"},
		{name: "active", state: BundleStateActive, want: "active"},
		{name: "zero value", state: BundleState(0), want: "unknown"},
		{name: "unknown code returns raw value", state: BundleState(64), want: "state(64)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Label())
		})
	}
}

func TestActivateRequestTargetsActiveState(t *testing.T) {
	assert.Equal(t, BundleState(32), ActivateRequest.State)
	assert.Equal(t, 0, ActivateRequest.Options)
}

func TestFindBySymbolicName(t *testing.T) {
	records := []BundleRecord{
		{ID: 3, SymbolicName: "com.acme.api"},
		{ID: 7, SymbolicName: "com.acme.core"},
	}

	found, ok := FindBySymbolicName(records, "com.acme.core")
	require.True(t, ok)
	assert.Equal(t, BundleID(7), found.ID)

	_, ok = FindBySymbolicName(records, "com.acme")
	assert.False(t, ok)
}

func TestNormalizeSymbolicNameStripsDirectives(t *testing.T) {
	assert.Equal(t, "com.acme.core", NormalizeSymbolicName("com.acme.core;singleton:=true"))
	assert.Equal(t, "com.acme.core", NormalizeSymbolicName("  com.acme.core  "))
	assert.Equal(t, "", NormalizeSymbolicName(""))
}

func TestCoordinatesMatchOnAllFields(t *testing.T) {
	declared := Coordinates{Group: "g", Artifact: "a", Version: "1.0"}

	assert.True(t, declared.Equal(Coordinates{Group: "g", Artifact: "a", Version: "1.0"}))
	assert.False(t, declared.Equal(Coordinates{Group: "g", Artifact: "a", Version: "2.0"}))
	assert.False(t, declared.Equal(Coordinates{Group: "g", Artifact: "b", Version: "1.0"}))
	assert.False(t, declared.Equal(Coordinates{Group: "h", Artifact: "a", Version: "1.0"}))
}

func TestParseCoordinates(t *testing.T) {
	coords, err := ParseCoordinates("com.acme:core:1.2.0")
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Group: "com.acme", Artifact: "core", Version: "1.2.0"}, coords)
	assert.Equal(t, "com.acme:core:1.2.0", coords.String())

	_, err = ParseCoordinates("com.acme:core")
	assert.ErrorContains(t, err, "expected group:artifact:version")

	_, err = ParseCoordinates("com.acme::1.0")
	assert.ErrorContains(t, err, "artifact is required")
}

func TestParseActivationPolicy(t *testing.T) {
	policy, err := ParseActivationPolicy("")
	require.NoError(t, err)
	assert.Equal(t, ActivationStrict, policy)

	policy, err = ParseActivationPolicy("lenient")
	require.NoError(t, err)
	assert.Equal(t, ActivationLenient, policy)

	_, err = ParseActivationPolicy("yolo")
	assert.ErrorContains(t, err, "unsupported activation policy")
}

func TestParseReplaceStrategy(t *testing.T) {
	strategy, err := ParseReplaceStrategy("")
	require.NoError(t, err)
	assert.Equal(t, ReplaceUninstallFirst, strategy)

	strategy, err = ParseReplaceStrategy("override")
	require.NoError(t, err)
	assert.Equal(t, ReplaceOverride, strategy)

	_, err = ParseReplaceStrategy("merge")
	assert.Error(t, err)
}

func TestErrorsUnwrapToCause(t *testing.T) {
	cause := errors.New("connection refused")

	wrapped := fmt.Errorf("install bundle: %w", &TransportError{Op: "install", Err: cause})
	var transportErr *TransportError
	require.ErrorAs(t, wrapped, &transportErr)
	assert.ErrorIs(t, wrapped, cause)

	remote := fmt.Errorf("install bundle: %w", &RemoteCallError{Op: "install", StatusCode: 500, Reason: "Internal Server Error"})
	var remoteErr *RemoteCallError
	require.ErrorAs(t, remote, &remoteErr)
	assert.Equal(t, 500, remoteErr.StatusCode)
	assert.Contains(t, remote.Error(), "unexpected status 500 Internal Server Error")

	resolution := &ResolutionError{Coordinates: Coordinates{Group: "g", Artifact: "a", Version: "1.0"}}
	assert.True(t, IsResolutionError(fmt.Errorf("sweep: %w", resolution)))
	assert.Contains(t, resolution.Error(), "g:a:1.0")
}

func TestSweepReportWarnings(t *testing.T) {
	report := SweepReport{
		Deployed: []DeployResult{
			{SymbolicName: "a", Activated: true},
			{SymbolicName: "b", ActivationErr: errors.New("missing capability")},
		},
		Failures: []ResolutionFailure{{Coordinates: Coordinates{Group: "g", Artifact: "c", Version: "1"}}},
	}

	assert.Equal(t, 2, report.Warnings())
}
