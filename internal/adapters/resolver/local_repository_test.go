package resolver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFindsArtifactInMavenLayout(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	coords := domain.Coordinates{Group: "com.acme", Artifact: "core", Version: "1.0"}
	expected := filepath.Join(root, "com", "acme", "core", "1.0", "core-1.0.jar")
	require.NoError(t, os.MkdirAll(filepath.Dir(expected), 0o755))
	require.NoError(t, os.WriteFile(expected, []byte("jar"), 0o644))

	path, err := LocalRepository{Root: root}.Resolve(context.Background(), coords)
	require.NoError(t, err)
	assert.Equal(t, expected, path)
}

func TestResolveMissingArtifactIsResolutionError(t *testing.T) {
	t.Parallel()

	coords := domain.Coordinates{Group: "com.acme", Artifact: "missing", Version: "2.0"}
	_, err := LocalRepository{Root: t.TempDir()}.Resolve(context.Background(), coords)
	require.Error(t, err)

	var resolutionErr *domain.ResolutionError
	require.True(t, errors.As(err, &resolutionErr))
	assert.True(t, resolutionErr.Coordinates.Equal(coords))
	assert.EqualError(t, err, "resolve com.acme:missing:2.0: artifact not found")
}

func TestResolveRejectsIncompleteInput(t *testing.T) {
	t.Parallel()

	_, err := LocalRepository{Root: t.TempDir()}.Resolve(context.Background(), domain.Coordinates{Group: "com.acme", Artifact: "core"})
	assert.True(t, domain.IsResolutionError(err))
	assert.Contains(t, err.Error(), "version is required")

	_, err = LocalRepository{}.Resolve(context.Background(), domain.Coordinates{Group: "g", Artifact: "a", Version: "1"})
	assert.True(t, domain.IsResolutionError(err))
	assert.Contains(t, err.Error(), "repository root is not configured")
}

func TestResolveHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LocalRepository{Root: t.TempDir()}.Resolve(ctx, domain.Coordinates{Group: "g", Artifact: "a", Version: "1"})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, domain.IsResolutionError(err))
}
