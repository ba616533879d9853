package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/bnema/bundle-deploy-cli/internal/ports"
)

// LocalRepository resolves artifacts from a directory laid out like a maven
// repository: <root>/<group path>/<artifact>/<version>/<artifact>-<version>.jar.
type LocalRepository struct {
	Root string
}

var _ ports.ArtifactResolver = LocalRepository{}

// DefaultRoot returns ~/.m2/repository.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".m2", "repository"), nil
}

func (r LocalRepository) Resolve(ctx context.Context, coords domain.Coordinates) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := coords.Validate(); err != nil {
		return "", &domain.ResolutionError{Coordinates: coords, Err: err}
	}
	if strings.TrimSpace(r.Root) == "" {
		return "", &domain.ResolutionError{Coordinates: coords, Err: errors.New("repository root is not configured")}
	}

	path := r.ArtifactPath(coords)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &domain.ResolutionError{Coordinates: coords}
		}
		return "", &domain.ResolutionError{Coordinates: coords, Err: err}
	}
	if info.IsDir() {
		return "", &domain.ResolutionError{Coordinates: coords, Err: fmt.Errorf("%s is a directory", path)}
	}

	return path, nil
}

func (r LocalRepository) ArtifactPath(coords domain.Coordinates) string {
	groupPath := filepath.Join(strings.Split(coords.Group, ".")...)
	fileName := coords.Artifact + "-" + coords.Version + ".jar"
	return filepath.Join(r.Root, groupPath, coords.Artifact, coords.Version, fileName)
}
