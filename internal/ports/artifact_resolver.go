package ports

import (
	"context"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
)

type ArtifactResolver interface {
	Resolve(ctx context.Context, coords domain.Coordinates) (string, error)
}
