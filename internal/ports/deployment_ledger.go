package ports

import (
	"context"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
)

type DeploymentLedger interface {
	Record(ctx context.Context, entry domain.DeploymentEntry) error
	List(ctx context.Context, limit int) ([]domain.DeploymentEntry, error)
}
