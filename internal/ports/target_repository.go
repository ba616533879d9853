package ports

import (
	"context"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
)

type TargetRepository interface {
	GetByID(ctx context.Context, id domain.TargetID) (domain.Target, error)
	List(ctx context.Context) ([]domain.Target, error)
	Save(ctx context.Context, target domain.Target) error
	Delete(ctx context.Context, id domain.TargetID) error
}
