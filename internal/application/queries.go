package application

import "github.com/bnema/bundle-deploy-cli/internal/domain"

type TargetSummary struct {
	Target      domain.Target
	HasPassword bool
}
