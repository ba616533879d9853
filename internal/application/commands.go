package application

import "github.com/bnema/bundle-deploy-cli/internal/domain"

// DeployOptions select how one archive is pushed. Zero values mean strict
// activation with the uninstall-first strategy.
type DeployOptions struct {
	Policy   domain.ActivationPolicy
	Strategy domain.ReplaceStrategy
}

func (o DeployOptions) withDefaults() DeployOptions {
	if o.Policy == "" {
		o.Policy = domain.ActivationStrict
	}
	if o.Strategy == "" {
		o.Strategy = domain.ReplaceUninstallFirst
	}
	return o
}

// SetTargetCommand registers or updates a named target. An empty Password
// keeps the stored one.
type SetTargetCommand struct {
	Target   domain.Target
	Password string
}
