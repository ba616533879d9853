package ports

import (
	"context"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
)

type InstallOptions struct {
	// Override asks the runtime to replace an installed bundle with the same
	// symbolic name instead of rejecting the upload.
	Override bool
}

// BundleManager is the management API of one remote runtime. Every call is a
// single blocking exchange; implementations are not required to be safe for
// concurrent use.
type BundleManager interface {
	Install(ctx context.Context, archive domain.Archive, opts InstallOptions) (string, error)
	Uninstall(ctx context.Context, id domain.BundleID) error
	Activate(ctx context.Context, location string) error
	ListInstalled(ctx context.Context) ([]domain.BundleRecord, error)
	Close() error
}
