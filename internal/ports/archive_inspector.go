package ports

import "github.com/bnema/bundle-deploy-cli/internal/domain"

type ArchiveInspector interface {
	SymbolicName(path string) (string, error)
	Read(path string) (domain.Archive, error)
}
