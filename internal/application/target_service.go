package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/bnema/bundle-deploy-cli/internal/ports"
)

// TargetService manages named targets and their passwords. Passwords live in
// the secret store; the repository only keeps a reference.
type TargetService struct {
	repo  ports.TargetRepository
	store ports.SecretStore
}

func NewTargetService(repo ports.TargetRepository, store ports.SecretStore) *TargetService {
	return &TargetService{repo: repo, store: store}
}

func (s *TargetService) SetTarget(ctx context.Context, cmd SetTargetCommand) error {
	target := cmd.Target
	if target.ID == "" {
		return errors.New("target id is required")
	}
	if target.TLS == "" {
		target.TLS = domain.TLSModeNone
	}
	if err := target.Validate(); err != nil {
		return fmt.Errorf("invalid target %s: %w", target.ID, err)
	}

	existing, err := s.repo.GetByID(ctx, target.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrTargetNotFound) {
			return fmt.Errorf("get target by id: %w", err)
		}
		existing = domain.Target{}
	}

	if cmd.Password == "" {
		target.SecretRef = existing.SecretRef
		if err := s.repo.Save(ctx, target); err != nil {
			return fmt.Errorf("save target: %w", err)
		}
		return nil
	}

	secretRef := domain.PasswordSecretRef(target.ID)
	previousValue, hadPrevious, err := s.lookupSecret(ctx, secretRef)
	if err != nil {
		return err
	}

	if err := s.store.Put(ctx, secretRef, cmd.Password); err != nil {
		return fmt.Errorf("store target password: %w", err)
	}
	target.SecretRef = secretRef

	if err := s.repo.Save(ctx, target); err != nil {
		var rollbackErr error
		if hadPrevious {
			rollbackErr = s.store.Put(ctx, secretRef, previousValue)
		} else {
			rollbackErr = s.store.Delete(ctx, secretRef)
		}
		if rollbackErr != nil {
			return fmt.Errorf("save target and rollback stored password: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("save target: %w", err)
	}

	if existing.SecretRef != "" && existing.SecretRef != secretRef {
		if err := s.store.Delete(ctx, existing.SecretRef); err != nil {
			return fmt.Errorf("delete previous target password: %w", err)
		}
	}

	return nil
}

func (s *TargetService) RemoveTarget(ctx context.Context, id domain.TargetID) error {
	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get target by id: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete target: %w", err)
	}

	if target.SecretRef == "" {
		return nil
	}

	if err := s.store.Delete(ctx, target.SecretRef); err != nil {
		if restoreErr := s.repo.Save(ctx, target); restoreErr != nil {
			return fmt.Errorf("delete target password and restore target: %w", errors.Join(err, restoreErr))
		}
		return fmt.Errorf("delete target password: %w", err)
	}

	return nil
}

func (s *TargetService) ListTargets(ctx context.Context) ([]TargetSummary, error) {
	targets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}

	summaries := make([]TargetSummary, 0, len(targets))
	for _, target := range targets {
		summaries = append(summaries, TargetSummary{Target: target, HasPassword: target.SecretRef != ""})
	}

	return summaries, nil
}

// ResolveTarget loads a target together with its password. A target without
// a stored password yields an empty password.
func (s *TargetService) ResolveTarget(ctx context.Context, id domain.TargetID) (domain.Target, string, error) {
	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Target{}, "", fmt.Errorf("get target by id: %w", err)
	}
	if target.SecretRef == "" {
		return target, "", nil
	}

	password, err := s.store.Get(ctx, target.SecretRef)
	if err != nil {
		return domain.Target{}, "", fmt.Errorf("read password of target %s: %w", id, err)
	}

	return target, password, nil
}

func (s *TargetService) lookupSecret(ctx context.Context, ref string) (string, bool, error) {
	value, err := s.store.Get(ctx, ref)
	if err == nil {
		return value, true, nil
	}
	if errors.Is(err, domain.ErrSecretNotFound) {
		return "", false, nil
	}
	return "", false, fmt.Errorf("read current target password: %w", err)
}
