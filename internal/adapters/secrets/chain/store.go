// Package chain tries a primary secret backend and falls back to a second one
// when the primary is unavailable or does not hold the secret.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/bundle-deploy-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/bundle-deploy-cli/internal/adapters/secrets/pass"
	"github.com/bnema/bundle-deploy-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	logger   logrus.FieldLogger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback, logger: logrus.StandardLogger()}, nil
}

// NewPassFirstWithFileFallback prefers the pass password manager and keeps
// private files under fileRoot when pass is missing or fails.
func NewPassFirstWithFileFallback(fileRoot string, logger logrus.FieldLogger) (*Store, error) {
	store, err := NewStoreChecked(passstore.NewStore(), filestore.NewStore(fileRoot))
	if err != nil {
		return nil, err
	}
	return store.WithLogger(logger), nil
}

func (s *Store) WithLogger(logger logrus.FieldLogger) *Store {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *Store) Put(ctx context.Context, ref string, value string) error {
	err := s.primary.Put(ctx, ref, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}
	s.logFallback("put", ref, err)

	fallbackErr := s.fallback.Put(ctx, ref, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, ref string) (string, error) {
	value, err := s.primary.Get(ctx, ref)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}
	s.logFallback("get", ref, err)

	fallbackValue, fallbackErr := s.fallback.Get(ctx, ref)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Delete removes the secret from both backends. It fails only when neither
// backend could delete it.
func (s *Store) Delete(ctx context.Context, ref string) error {
	err := s.primary.Delete(ctx, ref)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, ref)
	if err == nil || fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
}

func (s *Store) logFallback(op string, ref string, err error) {
	s.logger.WithFields(logrus.Fields{
		"op":         op,
		"secret_ref": ref,
	}).WithError(err).Debug("primary secret backend failed, trying fallback")
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
