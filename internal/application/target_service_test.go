package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tomlrepo "github.com/bnema/bundle-deploy-cli/internal/adapters/repo/toml"
	filestore "github.com/bnema/bundle-deploy-cli/internal/adapters/secrets/file"
	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/bnema/bundle-deploy-cli/internal/ports/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stagingTarget() domain.Target {
	return domain.Target{
		ID:       "staging",
		Host:     "osgi.staging.internal",
		Port:     8443,
		TLS:      domain.TLSModeVerify,
		Username: "deployer",
		Timeout:  30 * time.Second,
	}
}

func newLocalTargetService(t *testing.T) (*TargetService, *filestore.Store) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := viper.New()
	cfg.Set("targets.path", filepath.Join(home, "targets.toml"))
	repo, err := tomlrepo.NewRepository(cfg)
	require.NoError(t, err)

	store := filestore.NewStore(filepath.Join(home, "secrets"))
	return NewTargetService(repo, store), store
}

func TestTargetServiceStoresPasswordOutsideRepository(t *testing.T) {
	service, store := newLocalTargetService(t)
	ctx := context.Background()

	require.NoError(t, service.SetTarget(ctx, SetTargetCommand{Target: stagingTarget(), Password: "s3cret"}))

	target, password, err := service.ResolveTarget(ctx, "staging")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", password)
	assert.Equal(t, "bd://staging/password", target.SecretRef)
	assert.Equal(t, "osgi.staging.internal", target.Host)

	stored, err := store.Get(ctx, target.SecretRef)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", stored)
}

func TestTargetServiceKeepsPasswordWhenOmitted(t *testing.T) {
	service, _ := newLocalTargetService(t)
	ctx := context.Background()

	require.NoError(t, service.SetTarget(ctx, SetTargetCommand{Target: stagingTarget(), Password: "s3cret"}))

	updated := stagingTarget()
	updated.Port = 9443
	require.NoError(t, service.SetTarget(ctx, SetTargetCommand{Target: updated}))

	target, password, err := service.ResolveTarget(ctx, "staging")
	require.NoError(t, err)
	assert.Equal(t, 9443, target.Port)
	assert.Equal(t, "s3cret", password)
}

func TestTargetServiceListReportsPasswordPresence(t *testing.T) {
	service, _ := newLocalTargetService(t)
	ctx := context.Background()

	local := domain.DefaultTarget()
	local.ID = "local"
	require.NoError(t, service.SetTarget(ctx, SetTargetCommand{Target: local}))
	require.NoError(t, service.SetTarget(ctx, SetTargetCommand{Target: stagingTarget(), Password: "s3cret"}))

	summaries, err := service.ListTargets(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := map[domain.TargetID]bool{}
	for _, summary := range summaries {
		byID[summary.Target.ID] = summary.HasPassword
	}
	assert.False(t, byID["local"])
	assert.True(t, byID["staging"])
}

func TestTargetServiceRemoveDeletesPassword(t *testing.T) {
	service, store := newLocalTargetService(t)
	ctx := context.Background()

	require.NoError(t, service.SetTarget(ctx, SetTargetCommand{Target: stagingTarget(), Password: "s3cret"}))
	require.NoError(t, service.RemoveTarget(ctx, "staging"))

	_, _, err := service.ResolveTarget(ctx, "staging")
	require.ErrorIs(t, err, domain.ErrTargetNotFound)

	_, err = store.Get(ctx, domain.PasswordSecretRef("staging"))
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestTargetServiceRejectsInvalidTarget(t *testing.T) {
	repo := mocks.NewMockTargetRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewTargetService(repo, store)

	target := stagingTarget()
	target.Port = 0
	err := service.SetTarget(context.Background(), SetTargetCommand{Target: target, Password: "s3cret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port 0 out of range")

	err = service.SetTarget(context.Background(), SetTargetCommand{Target: domain.DefaultTarget()})
	require.EqualError(t, err, "target id is required")
}

func TestTargetServiceRestoresPreviousPasswordWhenSaveFails(t *testing.T) {
	repo := mocks.NewMockTargetRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewTargetService(repo, store)

	target := stagingTarget()
	target.SecretRef = domain.PasswordSecretRef(target.ID)
	saveErr := errors.New("disk full")

	repo.EXPECT().GetByID(mockAnyContext(), target.ID).Return(target, nil).Once()
	store.EXPECT().Get(mockAnyContext(), "bd://staging/password").Return("old", nil).Once()
	store.EXPECT().Put(mockAnyContext(), "bd://staging/password", "new").Return(nil).Once()
	repo.EXPECT().Save(mockAnyContext(), target).Return(saveErr).Once()
	store.EXPECT().Put(mockAnyContext(), "bd://staging/password", "old").Return(nil).Once()

	err := service.SetTarget(context.Background(), SetTargetCommand{Target: stagingTarget(), Password: "new"})
	require.ErrorIs(t, err, saveErr)
}

func TestTargetServiceDeletesNewPasswordWhenFirstSaveFails(t *testing.T) {
	repo := mocks.NewMockTargetRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewTargetService(repo, store)

	saveErr := errors.New("disk full")
	deleteErr := errors.New("permission denied")

	repo.EXPECT().GetByID(mockAnyContext(), domain.TargetID("staging")).Return(domain.Target{}, domain.ErrTargetNotFound).Once()
	store.EXPECT().Get(mockAnyContext(), "bd://staging/password").Return("", domain.ErrSecretNotFound).Once()
	store.EXPECT().Put(mockAnyContext(), "bd://staging/password", "new").Return(nil).Once()
	repo.EXPECT().Save(mockAnyContext(), mock.AnythingOfType("domain.Target")).Return(saveErr).Once()
	store.EXPECT().Delete(mockAnyContext(), "bd://staging/password").Return(deleteErr).Once()

	err := service.SetTarget(context.Background(), SetTargetCommand{Target: stagingTarget(), Password: "new"})
	require.ErrorIs(t, err, saveErr)
	require.ErrorIs(t, err, deleteErr)
	assert.Contains(t, err.Error(), "rollback stored password")
}

func TestTargetServiceDropsStaleSecretRef(t *testing.T) {
	repo := mocks.NewMockTargetRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewTargetService(repo, store)

	existing := stagingTarget()
	existing.SecretRef = "bd://legacy/staging"

	repo.EXPECT().GetByID(mockAnyContext(), existing.ID).Return(existing, nil).Once()
	store.EXPECT().Get(mockAnyContext(), "bd://staging/password").Return("", domain.ErrSecretNotFound).Once()
	store.EXPECT().Put(mockAnyContext(), "bd://staging/password", "new").Return(nil).Once()
	repo.EXPECT().Save(mockAnyContext(), mock.AnythingOfType("domain.Target")).Return(nil).Once()
	store.EXPECT().Delete(mockAnyContext(), "bd://legacy/staging").Return(nil).Once()

	require.NoError(t, service.SetTarget(context.Background(), SetTargetCommand{Target: stagingTarget(), Password: "new"}))
}

func TestTargetServiceRestoresTargetWhenSecretDeleteFails(t *testing.T) {
	repo := mocks.NewMockTargetRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewTargetService(repo, store)

	target := stagingTarget()
	target.SecretRef = domain.PasswordSecretRef(target.ID)
	deleteErr := errors.New("pass: gpg failed")

	repo.EXPECT().GetByID(mockAnyContext(), target.ID).Return(target, nil).Once()
	repo.EXPECT().Delete(mockAnyContext(), target.ID).Return(nil).Once()
	store.EXPECT().Delete(mockAnyContext(), target.SecretRef).Return(deleteErr).Once()
	repo.EXPECT().Save(mockAnyContext(), target).Return(nil).Once()

	err := service.RemoveTarget(context.Background(), target.ID)
	require.ErrorIs(t, err, deleteErr)
}

func TestTargetServiceResolveFailsWhenPasswordIsUnreadable(t *testing.T) {
	repo := mocks.NewMockTargetRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewTargetService(repo, store)

	target := stagingTarget()
	target.SecretRef = domain.PasswordSecretRef(target.ID)

	repo.EXPECT().GetByID(mockAnyContext(), target.ID).Return(target, nil).Once()
	store.EXPECT().Get(mockAnyContext(), target.SecretRef).Return("", domain.ErrSecretNotFound).Once()

	_, _, err := service.ResolveTarget(context.Background(), target.ID)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.Contains(t, err.Error(), "read password of target staging")
}
