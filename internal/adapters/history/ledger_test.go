package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()

	ledger, err := Open(filepath.Join(t.TempDir(), "state", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ledger.Close() })
	return ledger
}

func TestRecordAndListNewestFirst(t *testing.T) {
	t.Parallel()

	ledger := openTestLedger(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, name := range []string{"com.acme.api", "com.acme.core", "com.acme.web"} {
		require.NoError(t, ledger.Record(ctx, domain.DeploymentEntry{
			RunID:        "run-1",
			Target:       "http://localhost:8080",
			SymbolicName: name,
			Path:         "/tmp/" + name + ".jar",
			Location:     "/framework/bundle/1",
			Outcome:      domain.OutcomeActive,
			At:           at.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := ledger.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "com.acme.web", entries[0].SymbolicName)
	assert.Equal(t, "com.acme.api", entries[2].SymbolicName)
	assert.Equal(t, domain.OutcomeActive, entries[0].Outcome)
	assert.True(t, at.Add(2*time.Minute).Equal(entries[0].At))

	limited, err := ledger.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "com.acme.core", limited[1].SymbolicName)
}

func TestListEmptyLedger(t *testing.T) {
	t.Parallel()

	entries, err := openTestLedger(t).List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntriesSurviveReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.db")
	ledger, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, ledger.Record(context.Background(), domain.DeploymentEntry{
		RunID:        "run-9",
		SymbolicName: "com.acme.core",
		Outcome:      domain.OutcomeActivationFailed,
		Message:      "activate bundle: unexpected status 500",
		At:           time.Now(),
	}))
	require.NoError(t, ledger.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	entries, err := reopened.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "run-9", entries[0].RunID)
	assert.Equal(t, "activate bundle: unexpected status 500", entries[0].Message)
}

func TestLedgerHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ledger := openTestLedger(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ledger.Record(ctx, domain.DeploymentEntry{}), context.Canceled)
	_, err := ledger.List(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open(" ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history path is required")
}
