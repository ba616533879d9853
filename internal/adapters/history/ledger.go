// Package history keeps a local record of deployments in a BoltDB file.
package history

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/bnema/bundle-deploy-cli/internal/ports"
	"go.etcd.io/bbolt"
)

const deploymentsBucket = "deployments"

type entryRecord struct {
	RunID        string    `json:"run_id"`
	Target       string    `json:"target"`
	SymbolicName string    `json:"symbolic_name"`
	Path         string    `json:"path"`
	Location     string    `json:"location,omitempty"`
	Outcome      string    `json:"outcome"`
	Message      string    `json:"message,omitempty"`
	At           time.Time `json:"at"`
}

// Ledger is a BoltDB-backed deployment history. Entries are kept in the order
// they were recorded.
type Ledger struct {
	db *bbolt.DB
}

var _ ports.DeploymentLedger = (*Ledger)(nil)

// Open opens the ledger at path, creating the file and its directory if
// needed.
func Open(path string) (*Ledger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("history path is required")
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o700); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	ledger := &Ledger{db: db}
	if err := ledger.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return ledger, nil
}

func (l *Ledger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

func (l *Ledger) Record(ctx context.Context, entry domain.DeploymentEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l == nil || l.db == nil {
		return fmt.Errorf("history is not configured")
	}

	payload, err := json.Marshal(toRecord(entry))
	if err != nil {
		return fmt.Errorf("marshal deployment entry: %w", err)
	}

	return l.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(deploymentsBucket))
		if bucket == nil {
			return fmt.Errorf("deployments bucket is missing")
		}
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("next deployment sequence: %w", err)
		}
		return bucket.Put(sequenceKey(seq), payload)
	})
}

// List returns up to limit entries, newest first. A limit of zero or less
// returns every entry.
func (l *Ledger) List(ctx context.Context, limit int) ([]domain.DeploymentEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l == nil || l.db == nil {
		return nil, fmt.Errorf("history is not configured")
	}

	var entries []domain.DeploymentEntry
	err := l.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(deploymentsBucket))
		if bucket == nil {
			return fmt.Errorf("deployments bucket is missing")
		}

		cursor := bucket.Cursor()
		for key, payload := cursor.Last(); key != nil; key, payload = cursor.Prev() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			var record entryRecord
			if err := json.Unmarshal(payload, &record); err != nil {
				return fmt.Errorf("unmarshal deployment entry: %w", err)
			}
			entries = append(entries, fromRecord(record))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (l *Ledger) ensureBuckets() error {
	return l.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(deploymentsBucket)); err != nil {
			return fmt.Errorf("create deployments bucket: %w", err)
		}
		return nil
	})
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

func toRecord(entry domain.DeploymentEntry) entryRecord {
	return entryRecord{
		RunID:        entry.RunID,
		Target:       entry.Target,
		SymbolicName: entry.SymbolicName,
		Path:         entry.Path,
		Location:     entry.Location,
		Outcome:      string(entry.Outcome),
		Message:      entry.Message,
		At:           entry.At.UTC(),
	}
}

func fromRecord(record entryRecord) domain.DeploymentEntry {
	return domain.DeploymentEntry{
		RunID:        record.RunID,
		Target:       record.Target,
		SymbolicName: record.SymbolicName,
		Path:         record.Path,
		Location:     record.Location,
		Outcome:      domain.DeploymentOutcome(record.Outcome),
		Message:      record.Message,
		At:           record.At,
	}
}
