// Package repository persists the account snapshot. The whole collection
// lives under one versioned key and is read and replaced wholesale; there is
// no row-level access and no partial write a caller can observe. Loading an
// absent key seeds the demo dataset first.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/retrobank/backoffice/internal/domain"
)

// SnapshotKey is the single versioned key the collection lives under.
const SnapshotKey = "backoffice_db_v2"

type Store interface {
	// Load reads the entire snapshot, seeding it on first run.
	Load(ctx context.Context) (domain.Snapshot, error)
	// Save atomically replaces the entire snapshot.
	Save(ctx context.Context, snap domain.Snapshot) error
}

func encodeSnapshot(snap domain.Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encodeSnapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decodeSnapshot: %w", err)
	}
	return snap, nil
}
