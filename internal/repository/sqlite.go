package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/retrobank/backoffice/internal/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	version    INTEGER NOT NULL,
	data       BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// SQLiteStore keeps the snapshot in a single row of an embedded database.
// It is the default backend: state survives a process restart without any
// external service.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("NewSQLiteStore: open: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("NewSQLiteStore: schema: %w", err)
	}
	return &SQLiteStore{db: db, key: SnapshotKey}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQLiteStore) Load(ctx context.Context) (domain.Snapshot, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE key = ?`, s.key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return s.seed(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	return decodeSnapshot(data)
}

func (s *SQLiteStore) Save(ctx context.Context, snap domain.Snapshot) error {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, version, data, updated_at)
		 VALUES (?, 1, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			version = version + 1,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		s.key, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) seed(ctx context.Context) (domain.Snapshot, error) {
	snap, err := SeedSnapshot()
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if err := s.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return snap, nil
}
