package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/retrobank/backoffice/internal/domain"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	version    BIGINT NOT NULL,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// PostgresStore keeps the snapshot in a single row, same contract as the
// SQLite backend. The version column only bumps monotonically per save; the
// engine's single-writer lock is what serializes writers, not the database.
type PostgresStore struct {
	db  *sql.DB
	key string
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("NewPostgresStore: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("NewPostgresStore: ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("NewPostgresStore: schema: %w", err)
	}
	return &PostgresStore{db: db, key: SnapshotKey}, nil
}

func (s *PostgresStore) Close() error { return s.db.Close() }

func (s *PostgresStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *PostgresStore) Load(ctx context.Context) (domain.Snapshot, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE key = $1`, s.key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return s.seed(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	return decodeSnapshot(data)
}

func (s *PostgresStore) Save(ctx context.Context, snap domain.Snapshot) error {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, version, data, updated_at)
		 VALUES ($1, 1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET
			version = snapshots.version + 1,
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at`,
		s.key, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

func (s *PostgresStore) seed(ctx context.Context) (domain.Snapshot, error) {
	snap, err := SeedSnapshot()
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if err := s.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return snap, nil
}
