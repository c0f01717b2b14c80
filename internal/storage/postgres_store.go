package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"habitmini/internal/constants"
	"habitmini/internal/store"
)

// PostgresStore keeps the snapshot slot in a Postgres table, for users who
// point several machines at one database. Same document shape as the other
// providers; the table is namespaced by app name instead of by file path.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

const pgSchema = `
CREATE TABLE IF NOT EXISTS habitmini_slots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);`

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(pgSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(pgSchema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to reach database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) SaveSnapshot(snap store.Snapshot) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO habitmini_slots (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		constants.StateKey, string(raw), time.Now().UTC(),
	)
	return err
}

func (s *PostgresStore) LoadSnapshot() (store.Snapshot, bool, error) {
	if s.db == nil {
		return store.Snapshot{}, false, fmt.Errorf("storage not loaded")
	}

	var raw string
	err := s.db.QueryRow("SELECT value FROM habitmini_slots WHERE key = $1", constants.StateKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return store.Snapshot{}, false, nil
	}
	if err != nil {
		return store.Snapshot{}, false, err
	}

	var snap store.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return store.Snapshot{}, false, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	return snap, true, nil
}

// GetConfigPath returns the connection string; for Postgres there is no
// local file, so backup and doctor treat this provider specially.
func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
