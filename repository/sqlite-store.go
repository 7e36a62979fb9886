package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore persists the data as JSON documents in a SQLite database,
// one row per name. Use ":memory:" as path for a throwaway database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open database: %v", ErrStore, err)
	}

	// every connection to :memory: is a new database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS repository_data (
		name TEXT PRIMARY KEY,
		data JSON NOT NULL,
		updated_at DATETIME NOT NULL
	);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: could not migrate database: %v", ErrStore, err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Store(name string, data any) error {
	if data == nil {
		return nil
	}

	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO repository_data (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, string(b), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	return nil
}

func (s *SQLiteStore) Load(name string, data any) error {
	var raw string

	err := s.db.QueryRow(`SELECT data FROM repository_data WHERE name = ?`, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s: %w", ErrLoad, name, fs.ErrNotExist)
	}

	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}

	if err := json.Unmarshal([]byte(raw), data); err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close() //nolint:wrapcheck // close the database as is
}
