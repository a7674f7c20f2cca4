// Package postgres implements the storage.Store contract on a Postgres
// table of jsonb documents, one row per collection key.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the collections table. Safe to call on every start.
func (s *Store) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			key  text PRIMARY KEY,
			data jsonb NOT NULL
		)
	`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating collections table: %w", err)
	}

	return nil
}

func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	var data []byte

	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE key = $1`, key,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading %s: %w", key, err)
	}

	return data, nil
}

func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO collections (key, data) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data
	`

	if _, err := s.db.ExecContext(ctx, query, key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	return nil
}

// Clear drops every stored collection, including keys written by other
// users of the table.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections`); err != nil {
		return fmt.Errorf("clearing collections: %w", err)
	}

	return nil
}
