// Package store persists the client collection through the durable
// store.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcallaghan/tradebook/internal/client"
	"github.com/jcallaghan/tradebook/internal/storage"
)

type Store struct {
	store storage.Store
}

func New(s storage.Store) *Store {
	return &Store{store: s}
}

func (s *Store) readAll(ctx context.Context) ([]*client.Client, error) {
	return storage.ReadAll[*client.Client](ctx, s.store, storage.KeyClients)
}

func (s *Store) writeAll(ctx context.Context, clients []*client.Client) error {
	return storage.WriteAll(ctx, s.store, storage.KeyClients, clients)
}

func (s *Store) ListClients(ctx context.Context) ([]*client.Client, error) {
	return s.readAll(ctx)
}

func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	clients, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range clients {
		if c.ID == id {
			return c, nil
		}
	}

	return nil, client.ErrNotFound
}

// CreateClient appends the record, silently dropping any existing
// record with the same id first. Last write wins on colliding ids.
func (s *Store) CreateClient(ctx context.Context, c *client.Client) error {
	clients, err := s.readAll(ctx)
	if err != nil {
		return err
	}

	kept := clients[:0]

	for _, existing := range clients {
		if existing.ID != c.ID {
			kept = append(kept, existing)
		}
	}

	return s.writeAll(ctx, append(kept, c))
}

func (s *Store) UpdateClient(ctx context.Context, c *client.Client) error {
	clients, err := s.readAll(ctx)
	if err != nil {
		return err
	}

	for i, existing := range clients {
		if existing.ID == c.ID {
			clients[i] = c
			return s.writeAll(ctx, clients)
		}
	}

	return fmt.Errorf("updating client %s: %w", c.ID, client.ErrNotFound)
}

func (s *Store) DeleteClient(ctx context.Context, id uuid.UUID) error {
	clients, err := s.readAll(ctx)
	if err != nil {
		return err
	}

	for i, existing := range clients {
		if existing.ID == id {
			return s.writeAll(ctx, append(clients[:i], clients[i+1:]...))
		}
	}

	return fmt.Errorf("deleting client %s: %w", id, client.ErrNotFound)
}

func (s *Store) ReplaceClients(ctx context.Context, clients []*client.Client) error {
	return s.writeAll(ctx, clients)
}

// ClearAll wipes every collection in the durable store.
func (s *Store) ClearAll(ctx context.Context) error {
	return s.store.Clear(ctx)
}
