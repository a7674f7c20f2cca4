package state

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jcallaghan/tradebook/internal/client"
)

// ClientService is the persistence surface the clients controller
// drives.
type ClientService interface {
	List(ctx context.Context) ([]*client.Client, error)
	Create(ctx context.Context, params client.CreateParams) (*client.Client, error)
	Upsert(ctx context.Context, c *client.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Clients mirrors the persisted client collection.
type Clients struct {
	svc ClientService

	mu       sync.RWMutex
	entities []*client.Client
	loading  bool
	err      string
}

func NewClients(svc ClientService) *Clients {
	return &Clients{svc: svc}
}

func (s *Clients) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Clients) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
}

func (s *Clients) Fetch(ctx context.Context) error {
	s.begin()

	clients, err := s.svc.List(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.entities = clients
	s.loading = false
	s.mu.Unlock()

	return nil
}

func (s *Clients) Create(ctx context.Context, params client.CreateParams) (*client.Client, error) {
	s.begin()

	c, err := s.svc.Create(ctx, params)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	s.mu.Lock()
	s.entities = append(s.entities, c)
	s.loading = false
	s.mu.Unlock()

	return c, nil
}

// Modify upserts the client and reconciles the cache.
func (s *Clients) Modify(ctx context.Context, c *client.Client) error {
	s.begin()

	if err := s.svc.Upsert(ctx, c); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.put(c)
	s.loading = false
	s.mu.Unlock()

	return nil
}

func (s *Clients) Remove(ctx context.Context, id uuid.UUID) error {
	s.begin()

	if err := s.svc.Delete(ctx, id); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.remove(id)
	s.loading = false
	s.mu.Unlock()

	return nil
}

// PutLocal replaces or appends the client in the cache only.
func (s *Clients) PutLocal(c *client.Client) {
	s.mu.Lock()
	s.put(c)
	s.mu.Unlock()
}

// RemoveLocal drops the client from the cache only.
func (s *Clients) RemoveLocal(id uuid.UUID) {
	s.mu.Lock()
	s.remove(id)
	s.mu.Unlock()
}

func (s *Clients) put(c *client.Client) {
	for i, existing := range s.entities {
		if existing.ID == c.ID {
			s.entities[i] = c
			return
		}
	}

	s.entities = append(s.entities, c)
}

func (s *Clients) remove(id uuid.UUID) {
	for i, existing := range s.entities {
		if existing.ID == id {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return
		}
	}
}

func (s *Clients) Entities() []*client.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*client.Client, len(s.entities))
	copy(out, s.entities)

	return out
}

func (s *Clients) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

func (s *Clients) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.err
}
