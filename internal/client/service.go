package client

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	ListClients(ctx context.Context) ([]*Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*Client, error)
	CreateClient(ctx context.Context, c *Client) error
	UpdateClient(ctx context.Context, c *Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
	ReplaceClients(ctx context.Context, clients []*Client) error
	ClearAll(ctx context.Context) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	FullName     string
	Address      string
	PhoneNumber  string
	EmailAddress string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Client, error) {
	c := &Client{
		ID:           uuid.New(),
		FullName:     params.FullName,
		Address:      params.Address,
		PhoneNumber:  params.PhoneNumber,
		EmailAddress: params.EmailAddress,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetClient(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Client, error) {
	return s.repo.ListClients(ctx)
}

// Update replaces the stored record. CreatedAt is immutable once set:
// the stored value wins over whatever the caller sends.
func (s *Service) Update(ctx context.Context, c *Client) error {
	existing, err := s.repo.GetClient(ctx, c.ID)
	if err != nil {
		return err
	}

	c.CreatedAt = existing.CreatedAt

	return s.repo.UpdateClient(ctx, c)
}

// Upsert updates the record, creating it when it was never persisted.
func (s *Service) Upsert(ctx context.Context, c *Client) error {
	err := s.Update(ctx, c)
	if err == nil {
		return nil
	}

	if !errors.Is(err, ErrNotFound) {
		return err
	}

	return s.repo.CreateClient(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteClient(ctx, id)
}

func (s *Service) ReplaceAll(ctx context.Context, clients []*Client) error {
	return s.repo.ReplaceClients(ctx, clients)
}

// ClearAll wipes every collection in the durable store, not just
// clients. Irreversible.
func (s *Service) ClearAll(ctx context.Context) error {
	return s.repo.ClearAll(ctx)
}
