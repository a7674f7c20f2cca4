// Package store persists the job collection through the durable store,
// one whole-collection document per write.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcallaghan/tradebook/internal/job"
	"github.com/jcallaghan/tradebook/internal/storage"
)

type Store struct {
	store storage.Store
}

func New(s storage.Store) *Store {
	return &Store{store: s}
}

func (s *Store) readAll(ctx context.Context) ([]*job.Job, error) {
	return storage.ReadAll[*job.Job](ctx, s.store, storage.KeyJobs)
}

func (s *Store) writeAll(ctx context.Context, jobs []*job.Job) error {
	return storage.WriteAll(ctx, s.store, storage.KeyJobs, jobs)
}

// ListJobs returns the collection in storage order.
func (s *Store) ListJobs(ctx context.Context) ([]*job.Job, error) {
	return s.readAll(ctx)
}

func (s *Store) GetJob(ctx context.Context, id uuid.UUID) (*job.Job, error) {
	jobs, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, j := range jobs {
		if j.ID == id {
			return j, nil
		}
	}

	return nil, job.ErrNotFound
}

func (s *Store) CreateJob(ctx context.Context, j *job.Job) error {
	jobs, err := s.readAll(ctx)
	if err != nil {
		return err
	}

	for _, existing := range jobs {
		if existing.ID == j.ID {
			return fmt.Errorf("creating job %s: %w", j.ID, job.ErrDuplicateID)
		}
	}

	return s.writeAll(ctx, append(jobs, j))
}

// UpdateJob replaces the record in place, preserving collection order.
func (s *Store) UpdateJob(ctx context.Context, j *job.Job) error {
	jobs, err := s.readAll(ctx)
	if err != nil {
		return err
	}

	for i, existing := range jobs {
		if existing.ID == j.ID {
			jobs[i] = j
			return s.writeAll(ctx, jobs)
		}
	}

	return fmt.Errorf("updating job %s: %w", j.ID, job.ErrNotFound)
}

func (s *Store) DeleteJob(ctx context.Context, id uuid.UUID) error {
	jobs, err := s.readAll(ctx)
	if err != nil {
		return err
	}

	for i, existing := range jobs {
		if existing.ID == id {
			return s.writeAll(ctx, append(jobs[:i], jobs[i+1:]...))
		}
	}

	return fmt.Errorf("deleting job %s: %w", id, job.ErrNotFound)
}

// ReplaceJobs discards the prior collection entirely.
func (s *Store) ReplaceJobs(ctx context.Context, jobs []*job.Job) error {
	return s.writeAll(ctx, jobs)
}

// ClearAll wipes every collection in the durable store.
func (s *Store) ClearAll(ctx context.Context) error {
	return s.store.Clear(ctx)
}
