// Package state holds the in-memory mirrors of the persisted
// collections. Each controller exposes two action families: persisted
// intents that go through a service and reconcile the cache from the
// result, and Local variants that mutate only the cache. Mixing the two
// for the same entity risks cache/storage divergence, so callers pick
// one family per flow.
package state

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jcallaghan/tradebook/internal/job"
)

// Filter narrows the visible job list. It only affects selectors, never
// the cached collection itself.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// JobService is the persistence surface the jobs controller drives.
type JobService interface {
	List(ctx context.Context) ([]*job.Job, error)
	Create(ctx context.Context, params job.CreateParams) (*job.Job, error)
	Upsert(ctx context.Context, j *job.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Jobs mirrors the persisted job collection.
type Jobs struct {
	svc JobService

	mu       sync.RWMutex
	entities []*job.Job
	loading  bool
	err      string
	filter   Filter
}

func NewJobs(svc JobService) *Jobs {
	return &Jobs{svc: svc, filter: FilterAll}
}

func (s *Jobs) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

// fail records the failure and leaves the cached entities untouched.
func (s *Jobs) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
}

// Fetch reloads the cache from storage.
func (s *Jobs) Fetch(ctx context.Context) error {
	s.begin()

	jobs, err := s.svc.List(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.entities = jobs
	s.loading = false
	s.mu.Unlock()

	return nil
}

// Create persists a new job and appends it to the cache.
func (s *Jobs) Create(ctx context.Context, params job.CreateParams) (*job.Job, error) {
	s.begin()

	j, err := s.svc.Create(ctx, params)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	s.mu.Lock()
	s.entities = append(s.entities, j)
	s.loading = false
	s.mu.Unlock()

	return j, nil
}

// Modify upserts the job: records with unknown persistence history
// succeed either way. The cache entry is replaced, or appended when the
// job was never cached.
func (s *Jobs) Modify(ctx context.Context, j *job.Job) error {
	s.begin()

	if err := s.svc.Upsert(ctx, j); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.put(j)
	s.loading = false
	s.mu.Unlock()

	return nil
}

// Remove deletes the job from storage and then from the cache.
func (s *Jobs) Remove(ctx context.Context, id uuid.UUID) error {
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

// PutLocal replaces or appends the job in the cache only. Storage and
// loading/error state are untouched.
func (s *Jobs) PutLocal(j *job.Job) {
	s.mu.Lock()
	s.put(j)
	s.mu.Unlock()
}

// RemoveLocal drops the job from the cache only.
func (s *Jobs) RemoveLocal(id uuid.UUID) {
	s.mu.Lock()
	s.remove(id)
	s.mu.Unlock()
}

func (s *Jobs) put(j *job.Job) {
	for i, existing := range s.entities {
		if existing.ID == j.ID {
			s.entities[i] = j
			return
		}
	}

	s.entities = append(s.entities, j)
}

func (s *Jobs) remove(id uuid.UUID) {
	for i, existing := range s.entities {
		if existing.ID == id {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return
		}
	}
}

func (s *Jobs) SetFilter(f Filter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
}

func (s *Jobs) Filter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter
}

// Entities returns a copy of the cached collection.
func (s *Jobs) Entities() []*job.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*job.Job, len(s.entities))
	copy(out, s.entities)

	return out
}

func (s *Jobs) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// Err returns the last recorded failure message, empty when the last
// action succeeded.
func (s *Jobs) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.err
}

func active(status job.Status) bool {
	switch status {
	case job.StatusQuoted, job.StatusAccepted, job.StatusInProgress:
		return true
	default:
		return false
	}
}

// Visible applies the current filter. Active covers Quoted, Accepted
// and In-Progress; completed covers Completed and Cancelled.
func (s *Jobs) Visible() []*job.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.filter == FilterAll {
		out := make([]*job.Job, len(s.entities))
		copy(out, s.entities)

		return out
	}

	var out []*job.Job

	for _, j := range s.entities {
		if (s.filter == FilterActive) == active(j.Status) {
			out = append(out, j)
		}
	}

	return out
}

// TotalQuoted sums the quote of every cached job.
func (s *Jobs) TotalQuoted() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, j := range s.entities {
		total += j.Quote
	}

	return total
}

func (s *Jobs) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0

	for _, j := range s.entities {
		if active(j.Status) {
			count++
		}
	}

	return count
}

func (s *Jobs) CompletedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0

	for _, j := range s.entities {
		if !active(j.Status) {
			count++
		}
	}

	return count
}
