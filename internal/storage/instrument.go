package storage

import (
	"context"
	"time"

	"github.com/jcallaghan/tradebook/internal/metrics"
)

type instrumented struct {
	next Store
	m    *metrics.Metrics
}

// WithMetrics wraps a store so every operation is counted and timed.
func WithMetrics(next Store, m *metrics.Metrics) Store {
	if m == nil {
		return next
	}

	return &instrumented{next: next, m: m}
}

func (s *instrumented) Read(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	data, err := s.next.Read(ctx, key)
	s.m.ObserveStoreOp("read", time.Since(start), err)

	return data, err
}

func (s *instrumented) Write(ctx context.Context, key string, data []byte) error {
	start := time.Now()
	err := s.next.Write(ctx, key, data)
	s.m.ObserveStoreOp("write", time.Since(start), err)

	return err
}

func (s *instrumented) Clear(ctx context.Context) error {
	start := time.Now()
	err := s.next.Clear(ctx)
	s.m.ObserveStoreOp("clear", time.Since(start), err)

	return err
}
