// Package storage defines the durable store contract: whole-collection
// reads and writes of JSON documents keyed by collection name.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection keys used by the repositories. Clear wipes the whole
// namespace, so anything else stored alongside these goes too.
const (
	KeyJobs     = "jobs"
	KeyClients  = "clients"
	KeySettings = "settings"
)

// Store persists one opaque JSON document per key. Write fully replaces
// the document or fails leaving the previous value intact; Read of a
// missing key returns nil data and no error.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Clear(ctx context.Context) error
}

// ReadAll decodes the collection stored under key. A missing or corrupt
// document yields an empty collection rather than an error, so callers
// always start from a usable value.
func ReadAll[T any](ctx context.Context, s Store, key string) ([]T, error) {
	data, err := s.Read(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}

	if len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, nil
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

// WriteAll replaces the collection stored under key.
func WriteAll[T any](ctx context.Context, s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	if err := s.Write(ctx, key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	return nil
}
