package kv

import (
	"context"
	"sync"

	"storefront/internal/domain"
)

type memoryRepo struct {
	mu       sync.Mutex
	profiles map[string]map[string][]byte
}

// NewMemory returns an in-process Repository. It is the injectable test
// double for the persistent store and also serves DB-less runs.
func NewMemory() Repository {
	return &memoryRepo{profiles: make(map[string]map[string][]byte)}
}

func (r *memoryRepo) Get(_ context.Context, profile, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.profiles[profile][key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (r *memoryRepo) Set(_ context.Context, profile, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bucket, ok := r.profiles[profile]
	if !ok {
		bucket = make(map[string][]byte)
		r.profiles[profile] = bucket
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	bucket[key] = stored
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, profile, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles[profile], key)
	return nil
}
