package records

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/multierr"
)

// Repository supplies a fresh snapshot of records for each pipeline invocation.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// MemoryRepository is an in-memory Repository. List always returns a copy, so
// callers can never alter the stored collection.
type MemoryRepository[T any] struct {
	mu      sync.RWMutex
	records []T
}

// NewMemoryRepository stores a copy of records.
func NewMemoryRepository[T any](records []T) *MemoryRepository[T] {
	return &MemoryRepository[T]{records: slices.Clone(records)}
}

func (r *MemoryRepository[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Replace swaps the stored collection for a copy of records.
func (r *MemoryRepository[T]) Replace(records []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = slices.Clone(records)
}

// ValidateUniqueIDs reports every id that appears more than once, plus empty ids.
func ValidateUniqueIDs[T any](records []T, id func(T) string) error {
	var err error
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		key := id(rec)
		if key == "" {
			err = multierr.Append(err, fmt.Errorf("record %d: empty id", i))
			continue
		}
		if first, ok := seen[key]; ok {
			err = multierr.Append(err, fmt.Errorf("record %d: duplicate id %q (first at %d)", i, key, first))
			continue
		}
		seen[key] = i
	}
	return err
}
