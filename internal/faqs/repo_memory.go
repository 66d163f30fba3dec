package faqs

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]FAQ // propertyID -> faqs
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]FAQ),
	}
}

// Add stores a FAQ pair.
func (r *MemoryRepo) Add(faq FAQ) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[faq.PropertyID] = append(r.data[faq.PropertyID], faq)
}

// ListActiveByProperty returns active pairs for a property in insertion order.
func (r *MemoryRepo) ListActiveByProperty(ctx context.Context, propertyID string) ([]FAQ, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []FAQ
	for _, f := range r.data[propertyID] {
		if f.Active {
			out = append(out, f)
		}
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
