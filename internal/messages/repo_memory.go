package messages

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.Mutex
	rows    map[string]AnalysisPatch
	updates int

	// FailWith, when set, makes every UpdateAnalysis return this error.
	FailWith error
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		rows: make(map[string]AnalysisPatch),
	}
}

// Seed registers a message ID so an update against it affects one row.
func (r *MemoryRepo) Seed(messageID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[messageID] = AnalysisPatch{}
}

// UpdateAnalysis records the patch for a seeded message.
func (r *MemoryRepo) UpdateAnalysis(ctx context.Context, messageID string, patch AnalysisPatch, analyzedAt time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	if r.FailWith != nil {
		return 0, r.FailWith
	}
	if _, ok := r.rows[messageID]; !ok {
		return 0, nil
	}
	r.rows[messageID] = patch
	return 1, nil
}

// Updates reports how many UpdateAnalysis calls were made.
func (r *MemoryRepo) Updates() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates
}

// Stored returns the last patch applied to a message.
func (r *MemoryRepo) Stored(messageID string) (AnalysisPatch, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	patch, ok := r.rows[messageID]
	return patch, ok
}

var _ Repo = (*MemoryRepo)(nil)
