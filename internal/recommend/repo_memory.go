package recommend

import (
	"context"
	"sync"
)

// MemoryRepo keeps recommendation history in memory for dev and tests.
type MemoryRepo struct {
	mu      sync.Mutex
	records []HistoryRecord
}

// NewMemoryRepo constructs an empty in-memory history repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Save(ctx context.Context, record HistoryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// Records returns a copy of everything saved so far.
func (r *MemoryRepo) Records() []HistoryRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]HistoryRecord, len(r.records))
	copy(out, r.records)
	return out
}

var _ HistoryRepo = (*MemoryRepo)(nil)
