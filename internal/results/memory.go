package results

import (
	"context"
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"
)

// MemoryStore keeps results in a concurrent map. Used in tests and local
// development; the listener and the HTTP read path may touch it from
// different goroutines.
type MemoryStore struct {
	records *xsync.MapOf[string, TestResult]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: xsync.NewMapOf[string, TestResult]()}
}

func (s *MemoryStore) Upsert(_ context.Context, res TestResult) error {
	s.records.Store(res.JobID, res)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, jobID string) (*TestResult, error) {
	res, ok := s.records.Load(jobID)
	if !ok {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}
	return &res, nil
}

// Len reports the number of stored records; handy in tests.
func (s *MemoryStore) Len() int {
	return s.records.Size()
}
