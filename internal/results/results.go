package results

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no result has been ingested for a job yet.
// Distinct from a stored record with status "error", which is a legitimate
// executed-but-failed outcome.
var ErrNotFound = errors.New("test result not found")

// TestResult is the durable outcome of one dispatched job, keyed by job
// id. A second message for the same job overwrites the record (idempotent
// upsert); there is no in-place mutation beyond that.
type TestResult struct {
	JobID           string    `db:"job_id" json:"jobId"`
	ExecutionTimeMs int64     `db:"execution_time" json:"executionTimeMs"`
	PassedTestCases int       `db:"passed_testcases" json:"passedTestCases"`
	TotalTestCases  int       `db:"total_testcases" json:"totalTestCases"`
	Status          string    `db:"status" json:"status"`
	Message         *string   `db:"message" json:"message,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type Store interface {
	// Upsert persists the record, replacing any previous record for the
	// same job id.
	Upsert(ctx context.Context, res TestResult) error
	Get(ctx context.Context, jobID string) (*TestResult, error)
}
