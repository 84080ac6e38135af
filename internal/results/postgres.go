package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Upsert(ctx context.Context, res TestResult) error {
	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO test_results
		   (job_id, execution_time, passed_testcases, total_testcases, status, message, created_at)
		 VALUES
		   (:job_id, :execution_time, :passed_testcases, :total_testcases, :status, :message, :created_at)
		 ON CONFLICT (job_id) DO UPDATE SET
		   execution_time   = EXCLUDED.execution_time,
		   passed_testcases = EXCLUDED.passed_testcases,
		   total_testcases  = EXCLUDED.total_testcases,
		   status           = EXCLUDED.status,
		   message          = EXCLUDED.message,
		   created_at       = EXCLUDED.created_at`, res)
	if err != nil {
		return fmt.Errorf("failed to upsert test result for job %s: %w", res.JobID, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, jobID string) (*TestResult, error) {
	var res TestResult
	err := s.db.GetContext(ctx, &res,
		`SELECT job_id, execution_time, passed_testcases, total_testcases, status, message, created_at
		 FROM test_results
		 WHERE job_id = $1`, jobID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query test result for job %s: %w", jobID, err)
	}
	return &res, nil
}
