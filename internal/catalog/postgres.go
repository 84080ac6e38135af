package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/codebench-dev/backend/internal/harness"
)

type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type testCaseRow struct {
	Input          string `db:"input"`
	ExpectedOutput string `db:"expected_output"`
	ExpectedType   string `db:"expected_type"`
}

func (s *PostgresStore) TestCases(ctx context.Context, questionID int64) ([]harness.TestCase, error) {
	var rows []testCaseRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT input, expected_output, expected_type
		 FROM test_cases
		 WHERE question_id = $1
		 ORDER BY id`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query test cases for question %d: %w", questionID, err)
	}

	cases := make([]harness.TestCase, 0, len(rows))
	for _, r := range rows {
		cases = append(cases, harness.TestCase{
			Input:          r.Input,
			ExpectedOutput: r.ExpectedOutput,
			ExpectedType:   r.ExpectedType,
		})
	}
	return cases, nil
}

func (s *PostgresStore) Question(ctx context.Context, questionID int64, language string) (*Question, error) {
	var q Question
	err := s.db.GetContext(ctx, &q,
		`SELECT question_id, language, title, description, method_name, signature
		 FROM questions
		 WHERE question_id = $1 AND lower(language) = lower($2)`, questionID, language)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d, language %s", ErrNotFound, questionID, language)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query question %d: %w", questionID, err)
	}
	q.Signature = unescapeSignature(q.Signature)
	return &q, nil
}

func (s *PostgresStore) Questions(ctx context.Context, language string) ([]Question, error) {
	var qs []Question
	err := s.db.SelectContext(ctx, &qs,
		`SELECT question_id, language, title, description, method_name, signature
		 FROM questions
		 WHERE lower(language) = lower($1)
		 ORDER BY question_id`, language)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions for %s: %w", language, err)
	}
	for i := range qs {
		qs[i].Signature = unescapeSignature(qs[i].Signature)
	}
	return qs, nil
}
