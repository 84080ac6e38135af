package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/codebench-dev/backend/internal/harness"
)

// MemoryStore is an in-memory catalog used in tests and local development.
// It is populated up front and read-only afterwards.
type MemoryStore struct {
	questions map[string]Question // key: "<id>/<lowercase language>"
	testCases map[int64][]harness.TestCase
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		questions: make(map[string]Question),
		testCases: make(map[int64][]harness.TestCase),
	}
}

func (s *MemoryStore) Add(q Question, cases []harness.TestCase) {
	s.questions[memKey(q.QuestionID, q.Language)] = q
	if cases != nil {
		s.testCases[q.QuestionID] = cases
	}
}

func (s *MemoryStore) TestCases(_ context.Context, questionID int64) ([]harness.TestCase, error) {
	return s.testCases[questionID], nil
}

func (s *MemoryStore) Question(_ context.Context, questionID int64, language string) (*Question, error) {
	q, ok := s.questions[memKey(questionID, language)]
	if !ok {
		return nil, fmt.Errorf("%w: id %d, language %s", ErrNotFound, questionID, language)
	}
	q.Signature = unescapeSignature(q.Signature)
	return &q, nil
}

func (s *MemoryStore) Questions(_ context.Context, language string) ([]Question, error) {
	var qs []Question
	for _, q := range s.questions {
		if strings.EqualFold(q.Language, language) {
			q.Signature = unescapeSignature(q.Signature)
			qs = append(qs, q)
		}
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].QuestionID < qs[j].QuestionID })
	return qs, nil
}

func memKey(id int64, language string) string {
	return fmt.Sprintf("%d/%s", id, strings.ToLower(language))
}
