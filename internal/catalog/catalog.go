package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/codebench-dev/backend/internal/harness"
)

// ErrNotFound is returned when no question exists for the requested
// (questionId, language) pair.
var ErrNotFound = errors.New("question not found")

// Question describes one exercise in one target language. MethodName is
// the canonical entry point the generated harness calls; Signature is the
// stub shown to the user.
type Question struct {
	QuestionID  int64  `db:"question_id" json:"questionId"`
	Language    string `db:"language" json:"language"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	MethodName  string `db:"method_name" json:"methodName"`
	Signature   string `db:"signature" json:"signature"`
}

// Store is the exercise catalog. Test cases come back in their authored
// order.
type Store interface {
	TestCases(ctx context.Context, questionID int64) ([]harness.TestCase, error)
	Question(ctx context.Context, questionID int64, language string) (*Question, error)
	Questions(ctx context.Context, language string) ([]Question, error)
}

// The question bank stores signatures with literal backslash-n sequences
// so they survive flat storage; restore real newlines on the way out.
func unescapeSignature(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
