package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/codebench-dev/backend/internal/harness"
)

// BankEntry is one question plus its test cases as read from a TOML
// question-bank file.
type BankEntry struct {
	Question Question
	Tests    []harness.TestCase
}

type bankTest struct {
	Input    string `toml:"input"`
	Expected string `toml:"expected"`
	Type     string `toml:"type"`
}

type bankQuestion struct {
	QuestionID  int64      `toml:"question_id"`
	Language    string     `toml:"language"`
	Title       string     `toml:"title"`
	Description string     `toml:"description"`
	MethodName  string     `toml:"method_name"`
	Signature   string     `toml:"signature"`
	Tests       []bankTest `toml:"tests"`
}

type bankRoot struct {
	Questions []bankQuestion `toml:"questions"`
}

// ParseBank reads a TOML question bank and converts it to catalog entries.
func ParseBank(path string) ([]BankEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}
	var root bankRoot
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse question bank TOML: %w", err)
	}

	entries := make([]BankEntry, 0, len(root.Questions))
	for _, q := range root.Questions {
		if q.QuestionID == 0 || q.Language == "" || q.MethodName == "" {
			return nil, fmt.Errorf("question bank entry %q is missing question_id, language or method_name", q.Title)
		}
		tests := make([]harness.TestCase, 0, len(q.Tests))
		for _, t := range q.Tests {
			tests = append(tests, harness.TestCase{
				Input:          t.Input,
				ExpectedOutput: t.Expected,
				ExpectedType:   t.Type,
			})
		}
		entries = append(entries, BankEntry{
			Question: Question{
				QuestionID:  q.QuestionID,
				Language:    q.Language,
				Title:       q.Title,
				Description: q.Description,
				MethodName:  q.MethodName,
				Signature:   q.Signature,
			},
			Tests: tests,
		})
	}
	return entries, nil
}
