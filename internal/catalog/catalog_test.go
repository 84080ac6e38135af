package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/codebench-dev/backend/internal/catalog"
	"github.com/codebench-dev/backend/internal/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreQuestionLookup(t *testing.T) {
	store := catalog.NewMemoryStore()
	store.Add(catalog.Question{
		QuestionID: 1,
		Language:   "Java",
		Title:      "Add Two Numbers",
		MethodName: "add",
		Signature:  `public static int add(int a, int b) {\n}`,
	}, []harness.TestCase{
		{Input: "1, 2", ExpectedOutput: "3", ExpectedType: "int"},
	})

	q, err := store.Question(context.Background(), 1, "JAVA")
	require.NoError(t, err)
	assert.Equal(t, "add", q.MethodName)
	// stored "\n" sequences come back as real newlines
	assert.Equal(t, "public static int add(int a, int b) {\n}", q.Signature)

	_, err = store.Question(context.Background(), 1, "python")
	require.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = store.Question(context.Background(), 42, "java")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestMemoryStoreQuestionsByLanguage(t *testing.T) {
	store := catalog.NewMemoryStore()
	store.Add(catalog.Question{QuestionID: 2, Language: "Python", MethodName: "f"}, nil)
	store.Add(catalog.Question{QuestionID: 1, Language: "Python", MethodName: "g"}, nil)
	store.Add(catalog.Question{QuestionID: 1, Language: "Java", MethodName: "g"}, nil)

	qs, err := store.Questions(context.Background(), "python")
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, int64(1), qs[0].QuestionID)
	assert.Equal(t, int64(2), qs[1].QuestionID)
}

func TestParseBank(t *testing.T) {
	bank := `
[[questions]]
question_id = 1
language = "Java"
title = "Add Two Numbers"
description = "Return the sum of two integers."
method_name = "add"
signature = 'public static int add(int a, int b) {\n    // your code here\n}'

[[questions.tests]]
input = "1, 2"
expected = "3"
type = "int"

[[questions.tests]]
input = "-1, 1"
expected = "0"
type = "int"
`
	path := filepath.Join(t.TempDir(), "questions.toml")
	require.NoError(t, os.WriteFile(path, []byte(bank), 0644))

	entries, err := catalog.ParseBank(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	q := entries[0].Question
	assert.Equal(t, int64(1), q.QuestionID)
	assert.Equal(t, "Java", q.Language)
	assert.Equal(t, "add", q.MethodName)

	tests := entries[0].Tests
	require.Len(t, tests, 2)
	assert.Equal(t, "1, 2", tests[0].Input)
	assert.Equal(t, "3", tests[0].ExpectedOutput)
	assert.Equal(t, "int", tests[0].ExpectedType)
}

func TestParseBankRejectsIncompleteEntry(t *testing.T) {
	bank := `
[[questions]]
title = "No id or language"
`
	path := filepath.Join(t.TempDir(), "questions.toml")
	require.NoError(t, os.WriteFile(path, []byte(bank), 0644))

	_, err := catalog.ParseBank(path)
	assert.Error(t, err)
}
