package results_test

import (
	"context"
	"testing"

	"github.com/codebench-dev/backend/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreUpsertOverwrites(t *testing.T) {
	store := results.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, results.TestResult{JobID: "abc", PassedTestCases: 1, TotalTestCases: 3, Status: "failed"}))
	require.NoError(t, store.Upsert(ctx, results.TestResult{JobID: "abc", PassedTestCases: 3, TotalTestCases: 3, Status: "success"}))

	assert.Equal(t, 1, store.Len())

	res, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, 3, res.PassedTestCases)
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	store := results.NewMemoryStore()

	res, err := store.Get(context.Background(), "missing")
	assert.Nil(t, res)
	require.ErrorIs(t, err, results.ErrNotFound)
}
