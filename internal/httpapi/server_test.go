package httpapi_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebench-dev/backend/internal/artifact"
	"github.com/codebench-dev/backend/internal/catalog"
	"github.com/codebench-dev/backend/internal/harness"
	"github.com/codebench-dev/backend/internal/httpapi"
	"github.com/codebench-dev/backend/internal/queue"
	"github.com/codebench-dev/backend/internal/results"
	"github.com/codebench-dev/backend/internal/submission"
)

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, queue.JobMessage) error { return nil }

type staticTemplates struct{}

func (staticTemplates) Load(string) (string, error) {
	return "<<<SIGNATURE_PLACEHOLDER>>>\n<<<TEST_CASES_PLACEHOLDER>>>\n", nil
}

func newTestServer() (*httpapi.Server, *results.MemoryStore) {
	cat := catalog.NewMemoryStore()
	cat.Add(catalog.Question{
		QuestionID: 1,
		Language:   "Java",
		Title:      "Add Two Numbers",
		MethodName: "add",
		Signature:  `public static int add(int a, int b) {\n}`,
	}, []harness.TestCase{
		{Input: "1, 2", ExpectedOutput: "3", ExpectedType: "int"},
	})

	registry := harness.NewRegistry(harness.NewJavaGenerator(), harness.NewPythonGenerator())
	logger := slog.New(slog.DiscardHandler)
	subs := submission.NewService(registry, staticTemplates{}, cat, artifact.NewMemoryStore(), noopPublisher{}, logger)

	resultStore := results.NewMemoryStore()
	return httpapi.NewServer(subs, cat, resultStore, logger), resultStore
}

func TestSubmitEndpoint(t *testing.T) {
	srv, _ := newTestServer()

	body := `{"code":"public static int add(int a, int b){return a+b;}","questionId":1,"language":"Java"}`
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp httpapi.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.JobID)
}

func TestSubmitEndpointGenericFailure(t *testing.T) {
	srv, _ := newTestServer()

	// unsupported language surfaces as the generic submission error
	body := `{"code":"x","questionId":1,"language":"cobol"}`
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error processing submission")
	assert.NotContains(t, rec.Body.String(), "cobol", "internal detail must not leak")
}

func TestSubmitEndpointBadBody(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetResultEndpoint(t *testing.T) {
	srv, store := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/results/missing-job", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	msg := "2 of 3 passed"
	require.NoError(t, store.Upsert(context.Background(), results.TestResult{
		JobID:           "job-1",
		ExecutionTimeMs: 42,
		PassedTestCases: 2,
		TotalTestCases:  3,
		Status:          "failed",
		Message:         &msg,
	}))

	req = httptest.NewRequest(http.MethodGet, "/api/results/job-1", nil)
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res results.TestResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "failed", res.Status)
	assert.Equal(t, 2, res.PassedTestCases)
}

func TestQuestionEndpoints(t *testing.T) {
	srv, _ := newTestServer()

	// language defaults to java
	req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var questions []catalog.Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &questions))
	require.Len(t, questions, 1)
	assert.Equal(t, "Add Two Numbers", questions[0].Title)
	assert.Contains(t, questions[0].Signature, "\n", "signature newlines are unescaped")

	req = httptest.NewRequest(http.MethodGet, "/api/questions/1?language=Java", nil)
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/questions/1?language=python", nil)
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
