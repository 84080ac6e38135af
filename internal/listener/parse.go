package listener

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/codebench-dev/backend/internal/results"
)

// The response channel carries a doubly encoded payload: the outer
// envelope holds the inner report as a JSON string. That quirk is part of
// the wire contract with the execution environment and is confined to this
// file; the rest of the listener sees a flat TestResult.
type envelope struct {
	JobID  string `json:"jobId"`
	Result string `json:"result"`
}

type innerReport struct {
	ExecutionTimeMs int64 `json:"executionTimeMs"`
	Result          struct {
		Passed  int     `json:"passed"`
		Total   int     `json:"total"`
		Status  string  `json:"status"`
		Message *string `json:"message"`
	} `json:"result"`
}

// parseResponse decodes one raw message body. Missing fields fail soft:
// counts default to zero and status to "error", so a thin-but-parseable
// envelope still yields a visible record instead of vanishing.
func parseResponse(body string) (results.TestResult, error) {
	var env envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return results.TestResult{}, fmt.Errorf("failed to parse response envelope: %w", err)
	}
	if env.JobID == "" {
		env.JobID = "unknown"
	}

	raw := env.Result
	if raw == "" {
		raw = "{}"
	}

	inner := innerReport{}
	inner.Result.Status = "error"
	if err := json.Unmarshal([]byte(raw), &inner); err != nil {
		return results.TestResult{}, fmt.Errorf("failed to parse nested result payload: %w", err)
	}

	return results.TestResult{
		JobID:           env.JobID,
		ExecutionTimeMs: inner.ExecutionTimeMs,
		PassedTestCases: inner.Result.Passed,
		TotalTestCases:  inner.Result.Total,
		Status:          inner.Result.Status,
		Message:         inner.Result.Message,
		CreatedAt:       time.Now(),
	}, nil
}
