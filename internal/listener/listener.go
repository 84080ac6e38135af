package listener

import (
	"context"
	"log/slog"
	"time"

	"github.com/codebench-dev/backend/internal/queue"
	"github.com/codebench-dev/backend/internal/results"
)

const defaultInterval = 5 * time.Second

// Listener ingests execution reports from the inbound response channel on
// a fixed interval and persists them as test results. Messages in one
// batch are processed sequentially; each one is persisted before it is
// acknowledged, so a crash in between causes at most a redelivery that the
// upsert absorbs.
type Listener struct {
	source   queue.ResponseSource
	store    results.Store
	interval time.Duration
	logger   *slog.Logger
}

func New(source queue.ResponseSource, store results.Store, logger *slog.Logger) *Listener {
	return &Listener{
		source:   source,
		store:    store,
		interval: defaultInterval,
		logger:   logger,
	}
}

// Run polls until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		l.Poll(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Poll runs one receive/process/acknowledge cycle. A channel-level receive
// failure aborts the cycle and leaves retrying to the next tick. A
// malformed message is logged, skipped and left unacknowledged so the
// channel's own retry policy can redeliver or dead-letter it; it never
// aborts the rest of the batch.
func (l *Listener) Poll(ctx context.Context) {
	messages, err := l.source.Receive(ctx)
	if err != nil {
		l.logger.Error("failed to receive response messages", "error", err)
		return
	}

	for _, msg := range messages {
		res, err := parseResponse(msg.Body)
		if err != nil {
			l.logger.Error("skipping malformed response message", "error", err)
			continue
		}

		if err := l.store.Upsert(ctx, res); err != nil {
			l.logger.Error("failed to persist test result", "jobId", res.JobID, "error", err)
			continue
		}

		if err := l.source.Delete(ctx, msg.Handle); err != nil {
			l.logger.Error("failed to acknowledge response message", "jobId", res.JobID, "error", err)
			continue
		}

		l.logger.Info("stored test result",
			"jobId", res.JobID, "status", res.Status,
			"passed", res.PassedTestCases, "total", res.TotalTestCases)
	}
}
