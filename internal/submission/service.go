package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/codebench-dev/backend/internal/artifact"
	"github.com/codebench-dev/backend/internal/catalog"
	"github.com/codebench-dev/backend/internal/harness"
	"github.com/codebench-dev/backend/internal/queue"
	"github.com/codebench-dev/backend/internal/skeleton"
)

var (
	// ErrTemplateLoad means the skeleton template for a registered
	// language could not be loaded; an infrastructure misconfiguration.
	ErrTemplateLoad = errors.New("failed to load skeleton template")

	// ErrDispatch covers artifact storage and queue publish failures.
	// Callers surface it generically without internal detail.
	ErrDispatch = errors.New("failed to store or dispatch submission")
)

// TemplateStore loads the per-language program skeleton.
type TemplateStore interface {
	Load(language string) (string, error)
}

// Service assembles the final program from a skeleton, the user's code and
// generated verification code, stores it and dispatches a job descriptor.
type Service struct {
	registry  *harness.Registry
	templates TemplateStore
	catalog   catalog.Store
	artifacts artifact.Store
	publisher queue.Publisher
	logger    *slog.Logger
}

func NewService(
	registry *harness.Registry,
	templates TemplateStore,
	catalogStore catalog.Store,
	artifacts artifact.Store,
	publisher queue.Publisher,
	logger *slog.Logger,
) *Service {
	return &Service{
		registry:  registry,
		templates: templates,
		catalog:   catalogStore,
		artifacts: artifacts,
		publisher: publisher,
		logger:    logger,
	}
}

// Submit runs the whole submission pipeline and returns the job id. The
// call is fire-and-forget from the caller's perspective: it does not wait
// for execution, only for the artifact write and the queue publish.
func (s *Service) Submit(ctx context.Context, code string, questionID int64, language string) (string, error) {
	jobID := uuid.NewString()

	generator, err := s.registry.Resolve(language)
	if err != nil {
		return "", err
	}

	skeletonCode, err := s.templates.Load(language)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}

	testCases, err := s.catalog.TestCases(ctx, questionID)
	if err != nil {
		return "", fmt.Errorf("failed to load test cases for question %d: %w", questionID, err)
	}

	question, err := s.catalog.Question(ctx, questionID, language)
	if err != nil {
		return "", err
	}

	testCode := generator.Generate(testCases, question.MethodName)
	finalCode := skeleton.Render(skeletonCode, code, testCode)

	// Java insists on the class name matching the file name.
	fileName := "main" + generator.FileExtension()
	if strings.EqualFold(language, "java") {
		fileName = "Main" + generator.FileExtension()
	}
	s3Key := "submissions/" + jobID + "/" + fileName

	if err := s.artifacts.Put(ctx, s3Key, []byte(finalCode), "text/plain"); err != nil {
		s.logger.Error("artifact upload failed", "jobId", jobID, "s3Key", s3Key, "error", err)
		return "", fmt.Errorf("%w: %v", ErrDispatch, err)
	}

	err = s.publisher.Publish(ctx, queue.JobMessage{
		JobID:    jobID,
		S3Key:    s3Key,
		Language: language,
	})
	if err != nil {
		// a stray stored artifact is acceptable garbage; the call still fails
		s.logger.Error("job publish failed", "jobId", jobID, "error", err)
		return "", fmt.Errorf("%w: %v", ErrDispatch, err)
	}

	s.logger.Info("submission dispatched",
		"jobId", jobID, "questionId", questionID, "language", language, "s3Key", s3Key)
	return jobID, nil
}
