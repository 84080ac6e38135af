package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/nats-io/nats.go"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/codebench-dev/backend/internal/artifact"
	"github.com/codebench-dev/backend/internal/catalog"
	"github.com/codebench-dev/backend/internal/environment"
	"github.com/codebench-dev/backend/internal/harness"
	"github.com/codebench-dev/backend/internal/httpapi"
	"github.com/codebench-dev/backend/internal/listener"
	"github.com/codebench-dev/backend/internal/queue"
	"github.com/codebench-dev/backend/internal/results"
	"github.com/codebench-dev/backend/internal/skeleton"
	"github.com/codebench-dev/backend/internal/submission"
)

func main() {
	cmd := &cli.Command{
		Name:  "server",
		Usage: "code submission and result ingestion service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: ":8080",
				Usage: "HTTP listen address (overridden by HTTP_ADDR)",
			},
		},
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{TimeFormat: time.Kitchen}))
	slog.SetDefault(logger)

	env := environment.ReadEnvConfig()
	addr := cmd.String("addr")
	if env.HTTPAddr != "" {
		addr = env.HTTPAddr
	}

	db, err := sqlx.Connect("postgres", env.SqlxConnString)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	registry := harness.NewRegistry(
		harness.NewJavaGenerator(),
		harness.NewPythonGenerator(),
	)
	templates := skeleton.NewDiskStore(env.TemplatesDir)
	catalogStore := catalog.NewPostgresStore(db)
	resultStore := results.NewPostgresStore(db)

	publisher, source, err := buildTransport(ctx, env)
	if err != nil {
		return err
	}

	artifacts, err := artifact.NewS3Store(ctx, env.AwsRegion, env.S3Bucket, env.CompressArtifacts)
	if err != nil {
		return fmt.Errorf("failed to set up artifact store: %w", err)
	}

	submissions := submission.NewService(registry, templates, catalogStore, artifacts, publisher, logger)
	resultListener := listener.New(source, resultStore, logger)
	api := httpapi.NewServer(submissions, catalogStore, resultStore, logger)

	httpServer := &http.Server{Addr: addr, Handler: api.Router()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return resultListener.Run(ctx)
	})
	g.Go(func() error {
		logger.Info("http server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func buildTransport(ctx context.Context, env *environment.EnvConfig) (queue.Publisher, queue.ResponseSource, error) {
	switch env.QueueTransport {
	case "nats":
		nc, err := nats.Connect(env.NatsURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		publisher := queue.NewNatsPublisher(nc, env.NatsRequestSubject)
		source, err := queue.NewNatsResponseSource(nc, env.NatsResponseSubject)
		if err != nil {
			return nil, nil, err
		}
		return publisher, source, nil
	case "sqs":
		client, err := queue.NewSqsClient(ctx, env.AwsRegion)
		if err != nil {
			return nil, nil, err
		}
		publisher, err := queue.NewSqsPublisher(ctx, client, env.RequestQueueName)
		if err != nil {
			return nil, nil, err
		}
		return publisher, queue.NewSqsResponseSource(client, env.ResponseQueueURL), nil
	default:
		return nil, nil, fmt.Errorf("unknown queue transport: %s", env.QueueTransport)
	}
}
