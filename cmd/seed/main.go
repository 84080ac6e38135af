// Command seed loads a TOML question bank into the postgres catalog.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/urfave/cli/v3"

	"github.com/codebench-dev/backend/internal/catalog"
	"github.com/codebench-dev/backend/internal/environment"
)

func main() {
	cmd := &cli.Command{
		Name:  "seed",
		Usage: "load a TOML question bank into the catalog database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "bank",
				Value: "data/questions.toml",
				Usage: "path to the question bank file",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	entries, err := catalog.ParseBank(cmd.String("bank"))
	if err != nil {
		return err
	}

	env := environment.ReadEnvConfig()
	db, err := sqlx.Connect("postgres", env.SqlxConnString)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range entries {
		q := entry.Question
		_, err := tx.ExecContext(ctx,
			`INSERT INTO questions (question_id, language, title, description, method_name, signature)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (question_id, language) DO UPDATE SET
			   title = EXCLUDED.title,
			   description = EXCLUDED.description,
			   method_name = EXCLUDED.method_name,
			   signature = EXCLUDED.signature`,
			q.QuestionID, q.Language, q.Title, q.Description, q.MethodName, q.Signature)
		if err != nil {
			return fmt.Errorf("failed to upsert question %d (%s): %w", q.QuestionID, q.Language, err)
		}

		// test cases are language-agnostic in input text but authored per
		// question; replace the whole set on reseed
		if _, err := tx.ExecContext(ctx, `DELETE FROM test_cases WHERE question_id = $1`, q.QuestionID); err != nil {
			return fmt.Errorf("failed to clear test cases for question %d: %w", q.QuestionID, err)
		}
		for _, tc := range entry.Tests {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO test_cases (question_id, input, expected_output, expected_type)
				 VALUES ($1, $2, $3, $4)`,
				q.QuestionID, tc.Input, tc.ExpectedOutput, tc.ExpectedType)
			if err != nil {
				return fmt.Errorf("failed to insert test case for question %d: %w", q.QuestionID, err)
			}
		}

		color.Green("seeded question %d (%s): %s, %d test cases",
			q.QuestionID, q.Language, q.Title, len(entry.Tests))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	color.Cyan("done, %d questions seeded", len(entries))
	return nil
}
