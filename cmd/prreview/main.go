package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	githubadapter "github.com/ericfisherdev/prreview/internal/adapter/driven/github"
	"github.com/ericfisherdev/prreview/internal/adapter/driven/openai"
	sqliteadapter "github.com/ericfisherdev/prreview/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/prreview/internal/application"
	"github.com/ericfisherdev/prreview/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing required env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"repo", cfg.Repo,
		"pr", cfg.PRNumber,
		"model", cfg.Model,
		"exclude", cfg.Exclude,
		"include", cfg.Include,
		"concurrency", cfg.Concurrency,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the comment history database and run migrations.
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}

	// 4. Wire adapters.
	ghClient := githubadapter.NewClient(cfg.GitHubToken)
	modelClient := openai.NewClient(cfg.OpenAIAPIKey, openai.Options{
		Model:            cfg.Model,
		Temperature:      cfg.Temperature,
		MaxTokens:        cfg.MaxTokens,
		TopP:             cfg.TopP,
		FrequencyPenalty: cfg.FrequencyPenalty,
		PresencePenalty:  cfg.PresencePenalty,
		BaseURL:          cfg.OpenAIBaseURL,
	})
	commentStore := sqliteadapter.NewCommentRepo(db)

	// 5. Run the review pipeline.
	pipeline := application.NewReviewPipeline(ghClient, modelClient, commentStore, application.PipelineOptions{
		Exclude:     cfg.Exclude,
		Include:     cfg.Include,
		Model:       cfg.Model,
		Concurrency: cfg.Concurrency,
	})

	return pipeline.Run(ctx, cfg.Repo, cfg.PRNumber)
}
