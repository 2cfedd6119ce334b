// Package main provides newsctl, an operator CLI that queries the article
// index through the same gateway the API uses.
//
// Usage:
//
//	newsctl [--config FILE] [--output table|json] list [--page N] [--limit N]
//	newsctl search "keyword" [--page N] [--limit N]
//	newsctl get <id>
//	newsctl stats
//	newsctl ping
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"news-api/internal/config"
	"news-api/internal/infra/search"
	"news-api/internal/observability/logging"
	"news-api/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}
	logger := initLogger()

	app := newApp(os.Stdout, func(cfg config.Config) (repository.ArticleSearcher, error) {
		return search.New(cfg.SearchGateway(), logger)
	})
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initLogger logs to stderr so stdout carries only command output.
func initLogger() *slog.Logger {
	level := slog.LevelWarn
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level = logging.ParseLevel(v)
	}
	logger := logging.New(os.Stderr, logging.FormatText, level)
	slog.SetDefault(logger)
	return logger
}
