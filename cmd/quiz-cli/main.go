package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"trivia-app/internal/cli"
	"trivia-app/internal/config"
	"trivia-app/internal/logger"
	"trivia-app/internal/opentdb"
	"trivia-app/internal/trivia"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	baseURL := flag.String("base-url", cfg.OpenTDB.BaseURL, "trivia service base URL")
	timeout := flag.Duration("timeout", cfg.OpenTDB.Timeout, "HTTP timeout")
	defaultLevel := cfg.LogLevel
	if defaultLevel == "" {
		defaultLevel = "warn"
	}
	logLevel := flag.String("log-level", defaultLevel, "log level")
	flag.Parse()

	cfg.LogLevel = *logLevel
	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	client := opentdb.NewClient(*baseURL, opentdb.NewHTTPGetter(&http.Client{Timeout: *timeout}))
	categories := trivia.NewCategoryRepository(client, log, cfg.OpenTDB.CountConcurrency)
	questions := trivia.NewQuestionAcquirer(client, log)

	if err := cli.Run(context.Background(), os.Stdin, os.Stdout, categories, questions, trivia.NewShuffler(nil)); err != nil {
		log.Error("quiz-cli failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
