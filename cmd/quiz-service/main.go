package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"trivia-app/internal/config"
	"trivia-app/internal/httpapi"
	"trivia-app/internal/logger"
	"trivia-app/internal/opentdb"
	"trivia-app/internal/trivia"
	"trivia-app/internal/trivia/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	addr := flag.String("addr", cfg.Server.Addr, "HTTP listen address")
	storePath := flag.String("store", cfg.Store.Path, "SQLite path for active sessions")
	flag.Parse()

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := opentdb.NewClient(cfg.OpenTDB.BaseURL, opentdb.NewHTTPGetter(&http.Client{Timeout: cfg.OpenTDB.Timeout}))
	repo := trivia.NewCategoryRepository(client, zl, cfg.OpenTDB.CountConcurrency)

	// Nothing is served until the category set is complete.
	categories, err := repo.FetchCategories(ctx)
	if err != nil {
		zl.Fatal("failed to load categories", zap.Error(err))
	}

	store, err := sqlite.NewSQLiteStore(*storePath)
	if err != nil {
		zl.Fatal("failed to open session store", zap.String("path", *storePath), zap.Error(err))
	}
	defer store.Close()

	go pruneSessions(ctx, store, cfg.Server.SessionTTL, zl)

	api := httpapi.NewAPI(categories, trivia.NewQuestionAcquirer(client, zl), store, trivia.NewShuffler(nil), zl)
	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(api, zl),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zl.Info("quiz-service listening", zap.String("addr", *addr), zap.Int("categories", categories.Len()))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatal("server failed", zap.Error(err))
	}
	zl.Info("shutdown complete")
}

func pruneSessions(ctx context.Context, store *sqlite.SQLiteStore, ttl time.Duration, zl *zap.Logger) {
	if ttl <= 0 {
		return
	}

	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := store.PruneSessions(ctx, now.Add(-ttl))
			if err != nil {
				zl.Warn("failed to prune sessions", zap.Error(err))
				continue
			}
			if removed > 0 {
				zl.Info("pruned idle sessions", zap.Int64("removed", removed))
			}
		}
	}
}
