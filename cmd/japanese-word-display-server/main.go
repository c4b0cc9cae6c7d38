package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"

	"github.com/tatdt622989/japanese-word-display/internal/assets"
	"github.com/tatdt622989/japanese-word-display/internal/config"
	"github.com/tatdt622989/japanese-word-display/internal/database"
	"github.com/tatdt622989/japanese-word-display/internal/quiz"
	"github.com/tatdt622989/japanese-word-display/internal/server"
	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
	"github.com/tatdt622989/japanese-word-display/internal/vocabulary/remote"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configFile string
	var templatePath string
	pflag.StringVar(&configFile, "config", "", "config file path")
	pflag.StringVar(&templatePath, "template", "", "path of a detail view template overriding the embedded one")
	pflag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := loadStore(ctx, cfg)
	if err != nil {
		return err
	}

	detailTemplate, err := assets.ParseWordDetailHTMLTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("assets.ParseWordDetailHTMLTemplate() > %w", err)
	}

	builder := quiz.NewBuilder(store, nil, cfg.Quiz.DistractorCount)
	handler := server.New(store, builder, detailTemplate, slog.Default()).
		Handler(cfg.Server.AllowedOrigins)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting the word server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("httpServer.ListenAndServe() > %w", err)
	}
}

func loadStore(ctx context.Context, cfg *config.Config) (*vocabulary.Store, error) {
	var source vocabulary.Source
	if cfg.Vocabulary.File != "" {
		source = vocabulary.NewFileSource(cfg.Vocabulary.File)
	} else {
		source = remote.NewClient(cfg.Vocabulary.Endpoint, cfg.Vocabulary.Timeout, cfg.Vocabulary.RetryAttempts)
	}

	if cfg.Vocabulary.CachePath != "" {
		db, err := database.Open(cfg.Vocabulary.CachePath)
		if err != nil {
			return nil, fmt.Errorf("database.Open(%s) > %w", cfg.Vocabulary.CachePath, err)
		}
		cache, err := vocabulary.NewDBCacheRepository(db)
		if err != nil {
			return nil, fmt.Errorf("vocabulary.NewDBCacheRepository() > %w", err)
		}
		source = vocabulary.NewCachingSource(source, cache, slog.Default())
	}

	store := vocabulary.NewStore()
	if err := store.Load(ctx, source); err != nil {
		slog.Warn("failed to load vocabulary, using the builtin fallback set", "error", err)
	}
	return store, nil
}
