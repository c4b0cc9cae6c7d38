package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tatdt622989/japanese-word-display/internal/config"
	"github.com/tatdt622989/japanese-word-display/internal/database"
	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
	"github.com/tatdt622989/japanese-word-display/internal/vocabulary/remote"
)

// newLoadedStore builds the source chain from the config and loads the store
// once. A load failure is a warning, not a fatal error: the store then holds
// the builtin fallback set.
func newLoadedStore(ctx context.Context, cfg *config.Config) (*vocabulary.Store, func(), error) {
	var closers []func() error
	closeAll := func() {
		for _, close := range closers {
			if err := close(); err != nil {
				slog.Warn("failed to close a resource", "error", err)
			}
		}
	}

	var source vocabulary.Source
	if cfg.Vocabulary.File != "" {
		source = vocabulary.NewFileSource(cfg.Vocabulary.File)
	} else {
		client := remote.NewClient(cfg.Vocabulary.Endpoint, cfg.Vocabulary.Timeout, cfg.Vocabulary.RetryAttempts)
		closers = append(closers, client.Close)
		source = client
	}

	if cfg.Vocabulary.CachePath != "" {
		db, err := database.Open(cfg.Vocabulary.CachePath)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("database.Open(%s) > %w", cfg.Vocabulary.CachePath, err)
		}
		closers = append(closers, db.Close)

		cache, err := vocabulary.NewDBCacheRepository(db)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("vocabulary.NewDBCacheRepository() > %w", err)
		}
		source = vocabulary.NewCachingSource(source, cache, slog.Default())
	}

	store := vocabulary.NewStore()
	if err := store.Load(ctx, source); err != nil {
		slog.Warn("failed to load vocabulary, using the builtin fallback set", "error", err)
	}
	return store, closeAll, nil
}
