package vocabulary

import (
	"context"
	"log/slog"
)

// CachingSource wraps a source with the local cache: successful fetches
// refresh the cache, and while the service is unreachable the last good set
// keeps serving. When both fail the original fetch error propagates so the
// store engages its builtin fallback.
type CachingSource struct {
	source Source
	cache  CacheRepository
	logger *slog.Logger
}

// NewCachingSource wraps source with cache.
func NewCachingSource(source Source, cache CacheRepository, logger *slog.Logger) *CachingSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachingSource{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// Fetch implements the Source interface.
func (s *CachingSource) Fetch(ctx context.Context) (map[string][]Word, error) {
	leveled, err := s.source.Fetch(ctx)
	if err == nil {
		if cacheErr := s.cache.ReplaceAll(ctx, leveled); cacheErr != nil {
			s.logger.Warn("failed to refresh the vocabulary cache", "error", cacheErr)
		}
		return leveled, nil
	}

	cached, cacheErr := s.cache.FindAll(ctx)
	if cacheErr != nil {
		s.logger.Warn("failed to read the vocabulary cache", "error", cacheErr)
		return nil, err
	}
	if len(cached) == 0 {
		return nil, err
	}

	s.logger.Warn("vocabulary fetch failed, serving the cached set", "error", err)
	return cached, nil
}
