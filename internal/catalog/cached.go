package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/printshop/printshop/internal/cache"
	"github.com/printshop/printshop/internal/pricing"
)

const (
	SnapshotCacheKey   = "catalog:snapshot"
	DefaultSnapshotTTL = 5 * time.Minute
)

// CachedSource serves snapshots from a cache.Provider and falls back to the
// wrapped source on a miss. Concurrent misses share one load.
type CachedSource struct {
	source Source
	cache  cache.Provider
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

func NewCachedSource(source Source, provider cache.Provider, ttl time.Duration, logger *slog.Logger) (*CachedSource, error) {
	if source == nil {
		return nil, fmt.Errorf("source is required")
	}
	if provider == nil {
		return nil, fmt.Errorf("cache provider is required")
	}
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CachedSource{
		source: source,
		cache:  provider,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (s *CachedSource) Load(ctx context.Context) (*pricing.Catalog, error) {
	cached, err := s.cache.Get(ctx, SnapshotCacheKey)
	switch {
	case err == nil:
		var catalog pricing.Catalog
		decodeErr := json.Unmarshal([]byte(cached), &catalog)
		if decodeErr == nil {
			return &catalog, nil
		}
		s.logger.Warn("discarding undecodable catalog snapshot", "error", decodeErr)
	case !errors.Is(err, cache.ErrNotFound):
		s.logger.Warn("catalog cache read failed", "error", err)
	}

	v, err, _ := s.group.Do(SnapshotCacheKey, func() (any, error) {
		// Callers that join this load must not fail because the first one went away.
		ctx := context.WithoutCancel(ctx)
		catalog, err := s.source.Load(ctx)
		if err != nil {
			return nil, err
		}

		encoded, err := json.Marshal(catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog snapshot: %w", err)
		}
		if err := s.cache.Set(ctx, SnapshotCacheKey, string(encoded), s.ttl); err != nil {
			s.logger.Warn("catalog cache write failed", "error", err)
		}
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*pricing.Catalog), nil
}

// CheckCache reports whether the snapshot cache is reachable. Loads still
// succeed without it, straight from the source.
func (s *CachedSource) CheckCache(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

// Invalidate drops the cached snapshot so the next load hits the source.
func (s *CachedSource) Invalidate(ctx context.Context) error {
	if err := s.cache.Delete(ctx, SnapshotCacheKey); err != nil {
		return fmt.Errorf("failed to invalidate catalog snapshot: %w", err)
	}
	return nil
}
