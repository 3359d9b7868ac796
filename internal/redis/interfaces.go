package redis

import (
	"context"
	"time"

	"carpool/internal/domain"
)

// RouteCacheInterface defines the interface for route result caching.
// Implementations must treat a missing key as (nil, nil), not an error.
type RouteCacheInterface interface {
	Get(ctx context.Context, key string) (*domain.RouteResult, error)
	Set(ctx context.Context, key string, result *domain.RouteResult, ttl time.Duration) error
}

// Ensure concrete types implement interfaces.
var _ RouteCacheInterface = (*RouteCacheStore)(nil)
