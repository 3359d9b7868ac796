package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"carpool/internal/domain"
)

// RouteCacheStore handles cached route results in Redis.
type RouteCacheStore struct {
	client *redis.Client
}

// NewRouteCacheStore creates a new RouteCacheStore.
func NewRouteCacheStore(client *redis.Client) *RouteCacheStore {
	return &RouteCacheStore{client: client}
}

// RouteKey derives a fixed-length cache key from an origin/destination pair.
// Both addresses are case-folded before hashing, so the key is
// case-insensitive; it remains sensitive to whitespace and punctuation.
func RouteKey(origin, destination string) string {
	raw := strings.ToLower("route:" + origin + ":" + destination)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Get retrieves a cached route result. A cache miss returns (nil, nil).
func (s *RouteCacheStore) Get(ctx context.Context, key string) (*domain.RouteResult, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var result domain.RouteResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Set stores a route result with the given TTL.
func (s *RouteCacheStore) Set(ctx context.Context, key string, result *domain.RouteResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}
