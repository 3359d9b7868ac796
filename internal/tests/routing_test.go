package tests

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"carpool/internal/domain"
	"carpool/internal/maps"
	internalredis "carpool/internal/redis"
	"carpool/internal/service"
)

const testTTL = time.Hour

func newRoutingService(cache *MockRouteCache, provider *MockRouteProvider) *service.RoutingService {
	// A nil mock must become a nil interface value, not a typed nil.
	var c internalredis.RouteCacheInterface
	if cache != nil {
		c = cache
	}
	var p service.RouteProvider
	if provider != nil {
		p = provider
	}
	return service.NewRoutingService(c, p, testTTL, newTestLogger())
}

func TestResolve_MissCallsProviderAndCaches(t *testing.T) {
	ctx := context.Background()

	cache := NewMockRouteCache()
	provider := NewMockRouteProvider(domain.RouteLeg{DistanceMeters: 16093, DurationSeconds: 900})
	svc := newRoutingService(cache, provider)

	result, err := svc.Resolve(ctx, domain.RouteQuery{Origin: "Boston", Destination: "Cambridge"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DistanceMeters != 16093 {
		t.Errorf("expected 16093 meters, got %d", result.DistanceMeters)
	}
	if result.DistanceMiles != 10.00 {
		t.Errorf("expected 10.00 miles, got %v", result.DistanceMiles)
	}
	if result.DurationSeconds != 900 {
		t.Errorf("expected 900 seconds, got %d", result.DurationSeconds)
	}
	if result.Polyline != nil {
		t.Errorf("expected no polyline, got %v", *result.Polyline)
	}

	if provider.ComputeCallCount != 1 {
		t.Errorf("expected 1 provider call, got %d", provider.ComputeCallCount)
	}
	if cache.SetCallCount != 1 {
		t.Errorf("expected 1 cache write, got %d", cache.SetCallCount)
	}
	if cache.LastTTL != testTTL {
		t.Errorf("expected TTL %v, got %v", testTTL, cache.LastTTL)
	}
}

func TestResolve_SecondCallServedFromCache(t *testing.T) {
	ctx := context.Background()

	cache := NewMockRouteCache()
	provider := NewMockRouteProvider(domain.RouteLeg{DistanceMeters: 5000, DurationSeconds: 600})
	svc := newRoutingService(cache, provider)

	query := domain.RouteQuery{Origin: "Boston", Destination: "Cambridge"}

	first, err := svc.Resolve(ctx, query)
	if err != nil {
		t.Fatalf("unexpected error on first resolve: %v", err)
	}
	second, err := svc.Resolve(ctx, query)
	if err != nil {
		t.Fatalf("unexpected error on second resolve: %v", err)
	}

	if *first != *second {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
	if provider.ComputeCallCount != 1 {
		t.Errorf("expected provider called once, got %d", provider.ComputeCallCount)
	}
}

func TestResolve_CacheKeyIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()

	cache := NewMockRouteCache()
	provider := NewMockRouteProvider(domain.RouteLeg{DistanceMeters: 5000, DurationSeconds: 600})
	svc := newRoutingService(cache, provider)

	if _, err := svc.Resolve(ctx, domain.RouteQuery{Origin: "Boston", Destination: "Cambridge"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Resolve(ctx, domain.RouteQuery{Origin: "BOSTON", Destination: "cambridge"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.ComputeCallCount != 1 {
		t.Errorf("case-folded query should hit cache, provider called %d times", provider.ComputeCallCount)
	}
}

func TestResolve_CacheUnavailableDegradesToProvider(t *testing.T) {
	ctx := context.Background()

	cache := NewMockRouteCache()
	cache.GetError = errors.New("connection refused")
	cache.SetError = errors.New("connection refused")
	provider := NewMockRouteProvider(domain.RouteLeg{DistanceMeters: 16093, DurationSeconds: 900})
	svc := newRoutingService(cache, provider)

	result, err := svc.Resolve(ctx, domain.RouteQuery{Origin: "A", Destination: "B"})
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if result.DistanceMiles != 10.00 {
		t.Errorf("expected 10.00 miles, got %v", result.DistanceMiles)
	}
	if provider.ComputeCallCount != 1 {
		t.Errorf("expected provider fallthrough, got %d calls", provider.ComputeCallCount)
	}
}

func TestResolve_NoCacheConfigured(t *testing.T) {
	ctx := context.Background()

	provider := NewMockRouteProvider(domain.RouteLeg{DistanceMeters: 1000, DurationSeconds: 120})
	svc := newRoutingService(nil, provider)

	result, err := svc.Resolve(ctx, domain.RouteQuery{Origin: "A", Destination: "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DistanceMeters != 1000 {
		t.Errorf("expected 1000 meters, got %d", result.DistanceMeters)
	}
}

func TestResolve_NotFoundWritesNoCacheEntry(t *testing.T) {
	ctx := context.Background()

	cache := NewMockRouteCache()
	provider := NewMockRouteProvider(domain.RouteLeg{})
	provider.ComputeError = fmt.Errorf("%w: ZERO_RESULTS", maps.ErrNoRoute)
	svc := newRoutingService(cache, provider)

	_, err := svc.Resolve(ctx, domain.RouteQuery{Origin: "A", Destination: "B"})
	if !errors.Is(err, service.ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}

	if cache.SetCallCount != 0 {
		t.Errorf("expected no cache write on not-found, got %d", cache.SetCallCount)
	}
	if cache.Entries() != 0 {
		t.Errorf("expected empty cache, got %d entries", cache.Entries())
	}
}

func TestResolve_UpstreamFailureSurfaces(t *testing.T) {
	ctx := context.Background()

	cache := NewMockRouteCache()
	provider := NewMockRouteProvider(domain.RouteLeg{})
	provider.ComputeError = fmt.Errorf("%w: quota exceeded", maps.ErrUpstream)
	svc := newRoutingService(cache, provider)

	_, err := svc.Resolve(ctx, domain.RouteQuery{Origin: "A", Destination: "B"})
	if !errors.Is(err, service.ErrRouteUpstream) {
		t.Fatalf("expected ErrRouteUpstream, got %v", err)
	}
	if cache.SetCallCount != 0 {
		t.Errorf("expected no cache write on upstream failure, got %d", cache.SetCallCount)
	}
}

func TestResolve_ProviderNotConfigured(t *testing.T) {
	ctx := context.Background()

	svc := newRoutingService(NewMockRouteCache(), nil)

	_, err := svc.Resolve(ctx, domain.RouteQuery{Origin: "A", Destination: "B"})
	if !errors.Is(err, service.ErrProviderNotConfigured) {
		t.Errorf("expected ErrProviderNotConfigured, got %v", err)
	}
}

func TestResolve_CacheWriteFailureSwallowed(t *testing.T) {
	ctx := context.Background()

	cache := NewMockRouteCache()
	cache.SetError = errors.New("readonly replica")
	provider := NewMockRouteProvider(domain.RouteLeg{DistanceMeters: 2000, DurationSeconds: 300})
	svc := newRoutingService(cache, provider)

	result, err := svc.Resolve(ctx, domain.RouteQuery{Origin: "A", Destination: "B"})
	if err != nil {
		t.Fatalf("cache write failure must not surface: %v", err)
	}
	if result.DistanceMeters != 2000 {
		t.Errorf("expected 2000 meters, got %d", result.DistanceMeters)
	}
}

func TestResolve_EmptyQueryRejected(t *testing.T) {
	ctx := context.Background()

	provider := NewMockRouteProvider(domain.RouteLeg{DistanceMeters: 1, DurationSeconds: 1})
	svc := newRoutingService(NewMockRouteCache(), provider)

	_, err := svc.Resolve(ctx, domain.RouteQuery{Origin: "", Destination: "B"})
	if !errors.Is(err, service.ErrInvalidRouteQuery) {
		t.Errorf("expected ErrInvalidRouteQuery, got %v", err)
	}
}
