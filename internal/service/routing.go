package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"carpool/internal/domain"
	"carpool/internal/maps"
	internalredis "carpool/internal/redis"
)

// milesPerMeter converts route distances for the imperial response field.
const milesPerMeter = 0.000621371

// RouteProvider computes a route between two free-text addresses. The
// production implementation is the Google Maps adapter; tests substitute
// fakes.
type RouteProvider interface {
	ComputeRoute(ctx context.Context, origin, destination string) (*domain.RouteLeg, error)
}

// RoutingService resolves route queries through a cache-aside flow: cache
// lookup, provider call on miss, best-effort cache population. Cache failures
// degrade to provider calls and never surface to the caller.
type RoutingService struct {
	cache    internalredis.RouteCacheInterface
	provider RouteProvider
	ttl      time.Duration
	logger   *logrus.Logger
}

// NewRoutingService creates a new RoutingService. A nil cache disables
// caching; a nil provider makes every resolution fail with
// ErrProviderNotConfigured.
func NewRoutingService(
	cache internalredis.RouteCacheInterface,
	provider RouteProvider,
	ttl time.Duration,
	logger *logrus.Logger,
) *RoutingService {
	return &RoutingService{
		cache:    cache,
		provider: provider,
		ttl:      ttl,
		logger:   logger,
	}
}

// Resolve returns the distance/duration between the query's endpoints.
// Exactly one provider call is made per cache miss; no retries.
func (s *RoutingService) Resolve(ctx context.Context, q domain.RouteQuery) (*domain.RouteResult, error) {
	if s.provider == nil {
		return nil, ErrProviderNotConfigured
	}
	if q.Origin == "" || q.Destination == "" {
		return nil, ErrInvalidRouteQuery
	}

	key := internalredis.RouteKey(q.Origin, q.Destination)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			// Cache unavailability degrades to a miss, never fails the request.
			s.logger.WithError(err).Warn("route cache read failed, treating as miss")
		} else if cached != nil {
			s.logger.WithFields(logrus.Fields{
				"origin":      q.Origin,
				"destination": q.Destination,
			}).Debug("route cache hit")
			return cached, nil
		} else {
			s.logger.WithFields(logrus.Fields{
				"origin":      q.Origin,
				"destination": q.Destination,
			}).Debug("route cache miss")
		}
	}

	leg, err := s.provider.ComputeRoute(ctx, q.Origin, q.Destination)
	if err != nil {
		switch {
		case errors.Is(err, maps.ErrNoRoute):
			return nil, fmt.Errorf("%w: %v", ErrRouteNotFound, err)
		default:
			s.logger.WithError(err).Error("route provider call failed")
			return nil, fmt.Errorf("%w: %v", ErrRouteUpstream, err)
		}
	}

	result := &domain.RouteResult{
		DistanceMeters:  leg.DistanceMeters,
		DistanceMiles:   math.Round(float64(leg.DistanceMeters)*milesPerMeter*100) / 100,
		DurationSeconds: leg.DurationSeconds,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result, s.ttl); err != nil {
			// Cache writes are best effort; a failure is logged and swallowed.
			s.logger.WithError(err).Warn("route cache write failed")
		}
	}

	return result, nil
}
