// Package maps adapts the Google Maps Distance Matrix API to the domain
// route vocabulary. No Google types or error structures leak to callers.
package maps

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"

	"carpool/internal/domain"
)

var (
	// ErrNoRoute is returned when the provider reports no viable route
	// between the two addresses.
	ErrNoRoute = errors.New("no route found")

	// ErrUpstream is returned when the provider call itself fails
	// (transport, authentication, quota) or yields a malformed response.
	ErrUpstream = errors.New("route provider error")
)

// RouteProvider computes point-to-point routes via the Distance Matrix API.
type RouteProvider struct {
	client *maps.Client
}

// NewRouteProvider creates a RouteProvider with the given API key.
func NewRouteProvider(apiKey string) (*RouteProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteProvider{client: client}, nil
}

// ComputeRoute returns the driving distance and duration between two
// free-text addresses. Provider statuses are translated into the domain
// outcomes: success, ErrNoRoute, or ErrUpstream.
func (p *RouteProvider) ComputeRoute(ctx context.Context, origin, destination string) (*domain.RouteLeg, error) {
	req := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	}

	resp, err := p.client.DistanceMatrix(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, fmt.Errorf("%w: empty distance matrix response", ErrUpstream)
	}

	element := resp.Rows[0].Elements[0]
	switch element.Status {
	case "OK":
	case "NOT_FOUND", "ZERO_RESULTS":
		return nil, fmt.Errorf("%w: %s", ErrNoRoute, element.Status)
	default:
		return nil, fmt.Errorf("%w: element status %s", ErrUpstream, element.Status)
	}

	return &domain.RouteLeg{
		DistanceMeters:  element.Distance.Meters,
		DurationSeconds: int(element.Duration.Seconds()),
	}, nil
}
