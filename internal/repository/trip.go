package repository

import (
	"context"

	"carpool/internal/domain"
)

// CandidateQuery bounds a spatial candidate search around a rider's request.
type CandidateQuery struct {
	OriginLat      float64
	OriginLng      float64
	DestinationLat float64
	DestinationLng float64
	SeatsNeeded    int
	RadiusMeters   float64
	Limit          int
}

// TripCandidateRepository defines the spatial read contract for trips.
type TripCandidateRepository interface {
	// FindCandidates returns active trips with at least SeatsNeeded seats
	// whose origin lies within RadiusMeters of the request origin, annotated
	// with geodesic distances to the request origin and destination, ordered
	// ascending by distance-to-origin, at most Limit rows.
	FindCandidates(ctx context.Context, q CandidateQuery) ([]domain.TripCandidate, error)
}
