package domain

import "time"

// TripStatus represents the current status of a pooled trip.
type TripStatus string

const (
	TripStatusActive    TripStatus = "active"
	TripStatusFull      TripStatus = "full"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// MatchRequest is a rider's request to be matched with candidate trips.
type MatchRequest struct {
	RiderID        string
	OriginLat      float64
	OriginLng      float64
	DestinationLat float64
	DestinationLng float64
	DepartureTime  time.Time
	SeatsNeeded    int
}

// TripCandidate is an active trip eligible for ranking, annotated with
// geodesic distances (meters) from the trip's endpoints to the rider's.
type TripCandidate struct {
	TripID                string
	SeatsAvailable        int
	DistanceToOrigin      float64
	DistanceToDestination float64
}

// MatchResult is a scored candidate. Score lives in [0, 1.5]: the seat-match
// boost is applied after averaging the proximity components and is not
// clamped, so a near-perfect match with seats can exceed 1.0.
type MatchResult struct {
	TripID                string
	Score                 float64
	DistanceToOrigin      float64
	DistanceToDestination float64
	AvailableSeats        int
}
