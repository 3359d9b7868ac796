package service

import "errors"

var (
	// ErrInvalidRiderID is returned when rider ID is empty.
	ErrInvalidRiderID = errors.New("invalid rider id")

	// ErrInvalidLocation is returned when coordinates are out of range.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidSeatsNeeded is returned when seats needed is negative.
	ErrInvalidSeatsNeeded = errors.New("invalid seats needed")

	// ErrInvalidRouteQuery is returned when origin or destination is empty.
	ErrInvalidRouteQuery = errors.New("invalid route query")

	// ErrProviderNotConfigured is returned on every route resolution when the
	// service was started without a route provider credential.
	ErrProviderNotConfigured = errors.New("route provider not configured")

	// ErrRouteNotFound is returned when no viable route exists between the
	// requested origin and destination.
	ErrRouteNotFound = errors.New("route not found")

	// ErrRouteUpstream is returned when the external route provider fails.
	ErrRouteUpstream = errors.New("route provider unavailable")
)
