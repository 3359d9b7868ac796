package domain

// RouteQuery identifies a point-to-point route by free-text addresses.
// Addresses are not geocoded or normalized here beyond case-folding in the
// cache key.
type RouteQuery struct {
	Origin      string
	Destination string
}

// RouteLeg is the raw distance/duration pair returned by a route provider.
type RouteLeg struct {
	DistanceMeters  int
	DurationSeconds int
}

// RouteResult is the resolved route as served to clients and stored in the
// cache. DistanceMiles is derived from DistanceMeters and rounded to two
// decimals. Polyline is reserved for a geometry-returning provider and is
// currently always null.
type RouteResult struct {
	DistanceMeters  int     `json:"distance_meters"`
	DistanceMiles   float64 `json:"distance_miles"`
	DurationSeconds int     `json:"duration_seconds"`
	Polyline        *string `json:"polyline"`
}
