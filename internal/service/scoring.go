package service

import "math"

// Scorer computes a compatibility score from two proximity distances and a
// seat-availability flag. Higher is better. This is the extension seam for a
// learned compatibility model: any replacement must keep this contract so the
// ranking pipeline stays unchanged.
type Scorer interface {
	Score(distanceToOrigin, distanceToDestination float64, seatsMatch bool) float64
}

// ProximityScorer is the deterministic heuristic baseline. Each distance is
// normalized against the search radius and floored at zero, the two
// components are averaged, and a seat match multiplies the result by 1.5.
// There is no final clamp, so scores with a seat match can exceed 1.0; the
// score domain is [0, 1.5].
type ProximityScorer struct {
	radiusMeters float64
}

// NewProximityScorer creates a scorer normalizing against the given radius.
func NewProximityScorer(radiusMeters float64) *ProximityScorer {
	if radiusMeters <= 0 {
		radiusMeters = 5000
	}
	return &ProximityScorer{radiusMeters: radiusMeters}
}

// Score is pure and deterministic; it has no failure modes.
func (s *ProximityScorer) Score(distanceToOrigin, distanceToDestination float64, seatsMatch bool) float64 {
	originScore := math.Max(0, 1-distanceToOrigin/s.radiusMeters)
	destScore := math.Max(0, 1-distanceToDestination/s.radiusMeters)

	base := (originScore + destScore) / 2

	if seatsMatch {
		base *= 1.5
	}

	return round3(base)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Ensure ProximityScorer implements Scorer.
var _ Scorer = (*ProximityScorer)(nil)
