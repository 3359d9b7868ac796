package service

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"carpool/internal/config"
	"carpool/internal/domain"
	"carpool/internal/repository"
)

// MatchingService ranks candidate trips against a rider's match request.
type MatchingService struct {
	tripRepo repository.TripCandidateRepository
	scorer   Scorer
	cfg      config.MatchingConfig
	logger   *logrus.Logger
}

// NewMatchingService creates a new MatchingService.
func NewMatchingService(
	tripRepo repository.TripCandidateRepository,
	scorer Scorer,
	cfg config.MatchingConfig,
	logger *logrus.Logger,
) *MatchingService {
	return &MatchingService{
		tripRepo: tripRepo,
		scorer:   scorer,
		cfg:      cfg,
		logger:   logger,
	}
}

// Match retrieves candidates near the request origin, scores each one, and
// returns at most MaxResults entries sorted descending by score. Equal scores
// keep the retriever's order, i.e. ascending distance-to-origin, so results
// are reproducible.
func (s *MatchingService) Match(ctx context.Context, req domain.MatchRequest) ([]domain.MatchResult, error) {
	if req.RiderID == "" {
		return nil, ErrInvalidRiderID
	}
	if !validCoordinate(req.OriginLat, req.OriginLng) || !validCoordinate(req.DestinationLat, req.DestinationLng) {
		return nil, ErrInvalidLocation
	}
	if req.SeatsNeeded < 0 {
		return nil, ErrInvalidSeatsNeeded
	}
	seatsNeeded := req.SeatsNeeded
	if seatsNeeded == 0 {
		seatsNeeded = 1
	}

	candidates, err := s.tripRepo.FindCandidates(ctx, repository.CandidateQuery{
		OriginLat:      req.OriginLat,
		OriginLng:      req.OriginLng,
		DestinationLat: req.DestinationLat,
		DestinationLng: req.DestinationLng,
		SeatsNeeded:    seatsNeeded,
		RadiusMeters:   s.cfg.SearchRadiusMeters,
		Limit:          s.cfg.CandidateLimit,
	})
	if err != nil {
		s.logger.WithError(err).Error("candidate retrieval failed")
		return nil, err
	}

	results := make([]domain.MatchResult, 0, len(candidates))
	for _, c := range candidates {
		seatsMatch := c.SeatsAvailable >= seatsNeeded
		results = append(results, domain.MatchResult{
			TripID:                c.TripID,
			Score:                 s.scorer.Score(c.DistanceToOrigin, c.DistanceToDestination, seatsMatch),
			DistanceToOrigin:      round2(c.DistanceToOrigin),
			DistanceToDestination: round2(c.DistanceToDestination),
			AvailableSeats:        c.SeatsAvailable,
		})
	}

	// Stable sort: ties keep the retriever's ascending distance-to-origin order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > s.cfg.MaxResults {
		results = results[:s.cfg.MaxResults]
	}

	s.logger.WithFields(logrus.Fields{
		"rider_id":   req.RiderID,
		"candidates": len(candidates),
		"matches":    len(results),
	}).Debug("match request ranked")

	return results, nil
}

func validCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
