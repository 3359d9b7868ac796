package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"carpool/internal/domain"
	"carpool/internal/repository"
)

// TripCandidateRepository is a PostgreSQL/PostGIS implementation of
// repository.TripCandidateRepository.
type TripCandidateRepository struct {
	q Querier
}

// NewTripCandidateRepository creates a new PostgreSQL trip candidate repository.
func NewTripCandidateRepository(db *sql.DB) *TripCandidateRepository {
	return &TripCandidateRepository{q: db}
}

// FindCandidates returns active trips near the request origin with enough
// seats, annotated with geodesic distances. The geography cast makes
// ST_Distance and ST_DWithin operate on the ellipsoid, so distances are in
// meters rather than degrees.
func (r *TripCandidateRepository) FindCandidates(ctx context.Context, q repository.CandidateQuery) ([]domain.TripCandidate, error) {
	query := `
		SELECT
			t.trip_id,
			t.seats_available,
			ST_Distance(
				t.origin_point::geography,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
			) AS dist_to_origin,
			ST_Distance(
				t.destination_point::geography,
				ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography
			) AS dist_to_dest
		FROM trips t
		WHERE
			t.status = $5
			AND t.seats_available >= $6
			AND ST_DWithin(
				t.origin_point::geography,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$7
			)
		ORDER BY dist_to_origin
		LIMIT $8
	`

	rows, err := r.q.QueryContext(ctx, query,
		q.OriginLng,
		q.OriginLat,
		q.DestinationLng,
		q.DestinationLat,
		domain.TripStatusActive,
		q.SeatsNeeded,
		q.RadiusMeters,
		q.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var candidates []domain.TripCandidate
	for rows.Next() {
		var c domain.TripCandidate
		if err := rows.Scan(
			&c.TripID,
			&c.SeatsAvailable,
			&c.DistanceToOrigin,
			&c.DistanceToDestination,
		); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
	}

	return candidates, nil
}

// Ensure TripCandidateRepository implements repository.TripCandidateRepository.
var _ repository.TripCandidateRepository = (*TripCandidateRepository)(nil)
