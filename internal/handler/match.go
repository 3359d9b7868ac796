package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carpool/internal/domain"
	"carpool/internal/service"
)

// MatchHandler handles HTTP requests for trip matching.
type MatchHandler struct {
	matchingService *service.MatchingService
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(matchingService *service.MatchingService) *MatchHandler {
	return &MatchHandler{matchingService: matchingService}
}

// MatchRequest is the HTTP request body for POST /group/match.
// Coordinates are pointers so a missing field is distinguishable from a
// legitimate zero (the equator and the prime meridian are valid inputs).
type MatchRequest struct {
	RiderID        string   `json:"rider_id" binding:"required"`
	OriginLat      *float64 `json:"origin_lat" binding:"required"`
	OriginLng      *float64 `json:"origin_lng" binding:"required"`
	DestinationLat *float64 `json:"destination_lat" binding:"required"`
	DestinationLng *float64 `json:"destination_lng" binding:"required"`
	DepartureTime  string   `json:"departure_time"`
	SeatsNeeded    int      `json:"seats_needed"`
}

// MatchEntry is one ranked trip in the response.
type MatchEntry struct {
	TripID                string  `json:"trip_id"`
	Score                 float64 `json:"score"`
	DistanceToOrigin      float64 `json:"distance_to_origin"`
	DistanceToDestination float64 `json:"distance_to_destination"`
	AvailableSeats        int     `json:"available_seats"`
}

// MatchResponse is the HTTP response for POST /group/match.
type MatchResponse struct {
	Matches []MatchEntry `json:"matches"`
}

// Match handles POST /group/match
func (h *MatchHandler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	// Departure time is carried but not used in scoring; a value that does
	// not parse is treated as absent.
	departureTime, _ := time.Parse(time.RFC3339, req.DepartureTime)

	results, err := h.matchingService.Match(c.Request.Context(), domain.MatchRequest{
		RiderID:        req.RiderID,
		OriginLat:      *req.OriginLat,
		OriginLng:      *req.OriginLng,
		DestinationLat: *req.DestinationLat,
		DestinationLng: *req.DestinationLng,
		DepartureTime:  departureTime,
		SeatsNeeded:    req.SeatsNeeded,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := MatchResponse{Matches: make([]MatchEntry, 0, len(results))}
	for _, m := range results {
		response.Matches = append(response.Matches, MatchEntry{
			TripID:                m.TripID,
			Score:                 m.Score,
			DistanceToOrigin:      m.DistanceToOrigin,
			DistanceToDestination: m.DistanceToDestination,
			AvailableSeats:        m.AvailableSeats,
		})
	}

	respondJSON(c, http.StatusOK, response)
}
