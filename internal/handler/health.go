package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness and capability flags.
type HealthHandler struct {
	mapsConfigured bool
	redisConnected bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(mapsConfigured, redisConnected bool) *HealthHandler {
	return &HealthHandler{
		mapsConfigured: mapsConfigured,
		redisConnected: redisConnected,
	}
}

// HealthResponse is the HTTP response for GET /health.
type HealthResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	Algorithm      string `json:"algorithm"`
	MLReady        bool   `json:"ml_ready"`
	MapsConfigured bool   `json:"maps_configured"`
	RedisConnected bool   `json:"redis_connected"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "success",
		Message:   "Carpool service is running",
		Algorithm: "simple_distance_based",
		// Flip once a learned compatibility model is plugged into the
		// Scorer seam.
		MLReady:        false,
		MapsConfigured: h.mapsConfigured,
		RedisConnected: h.redisConnected,
	})
}
