package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool/internal/domain"
	"carpool/internal/service"
)

// RouteHandler handles HTTP requests for route calculation.
type RouteHandler struct {
	routingService *service.RoutingService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(routingService *service.RoutingService) *RouteHandler {
	return &RouteHandler{routingService: routingService}
}

// RouteRequest is the HTTP request body for POST /route/calculate.
type RouteRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

// Calculate handles POST /route/calculate
func (h *RouteHandler) Calculate(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.routingService.Resolve(c.Request.Context(), domain.RouteQuery{
		Origin:      req.Origin,
		Destination: req.Destination,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, result)
}
