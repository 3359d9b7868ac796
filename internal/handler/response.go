package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool/internal/repository"
	"carpool/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
// Server-side failures get a generic message; internal detail never reaches
// the client.
func respondError(c *gin.Context, err error) {
	code, message := mapError(err)
	c.JSON(code, ErrorResponse{Error: message})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapError maps service/repository errors to an HTTP status code and a
// client-safe message.
func mapError(err error) (int, string) {
	switch {
	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidRiderID),
		errors.Is(err, service.ErrInvalidLocation),
		errors.Is(err, service.ErrInvalidSeatsNeeded),
		errors.Is(err, service.ErrInvalidRouteQuery):
		return http.StatusBadRequest, err.Error()

	// No viable route is a client-facing outcome, not a server failure.
	case errors.Is(err, service.ErrRouteNotFound):
		return http.StatusBadRequest, service.ErrRouteNotFound.Error()

	// Missing provider credential
	case errors.Is(err, service.ErrProviderNotConfigured):
		return http.StatusServiceUnavailable, service.ErrProviderNotConfigured.Error()

	// External provider failure
	case errors.Is(err, service.ErrRouteUpstream):
		return http.StatusBadGateway, service.ErrRouteUpstream.Error()

	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, repository.ErrNotFound.Error()

	// Storage failures and anything unanticipated
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
