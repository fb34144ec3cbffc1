package handlers

import (
	"errors"
	"net/http"

	"expense_tracker"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgUnauthenticated = "You are not authenticated. Please login to access this resource."
	msgServerError     = "Internal server error"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, expense_tracker.MessageResponse{Message: userMsg})
}

func (h *Handler) unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, expense_tracker.UnauthorizedResponse{
		Status:  http.StatusUnauthorized,
		Error:   http.StatusText(http.StatusUnauthorized),
		Message: msgUnauthenticated,
		Path:    c.Request.URL.Path,
	})
}

// writeError maps a service error to its HTTP status. Anything unclassified is
// logged under logKey and answered with a generic 500.
func (h *Handler) writeError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		h.unauthorized(c)
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, expense_tracker.MessageResponse{Message: service.PublicMessage(err, "Not found")})
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, expense_tracker.MessageResponse{Message: service.PublicMessage(err, "Bad request")})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgServerError, logKey, err, kv...)
	}
}
