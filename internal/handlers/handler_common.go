package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fundbooks/fundbooks/internal/apperrors"
	"github.com/fundbooks/fundbooks/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// handleServiceError maps service errors onto HTTP status codes and writes
// the response. The action string names the failed operation in logs and in
// the opaque 500 message.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Concurrent modification conflict", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Service error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// parseDateQuery parses a required YYYY-MM-DD query parameter. On failure it
// writes a 400 response and returns ok=false.
func parseDateQuery(c *gin.Context, name string) (domain.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter " + name})
		return domain.Date{}, false
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ": expected YYYY-MM-DD"})
		return domain.Date{}, false
	}
	return date, true
}

// wantsPopulatedView reports whether the caller asked for parent names to be
// embedded in the response via the populate query flag.
func wantsPopulatedView(c *gin.Context) bool {
	populate, _ := strconv.ParseBool(c.Query("populate"))
	return populate
}

// parseDateRangeQuery parses the from/to query parameter pair.
func parseDateRangeQuery(c *gin.Context) (from, to domain.Date, ok bool) {
	from, ok = parseDateQuery(c, "from")
	if !ok {
		return domain.Date{}, domain.Date{}, false
	}
	to, ok = parseDateQuery(c, "to")
	if !ok {
		return domain.Date{}, domain.Date{}, false
	}
	return from, to, true
}
