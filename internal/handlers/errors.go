package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchjobs/jobboard-api/internal/services"
)

// errorText carries the per-endpoint wording for failures whose message
// depends on context. Internal is the opaque message for unexpected store
// errors; the zero values of the rest fall back to generic wording.
type errorText struct {
	InvalidID string
	Forbidden string
	Internal  string
}

// respondError maps a service failure to its status code and a stable error
// body.
func respondError(c *gin.Context, err error, text errorText) {
	if text.InvalidID == "" {
		text.InvalidID = "Invalid ID format"
	}
	if text.Forbidden == "" {
		text.Forbidden = "Not authorized"
	}

	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": text.InvalidID})
	case errors.Is(err, services.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": text.Forbidden})
	case errors.Is(err, services.ErrJobInactive):
		c.JSON(http.StatusBadRequest, gin.H{"error": "This job is no longer accepting applications"})
	case errors.Is(err, services.ErrDuplicateApplication):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already applied for this job"})
	case errors.Is(err, services.ErrInvalidUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid updates"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": text.Internal})
	}
}
