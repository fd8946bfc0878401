package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"frames-studio/internal/imageprep"
	"frames-studio/internal/models"
	"frames-studio/internal/services"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingFile),
		errors.Is(err, services.ErrNoFiles),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrNothingSelected),
		errors.Is(err, imageprep.ErrEmpty),
		errors.Is(err, imageprep.ErrNotAnImage):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrImageNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Server errors are attached to
// the gin context so the request logger records them.
func respondError(c *gin.Context, summary string, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, models.ErrorResponse{
		Error:   summary,
		Message: err.Error(),
	})
}
