package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frames-studio/internal/models"
	"frames-studio/internal/pages"
)

// HealthHandler godoc
// @Summary     Health check
// @Description Liveness check. Does not touch the image store.
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:     "ok",
		Studio:     pages.StudioName,
		Categories: len(models.Categories),
	})
}
