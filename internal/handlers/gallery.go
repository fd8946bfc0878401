package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"frames-studio/internal/gallery"
	"frames-studio/internal/models"
)

type GalleryHandler struct {
	gallery *gallery.Adapter
}

func NewGalleryHandler(adapter *gallery.Adapter) *GalleryHandler {
	return &GalleryHandler{gallery: adapter}
}

// ListCategories godoc
// @Summary     List portfolio categories
// @Description Returns the fixed portfolio categories in display order
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} models.CategoriesResponse
// @Router      /categories [get]
func (h *GalleryHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.CategoriesResponse{Categories: models.Categories})
}

// ListPortfolio godoc
// @Summary     List portfolio images
// @Description Returns portfolio images newest first. A failed fetch returns an empty list.
// @Tags        portfolio
// @Produce     json
// @Param       category query string false "Category filter"
// @Param       limit    query int    false "Maximum number of images"
// @Success     200 {object} models.GalleryResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /portfolio [get]
func (h *GalleryHandler) ListPortfolio(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !models.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid category",
			Message: "category must be one of the portfolio categories",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid limit",
				Message: "limit must be a non-negative integer",
			})
			return
		}
		limit = n
	}

	items := h.gallery.Fetch(c.Request.Context(), category, limit)

	response := models.GalleryResponse{
		Category: category,
		Items:    make([]models.GalleryItemResponse, len(items)),
	}
	for i, item := range items {
		response.Items[i] = models.GalleryItemResponse{
			ID:       item.ID,
			ImageURL: item.ImageURL,
			Category: item.Category,
			Title:    item.Title,
			Alt:      item.Alt,
		}
	}
	c.JSON(http.StatusOK, response)
}
