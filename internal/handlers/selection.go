package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frames-studio/internal/admin"
	"frames-studio/internal/middleware"
	"frames-studio/internal/models"
)

// GetSelection godoc
// @Summary     Current selection
// @Tags        selection
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SelectionResponse
// @Router      /admin/selection [get]
func (h *AdminHandler) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, selectionResponse(h.selections.Get(middleware.AdminSessionID(c))))
}

// SetSelectionMode godoc
// @Summary     Enter or leave selection mode
// @Description Leaving selection mode clears the selection.
// @Tags        selection
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.SelectionModeRequest true "Mode"
// @Success     200 {object} models.SelectionResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /admin/selection/mode [post]
func (h *AdminHandler) SetSelectionMode(c *gin.Context) {
	var req models.SelectionModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	snap := h.selections.Update(middleware.AdminSessionID(c), func(s *admin.Selection) {
		s.SetMode(req.Enabled)
	})
	c.JSON(http.StatusOK, selectionResponse(snap))
}

// ToggleSelection godoc
// @Summary     Select or deselect one image
// @Tags        selection
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Image ID"
// @Success     200 {object} models.SelectionResponse
// @Router      /admin/selection/toggle/{id} [post]
func (h *AdminHandler) ToggleSelection(c *gin.Context) {
	id := c.Param("id")
	snap := h.selections.Update(middleware.AdminSessionID(c), func(s *admin.Selection) {
		s.Toggle(id)
	})
	c.JSON(http.StatusOK, selectionResponse(snap))
}

// ToggleAllSelection godoc
// @Summary     Select all images, or clear when all are selected
// @Tags        selection
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SelectionResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/selection/all [post]
func (h *AdminHandler) ToggleAllSelection(c *gin.Context) {
	images, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, "failed to list images", err)
		return
	}

	ids := make([]string, len(images))
	for i, img := range images {
		ids[i] = img.ID
	}

	snap := h.selections.Update(middleware.AdminSessionID(c), func(s *admin.Selection) {
		s.Retain(ids)
		s.ToggleAll(ids)
	})
	c.JSON(http.StatusOK, selectionResponse(snap))
}

// ClearSelection godoc
// @Summary     Cancel selection mode
// @Tags        selection
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SelectionResponse
// @Router      /admin/selection [delete]
func (h *AdminHandler) ClearSelection(c *gin.Context) {
	snap := h.selections.Update(middleware.AdminSessionID(c), func(s *admin.Selection) {
		s.SetMode(false)
	})
	c.JSON(http.StatusOK, selectionResponse(snap))
}

func selectionResponse(snap admin.Snapshot) models.SelectionResponse {
	return models.SelectionResponse{Enabled: snap.Enabled, IDs: snap.IDs}
}
