package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"frames-studio/internal/admin"
	"frames-studio/internal/auth"
	"frames-studio/internal/middleware"
	"frames-studio/internal/models"
	"frames-studio/internal/services"
)

const maxUploadMemory = 32 << 20

type AdminHandler struct {
	service    *services.PortfolioService
	gate       *auth.Gate
	sessions   *auth.Manager
	tokens     *auth.TokenIssuer
	selections *admin.SelectionStore
	log        *logrus.Entry
}

func NewAdminHandler(
	service *services.PortfolioService,
	gate *auth.Gate,
	sessions *auth.Manager,
	tokens *auth.TokenIssuer,
	selections *admin.SelectionStore,
	log *logrus.Entry,
) *AdminHandler {
	return &AdminHandler{
		service:    service,
		gate:       gate,
		sessions:   sessions,
		tokens:     tokens,
		selections: selections,
		log:        log,
	}
}

// Login godoc
// @Summary     Admin login
// @Description Checks the shared admin password. On success sets the session cookie and returns a bearer token.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Admin password"
// @Success     200 {object} models.LoginResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	if !h.gate.Check(req.Password) {
		h.log.WithField("client", c.ClientIP()).Warn("admin login failed")
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid password"})
		return
	}

	if _, err := h.sessions.Login(c.Writer, c.Request); err != nil {
		respondError(c, "failed to start session", err)
		return
	}

	token, _, err := h.tokens.Issue()
	if err != nil {
		respondError(c, "failed to issue token", err)
		return
	}

	h.log.WithField("client", c.ClientIP()).Info("admin logged in")
	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}

// Logout godoc
// @Summary     Admin logout
// @Description Destroys the admin session and its selection
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.MutationResponse
// @Router      /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	h.selections.Drop(middleware.AdminSessionID(c))
	if sid, err := h.sessions.Logout(c.Writer, c.Request); err == nil && sid != "" {
		h.selections.Drop(sid)
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// ListImages godoc
// @Summary     List all portfolio images
// @Description Returns every image newest first. Unlike the public endpoint, store errors are reported.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ImageListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/images [get]
func (h *AdminHandler) ListImages(c *gin.Context) {
	images, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, "failed to list images", err)
		return
	}
	c.JSON(http.StatusOK, models.ImageListResponse{Images: models.NewImageListResponse(images)})
}

// UploadImage godoc
// @Summary     Upload one image
// @Description Stores the image binary then its record. If the record cannot be saved the binary is removed again.
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       image    formData file   true  "Image file"
// @Param       category formData string true  "Portfolio category"
// @Param       title    formData string false "Optional title"
// @Success     201 {object} models.MutationResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/images [post]
func (h *AdminHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no file uploaded",
			Message: "please provide the image in the \"image\" field",
		})
		return
	}

	data, err := readFile(fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read file",
			Message: err.Error(),
		})
		return
	}

	img, err := h.service.Upload(c.Request.Context(), services.UploadInput{
		Filename: fileHeader.Filename,
		Data:     data,
		Category: c.PostForm("category"),
		Title:    c.PostForm("title"),
	})
	if err != nil {
		respondError(c, "failed to upload image", err)
		return
	}

	resp := models.NewImageResponse(*img)
	c.JSON(http.StatusCreated, models.MutationResponse{
		Message: "image uploaded",
		Image:   &resp,
		Images:  h.refetch(c),
	})
}

// BulkUpload godoc
// @Summary     Upload many images
// @Description Uploads the files one at a time under a shared category. Failed files are counted and reported; the rest still upload.
// @Description With "Accept: text/event-stream" the response is a stream of "progress" events followed by one "result" event.
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json,event-stream
// @Security    Bearer
// @Param       images   formData file   true "Image files (multiple allowed)"
// @Param       category formData string true "Portfolio category for every file"
// @Success     200 {object} models.BatchResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /admin/images/bulk [post]
func (h *AdminHandler) BulkUpload(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}

	form := c.Request.MultipartForm
	var headers []*multipart.FileHeader
	for _, field := range []string{"images", "images[]"} {
		if f := form.File[field]; len(f) > 0 {
			headers = f
			break
		}
	}

	files := make([]services.UploadFile, len(headers))
	for i, fh := range headers {
		data, err := readFile(fh)
		if err != nil {
			h.log.WithError(err).WithField("file", fh.Filename).Warn("failed to read uploaded file")
		}
		files[i] = services.UploadFile{Filename: fh.Filename, Data: data}
	}

	category := c.PostForm("category")
	progress := h.progressReporter(c, "bulk upload", h.log.WithField("category", category))
	result, err := h.service.BulkUpload(c.Request.Context(), files, category, progress)
	if err != nil {
		respondError(c, "bulk upload rejected", err)
		return
	}

	h.respondBatch(c, result)
}

// UpdateImage godoc
// @Summary     Update image metadata
// @Description Changes the category and title of an image. The stored file is not touched.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path string                     true "Image ID"
// @Param       request body models.UpdateImageRequest  true "New metadata"
// @Success     200 {object} models.MutationResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/images/{id} [patch]
func (h *AdminHandler) UpdateImage(c *gin.Context) {
	var req models.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	img, err := h.service.Update(c.Request.Context(), c.Param("id"), req.Category, req.Title)
	if err != nil {
		respondError(c, "failed to update image", err)
		return
	}

	resp := models.NewImageResponse(*img)
	c.JSON(http.StatusOK, models.MutationResponse{
		Message: "image updated",
		Image:   &resp,
		Images:  h.refetch(c),
	})
}

// DeleteImage godoc
// @Summary     Delete an image
// @Description Removes the stored file and the record. A file that cannot be removed does not block the record delete.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Image ID"
// @Success     200 {object} models.MutationResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/images/{id} [delete]
func (h *AdminHandler) DeleteImage(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "failed to delete image", err)
		return
	}

	h.selections.Update(middleware.AdminSessionID(c), func(s *admin.Selection) {
		if s.Contains(id) {
			s.Toggle(id)
		}
	})

	c.JSON(http.StatusOK, models.MutationResponse{
		Message: "image deleted",
		Images:  h.refetch(c),
	})
}

// BulkDelete godoc
// @Summary     Delete many images
// @Description Deletes the given ids, or the session's selection when none are given, one at a time in list order. The selection is cleared afterwards.
// @Description With "Accept: text/event-stream" the response is a stream of "progress" events followed by one "result" event.
// @Tags        admin
// @Accept      json
// @Produce     json,event-stream
// @Security    Bearer
// @Param       request body models.BulkDeleteRequest false "Image IDs"
// @Success     200 {object} models.BatchResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/images/bulk-delete [post]
func (h *AdminHandler) BulkDelete(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	sid := middleware.AdminSessionID(c)
	ids := req.IDs
	if len(ids) == 0 {
		ids = h.selections.Get(sid).IDs
	}

	result, err := h.service.BulkDelete(c.Request.Context(), ids, h.progressReporter(c, "bulk delete", h.log))
	if err != nil {
		respondError(c, "bulk delete rejected", err)
		return
	}

	h.selections.Update(sid, func(s *admin.Selection) { s.SetMode(false) })
	h.respondBatch(c, result)
}

// wantsEventStream reports whether the client asked for progress events
// instead of a single JSON body.
func wantsEventStream(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/event-stream")
}

// progressReporter logs every step of a batch. Event-stream clients also get
// a "progress" event per item. Batches validate before the first step, so an
// error response is never mixed into a started stream.
func (h *AdminHandler) progressReporter(c *gin.Context, operation string, log *logrus.Entry) func(services.Progress) {
	stream := wantsEventStream(c)
	return func(p services.Progress) {
		log.WithFields(logrus.Fields{"current": p.Current, "total": p.Total}).Debug(operation + " progress")
		if stream {
			c.SSEvent("progress", models.ProgressEvent{Current: p.Current, Total: p.Total})
			c.Writer.Flush()
		}
	}
}

// respondBatch sends the batch outcome as JSON, or as the final "result"
// event of a progress stream.
func (h *AdminHandler) respondBatch(c *gin.Context, result *services.BatchResult) {
	resp := h.batchResponse(c, result)
	if !wantsEventStream(c) {
		c.JSON(http.StatusOK, resp)
		return
	}
	c.SSEvent("result", resp)
	c.Writer.Flush()
}

// refetch reloads the full list after a write. A failed reload is logged and
// reported as an empty list; the write itself already succeeded.
func (h *AdminHandler) refetch(c *gin.Context) []models.ImageResponse {
	images, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Warn("failed to reload images after write")
		return []models.ImageResponse{}
	}
	return models.NewImageListResponse(images)
}

func (h *AdminHandler) batchResponse(c *gin.Context, result *services.BatchResult) models.BatchResponse {
	resp := models.BatchResponse{
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Images:    h.refetch(c),
	}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, models.BatchError{Item: e.Item, Error: e.Err.Error()})
	}
	return resp
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file data: %w", err)
	}
	return data, nil
}
