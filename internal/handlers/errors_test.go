package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frames-studio/internal/imageprep"
	"frames-studio/internal/models"
	"frames-studio/internal/services"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing file", services.ErrMissingFile, http.StatusBadRequest},
		{"wrapped category", fmt.Errorf("upload: %w", services.ErrInvalidCategory), http.StatusBadRequest},
		{"nothing selected", services.ErrNothingSelected, http.StatusBadRequest},
		{"not an image", fmt.Errorf("prepare: %w", imageprep.ErrNotAnImage), http.StatusBadRequest},
		{"not found", services.ErrImageNotFound, http.StatusNotFound},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func TestRespondError_AttachesServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, "failed to list images", errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, c.Errors, 1)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "failed to list images", body.Error)
	assert.Equal(t, "connection reset", body.Message)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	respondError(c, "invalid upload", services.ErrMissingFile)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, c.Errors)
}
