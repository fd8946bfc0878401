package models

import "time"

type ImageResponse struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Category  string    `json:"category"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ImageListResponse struct {
	Images []ImageResponse `json:"images"`
}

// MutationResponse is returned by every admin write. Images is the list
// re-fetched after the write, not a locally patched copy.
type MutationResponse struct {
	Message string          `json:"message"`
	Image   *ImageResponse  `json:"image,omitempty"`
	Images  []ImageResponse `json:"images"`
}

type BatchResponse struct {
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Errors    []BatchError    `json:"errors,omitempty"`
	Images    []ImageResponse `json:"images"`
}

type BatchError struct {
	Item  string `json:"item"`
	Error string `json:"error"`
}

type GalleryItemResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Category string `json:"category"`
	Title    string `json:"title,omitempty"`
	Alt      string `json:"alt"`
}

type GalleryResponse struct {
	Category string                `json:"category,omitempty"`
	Items    []GalleryItemResponse `json:"items"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// ProgressEvent is streamed before each item of a bulk operation.
type ProgressEvent struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type SelectionResponse struct {
	Enabled bool     `json:"enabled"`
	IDs     []string `json:"ids"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	Studio     string `json:"studio"`
	Categories int    `json:"categories"`
}

func NewImageResponse(img PortfolioImage) ImageResponse {
	return ImageResponse{
		ID:        img.ID,
		ImageURL:  img.ImageURL,
		Category:  img.Category,
		Title:     img.TitleOrEmpty(),
		CreatedAt: img.CreatedAt,
	}
}

func NewImageListResponse(images []PortfolioImage) []ImageResponse {
	out := make([]ImageResponse, len(images))
	for i, img := range images {
		out[i] = NewImageResponse(img)
	}
	return out
}
