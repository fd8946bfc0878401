package models

type LoginRequest struct {
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateImageRequest struct {
	Category string `json:"category" binding:"required,category"`
	// Empty title clears it.
	Title string `json:"title"`
}

type BulkDeleteRequest struct {
	// IDs to delete. When empty the session's current selection is used.
	IDs []string `json:"ids"`
}

type SelectionModeRequest struct {
	Enabled bool `json:"enabled"`
}

type ContactRequest struct {
	Name      string `form:"name" binding:"required,max=120"`
	Email     string `form:"email" binding:"required,email"`
	Phone     string `form:"phone" binding:"required,max=32"`
	EventDate string `form:"event_date" binding:"omitempty,datetime=2006-01-02"`
	Message   string `form:"message" binding:"required,max=4000"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
