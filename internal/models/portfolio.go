package models

import "time"

// Categories is the fixed set of portfolio categories, in display order.
var Categories = []string{
	"Wedding",
	"Pre-Wedding",
	"Engagement",
	"Candid",
	"Birthday",
	"Couple Portraits",
	"Naming Ceremony",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// PortfolioImage is one row of the portfolio_images table.
type PortfolioImage struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Category  string    `json:"category"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func (p PortfolioImage) TitleOrEmpty() string {
	if p.Title == nil {
		return ""
	}
	return *p.Title
}

// NewPortfolioImage is the insert payload. ID and CreatedAt are assigned by the store.
type NewPortfolioImage struct {
	ImageURL string  `json:"image_url"`
	Category string  `json:"category"`
	Title    *string `json:"title"`
}

// ImageUpdate carries the mutable fields of a row.
type ImageUpdate struct {
	Category string  `json:"category"`
	Title    *string `json:"title"`
}

// ImageFilter selects rows. Empty Category means all categories, Limit <= 0 means no limit.
type ImageFilter struct {
	Category string
	Limit    int
}

// NullableTitle turns an empty title into nil so it is stored as NULL.
func NullableTitle(title string) *string {
	if title == "" {
		return nil
	}
	return &title
}
