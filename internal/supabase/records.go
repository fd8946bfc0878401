package supabase

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"frames-studio/internal/models"
)

const imagesTable = "portfolio_images"

// RecordClient reads and writes portfolio rows through the PostgREST API.
// It is used when no direct DATABASE_URL is configured.
type RecordClient struct {
	client *Client
}

func NewRecordClient(client *Client) *RecordClient {
	return &RecordClient{client: client}
}

func (r *RecordClient) ListImages(ctx context.Context, filter models.ImageFilter) ([]models.PortfolioImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := r.client.Supabase.From(imagesTable).Select("*", "", false)
	if filter.Category != "" {
		query = query.Eq("category", filter.Category)
	}
	query = query.Order("created_at", &postgrest.OrderOpts{Ascending: false})
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit, "")
	}

	images := make([]models.PortfolioImage, 0)
	if _, err := query.ExecuteTo(&images); err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return images, nil
}

func (r *RecordClient) GetImage(ctx context.Context, id string) (*models.PortfolioImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, models.ErrNotFound
	}

	var rows []models.PortfolioImage
	_, err := r.client.Supabase.From(imagesTable).
		Select("*", "", false).
		Eq("id", id).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	if len(rows) == 0 {
		return nil, models.ErrNotFound
	}
	return &rows[0], nil
}

func (r *RecordClient) InsertImage(ctx context.Context, in models.NewPortfolioImage) (*models.PortfolioImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []models.PortfolioImage
	_, err := r.client.Supabase.From(imagesTable).
		Insert(in, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to insert image: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to insert image: empty response")
	}
	return &rows[0], nil
}

func (r *RecordClient) UpdateImage(ctx context.Context, id string, upd models.ImageUpdate) (*models.PortfolioImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, models.ErrNotFound
	}

	var rows []models.PortfolioImage
	_, err := r.client.Supabase.From(imagesTable).
		Update(upd, "representation", "").
		Eq("id", id).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to update image: %w", err)
	}
	if len(rows) == 0 {
		return nil, models.ErrNotFound
	}
	return &rows[0], nil
}

// DeleteImage removes the row. PostgREST reports success for a missing id.
func (r *RecordClient) DeleteImage(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validID(id) {
		return nil
	}

	_, _, err := r.client.Supabase.From(imagesTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
