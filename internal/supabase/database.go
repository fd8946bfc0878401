package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"frames-studio/internal/models"
)

// DatabaseClient talks to the Supabase Postgres instance directly.
type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// NewDatabaseClientFromDB wraps an already opened handle.
func NewDatabaseClientFromDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

const imageColumns = "id, image_url, category, title, created_at"

func (d *DatabaseClient) ListImages(ctx context.Context, filter models.ImageFilter) ([]models.PortfolioImage, error) {
	var (
		query strings.Builder
		args  []interface{}
	)
	query.WriteString("SELECT " + imageColumns + " FROM portfolio_images")
	if filter.Category != "" {
		args = append(args, filter.Category)
		fmt.Fprintf(&query, " WHERE category = $%d", len(args))
	}
	query.WriteString(" ORDER BY created_at DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&query, " LIMIT $%d", len(args))
	}

	rows, err := d.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	images := make([]models.PortfolioImage, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, *img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	return images, nil
}

func (d *DatabaseClient) GetImage(ctx context.Context, id string) (*models.PortfolioImage, error) {
	if !validID(id) {
		return nil, models.ErrNotFound
	}

	row := d.db.QueryRowContext(ctx, `
		SELECT `+imageColumns+`
		FROM portfolio_images
		WHERE id = $1
	`, id)

	img, err := scanImage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return img, nil
}

func (d *DatabaseClient) InsertImage(ctx context.Context, in models.NewPortfolioImage) (*models.PortfolioImage, error) {
	row := d.db.QueryRowContext(ctx, `
		INSERT INTO portfolio_images (image_url, category, title)
		VALUES ($1, $2, $3)
		RETURNING `+imageColumns,
		in.ImageURL, in.Category, nullString(in.Title))

	img, err := scanImage(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert image: %w", err)
	}
	return img, nil
}

func (d *DatabaseClient) UpdateImage(ctx context.Context, id string, upd models.ImageUpdate) (*models.PortfolioImage, error) {
	if !validID(id) {
		return nil, models.ErrNotFound
	}

	row := d.db.QueryRowContext(ctx, `
		UPDATE portfolio_images
		SET category = $1, title = $2
		WHERE id = $3
		RETURNING `+imageColumns,
		upd.Category, nullString(upd.Title), id)

	img, err := scanImage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update image: %w", err)
	}
	return img, nil
}

// DeleteImage removes the row. Deleting a missing id is not an error.
func (d *DatabaseClient) DeleteImage(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := d.db.ExecContext(ctx, `
		DELETE FROM portfolio_images
		WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanImage(s scanner) (*models.PortfolioImage, error) {
	var (
		img   models.PortfolioImage
		title sql.NullString
	)
	if err := s.Scan(&img.ID, &img.ImageURL, &img.Category, &title, &img.CreatedAt); err != nil {
		return nil, err
	}
	if title.Valid {
		img.Title = &title.String
	}
	return &img, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
