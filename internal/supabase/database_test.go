package supabase_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frames-studio/internal/models"
	"frames-studio/internal/supabase"
)

var imageRowColumns = []string{"id", "image_url", "category", "title", "created_at"}

const rowID = "3f0c9a52-5d1e-4b7a-9c43-2e8f6a1d7b90"

func TestDatabaseClient_ListImages_FilterAndLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	newer := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows(imageRowColumns).
		AddRow("b", "https://cdn/b.jpg", "Wedding", "Vows", newer).
		AddRow("a", "https://cdn/a.jpg", "Wedding", nil, older)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, image_url, category, title, created_at FROM portfolio_images WHERE category = $1 ORDER BY created_at DESC LIMIT $2")).
		WithArgs("Wedding", 2).
		WillReturnRows(rows)

	client := supabase.NewDatabaseClientFromDB(db)
	images, err := client.ListImages(context.Background(), models.ImageFilter{Category: "Wedding", Limit: 2})
	require.NoError(t, err)
	require.Len(t, images, 2)

	assert.Equal(t, "b", images[0].ID)
	assert.Equal(t, "Vows", images[0].TitleOrEmpty())
	assert.Nil(t, images[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseClient_ListImages_NoFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, image_url, category, title, created_at FROM portfolio_images ORDER BY created_at DESC")).
		WithArgs().
		WillReturnRows(sqlmock.NewRows(imageRowColumns))

	client := supabase.NewDatabaseClientFromDB(db)
	images, err := client.ListImages(context.Background(), models.ImageFilter{})
	require.NoError(t, err)
	assert.NotNil(t, images)
	assert.Len(t, images, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseClient_GetImage_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM portfolio_images WHERE id = \\$1").
		WithArgs(rowID).
		WillReturnError(sql.ErrNoRows)

	client := supabase.NewDatabaseClientFromDB(db)
	_, err = client.GetImage(context.Background(), rowID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDatabaseClient_InsertImage_StoresNullTitle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO portfolio_images").
		WithArgs("https://cdn/x.jpg", "Candid", sql.NullString{}).
		WillReturnRows(sqlmock.NewRows(imageRowColumns).
			AddRow("x", "https://cdn/x.jpg", "Candid", nil, created))

	client := supabase.NewDatabaseClientFromDB(db)
	img, err := client.InsertImage(context.Background(), models.NewPortfolioImage{
		ImageURL: "https://cdn/x.jpg",
		Category: "Candid",
		Title:    models.NullableTitle(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "x", img.ID)
	assert.Equal(t, created, img.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseClient_UpdateImage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("UPDATE portfolio_images").
		WithArgs("Birthday", sql.NullString{String: "Cake", Valid: true}, rowID).
		WillReturnRows(sqlmock.NewRows(imageRowColumns).
			AddRow(rowID, "https://cdn/x.jpg", "Birthday", "Cake", time.Now()))

	client := supabase.NewDatabaseClientFromDB(db)
	img, err := client.UpdateImage(context.Background(), rowID, models.ImageUpdate{
		Category: "Birthday",
		Title:    models.NullableTitle("Cake"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Birthday", img.Category)
	assert.Equal(t, "https://cdn/x.jpg", img.ImageURL)
}

func TestDatabaseClient_UpdateImage_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("UPDATE portfolio_images").
		WillReturnRows(sqlmock.NewRows(imageRowColumns))

	client := supabase.NewDatabaseClientFromDB(db)
	_, err = client.UpdateImage(context.Background(), rowID, models.ImageUpdate{Category: "Wedding"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDatabaseClient_DeleteImage_MissingRowIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM portfolio_images").
		WithArgs(rowID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	client := supabase.NewDatabaseClientFromDB(db)
	assert.NoError(t, client.DeleteImage(context.Background(), rowID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseClient_DeleteImage_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM portfolio_images").
		WithArgs(rowID).
		WillReturnError(assert.AnError)

	client := supabase.NewDatabaseClientFromDB(db)
	err = client.DeleteImage(context.Background(), rowID)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDatabaseClient_MalformedIDIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := supabase.NewDatabaseClientFromDB(db)

	_, err = client.GetImage(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = client.UpdateImage(context.Background(), "not-a-uuid", models.ImageUpdate{Category: "Wedding"})
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.NoError(t, client.DeleteImage(context.Background(), "not-a-uuid"))
	assert.NoError(t, mock.ExpectationsWereMet(), "no query reaches the database")
}
