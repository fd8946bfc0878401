package gallery_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frames-studio/internal/gallery"
	"frames-studio/internal/metrics"
	"frames-studio/internal/models"
)

type fakeLister struct {
	rows []models.PortfolioImage
	err  error
	got  models.ImageFilter
}

func (f *fakeLister) ListImages(_ context.Context, filter models.ImageFilter) ([]models.PortfolioImage, error) {
	f.got = filter
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.PortfolioImage, 0, len(f.rows))
	for _, r := range f.rows {
		if filter.Category == "" || r.Category == filter.Category {
			out = append(out, r)
		}
	}
	return out, nil
}

func quiet() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func row(id, category string, age time.Duration) models.PortfolioImage {
	return models.PortfolioImage{
		ID:        id,
		ImageURL:  "https://cdn.example/" + id + ".jpg",
		Category:  category,
		CreatedAt: base.Add(-age),
	}
}

func TestFetch_OrdersNewestFirst(t *testing.T) {
	store := &fakeLister{rows: []models.PortfolioImage{
		row("old", "Wedding", 3*time.Hour),
		row("new", "Candid", time.Hour),
		row("mid", "Wedding", 2*time.Hour),
	}}
	adapter := gallery.NewAdapter(store, quiet(), nil)

	items := adapter.Fetch(context.Background(), "", 0)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestFetch_FiltersCategory(t *testing.T) {
	store := &fakeLister{rows: []models.PortfolioImage{
		row("a", "Wedding", time.Hour),
		row("b", "Candid", 2*time.Hour),
		row("c", "Wedding", 3*time.Hour),
	}}
	adapter := gallery.NewAdapter(store, quiet(), nil)

	items := adapter.Fetch(context.Background(), "Wedding", 0)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, "Wedding", item.Category)
	}
	assert.Equal(t, "Wedding", store.got.Category)
}

func TestFetch_AppliesLimit(t *testing.T) {
	store := &fakeLister{rows: []models.PortfolioImage{
		row("a", "Candid", time.Hour),
		row("b", "Candid", 2*time.Hour),
		row("c", "Candid", 3*time.Hour),
	}}
	adapter := gallery.NewAdapter(store, quiet(), nil)

	items := adapter.Fetch(context.Background(), "Candid", 2)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, store.got.Limit)
}

func TestFetch_StoreErrorYieldsEmpty(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	adapter := gallery.NewAdapter(&fakeLister{err: assert.AnError}, quiet(), m)

	items := adapter.Fetch(context.Background(), "Birthday", 0)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GalleryFetches.WithLabelValues("failure")))
}

func TestFetch_DropsUndisplayableRows(t *testing.T) {
	broken := row("no-url", "Wedding", time.Hour)
	broken.ImageURL = ""
	store := &fakeLister{rows: []models.PortfolioImage{
		broken,
		row("legacy", "Weddings", time.Hour),
		row("ok", "Wedding", 2*time.Hour),
	}}
	adapter := gallery.NewAdapter(store, quiet(), nil)

	items := adapter.Fetch(context.Background(), "", 0)
	require.Len(t, items, 1)
	assert.Equal(t, "ok", items[0].ID)
}

func TestFetch_AltFallsBackToCategory(t *testing.T) {
	titled := row("t", "Engagement", time.Hour)
	title := "Ring exchange"
	titled.Title = &title
	store := &fakeLister{rows: []models.PortfolioImage{titled, row("u", "Engagement", 2*time.Hour)}}
	adapter := gallery.NewAdapter(store, quiet(), nil)

	items := adapter.Fetch(context.Background(), "Engagement", 0)
	require.Len(t, items, 2)
	assert.Equal(t, "Ring exchange", items[0].Alt)
	assert.Equal(t, "Engagement Photography", items[1].Alt)
	assert.Equal(t, []string{items[0].ImageURL, items[1].ImageURL}, gallery.URLs(items))
}
