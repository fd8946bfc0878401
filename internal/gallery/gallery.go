// Package gallery turns stored portfolio rows into display items for the
// public pages. It never returns an error: a failed fetch is logged and
// rendered as an empty gallery.
package gallery

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"frames-studio/internal/metrics"
	"frames-studio/internal/models"
)

// Lister is the read side of the record store.
type Lister interface {
	ListImages(ctx context.Context, filter models.ImageFilter) ([]models.PortfolioImage, error)
}

type Item struct {
	ID       string
	ImageURL string
	Category string
	Title    string
	Alt      string
}

type Adapter struct {
	store   Lister
	log     *logrus.Entry
	metrics *metrics.Metrics
}

func NewAdapter(store Lister, log *logrus.Entry, m *metrics.Metrics) *Adapter {
	return &Adapter{store: store, log: log, metrics: m}
}

// Fetch returns up to limit items of category, newest first. An empty
// category means every category; limit <= 0 means no limit.
func (a *Adapter) Fetch(ctx context.Context, category string, limit int) []Item {
	rows, err := a.store.ListImages(ctx, models.ImageFilter{Category: category, Limit: limit})
	if err != nil {
		a.log.WithError(err).WithField("category", category).Warn("failed to fetch gallery images")
		a.metrics.ObserveGalleryFetch(false)
		return []Item{}
	}
	a.metrics.ObserveGalleryFetch(true)

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		if category != "" && row.Category != category {
			continue
		}
		if row.ImageURL == "" || !models.IsValidCategory(row.Category) {
			a.log.WithFields(logrus.Fields{
				"id":       row.ID,
				"category": row.Category,
			}).Warn("skipping portfolio row that cannot be displayed")
			continue
		}
		items = append(items, toItem(row))
		if limit > 0 && len(items) == limit {
			break
		}
	}
	return items
}

// URLs is a convenience for templates that only need the image sources.
func URLs(items []Item) []string {
	urls := make([]string, len(items))
	for i, item := range items {
		urls[i] = item.ImageURL
	}
	return urls
}

func toItem(row models.PortfolioImage) Item {
	title := row.TitleOrEmpty()
	alt := title
	if alt == "" {
		alt = row.Category + " Photography"
	}
	return Item{
		ID:       row.ID,
		ImageURL: row.ImageURL,
		Category: row.Category,
		Title:    title,
		Alt:      alt,
	}
}
