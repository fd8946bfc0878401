package server_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"frames-studio/internal/admin"
	"frames-studio/internal/auth"
	"frames-studio/internal/gallery"
	"frames-studio/internal/metrics"
	"frames-studio/internal/models"
	"frames-studio/internal/server"
	"frames-studio/internal/services"
)

type memoryRepo struct {
	mu       sync.Mutex
	rows     map[string]models.PortfolioImage
	seq      int
	clock    time.Time
	failList bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		rows:  map[string]models.PortfolioImage{},
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *memoryRepo) seed(category string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		img, _ := r.InsertImage(context.Background(), models.NewPortfolioImage{
			ImageURL: fmt.Sprintf("https://cdn.example/portfolio/seed-%d.jpg", r.seq+1),
			Category: category,
		})
		ids[i] = img.ID
	}
	return ids
}

func (r *memoryRepo) ListImages(_ context.Context, filter models.ImageFilter) ([]models.PortfolioImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failList {
		return nil, errors.New("connection refused")
	}
	out := make([]models.PortfolioImage, 0, len(r.rows))
	for _, row := range r.rows {
		if filter.Category == "" || row.Category == filter.Category {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *memoryRepo) GetImage(_ context.Context, id string) (*models.PortfolioImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &row, nil
}

func (r *memoryRepo) InsertImage(_ context.Context, in models.NewPortfolioImage) (*models.PortfolioImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.clock = r.clock.Add(time.Hour)
	row := models.PortfolioImage{
		ID:        fmt.Sprintf("img-%02d", r.seq),
		ImageURL:  in.ImageURL,
		Category:  in.Category,
		Title:     in.Title,
		CreatedAt: r.clock,
	}
	r.rows[row.ID] = row
	return &row, nil
}

func (r *memoryRepo) UpdateImage(_ context.Context, id string, upd models.ImageUpdate) (*models.PortfolioImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	row.Category = upd.Category
	row.Title = upd.Title
	r.rows[id] = row
	return &row, nil
}

func (r *memoryRepo) DeleteImage(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *memoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (s *memoryStorage) Upload(_ context.Context, path string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = data
	return "https://cdn.example/storage/v1/object/public/portfolio/" + path, nil
}

func (s *memoryStorage) Remove(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, path)
	return nil
}

type testServer struct {
	repo     *memoryRepo
	storage  *memoryStorage
	sessions *auth.Manager
	tokens   *auth.TokenIssuer
	deps     server.Deps
}

const adminPassword = "letmein"

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)
	entry := logrus.NewEntry(log)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	repo := newMemoryRepo()
	storage := &memoryStorage{objects: map[string][]byte{}}
	sessions := auth.NewManager("test-session-secret", false)
	tokens := auth.NewTokenIssuer(sessions.SigningKey())

	return &testServer{
		repo:     repo,
		storage:  storage,
		sessions: sessions,
		tokens:   tokens,
		deps: server.Deps{
			Log:        entry,
			Metrics:    m,
			Gatherer:   reg,
			Gallery:    gallery.NewAdapter(repo, entry, m),
			Portfolio:  services.NewPortfolioService(storage, repo, entry, m, 0),
			Gate:       auth.NewGate(adminPassword),
			Sessions:   sessions,
			Tokens:     tokens,
			Selections: admin.NewSelectionStore(),
			IntervalMs: 4000,
		},
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}
