package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"frames-studio/internal/imageprep"
	"frames-studio/internal/metrics"
	"frames-studio/internal/models"
)

// StoragePrefix is the folder inside the bucket that holds portfolio images.
const StoragePrefix = "portfolio/"

var (
	ErrMissingFile     = errors.New("an image file is required")
	ErrNoFiles         = errors.New("at least one image file is required")
	ErrInvalidCategory = errors.New("category is not one of the portfolio categories")
	ErrImageNotFound   = errors.New("image not found")
	ErrNothingSelected = errors.New("no images selected")
)

// ObjectStorage stores image binaries.
type ObjectStorage interface {
	Upload(ctx context.Context, storagePath string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, storagePath string) error
}

// ImageRepository stores image metadata rows.
type ImageRepository interface {
	ListImages(ctx context.Context, filter models.ImageFilter) ([]models.PortfolioImage, error)
	GetImage(ctx context.Context, id string) (*models.PortfolioImage, error)
	InsertImage(ctx context.Context, in models.NewPortfolioImage) (*models.PortfolioImage, error)
	UpdateImage(ctx context.Context, id string, upd models.ImageUpdate) (*models.PortfolioImage, error)
	DeleteImage(ctx context.Context, id string) error
}

type UploadInput struct {
	Filename string
	Data     []byte
	Category string
	Title    string
}

type UploadFile struct {
	Filename string
	Data     []byte
}

// Progress is reported before each item of a batch is processed.
type Progress struct {
	Current int
	Total   int
}

type ItemError struct {
	Item string
	Err  error
}

// BatchResult summarises a bulk operation. Partial success is a normal outcome.
type BatchResult struct {
	Succeeded int
	Failed    int
	Errors    []ItemError
}

func (r *BatchResult) record(item string, err error) {
	if err == nil {
		r.Succeeded++
		return
	}
	r.Failed++
	r.Errors = append(r.Errors, ItemError{Item: item, Err: err})
}

// PortfolioService manages portfolio images for the admin dashboard.
// Batches run one item at a time, in order.
type PortfolioService struct {
	storage      ObjectStorage
	repo         ImageRepository
	log          *logrus.Entry
	metrics      *metrics.Metrics
	maxDimension int

	now      func() time.Time
	suffix   func() string
	backoffs []time.Duration
}

func NewPortfolioService(
	storage ObjectStorage,
	repo ImageRepository,
	log *logrus.Entry,
	m *metrics.Metrics,
	maxDimension int,
) *PortfolioService {
	return &PortfolioService{
		storage:      storage,
		repo:         repo,
		log:          log,
		metrics:      m,
		maxDimension: maxDimension,
		now:          time.Now,
		suffix:       randomSuffix,
		backoffs:     defaultBackoffs,
	}
}

// List returns every image, newest first. Unlike the public gallery, errors
// are returned so the dashboard can show them.
func (s *PortfolioService) List(ctx context.Context) ([]models.PortfolioImage, error) {
	images, err := s.repo.ListImages(ctx, models.ImageFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return images, nil
}

func (s *PortfolioService) Upload(ctx context.Context, in UploadInput) (*models.PortfolioImage, error) {
	if len(in.Data) == 0 {
		return nil, ErrMissingFile
	}
	if !models.IsValidCategory(in.Category) {
		return nil, ErrInvalidCategory
	}

	img, err := s.store(ctx, in.Filename, in.Data, in.Category, models.NullableTitle(strings.TrimSpace(in.Title)))
	s.metrics.ObserveAssetOperation("upload", err == nil)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"id": img.ID, "category": img.Category}).Info("image uploaded")
	return img, nil
}

// BulkUpload stores files under one shared category. A failing file is
// counted and the rest of the queue still runs.
func (s *PortfolioService) BulkUpload(ctx context.Context, files []UploadFile, category string, progress func(Progress)) (*BatchResult, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if !models.IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	if progress == nil {
		progress = func(Progress) {}
	}

	result := &BatchResult{}
	for i, file := range files {
		progress(Progress{Current: i + 1, Total: len(files)})

		var err error
		if len(file.Data) == 0 {
			err = ErrMissingFile
		} else {
			_, err = s.store(ctx, file.Filename, file.Data, category, nil)
		}
		if err != nil {
			s.log.WithError(err).WithField("file", file.Filename).Warn("bulk upload item failed")
		}
		s.metrics.ObserveAssetOperation("bulk_upload_item", err == nil)
		result.record(file.Filename, err)
	}

	s.log.WithFields(logrus.Fields{
		"category":  category,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	}).Info("bulk upload finished")
	return result, nil
}

// Update changes category and title. The stored binary and its URL are never touched.
func (s *PortfolioService) Update(ctx context.Context, id, category, title string) (*models.PortfolioImage, error) {
	if !models.IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	img, err := s.repo.UpdateImage(ctx, id, models.ImageUpdate{
		Category: category,
		Title:    models.NullableTitle(strings.TrimSpace(title)),
	})
	s.metrics.ObserveAssetOperation("update", err == nil)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update image: %w", err)
	}
	return img, nil
}

func (s *PortfolioService) Delete(ctx context.Context, id string) error {
	img, err := s.repo.GetImage(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return ErrImageNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	err = s.remove(ctx, *img)
	s.metrics.ObserveAssetOperation("delete", err == nil)
	return err
}

// BulkDelete removes the selected images in list order. Ids that are not in
// the current list are reported as failures.
func (s *PortfolioService) BulkDelete(ctx context.Context, ids []string, progress func(Progress)) (*BatchResult, error) {
	if len(ids) == 0 {
		return nil, ErrNothingSelected
	}
	if progress == nil {
		progress = func(Progress) {}
	}

	images, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	targets := make([]models.PortfolioImage, 0, len(ids))
	for _, img := range images {
		if wanted[img.ID] {
			targets = append(targets, img)
			delete(wanted, img.ID)
		}
	}
	var missing []string
	for _, id := range ids {
		if wanted[id] {
			missing = append(missing, id)
			delete(wanted, id)
		}
	}

	total := len(targets) + len(missing)
	result := &BatchResult{}
	for i, img := range targets {
		progress(Progress{Current: i + 1, Total: total})

		err := s.remove(ctx, img)
		if err != nil {
			s.log.WithError(err).WithField("id", img.ID).Warn("bulk delete item failed")
		}
		s.metrics.ObserveAssetOperation("bulk_delete_item", err == nil)
		result.record(img.ID, err)
	}
	for i, id := range missing {
		progress(Progress{Current: len(targets) + i + 1, Total: total})
		result.record(id, ErrImageNotFound)
	}

	s.log.WithFields(logrus.Fields{
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	}).Info("bulk delete finished")
	return result, nil
}

// store uploads the binary then inserts the row. When the insert fails the
// uploaded object is removed again, retrying with backoff.
func (s *PortfolioService) store(ctx context.Context, filename string, data []byte, category string, title *string) (*models.PortfolioImage, error) {
	prepared, err := imageprep.Prepare(data, s.maxDimension)
	if err != nil {
		return nil, fmt.Errorf("invalid image %q: %w", filename, err)
	}

	storagePath := StoragePrefix + s.objectName(filename, prepared.Extension)
	publicURL, err := s.storage.Upload(ctx, storagePath, prepared.Data, prepared.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	img, err := s.repo.InsertImage(ctx, models.NewPortfolioImage{
		ImageURL: publicURL,
		Category: category,
		Title:    title,
	})
	if err == nil {
		return img, nil
	}

	insertErr := fmt.Errorf("failed to save image record: %w", err)
	entry := s.log.WithField("path", storagePath)

	// The request context may already be done; compensation should still run.
	cleanupCtx := context.WithoutCancel(ctx)
	rmErr := retryWithBackoff(cleanupCtx, s.backoffs, func() error {
		return s.storage.Remove(cleanupCtx, storagePath)
	})
	if rmErr != nil {
		entry.WithError(rmErr).Error("failed to remove upload after insert failure, object is orphaned")
		return nil, errors.Join(insertErr, fmt.Errorf("failed to remove orphaned upload %s: %w", storagePath, rmErr))
	}
	entry.Warn("removed upload after insert failure")
	return nil, insertErr
}

// remove deletes the stored object then the row. A missing or undeletable
// object does not block the row delete.
func (s *PortfolioService) remove(ctx context.Context, img models.PortfolioImage) error {
	if storagePath := ObjectPath(img.ImageURL); storagePath != "" {
		if err := s.storage.Remove(ctx, storagePath); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"id":   img.ID,
				"path": storagePath,
			}).Warn("failed to remove stored object, deleting record anyway")
		}
	}

	if err := s.repo.DeleteImage(ctx, img.ID); err != nil {
		return fmt.Errorf("failed to delete image record: %w", err)
	}
	return nil
}

func (s *PortfolioService) objectName(filename, detectedExt string) string {
	ext := detectedExt
	if ext == "" {
		ext = strings.ToLower(path.Ext(filename))
	}
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), s.suffix(), ext)
}

// ObjectPath maps a public image URL back to its storage path using the
// trailing path segment.
func ObjectPath(imageURL string) string {
	u := imageURL
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	name := u[strings.LastIndex(u, "/")+1:]
	if name == "" {
		return ""
	}
	return StoragePrefix + name
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
