package services

import (
	"context"
	"database/sql"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/upload"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/repository"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/storage"
	portal_errors "github.com/moshiurrahmandeap11/server-news-portal/pkg/errors"
	"github.com/moshiurrahmandeap11/server-news-portal/pkg/logger"

	"github.com/google/uuid"
)

// MaxMultipleFiles caps how many files one multiple-upload request may carry.
const MaxMultipleFiles = 10

// MixedFields are the form fields accepted by the mixed upload endpoint.
var MixedFields = []string{"avatar", "gallery", "documents", "videos"}

type UploadService struct {
	repo    repository.UploadRepository
	storage *storage.Manager
	logger  *logger.Logger
}

func NewUploadService(repo repository.UploadRepository, storage *storage.Manager, l *logger.Logger) *UploadService {
	return &UploadService{repo: repo, storage: storage, logger: l}
}

type UploadStats struct {
	TotalFiles         int64                     `json:"total_files"`
	ByCategory         map[upload.Category]int64 `json:"by_category"`
	TotalSizeBytes     int64                     `json:"total_size_bytes"`
	TotalSizeFormatted string                    `json:"total_size_formatted"`
}

// StoreSingle writes one file to disk and inserts its metadata row. When the
// insert fails the just-written file is removed again.
func (s *UploadService) StoreSingle(ctx context.Context, fh *multipart.FileHeader, uploadedBy uuid.NullUUID) (upload.UploadRecord, error) {
	return s.store(ctx, fh, uploadedBy, "")
}

// StoreMultiple stores up to MaxMultipleFiles files from one request. Files
// stored before a failure keep their rows; there is no cross-file rollback.
func (s *UploadService) StoreMultiple(ctx context.Context, fhs []*multipart.FileHeader, uploadedBy uuid.NullUUID) ([]upload.UploadRecord, error) {
	if len(fhs) == 0 {
		return nil, portal_errors.ErrNoFile
	}
	if len(fhs) > MaxMultipleFiles {
		return nil, fmt.Errorf("%w: at most %d files per request", portal_errors.ErrInvalidInput, MaxMultipleFiles)
	}

	records := make([]upload.UploadRecord, 0, len(fhs))
	for _, fh := range fhs {
		rec, err := s.store(ctx, fh, uploadedBy, "")
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// StoreMixed stores files from the categorized form fields, recording the
// field each file arrived under.
func (s *UploadService) StoreMixed(ctx context.Context, form map[string][]*multipart.FileHeader, uploadedBy uuid.NullUUID) ([]upload.UploadRecord, error) {
	var records []upload.UploadRecord
	for _, field := range MixedFields {
		for _, fh := range form[field] {
			rec, err := s.store(ctx, fh, uploadedBy, field)
			if err != nil {
				return records, err
			}
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, portal_errors.ErrNoFile
	}
	return records, nil
}

func (s *UploadService) store(ctx context.Context, fh *multipart.FileHeader, uploadedBy uuid.NullUUID, fieldName string) (upload.UploadRecord, error) {
	stored, err := s.storage.SaveUpload(fh)
	if err != nil {
		return upload.UploadRecord{}, err
	}

	rec := &upload.UploadRecord{
		ID:            uuid.New(),
		Filename:      stored.Filename,
		OriginalName:  stored.OriginalName,
		MimeType:      stored.MimeType,
		SizeBytes:     stored.SizeBytes,
		SizeFormatted: stored.SizeFormatted,
		Path:          stored.Path,
		URL:           stored.URL,
		Category:      stored.Category,
		UploadedBy:    uploadedBy,
		UploadedAt:    time.Now(),
	}
	if fieldName != "" {
		rec.FieldName = sql.NullString{String: fieldName, Valid: true}
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		// Compensate the disk write so a failed insert leaves no orphan.
		if rmErr := s.storage.Remove(stored.Path); rmErr != nil {
			s.logger.Errorf("failed to remove file after insert failure %s: %s", stored.Path, rmErr)
		}
		return upload.UploadRecord{}, err
	}

	return *rec, nil
}

// NormalizePaging clamps paging values to the supported range: page >= 1,
// limit between 1 and 100, defaulting to 20. Callers reporting pagination
// back to the client must echo these effective values, not the raw input.
func NormalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func (s *UploadService) List(ctx context.Context, category string, page, limit int) ([]upload.UploadRecord, int64, error) {
	var filter upload.Category
	if category != "" {
		filter = upload.Category(category)
		if !filter.Valid() {
			return nil, 0, fmt.Errorf("%w: unknown category %q", portal_errors.ErrInvalidInput, category)
		}
	}

	page, limit = NormalizePaging(page, limit)
	return s.repo.List(ctx, filter, page, limit)
}

func (s *UploadService) GetByID(ctx context.Context, id uuid.UUID) (upload.UploadRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes the metadata row first; the backing file is deleted
// afterward best-effort. A filesystem failure is logged, never surfaced,
// and does not roll back the row delete.
func (s *UploadService) Delete(ctx context.Context, id uuid.UUID) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Remove(rec.Path); err != nil {
		s.logger.Errorf("failed to delete file %s for upload %s: %s", rec.Path, id, err)
	}
	return nil
}

func (s *UploadService) Stats(ctx context.Context) (UploadStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return UploadStats{}, err
	}

	perCategory, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return UploadStats{}, err
	}
	byCategory := make(map[upload.Category]int64, len(upload.Categories))
	for _, c := range upload.Categories {
		byCategory[c] = 0
	}
	for _, stat := range perCategory {
		byCategory[stat.Category] = stat.Count
	}

	totalSize, err := s.repo.TotalSize(ctx)
	if err != nil {
		return UploadStats{}, err
	}

	return UploadStats{
		TotalFiles:         total,
		ByCategory:         byCategory,
		TotalSizeBytes:     totalSize,
		TotalSizeFormatted: storage.FormatSize(totalSize),
	}, nil
}
