package repository

import (
	"context"
	"errors"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/upload"
	portal_errors "github.com/moshiurrahmandeap11/server-news-portal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresUploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &PostgresUploadRepository{db: db}
}

func (r *PostgresUploadRepository) Create(ctx context.Context, rec *upload.UploadRecord) error {
	res := r.db.WithContext(ctx).Create(rec)
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return portal_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresUploadRepository) GetByID(ctx context.Context, id uuid.UUID) (upload.UploadRecord, error) {
	var rec upload.UploadRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return upload.UploadRecord{}, portal_errors.ErrNotFound
		}
		return upload.UploadRecord{}, err
	}
	return rec, nil
}

// List returns one page of records, newest first, optionally filtered by
// category. The empty category means no filter.
func (r *PostgresUploadRepository) List(ctx context.Context, category upload.Category, page, limit int) ([]upload.UploadRecord, int64, error) {
	var records []upload.UploadRecord
	var total int64

	q := r.db.WithContext(ctx).Model(&upload.UploadRecord{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := q.
		Order("uploaded_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *PostgresUploadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&upload.UploadRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return portal_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresUploadRepository) CountByCategory(ctx context.Context) ([]upload.CategoryStat, error) {
	var stats []upload.CategoryStat
	err := r.db.WithContext(ctx).
		Model(&upload.UploadRecord{}).
		Select("category, count(*) as count").
		Group("category").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *PostgresUploadRepository) TotalSize(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&upload.UploadRecord{}).
		Select("coalesce(sum(size_bytes), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresUploadRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&upload.UploadRecord{}).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
