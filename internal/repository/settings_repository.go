package repository

import (
	"context"
	"errors"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/settings"
	portal_errors "github.com/moshiurrahmandeap11/server-news-portal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresSettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

// Create inserts the singleton row. The existence check and insert run in
// one transaction so two concurrent creates cannot both succeed.
func (r *PostgresSettingsRepository) Create(ctx context.Context, s *settings.BasicSettings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&settings.BasicSettings{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return portal_errors.ErrAlreadyExists
		}
		return tx.Create(s).Error
	})
}

func (r *PostgresSettingsRepository) Get(ctx context.Context) (settings.BasicSettings, error) {
	var s settings.BasicSettings
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settings.BasicSettings{}, portal_errors.ErrNotFound
		}
		return settings.BasicSettings{}, err
	}
	return s, nil
}

func (r *PostgresSettingsRepository) GetByID(ctx context.Context, id uuid.UUID) (settings.BasicSettings, error) {
	var s settings.BasicSettings
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settings.BasicSettings{}, portal_errors.ErrNotFound
		}
		return settings.BasicSettings{}, err
	}
	return s, nil
}

// UpdateFields applies a partial update; columns absent from fields keep
// their previous values.
func (r *PostgresSettingsRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&settings.BasicSettings{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return portal_errors.ErrNotFound
	}
	return nil
}
