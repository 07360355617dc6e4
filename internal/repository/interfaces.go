package repository

import (
	"context"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/settings"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/upload"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/user"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetAll(ctx context.Context) ([]user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Update(ctx context.Context, u user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UploadRepository interface {
	Create(ctx context.Context, rec *upload.UploadRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (upload.UploadRecord, error)
	List(ctx context.Context, category upload.Category, page, limit int) ([]upload.UploadRecord, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCategory(ctx context.Context) ([]upload.CategoryStat, error)
	TotalSize(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type SettingsRepository interface {
	Create(ctx context.Context, s *settings.BasicSettings) error
	Get(ctx context.Context) (settings.BasicSettings, error)
	GetByID(ctx context.Context, id uuid.UUID) (settings.BasicSettings, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
}
