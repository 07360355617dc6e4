package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/user"
	portal_errors "github.com/moshiurrahmandeap11/server-news-portal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	res := r.db.WithContext(ctx).Create(u)
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return portal_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresUserRepository) GetAll(ctx context.Context) ([]user.User, error) {
	var users []user.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, portal_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// GetByEmail matches case-insensitively; emails are stored lowercased.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, portal_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) error {
	res := r.db.WithContext(ctx).Save(&u)
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return portal_errors.ErrAlreadyExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return portal_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&user.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return portal_errors.ErrNotFound
	}
	return nil
}
