package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/user"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/repository"
	portal_errors "github.com/moshiurrahmandeap11/server-news-portal/pkg/errors"

	"github.com/google/uuid"
)

type UserService struct {
	repo repository.UserRepository
	auth *AuthService
}

func NewUserService(repo repository.UserRepository, auth *AuthService) *UserService {
	return &UserService{repo: repo, auth: auth}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginResult struct {
	Token     string
	ExpiresIn int64
	User      user.User
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return user.User{}, portal_errors.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return user.User{}, portal_errors.ErrInvalidInput
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	// Duplicate check happens before hashing.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return user.User{}, portal_errors.ErrAlreadyExists
	} else if !errors.Is(err, portal_errors.ErrNotFound) {
		return user.User{}, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return user.User{}, err
	}

	role := in.Role
	if role == "" {
		role = "user"
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return user.User{}, err
	}

	return *newUser, nil
}

// Login yields the same error for an unknown email and a wrong password so
// the response does not disclose which one failed.
func (s *UserService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, portal_errors.ErrInvalidInput
	}

	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, portal_errors.ErrNotFound) {
			return LoginResult{}, portal_errors.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := comparePassword(u.PasswordHash, password); err != nil {
		return LoginResult{}, portal_errors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.auth.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, ExpiresIn: expiresIn, User: u}, nil
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}

	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if email != u.Email {
			// Re-check uniqueness excluding the current row.
			if existing, err := s.repo.GetByEmail(ctx, email); err == nil {
				if existing.ID != id {
					return user.User{}, portal_errors.ErrAlreadyExists
				}
			} else if !errors.Is(err, portal_errors.ErrNotFound) {
				return user.User{}, err
			}
			u.Email = email
		}
	}
	if in.Password != "" {
		if len(in.Password) < 6 {
			return user.User{}, portal_errors.ErrInvalidInput
		}
		hash, err := hashPassword(in.Password)
		if err != nil {
			return user.User{}, err
		}
		u.PasswordHash = hash
	}
	if in.Role != "" {
		u.Role = in.Role
	}
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, u); err != nil {
		return user.User{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
