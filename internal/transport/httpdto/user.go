package httpdto

import (
	"time"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/user"
)

// RegisterRequest is used for POST /api/users/registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is used for POST /api/users/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresIn int64   `json:"expires_in"`
	User      UserDTO `json:"user"`
}

// UpdateUserRequest is used for PUT /api/users/:id
type UpdateUserRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

// UserDTO represents a user in API responses. The password hash is never
// part of it.
type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FromUser converts a domain user to UserDTO
func FromUser(u user.User) UserDTO {
	return UserDTO{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

// FromUserSlice converts a slice of domain users to UserDTO slice
func FromUserSlice(users []user.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = FromUser(u)
	}
	return dtos
}
