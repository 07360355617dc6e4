package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedConfig holds configuration for seeding the database
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// DefaultSeedConfig returns default seed configuration
func DefaultSeedConfig() *SeedConfig {
	return &SeedConfig{
		AdminEmail:    "admin@news-portal.local",
		AdminPassword: "Admin@123!",
		AdminName:     "Administrator",
	}
}

// Seed creates the admin user when it does not exist yet.
func Seed(cfg *SeedConfig) (*user.User, error) {
	if cfg == nil {
		cfg = DefaultSeedConfig()
	}

	email := strings.ToLower(cfg.AdminEmail)

	var existing user.User
	if err := DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return &existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &user.User{
		ID:           uuid.New(),
		Name:         cfg.AdminName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := DB.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Seeded admin user %s", email)
	return admin, nil
}
