package main

import (
	"log"

	"github.com/moshiurrahmandeap11/server-news-portal/config"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/handler"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/repository"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/server"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/services"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/storage"
	"github.com/moshiurrahmandeap11/server-news-portal/pkg/database"
	"github.com/moshiurrahmandeap11/server-news-portal/pkg/logger"
)

const uploadRoot = "uploads"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := logger.New(cfg.AppMode)
	logger.SetGlobalLogger(l)

	// Connect to Database
	database.Connect(cfg)
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Upload directories are created explicitly at bootstrap.
	manager, err := storage.NewManager(uploadRoot)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	if err := manager.EnsureDirs(); err != nil {
		log.Fatalf("Failed to create upload directories: %v", err)
	}

	userRepo := repository.NewUserRepository(database.DB)
	uploadRepo := repository.NewUploadRepository(database.DB)
	settingsRepo := repository.NewSettingsRepository(database.DB)

	authService := services.NewAuthService(cfg)
	userService := services.NewUserService(userRepo, authService)
	uploadService := services.NewUploadService(uploadRepo, manager, l)
	settingsService := services.NewSettingsService(settingsRepo, manager, l)

	handlers := &server.Handlers{
		Users:    handler.NewUserHandler(userService),
		Uploads:  handler.NewUploadHandler(uploadService),
		Settings: handler.NewSettingsHandler(settingsService),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, authService, manager.Root())

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
