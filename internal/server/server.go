package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moshiurrahmandeap11/server-news-portal/config"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/handler"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/middleware"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/services"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/transport/httpdto"
	"github.com/moshiurrahmandeap11/server-news-portal/pkg/database"
	"github.com/moshiurrahmandeap11/server-news-portal/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Users    *handler.UserHandler
	Uploads  *handler.UploadHandler
	Settings *handler.SettingsHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers, authService *services.AuthService, uploadRoot string) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse("database unreachable"))
			return
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	// Stored files are served straight from disk.
	s.engine.Static("/uploads", uploadRoot)

	api := s.engine.Group("/api")
	api.Use(middleware.OptionalAuth(authService))

	users := api.Group("/users")
	{
		users.POST("/registration", handlers.Users.Register)
		users.POST("/login", handlers.Users.Login)
		users.GET("", handlers.Users.List)
		users.GET("/:id", handlers.Users.GetByID)
		users.PUT("/:id", handlers.Users.Update)
		users.DELETE("/:id", handlers.Users.Delete)
	}

	uploads := api.Group("/uploads")
	{
		uploads.POST("/single", handlers.Uploads.Single)
		uploads.POST("/multiple", handlers.Uploads.Multiple)
		uploads.POST("/mixed", handlers.Uploads.Mixed)
		uploads.GET("", handlers.Uploads.List)
		uploads.GET("/stats/summary", handlers.Uploads.Stats)
		uploads.GET("/:id", handlers.Uploads.GetByID)
		uploads.DELETE("/:id", handlers.Uploads.Delete)
	}

	basicSettings := api.Group("/basic-settings")
	{
		basicSettings.GET("", handlers.Settings.Get)
		basicSettings.POST("", handlers.Settings.Create)
		basicSettings.PUT("/:id", handlers.Settings.Update)
		basicSettings.POST("/logo", handlers.Settings.ReplaceLogo)
		basicSettings.POST("/favicon", handlers.Settings.ReplaceFavicon)
		basicSettings.GET("/public/info", handlers.Settings.PublicInfo)
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
