package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/repository/postgres"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/cloudinary"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/ghimport"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/validation"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Backend for a personal portfolio site: public content plus an owner dashboard.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Env)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "env", cfg.Env)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting will use in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Custom validators for binding tags
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 6. Setup Repositories
	portfolioRepo := postgres.NewPortfolioRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	achievementRepo := postgres.NewAchievementRepository(dbPool)

	// 7. External services
	media, err := cloudinary.NewService(cfg)
	if err != nil {
		logger.Log.Error("Failed to init Cloudinary", "error", err)
		os.Exit(1)
	}
	if !cfg.CloudinaryConfigured() {
		logger.Log.Warn("Cloudinary not configured - media uploads will be unavailable")
	}
	importer := ghimport.New(cfg.GithubToken)

	// 8. Setup UseCases
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo, media)
	projectUC := usecase.NewProjectUsecase(projectRepo, media)
	achievementUC := usecase.NewAchievementUsecase(achievementRepo, media)
	authUC := usecase.NewAuthUsecase(cfg)
	uploadUC := usecase.NewUploadUsecase(media)
	importUC := usecase.NewImportUsecase(importer)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		PortfolioUC:   portfolioUC,
		ProjectUC:     projectUC,
		AchievementUC: achievementUC,
		AuthUC:        authUC,
		UploadUC:      uploadUC,
		ImportUC:      importUC,
		Config:        cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
