package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/blueberries/blueberries-backend/config"
	"github.com/blueberries/blueberries-backend/internal/app/controller"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/internal/app/service"
	"github.com/blueberries/blueberries-backend/internal/db"
	"github.com/blueberries/blueberries-backend/internal/middleware"
	"github.com/blueberries/blueberries-backend/internal/router"
	"github.com/blueberries/blueberries-backend/internal/scheduler"
	"github.com/blueberries/blueberries-backend/internal/storage"
	"github.com/blueberries/blueberries-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Blueberries Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations (includes the initial catalog seed)
	if err := db.Migrate(db.GetDB()); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	musicRepo := repository.NewMusicRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	favoriteRepo := repository.NewFavoriteRepository(db.GetDB())
	postRepo := repository.NewPostRepository(db.GetDB())
	analyticsRepo := repository.NewAnalyticsRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	productService := service.NewProductService(productRepo)
	musicService := service.NewMusicService(musicRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo, userRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, productRepo)
	postService := service.NewPostService(postRepo)
	userService := service.NewUserService(userRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, orderRepo)

	// Initialize storage
	s3Storage := storage.NewS3Storage(&cfg.S3)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService, reviewService)
	musicController := controller.NewMusicController(musicService)
	orderController := controller.NewOrderController(orderService)
	reviewController := controller.NewReviewController(reviewService)
	favoriteController := controller.NewFavoriteController(favoriteService)
	postController := controller.NewPostController(postService)
	adminProductController := controller.NewAdminProductController(productService)
	adminOrderController := controller.NewAdminOrderController(orderService, analyticsService)
	adminUserController := controller.NewAdminUserController(userService)
	adminReviewController := controller.NewAdminReviewController(reviewService)
	analyticsController := controller.NewAnalyticsController(analyticsService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret, authService)

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		musicController,
		orderController,
		reviewController,
		favoriteController,
		postController,
		adminProductController,
		adminOrderController,
		adminUserController,
		adminReviewController,
		analyticsController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start the review count reconciliation scheduler
	reviewScheduler := scheduler.NewReviewCountScheduler(reviewService)
	if err := reviewScheduler.Start(); err != nil {
		logger.Fatal("Failed to start review count scheduler", err)
	}
	defer reviewScheduler.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
