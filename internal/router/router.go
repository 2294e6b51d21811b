package router

import (
	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/config"
	"github.com/blueberries/blueberries-backend/internal/app/controller"
	"github.com/blueberries/blueberries-backend/internal/middleware"
)

type Router struct {
	authController         *controller.AuthController
	productController      *controller.ProductController
	musicController        *controller.MusicController
	orderController        *controller.OrderController
	reviewController       *controller.ReviewController
	favoriteController     *controller.FavoriteController
	postController         *controller.PostController
	adminProductController *controller.AdminProductController
	adminOrderController   *controller.AdminOrderController
	adminUserController    *controller.AdminUserController
	adminReviewController  *controller.AdminReviewController
	analyticsController    *controller.AnalyticsController
	uploadController       *controller.UploadController
	authMiddleware         *middleware.AuthMiddleware
	config                 *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	productController *controller.ProductController,
	musicController *controller.MusicController,
	orderController *controller.OrderController,
	reviewController *controller.ReviewController,
	favoriteController *controller.FavoriteController,
	postController *controller.PostController,
	adminProductController *controller.AdminProductController,
	adminOrderController *controller.AdminOrderController,
	adminUserController *controller.AdminUserController,
	adminReviewController *controller.AdminReviewController,
	analyticsController *controller.AnalyticsController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:         authController,
		productController:      productController,
		musicController:        musicController,
		orderController:        orderController,
		reviewController:       reviewController,
		favoriteController:     favoriteController,
		postController:         postController,
		adminProductController: adminProductController,
		adminOrderController:   adminOrderController,
		adminUserController:    adminUserController,
		adminReviewController:  adminReviewController,
		analyticsController:    analyticsController,
		uploadController:       uploadController,
		authMiddleware:         authMiddleware,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Blueberries API is running",
		})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.GET("", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		products := api.Group("/products")
		{
			products.GET("", r.productController.List)
			products.GET("/:id", r.productController.Get)
			products.GET("/:id/reviews", r.productController.Reviews)
		}

		music := api.Group("/music")
		{
			music.GET("", r.musicController.List)
			music.GET("/:id", r.musicController.Get)
		}

		orders := api.Group("/orders")
		orders.Use(r.authMiddleware.Authenticate())
		{
			orders.GET("", r.orderController.List)
			orders.POST("", r.orderController.Create)
			orders.PATCH("/:id/cancel", r.orderController.Cancel)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", r.authMiddleware.Authenticate(), r.reviewController.Create)
			reviews.GET("/product/:productId", r.reviewController.ListByProduct)
		}

		favorites := api.Group("/favorites")
		favorites.Use(r.authMiddleware.Authenticate())
		{
			favorites.GET("", r.favoriteController.List)
			favorites.POST("", r.favoriteController.Add)
			favorites.DELETE("/:productId", r.favoriteController.Remove)
			favorites.GET("/check/:productId", r.favoriteController.Check)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", r.postController.List)
			posts.GET("/:id", r.postController.Get)
			posts.POST("", r.authMiddleware.Authenticate(), r.postController.Create)
			posts.PUT("/:id", r.authMiddleware.Authenticate(), r.postController.Update)
			posts.DELETE("/:id", r.authMiddleware.Authenticate(), r.postController.Delete)
		}

		admin := api.Group("/admin")
		admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
		{
			admin.GET("/products", r.adminProductController.List)
			admin.GET("/products/:id", r.adminProductController.Get)
			admin.POST("/products", r.adminProductController.Create)
			admin.PUT("/products/:id", r.adminProductController.Update)
			admin.DELETE("/products/:id", r.adminProductController.Delete)

			admin.GET("/orders", r.adminOrderController.List)
			admin.GET("/orders/export", r.adminOrderController.Export)
			admin.GET("/orders/:id", r.adminOrderController.Get)
			admin.PATCH("/orders/:id/status", r.adminOrderController.UpdateStatus)

			admin.GET("/users", r.adminUserController.List)
			admin.GET("/users/:id", r.adminUserController.Get)
			admin.PUT("/users/:id", r.adminUserController.Update)
			admin.POST("/users/:id/reset-password", r.adminUserController.ResetPassword)
			admin.PATCH("/users/:id/block", r.adminUserController.ToggleBlock)

			admin.GET("/reviews", r.adminReviewController.List)
			admin.POST("/reviews", r.adminReviewController.Create)
			admin.POST("/reviews/generate", r.adminReviewController.Generate)
			admin.GET("/reviews/:id", r.adminReviewController.Get)
			admin.PATCH("/reviews/:id/approval", r.adminReviewController.SetApproval)
			admin.POST("/reviews/:id/response", r.adminReviewController.Respond)
			admin.DELETE("/reviews/:id", r.adminReviewController.Delete)

			admin.GET("/analytics", r.analyticsController.Summary)
			admin.GET("/analytics/top-products", r.analyticsController.TopProducts)
			admin.GET("/analytics/sales", r.analyticsController.Sales)

			admin.POST("/upload/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}
