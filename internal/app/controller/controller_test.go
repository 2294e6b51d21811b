package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/internal/app/service"
	"github.com/blueberries/blueberries-backend/internal/db"
	"github.com/blueberries/blueberries-backend/internal/middleware"
	"github.com/blueberries/blueberries-backend/pkg/util"
)

const testJWTSecret = "controller-test-secret"

// testEnv wires real services over an in-memory database, mirroring
// the production router closely enough for endpoint tests.
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	gdb, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(gdb) })

	userRepo := repository.NewUserRepository(gdb)
	productRepo := repository.NewProductRepository(gdb)
	orderRepo := repository.NewOrderRepository(gdb)
	reviewRepo := repository.NewReviewRepository(gdb)
	favoriteRepo := repository.NewFavoriteRepository(gdb)
	postRepo := repository.NewPostRepository(gdb)

	authService := service.NewAuthService(userRepo, testJWTSecret, 168*time.Hour)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo, userRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, productRepo)
	postService := service.NewPostService(postRepo)
	userService := service.NewUserService(userRepo)

	authController := NewAuthController(authService)
	productController := NewProductController(productService, reviewService)
	orderController := NewOrderController(orderService)
	reviewController := NewReviewController(reviewService)
	favoriteController := NewFavoriteController(favoriteService)
	postController := NewPostController(postService)
	adminProductController := NewAdminProductController(productService)
	adminReviewController := NewAdminReviewController(reviewService)
	adminUserController := NewAdminUserController(userService)

	authMiddleware := middleware.NewAuthMiddleware(testJWTSecret, authService)

	r := gin.New()
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("", authMiddleware.Authenticate(), authController.Me)
		}
		products := api.Group("/products")
		{
			products.GET("", productController.List)
			products.GET("/:id", productController.Get)
			products.GET("/:id/reviews", productController.Reviews)
		}
		orders := api.Group("/orders", authMiddleware.Authenticate())
		{
			orders.GET("", orderController.List)
			orders.POST("", orderController.Create)
			orders.PATCH("/:id/cancel", orderController.Cancel)
		}
		reviews := api.Group("/reviews")
		{
			reviews.POST("", authMiddleware.Authenticate(), reviewController.Create)
			reviews.GET("/product/:productId", reviewController.ListByProduct)
		}
		favorites := api.Group("/favorites", authMiddleware.Authenticate())
		{
			favorites.GET("", favoriteController.List)
			favorites.POST("", favoriteController.Add)
			favorites.DELETE("/:productId", favoriteController.Remove)
			favorites.GET("/check/:productId", favoriteController.Check)
		}
		posts := api.Group("/posts")
		{
			posts.GET("", postController.List)
			posts.GET("/:id", postController.Get)
			posts.POST("", authMiddleware.Authenticate(), postController.Create)
			posts.PUT("/:id", authMiddleware.Authenticate(), postController.Update)
			posts.DELETE("/:id", authMiddleware.Authenticate(), postController.Delete)
		}
		admin := api.Group("/admin", authMiddleware.Authenticate(), authMiddleware.RequireAdmin())
		{
			admin.GET("/products", adminProductController.List)
			admin.GET("/products/:id", adminProductController.Get)
			admin.POST("/products", adminProductController.Create)
			admin.PUT("/products/:id", adminProductController.Update)
			admin.DELETE("/products/:id", adminProductController.Delete)
			admin.PUT("/users/:id", adminUserController.Update)
			admin.GET("/reviews", adminReviewController.List)
			admin.POST("/reviews", adminReviewController.Create)
			admin.PATCH("/reviews/:id/approval", adminReviewController.SetApproval)
			admin.DELETE("/reviews/:id", adminReviewController.Delete)
			admin.POST("/reviews/generate", adminReviewController.Generate)
			admin.PATCH("/users/:id/block", adminUserController.ToggleBlock)
		}
	}

	return &testEnv{router: r, db: gdb}
}

func (env *testEnv) createUser(t *testing.T, email string, role model.UserRole) (*model.User, string) {
	hash, err := util.HashPassword("password123")
	require.NoError(t, err)

	user := &model.User{Email: email, Password: hash, Role: role}
	require.NoError(t, env.db.Create(user).Error)

	token, err := util.GenerateToken(user.ID, user.Email, testJWTSecret, time.Hour)
	require.NoError(t, err)
	return user, token
}

func (env *testEnv) createProduct(t *testing.T, title string, price float64) *model.Product {
	product := &model.Product{
		Title:       title,
		Description: "Описание товара " + title,
		Price:       price,
		PriceUnit:   "рублей",
		Category:    "other",
	}
	require.NoError(t, env.db.Create(product).Error)
	return product
}

func (env *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	body := decodeBody(t, w)
	msg, _ := body["error"].(string)
	return msg
}

func statusOK(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
