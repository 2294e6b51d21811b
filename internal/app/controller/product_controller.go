package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/internal/app/service"
	apperrors "github.com/blueberries/blueberries-backend/internal/errors"
	"github.com/blueberries/blueberries-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
	reviewService  service.ReviewService
}

func NewProductController(productService service.ProductService, reviewService service.ReviewService) *ProductController {
	return &ProductController{
		productService: productService,
		reviewService:  reviewService,
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		apperrors.BadRequest(c, "Некорректный идентификатор")
		return 0, false
	}
	return uint(id), true
}

// List returns the catalog
// GET /api/products
func (ctrl *ProductController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.GetProducts()
	if err != nil {
		log.Error("Failed to list products", err)
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// Get returns a single product
// GET /api/products/:id
func (ctrl *ProductController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := ctrl.productService.GetProduct(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, "Товар не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// Reviews returns the product's approved reviews
// GET /api/products/:id/reviews
func (ctrl *ProductController) Reviews(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := ctrl.productService.GetProduct(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, "Товар не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	reviews, err := ctrl.reviewService.GetProductReviews(id)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
